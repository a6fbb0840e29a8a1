package state

import (
	"context"
	"testing"

	"github.com/juju/errors"
	"github.com/temoto/lcdmenu/hardware/lcd"
	"github.com/temoto/lcdmenu/log2"
)

func NewTestContext(t testing.TB, confString string) (context.Context, *Global) {
	fs := NewMockFullReader(map[string]string{
		"test-inline": confString,
	})

	log := log2.NewTest(t, log2.LDebug)
	ctx, g := NewContext(log)
	g.Config = MustReadConfig(log, fs, "test-inline")
	if g.Config.Hardware.Display.Driver != DisplayMock {
		t.Fatalf("test config display driver=%s must be %s", g.Config.Hardware.Display.Driver, DisplayMock)
	}
	if err := g.Init(ctx, g.Config); err != nil {
		t.Fatalf("state.Init err=%v", errors.ErrorStack(err))
	}
	return ctx, g
}

// MockDisplay returns device of test context, fails when driver is not mock.
func (g *Global) MockDisplay(t testing.TB) *lcd.MockDevicer {
	m, ok := g.Hardware.Display.Device.(*lcd.MockDevicer)
	if !ok {
		t.Fatalf("display device=%T expected *lcd.MockDevicer", g.Hardware.Display.Device)
	}
	return m
}
