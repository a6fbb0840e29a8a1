package state

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
	"github.com/temoto/lcdmenu/hardware/input"
	"github.com/temoto/lcdmenu/hardware/lcd"
	"github.com/temoto/lcdmenu/helpers"
	"github.com/temoto/lcdmenu/log2"
	"github.com/temoto/lcdmenu/menu"
)

type Global struct {
	Alive    *alive.Alive
	Config   *Config
	Hardware struct {
		Display struct {
			Grid   *lcd.Grid
			Device lcd.Devicer
			closer func() error
		}
		Input struct {
			Dispatch *input.Dispatch
			Sources  []input.Source
			Keymaps  map[string]input.Keymap
		}
	}
	Log *log2.Log
}

const ContextKey = "run/state-global"

func NewContext(log *log2.Log) (context.Context, *Global) {
	if log == nil {
		panic("code error state.NewContext() log=nil")
	}

	g := &Global{
		Alive: alive.NewAlive(),
		Log:   log,
	}

	ctx := context.Background()
	ctx = context.WithValue(ctx, log2.ContextKey, log)
	ctx = context.WithValue(ctx, ContextKey, g)

	return ctx, g
}

func GetGlobal(ctx context.Context) *Global {
	v := ctx.Value(ContextKey)
	if v == nil {
		panic(fmt.Sprintf("context['%v'] is nil", ContextKey))
	}
	if g, ok := v.(*Global); ok {
		return g
	}
	panic(fmt.Sprintf("context['%v'] expected type *Global actual=%#v", ContextKey, v))
}

// Init opens display and input hardware according to config.
func (g *Global) Init(ctx context.Context, cfg *Config) error {
	g.Config = cfg
	g.Log.Infof("lcdmenu init display=%s %dx%d pid=%d go=%s",
		cfg.Hardware.Display.Driver, cfg.Hardware.Display.Cols, cfg.Hardware.Display.Rows,
		os.Getpid(), runtime.Version())

	errs := make([]error, 0, 2)
	if err := g.initDisplay(); err != nil {
		errs = append(errs, err)
	}
	if err := g.initInput(); err != nil {
		errs = append(errs, err)
	}
	return helpers.FoldErrors(errs)
}

func (g *Global) MustInit(ctx context.Context, cfg *Config) {
	err := g.Init(ctx, cfg)
	if err != nil {
		g.Log.Fatal(errors.ErrorStack(err))
	}
}

// Button translates raw key event with keymap of its source.
func (g *Global) Button(e input.Event) menu.Button {
	km, ok := g.Hardware.Input.Keymaps[e.Source]
	if !ok {
		return menu.ButtonNone
	}
	return km.Button(e)
}

// Close releases hardware. Safe to call after failed Init.
func (g *Global) Close() {
	for _, s := range g.Hardware.Input.Sources {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				g.Error(errors.Annotatef(err, "close input=%s", s.String()))
			}
		}
	}
	if c := g.Hardware.Display.closer; c != nil {
		if err := c(); err != nil {
			g.Error(errors.Annotate(err, "close display"))
		}
	}
}

func (g *Global) Error(err error, args ...interface{}) {
	if err != nil {
		if len(args) != 0 {
			msg := args[0].(string)
			args = args[1:]
			err = errors.Annotatef(err, msg, args...)
		}
		g.Log.Error(err)
	}
}
