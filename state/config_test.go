package state

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/lcdmenu/hardware/input"
	"github.com/temoto/lcdmenu/log2"
	"github.com/temoto/lcdmenu/menu"
)

func TestReadConfig(t *testing.T) {
	t.Parallel()

	type Case struct {
		name      string
		input     string
		check     func(testing.TB, context.Context)
		expectErr string
	}
	cases := []Case{
		{"empty", "", func(t testing.TB, ctx context.Context) {
			g := GetGlobal(ctx)
			d := g.Config.Hardware.Display
			assert.Equal(t, DisplayMock, d.Driver)
			assert.Equal(t, 16, d.Cols)
			assert.Equal(t, 2, d.Rows)
			assert.Equal(t, "..", g.Config.UI.ParentLabel)
			assert.Equal(t, "", g.Config.UI.Root)
			assert.Equal(t, time.Duration(0), g.Config.UI.ResetTimeout())
			cols, rows := g.Hardware.Display.Grid.Size()
			assert.Equal(t, 16, cols)
			assert.Equal(t, 2, rows)
		}, ""},

		{"display",
			`hardware { display { driver = "mock" cols = 20 rows = 4 codepage = "windows-1251" } }`,
			func(t testing.TB, ctx context.Context) {
				g := GetGlobal(ctx)
				assert.Equal(t, 20, g.Config.Hardware.Display.Cols)
				assert.Equal(t, 4, g.Config.Hardware.Display.Rows)
				cols, rows := g.Hardware.Display.Grid.Size()
				assert.Equal(t, 20, cols)
				assert.Equal(t, 4, rows)
			},
			"",
		},

		{"hd44780-pinmap",
			`hardware { display {
	driver = "mock"
	hd44780 {
		pin_chip = "/dev/gpiochip0"
		page1 = true
		pinmap { rs = "13" rw = "14" e = "110" d4 = "68" d5 = "71" d6 = "2" d7 = "21" }
	}
} }`,
			func(t testing.TB, ctx context.Context) {
				h := GetGlobal(ctx).Config.Hardware.Display.HD44780
				assert.Equal(t, "/dev/gpiochip0", h.PinChip)
				assert.True(t, h.Page1)
				assert.Equal(t, "110", h.Pinmap.E)
				assert.Equal(t, "21", h.Pinmap.D7)
			},
			"",
		},

		{"menu-pages", `
ui { parent_label = "<-" reset_sec = 30 }
menu {
	page "main" {
		item "Settings" { page = "settings" }
	}
	page "settings" {
		before_show = "clock.load"
		property "time" { kind = "time" label = "Time" step = 5 value = "12:30" }
		property "level" { kind = "int" min = 1 max = 10 step = 1 value = "3" }
	}
}`,
			func(t testing.TB, ctx context.Context) {
				c := GetGlobal(ctx).Config
				assert.Equal(t, "main", c.UI.Root)
				assert.Equal(t, "<-", c.UI.ParentLabel)
				assert.Equal(t, 30, c.UI.ResetTimeoutSec)
				assert.Equal(t, 30*time.Second, c.UI.ResetTimeout())
				require.Len(t, c.Menu.Pages, 2)
				main := c.Page("main")
				require.NotNil(t, main)
				require.Len(t, main.Items, 1)
				assert.Equal(t, "Settings", main.Items[0].Label)
				assert.Equal(t, "settings", main.Items[0].Page)
				settings := c.Page("settings")
				require.NotNil(t, settings)
				assert.Equal(t, "clock.load", settings.BeforeShow)
				require.Len(t, settings.Properties, 2)
				assert.Equal(t, PropertyConfig{Name: "time", Kind: "time", Label: "Time", Step: 5, Value: "12:30"}, settings.Properties[0])
				assert.Equal(t, 10, settings.Properties[1].Max)
				assert.Nil(t, c.Page("unknown"))
			}, ""},

		{"input-keymap",
			`hardware { input { dev_input_event { key_up = 2 } } }`,
			func(t testing.TB, ctx context.Context) {
				g := GetGlobal(ctx)
				assert.False(t, g.Config.Hardware.Input.DevInputEvent.Enable)
				assert.Equal(t, 2, g.Config.Hardware.Input.DevInputEvent.KeyUp)
				assert.Equal(t, menu.ButtonEnter, g.Button(input.Event{Source: input.ConsoleTag, Key: input.ConsoleKeyEnter}))
				assert.Equal(t, menu.ButtonNone, g.Button(input.Event{Source: input.DevInputEventTag, Key: input.LinuxKeyUp}))
			},
			"",
		},

		{"include-normalize", `
ui { reset_sec = 1 }
include "./empty" {}`,
			nil, ""},

		{"include-optional", `
include "display-20x4" {}
include "non-exist" { optional = true }`,
			func(t testing.TB, ctx context.Context) {
				g := GetGlobal(ctx)
				assert.Equal(t, 20, g.Config.Hardware.Display.Cols)
			}, ""},

		{"include-overwrites", `
hardware { display { cols = 8 } }
include "display-20x4" {}`,
			func(t testing.TB, ctx context.Context) {
				g := GetGlobal(ctx)
				assert.Equal(t, 20, g.Config.Hardware.Display.Cols)
			}, ""},

		{"error-syntax", `hello`, nil, "key 'hello' expected start of object"},
		{"error-include-loop", `include "include-loop" {}`, nil, "config include loop: from=include-loop include=include-loop"},
		{"error-include-required", `include "non-exist" {}`, nil, "config required name=non-exist"},
		{"error-rows", `hardware { display { rows = 5 } }`, nil, "hardware.display.rows=5"},
		{"error-reset", `ui { reset_sec = -1 }`, nil, "ui.reset_sec=-1"},
		{"error-driver", `hardware { display { driver = "vfd" } }`, nil, "display driver=vfd"},
		{"error-codepage", `hardware { display { codepage = "klingon" } }`, nil, "klingon"},
	}
	mkCheck := func(c Case) func(*testing.T) {
		return func(t *testing.T) {
			t.Parallel()
			log := log2.NewTest(t, log2.LDebug)
			ctx, g := NewContext(log)

			fs := NewMockFullReader(map[string]string{
				"test-inline":  c.input,
				"empty":        "",
				"display-20x4": "hardware { display { cols = 20 rows = 4 } }",
				"include-loop": `include "include-loop" {}`,
			})
			cfg, err := ReadConfig(log, fs, "test-inline")
			if err == nil {
				err = g.Init(ctx, cfg)
			}
			if c.expectErr == "" {
				if err != nil {
					t.Fatalf("error expected=nil actual='%v'", errors.ErrorStack(err))
				}
				if c.check != nil {
					c.check(t, ctx)
				}
			} else {
				require.Error(t, err)
				if !strings.Contains(err.Error(), c.expectErr) {
					t.Fatalf("error expected='%s' actual='%v'", c.expectErr, err)
				}
			}
		}
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, mkCheck(c))
	}
}

func TestNewTestContext(t *testing.T) {
	t.Parallel()

	ctx, g := NewTestContext(t, `hardware { display { cols = 8 rows = 2 } }`)
	assert.Equal(t, g, GetGlobal(ctx))
	assert.Equal(t, g.Log, log2.ContextValueLogger(ctx))
	grid := g.Hardware.Display.Grid
	grid.SetCursor(0, 0)
	grid.Print("hello")
	grid.Flush(g.Hardware.Display.Device)
	assert.Equal(t, "hello   ", g.MockDisplay(t).Line(1))
	g.Close()
}

func TestGetGlobalPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { GetGlobal(context.Background()) })
}
