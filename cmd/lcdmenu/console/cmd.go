// Development mode: LCD frame printed to terminal, buttons typed as commands.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/juju/errors"
	"github.com/temoto/lcdmenu/cmd/lcdmenu/appliance"
	"github.com/temoto/lcdmenu/cmd/lcdmenu/subcmd"
	"github.com/temoto/lcdmenu/hardware/input"
	"github.com/temoto/lcdmenu/hardware/lcd"
	"github.com/temoto/lcdmenu/helpers/cli"
	"github.com/temoto/lcdmenu/menu"
	"github.com/temoto/lcdmenu/state"
	"github.com/temoto/lcdmenu/ui"
	"github.com/temoto/lcdmenu/wiring"
)

const usage = `syntax: one command per line
- up | u | +      ButtonUp: previous line, increment value
- down | d | -    ButtonDown: next line, decrement value
- enter | e | ""  ButtonEnter: select, next field, confirm
- letters combine: "dde" is down down enter
- values          print backing values
- show            print display frame
`

var Mod = subcmd.Mod{
	Name: "console",
	Doc:  "LCD frame in terminal, buttons typed as commands",
	Main: Main,
}

func Main(ctx context.Context, config *state.Config) error {
	g := state.GetGlobal(ctx)
	// frame is printed by executor, display output must not touch terminal under prompt
	config.Hardware.Display.Driver = state.DisplayMock
	config.Hardware.Input.DevInputEvent.Enable = false
	g.MustInit(ctx, config)
	defer g.Close()

	m, err := appliance.New(g.Log).Build(ctx, config)
	if err != nil {
		return err
	}
	u := &ui.UI{}
	if err := u.Init(ctx, m.Root); err != nil {
		return errors.Annotate(err, "ui init")
	}
	go u.Loop(ctx)

	g.Log.Infof(usage)
	exec := newExecutor(g, u, m.Values, os.Stdout)
	exec("show")
	cli.MainLoop("lcdmenu", exec, newCompleter(), g.Alive.Stop)

	g.Alive.Stop()
	g.Alive.Wait()
	return nil
}

// newExecutor returns prompt callback. Button lines are emitted into UI loop,
// then reply (current frame or values) is rendered on loop goroutine and written to w.
// Idle reset is visible with next command.
func newExecutor(g *state.Global, u *ui.UI, values *wiring.Values, w io.Writer) func(string) {
	dispatch := g.Hardware.Input.Dispatch
	dev := g.Hardware.Display.Device.(*lcd.MockDevicer)
	cols, rows := g.Hardware.Display.Grid.Size()
	return func(line string) {
		var render func() string
		switch line {
		case "values":
			render = func() string {
				var b strings.Builder
				for _, name := range values.Names() {
					if k, _ := values.Kind(name); k == menu.KindAction {
						continue
					}
					fmt.Fprintf(&b, "%s = %s\n", name, values.Format(name))
				}
				return b.String()
			}
		case "show":
			render = func() string { return lcd.FormatFrame(dev.String(), cols, rows) }
		default:
			for _, e := range input.ParseConsoleLine(line) {
				if !dispatch.Emit(e) {
					return
				}
			}
			render = func() string { return lcd.FormatFrame(dev.String(), cols, rows) }
		}
		var reply string
		if u.Do(func() { reply = render() }) {
			fmt.Fprint(w, reply)
		}
	}
}

func newCompleter() func(d prompt.Document) []prompt.Suggest {
	suggests := []prompt.Suggest{
		{Text: "up", Description: "previous line, increment"},
		{Text: "down", Description: "next line, decrement"},
		{Text: "enter", Description: "select, next field, confirm"},
		{Text: "values", Description: "print backing values"},
		{Text: "show", Description: "print display frame"},
	}
	return func(d prompt.Document) []prompt.Suggest {
		return prompt.FilterHasPrefix(suggests, d.GetWordBeforeCursor(), true)
	}
}
