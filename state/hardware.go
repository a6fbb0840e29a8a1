package state

import (
	"os"

	"github.com/juju/errors"
	"github.com/temoto/lcdmenu/hardware/input"
	"github.com/temoto/lcdmenu/hardware/lcd"
)

func (g *Global) initDisplay() error {
	dc := &g.Config.Hardware.Display
	grid, err := lcd.NewGrid(dc.Cols, dc.Rows, dc.Codepage)
	if err != nil {
		return errors.Annotate(err, "display")
	}

	var dev lcd.Devicer
	switch dc.Driver {
	case DisplayMock:
		_, dev = lcd.NewMockGrid(dc.Cols, dc.Rows)

	case DisplayConsole:
		dev = lcd.NewConsoleDevicer(os.Stdout, dc.Cols, dc.Rows)

	case DisplayHD44780:
		bus, err := lcd.OpenGpioBus(dc.HD44780.PinChip, dc.HD44780.Pinmap)
		if err != nil {
			return errors.Annotatef(err, "display driver=%s", dc.Driver)
		}
		d, err := lcd.NewLCD(bus, uint8(dc.Cols), uint8(dc.Rows), dc.HD44780.Page1)
		if err != nil {
			_ = bus.Close()
			return errors.Annotatef(err, "display driver=%s", dc.Driver)
		}
		dev = d
		g.Hardware.Display.closer = d.Close

	case DisplayPcf8574:
		addr := dc.Pcf8574.Addr
		if addr == 0 {
			addr = lcd.DefaultPcf8574Addr
		}
		bus, err := lcd.OpenPcf8574Bus(dc.Pcf8574.Bus, uint16(addr))
		if err != nil {
			return errors.Annotatef(err, "display driver=%s", dc.Driver)
		}
		d, err := lcd.NewLCD(bus, uint8(dc.Cols), uint8(dc.Rows), dc.Pcf8574.Page1)
		if err != nil {
			_ = bus.Close()
			return errors.Annotatef(err, "display driver=%s", dc.Driver)
		}
		dev = d
		g.Hardware.Display.closer = d.Close

	default:
		return errors.NotSupportedf("display driver=%s", dc.Driver)
	}

	g.Hardware.Display.Grid = grid
	g.Hardware.Display.Device = dev
	return nil
}

func (g *Global) initInput() error {
	ic := &g.Config.Hardware.Input
	g.Hardware.Input.Dispatch = input.NewDispatch(g.Log, g.Alive.StopChan())
	g.Hardware.Input.Keymaps = map[string]input.Keymap{
		input.ConsoleTag: input.ConsoleKeymap,
	}

	if ic.DevInputEvent.Enable {
		src, err := input.NewDevInputEventSource(ic.DevInputEvent.Device)
		if err != nil {
			return errors.Annotatef(err, "input %s device=%s", input.DevInputEventTag, ic.DevInputEvent.Device)
		}
		g.Hardware.Input.Sources = append(g.Hardware.Input.Sources, src)
		g.Hardware.Input.Keymaps[input.DevInputEventTag] = input.DevInputKeymap(
			input.Key(ic.DevInputEvent.KeyUp),
			input.Key(ic.DevInputEvent.KeyDown),
			input.Key(ic.DevInputEvent.KeyEnter))
	}
	return nil
}
