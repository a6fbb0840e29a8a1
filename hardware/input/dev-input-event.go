package input

import (
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/temoto/inputevent-go"
	"github.com/temoto/lcdmenu/menu"
)

const DevInputEventTag = "dev-input-event"

// linux/input-event-codes.h
const (
	evKey         uint16 = 0x01
	LinuxKeyEnter Key    = 28
	LinuxKeyUp    Key    = 103
	LinuxKeyDown  Key    = 108
)

func DevInputKeymap(up, down, enter Key) Keymap {
	if up == 0 {
		up = LinuxKeyUp
	}
	if down == 0 {
		down = LinuxKeyDown
	}
	if enter == 0 {
		enter = LinuxKeyEnter
	}
	return Keymap{
		up:    menu.ButtonUp,
		down:  menu.ButtonDown,
		enter: menu.ButtonEnter,
	}
}

type DevInputEventSource struct {
	f io.ReadCloser
}

// compile-time interface compliance test
var _ Source = new(DevInputEventSource)

func (self *DevInputEventSource) String() string { return DevInputEventTag }

func NewDevInputEventSource(device string) (*DevInputEventSource, error) {
	f, err := os.Open(device)
	if err != nil {
		return nil, errors.Annotatef(err, "input device=%s", device)
	}
	return &DevInputEventSource{f: f}, nil
}

func (self *DevInputEventSource) Close() error { return self.f.Close() }

// Read skips non-key events. Key hold (autorepeat) is reported as another press.
func (self *DevInputEventSource) Read() (Event, error) {
	for {
		ie, err := inputevent.ReadOne(self.f)
		if err != nil {
			return Event{}, err
		}
		if ie.Type == evKey {
			ev := Event{
				Source: DevInputEventTag,
				Key:    Key(ie.Code),
				Up:     ie.Value == int32(inputevent.KeyStateUp),
			}
			return ev, nil
		}
	}
}
