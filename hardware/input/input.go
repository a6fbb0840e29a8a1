// Abstract input events
package input

import (
	"io"

	"github.com/juju/errors"
	"github.com/temoto/lcdmenu/log2"
	"github.com/temoto/lcdmenu/menu"
)

type Key uint16

type Event struct {
	Source string
	Key    Key
	Up     bool
}

func (e *Event) IsZero() bool { return e.Source == "" && e.Key == 0 }

type Source interface {
	Read() (Event, error)
	String() string
}

// Keymap translates key codes of one source into menu buttons.
type Keymap map[Key]menu.Button

// Button returns ButtonNone for key release and unknown keys.
func (self Keymap) Button(e Event) menu.Button {
	if e.Up {
		return menu.ButtonNone
	}
	return self[e.Key]
}

func Drain(ch <-chan Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

// Dispatch merges events from all sources into single channel,
// consumed by one UI loop.
type Dispatch struct {
	Log  *log2.Log
	bus  chan Event
	stop <-chan struct{}
}

func NewDispatch(log *log2.Log, stop <-chan struct{}) *Dispatch {
	return &Dispatch{
		Log:  log,
		bus:  make(chan Event),
		stop: stop,
	}
}

func (self *Dispatch) Events() <-chan Event { return self.bus }

// Run starts one reader goroutine per source and returns.
func (self *Dispatch) Run(sources []Source) {
	for _, source := range sources {
		go self.readSource(source)
	}
}

// Emit blocks until event is consumed or dispatch is stopped.
func (self *Dispatch) Emit(event Event) bool {
	select {
	case self.bus <- event:
		self.Log.Debugf("input emit=%#v", event)
		return true
	case <-self.stop:
		return false
	}
}

func (self *Dispatch) readSource(source Source) {
	tag := source.String()
	for {
		event, err := source.Read()
		if err == io.EOF {
			self.Log.Debugf("input source=%s end", tag)
			return
		}
		if err != nil {
			err = errors.Annotatef(err, "input source=%s", tag)
			self.Log.Fatal(errors.ErrorStack(err))
			return
		}
		if !self.Emit(event) {
			return
		}
	}
}
