// Package ui drives menu pages from input events on a single goroutine.
package ui

import (
	"context"
	"time"

	"github.com/juju/errors"
	"github.com/temoto/atomic_clock"
	"github.com/temoto/lcdmenu/hardware/input"
	"github.com/temoto/lcdmenu/hardware/lcd"
	"github.com/temoto/lcdmenu/menu"
	"github.com/temoto/lcdmenu/state"
)

const minIdleCheck = 100 * time.Millisecond

type UI struct {
	Nav *menu.Navigator

	g            *state.Global
	grid         *lcd.Grid
	dev          lcd.Devicer
	lastActivity *atomic_clock.Clock
	resetTimeout time.Duration
	// root is shown since last idle reset
	resetDone  bool
	displayErr error
	// functions to run on loop goroutine, see Do
	reqch chan func()

	// called after every processed event, including idle reset (Event zero value)
	XXX_testHook func(input.Event, menu.Nav)
}

func (self *UI) Init(ctx context.Context, root menu.Page) error {
	self.g = state.GetGlobal(ctx)
	self.grid = self.g.Hardware.Display.Grid
	self.dev = self.g.Hardware.Display.Device
	if self.grid == nil || self.dev == nil {
		return errors.NotProvisionedf("display")
	}
	if root == nil {
		return errors.NotValidf("ui root page=nil")
	}
	self.Nav = menu.NewNavigator(root, self.grid, self.g.Log)
	self.reqch = make(chan func())
	self.lastActivity = atomic_clock.Now()
	self.resetTimeout = self.g.Config.UI.ResetTimeout()
	return nil
}

// Loop shows root page and processes input until global Alive is stopped.
func (self *UI) Loop(ctx context.Context) {
	if !self.g.Alive.Add(1) {
		return
	}
	defer self.g.Alive.Done()

	dispatch := self.g.Hardware.Input.Dispatch
	dispatch.Run(self.g.Hardware.Input.Sources)
	events := dispatch.Events()
	stopch := self.g.Alive.StopChan()

	var idlech <-chan time.Time
	if self.resetTimeout != 0 {
		tick := self.resetTimeout / 4
		if tick < minIdleCheck {
			tick = minIdleCheck
		}
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		idlech = ticker.C
	}

	self.Nav.Start()
	self.flush()
	for {
		select {
		case e := <-events:
			self.Event(e)

		case f := <-self.reqch:
			f()

		case <-idlech:
			if !self.resetDone && self.Idle() >= self.resetTimeout {
				self.Reset()
			}

		case <-stopch:
			return
		}
	}
}

// Do runs f on loop goroutine and waits for it to return.
// Pages, properties, values and display belong to that goroutine,
// other goroutines must read them only inside f.
// Input emitted before Do is already processed when f runs.
// Returns false if Alive is stopped before f was accepted.
func (self *UI) Do(f func()) bool {
	done := make(chan struct{})
	req := func() {
		defer close(done)
		f()
	}
	select {
	case self.reqch <- req:
		<-done
		return true
	case <-self.g.Alive.StopChan():
		return false
	}
}

// Event translates raw input with source keymap and applies it.
func (self *UI) Event(e input.Event) menu.Nav {
	b := self.g.Button(e)
	var nav menu.Nav
	if b != menu.ButtonNone {
		nav = self.Input(b)
	} else {
		self.g.Log.Debugf("ui ignore input=%#v", e)
	}
	if self.XXX_testHook != nil {
		self.XXX_testHook(e, nav)
	}
	return nav
}

// Input routes button to active page and updates display.
func (self *UI) Input(b menu.Button) menu.Nav {
	self.lastActivity.SetNow()
	self.resetDone = false
	nav := self.Nav.Input(b)
	self.g.Log.Debugf("ui input=%s nav=%s depth=%d", b, nav.Kind, self.Nav.Depth())
	self.flush()
	return nav
}

func (self *UI) Idle() time.Duration { return atomic_clock.Since(self.lastActivity) }

// Reset abandons any edit and shows root page.
func (self *UI) Reset() {
	self.g.Log.Debugf("ui idle reset after=%v", self.Idle())
	self.resetDone = true
	self.Nav.Reset()
	self.flush()
	if self.XXX_testHook != nil {
		self.XXX_testHook(input.Event{}, menu.Nav{})
	}
}

func (self *UI) flush() {
	self.grid.Flush(self.dev)
	if e, ok := self.dev.(interface{ Err() error }); ok {
		// hd44780 keeps first bus error, report it once
		if err := e.Err(); err != nil && err != self.displayErr {
			self.displayErr = err
			self.g.Error(err, "display")
		}
	}
}
