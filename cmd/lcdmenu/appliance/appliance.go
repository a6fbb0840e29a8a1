// Package appliance has callbacks for the recording appliance menu:
// wall clock settings and recording parameters.
package appliance

import (
	"context"
	"time"

	"github.com/juju/errors"
	"github.com/temoto/lcdmenu/log2"
	"github.com/temoto/lcdmenu/menu"
	"github.com/temoto/lcdmenu/state"
	"github.com/temoto/lcdmenu/wiring"
)

const (
	ActionClockLoad      = "clock.load"
	ActionRecordingApply = "recording.apply"

	ValueClockTime = "clock_time"
	ValueClockDate = "clock_date"
)

type Appliance struct {
	Log  *log2.Log
	Menu *wiring.Menu
	// Applied receives formatted snapshot of values on recording.apply, may be nil
	Applied func(map[string]string)

	now func() time.Time
}

func New(log *log2.Log) *Appliance {
	return &Appliance{Log: log, now: time.Now}
}

func (self *Appliance) Actions() wiring.Actions {
	return wiring.Actions{
		ActionClockLoad:      self.ClockLoad,
		ActionRecordingApply: self.RecordingApply,
	}
}

// Build constructs menu from config with appliance actions.
func (self *Appliance) Build(ctx context.Context, cfg *state.Config) (*wiring.Menu, error) {
	m, err := wiring.Build(cfg, self.Actions(), self.Log)
	if err != nil {
		return nil, errors.Annotate(err, "menu")
	}
	self.Menu = m
	return m, nil
}

// ClockLoad copies wall clock into clock values before settings page is shown.
func (self *Appliance) ClockLoad() {
	if self.Menu == nil {
		return
	}
	now := self.now()
	if t := self.Menu.Values.Time(ValueClockTime); t != nil {
		*t = menu.Time{Hour: uint8(now.Hour()), Minute: uint8(now.Minute())}
	}
	if d := self.Menu.Values.Date(ValueClockDate); d != nil {
		year := now.Year() - menu.DateBaseYear
		if year < 0 || year > 99 {
			self.Log.Errorf("clock year=%d out of range", now.Year())
			year = 0
		}
		*d = menu.Date{Day: uint8(now.Day()), Month: uint8(now.Month()), Year: uint8(year)}
	}
}

func (self *Appliance) RecordingApply() {
	if self.Menu == nil {
		return
	}
	self.Log.Infof("recording apply %s", self.Menu.Values.String())
	if self.Applied != nil {
		self.Applied(self.Menu.Values.Snapshot())
	}
}
