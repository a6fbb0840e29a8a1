package menu

import "strings"

type Time struct {
	Hour   uint8
	Minute uint8
}

// PropertyTime edits hour and minute. Minute wraps without carry into hour.
type PropertyTime struct {
	property
	v    *Time
	step uint8
}

// step applies to minutes, 0 means 1.
func NewPropertyTime(name string, v *Time, step uint8) *PropertyTime {
	if v == nil {
		panic("code error PropertyTime var=nil name=" + name)
	}
	if step == 0 {
		step = 1
	}
	if step >= 60 {
		panic("code error PropertyTime step>=60 name=" + name)
	}
	self := &PropertyTime{property: newProperty(name, 2), v: v, step: step}
	self.onEnter = self.clamp
	return self
}

func (self *PropertyTime) Kind() Kind     { return KindTime }
func (self *PropertyTime) EditWidth() int { return 7 }

func (self *PropertyTime) clamp() {
	if self.v.Hour > 23 {
		self.v.Hour = 23
	}
	if self.v.Minute > 59 {
		self.v.Minute = 59
	}
}

func (self *PropertyTime) PaintEdit(s Surface) {
	f := self.focus
	var b strings.Builder
	b.Grow(7)
	if f == 1 {
		b.WriteString(selLeft)
	} else {
		b.WriteByte(' ')
	}
	b.WriteString(pad00(self.v.Hour))
	b.WriteString(marker(f, 1, ":"))
	b.WriteString(pad00(self.v.Minute))
	if f == 2 {
		b.WriteString(selRight)
	} else {
		b.WriteByte(' ')
	}
	s.Print(b.String())
}

func (self *PropertyTime) ProcessEditInput(button Button) bool {
	self.mustEditing()
	switch button {
	case ButtonDown:
		if self.focus == 1 {
			self.v.Hour = wrapDown(self.v.Hour, 0, 23, 1)
		} else {
			self.v.Minute = (self.v.Minute + 60 - self.step) % 60
		}
		return true
	case ButtonUp:
		if self.focus == 1 {
			self.v.Hour = wrapUp(self.v.Hour, 0, 23, 1)
		} else {
			self.v.Minute = (self.v.Minute + self.step) % 60
		}
		return true
	case ButtonEnter:
		self.NextFocusPart()
		return true
	}
	return false
}
