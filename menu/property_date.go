package menu

import "strings"

const DateBaseYear = 2000

// Date fields are validated independently, 31.02 is representable.
type Date struct {
	Day   uint8 // 1..31
	Month uint8 // 1..12
	Year  uint8 // offset from DateBaseYear, 0..99
}

// PropertyDate edits day, month, year in that order.
type PropertyDate struct {
	property
	v *Date
}

func NewPropertyDate(name string, v *Date) *PropertyDate {
	if v == nil {
		panic("code error PropertyDate var=nil name=" + name)
	}
	self := &PropertyDate{property: newProperty(name, 3), v: v}
	self.onEnter = self.clamp
	self.onExit = self.clamp
	return self
}

func (self *PropertyDate) Kind() Kind     { return KindDate }
func (self *PropertyDate) EditWidth() int { return 10 }

// TODO day of month is not checked against month and leap year
func (self *PropertyDate) clamp() {
	self.v.Day = clamp(self.v.Day, 1, 31)
	self.v.Month = clamp(self.v.Month, 1, 12)
	self.v.Year = clamp(self.v.Year, 0, 99)
}

func (self *PropertyDate) PaintEdit(s Surface) {
	f := self.focus
	var b strings.Builder
	b.Grow(10)
	if f == 1 {
		b.WriteString(selLeft)
	} else {
		b.WriteByte(' ')
	}
	b.WriteString(pad00(self.v.Day))
	b.WriteString(marker(f, 1, "."))
	b.WriteString(pad00(self.v.Month))
	b.WriteString(marker(f, 2, "."))
	b.WriteString(pad00(self.v.Year))
	if f == 3 {
		b.WriteString(selRight)
	} else {
		b.WriteByte(' ')
	}
	s.Print(b.String())
}

func (self *PropertyDate) field() (p *uint8, min, max uint8) {
	switch self.focus {
	case 1:
		return &self.v.Day, 1, 31
	case 2:
		return &self.v.Month, 1, 12
	default:
		return &self.v.Year, 0, 99
	}
}

func (self *PropertyDate) ProcessEditInput(button Button) bool {
	self.mustEditing()
	switch button {
	case ButtonDown:
		p, min, max := self.field()
		*p = wrapDown(*p, min, max, 1)
		return true
	case ButtonUp:
		p, min, max := self.field()
		*p = wrapUp(*p, min, max, 1)
		return true
	case ButtonEnter:
		self.NextFocusPart()
		return true
	}
	return false
}
