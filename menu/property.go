package menu

import "fmt"

const (
	selLeft  = "["
	selRight = "]"
)

type Kind uint8

const (
	KindTime Kind = iota + 1
	KindDate
	KindInteger
	KindBool
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindTime:
		return "time"
	case KindDate:
		return "date"
	case KindInteger:
		return "int"
	case KindBool:
		return "bool"
	case KindAction:
		return "action"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Property is an in-place editor of one externally owned value.
// The set of implementations is closed: Time, Date, Integer, Bool, Action.
type Property interface {
	Name() string
	Kind() Kind
	// 0 when not editing, otherwise 1..MaxFocusParts()
	FocusPart() int
	MaxFocusParts() int
	// EditWidth is the number of cells PaintEdit writes.
	EditWidth() int

	EnterEdit()
	NextFocusPart()
	PaintLabel(s Surface)
	PaintEdit(s Surface)
	// ProcessEditInput returns true when the value region needs redraw.
	// Only valid while FocusPart() != 0.
	ProcessEditInput(b Button) bool

	base() *property
}

type property struct {
	name     string
	focus    uint8
	maxFocus uint8
	onEnter  func()
	onExit   func()
}

func newProperty(name string, maxFocus uint8) property {
	if maxFocus == 0 {
		panic("code error property maxFocus=0 name=" + name)
	}
	return property{name: name, maxFocus: maxFocus}
}

func (self *property) base() *property { return self }

func (self *property) Name() string       { return self.name }
func (self *property) FocusPart() int     { return int(self.focus) }
func (self *property) MaxFocusParts() int { return int(self.maxFocus) }

func (self *property) EnterEdit() {
	if self.onEnter != nil {
		self.onEnter()
	}
	self.focus = 1
}

func (self *property) NextFocusPart() {
	self.focus++
	if self.focus > self.maxFocus {
		self.exitEdit()
	}
}

// exitEdit leaves edit mode from any focus part.
func (self *property) exitEdit() {
	self.focus = 0
	if self.onExit != nil {
		self.onExit()
	}
}

func (self *property) PaintLabel(s Surface) { s.Print(self.name) }

func (self *property) mustEditing() {
	if self.focus == 0 || self.focus > self.maxFocus {
		panic(fmt.Sprintf("code error property=%s edit input focus=%d max=%d", self.name, self.focus, self.maxFocus))
	}
}

// marker returns the cell between two sub-fields:
// right bracket after focused left part, left bracket before focused right part.
func marker(focus, left uint8, sep string) string {
	switch focus {
	case left:
		return selRight
	case left + 1:
		return selLeft
	}
	return sep
}

func pad00(n uint8) string {
	if n > 99 {
		panic(fmt.Sprintf("code error pad00 n=%d", n))
	}
	return fmt.Sprintf("%02d", n)
}

// Compile-time checks the closed set.
var (
	_ Property = (*PropertyTime)(nil)
	_ Property = (*PropertyDate)(nil)
	_ Property = (*PropertyInteger[uint8])(nil)
	_ Property = (*PropertyInteger[uint16])(nil)
	_ Property = (*PropertyBool)(nil)
	_ Property = (*PropertyAction)(nil)
)
