package menu

const (
	boolTrue  = "On "
	boolFalse = "Off"
)

type PropertyBool struct {
	property
	v *bool
}

func NewPropertyBool(name string, v *bool) *PropertyBool {
	if v == nil {
		panic("code error PropertyBool var=nil name=" + name)
	}
	return &PropertyBool{property: newProperty(name, 1), v: v}
}

func (self *PropertyBool) Kind() Kind     { return KindBool }
func (self *PropertyBool) EditWidth() int { return len(boolTrue) + 2 }

func (self *PropertyBool) PaintEdit(s Surface) {
	text := boolFalse
	if *self.v {
		text = boolTrue
	}
	if self.focus == 1 {
		s.Print(selLeft + text + selRight)
	} else {
		s.Print(" " + text + " ")
	}
}

func (self *PropertyBool) ProcessEditInput(button Button) bool {
	self.mustEditing()
	switch button {
	case ButtonDown, ButtonUp:
		*self.v = !*self.v
		return true
	case ButtonEnter:
		self.NextFocusPart()
		return true
	}
	return false
}
