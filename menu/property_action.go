package menu

// PropertyAction runs a callback after explicit Y confirmation.
type PropertyAction struct {
	property
	callback  func()
	confirmed bool
}

func NewPropertyAction(name string, callback func()) *PropertyAction {
	if callback == nil {
		panic("code error PropertyAction callback=nil name=" + name)
	}
	self := &PropertyAction{property: newProperty(name, 1), callback: callback}
	self.onEnter = func() { self.confirmed = false }
	return self
}

func (self *PropertyAction) Kind() Kind      { return KindAction }
func (self *PropertyAction) EditWidth() int  { return 3 }
func (self *PropertyAction) Confirmed() bool { return self.confirmed }

// Outside edit mode the value region stays blank.
func (self *PropertyAction) PaintEdit(s Surface) {
	if self.focus == 0 {
		s.Print("   ")
		return
	}
	if self.confirmed {
		s.Print(selLeft + "Y" + selRight)
	} else {
		s.Print(selLeft + "N" + selRight)
	}
}

func (self *PropertyAction) ProcessEditInput(button Button) bool {
	self.mustEditing()
	switch button {
	case ButtonDown, ButtonUp:
		self.confirmed = !self.confirmed
		return true
	case ButtonEnter:
		if self.confirmed {
			self.callback()
		}
		self.NextFocusPart()
		return true
	}
	return false
}
