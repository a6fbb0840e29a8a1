package menu

import "strconv"

const lineNone = -1

// PropertyPage lists properties with labels and values aligned in two columns.
// Browsing mode moves the cursor, Enter starts editing the line under cursor,
// then all input goes to that property until it leaves edit mode.
type PropertyPage struct {
	ScrollablePage
	props      []Property
	beforeShow func()
	editCol    int
	editLine   int
}

var _ Page = (*PropertyPage)(nil)

// beforeShow may be nil.
func NewPropertyPage(props []Property, beforeShow func(), opts ...Option) *PropertyPage {
	if len(props) == 0 {
		panic("code error PropertyPage without properties")
	}
	for i, p := range props {
		if p == nil {
			panic("code error PropertyPage property=nil index=" + strconv.Itoa(i))
		}
	}
	self := &PropertyPage{
		props:      props,
		beforeShow: beforeShow,
		editLine:   lineNone,
	}
	self.ScrollablePage = newScrollablePage(self, len(props), opts)
	maxLen := textLen(self.parentLabel)
	for _, p := range props {
		if l := textLen(p.Name()); l > maxLen {
			maxLen = l
		}
	}
	self.editCol = textCol + maxLen
	return self
}

func (self *PropertyPage) Properties() []Property { return self.props }
func (self *PropertyPage) EditCol() int           { return self.editCol }

// Editing returns index of property in edit mode.
func (self *PropertyPage) Editing() (int, bool) {
	return self.editLine, self.editLine != lineNone
}

func (self *PropertyPage) Show(nested bool) {
	self.Hide()
	if self.beforeShow != nil {
		self.beforeShow()
	}
	self.ScrollablePage.Show(nested)
}

func (self *PropertyPage) Hide() {
	if self.editLine == lineNone {
		return
	}
	self.props[self.editLine].base().exitEdit()
	self.editLine = lineNone
}

func (self *PropertyPage) ButtonInput(b Button, s Surface) Nav {
	if self.editLine == lineNone {
		return self.ScrollablePage.ButtonInput(b, s)
	}

	p := self.props[self.editLine]
	if p.ProcessEditInput(b) {
		s.SetCursor(self.editCol, self.row(self.editLine))
		p.PaintEdit(s)
	}
	if p.FocusPart() == 0 {
		self.editLine = lineNone
	}
	return Nav{}
}

func (self *PropertyPage) paintLine(s Surface, line, row int) {
	p := self.props[line]
	p.PaintLabel(s)
	s.SetCursor(self.editCol, row)
	p.PaintEdit(s)
}

func (self *PropertyPage) focusLine(s Surface, line, row int) Nav {
	if self.editLine != lineNone {
		panic("code error PropertyPage focusLine while editing")
	}
	p := self.props[line]
	p.EnterEdit()
	self.editLine = line
	s.SetCursor(self.editCol, row)
	p.PaintEdit(s)
	return Nav{}
}
