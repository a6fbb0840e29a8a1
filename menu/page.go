package menu

import (
	"strconv"
	"unicode/utf8"
)

const DefaultParentLabel = ".."

const (
	cursorMark  = ">"
	cursorBlank = " "
	textCol     = 1
)

// Page is a full screen navigable unit.
type Page interface {
	Paint(s Surface)
	ButtonInput(b Button, s Surface) Nav
	// Show prepares page before it becomes active.
	// Nested pages reserve position 0 for the parent row,
	// cursor starts on the first real line.
	Show(nested bool)
	// Hide aborts any edit in progress.
	Hide()
}

type Option func(*ScrollablePage)

func ParentLabel(label string) Option {
	return func(self *ScrollablePage) { self.parentLabel = label }
}

type lineSource interface {
	paintLine(s Surface, line, row int)
	focusLine(s Surface, line, row int) Nav
}

// ScrollablePage is a vertical list with a viewport of surface rows.
// Position is topIndex+cursorRow, real line = position - offset,
// where offset is 1 on nested pages (parent row) and 0 on root.
type ScrollablePage struct {
	src         lineSource
	count       int
	top         int
	cursor      int
	nested      bool
	parentLabel string
}

func newScrollablePage(src lineSource, count int, opts []Option) ScrollablePage {
	if count <= 0 {
		panic("code error page empty lines count=" + strconv.Itoa(count))
	}
	self := ScrollablePage{
		src:         src,
		count:       count,
		parentLabel: DefaultParentLabel,
	}
	for _, opt := range opts {
		opt(&self)
	}
	return self
}

func (self *ScrollablePage) LineCount() int { return self.count }
func (self *ScrollablePage) TopIndex() int  { return self.top }
func (self *ScrollablePage) CursorRow() int { return self.cursor }
func (self *ScrollablePage) Nested() bool   { return self.nested }
func (self *ScrollablePage) Position() int  { return self.top + self.cursor }

// Line returns real line under cursor, -1 on parent row.
func (self *ScrollablePage) Line() int { return self.Position() - self.offset() }

func (self *ScrollablePage) offset() int {
	if self.nested {
		return 1
	}
	return 0
}

func (self *ScrollablePage) positions() int { return self.count + self.offset() }

func (self *ScrollablePage) Show(nested bool) {
	self.nested = nested
	self.top = 0
	self.cursor = self.offset()
}

func (self *ScrollablePage) Hide() {}

// fit keeps cursor inside viewport of given height.
func (self *ScrollablePage) fit(rows int) {
	if rows <= 0 {
		panic("code error surface rows=" + strconv.Itoa(rows))
	}
	if self.cursor >= rows {
		self.top += self.cursor - rows + 1
		self.cursor = rows - 1
	}
}

func (self *ScrollablePage) Paint(s Surface) {
	_, rows := s.Size()
	self.fit(rows)
	s.Clear()
	for row := 0; row < rows; row++ {
		pos := self.top + row
		if pos >= self.positions() {
			break
		}
		s.SetCursor(textCol, row)
		if pos < self.offset() {
			s.Print(self.parentLabel)
		} else {
			self.src.paintLine(s, pos-self.offset(), row)
		}
	}
	s.SetCursor(0, self.cursor)
	s.Print(cursorMark)
}

// ButtonInput handles browsing: cursor movement, scrolling and selection.
func (self *ScrollablePage) ButtonInput(b Button, s Surface) Nav {
	_, rows := s.Size()
	self.fit(rows)
	pos := self.Position()
	switch b {
	case ButtonEnter:
		if pos < self.offset() {
			return Nav{Kind: NavParent}
		}
		return self.src.focusLine(s, pos-self.offset(), self.cursor)

	case ButtonDown:
		if pos+1 >= self.positions() {
			return Nav{}
		}
		if self.cursor+1 < rows {
			self.moveCursor(s, self.cursor+1)
		} else {
			self.top++
			self.Paint(s)
		}

	case ButtonUp:
		if pos == 0 {
			return Nav{}
		}
		if self.cursor > 0 {
			self.moveCursor(s, self.cursor-1)
		} else {
			self.top--
			self.Paint(s)
		}
	}
	return Nav{}
}

func (self *ScrollablePage) moveCursor(s Surface, row int) {
	s.SetCursor(0, self.cursor)
	s.Print(cursorBlank)
	self.cursor = row
	s.SetCursor(0, self.cursor)
	s.Print(cursorMark)
}

// row returns viewport row of real line.
func (self *ScrollablePage) row(line int) int {
	return line + self.offset() - self.top
}

func textLen(s string) int { return utf8.RuneCountInString(s) }
