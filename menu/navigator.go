package menu

import (
	"fmt"

	"github.com/temoto/lcdmenu/log2"
)

// Navigator owns the stack of active pages and applies navigation results.
// Not safe for concurrent use, drive it from one loop.
type Navigator struct {
	Log     *log2.Log
	surface Surface
	stack   []Page
}

func NewNavigator(root Page, s Surface, log *log2.Log) *Navigator {
	if root == nil || s == nil {
		panic("code error NewNavigator root or surface is nil")
	}
	return &Navigator{
		Log:     log,
		surface: s,
		stack:   []Page{root},
	}
}

func (self *Navigator) Root() Page   { return self.stack[0] }
func (self *Navigator) Active() Page { return self.stack[len(self.stack)-1] }
func (self *Navigator) Depth() int   { return len(self.stack) }

// Start shows and paints root page.
func (self *Navigator) Start() {
	root := self.Root()
	root.Show(false)
	root.Paint(self.surface)
}

func (self *Navigator) Input(b Button) Nav {
	active := self.Active()
	nav := active.ButtonInput(b, self.surface)
	switch nav.Kind {
	case NavNone:

	case NavChild:
		if nav.Page == nil {
			panic(fmt.Sprintf("code error navigate child=nil index=%d", nav.Index))
		}
		self.stack = append(self.stack, nav.Page)
		self.Log.Debugf("menu descend index=%d depth=%d", nav.Index, len(self.stack))
		nav.Page.Show(true)
		nav.Page.Paint(self.surface)

	case NavParent:
		if len(self.stack) == 1 {
			self.Log.Errorf("menu parent requested on root page")
			return Nav{}
		}
		active.Hide()
		self.stack[len(self.stack)-1] = nil
		self.stack = self.stack[:len(self.stack)-1]
		self.Log.Debugf("menu return depth=%d", len(self.stack))
		self.Active().Paint(self.surface)

	default:
		panic("code error unknown nav kind=" + nav.Kind.String())
	}
	return nav
}

// Reset aborts edits on all stacked pages and returns to fresh root.
func (self *Navigator) Reset() {
	for i := len(self.stack) - 1; i >= 0; i-- {
		self.stack[i].Hide()
		if i > 0 {
			self.stack[i] = nil
		}
	}
	self.stack = self.stack[:1]
	self.Log.Debugf("menu reset")
	self.Start()
}
