package menu

import "strconv"

type MenuItem struct {
	Label string
	Page  Page
}

// MenuItemPage links to sub-pages. Items are not editable,
// Enter on a line immediately reports NavChild.
type MenuItemPage struct {
	ScrollablePage
	items []MenuItem
}

var _ Page = (*MenuItemPage)(nil)

func NewMenuItemPage(items []MenuItem, opts ...Option) *MenuItemPage {
	if len(items) == 0 {
		panic("code error MenuItemPage without items")
	}
	for i, item := range items {
		if item.Page == nil {
			panic("code error MenuItemPage page=nil index=" + strconv.Itoa(i) + " label=" + item.Label)
		}
	}
	self := &MenuItemPage{items: items}
	self.ScrollablePage = newScrollablePage(self, len(items), opts)
	return self
}

func (self *MenuItemPage) Items() []MenuItem { return self.items }

func (self *MenuItemPage) paintLine(s Surface, line, row int) {
	s.Print(self.items[line].Label)
}

func (self *MenuItemPage) focusLine(s Surface, line, row int) Nav {
	return Nav{Kind: NavChild, Index: line, Page: self.items[line].Page}
}
