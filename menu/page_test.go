package menu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/lcdmenu/hardware/lcd"
)

func newGrid(t testing.TB, cols, rows int) *lcd.Grid {
	g, err := lcd.NewGrid(cols, rows, "")
	require.NoError(t, err)
	return g
}

func testItems(n int) []MenuItem {
	items := make([]MenuItem, n)
	for i := range items {
		v := false
		child := NewPropertyPage([]Property{NewPropertyBool("b", &v)}, nil)
		items[i] = MenuItem{Label: fmt.Sprintf("item%d", i), Page: child}
	}
	return items
}

func TestScrollDown(t *testing.T) {
	t.Parallel()

	const lines = 5
	g := newGrid(t, 8, 2)
	p := NewMenuItemPage(testItems(lines))
	p.Show(false)
	p.Paint(g)
	assert.Equal(t, ">item0  \n item1  ", g.String())

	for i := 1; i < lines; i++ {
		top, cursor := p.TopIndex(), p.CursorRow()
		nav := p.ButtonInput(ButtonDown, g)
		assert.Equal(t, NavNone, nav.Kind)
		assert.Equal(t, i, p.Position())
		movedCursor := p.CursorRow() != cursor
		scrolled := p.TopIndex() != top
		assert.True(t, movedCursor != scrolled, "exactly one of cursor move and scroll per press")
	}
	assert.Equal(t, 3, p.TopIndex())
	assert.Equal(t, 1, p.CursorRow())
	assert.Equal(t, " item3  \n>item4  ", g.String())

	p.ButtonInput(ButtonDown, g)
	p.ButtonInput(ButtonDown, g)
	assert.Equal(t, 4, p.Position(), "down on last line is no-op")
	assert.Equal(t, 3, p.TopIndex())

	for i := lines - 2; i >= 0; i-- {
		p.ButtonInput(ButtonUp, g)
		assert.Equal(t, i, p.Position())
	}
	assert.Equal(t, 0, p.TopIndex())
	assert.Equal(t, 0, p.CursorRow())
	p.ButtonInput(ButtonUp, g)
	assert.Equal(t, 0, p.Position(), "up on first line is no-op")
	assert.Equal(t, ">item0  \n item1  ", g.String())

	assert.Equal(t, NavNone, p.ButtonInput(ButtonNone, g).Kind)
	assert.Equal(t, 0, p.Position())
}

func TestScrollFitsSmallerSurface(t *testing.T) {
	t.Parallel()

	p := NewMenuItemPage(testItems(6))
	p.Show(false)
	big := newGrid(t, 8, 4)
	for i := 0; i < 3; i++ {
		p.ButtonInput(ButtonDown, big)
	}
	assert.Equal(t, 3, p.CursorRow())

	small := newGrid(t, 8, 2)
	p.Paint(small)
	assert.Equal(t, 3, p.Position())
	assert.Equal(t, 1, p.CursorRow())
	assert.Equal(t, 2, p.TopIndex())
	assert.Equal(t, " item2  \n>item3  ", small.String())
}

func TestMenuItemPage(t *testing.T) {
	t.Parallel()

	g := newGrid(t, 8, 2)
	items := testItems(3)
	p := NewMenuItemPage(items)
	assert.Len(t, p.Items(), 3)
	p.Show(false)
	p.Paint(g)
	p.ButtonInput(ButtonDown, g)
	assert.Equal(t, " item0  \n>item1  ", g.String())
	nav := p.ButtonInput(ButtonEnter, g)
	assert.Equal(t, NavChild, nav.Kind)
	assert.Equal(t, 1, nav.Index)
	assert.Equal(t, items[1].Page, nav.Page)

	assert.Panics(t, func() { NewMenuItemPage(nil) })
	assert.Panics(t, func() { NewMenuItemPage([]MenuItem{{Label: "x"}}) })
}

func TestNestedParentRow(t *testing.T) {
	t.Parallel()

	g := newGrid(t, 8, 2)
	p := NewMenuItemPage(testItems(2), ParentLabel("<-"))
	p.Show(true)
	assert.True(t, p.Nested())
	assert.Equal(t, 2, p.LineCount())
	assert.Equal(t, 1, p.Position())
	assert.Equal(t, 0, p.Line())
	p.Paint(g)
	assert.Equal(t, " <-     \n>item0  ", g.String())

	nav := p.ButtonInput(ButtonEnter, g)
	assert.Equal(t, NavChild, nav.Kind)
	assert.Equal(t, 0, nav.Index)

	p.ButtonInput(ButtonUp, g)
	assert.Equal(t, -1, p.Line())
	assert.Equal(t, "><-     \n item0  ", g.String())
	p.ButtonInput(ButtonUp, g)
	assert.Equal(t, 0, p.Position())
	nav = p.ButtonInput(ButtonEnter, g)
	assert.Equal(t, NavParent, nav.Kind)

	// same page shown as root has no parent row
	p.Show(false)
	p.Paint(g)
	assert.Equal(t, ">item0  \n item1  ", g.String())
}

func TestPropertyPage(t *testing.T) {
	t.Parallel()

	g := newGrid(t, 16, 2)
	id, active := uint8(3), false
	shows := 0
	p := NewPropertyPage([]Property{
		NewPropertyInteger("Id", &id, 0, 9, 1),
		NewPropertyBool("Active", &active),
	}, func() { shows++ })
	assert.Equal(t, 7, p.EditCol())
	assert.Len(t, p.Properties(), 2)

	p.Show(false)
	assert.Equal(t, 1, shows)
	p.Paint(g)
	assert.Equal(t, ">Id     3       \n Active Off     ", g.String())

	assert.Equal(t, NavNone, p.ButtonInput(ButtonEnter, g).Kind)
	line, editing := p.Editing()
	assert.True(t, editing)
	assert.Equal(t, 0, line)
	assert.Equal(t, ">Id    [3]      \n Active Off     ", g.String())

	// while editing buttons go to the property, cursor stays
	p.ButtonInput(ButtonDown, g)
	assert.Equal(t, uint8(2), id)
	assert.Equal(t, 0, p.Position())
	assert.Equal(t, ">Id    [2]      \n Active Off     ", g.String())
	p.ButtonInput(ButtonEnter, g)
	_, editing = p.Editing()
	assert.False(t, editing)
	assert.Equal(t, ">Id     2       \n Active Off     ", g.String())

	p.ButtonInput(ButtonDown, g)
	p.ButtonInput(ButtonEnter, g)
	p.ButtonInput(ButtonUp, g)
	assert.Equal(t, " Id     2       \n>Active[On ]    ", g.String())

	// hide aborts edit, value keeps last change
	p.Hide()
	_, editing = p.Editing()
	assert.False(t, editing)
	assert.Equal(t, 0, p.Properties()[1].FocusPart())
	assert.True(t, active)

	p.Show(false)
	assert.Equal(t, 2, shows)
	assert.Equal(t, 0, p.Position())
}

func TestPropertyPageEditColParentLabel(t *testing.T) {
	t.Parallel()

	v := false
	p := NewPropertyPage([]Property{NewPropertyBool("On", &v)}, nil, ParentLabel("back"))
	assert.Equal(t, 5, p.EditCol())

	g := newGrid(t, 12, 2)
	p.Show(true)
	p.Paint(g)
	assert.Equal(t, " back       \n>On   Off   ", g.String())
}

func TestPropertyPagePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewPropertyPage(nil, nil) })
	assert.Panics(t, func() { NewPropertyPage([]Property{nil}, nil) })
	assert.Panics(t, func() {
		p := NewMenuItemPage(testItems(1))
		p.Show(false)
		p.Paint(&textSurface{})
		p.fit(0)
	})
}
