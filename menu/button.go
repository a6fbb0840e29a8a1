package menu

import "fmt"

type Button uint8

const (
	ButtonNone Button = iota
	ButtonDown        // decrement value, move cursor to next line
	ButtonUp          // increment value, move cursor to previous line
	ButtonEnter       // confirm
)

func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonDown:
		return "down"
	case ButtonUp:
		return "up"
	case ButtonEnter:
		return "enter"
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

type NavKind uint8

const (
	NavNone   NavKind = iota
	NavParent         // leave current page
	NavChild          // descend into Nav.Page
)

func (k NavKind) String() string {
	switch k {
	case NavNone:
		return "None"
	case NavParent:
		return "Parent"
	case NavChild:
		return "Child"
	}
	return fmt.Sprintf("NavKind(%d)", uint8(k))
}

// Nav is the result of a button press on a page.
type Nav struct {
	Kind  NavKind
	Index int // line index for NavChild
	Page  Page
}
