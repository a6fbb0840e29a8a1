package input

import (
	"strings"

	"github.com/temoto/lcdmenu/menu"
)

const ConsoleTag = "console"

const (
	ConsoleKeyUp    Key = 'u'
	ConsoleKeyDown  Key = 'd'
	ConsoleKeyEnter Key = 'e'
)

var ConsoleKeymap = Keymap{
	ConsoleKeyUp:    menu.ButtonUp,
	ConsoleKeyDown:  menu.ButtonDown,
	ConsoleKeyEnter: menu.ButtonEnter,
}

var consoleWords = map[string]Key{
	"up":    ConsoleKeyUp,
	"down":  ConsoleKeyDown,
	"enter": ConsoleKeyEnter,
	"+":     ConsoleKeyUp,
	"-":     ConsoleKeyDown,
}

// ParseConsoleLine converts typed command into key presses.
// Empty line is enter, words up/down/enter, or letter sequence like "dde".
// Unknown letters are returned as keys too and map to no button.
func ParseConsoleLine(line string) []Event {
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return []Event{{Source: ConsoleTag, Key: ConsoleKeyEnter}}
	}
	if k, ok := consoleWords[line]; ok {
		return []Event{{Source: ConsoleTag, Key: k}}
	}
	events := make([]Event, 0, len(line))
	for _, r := range line {
		if r == ' ' {
			continue
		}
		events = append(events, Event{Source: ConsoleTag, Key: Key(r)})
	}
	return events
}
