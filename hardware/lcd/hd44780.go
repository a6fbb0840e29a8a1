package lcd

import (
	"sync"
	"time"

	"github.com/juju/errors"
)

type Command byte

const (
	CommandClear   Command = 0x01
	CommandReturn  Command = 0x02
	CommandControl Command = 0x08
	CommandAddress Command = 0x80
)

type Control byte

const (
	ControlOn         Control = 0x04
	ControlUnderscore Control = 0x02
	ControlBlink      Control = 0x01
)

const ddramWidth = 0x40

// Bus transfers 4 bit halves of HD44780 bytes.
type Bus interface {
	// Send4 latches low 4 bits of nibble, rs=false for command, true for data.
	Send4(rs bool, nibble byte) error
	Close() error
}

// LCD is HD44780 compatible controller in 4 bit mode.
type LCD struct {
	mu      sync.Mutex
	bus     Bus
	width   uint8
	rows    uint8
	control Control
	err     error
}

var _ Devicer = (*LCD)(nil)

func NewLCD(bus Bus, width, rows uint8, page1 bool) (*LCD, error) {
	if width == 0 || width > MaxWidth || rows == 0 || rows > MaxRows {
		return nil, errors.NotValidf("lcd size=%dx%d", width, rows)
	}
	self := &LCD{bus: bus, width: width, rows: rows}
	self.init4(page1)
	return self, self.Err()
}

func (self *LCD) init4(page1 bool) {
	time.Sleep(20 * time.Millisecond)

	// special sequence
	self.Command(0x33)
	self.Command(0x32)

	self.SetFunction(false, page1)
	self.SetControl(0) // off
	self.SetControl(ControlOn)
	self.Clear()
	self.SetEntryMode(true, false)
}

// Err returns first bus error, hardware writes after it are skipped.
func (self *LCD) Err() error {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.err
}

func (self *LCD) Close() error { return self.bus.Close() }

func (self *LCD) send(rs bool, b byte) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if self.err != nil {
		return
	}
	if err := self.bus.Send4(rs, b>>4); err != nil {
		self.err = errors.Annotate(err, "lcd send")
		return
	}
	if err := self.bus.Send4(rs, b&0x0f); err != nil {
		self.err = errors.Annotate(err, "lcd send")
		return
	}
	// TODO poll busy flag
	time.Sleep(40 * time.Microsecond)
}

func (self *LCD) Command(c Command) { self.send(false, byte(c)) }
func (self *LCD) Data(b byte)       { self.send(true, b) }

func (self *LCD) Write(bs []byte) {
	for _, b := range bs {
		self.Data(b)
	}
}

func (self *LCD) Clear() {
	self.Command(CommandClear)
	// TODO poll busy flag
	time.Sleep(2 * time.Millisecond)
}

func (self *LCD) Return() {
	self.Command(CommandReturn)
}

func (self *LCD) SetEntryMode(right, shift bool) {
	var cmd Command = 0x04
	if right {
		cmd |= 0x02
	}
	if shift {
		cmd |= 0x01
	}
	self.Command(cmd)
}

func (self *LCD) Control() Control {
	return self.control
}
func (self *LCD) SetControl(new Control) Control {
	old := self.control
	self.control = new
	self.Command(CommandControl | Command(new))
	return old
}

// page1 selects alternative character ROM on MT-16 and compatible.
func (self *LCD) SetFunction(bits8, page1 bool) {
	var cmd Command = 0x28
	if bits8 {
		cmd |= 0x10
	}
	if page1 {
		cmd |= 0x02
	}
	self.Command(cmd)
}

// Rows 3 and 4 continue lines 1 and 2 in DDRAM.
func (self *LCD) address(row, column uint8) byte {
	base := (row - 1) % 2 * ddramWidth
	if row > 2 {
		base += self.width
	}
	return base + (column - 1)
}

func (self *LCD) CursorYX(row uint8, column uint8) bool {
	if !(row > 0 && row <= self.rows) {
		return false
	}
	if !(column > 0 && column <= self.width) {
		return false
	}
	self.Command(CommandAddress | Command(self.address(row, column)))
	return true
}
