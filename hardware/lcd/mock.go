package lcd

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

type MockDevicer struct {
	mu     sync.Mutex
	lines  [MaxRows][]byte
	y, x   uint8
	writes int
}

var _ Devicer = (*MockDevicer)(nil)

// NewMockGrid returns display surface attached to mock device.
func NewMockGrid(cols, rows int) (*Grid, *MockDevicer) {
	g, err := NewGrid(cols, rows, "")
	if err != nil {
		panic(err)
	}
	return g, new(MockDevicer)
}

func (self *MockDevicer) Clear() {
	self.mu.Lock()
	defer self.mu.Unlock()
	for i := range self.lines {
		self.lines[i] = nil
	}
}

func (self *MockDevicer) CursorYX(y, x uint8) bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	if y == 0 || y > MaxRows || x == 0 {
		return false
	}
	self.y, self.x = y, x
	return true
}

func (self *MockDevicer) Write(b []byte) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.writes++
	if self.y == 0 {
		return
	}
	line := self.lines[self.y-1]
	end := int(self.x-1) + len(b)
	if len(line) < end {
		line = append(line, bytes.Repeat([]byte{' '}, end-len(line))...)
	}
	copy(line[self.x-1:], b)
	self.lines[self.y-1] = line
	self.x += uint8(len(b))
}

// Writes counts Write calls, used to check partial updates.
func (self *MockDevicer) Writes() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.writes
}

func (self *MockDevicer) Line(y int) string {
	self.mu.Lock()
	defer self.mu.Unlock()
	return string(self.lines[y-1])
}

func (self *MockDevicer) String() string {
	self.mu.Lock()
	defer self.mu.Unlock()
	n := 0
	for i, l := range self.lines {
		if l != nil {
			n = i + 1
		}
	}
	ss := make([][]byte, n)
	for i := 0; i < n; i++ {
		ss[i] = self.lines[i]
	}
	return string(bytes.Join(ss, []byte{'\n'}))
}

// ConsoleDevicer draws framed display contents into w after every flush.
// Substitutes LCD hardware during development.
type ConsoleDevicer struct {
	MockDevicer
	w    io.Writer
	cols int
	rows int
}

var _ Syncer = (*ConsoleDevicer)(nil)

func NewConsoleDevicer(w io.Writer, cols, rows int) *ConsoleDevicer {
	return &ConsoleDevicer{w: w, cols: cols, rows: rows}
}

func (self *ConsoleDevicer) Sync() {
	fmt.Fprint(self.w, FormatFrame(self.String(), self.cols, self.rows))
}

// FormatFrame boxes display text, each line padded to cols.
func FormatFrame(text string, cols, rows int) string {
	border := "+" + string(bytes.Repeat([]byte{'-'}, cols)) + "+\n"
	lines := bytes.Split([]byte(text), []byte{'\n'})
	buf := bytes.NewBufferString(border)
	for r := 0; r < rows; r++ {
		var line []byte
		if r < len(lines) {
			line = lines[r]
		}
		if len(line) > cols {
			line = line[:cols]
		}
		buf.WriteByte('|')
		buf.Write(line)
		buf.Write(spaceBytes[:cols-len(line)])
		buf.WriteString("|\n")
	}
	buf.WriteString(border)
	return buf.String()
}
