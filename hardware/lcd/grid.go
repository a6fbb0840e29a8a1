package lcd

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/juju/errors"
	"github.com/paulrosania/go-charset/charset"
	_ "github.com/paulrosania/go-charset/data"
)

const MaxWidth = 40
const MaxRows = 4

var spaceBytes = bytes.Repeat([]byte{' '}, MaxWidth)

// Devicer is character display hardware. Coordinates are 1-based.
type Devicer interface {
	Clear()
	CursorYX(y, x uint8) bool
	Write(b []byte)
}

// Syncer is optionally implemented by Devicer to present
// accumulated writes after each Flush.
type Syncer interface {
	Sync()
}

// Grid is in-memory character cells, translated to display codepage.
// Writes past right edge are dropped. Flush sends modified rows to device.
type Grid struct {
	cols  int
	rows  int
	cells [MaxRows][MaxWidth]byte
	dirty [MaxRows]bool
	col   int
	row   int
	tr    charset.Translator
}

func NewGrid(cols, rows int, codepage string) (*Grid, error) {
	if cols <= 0 || cols > MaxWidth {
		return nil, errors.NotValidf("display cols=%d (1..%d)", cols, MaxWidth)
	}
	if rows <= 0 || rows > MaxRows {
		return nil, errors.NotValidf("display rows=%d (1..%d)", rows, MaxRows)
	}
	self := &Grid{cols: cols, rows: rows}
	if codepage != "" {
		tr, err := charset.TranslatorTo(codepage)
		if err != nil {
			return nil, errors.Annotatef(err, "display codepage=%s", codepage)
		}
		self.tr = tr
	}
	self.Clear()
	return self, nil
}

func (self *Grid) Size() (cols, rows int) { return self.cols, self.rows }

func (self *Grid) Clear() {
	for r := 0; r < self.rows; r++ {
		copy(self.cells[r][:self.cols], spaceBytes)
		self.dirty[r] = true
	}
	self.col, self.row = 0, 0
}

// SetCursor accepts col past right edge, following Print is dropped.
func (self *Grid) SetCursor(col, row int) {
	if col < 0 || row < 0 || row >= self.rows {
		panic(fmt.Sprintf("code error display cursor col=%d row=%d size=%dx%d", col, row, self.cols, self.rows))
	}
	self.col, self.row = col, row
}

func (self *Grid) Print(s string) {
	b := self.Translate(s)
	if self.col < self.cols {
		n := copy(self.cells[self.row][self.col:self.cols], b)
		if n > 0 {
			self.dirty[self.row] = true
		}
	}
	self.col += len(b)
}

// Translate converts UTF-8 to one byte per cell.
// Without codepage non-ASCII runes become '?'.
func (self *Grid) Translate(s string) []byte {
	if self.tr != nil {
		_, tb, err := self.tr.Translate([]byte(s), true)
		if err != nil {
			panic(errors.Annotatef(err, "code error display translate s=%q", s))
		}
		// translator reuses single internal buffer, make a copy
		return append([]byte(nil), tb...)
	}
	result := make([]byte, 0, len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			result = append(result, byte(r))
		} else {
			result = append(result, '?')
		}
	}
	return result
}

// Line returns raw bytes of row.
func (self *Grid) Line(row int) []byte {
	return append([]byte(nil), self.cells[row][:self.cols]...)
}

func (self *Grid) String() string {
	buf := bytes.NewBuffer(make([]byte, 0, (self.cols+1)*self.rows))
	for r := 0; r < self.rows; r++ {
		if r > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(self.cells[r][:self.cols])
	}
	return buf.String()
}

// Flush rewrites modified rows without clear, looks smoother on hardware.
func (self *Grid) Flush(dev Devicer) {
	for r := 0; r < self.rows; r++ {
		if !self.dirty[r] {
			continue
		}
		if dev.CursorYX(uint8(r+1), 1) {
			dev.Write(self.Line(r))
		}
		self.dirty[r] = false
	}
	if s, ok := dev.(Syncer); ok {
		s.Sync()
	}
}
