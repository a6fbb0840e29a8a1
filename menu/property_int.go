package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// Unsigned covers the 8 and 16 bit backing variables.
type Unsigned interface {
	~uint8 | ~uint16
}

// PropertyInteger edits a bounded number, wrapping at both limits.
type PropertyInteger[T Unsigned] struct {
	property
	v     *T
	min   T
	max   T
	step  T
	width int
}

// step 0 means 1.
func NewPropertyInteger[T Unsigned](name string, v *T, min, max, step T) *PropertyInteger[T] {
	if v == nil {
		panic("code error PropertyInteger var=nil name=" + name)
	}
	if min >= max {
		panic(fmt.Sprintf("code error PropertyInteger name=%s min=%d >= max=%d", name, min, max))
	}
	if step == 0 {
		step = 1
	}
	if step > max-min {
		panic(fmt.Sprintf("code error PropertyInteger name=%s step=%d exceeds range", name, step))
	}
	self := &PropertyInteger[T]{
		property: newProperty(name, 1),
		v:        v,
		min:      min,
		max:      max,
		step:     step,
		width:    digits(uint64(max)),
	}
	self.onEnter = func() { *self.v = clamp(*self.v, self.min, self.max) }
	return self
}

func (self *PropertyInteger[T]) Kind() Kind { return KindInteger }

// value digits plus two marker cells
func (self *PropertyInteger[T]) EditWidth() int { return self.width + 2 }

func (self *PropertyInteger[T]) Limits() (min, max T) { return self.min, self.max }

func (self *PropertyInteger[T]) PaintEdit(s Surface) {
	left, right := " ", " "
	if self.focus == 1 {
		left, right = selLeft, selRight
	}
	num := strconv.FormatUint(uint64(*self.v), 10)
	var b strings.Builder
	b.WriteString(left)
	if pad := self.width - len(num); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(num)
	b.WriteString(right)
	s.Print(b.String())
}

func (self *PropertyInteger[T]) ProcessEditInput(button Button) bool {
	self.mustEditing()
	switch button {
	case ButtonDown:
		*self.v = wrapDown(*self.v, self.min, self.max, self.step)
		return true
	case ButtonUp:
		*self.v = wrapUp(*self.v, self.min, self.max, self.step)
		return true
	case ButtonEnter:
		self.NextFocusPart()
		return true
	}
	return false
}

// digits returns display width for values up to max, 1..5 for 16 bit.
func digits(max uint64) int {
	n := 1
	for max >= 10 {
		max /= 10
		n++
	}
	return n
}

func clamp[T Unsigned](v, min, max T) T {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func wrapUp[T Unsigned](v, min, max, step T) T {
	if v >= max || max-v < step {
		return min
	}
	if v < min {
		return min
	}
	return v + step
}

func wrapDown[T Unsigned](v, min, max, step T) T {
	if v <= min || v-min < step {
		return max
	}
	if v > max {
		return max
	}
	return v - step
}
