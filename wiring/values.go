package wiring

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/temoto/lcdmenu/menu"
)

// Values owns backing storage of all properties.
// Pointers stay valid for the life of the table.
type Values struct {
	kinds map[string]menu.Kind
	times map[string]*menu.Time
	dates map[string]*menu.Date
	u8    map[string]*uint8
	u16   map[string]*uint16
	bools map[string]*bool
}

func NewValues() *Values {
	return &Values{
		kinds: make(map[string]menu.Kind),
		times: make(map[string]*menu.Time),
		dates: make(map[string]*menu.Date),
		u8:    make(map[string]*uint8),
		u16:   make(map[string]*uint16),
		bools: make(map[string]*bool),
	}
}

func (self *Values) Names() []string {
	ns := make([]string, 0, len(self.kinds))
	for n := range self.kinds {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

func (self *Values) Kind(name string) (menu.Kind, bool) {
	k, ok := self.kinds[name]
	return k, ok
}

func (self *Values) Time(name string) *menu.Time { return self.times[name] }
func (self *Values) Date(name string) *menu.Date { return self.dates[name] }
func (self *Values) Bool(name string) *bool      { return self.bools[name] }

// Uint returns integer value regardless of storage width.
func (self *Values) Uint(name string) (uint16, bool) {
	if p, ok := self.u8[name]; ok {
		return uint16(*p), true
	}
	if p, ok := self.u16[name]; ok {
		return *p, true
	}
	return 0, false
}

// SetUint stores v, caller is responsible for range.
func (self *Values) SetUint(name string, v uint16) bool {
	if p, ok := self.u8[name]; ok {
		*p = uint8(v)
		return true
	}
	if p, ok := self.u16[name]; ok {
		*p = v
		return true
	}
	return false
}

// Format renders value for logs and console, "" if name is unknown.
func (self *Values) Format(name string) string {
	k, ok := self.kinds[name]
	if !ok {
		return ""
	}
	switch k {
	case menu.KindTime:
		return FormatTime(*self.times[name])
	case menu.KindDate:
		return FormatDate(*self.dates[name])
	case menu.KindInteger:
		v, _ := self.Uint(name)
		return strconv.FormatUint(uint64(v), 10)
	case menu.KindBool:
		return strconv.FormatBool(*self.bools[name])
	}
	return ""
}

func (self *Values) String() string {
	names := self.Names()
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if self.kinds[n] == menu.KindAction {
			continue
		}
		parts = append(parts, n+"="+self.Format(n))
	}
	return strings.Join(parts, " ")
}

// Snapshot returns formatted copy of all values except actions.
func (self *Values) Snapshot() map[string]string {
	m := make(map[string]string, len(self.kinds))
	for n, k := range self.kinds {
		if k != menu.KindAction {
			m[n] = self.Format(n)
		}
	}
	return m
}

// claim registers name with kind, same name may back properties on several pages.
func (self *Values) claim(name string, kind menu.Kind) (bool, error) {
	if k, ok := self.kinds[name]; ok {
		if k != kind {
			return false, errors.NotValidf("property=%s kind=%s already used as kind=%s", name, kind, k)
		}
		return false, nil
	}
	self.kinds[name] = kind
	return true, nil
}

// ParseTime accepts "HH:MM".
func ParseTime(s string) (menu.Time, error) {
	var t menu.Time
	if s == "" {
		return t, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return t, errors.NotValidf("time=%q (HH:MM)", s)
	}
	h, err1 := strconv.ParseUint(parts[0], 10, 8)
	m, err2 := strconv.ParseUint(parts[1], 10, 8)
	if err1 != nil || err2 != nil || h > 23 || m > 59 {
		return t, errors.NotValidf("time=%q (HH:MM)", s)
	}
	t.Hour, t.Minute = uint8(h), uint8(m)
	return t, nil
}

func FormatTime(t menu.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseDate accepts "DD.MM.YY", year is offset from menu.DateBaseYear.
func ParseDate(s string) (menu.Date, error) {
	d := menu.Date{Day: 1, Month: 1}
	if s == "" {
		return d, nil
	}
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return d, errors.NotValidf("date=%q (DD.MM.YY)", s)
	}
	day, err1 := strconv.ParseUint(parts[0], 10, 8)
	month, err2 := strconv.ParseUint(parts[1], 10, 8)
	year, err3 := strconv.ParseUint(parts[2], 10, 8)
	if err1 != nil || err2 != nil || err3 != nil ||
		day < 1 || day > 31 || month < 1 || month > 12 || year > 99 {
		return d, errors.NotValidf("date=%q (DD.MM.YY)", s)
	}
	d.Day, d.Month, d.Year = uint8(day), uint8(month), uint8(year)
	return d, nil
}

func FormatDate(d menu.Date) string {
	return fmt.Sprintf("%02d.%02d.%02d", d.Day, d.Month, d.Year)
}
