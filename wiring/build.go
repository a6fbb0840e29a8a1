// Package wiring turns menu config into pages, properties and their backing values.
package wiring

import (
	"math"
	"strconv"

	"github.com/juju/errors"
	"github.com/temoto/lcdmenu/helpers"
	"github.com/temoto/lcdmenu/log2"
	"github.com/temoto/lcdmenu/menu"
	"github.com/temoto/lcdmenu/state"
)

// Actions maps config action names to callbacks.
type Actions map[string]func()

type Menu struct {
	Root   menu.Page
	Pages  map[string]menu.Page
	Values *Values
}

type builder struct {
	cfg     *state.Config
	actions Actions
	log     *log2.Log
	opts    []menu.Option
	values  *Values
	pages   map[string]menu.Page
	// pages on current build path, detects loops
	visiting map[string]bool
	errs     []error
}

// Build validates whole config and constructs page tree reachable from ui.root.
// Config mistakes are returned as errors, constructors are never reached with bad input.
func Build(cfg *state.Config, actions Actions, log *log2.Log) (*Menu, error) {
	b := &builder{
		cfg:      cfg,
		actions:  actions,
		log:      log,
		values:   NewValues(),
		pages:    make(map[string]menu.Page),
		visiting: make(map[string]bool),
	}
	if cfg.UI.ParentLabel != "" {
		b.opts = append(b.opts, menu.ParentLabel(cfg.UI.ParentLabel))
	}

	if cfg.UI.Root == "" {
		return nil, errors.NotValidf("menu: no pages")
	}
	root := b.page(cfg.UI.Root, "ui.root")
	if err := helpers.FoldErrors(b.errs); err != nil {
		return nil, err
	}
	for _, pc := range cfg.Menu.Pages {
		if _, ok := b.pages[pc.Name]; !ok {
			log.Infof("menu page=%s is not reachable from root=%s", pc.Name, cfg.UI.Root)
		}
	}
	log.Debugf("menu built pages=%d values=%d", len(b.pages), len(b.values.kinds))
	return &Menu{Root: root, Pages: b.pages, Values: b.values}, nil
}

func (b *builder) errorf(format string, args ...interface{}) {
	b.errs = append(b.errs, errors.Errorf(format, args...))
}

func (b *builder) fail(err error, format string, args ...interface{}) {
	b.errs = append(b.errs, errors.Annotatef(err, format, args...))
}

func (b *builder) action(name, where string) func() {
	if name == "" {
		return nil
	}
	f, ok := b.actions[name]
	if !ok || f == nil {
		b.fail(errors.NotFoundf("action=%s", name), "%s", where)
		return nil
	}
	return f
}

func (b *builder) page(name, from string) menu.Page {
	if p, ok := b.pages[name]; ok {
		return p
	}
	if b.visiting[name] {
		b.errorf("menu page loop: from=%s page=%s", from, name)
		return nil
	}
	pc := b.cfg.Page(name)
	if pc == nil {
		b.fail(errors.NotFoundf("page=%s", name), "%s", from)
		return nil
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	where := "page=" + name
	var p menu.Page
	switch {
	case len(pc.Items) != 0 && len(pc.Properties) != 0:
		b.errorf("%s mixes item and property", where)
	case len(pc.Items) != 0:
		if pc.BeforeShow != "" {
			b.errorf("%s before_show only applies to property page", where)
		}
		p = b.menuItemPage(pc, where)
	case len(pc.Properties) != 0:
		p = b.propertyPage(pc, where)
	default:
		b.errorf("%s is empty", where)
	}
	if p != nil {
		b.pages[name] = p
	}
	return p
}

func (b *builder) menuItemPage(pc *state.PageConfig, where string) menu.Page {
	items := make([]menu.MenuItem, 0, len(pc.Items))
	ok := true
	for _, ic := range pc.Items {
		if ic.Page == "" {
			b.errorf("%s item=%s page is required", where, ic.Label)
			ok = false
			continue
		}
		child := b.page(ic.Page, where+" item="+ic.Label)
		if child == nil {
			ok = false
			continue
		}
		items = append(items, menu.MenuItem{Label: ic.Label, Page: child})
	}
	if !ok {
		return nil
	}
	return menu.NewMenuItemPage(items, b.opts...)
}

func (b *builder) propertyPage(pc *state.PageConfig, where string) menu.Page {
	beforeShow := b.action(pc.BeforeShow, where+" before_show")
	props := make([]menu.Property, 0, len(pc.Properties))
	ok := true
	for i := range pc.Properties {
		prop := b.property(&pc.Properties[i], where+" property="+pc.Properties[i].Name)
		if prop == nil {
			ok = false
			continue
		}
		props = append(props, prop)
	}
	if !ok {
		return nil
	}
	return menu.NewPropertyPage(props, beforeShow, b.opts...)
}

func (b *builder) property(pc *state.PropertyConfig, where string) menu.Property {
	label := pc.Label
	if label == "" {
		label = pc.Name
	}
	switch pc.Kind {
	case menu.KindTime.String():
		if pc.Step < 0 || pc.Step >= 60 {
			b.errorf("%s step=%d (0..59)", where, pc.Step)
			return nil
		}
		v, err := ParseTime(pc.Value)
		if err != nil {
			b.fail(err, "%s", where)
			return nil
		}
		p := b.timeVar(pc.Name, v, where)
		if p == nil {
			return nil
		}
		return menu.NewPropertyTime(label, p, uint8(pc.Step))

	case menu.KindDate.String():
		v, err := ParseDate(pc.Value)
		if err != nil {
			b.fail(err, "%s", where)
			return nil
		}
		p := b.dateVar(pc.Name, v, where)
		if p == nil {
			return nil
		}
		return menu.NewPropertyDate(label, p)

	case menu.KindInteger.String():
		return b.integer(pc, label, where)

	case menu.KindBool.String():
		v := false
		if pc.Value != "" {
			var err error
			if v, err = strconv.ParseBool(pc.Value); err != nil {
				b.fail(errors.NotValidf("bool=%q", pc.Value), "%s", where)
				return nil
			}
		}
		if _, err := b.values.claim(pc.Name, menu.KindBool); err != nil {
			b.fail(err, "%s", where)
			return nil
		}
		p, ok := b.values.bools[pc.Name]
		if !ok {
			p = new(bool)
			*p = v
			b.values.bools[pc.Name] = p
		}
		return menu.NewPropertyBool(label, p)

	case menu.KindAction.String():
		if pc.Action == "" {
			b.errorf("%s action is required", where)
			return nil
		}
		f := b.action(pc.Action, where)
		if f == nil {
			return nil
		}
		if _, err := b.values.claim(pc.Name, menu.KindAction); err != nil {
			b.fail(err, "%s", where)
			return nil
		}
		return menu.NewPropertyAction(label, f)

	default:
		b.errorf("%s kind=%q (time|date|int|bool|action)", where, pc.Kind)
		return nil
	}
}

func (b *builder) timeVar(name string, v menu.Time, where string) *menu.Time {
	if _, err := b.values.claim(name, menu.KindTime); err != nil {
		b.fail(err, "%s", where)
		return nil
	}
	p, ok := b.values.times[name]
	if !ok {
		p = new(menu.Time)
		*p = v
		b.values.times[name] = p
	}
	return p
}

func (b *builder) dateVar(name string, v menu.Date, where string) *menu.Date {
	if _, err := b.values.claim(name, menu.KindDate); err != nil {
		b.fail(err, "%s", where)
		return nil
	}
	p, ok := b.values.dates[name]
	if !ok {
		p = new(menu.Date)
		*p = v
		b.values.dates[name] = p
	}
	return p
}

// integer picks storage width by bits or max, 8 bit when max fits.
func (b *builder) integer(pc *state.PropertyConfig, label, where string) menu.Property {
	bits := pc.Bits
	if bits == 0 {
		bits = 8
		if pc.Max > math.MaxUint8 {
			bits = 16
		}
	}
	var limit int
	switch bits {
	case 8:
		limit = math.MaxUint8
	case 16:
		limit = math.MaxUint16
	default:
		b.errorf("%s bits=%d (8|16)", where, bits)
		return nil
	}
	step := pc.Step
	if step == 0 {
		step = 1
	}
	if pc.Min < 0 || pc.Max > limit || pc.Min >= pc.Max {
		b.errorf("%s range min=%d max=%d (0..%d, min<max)", where, pc.Min, pc.Max, limit)
		return nil
	}
	if step < 0 || step > pc.Max-pc.Min {
		b.errorf("%s step=%d (1..%d)", where, step, pc.Max-pc.Min)
		return nil
	}
	v := pc.Min
	if pc.Value != "" {
		x, err := strconv.ParseUint(pc.Value, 10, bits)
		if err != nil {
			b.fail(errors.NotValidf("int=%q", pc.Value), "%s", where)
			return nil
		}
		v = int(x)
	}

	fresh, err := b.values.claim(pc.Name, menu.KindInteger)
	if err != nil {
		b.fail(err, "%s", where)
		return nil
	}
	switch bits {
	case 8:
		p, ok := b.values.u8[pc.Name]
		if !ok {
			if !fresh {
				b.errorf("%s bits=8 conflicts with other property of same name", where)
				return nil
			}
			p = new(uint8)
			*p = uint8(v)
			b.values.u8[pc.Name] = p
		}
		return menu.NewPropertyInteger(label, p, uint8(pc.Min), uint8(pc.Max), uint8(step))
	default:
		p, ok := b.values.u16[pc.Name]
		if !ok {
			if !fresh {
				b.errorf("%s bits=16 conflicts with other property of same name", where)
				return nil
			}
			p = new(uint16)
			*p = uint16(v)
			b.values.u16[pc.Name] = p
		}
		return menu.NewPropertyInteger(label, p, uint16(pc.Min), uint16(pc.Max), uint16(step))
	}
}
