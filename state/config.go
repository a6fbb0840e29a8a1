package state

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/hcl"
	"github.com/juju/errors"
	"github.com/temoto/lcdmenu/hardware/lcd"
	"github.com/temoto/lcdmenu/helpers"
	"github.com/temoto/lcdmenu/log2"
)

const (
	DisplayMock    = "mock"
	DisplayConsole = "console"
	DisplayHD44780 = "hd44780"
	DisplayPcf8574 = "pcf8574"
)

type Config struct {
	// includeSeen contains absolute paths to prevent include loops
	includeSeen map[string]struct{}
	// only used for Unmarshal, do not access
	XXX_Include []ConfigSource `hcl:"include"`

	Hardware struct {
		Display DisplayConfig `hcl:"display"`
		Input   struct {
			DevInputEvent struct {
				Enable   bool   `hcl:"enable"`
				Device   string `hcl:"device"`
				KeyUp    int    `hcl:"key_up"`
				KeyDown  int    `hcl:"key_down"`
				KeyEnter int    `hcl:"key_enter"`
			} `hcl:"dev_input_event"`
		} `hcl:"input"`
	} `hcl:"hardware"`

	UI UIConfig `hcl:"ui"`

	Menu struct {
		Pages []PageConfig `hcl:"page"`
	} `hcl:"menu"`

	_copy_guard sync.Mutex //nolint:unused
}

type DisplayConfig struct { //nolint:maligned
	Driver   string `hcl:"driver"`
	Cols     int    `hcl:"cols"`
	Rows     int    `hcl:"rows"`
	Codepage string `hcl:"codepage"`
	HD44780  struct {
		PinChip string     `hcl:"pin_chip"`
		Pinmap  lcd.PinMap `hcl:"pinmap"`
		Page1   bool       `hcl:"page1"`
	} `hcl:"hd44780"`
	Pcf8574 struct {
		Bus   string `hcl:"bus"`
		Addr  int    `hcl:"addr"`
		Page1 bool   `hcl:"page1"`
	} `hcl:"pcf8574"`
}

// PageConfig is either menu (items) or property page.
type UIConfig struct {
	Root            string `hcl:"root"`
	ParentLabel     string `hcl:"parent_label"`
	ResetTimeoutSec int    `hcl:"reset_sec"`
	LogDebug        bool   `hcl:"log_debug"`
}

// ResetTimeout is idle period before menu returns to root, 0 disables reset.
func (self *UIConfig) ResetTimeout() time.Duration {
	if self.ResetTimeoutSec <= 0 {
		return 0
	}
	return time.Duration(self.ResetTimeoutSec) * time.Second
}

type PageConfig struct {
	Name       string           `hcl:"name,key"`
	BeforeShow string           `hcl:"before_show"`
	Items      []MenuItemConfig `hcl:"item"`
	Properties []PropertyConfig `hcl:"property"`
}

type MenuItemConfig struct {
	Label string `hcl:"label,key"`
	Page  string `hcl:"page"`
}

type PropertyConfig struct {
	Name   string `hcl:"name,key"`
	Kind   string `hcl:"kind"`
	Label  string `hcl:"label"`
	Min    int    `hcl:"min"`
	Max    int    `hcl:"max"`
	Step   int    `hcl:"step"`
	Bits   int    `hcl:"bits"`
	Value  string `hcl:"value"`
	Action string `hcl:"action"`
}

type ConfigSource struct {
	Name     string `hcl:"name,key"`
	Optional bool   `hcl:"optional"`
}

func (c *Config) Page(name string) *PageConfig {
	for i := range c.Menu.Pages {
		if c.Menu.Pages[i].Name == name {
			return &c.Menu.Pages[i]
		}
	}
	return nil
}

// applyDefaults fills zero values, returns validation errors.
func (c *Config) applyDefaults() []error {
	errs := make([]error, 0)
	d := &c.Hardware.Display
	if d.Driver == "" {
		d.Driver = DisplayMock
	}
	if d.Cols == 0 {
		d.Cols = 16
	}
	if d.Rows == 0 {
		d.Rows = 2
	}
	if d.Cols < 0 || d.Cols > lcd.MaxWidth {
		errs = append(errs, errors.NotValidf("config: hardware.display.cols=%d", d.Cols))
	}
	if d.Rows < 0 || d.Rows > lcd.MaxRows {
		errs = append(errs, errors.NotValidf("config: hardware.display.rows=%d", d.Rows))
	}
	if c.UI.ParentLabel == "" {
		c.UI.ParentLabel = ".."
	}
	if c.UI.ResetTimeoutSec < 0 {
		errs = append(errs, errors.NotValidf("config: ui.reset_sec=%d", c.UI.ResetTimeoutSec))
	}
	if c.UI.Root == "" && len(c.Menu.Pages) != 0 {
		c.UI.Root = c.Menu.Pages[0].Name
	}
	return errs
}

func (c *Config) read(log *log2.Log, fs FullReader, source ConfigSource, errs *[]error) {
	norm := fs.Normalize(source.Name)
	if _, ok := c.includeSeen[norm]; ok {
		log.Fatalf("config duplicate source=%s", source.Name)
	} else {
		log.Debugf("config reading source='%s' path=%s", source.Name, norm)
	}
	c.includeSeen[source.Name] = struct{}{}
	c.includeSeen[norm] = struct{}{}

	bs, err := fs.ReadAll(norm)
	if bs == nil && err == nil {
		if !source.Optional {
			err = errors.NotFoundf("config required name=%s path=%s", source.Name, norm)
			*errs = append(*errs, err)
		}
		return
	}
	if err != nil {
		*errs = append(*errs, errors.Annotatef(err, "config source=%s", source.Name))
		return
	}

	err = hcl.Unmarshal(bs, c)
	if err != nil {
		err = errors.Annotatef(err, "config unmarshal source=%s content='%s'", source.Name, string(bs))
		*errs = append(*errs, err)
		return
	}

	var includes []ConfigSource
	includes, c.XXX_Include = c.XXX_Include, nil
	for _, include := range includes {
		includeNorm := fs.Normalize(include.Name)
		if _, ok := c.includeSeen[includeNorm]; ok {
			err = errors.Errorf("config include loop: from=%s include=%s", source.Name, include.Name)
			*errs = append(*errs, err)
			continue
		}
		c.read(log, fs, include, errs)
	}
}

func ReadConfig(log *log2.Log, fs FullReader, names ...string) (*Config, error) {
	if len(names) == 0 {
		log.Fatal("code error [Must]ReadConfig() without names")
	}

	if osfs, ok := fs.(*OsFullReader); ok {
		dir, name := filepath.Split(names[0])
		osfs.SetBase(dir)
		names[0] = name
	}
	c := &Config{
		includeSeen: make(map[string]struct{}),
	}
	errs := make([]error, 0, 8)
	for _, name := range names {
		c.read(log, fs, ConfigSource{Name: name}, &errs)
	}
	errs = append(errs, c.applyDefaults()...)
	return c, helpers.FoldErrors(errs)
}

func MustReadConfig(log *log2.Log, fs FullReader, names ...string) *Config {
	c, err := ReadConfig(log, fs, names...)
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	return c
}
