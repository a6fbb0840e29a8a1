package lcd

import (
	"strconv"
	"time"

	"github.com/juju/errors"
	gpio "github.com/temoto/gpio-cdev-go"
)

type PinMap struct {
	RS string `hcl:"rs"`
	RW string `hcl:"rw"`
	E  string `hcl:"e"`
	D4 string `hcl:"d4"`
	D5 string `hcl:"d5"`
	D6 string `hcl:"d6"`
	D7 string `hcl:"d7"`
}

// GpioBus drives HD44780 4 bit parallel interface via Linux GPIO character device.
type GpioBus struct {
	chip   gpio.Chiper
	lines  gpio.Lineser
	pin_rs gpio.LineSetFunc // command/data, aliases: A0, RS
	pin_rw gpio.LineSetFunc // read/write
	pin_e  gpio.LineSetFunc // enable
	pin_d4 gpio.LineSetFunc
	pin_d5 gpio.LineSetFunc
	pin_d6 gpio.LineSetFunc
	pin_d7 gpio.LineSetFunc
}

var _ Bus = (*GpioBus)(nil)

func OpenGpioBus(chipName string, pinmap PinMap) (*GpioBus, error) {
	names := []string{pinmap.RS, pinmap.RW, pinmap.E, pinmap.D4, pinmap.D5, pinmap.D6, pinmap.D7}
	nums := make([]uint32, len(names))
	for i, s := range names {
		x, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, errors.Annotatef(err, "lcd pinmap index=%d value='%s'", i, s)
		}
		nums[i] = uint32(x)
	}

	chip, err := gpio.Open(chipName, "lcd")
	if err != nil {
		return nil, errors.Annotatef(err, "lcd gpio open chip=%s", chipName)
	}
	lines, err := chip.OpenLines(gpio.GPIOHANDLE_REQUEST_OUTPUT, "lcd", nums...)
	if err != nil {
		chip.Close()
		return nil, errors.Annotatef(err, "lcd gpio lines=%v", nums)
	}
	self := &GpioBus{
		chip:   chip,
		lines:  lines,
		pin_rs: lines.SetFunc(nums[0]),
		pin_rw: lines.SetFunc(nums[1]),
		pin_e:  lines.SetFunc(nums[2]),
		pin_d4: lines.SetFunc(nums[3]),
		pin_d5: lines.SetFunc(nums[4]),
		pin_d6: lines.SetFunc(nums[5]),
		pin_d7: lines.SetFunc(nums[6]),
	}
	self.pin_rw(0)
	return self, nil
}

func (self *GpioBus) Close() error {
	err1 := self.lines.Close()
	err2 := self.chip.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

func bb(b, bit byte) byte {
	if b&(1<<bit) == 0 {
		return 0
	}
	return 1
}

func (self *GpioBus) Send4(rs bool, nibble byte) error {
	if rs {
		self.pin_rs(1)
	} else {
		self.pin_rs(0)
	}
	self.pin_d4(bb(nibble, 0))
	self.pin_d5(bb(nibble, 1))
	self.pin_d6(bb(nibble, 2))
	self.pin_d7(bb(nibble, 3))
	return self.blinkE()
}

func (self *GpioBus) blinkE() error {
	self.pin_e(1)
	if err := self.lines.Flush(); err != nil {
		return err
	}
	time.Sleep(1 * time.Microsecond)
	self.pin_e(0)
	if err := self.lines.Flush(); err != nil {
		return err
	}
	time.Sleep(1 * time.Microsecond)
	return nil
}
