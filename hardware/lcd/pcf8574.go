package lcd

import (
	"io"

	"github.com/juju/errors"
	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
)

// Common LCD1602/2004 backpack wiring of PCF8574 port bits.
const (
	pcfRS        byte = 1 << 0
	pcfRW        byte = 1 << 1
	pcfE         byte = 1 << 2
	pcfBacklight byte = 1 << 3
)

const DefaultPcf8574Addr = 0x27

type txer interface {
	Tx(w, r []byte) error
}

// Pcf8574Bus drives HD44780 through I2C I/O expander backpack.
type Pcf8574Bus struct {
	dev       txer
	closer    io.Closer
	Backlight bool
}

var _ Bus = (*Pcf8574Bus)(nil)

// busName "" opens first available I2C bus.
func OpenPcf8574Bus(busName string, addr uint16) (*Pcf8574Bus, error) {
	if addr == 0 {
		addr = DefaultPcf8574Addr
	}
	if _, err := host.Init(); err != nil {
		return nil, errors.Annotate(err, "periph/init")
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, errors.Annotatef(err, "I2C open bus=%s", busName)
	}
	return &Pcf8574Bus{
		dev:       &i2c.Dev{Bus: bus, Addr: addr},
		closer:    bus,
		Backlight: true,
	}, nil
}

func (self *Pcf8574Bus) Close() error {
	if self.closer == nil {
		return nil
	}
	return self.closer.Close()
}

// Send4 writes nibble on P4-P7 with enable pulse high then low.
func (self *Pcf8574Bus) Send4(rs bool, nibble byte) error {
	b := (nibble & 0x0f) << 4
	if rs {
		b |= pcfRS
	}
	if self.Backlight {
		b |= pcfBacklight
	}
	return self.dev.Tx([]byte{b | pcfE, b}, nil)
}
