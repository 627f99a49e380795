package bus

import (
	"fmt"

	"github.com/davecheney/i2c"
	"github.com/pkg/errors"
)

// Default device addresses. The CSB pin selects between the two.
const (
	DefaultAddr = 0x1a
	AltAddr     = 0x1b
)

// Conn is the write primitive the codec layer runs on. The WM8960
// control port is write-only, so there is no read counterpart.
type Conn interface {
	WriteRegister(reg uint8, value uint16) error
	Close() error
}

// Frame packs a register address and a 9-bit value into the two-byte
// control word the chip expects: the 7-bit address, the value MSB as
// bit 0 of the first byte, then the low 8 bits.
func Frame(reg uint8, value uint16) [2]byte {
	return [2]byte{
		byte((reg&0x7F)<<1) | byte((value>>8)&0x1),
		byte(value & 0xFF),
	}
}

// I2CConn talks to /dev/i2c-N.
type I2CConn struct {
	dev  *i2c.I2C
	bus  int
	addr uint8
}

func Open(busNumber int, addr uint8) (*I2CConn, error) {
	dev, err := i2c.New(addr, busNumber)
	if err != nil {
		return nil, errors.Wrapf(err, "opening /dev/i2c-%d @ 0x%02x", busNumber, addr)
	}
	return &I2CConn{dev: dev, bus: busNumber, addr: addr}, nil
}

func (c *I2CConn) WriteRegister(reg uint8, value uint16) error {
	frame := Frame(reg, value)
	if _, err := c.dev.Write(frame[:]); err != nil {
		return errors.Wrapf(err, "writing 0x%03x to register 0x%02x", value, reg)
	}
	return nil
}

func (c *I2CConn) Close() error {
	return c.dev.Close()
}

func (c *I2CConn) String() string {
	return fmt.Sprintf("/dev/i2c-%d @ 0x%02x", c.bus, c.addr)
}

// RegWrite is one recorded register write.
type RegWrite struct {
	Reg   uint8
	Value uint16
}

// Recorder captures writes instead of performing them. Used for
// -dry-run and for tests.
type Recorder struct {
	Writes []RegWrite
	Echo   bool // Print each frame as it is recorded
}

func (r *Recorder) WriteRegister(reg uint8, value uint16) error {
	r.Writes = append(r.Writes, RegWrite{Reg: reg, Value: value})
	if r.Echo {
		frame := Frame(reg, value)
		fmt.Printf("  0x%02x <- 0x%03x  [% x]\n", reg, value, frame[:])
	}
	return nil
}

func (r *Recorder) Close() error {
	return nil
}
