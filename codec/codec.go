package codec

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/grolsen/wm8960ctl/base"
	"github.com/grolsen/wm8960ctl/bus"
	"github.com/grolsen/wm8960ctl/settings"
)

type Channel int

const (
	Left Channel = iota
	Right
	Both
)

// Device drives one WM8960 through a bus.Conn, keeping the shadow
// State in step with every write.
type Device struct {
	Conn  bus.Conn
	State *State
}

func NewDevice(conn bus.Conn) *Device {
	return &Device{
		Conn:  conn,
		State: NewState(),
	}
}

// WriteRegister pushes the staged value for 'addr' to the chip.
func (d *Device) WriteRegister(addr uint8) error {
	reg := d.State.Get(addr)
	if reg == nil {
		return fmt.Errorf("no such register: 0x%02x", addr)
	}

	if err := d.Conn.WriteRegister(addr, reg.Value); err != nil {
		return errors.Wrapf(err, "register %s", base.RegisterName(addr))
	}

	d.State.Dirty[addr] = false
	d.State.Written[addr] = true

	if settings.PrintDebug {
		fmt.Printf("  %s (0x%02x) <- 0x%03x\n",
			base.RegisterName(addr), addr, reg.Value)
	}
	return nil
}

// WriteValue stages a value and writes it in one go.
func (d *Device) WriteValue(addr uint8, value uint16) error {
	d.State.Set(addr, value)
	return d.WriteRegister(addr)
}

// WriteAll pushes every register in the table, lowest address first.
func (d *Device) WriteAll() error {
	for addr := uint8(0); addr < base.NUM_REGISTERS; addr++ {
		if _, ok := base.Registers[addr]; !ok {
			continue
		}
		if err := d.WriteRegister(addr); err != nil {
			return err
		}
	}
	return nil
}

// Reset writes the reset register and reloads the shadow bank with the
// power-on defaults.
func (d *Device) Reset() error {
	if err := d.Conn.WriteRegister(base.REG_RESET, 0); err != nil {
		return errors.Wrap(err, "reset")
	}
	d.State = NewState()
	return nil
}

func inVolAddrs(ch Channel) []uint8 {
	switch ch {
	case Left:
		return []uint8{base.REG_LEFT_IN_VOL}
	case Right:
		return []uint8{base.REG_RIGHT_IN_VOL}
	default:
		return []uint8{base.REG_LEFT_IN_VOL, base.REG_RIGHT_IN_VOL}
	}
}

// SetInputVolumeDB sets the input PGA gain. The volume code is staged
// into every selected channel first, then written; when latching is on
// the last write carries IPVU so both channels take effect together.
func (d *Device) SetInputVolumeDB(ch Channel, db float64) error {
	code := InputVolFromDB(db)
	addrs := inVolAddrs(ch)

	for _, addr := range addrs {
		reg := d.State.Get(addr)
		reg.ClearBits(base.IN_VOL_IPVU)
		reg.SetField(base.Field{Name: "INVOL",
			Mask: base.IN_VOL_INVOL_MASK, Shift: base.IN_VOL_INVOL_SHIFT}, code)
		d.State.Dirty[addr] = true
	}

	for i, addr := range addrs {
		if settings.LatchVolumes && i == len(addrs)-1 {
			d.State.Get(addr).SetBits(base.IN_VOL_IPVU)
		}
		if err := d.WriteRegister(addr); err != nil {
			return err
		}
	}
	return nil
}

// MuteInput clears INMUTE (0 = muted on this part) on the selected
// channels.
func (d *Device) MuteInput(ch Channel) error {
	return d.setInputFlag(ch, base.IN_VOL_INMUTE, false)
}

func (d *Device) UnmuteInput(ch Channel) error {
	return d.setInputFlag(ch, base.IN_VOL_INMUTE, true)
}

// SetZeroCross makes gain changes wait for a zero crossing instead of
// applying immediately.
func (d *Device) SetZeroCross(ch Channel, on bool) error {
	return d.setInputFlag(ch, base.IN_VOL_IZC, on)
}

func (d *Device) setInputFlag(ch Channel, mask uint16, on bool) error {
	addrs := inVolAddrs(ch)
	for i, addr := range addrs {
		reg := d.State.Get(addr)
		if on {
			reg.SetBits(mask)
		} else {
			reg.ClearBits(mask)
		}
		reg.ClearBits(base.IN_VOL_IPVU)
		if settings.LatchVolumes && i == len(addrs)-1 {
			reg.SetBits(base.IN_VOL_IPVU)
		}
		d.State.Dirty[addr] = true
		if err := d.WriteRegister(addr); err != nil {
			return err
		}
	}
	return nil
}

// SetHeadphoneVolumeDB sets LOUT1/ROUT1 gain (-73..+6 dB).
func (d *Device) SetHeadphoneVolumeDB(ch Channel, db float64) error {
	code := OUT1VolFromDB(db)

	var addrs []uint8
	switch ch {
	case Left:
		addrs = []uint8{base.REG_LOUT1_VOL}
	case Right:
		addrs = []uint8{base.REG_ROUT1_VOL}
	default:
		addrs = []uint8{base.REG_LOUT1_VOL, base.REG_ROUT1_VOL}
	}

	for i, addr := range addrs {
		reg := d.State.Get(addr)
		reg.ClearBits(base.OUT1_VU)
		reg.SetField(base.Field{Name: "OUT1VOL", Mask: base.OUT1_VOL_MASK}, code)
		if settings.LatchVolumes && i == len(addrs)-1 {
			reg.SetBits(base.OUT1_VU)
		}
		d.State.Dirty[addr] = true
		if err := d.WriteRegister(addr); err != nil {
			return err
		}
	}
	return nil
}

// SetDACVolumeDB sets the DAC digital gain (-127..0 dB).
func (d *Device) SetDACVolumeDB(ch Channel, db float64) error {
	code := DACVolFromDB(db)

	var addrs []uint8
	switch ch {
	case Left:
		addrs = []uint8{base.REG_LEFT_DAC_VOL}
	case Right:
		addrs = []uint8{base.REG_RIGHT_DAC_VOL}
	default:
		addrs = []uint8{base.REG_LEFT_DAC_VOL, base.REG_RIGHT_DAC_VOL}
	}

	for i, addr := range addrs {
		reg := d.State.Get(addr)
		reg.ClearBits(base.DAC_VU)
		reg.SetField(base.Field{Name: "DACVOL", Mask: base.DAC_VOL_MASK}, code)
		if settings.LatchVolumes && i == len(addrs)-1 {
			reg.SetBits(base.DAC_VU)
		}
		d.State.Dirty[addr] = true
		if err := d.WriteRegister(addr); err != nil {
			return err
		}
	}
	return nil
}

// RunSequence plays a named write sequence. 'step' is called before
// each write and may be nil.
func (d *Device) RunSequence(name string, step func(s SeqStep)) error {
	seq, ok := Sequences[name]
	if !ok {
		return fmt.Errorf("unknown sequence '%s'", name)
	}

	for _, s := range seq {
		if step != nil {
			step(s)
		}
		if s.Addr == base.REG_RESET {
			if err := d.Reset(); err != nil {
				return err
			}
			continue
		}
		if err := d.WriteValue(s.Addr, s.Value); err != nil {
			return errors.Wrapf(err, "sequence '%s'", name)
		}
	}
	return nil
}
