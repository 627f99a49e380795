package codec

import (
	"math"

	"github.com/grolsen/wm8960ctl/base"
)

/**
  A RegValue holds one 9-bit WM8960 register value. All mutating
  methods return the receiver so field edits can be chained before the
  value is pushed over the bus.
*/

type RegValue struct {
	Value uint16
}

func NewRegValue(value uint16) *RegValue {
	r := new(RegValue)
	r.Value = value & base.REG_VALUE_MASK
	return r
}

func (r *RegValue) Clear() *RegValue {
	r.Value = 0
	return r
}

// Returns TRUE on second value if bits above the 9-bit range were dropped
func (r *RegValue) Clamp9Bit() (*RegValue, bool) {
	if r.Value&^base.REG_VALUE_MASK != 0 {
		r.Value &= base.REG_VALUE_MASK
		return r, true
	}
	return r, false
}

func (r *RegValue) Set(value uint16) *RegValue {
	r.Value = value
	r.Clamp9Bit()
	return r
}

func (r *RegValue) SetBits(mask uint16) *RegValue {
	r.Value |= mask
	r.Clamp9Bit()
	return r
}

func (r *RegValue) ClearBits(mask uint16) *RegValue {
	r.Value &^= mask
	return r
}

func (r *RegValue) Has(mask uint16) bool {
	return r.Value&mask == mask
}

func (r *RegValue) SetField(f base.Field, value uint16) *RegValue {
	r.Value = f.Insert(r.Value, value)
	return r
}

func (r *RegValue) Field(f base.Field) uint16 {
	return f.Extract(r.Value)
}

func (r *RegValue) Copy(other *RegValue) *RegValue {
	r.Value = other.Value
	return r
}

func (r *RegValue) Equal(other *RegValue) bool {
	return r.Value == other.Value
}

//
// Gain code conversions. Out-of-range dB requests clamp to the ends of
// each scale instead of failing.
//

// InputVolToDB maps an input PGA code to dB: -17.25 dB at code 0,
// 0.75 dB per step, 0 dB at 0x17, +30 dB at 0x3F.
func InputVolToDB(code uint16) float64 {
	return 0.75 * (float64(code&base.IN_VOL_INVOL_MASK) - base.IN_VOL_INVOL_0DB)
}

// InputVolFromDB maps dB to the nearest input PGA code.
func InputVolFromDB(db float64) uint16 {
	code := math.Round(db/0.75) + base.IN_VOL_INVOL_0DB
	if code < 0 {
		code = 0
	}
	if code > base.IN_VOL_INVOL_MAX {
		code = base.IN_VOL_INVOL_MAX
	}
	return uint16(code)
}

// OUT1VolToDB maps a headphone volume code to dB (1 dB per step,
// 0 dB at 0x79). Codes below OUT1_VOL_MIN are analogue mute; the
// second value is FALSE for those.
func OUT1VolToDB(code uint16) (float64, bool) {
	code &= base.OUT1_VOL_MASK
	if code < base.OUT1_VOL_MIN {
		return 0, false
	}
	return float64(code) - base.OUT1_VOL_0DB, true
}

func OUT1VolFromDB(db float64) uint16 {
	code := math.Round(db) + base.OUT1_VOL_0DB
	if code < base.OUT1_VOL_MIN {
		code = base.OUT1_VOL_MIN
	}
	if code > base.OUT1_VOL_MAX {
		code = base.OUT1_VOL_MAX
	}
	return uint16(code)
}

// DACVolToDB maps a DAC digital volume code to dB (0.5 dB per step,
// 0 dB at 0xFF). Code 0 is digital mute; the second value is FALSE
// for it.
func DACVolToDB(code uint16) (float64, bool) {
	code &= base.DAC_VOL_MASK
	if code == 0 {
		return 0, false
	}
	return 0.5 * (float64(code) - base.DAC_VOL_0DB), true
}

func DACVolFromDB(db float64) uint16 {
	code := math.Round(db/0.5) + base.DAC_VOL_0DB
	if code < 1 {
		code = 1
	}
	if code > base.DAC_VOL_0DB {
		code = base.DAC_VOL_0DB
	}
	return uint16(code)
}
