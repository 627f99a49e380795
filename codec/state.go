package codec

import (
	"github.com/grolsen/wm8960ctl/base"
)

type RegisterBank [base.NUM_REGISTERS]*RegValue

// State is the shadow copy of the register file. The hardware is
// write-only over I2C, so this bank is the only readable record of
// what the chip holds.
type State struct {
	Registers RegisterBank

	// TRUE for registers edited since their last bus write
	Dirty [base.NUM_REGISTERS]bool

	// TRUE for registers written to the chip at least once
	Written [base.NUM_REGISTERS]bool
}

// NewState returns a bank loaded with the power-on defaults.
func NewState() *State {
	s := new(State)
	for i := 0; i < base.NUM_REGISTERS; i++ {
		s.Registers[i] = NewRegValue(base.DefaultValue(uint8(i)))
	}
	return s
}

func (s *State) Get(addr uint8) *RegValue {
	if int(addr) >= len(s.Registers) {
		return nil
	}
	return s.Registers[addr]
}

// Set stages a new value without touching the bus.
func (s *State) Set(addr uint8, value uint16) {
	if int(addr) >= len(s.Registers) {
		return
	}
	s.Registers[addr].Set(value)
	s.Dirty[addr] = true
}

// DirtyCount returns the number of staged-but-unwritten registers.
func (s *State) DirtyCount() int {
	count := 0
	for _, d := range s.Dirty {
		if d {
			count++
		}
	}
	return count
}

func (s *State) Duplicate() *State {
	dup := NewState()
	for i, r := range s.Registers {
		dup.Registers[i].Copy(r)
	}
	dup.Dirty = s.Dirty
	dup.Written = s.Written
	return dup
}
