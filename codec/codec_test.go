package codec

import (
	"testing"

	"github.com/grolsen/wm8960ctl/base"
	"github.com/grolsen/wm8960ctl/bus"
	"github.com/grolsen/wm8960ctl/settings"
)

func newTestDevice() (*Device, *bus.Recorder) {
	settings.LatchVolumes = true
	rec := &bus.Recorder{}
	return NewDevice(rec), rec
}

func Test_StateDefaults(t *testing.T) {
	s := NewState()
	if s.Get(base.REG_LEFT_IN_VOL).Value != 0x017 {
		t.Errorf("LEFT_IN_VOL default wrong: 0x%03X",
			s.Get(base.REG_LEFT_IN_VOL).Value)
	}
	if s.Get(base.REG_LEFT_DAC_VOL).Value != 0x0FF {
		t.Errorf("LEFT_DAC_VOL default wrong: 0x%03X",
			s.Get(base.REG_LEFT_DAC_VOL).Value)
	}
	if s.DirtyCount() != 0 {
		t.Errorf("Fresh state has %d dirty registers", s.DirtyCount())
	}

	s.Set(base.REG_PWR_MGMT1, 0x0C0)
	if s.DirtyCount() != 1 || !s.Dirty[base.REG_PWR_MGMT1] {
		t.Errorf("Set did not mark the register dirty")
	}

	dup := s.Duplicate()
	if !dup.Get(base.REG_PWR_MGMT1).Equal(s.Get(base.REG_PWR_MGMT1)) {
		t.Errorf("Duplicate lost a staged value")
	}
	dup.Set(base.REG_PWR_MGMT1, 0)
	if s.Get(base.REG_PWR_MGMT1).Value == 0 {
		t.Errorf("Duplicate aliases the original bank")
	}
}

func Test_SetInputVolumeLatching(t *testing.T) {
	dev, rec := newTestDevice()

	if err := dev.SetInputVolumeDB(Both, 30.0); err != nil {
		t.Fatalf("SetInputVolumeDB failed: %s", err)
	}

	if len(rec.Writes) != 2 {
		t.Fatalf("Expected 2 writes, got %d", len(rec.Writes))
	}

	left, right := rec.Writes[0], rec.Writes[1]
	if left.Reg != base.REG_LEFT_IN_VOL || right.Reg != base.REG_RIGHT_IN_VOL {
		t.Fatalf("Wrote wrong registers: %+v", rec.Writes)
	}

	// Only the final write may carry IPVU, so both channels latch at
	// the same instant.
	if left.Value&base.IN_VOL_IPVU != 0 {
		t.Errorf("First write must not set IPVU (0x%03X)", left.Value)
	}
	if right.Value&base.IN_VOL_IPVU == 0 {
		t.Errorf("Final write must set IPVU (0x%03X)", right.Value)
	}

	if left.Value&base.IN_VOL_INVOL_MASK != base.IN_VOL_INVOL_MAX {
		t.Errorf("+30 dB should stage code 0x3F, got 0x%03X", left.Value)
	}

	// The default INMUTE state (0 = muted at power-on) must survive a
	// volume change.
	if left.Value&base.IN_VOL_INMUTE != 0 {
		t.Errorf("Volume write clobbered the mute flag (0x%03X)", left.Value)
	}
}

func Test_MuteAndZeroCross(t *testing.T) {
	dev, rec := newTestDevice()

	if err := dev.MuteInput(Left); err != nil {
		t.Fatalf("MuteInput failed: %s", err)
	}
	// INMUTE is active-low on this part: 0 = muted
	if rec.Writes[0].Value&base.IN_VOL_INMUTE != 0 {
		t.Errorf("Mute should clear INMUTE, wrote 0x%03X", rec.Writes[0].Value)
	}

	if err := dev.SetZeroCross(Left, true); err != nil {
		t.Fatalf("SetZeroCross failed: %s", err)
	}
	last := rec.Writes[len(rec.Writes)-1]
	if last.Value&base.IN_VOL_IZC == 0 {
		t.Errorf("Zero-cross enable missing from write 0x%03X", last.Value)
	}

	if err := dev.UnmuteInput(Left); err != nil {
		t.Fatalf("UnmuteInput failed: %s", err)
	}
	last = rec.Writes[len(rec.Writes)-1]
	if last.Value&base.IN_VOL_INMUTE == 0 {
		t.Errorf("Unmute should set INMUTE, wrote 0x%03X", last.Value)
	}
	// Zero-cross survives the mute toggles
	if last.Value&base.IN_VOL_IZC == 0 {
		t.Errorf("Mute toggle clobbered IZC (0x%03X)", last.Value)
	}
}

func Test_ResetReloadsDefaults(t *testing.T) {
	dev, rec := newTestDevice()

	dev.State.Set(base.REG_LEFT_IN_VOL, 0x1FF)
	if err := dev.Reset(); err != nil {
		t.Fatalf("Reset failed: %s", err)
	}

	if rec.Writes[0].Reg != base.REG_RESET {
		t.Errorf("Reset wrote register 0x%02X", rec.Writes[0].Reg)
	}
	if dev.State.Get(base.REG_LEFT_IN_VOL).Value != 0x017 {
		t.Errorf("Shadow bank not reloaded after reset")
	}
}

func Test_RunSequence(t *testing.T) {
	dev, rec := newTestDevice()

	steps := 0
	err := dev.RunSequence("hp_i2s_init", func(s SeqStep) { steps++ })
	if err != nil {
		t.Fatalf("RunSequence failed: %s", err)
	}

	seq := Sequences["hp_i2s_init"]
	if steps != len(seq) {
		t.Errorf("Step callback ran %d times, expected %d", steps, len(seq))
	}
	if len(rec.Writes) != len(seq) {
		t.Fatalf("Expected %d writes, got %d", len(seq), len(rec.Writes))
	}
	for i, s := range seq {
		if rec.Writes[i].Reg != s.Addr || rec.Writes[i].Value != s.Value {
			t.Errorf("Write %d: got 0x%02X=0x%03X, expected 0x%02X=0x%03X",
				i, rec.Writes[i].Reg, rec.Writes[i].Value, s.Addr, s.Value)
		}
	}

	// The headphone volume steps must carry the update latch
	if rec.Writes[6].Value&base.OUT1_VU == 0 {
		t.Errorf("LOUT1 step missing OUT1VU")
	}

	if err := dev.RunSequence("no_such_thing", nil); err == nil {
		t.Errorf("Unknown sequence should fail")
	}
}

func Test_WriteAll(t *testing.T) {
	dev, rec := newTestDevice()

	if err := dev.WriteAll(); err != nil {
		t.Fatalf("WriteAll failed: %s", err)
	}
	if len(rec.Writes) != len(base.Registers) {
		t.Fatalf("Expected %d writes, got %d", len(base.Registers), len(rec.Writes))
	}
	// Holes in the register file (e.g. 0x0C) must be skipped
	for _, w := range rec.Writes {
		if _, ok := base.Registers[w.Reg]; !ok {
			t.Errorf("Wrote unmapped register 0x%02X", w.Reg)
		}
	}
	if dev.State.DirtyCount() != 0 {
		t.Errorf("Registers still dirty after WriteAll")
	}
}
