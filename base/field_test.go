package base

import (
	"testing"
)

func Test_FieldMasksDoNotOverlap(t *testing.T) {
	for addr, rd := range Registers {
		var seen uint16
		for _, f := range rd.Fields {
			if f.Mask == 0 {
				t.Errorf("Register 0x%02X field %s has an empty mask", addr, f.Name)
			}
			if f.Mask&seen != 0 {
				t.Errorf("Register 0x%02X field %s overlaps another field (mask 0x%03X)",
					addr, f.Name, f.Mask)
			}
			seen |= f.Mask
		}
		if seen&^REG_VALUE_MASK != 0 {
			t.Errorf("Register 0x%02X has field bits outside the 9-bit value", addr)
		}
	}
}

func Test_FieldShiftsMatchMasks(t *testing.T) {
	for addr, rd := range Registers {
		for _, f := range rd.Fields {
			if f.Mask>>f.Shift == 0 {
				t.Errorf("Register 0x%02X field %s: shift %d clears the whole mask 0x%03X",
					addr, f.Name, f.Shift, f.Mask)
			}
			if f.Mask&(1<<f.Shift) == 0 {
				t.Errorf("Register 0x%02X field %s: shift %d not at mask bottom (0x%03X)",
					addr, f.Name, f.Shift, f.Mask)
			}
		}
	}
}

func Test_DefaultsFitRegisterWidth(t *testing.T) {
	for addr, rd := range Registers {
		if rd.Default&^REG_VALUE_MASK != 0 {
			t.Errorf("Register 0x%02X default 0x%03X exceeds 9 bits", addr, rd.Default)
		}
		if rd.Addr != addr {
			t.Errorf("Register 0x%02X keyed under wrong address 0x%02X", rd.Addr, addr)
		}
	}
}

func Test_InputVolumeEncoding(t *testing.T) {
	// 0.75 dB per step over the full code range must give the
	// documented 30 dB span above the 0 dB reference.
	span := float64(IN_VOL_INVOL_MAX-IN_VOL_INVOL_0DB) * 0.75
	if span != 30.0 {
		t.Fatalf("Input PGA range is %f dB, expected 30", span)
	}

	if IN_VOL_IPVU != 0x100 || IN_VOL_INMUTE != 0x080 || IN_VOL_IZC != 0x040 {
		t.Fatalf("Input volume flag bits moved: IPVU=0x%X INMUTE=0x%X IZC=0x%X",
			IN_VOL_IPVU, IN_VOL_INMUTE, IN_VOL_IZC)
	}
	if IN_VOL_INVOL_MASK != 0x3F || IN_VOL_INVOL_SHIFT != 0 {
		t.Fatalf("INVOL field moved: mask=0x%X shift=%d",
			IN_VOL_INVOL_MASK, IN_VOL_INVOL_SHIFT)
	}
	if REG_LEFT_IN_VOL != 0x00 || REG_RIGHT_IN_VOL != 0x01 {
		t.Fatalf("Input volume register addresses moved")
	}
	if DefaultValue(REG_LEFT_IN_VOL) != 0x017 {
		t.Fatalf("LEFT_IN_VOL default is 0x%03X, expected 0x017",
			DefaultValue(REG_LEFT_IN_VOL))
	}
}

func Test_FieldExtractInsert(t *testing.T) {
	rd := Registers[REG_LEFT_IN_VOL]
	invol, ok := rd.FieldByName("INVOL")
	if !ok {
		t.Fatalf("LEFT_IN_VOL has no INVOL field")
	}

	v := invol.Insert(0x017, 0x3F)
	if v != 0x03F {
		t.Errorf("Insert(0x017, 0x3F) = 0x%03X, expected 0x03F", v)
	}
	if invol.Extract(v) != 0x3F {
		t.Errorf("Extract returned 0x%X, expected 0x3F", invol.Extract(v))
	}

	// Oversized values must be truncated to the mask
	v = invol.Insert(0, 0x1FF)
	if v != 0x03F {
		t.Errorf("Insert must truncate to the field mask, got 0x%03X", v)
	}

	mute, _ := rd.FieldByName("INMUTE")
	if !mute.IsFlag() {
		t.Errorf("INMUTE should be a flag field")
	}
	if invol.IsFlag() {
		t.Errorf("INVOL should not be a flag field")
	}
}

func Test_RegisterName(t *testing.T) {
	if RegisterName(REG_RESET) != "RESET" {
		t.Errorf("Got %s for the reset register", RegisterName(REG_RESET))
	}
	if RegisterName(0x3B) != "REG_3B" {
		t.Errorf("Placeholder name wrong: %s", RegisterName(0x3B))
	}
}
