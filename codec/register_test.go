package codec

import (
	"math"
	"testing"

	"github.com/grolsen/wm8960ctl/base"
)

func Test_RegValueClamp(t *testing.T) {
	r := NewRegValue(0x3FF)
	if r.Value != 0x1FF {
		t.Fatalf("NewRegValue must clamp to 9 bits, got 0x%03X", r.Value)
	}

	r.Clear()
	_, clamped := r.Clamp9Bit()
	if clamped {
		t.Errorf("Clamp9Bit reported clamping on a zero value")
	}

	r.Value = 0x200 // Poke an out-of-range bit in directly
	_, clamped = r.Clamp9Bit()
	if !clamped || r.Value != 0 {
		t.Errorf("Clamp9Bit did not drop bit 9: value=0x%03X clamped=%t",
			r.Value, clamped)
	}
}

func Test_RegValueChaining(t *testing.T) {
	invol := base.Field{Name: "INVOL", Mask: base.IN_VOL_INVOL_MASK}

	r := NewRegValue(0)
	r.SetField(invol, base.IN_VOL_INVOL_0DB).
		SetBits(base.IN_VOL_INMUTE).
		SetBits(base.IN_VOL_IPVU)

	if r.Value != 0x197 {
		t.Fatalf("Chained edit gave 0x%03X, expected 0x197", r.Value)
	}
	if !r.Has(base.IN_VOL_IPVU) || !r.Has(base.IN_VOL_INMUTE) {
		t.Errorf("Flag bits missing after chained edit")
	}
	if r.Field(invol) != base.IN_VOL_INVOL_0DB {
		t.Errorf("INVOL readback gave 0x%X", r.Field(invol))
	}

	r.ClearBits(base.IN_VOL_IPVU)
	if r.Has(base.IN_VOL_IPVU) {
		t.Errorf("IPVU still set after ClearBits")
	}
}

func Test_InputVolConversions(t *testing.T) {
	if InputVolToDB(base.IN_VOL_INVOL_0DB) != 0.0 {
		t.Errorf("Code 0x17 should be 0 dB, got %f",
			InputVolToDB(base.IN_VOL_INVOL_0DB))
	}
	if InputVolToDB(base.IN_VOL_INVOL_MAX) != 30.0 {
		t.Errorf("Code 0x3F should be +30 dB, got %f",
			InputVolToDB(base.IN_VOL_INVOL_MAX))
	}
	if InputVolToDB(0) != -17.25 {
		t.Errorf("Code 0 should be -17.25 dB, got %f", InputVolToDB(0))
	}

	// Round trip every code
	for code := uint16(0); code <= base.IN_VOL_INVOL_MAX; code++ {
		if back := InputVolFromDB(InputVolToDB(code)); back != code {
			t.Errorf("Code 0x%02X round-tripped to 0x%02X", code, back)
		}
	}

	// Clamping
	if InputVolFromDB(100.0) != base.IN_VOL_INVOL_MAX {
		t.Errorf("Overrange dB should clamp to the max code")
	}
	if InputVolFromDB(-100.0) != 0 {
		t.Errorf("Underrange dB should clamp to code 0")
	}
}

func Test_OUT1VolConversions(t *testing.T) {
	db, audible := OUT1VolToDB(base.OUT1_VOL_0DB)
	if !audible || db != 0.0 {
		t.Errorf("Code 0x79 should be an audible 0 dB, got %f/%t", db, audible)
	}
	db, audible = OUT1VolToDB(base.OUT1_VOL_MAX)
	if !audible || db != 6.0 {
		t.Errorf("Code 0x7F should be +6 dB, got %f", db)
	}
	if _, audible = OUT1VolToDB(0x10); audible {
		t.Errorf("Codes below 0x30 are analogue mute")
	}

	if OUT1VolFromDB(0) != base.OUT1_VOL_0DB {
		t.Errorf("0 dB should map to 0x79, got 0x%02X", OUT1VolFromDB(0))
	}
	if OUT1VolFromDB(40) != base.OUT1_VOL_MAX {
		t.Errorf("Overrange dB should clamp to 0x7F")
	}
	if OUT1VolFromDB(-100) != base.OUT1_VOL_MIN {
		t.Errorf("Underrange dB should clamp to 0x30")
	}
}

func Test_DACVolConversions(t *testing.T) {
	db, audible := DACVolToDB(base.DAC_VOL_0DB)
	if !audible || db != 0.0 {
		t.Errorf("Code 0xFF should be an audible 0 dB, got %f/%t", db, audible)
	}
	if _, audible = DACVolToDB(0); audible {
		t.Errorf("Code 0 is digital mute")
	}

	db, _ = DACVolToDB(0x01)
	if math.Abs(db-(-127.0)) > 1e-9 {
		t.Errorf("Code 0x01 should be -127 dB, got %f", db)
	}

	if DACVolFromDB(-6.0) != 0xF3 {
		t.Errorf("-6 dB should map to 0xF3, got 0x%02X", DACVolFromDB(-6.0))
	}
	if DACVolFromDB(10.0) != base.DAC_VOL_0DB {
		t.Errorf("Positive dB should clamp to 0 dB")
	}
}
