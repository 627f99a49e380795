package bus

import (
	"testing"
)

func Test_FramePacking(t *testing.T) {
	// Register 0x00, value 0x017: address byte carries no MSB
	frame := Frame(0x00, 0x017)
	if frame[0] != 0x00 || frame[1] != 0x17 {
		t.Errorf("Frame(0x00, 0x017) = [0x%02x 0x%02x], expected [0x00 0x17]",
			frame[0], frame[1])
	}

	// Register 0x02, value 0x179: bit 8 of the value moves into bit 0
	// of the address byte
	frame = Frame(0x02, 0x179)
	if frame[0] != 0x05 || frame[1] != 0x79 {
		t.Errorf("Frame(0x02, 0x179) = [0x%02x 0x%02x], expected [0x05 0x79]",
			frame[0], frame[1])
	}

	// Register 0x0F (reset), value 0
	frame = Frame(0x0F, 0x000)
	if frame[0] != 0x1E || frame[1] != 0x00 {
		t.Errorf("Frame(0x0F, 0x000) = [0x%02x 0x%02x], expected [0x1E 0x00]",
			frame[0], frame[1])
	}

	// Out-of-range bits must not leak into the frame
	frame = Frame(0xFF, 0xFFFF)
	if frame[0] != 0xFF || frame[1] != 0xFF {
		t.Errorf("Frame must mask address to 7 and value to 9 bits, got [0x%02x 0x%02x]",
			frame[0], frame[1])
	}
}

func Test_Recorder(t *testing.T) {
	rec := &Recorder{}
	if err := rec.WriteRegister(0x19, 0x0C0); err != nil {
		t.Fatalf("Recorder write failed: %s", err)
	}
	if err := rec.WriteRegister(0x1A, 0x1E0); err != nil {
		t.Fatalf("Recorder write failed: %s", err)
	}

	if len(rec.Writes) != 2 {
		t.Fatalf("Expected 2 recorded writes, got %d", len(rec.Writes))
	}
	if rec.Writes[0] != (RegWrite{0x19, 0x0C0}) ||
		rec.Writes[1] != (RegWrite{0x1A, 0x1E0}) {
		t.Errorf("Recorded writes wrong: %+v", rec.Writes)
	}
}
