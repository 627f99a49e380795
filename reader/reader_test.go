package reader

import (
	"strings"
	"testing"
)

func Test_ParseRegisterLines(t *testing.T) {
	input := `
# WM8960 playback set
0x00 LEFT_IN_VOL 0x017
0x02 LOUT1_VOL 0x079   # headphone left
0x19                   # power1, no name
zzz  BROKEN 0x01
0x05 DAC_CTL1 notanumber
`
	entries, err := parseRegisterLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}

	if entries[0].Addr != 0x00 || entries[0].Name != "LEFT_IN_VOL" ||
		entries[0].Default != 0x017 {
		t.Errorf("Entry 0 wrong: %+v", entries[0])
	}
	if entries[1].Addr != 0x02 || entries[1].Default != 0x079 {
		t.Errorf("Entry 1 wrong: %+v", entries[1])
	}

	// A bare address gets a placeholder name and zero default
	if entries[2].Addr != 0x19 || entries[2].Name != "REG_19" ||
		entries[2].Default != 0 {
		t.Errorf("Entry 2 wrong: %+v", entries[2])
	}

	// A bad default token falls back to zero, the line survives
	if entries[3].Addr != 0x05 || entries[3].Default != 0 {
		t.Errorf("Entry 3 wrong: %+v", entries[3])
	}

	// Cached value starts at the default
	if entries[0].Value != entries[0].Default {
		t.Errorf("Value not seeded from default")
	}
}
