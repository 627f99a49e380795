package listing

import (
	"strings"
	"testing"

	"github.com/grolsen/wm8960ctl/base"
)

func Test_FieldsToString(t *testing.T) {
	s := FieldsToString(base.REG_LEFT_IN_VOL, 0x017)
	if !strings.Contains(s, "INVOL=0x17") {
		t.Errorf("Missing INVOL in %q", s)
	}
	if !strings.Contains(s, "0.00 dB") {
		t.Errorf("Missing 0 dB annotation in %q", s)
	}
	if !strings.Contains(s, "INMUTE=0") || !strings.Contains(s, "IPVU=0") {
		t.Errorf("Missing flag fields in %q", s)
	}

	s = FieldsToString(base.REG_LEFT_IN_VOL, 0x1FF)
	if !strings.Contains(s, "INVOL=0x3F") || !strings.Contains(s, "+30.00 dB") {
		t.Errorf("Full-scale rendering wrong: %q", s)
	}

	// Muted headphone code
	s = FieldsToString(base.REG_LOUT1_VOL, 0x010)
	if !strings.Contains(s, "(mute)") {
		t.Errorf("Expected mute marker in %q", s)
	}

	// Registers without fields fall back to binary
	s = FieldsToString(base.REG_PLL_N, 0x0A5)
	if !strings.Contains(s, "0b010100101") {
		t.Errorf("Binary fallback wrong: %q", s)
	}
}

func Test_DocsMatchTable(t *testing.T) {
	for addr := range RegDocs {
		if _, ok := base.Registers[addr]; !ok {
			t.Errorf("RegDocs entry 0x%02X has no register table entry", addr)
		}
	}
}
