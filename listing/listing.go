package listing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grolsen/wm8960ctl/base"
	"github.com/grolsen/wm8960ctl/codec"
	"github.com/grolsen/wm8960ctl/utils"
)

// FieldsToString renders the field breakdown of one register value,
// e.g. "IPVU=0 INMUTE=1 IZC=0 INVOL=0x17 (0.00 dB)".
func FieldsToString(addr uint8, value uint16) string {
	rd, ok := base.Registers[addr]
	if !ok || len(rd.Fields) == 0 {
		return fmt.Sprintf("0b%09b", value)
	}

	var parts []string
	for _, f := range rd.Fields {
		v := f.Extract(value)
		if f.IsFlag() {
			parts = append(parts, fmt.Sprintf("%s=%d", f.Name, v))
		} else {
			parts = append(parts, fmt.Sprintf("%s=0x%02X%s",
				f.Name, v, gainSuffix(addr, f.Name, v)))
		}
	}
	return strings.Join(parts, " ")
}

func gainSuffix(addr uint8, fieldName string, code uint16) string {
	switch fieldName {
	case "INVOL":
		return " (" + utils.FormatDB(codec.InputVolToDB(code)) + ")"
	case "OUT1VOL":
		if db, audible := codec.OUT1VolToDB(code); audible {
			return " (" + utils.FormatDB(db) + ")"
		}
		return " (mute)"
	case "DACVOL":
		if db, audible := codec.DACVolToDB(code); audible {
			return " (" + utils.FormatDB(db) + ")"
		}
		return " (mute)"
	}
	_ = addr
	return ""
}

// PrintRegisterMap dumps the whole register table with defaults and
// field layouts.
func PrintRegisterMap() {
	fmt.Printf("\n;;\n;; WM8960 register map (%d registers)\n;;\n", len(base.Registers))

	var addrs []int
	for addr := range base.Registers {
		addrs = append(addrs, int(addr))
	}
	sort.Ints(addrs)

	for _, a := range addrs {
		addr := uint8(a)
		rd := base.Registers[addr]

		fmt.Printf("0x%02X  %-14s def=0x%03X", addr, rd.Name, rd.Default)
		if doc, ok := RegDocs[addr]; ok {
			fmt.Printf("  ;; %s", doc.Short)
		}
		fmt.Println()

		if len(rd.Fields) > 0 {
			fmt.Printf("      %s\n", FieldsToString(addr, rd.Default))
		}
	}
	fmt.Println()
}

// PrintState dumps the shadow bank, flagging staged-but-unwritten
// registers.
func PrintState(state *codec.State) {
	var addrs []int
	for addr := range base.Registers {
		addrs = append(addrs, int(addr))
	}
	sort.Ints(addrs)

	fmt.Println("Addr  Value  Name")
	for _, a := range addrs {
		addr := uint8(a)
		marker := " "
		if state.Dirty[addr] {
			marker = "*"
		}
		fmt.Printf("0x%02X%s 0x%03X  %s\n",
			addr, marker, state.Get(addr).Value, base.RegisterName(addr))
	}
}
