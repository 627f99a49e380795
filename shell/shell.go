package shell

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/eiannone/keyboard"
	"github.com/fatih/color"

	"github.com/grolsen/wm8960ctl/base"
	"github.com/grolsen/wm8960ctl/codec"
	"github.com/grolsen/wm8960ctl/listing"
	"github.com/grolsen/wm8960ctl/reader"
	"github.com/grolsen/wm8960ctl/utils"
)

const helpText = `Commands:
  list                     - list loaded registers with current values
  set <idx> <value>        - set register at list index to value (hex or dec)
  write <idx>              - write the current value of register at index
  writeall                 - write all registers in the list
  writeaddr <addr> <val>   - direct write by register address (wa)
  setaddr <addr> <val>     - update cached value by register address (sa)
  vol <db>                 - input PGA volume, both channels, latched
  seq <name>               - run a write sequence (step through with keys)
  seqs                     - list available sequences
  state                    - dump the shadow register bank
  map                      - print the register map
  help                     - show this help
  quit / exit              - leave the tool`

const seqPrompt = "< (N)ext write | (A)ll remaining | (Q)uit sequence >"

// Run drops into the i2c> loop. 'entries' is the optional register
// file content; direct addressing works without it.
func Run(dev *codec.Device, entries []reader.RegEntry) {
	fmt.Println(helpText)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("i2c> ")
		if !scanner.Scan() {
			break
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch strings.ToLower(parts[0]) {
		case "quit", "exit":
			return
		case "help":
			fmt.Println(helpText)
		case "list":
			listEntries(entries)
		case "set":
			entrySet(entries, parts)
		case "write":
			entryWrite(dev, entries, parts)
		case "writeall":
			for i := range entries {
				if !writeEntry(dev, &entries[i]) {
					break
				}
			}
		case "writeaddr", "wa":
			directWrite(dev, parts)
		case "setaddr", "sa":
			cachedSet(entries, dev, parts)
		case "vol":
			setVolume(dev, parts)
		case "seq":
			if len(parts) < 2 {
				color.Red("Usage: seq <name>")
				continue
			}
			runSequence(dev, parts[1])
		case "seqs":
			for _, name := range codec.SequenceNames() {
				fmt.Printf("  %s (%d writes)\n", name, len(codec.Sequences[name]))
			}
		case "state":
			listing.PrintState(dev.State)
		case "map":
			listing.PrintRegisterMap()
		default:
			color.Red("Unknown command. Type 'help' for options.")
		}
	}
}

func listEntries(entries []reader.RegEntry) {
	if len(entries) == 0 {
		fmt.Println("No registers loaded.")
		return
	}
	fmt.Println("Idx  Addr  Value  Name")
	for i, e := range entries {
		fmt.Printf("[%02d] 0x%02X 0x%03X %s\n", i, e.Addr, e.Value, e.Name)
	}
}

func entrySet(entries []reader.RegEntry, parts []string) {
	if len(parts) != 3 {
		color.Red("Usage: set <idx> <value>")
		return
	}
	idx, err1 := utils.ParseNumber(parts[1])
	val, err2 := utils.ParseNumber(parts[2])
	if err1 != nil || err2 != nil || int(idx) >= len(entries) {
		color.Red("Bad index or value")
		return
	}
	entries[idx].Value = uint16(val) & base.REG_VALUE_MASK
	fmt.Printf("Set %s to 0x%03X\n", entries[idx].Name, entries[idx].Value)
}

func entryWrite(dev *codec.Device, entries []reader.RegEntry, parts []string) {
	if len(parts) != 2 {
		color.Red("Usage: write <idx>")
		return
	}
	idx, err := utils.ParseNumber(parts[1])
	if err != nil || int(idx) >= len(entries) {
		color.Red("Index out of range")
		return
	}
	writeEntry(dev, &entries[idx])
}

func writeEntry(dev *codec.Device, e *reader.RegEntry) bool {
	if err := dev.WriteValue(e.Addr, e.Value); err != nil {
		color.Red("Write failed: %s", err)
		return false
	}
	fmt.Printf("Wrote 0x%03X to 0x%02X (%s)\n", e.Value, e.Addr, e.Name)
	return true
}

func directWrite(dev *codec.Device, parts []string) {
	if len(parts) != 3 {
		color.Red("Usage: writeaddr <addr> <val>")
		return
	}
	addr, err1 := utils.ParseNumber(parts[1])
	val, err2 := utils.ParseNumber(parts[2])
	if err1 != nil || err2 != nil {
		color.Red("Bad address or value")
		return
	}
	if err := dev.WriteValue(uint8(addr), uint16(val)&base.REG_VALUE_MASK); err != nil {
		color.Red("Write failed: %s", err)
		return
	}
	fmt.Printf("Wrote 0x%03X to 0x%02X\n", val&base.REG_VALUE_MASK, addr)
}

func cachedSet(entries []reader.RegEntry, dev *codec.Device, parts []string) {
	if len(parts) != 3 {
		color.Red("Usage: setaddr <addr> <val>")
		return
	}
	addr, err1 := utils.ParseNumber(parts[1])
	val, err2 := utils.ParseNumber(parts[2])
	if err1 != nil || err2 != nil {
		color.Red("Bad address or value")
		return
	}

	dev.State.Set(uint8(addr), uint16(val))
	for i := range entries {
		if entries[i].Addr == uint8(addr) {
			entries[i].Value = uint16(val) & base.REG_VALUE_MASK
			break
		}
	}
	fmt.Printf("Staged 0x%03X for %s (0x%02X)\n",
		val&base.REG_VALUE_MASK, base.RegisterName(uint8(addr)), addr)
}

func setVolume(dev *codec.Device, parts []string) {
	if len(parts) != 2 {
		color.Red("Usage: vol <db>")
		return
	}
	var db float64
	if _, err := fmt.Sscanf(parts[1], "%f", &db); err != nil {
		color.Red("Bad dB value")
		return
	}
	if err := dev.SetInputVolumeDB(codec.Both, db); err != nil {
		color.Red("Write failed: %s", err)
		return
	}
	code := codec.InputVolFromDB(db)
	fmt.Printf("Input PGA -> code 0x%02X (%s)\n",
		code, utils.FormatDB(codec.InputVolToDB(code)))
}

// runSequence steps through a sequence one write at a time, with a
// single-key prompt between writes.
func runSequence(dev *codec.Device, name string) {
	seq, ok := codec.Sequences[name]
	if !ok {
		color.Red("Unknown sequence '%s'. Available: %s",
			name, strings.Join(codec.SequenceNames(), ", "))
		return
	}

	if err := keyboard.Open(); err != nil {
		// No tty for single keys; run it in one go
		if err := dev.RunSequence(name, printStep); err != nil {
			color.Red("Sequence failed: %s", err)
		}
		return
	}
	defer keyboard.Close()

	color.Blue("Running '%s' (%d writes)", name, len(seq))
	stepwise := true
	for _, s := range seq {
		if stepwise {
			color.Yellow(seqPrompt)
			for {
				char, _, err := keyboard.GetKey()
				if err != nil {
					fmt.Printf("ERROR: %s\n", err)
					return
				}
				if char == 'q' {
					color.Red("Sequence aborted")
					return
				} else if char == 'a' {
					stepwise = false
					break
				} else if char == 'n' {
					break
				}
			}
		}

		printStep(s)
		var err error
		if s.Addr == base.REG_RESET {
			err = dev.Reset()
		} else {
			err = dev.WriteValue(s.Addr, s.Value)
		}
		if err != nil {
			color.Red("Write failed: %s", err)
			return
		}
	}
	color.Blue("Sequence '%s' done", name)
}

func printStep(s codec.SeqStep) {
	color.Cyan("  %s (0x%02X) <- 0x%03X  ;; %s",
		base.RegisterName(s.Addr), s.Addr, s.Value, s.Comment)
}
