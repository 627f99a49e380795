package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grolsen/wm8960ctl/utils"
)

// RegEntry is one line of a register definition file.
type RegEntry struct {
	Addr    uint8
	Name    string
	Default uint16
	Value   uint16
}

/*
  Register file format (txt), one register per line:

     <addr> [NAME] [default]

  Numbers in hex or decimal. '#' starts a comment. Example:

     0x00 LEFT_IN_VOL 0x017
     0x02 LOUT1_VOL 0x079
*/
func ReadRegisterFile(filename string) ([]RegEntry, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseRegisterLines(file)
}

func parseRegisterLines(r io.Reader) ([]RegEntry, error) {
	var entries []RegEntry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}

		parts := strings.Fields(line)
		addr, err := utils.ParseNumber(parts[0])
		if err != nil {
			fmt.Printf("Skipping line %d (bad addr): %s\n", lineNo, line)
			continue
		}

		entry := RegEntry{Addr: uint8(addr)}
		entry.Name = fmt.Sprintf("REG_%02X", entry.Addr)
		if len(parts) > 1 {
			entry.Name = parts[1]
		}
		if len(parts) > 2 {
			// A bad default token falls back to zero
			if def, err := utils.ParseNumber(parts[2]); err == nil {
				entry.Default = uint16(def) & 0x1FF
			}
		}
		entry.Value = entry.Default

		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}
