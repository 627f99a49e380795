package bus

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/davecheney/i2c"
	"github.com/fatih/color"
)

// DiscoverBuses returns the numeric IDs of every /dev/i2c-* adapter.
func DiscoverBuses() []int {
	matches, err := filepath.Glob("/dev/i2c-*")
	if err != nil {
		return nil
	}

	var buses []int
	for _, path := range matches {
		idx := strings.LastIndex(path, "-")
		if idx < 0 {
			continue
		}
		n, err := strconv.Atoi(path[idx+1:])
		if err != nil {
			continue
		}
		buses = append(buses, n)
	}
	sort.Ints(buses)
	return buses
}

// Probe checks for an ACK at the given address by writing a bare
// register-pointer byte (selects register 0, changes nothing). The
// WM8960 cannot be read back, so this is the only safe presence test.
func Probe(busNumber int, addr uint8) bool {
	dev, err := i2c.New(addr, busNumber)
	if err != nil {
		return false
	}
	defer dev.Close()

	_, err = dev.Write([]byte{0x00})
	return err == nil
}

// FindDevice probes all adapters for a WM8960 at 0x1a/0x1b and returns
// the first responding bus and address.
func FindDevice() (busNumber int, addr uint8, err error) {
	buses := DiscoverBuses()
	if len(buses) == 0 {
		return -1, 0, fmt.Errorf("no /dev/i2c-* adapters found")
	}

	for _, n := range buses {
		for _, a := range []uint8{DefaultAddr, AltAddr} {
			if Probe(n, a) {
				return n, a, nil
			}
		}
	}
	return -1, 0, fmt.Errorf("no WM8960 responded on %d adapter(s)", len(buses))
}

// Scan prints an i2cdetect-style 16x16 ACK grid for one bus.
func Scan(busNumber int) {
	fmt.Printf("* Scanning /dev/i2c-%d for devices (ACK test)\n", busNumber)
	fmt.Print("     ")
	for col := 0; col < 16; col++ {
		fmt.Printf("%x  ", col)
	}
	fmt.Println()

	for row := 0; row < 8; row++ {
		base := row * 16
		fmt.Printf("%02x: ", base)
		for col := 0; col < 16; col++ {
			addr := base + col
			if addr < 0x03 || addr > 0x77 {
				fmt.Print("   ")
				continue
			}
			if Probe(busNumber, uint8(addr)) {
				if addr == DefaultAddr || addr == AltAddr {
					color.New(color.FgGreen).Printf("%02x ", addr)
				} else {
					fmt.Printf("%02x ", addr)
				}
			} else {
				fmt.Print("-- ")
			}
		}
		fmt.Println()
	}
}
