package utils

import (
	"fmt"
	"strconv"
)

func Assert(check bool, msg string) {
	if !check {
		panic(msg)
	}
}

// ParseNumber reads a hex (0x..), octal (0..) or decimal integer, same
// rules as C.
func ParseNumber(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

// FormatDB renders a gain for listings: "+6.00 dB", "-17.25 dB".
func FormatDB(db float64) string {
	if db > 0 {
		return fmt.Sprintf("+%.2f dB", db)
	}
	return fmt.Sprintf("%.2f dB", db)
}
