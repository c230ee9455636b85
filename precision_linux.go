//go:build linux

package ntpdiag

import (
	"math"

	"golang.org/x/sys/unix"
)

// localPrecision reads the kernel clock precision and reports it as a
// log2 seconds exponent, the same unit servers use on the wire.
func localPrecision() int8 {
	tmx := &unix.Timex{}
	_, err := unix.Adjtimex(tmx)
	if err != nil || tmx.Precision <= 0 {
		return defaultPrecision
	}
	// linux reports precision in usec
	return int8(math.Log2(float64(tmx.Precision) * 1e-6))
}
