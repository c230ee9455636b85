package ntpdiag

import "time"

const (
	nanoPerSec  = 1e9
	microPerSec = 1e6

	// seconds between the NTP epoch (1900-01-01) and the unix epoch
	unixEraOffset = 2208988800

	// 16.16 fixed point second
	shortScale = 65536
)

var ntpEpoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// ntpToUnixMicros converts a 64bit NTP timestamp to unix microseconds.
// The 32bit seconds field is taken as-is, era rollover (2036) is not
// corrected.
func ntpToUnixMicros(ts uint64) int64 {
	sec := int64(ts >> 32)
	frac := ts & 0xffffffff
	micros := int64(frac * microPerSec >> 32)
	return (sec-unixEraOffset)*microPerSec + micros
}

func toNtpTime(t time.Time) uint64 {
	nsec := uint64(t.Sub(ntpEpoch))
	sec := nsec / nanoPerSec
	frac := (nsec - sec*nanoPerSec) << 32 / nanoPerSec
	return uint64(sec<<32 | frac)
}

// shortToMillis converts a 16.16 fixed point second value (root delay,
// root dispersion) to milliseconds.
func shortToMillis(v uint32) int64 {
	return int64(v) * 1000 / shortScale
}

func unixMicrosToTime(us int64) time.Time {
	return time.Unix(us/microPerSec, us%microPerSec*1000)
}
