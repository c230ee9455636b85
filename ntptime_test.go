package ntpdiag

import (
	"testing"
	"time"
)

func TestNtpToUnixMicrosNtpEpoch(t *testing.T) {
	if us := ntpToUnixMicros(0); us != -2208988800000000 {
		t.Error(us)
	}
}

func TestNtpToUnixMicrosUnixEpoch(t *testing.T) {
	if us := ntpToUnixMicros(unixEraOffset << 32); us != 0 {
		t.Error(us)
	}
}

func TestNtpToUnixMicrosFraction(t *testing.T) {
	// half a second past the unix epoch
	ts := uint64(unixEraOffset)<<32 | 1<<31
	if us := ntpToUnixMicros(ts); us != 500000 {
		t.Error(us)
	}
}

func TestToNtpTimeRoundTrip(t *testing.T) {
	now := time.Unix(1700000000, 123456000)
	us := ntpToUnixMicros(toNtpTime(now))
	if d := absInt64(us - now.UnixMicro()); d > 1 {
		t.Error(us, now.UnixMicro())
	}
}

func TestShortToMillis(t *testing.T) {
	if ms := shortToMillis(shortScale); ms != 1000 {
		t.Error(ms)
	}
	if ms := shortToMillis(shortScale / 2); ms != 500 {
		t.Error(ms)
	}
	if ms := shortToMillis(0); ms != 0 {
		t.Error(ms)
	}
}

func TestUnixMicrosToTime(t *testing.T) {
	at := unixMicrosToTime(1500000)
	if at.UnixNano() != 1500000*1000 {
		t.Error(at)
	}
}
