package ntpdiag

import "testing"

func TestComputeSyncAllEqual(t *testing.T) {
	m := computeSync(7, 7, 7, 7)
	if m.OffsetMicros != 0 || m.RoundTripMicros != 0 {
		t.Error(m)
	}
}

func TestComputeSyncRemoteAhead(t *testing.T) {
	// remote clock reads 1000us ahead, zero transit time
	m := computeSync(0, 1000, 1000, 0)
	if m.OffsetMicros != 1000 {
		t.Error(m.OffsetMicros)
	}
	if m.RoundTripMicros != 0 {
		t.Error(m.RoundTripMicros)
	}
}

func TestComputeSyncSymmetricPath(t *testing.T) {
	// 10ms each way, server holds the request for 2ms
	m := computeSync(0, 10000, 12000, 22000)
	if m.OffsetMicros != 0 {
		t.Error(m.OffsetMicros)
	}
	if m.RoundTripMicros != 20000 {
		t.Error(m.RoundTripMicros)
	}
}

func TestComputeSyncNegativeRoundTrip(t *testing.T) {
	// skewed exchange, negative delay must be surfaced not clamped
	m := computeSync(0, 0, 2000, 1000)
	if m.RoundTripMicros != -1000 {
		t.Error(m.RoundTripMicros)
	}
	if m.OffsetMicros != 500 {
		t.Error(m.OffsetMicros)
	}
}
