package ntpdiag

// SyncMetrics is the outcome of one four-timestamp exchange, in
// microseconds. Positive offset means the remote clock reads ahead of
// the local one.
type SyncMetrics struct {
	OffsetMicros    int64
	RoundTripMicros int64
}

// computeSync applies the client/server formulas to the four exchange
// instants: t1 local send, t2 server receive, t3 server transmit,
// t4 local receive, all unix microseconds. Round trip can come out
// negative under clock skew or path asymmetry and is surfaced as-is.
func computeSync(t1, t2, t3, t4 int64) SyncMetrics {
	return SyncMetrics{
		OffsetMicros:    ((t2 - t1) + (t3 - t4)) / 2,
		RoundTripMicros: (t4 - t1) - (t3 - t2),
	}
}
