package ntpdiag

// OffsetBand classifies |offset| into descriptive bands. It never
// drives control flow.
type OffsetBand uint8

const (
	BandExcellent OffsetBand = iota
	BandSynchronized
	BandSignificant
	BandWarning
)

const (
	excellentMicros    = 10000
	synchronizedMicros = 100000
	significantMicros  = 1000000
)

func (b OffsetBand) String() string {
	switch b {
	case BandExcellent:
		return "excellent"
	case BandSynchronized:
		return "synchronized"
	case BandSignificant:
		return "significant"
	default:
		return "warning"
	}
}

// offsetBand buckets an offset by magnitude. Values sitting exactly on
// a threshold fall into the worse band.
func offsetBand(offsetMicros int64) OffsetBand {
	a := absInt64(offsetMicros)
	switch {
	case a < excellentMicros:
		return BandExcellent
	case a < synchronizedMicros:
		return BandSynchronized
	case a < significantMicros:
		return BandSignificant
	default:
		return BandWarning
	}
}

func stratumDesc(s uint8) string {
	switch {
	case s == 0:
		return "Unspecified or invalid"
	case s == 1:
		return "Primary reference (e.g., GPS, atomic clock)"
	case s <= 15:
		return "Secondary reference (via NTP)"
	default:
		return "Reserved"
	}
}
