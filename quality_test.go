package ntpdiag

import "testing"

func TestStratumDesc(t *testing.T) {
	cases := []struct {
		s    uint8
		want string
	}{
		{0, "Unspecified or invalid"},
		{1, "Primary reference (e.g., GPS, atomic clock)"},
		{2, "Secondary reference (via NTP)"},
		{15, "Secondary reference (via NTP)"},
		{16, "Reserved"},
		{200, "Reserved"},
		{255, "Reserved"},
	}
	for _, c := range cases {
		if got := stratumDesc(c.s); got != c.want {
			t.Errorf("stratum %d: %q", c.s, got)
		}
	}
}

func TestOffsetBandBoundaries(t *testing.T) {
	cases := []struct {
		us   int64
		want OffsetBand
	}{
		{0, BandExcellent},
		{9999, BandExcellent},
		{-9999, BandExcellent},
		{10000, BandSynchronized},
		{99999, BandSynchronized},
		{100000, BandSignificant},
		{999999, BandSignificant},
		{1000000, BandWarning},
		{-2000000, BandWarning},
	}
	for _, c := range cases {
		if got := offsetBand(c.us); got != c.want {
			t.Errorf("offset %d: %s", c.us, got)
		}
	}
}

func TestOffsetBandString(t *testing.T) {
	if BandExcellent.String() != "excellent" ||
		BandSynchronized.String() != "synchronized" ||
		BandSignificant.String() != "significant" ||
		BandWarning.String() != "warning" {
		t.Error("band strings")
	}
}
