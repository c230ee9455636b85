package ntpdiag

import "testing"

func TestAbsInt64(t *testing.T) {
	if absInt64(-5) != 5 || absInt64(5) != 5 || absInt64(0) != 0 {
		t.Error("absInt64")
	}
}
