package ntpdiag

import "testing"

func TestResolveAddrDefaultPort(t *testing.T) {
	addr, err := resolveAddr("127.0.0.1", defaultPort)
	if err != nil {
		t.Fatal(err)
	}
	if addr.Port != 123 {
		t.Error(addr)
	}
}

func TestResolveAddrExplicitPort(t *testing.T) {
	addr, err := resolveAddr("127.0.0.1:1123", defaultPort)
	if err != nil {
		t.Fatal(err)
	}
	if addr.Port != 1123 {
		t.Error(addr)
	}
}

func TestResolveAddrEmpty(t *testing.T) {
	// the dispatcher rejects empty input before it reaches us, but a
	// stray empty string must fail cleanly, not bind the wildcard
	addr, err := resolveAddr("", defaultPort)
	if err == nil {
		t.Error(addr)
	}
}
