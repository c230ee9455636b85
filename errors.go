package ntpdiag

import (
	"errors"
	"fmt"
	"net"
)

var errNoAddress = errors.New("no address found")

// ResolutionError means the server string did not resolve to any
// usable UDP endpoint.
type ResolutionError struct {
	Server string
	Err    error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %q: %s", e.Server, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// TransportError means the probe socket could not be set up.
type TransportError struct {
	Server string
	Addr   *net.UDPAddr
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %q (%s): %s", e.Server, e.Addr, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// TimeoutError means the deadline elapsed with no response datagram.
type TimeoutError struct {
	Server string
	Addr   *net.UDPAddr
	Err    error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no response from %q (%s): %s", e.Server, e.Addr, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// MalformedResponseError means a datagram arrived but was too short to
// hold an NTP header. No partial decode is attempted.
type MalformedResponseError struct {
	Server string
	Addr   *net.UDPAddr
	Size   int
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %q (%s): %d bytes", e.Server, e.Addr, e.Size)
}
