package ntpdiag

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// resolveAddr turns a caller supplied server string into a UDP
// endpoint. A string without a colon gets the default port appended
// first. A wildcard resolution (empty host) is treated as a failure,
// not as "any address".
func resolveAddr(server string, port int) (addr *net.UDPAddr, err error) {
	hostport := server
	if !strings.Contains(server, ":") {
		hostport = net.JoinHostPort(server, strconv.Itoa(port))
	}
	addr, err = net.ResolveUDPAddr("udp", hostport)
	if err != nil {
		return nil, err
	}
	if addr.IP == nil {
		return nil, errNoAddress
	}
	return addr, nil
}

// exchange performs one request/response cycle on its own ephemeral
// socket. t1 is captured immediately before the send and t4
// immediately after the receive returns, so decoding work never leaks
// into the measured delay. The socket is closed on every path.
func exchange(addr *net.UDPAddr, req []byte, timeout time.Duration) (resp []byte, n int, t1, t4 int64, err error) {
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return
	}
	defer conn.Close()

	err = conn.SetDeadline(time.Now().Add(timeout))
	if err != nil {
		return
	}

	resp = make([]byte, PacketSize)

	t1 = time.Now().UnixMicro()
	_, err = conn.Write(req)
	if err != nil {
		return
	}

	n, err = conn.Read(resp)
	t4 = time.Now().UnixMicro()
	return
}
