package ntpdiag

import (
	"net"
	"time"
)

// Result is everything one probe learned about a server. Rendering it
// for humans lives in report.go, the struct itself carries raw values
// only.
type Result struct {
	Server string
	Addr   *net.UDPAddr

	Leap        uint8
	Stratum     uint8
	StratumDesc string
	// Precision is the server clock resolution, log2 seconds.
	Precision int8
	// LocalPrecision is the same exponent for the local kernel clock.
	LocalPrecision       int8
	RootDelayMillis      int64
	RootDispersionMillis int64
	ReferID              uint32

	// ServerTime is the server transmit instant, LocalTime the local
	// receive instant, both unix microseconds.
	ServerTime int64
	LocalTime  int64

	OffsetMicros    int64
	RoundTripMicros int64
	Band            OffsetBand
}

// Prober runs one-shot diagnostic exchanges against arbitrary NTP
// servers. It keeps no state between calls and is safe for concurrent
// use; every probe owns its own socket and buffers.
type Prober struct {
	cfg  *Config
	stat *statistic
}

func New(cfg *Config) *Prober {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.clamp()
	p := &Prober{cfg: cfg}
	if cfg.Metric != "" {
		p.stat = newStatistic(cfg)
	}
	return p
}

// Probe measures clock offset and round trip delay against server,
// optionally given as host:port. The local clock is never adjusted.
func (p *Prober) Probe(server string) (r *Result, err error) {

	addr, err := resolveAddr(server, p.cfg.Port)
	if err != nil {
		p.count("resolution")
		return nil, &ResolutionError{Server: server, Err: err}
	}

	req := newRequest()
	if p.cfg.FillTransmit {
		// informational only, the offset math below relies on the
		// locally captured t1 instead
		req.XmitTime = toNtpTime(time.Now())
	}

	resp, n, t1, t4, err := exchange(addr, req.Encode(), p.cfg.timeout())
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			p.count("timeout")
			return nil, &TimeoutError{Server: server, Addr: addr, Err: err}
		}
		p.count("transport")
		return nil, &TransportError{Server: server, Addr: addr, Err: err}
	}
	if n < PacketSize {
		p.count("malformed")
		return nil, &MalformedResponseError{Server: server, Addr: addr, Size: n}
	}

	pkt, err := ParsePacket(resp[:n])
	if err != nil {
		p.count("malformed")
		return nil, &MalformedResponseError{Server: server, Addr: addr, Size: n}
	}

	t2 := ntpToUnixMicros(pkt.RecvTime)
	t3 := ntpToUnixMicros(pkt.XmitTime)
	m := computeSync(t1, t2, t3, t4)

	if debug {
		Info.Printf("%s t1=%d t2=%d t3=%d t4=%d", addr, t1, t2, t3, t4)
	}

	r = &Result{
		Server:               server,
		Addr:                 addr,
		Leap:                 pkt.Leap(),
		Stratum:              pkt.Stratum,
		StratumDesc:          stratumDesc(pkt.Stratum),
		Precision:            pkt.Precision,
		LocalPrecision:       localPrecision(),
		RootDelayMillis:      shortToMillis(pkt.RootDelay),
		RootDispersionMillis: shortToMillis(pkt.RootDispersion),
		ReferID:              pkt.ReferID,
		ServerTime:           t3,
		LocalTime:            t4,
		OffsetMicros:         m.OffsetMicros,
		RoundTripMicros:      m.RoundTripMicros,
		Band:                 offsetBand(m.OffsetMicros),
	}
	if p.stat != nil {
		p.stat.success(r)
	}
	return r, nil
}

func (p *Prober) count(kind string) {
	if p.stat != nil {
		p.stat.failure(kind)
	}
}

// Probe is a convenience wrapper with default configuration.
func Probe(server string) (*Result, error) {
	return New(nil).Probe(server)
}
