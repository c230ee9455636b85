package ntpdiag

import (
	"encoding/binary"
	"errors"
)

// PacketSize is the length of the basic NTP header. Extension fields
// and authenticators past this offset are ignored.
const PacketSize = 48

const (
	ModeReserved uint8 = iota
	ModeSymmetricActive
	ModeSymmetricPassive
	ModeClient
	ModeServer
	ModeBroadcast
	ModeControlMessage
	ModeReservedPrivate
)

const (
	LiVnModePos = iota
	StratumPos
	PollPos
	ClockPrecisionPos
)

const (
	RootDelayPos = iota*4 + 4
	RootDispersionPos
	ReferIDPos
)

const (
	ReferenceTimeStamp = iota*8 + 16
	OriginTimeStamp
	ReceiveTimeStamp
	TransmitTimeStamp
)

// liVnModeClient is LI=0, VN=3, Mode=3
const liVnModeClient = 0x1B

var errShortPacket = errors.New("packet shorter than 48 bytes")

// Packet is the on-wire NTP header. All multi-byte fields are
// big-endian on the wire, timestamps are 64bit fixed point
// (seconds since 1900 << 32 | fraction).
type Packet struct {
	LiVnMode       uint8
	Stratum        uint8
	Poll           int8
	Precision      int8
	RootDelay      uint32
	RootDispersion uint32
	ReferID        uint32
	RefTime        uint64
	OrigTime       uint64
	RecvTime       uint64
	XmitTime       uint64
}

func newRequest() *Packet {
	return &Packet{LiVnMode: liVnModeClient}
}

func (p *Packet) Leap() uint8 {
	return p.LiVnMode >> 6
}

func (p *Packet) Version() uint8 {
	return (p.LiVnMode >> 3) & 0x7
}

func (p *Packet) Mode() uint8 {
	return p.LiVnMode &^ 0xf8
}

// Encode serializes p into a fresh 48 byte datagram.
func (p *Packet) Encode() []byte {
	m := make([]byte, PacketSize)
	m[LiVnModePos] = p.LiVnMode
	m[StratumPos] = p.Stratum
	m[PollPos] = byte(p.Poll)
	m[ClockPrecisionPos] = byte(p.Precision)
	binary.BigEndian.PutUint32(m[RootDelayPos:], p.RootDelay)
	binary.BigEndian.PutUint32(m[RootDispersionPos:], p.RootDispersion)
	binary.BigEndian.PutUint32(m[ReferIDPos:], p.ReferID)
	binary.BigEndian.PutUint64(m[ReferenceTimeStamp:], p.RefTime)
	binary.BigEndian.PutUint64(m[OriginTimeStamp:], p.OrigTime)
	binary.BigEndian.PutUint64(m[ReceiveTimeStamp:], p.RecvTime)
	binary.BigEndian.PutUint64(m[TransmitTimeStamp:], p.XmitTime)
	return m
}

// ParsePacket reconstructs a header from m. Anything past offset 48 is
// ignored, anything shorter fails.
func ParsePacket(m []byte) (p *Packet, err error) {
	if len(m) < PacketSize {
		return nil, errShortPacket
	}
	p = &Packet{
		LiVnMode:       m[LiVnModePos],
		Stratum:        m[StratumPos],
		Poll:           int8(m[PollPos]),
		Precision:      int8(m[ClockPrecisionPos]),
		RootDelay:      binary.BigEndian.Uint32(m[RootDelayPos:]),
		RootDispersion: binary.BigEndian.Uint32(m[RootDispersionPos:]),
		ReferID:        binary.BigEndian.Uint32(m[ReferIDPos:]),
		RefTime:        binary.BigEndian.Uint64(m[ReferenceTimeStamp:]),
		OrigTime:       binary.BigEndian.Uint64(m[OriginTimeStamp:]),
		RecvTime:       binary.BigEndian.Uint64(m[ReceiveTimeStamp:]),
		XmitTime:       binary.BigEndian.Uint64(m[TransmitTimeStamp:]),
	}
	return
}
