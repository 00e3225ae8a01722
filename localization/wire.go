package localization

import "encoding/binary"

// Opcode is the first field of every outbound payload.
type Opcode uint16

const (
	OpMessageChat    Opcode = 0x096
	OpChannelNotify  Opcode = 0x099
	OpTextEmote      Opcode = 0x105
	OpNotification   Opcode = 0x1CB
	OpWrongFaction   Opcode = 0x219
	OpPlayerNotFound Opcode = 0x2A9
	OpChatRestricted Opcode = 0x2FD
)

// packet appends little-endian fields to a byte slice.
type packet struct {
	buf []byte
}

func newPacket(op Opcode, size int) *packet {
	p := &packet{buf: make([]byte, 0, 2+size)}
	return p.u16(uint16(op))
}

func (p *packet) u8(v uint8) *packet {
	p.buf = append(p.buf, v)
	return p
}

func (p *packet) u16(v uint16) *packet {
	p.buf = binary.LittleEndian.AppendUint16(p.buf, v)
	return p
}

func (p *packet) u32(v uint32) *packet {
	p.buf = binary.LittleEndian.AppendUint32(p.buf, v)
	return p
}

func (p *packet) u64(v uint64) *packet {
	p.buf = binary.LittleEndian.AppendUint64(p.buf, v)
	return p
}

// cstring writes s followed by a NUL byte.
func (p *packet) cstring(s string) *packet {
	p.buf = append(p.buf, s...)
	p.buf = append(p.buf, 0)
	return p
}

func (p *packet) bytes() []byte { return p.buf }
