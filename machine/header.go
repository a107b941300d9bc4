package machine

import (
	"encoding/binary"
	"strconv"
)

const (
	HeaderSize = 16
	Magic0     = 0x5A
	Magic1     = 0x44
	Version    = 1
)

const (
	FlagNative       uint8 = 0x01
	FlagLittleEndian uint8 = 0x02
	FlagSlot         uint8 = 0x04
	FlagZstd         uint8 = 0x08

	knownFlags = FlagNative | FlagLittleEndian | FlagSlot | FlagZstd
)

type Header struct {
	Version    uint8
	Flags      uint8
	PayloadLen uint32
}

func (h Header) Compressed() bool { return h.Flags&FlagZstd != 0 }
func (h Header) Slot() bool       { return h.Flags&FlagSlot != 0 }

// PutHeader writes h into dst[:HeaderSize].
func PutHeader(dst []byte, h Header) {
	_ = dst[HeaderSize-1]
	dst[0] = Magic0
	dst[1] = Magic1
	dst[2] = h.Version
	dst[3] = h.Flags
	binary.LittleEndian.PutUint32(dst[4:8], h.PayloadLen)
	clear(dst[8:HeaderSize])
}

// ReadHeader validates the header at the start of b: magic, version,
// size, flags and reserved bytes in that order, then that b holds the
// whole payload and nothing more.
func ReadHeader(b []byte) (Header, error) {
	if len(b) < 2 {
		return Header{}, tooSmall(HeaderSize, len(b))
	}
	if b[0] != Magic0 || b[1] != Magic1 {
		return Header{}, &Error{Kind: InvalidMagic, Offset: 0, Reason: "expected 5A 44"}
	}
	if len(b) < 3 {
		return Header{}, tooSmall(HeaderSize, len(b))
	}
	if b[2] != Version {
		return Header{}, &Error{Kind: UnsupportedVersion, Offset: 2, Reason: "version " + strconv.Itoa(int(b[2]))}
	}
	if len(b) < HeaderSize {
		return Header{}, tooSmall(HeaderSize, len(b))
	}
	h := Header{
		Version:    b[2],
		Flags:      b[3],
		PayloadLen: binary.LittleEndian.Uint32(b[4:8]),
	}
	if h.Flags&^knownFlags != 0 {
		return h, invalid(3, "unknown flags %#02x", h.Flags&^knownFlags)
	}
	if h.Flags&FlagNative == 0 || h.Flags&FlagLittleEndian == 0 {
		return h, invalid(3, "flags %#02x lack native little endian payload", h.Flags)
	}
	for i := 8; i < HeaderSize; i++ {
		if b[i] != 0 {
			return h, invalid(i, "reserved byte is not zero")
		}
	}
	need := uint64(HeaderSize) + uint64(h.PayloadLen)
	if uint64(len(b)) < need {
		return h, tooSmall(int(need), len(b))
	}
	if uint64(len(b)) > need {
		return h, invalid(int(need), "%d trailing bytes", uint64(len(b))-need)
	}
	return h, nil
}
