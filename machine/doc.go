// Package machine implements the binary document format.
//
// Every buffer starts with a 16 byte little endian header:
//
//	0-1   magic 0x5A 0x44
//	2     version (1)
//	3     flags: bit0 native payload, bit1 little endian, bit2 slot
//	      layout, bit3 zstd compressed payload
//	4-7   payload length
//	8-15  reserved, zero
//
// A generic payload is a tagged encoding of a whole document; see
// ToBytes and FromBytes. A slot payload is a fixed struct described by a
// Layout followed by a heap of long strings; View validates one and
// returns a zero-copy accessor.
//
// Decoding never trusts the input: counts, offsets and lengths are
// checked against the buffer before use and failures are reported as
// *Error.
package machine
