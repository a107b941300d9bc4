package machine

import (
	"math"
	"sync"

	"github.com/najmus-sakib-hossain/zed-sub048/debug"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

// Encoder keeps scratch buffers across encodings. It is not safe for
// concurrent use; give each worker its own.
type Encoder struct {
	opts    *opts
	scratch []byte
	zbuf    []byte
}

var encPool = sync.Pool{New: func() any { return &Encoder{} }}

func NewEncoder(opts ...Option) *Encoder {
	return &Encoder{opts: newOpts(opts)}
}

// Encode returns a new buffer holding doc. The buffer does not share
// memory with the encoder.
func (e *Encoder) Encode(doc *ir.Document) ([]byte, error) {
	if e.opts == nil {
		e.opts = newOpts(nil)
	}
	payload, err := appendValue(e.scratch[:0], doc.Root)
	if err != nil {
		return nil, err
	}
	e.scratch = payload
	flags := FlagNative | FlagLittleEndian
	if e.opts.compress {
		if e.zbuf, err = compress(e.zbuf[:0], payload); err != nil {
			return nil, err
		}
		payload = e.zbuf
		flags |= FlagZstd
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, invalid(-1, "payload of %d bytes does not fit the header", len(payload))
	}
	out := make([]byte, HeaderSize+len(payload))
	PutHeader(out, Header{Version: Version, Flags: flags, PayloadLen: uint32(len(payload))})
	copy(out[HeaderSize:], payload)
	if debug.Machine() {
		debug.Logf("machine: encoded %d bytes (payload %d, flags %#02x)\n", len(out), len(payload), flags)
	}
	return out, nil
}

// EncodeRecord encodes record with the slot layout l into the encoder's
// scratch buffer. The result is overwritten by the next EncodeRecord or
// Encode call.
func (e *Encoder) EncodeRecord(l *Layout, record *ir.Value) ([]byte, error) {
	b, err := l.AppendEncode(e.scratch[:0], record)
	if err != nil {
		return nil, err
	}
	e.scratch = b
	return b, nil
}

// Reset releases the scratch buffers.
func (e *Encoder) Reset() {
	e.scratch = nil
	e.zbuf = nil
}
