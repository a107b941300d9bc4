package machine

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var (
	zOnce sync.Once
	zEnc  *zstd.Encoder
	zErr  error
)

// encoder returns the process wide zstd encoder. It is safe for
// concurrent EncodeAll calls. Frames are single segment, so their window
// is the payload size.
func encoder() (*zstd.Encoder, error) {
	zOnce.Do(func() {
		zEnc, zErr = zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithSingleSegment(true),
		)
	})
	return zEnc, zErr
}

func compress(dst, src []byte) ([]byte, error) {
	enc, err := encoder()
	if err != nil {
		return nil, err
	}
	return enc.EncodeAll(src, dst), nil
}

// windowLimit bounds the zstd window and decoded size for payloads of
// at most limit bytes.
func windowLimit(limit int) uint64 {
	w := 2 * uint64(limit)
	w = max(w, zstd.MinWindowSize)
	return min(w, zstd.MaxWindowSize)
}

// decompress inflates src, never holding more than limit+1 decoded
// bytes.
func decompress(src []byte, limit int) ([]byte, error) {
	w := windowLimit(limit)
	dec, err := zstd.NewReader(bytes.NewReader(src),
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(w),
		zstd.WithDecoderMaxWindow(w),
	)
	if err != nil {
		return nil, &Error{Kind: InvalidData, Offset: HeaderSize, Reason: "bad zstd payload", Err: err}
	}
	defer dec.Close()
	out, err := io.ReadAll(io.LimitReader(dec, int64(limit)+1))
	if err != nil {
		return nil, &Error{Kind: InvalidData, Offset: HeaderSize, Reason: "bad zstd payload", Err: err}
	}
	if len(out) > limit {
		return nil, invalid(HeaderSize, "decompressed payload exceeds %d bytes", limit)
	}
	return out, nil
}
