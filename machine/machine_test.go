package machine

import (
	"encoding/binary"
	"errors"
	"math"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

func obj(kvs ...any) *ir.Value {
	res := ir.NewObject()
	for i := 0; i < len(kvs); i += 2 {
		res.Set(kvs[i].(string), kvs[i+1].(*ir.Value))
	}
	return res
}

func sampleDoc() *ir.Document {
	t := ir.NewTable(
		ir.Column{Name: "id", Type: ir.IntColumn},
		ir.Column{Name: "name", Type: ir.StringColumn},
		ir.Column{Name: "score", Type: ir.FloatColumn},
		ir.Column{Name: "ok", Type: ir.BoolColumn},
	)
	rows := [][]*ir.Value{
		{ir.FromInt(1), ir.FromString("Alice"), ir.FromFloat(95.5), ir.FromBool(true)},
		{ir.FromInt(math.MinInt64), ir.FromString(""), ir.FromFloat(math.NaN()), ir.FromBool(false)},
	}
	for _, r := range rows {
		if err := t.AddRow(r); err != nil {
			panic(err)
		}
	}
	return ir.NewDocument(obj(
		"n", ir.Null(),
		"t", ir.FromBool(true),
		"f", ir.FromBool(false),
		"i", ir.FromInt(-42),
		"max", ir.FromInt(math.MaxInt64),
		"x", ir.FromFloat(-0.25),
		"s", ir.FromString("héllo 日本"),
		"arr", ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromSlice(nil), obj()}),
		"o", obj("k", ir.FromString(strings.Repeat("x", 300))),
		"users", ir.FromTable(t),
		"empty", ir.FromTable(ir.NewTable(ir.Column{Name: "a", Type: ir.IntColumn})),
	))
}

func checkKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil", kind)
	}
	var me *Error
	if !errors.As(err, &me) {
		t.Fatalf("expected *Error, got %T %v", err, err)
	}
	if me.Kind != kind {
		t.Fatalf("expected %s, got %v", kind, err)
	}
	if !errors.Is(err, kind.sentinel()) || !errors.Is(err, ErrMachine) {
		t.Errorf("errors.Is fails for %v", err)
	}
	return me
}

// frame builds a buffer with a valid header around payload.
func frame(flags byte, payload ...byte) []byte {
	b := make([]byte, HeaderSize+len(payload))
	PutHeader(b, Header{Version: Version, Flags: flags, PayloadLen: uint32(len(payload))})
	copy(b[HeaderSize:], payload)
	return b
}

const generic = FlagNative | FlagLittleEndian

func TestHeaderBytes(t *testing.T) {
	b, err := ToBytes(ir.NewDocument(nil))
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x5A, 0x44, 1, 0x03, 2, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		tagObject, 0,
	}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("bytes differ (-want +got):\n%s", diff)
	}
	b, err = ToBytes(ir.NewDocument(obj("a", ir.FromInt(1))))
	if err != nil {
		t.Fatal(err)
	}
	want = []byte{tagObject, 1, 1, 'a', tagInt, 2}
	if diff := cmp.Diff(want, b[HeaderSize:]); diff != "" {
		t.Errorf("payload differs (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	doc := sampleDoc()
	for name, opts := range map[string][]Option{
		"plain": nil,
		"zstd":  {WithCompression()},
	} {
		t.Run(name, func(t *testing.T) {
			b, err := ToBytes(doc, opts...)
			if err != nil {
				t.Fatal(err)
			}
			h, err := ReadHeader(b)
			if err != nil {
				t.Fatal(err)
			}
			if h.Compressed() != (name == "zstd") {
				t.Errorf("flags %#02x", h.Flags)
			}
			got, err := FromBytes(b)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(doc) {
				t.Errorf("round trip differs:\n%s", cmp.Diff(doc.Root.GoString(), got.Root.GoString()))
			}
		})
	}
}

func TestFromBytesErrors(t *testing.T) {
	reserved := frame(generic, tagObject, 0)
	reserved[9] = 1
	long := frame(generic, tagObject, 0)
	binary.LittleEndian.PutUint32(long[4:8], 10)
	tests := []struct {
		name string
		in   []byte
		kind Kind
	}{
		{"bad magic", []byte{0, 0, 1, 0}, InvalidMagic},
		{"empty", nil, BufferTooSmall},
		{"one byte", []byte{0x5A}, BufferTooSmall},
		{"no version", []byte{0x5A, 0x44}, BufferTooSmall},
		{"version", []byte{0x5A, 0x44, 2, 3}, UnsupportedVersion},
		{"short header", []byte{0x5A, 0x44, 1, 3, 0, 0}, BufferTooSmall},
		{"unknown flag", frame(generic|0x10, tagObject, 0), InvalidData},
		{"big endian", frame(FlagNative, tagObject, 0), InvalidData},
		{"reserved", reserved, InvalidData},
		{"payload short", long, BufferTooSmall},
		{"trailing", append(frame(generic, tagObject, 0), 0), InvalidData},
		{"slot buffer", frame(generic|FlagSlot, tagObject, 0), InvalidData},
		{"no payload", frame(generic), InvalidData},
		{"bad tag", frame(generic, 9), InvalidData},
		{"root not object", frame(generic, tagNull), InvalidData},
		{"extra payload", frame(generic, tagObject, 0, tagNull), InvalidData},
		{"huge count", frame(generic, tagObject, 0xff, 0xff, 0xff, 0xff, 0x0f), InvalidData},
		{"huge string", frame(generic, tagObject, 1, 0x7f, 'a', tagNull), InvalidData},
		{"bad varint", frame(generic, tagObject, 1, 1, 'a', tagInt, 0xff), InvalidData},
		{"short float", frame(generic, tagObject, 1, 1, 'a', tagFloat, 0, 0), InvalidData},
		{"duplicate key", frame(generic, tagObject, 2, 1, 'a', tagNull, 1, 'a', tagNull), InvalidData},
		{"bad utf8", frame(generic, tagObject, 1, 1, 0xff, tagNull), InvalidData},
		{"no columns", frame(generic, tagObject, 1, 1, 't', tagTable, 0, 0), InvalidData},
		{"bad column type", frame(generic, tagObject, 1, 1, 't', tagTable, 1, 1, 'a', 'x', 0), InvalidData},
		{"duplicate column", frame(generic, tagObject, 1, 1, 't', tagTable, 2, 1, 'a', 'i', 1, 'a', 'i', 0), InvalidData},
		{"bad bool cell", frame(generic, tagObject, 1, 1, 't', tagTable, 1, 1, 'a', 'b', 1, 2), InvalidData},
		{"too many rows", frame(generic, tagObject, 1, 1, 't', tagTable, 1, 1, 'a', 'b', 5, 1), InvalidData},
		{"bad zstd", frame(generic|FlagZstd, 1, 2, 3, 4), InvalidData},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromBytes(tc.in)
			checkKind(t, err, tc.kind)
		})
	}
}

func TestTruncations(t *testing.T) {
	b, err := ToBytes(sampleDoc())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(b); i++ {
		_, err := FromBytes(b[:i])
		me := checkKind(t, err, BufferTooSmall)
		if me.Actual != i {
			t.Errorf("prefix %d: actual %d", i, me.Actual)
		}
		if me.Required <= i {
			t.Errorf("prefix %d: required %d", i, me.Required)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	v := ir.FromInt(1)
	for i := 0; i < 10; i++ {
		v = ir.FromSlice([]*ir.Value{v})
	}
	b, err := ToBytes(ir.NewDocument(obj("a", v)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := FromBytes(b); err != nil {
		t.Fatal(err)
	}
	_, err = FromBytes(b, MaxDepth(5))
	checkKind(t, err, InvalidData)
}

func TestMaxPayload(t *testing.T) {
	doc := ir.NewDocument(obj("s", ir.FromString(strings.Repeat("a", 1000))))
	b, err := ToBytes(doc, WithCompression())
	if err != nil {
		t.Fatal(err)
	}
	_, err = FromBytes(b, MaxPayload(100))
	checkKind(t, err, InvalidData)
}

func TestDecompressionBomb(t *testing.T) {
	enc, err := encoder()
	if err != nil {
		t.Fatal(err)
	}
	payload := enc.EncodeAll(make([]byte, 64<<20), nil)
	b := frame(generic|FlagZstd, payload...)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	_, err = FromBytes(b, MaxPayload(1<<20))
	runtime.ReadMemStats(&after)
	checkKind(t, err, InvalidData)
	if grew := after.TotalAlloc - before.TotalAlloc; grew > 16<<20 {
		t.Errorf("decoding allocated %d bytes", grew)
	}

	// frames over the limit fail without being inflated
	small := enc.EncodeAll(make([]byte, 4096), nil)
	_, err = FromBytes(frame(generic|FlagZstd, small...), MaxPayload(1000))
	checkKind(t, err, InvalidData)
}

func TestEncoderReuse(t *testing.T) {
	e := NewEncoder()
	a, err := e.Encode(ir.NewDocument(obj("a", ir.FromString("first"))))
	if err != nil {
		t.Fatal(err)
	}
	keep := append([]byte(nil), a...)
	if _, err := e.Encode(ir.NewDocument(obj("b", ir.FromString("second value")))); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(keep, a); diff != "" {
		t.Errorf("first buffer changed:\n%s", diff)
	}
}

func TestEncodeNoColumns(t *testing.T) {
	_, err := ToBytes(ir.NewDocument(obj("t", ir.FromTable(ir.NewTable()))))
	checkKind(t, err, InvalidData)
}
