package resp

import (
	"errors"
	"testing"
)

// roundtripFrames covers every non-Double variant; Double is excluded
// from the round-trip guarantee since its fixed/scientific formatting
// isn't guaranteed to reproduce every input's exact notation.
func roundtripFrames() []Frame {
	return []Frame{
		SimpleString("OK"),
		SimpleError("ERR bad"),
		Integer(0),
		Integer(-123456),
		BulkStringFromString(""),
		BulkStringFromString("hello world"),
		BulkString([]byte{0, '\r', '\n', 0xff}),
		Array(nil),
		Array([]Frame{BulkStringFromString("a"), Integer(1), Boolean(true)}),
		Null(),
		Boolean(true),
		Boolean(false),
		Set([]Frame{Integer(1), Integer(2), Integer(3)}),
		Map([]MapEntry{{Key: "a", Value: Integer(1)}, {Key: "b", Value: BulkStringFromString("x")}}),
		Array([]Frame{
			Array([]Frame{Integer(1), Integer(2)}),
			Map([]MapEntry{{Key: "k", Value: Null()}}),
		}),
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, f := range roundtripFrames() {
		encoded := Encode(f)
		decoded, n, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(Encode(%+v)) error: %v", f, err)
		}
		if n != len(encoded) {
			t.Fatalf("consumed %d of %d bytes for %+v", n, len(encoded), f)
		}
		if !decoded.Equal(f) {
			t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, f)
		}
	}
}

func TestExpectLengthMatchesEncodedSize(t *testing.T) {
	for _, f := range roundtripFrames() {
		encoded := Encode(f)
		for cut := 0; cut < len(encoded); cut++ {
			if _, err := ExpectLength(encoded[:cut]); !errors.Is(err, ErrIncomplete) {
				t.Fatalf("prefix of length %d of %+v: expected Incomplete, got %v", cut, f, err)
			}
		}
		n, err := ExpectLength(encoded)
		if err != nil {
			t.Fatalf("ExpectLength(%+v) error: %v", f, err)
		}
		if n != len(encoded) {
			t.Fatalf("ExpectLength(%+v) = %d, want %d", f, n, len(encoded))
		}
	}
}

func TestIncrementalDecodeByteAtATime(t *testing.T) {
	for _, f := range roundtripFrames() {
		encoded := Encode(f)
		buf := NewBuffer(nil)
		var got *Frame
		for i := 0; i < len(encoded); i++ {
			buf.Write(encoded[i : i+1])
			decoded, n, err := Decode(buf.Bytes())
			if errors.Is(err, ErrIncomplete) {
				continue
			}
			if err != nil {
				t.Fatalf("unexpected error decoding %+v incrementally: %v", f, err)
			}
			buf.Advance(n)
			got = &decoded
			break
		}
		if got == nil {
			t.Fatalf("never completed decoding %+v", f)
		}
		if !got.Equal(f) {
			t.Fatalf("incremental decode mismatch: got %+v, want %+v", *got, f)
		}
		if buf.Len() != 0 {
			t.Fatalf("buffer not fully drained after decoding %+v", f)
		}
	}
}

func TestDecodeBoundaryPartialGetLeavesBufferIntact(t *testing.T) {
	input := []byte("*2\r\n$3\r\nget")
	_, _, err := Decode(input)
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if string(input) != "*2\r\n$3\r\nget" {
		t.Fatalf("buffer was mutated on Incomplete")
	}
}
