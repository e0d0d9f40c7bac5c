package resp

import (
	"errors"
	"testing"
)

func TestDecodeScenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Frame
	}{
		{"get request array", "*2\r\n$3\r\nget\r\n$5\r\nhello\r\n",
			Array([]Frame{BulkStringFromString("get"), BulkStringFromString("hello")})},
		{"simple string", "+OK\r\n", SimpleString("OK")},
		{"simple error", "-ERR bad\r\n", SimpleError("ERR bad")},
		{"integer", ":1000\r\n", Integer(1000)},
		{"negative integer", ":-5\r\n", Integer(-5)},
		{"legacy null bulk", "$-1\r\n", BulkString(nil)},
		{"legacy null array", "*-1\r\n", Array(nil)},
		{"null", "_\r\n", Null()},
		{"bool true", "#t\r\n", Boolean(true)},
		{"bool false", "#f\r\n", Boolean(false)},
		{"set", "~2\r\n:1\r\n:2\r\n", Set([]Frame{Integer(1), Integer(2)})},
		{"map", "%1\r\n+a\r\n:1\r\n", Map([]MapEntry{{Key: "a", Value: Integer(1)}})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, n, err := Decode([]byte(tc.input))
			if err != nil {
				t.Fatalf("Decode error: %v", err)
			}
			if n != len(tc.input) {
				t.Fatalf("consumed %d bytes, want %d", n, len(tc.input))
			}
			if !f.Equal(tc.want) {
				t.Fatalf("Decode(%q) = %+v, want %+v", tc.input, f, tc.want)
			}
		})
	}
}

func TestDecodeIncompleteLeavesCallerFree(t *testing.T) {
	input := []byte("*2\r\n$3\r\nget")
	_, _, err := Decode(input)
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if string(input) != "*2\r\n$3\r\nget" {
		t.Fatalf("input buffer was mutated")
	}
}

func TestDecodeInvalidType(t *testing.T) {
	_, _, err := Decode([]byte("@nope\r\n"))
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestDecodeMapKeyMustBeSimpleString(t *testing.T) {
	_, _, err := Decode([]byte("%1\r\n:1\r\n:2\r\n"))
	if !errors.Is(err, ErrInvalidFrame) {
		t.Fatalf("expected ErrInvalidFrame, got %v", err)
	}
}

func TestDecodeBadLengthMismatch(t *testing.T) {
	_, _, err := Decode([]byte("$3\r\nabcXY"))
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}
