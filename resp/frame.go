// Package resp implements the RESP2/RESP3 wire protocol: a tagged frame
// type (Kind), an encoder, and an incremental, allocation-conscious decoder.
package resp

import "sort"

// Kind identifies which of the ten RESP shapes a Frame holds.
type Kind uint8

const (
	KindSimpleString Kind = iota
	KindSimpleError
	KindInteger
	KindBulkString
	KindArray
	KindNull
	KindBoolean
	KindDouble
	KindMap
	KindSet
)

func (k Kind) String() string {
	switch k {
	case KindSimpleString:
		return "SimpleString"
	case KindSimpleError:
		return "SimpleError"
	case KindInteger:
		return "Integer"
	case KindBulkString:
		return "BulkString"
	case KindArray:
		return "Array"
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindDouble:
		return "Double"
	case KindMap:
		return "Map"
	case KindSet:
		return "Set"
	default:
		return "Unknown"
	}
}

// MapEntry is one key/value pair of a Map frame. Keys are plain UTF-8
// strings, never frames, and go on the wire as SimpleString; Map keys of
// any other frame type are not supported.
type MapEntry struct {
	Key   string
	Value Frame
}

// Frame is a closed, immutable variant over the ten RESP shapes. The zero
// Frame is a SimpleString of "". Frame values are cheap to copy: slice and
// map-entry payloads are shared, never deep-copied, by Clone.
type Frame struct {
	kind    Kind
	str     string // SimpleString, SimpleError payload
	integer int64
	bulk    []byte
	array   []Frame
	boolean bool
	double  float64
	mapping []MapEntry
	set     []Frame
}

// Kind reports which variant f holds.
func (f Frame) Kind() Kind { return f.kind }

// SimpleString builds a SimpleString frame.
func SimpleString(s string) Frame { return Frame{kind: KindSimpleString, str: s} }

// SimpleError builds a SimpleError frame.
func SimpleError(s string) Frame { return Frame{kind: KindSimpleError, str: s} }

// Integer builds an Integer frame.
func Integer(n int64) Frame { return Frame{kind: KindInteger, integer: n} }

// BulkString builds a BulkString frame from an owned byte slice.
func BulkString(b []byte) Frame {
	if b == nil {
		b = []byte{}
	}
	return Frame{kind: KindBulkString, bulk: b}
}

// BulkStringFromString is the raw-string promotion of BulkString: a plain
// Go string is binary-safe RESP payload too, it just needs converting.
func BulkStringFromString(s string) Frame {
	return Frame{kind: KindBulkString, bulk: []byte(s)}
}

// Array builds an Array frame. A nil slice is treated as an empty array.
func Array(items []Frame) Frame {
	if items == nil {
		items = []Frame{}
	}
	return Frame{kind: KindArray, array: items}
}

// Null builds the RESP3 Null frame.
func Null() Frame { return Frame{kind: KindNull} }

// Boolean builds a Boolean frame.
func Boolean(b bool) Frame { return Frame{kind: KindBoolean, boolean: b} }

// Double builds a Double frame.
func Double(x float64) Frame { return Frame{kind: KindDouble, double: x} }

// Map builds a Map frame from entries in caller-supplied order; Encode is
// responsible for emitting them in ascending key order on the wire.
func Map(entries []MapEntry) Frame {
	if entries == nil {
		entries = []MapEntry{}
	}
	return Frame{kind: KindMap, mapping: entries}
}

// Set builds a Set frame from its member frames, in caller-supplied order.
func Set(items []Frame) Frame {
	if items == nil {
		items = []Frame{}
	}
	return Frame{kind: KindSet, set: items}
}

// Str returns the payload of a SimpleString or SimpleError frame.
func (f Frame) Str() string { return f.str }

// Int returns the payload of an Integer frame.
func (f Frame) Int() int64 { return f.integer }

// Bulk returns the payload of a BulkString frame.
func (f Frame) Bulk() []byte { return f.bulk }

// Items returns the elements of an Array or Set frame.
func (f Frame) Items() []Frame {
	if f.kind == KindSet {
		return f.set
	}
	return f.array
}

// Bool returns the payload of a Boolean frame.
func (f Frame) Bool() bool { return f.boolean }

// Float returns the payload of a Double frame.
func (f Frame) Float() float64 { return f.double }

// Entries returns the key/value pairs of a Map frame, in the order they
// were constructed (Encode, not this accessor, imposes wire ordering).
func (f Frame) Entries() []MapEntry { return f.mapping }

// Clone returns a value copy of f. Payload slices are shared with the
// original; callers that mutate a cloned frame's backing bytes affect
// both copies.
func (f Frame) Clone() Frame { return f }

// Equal reports whether f and other are structurally identical. Double
// frames compare with plain float64 equality (no epsilon tolerance).
func (f Frame) Equal(other Frame) bool {
	if f.kind != other.kind {
		return false
	}
	switch f.kind {
	case KindSimpleString, KindSimpleError:
		return f.str == other.str
	case KindInteger:
		return f.integer == other.integer
	case KindBulkString:
		return bytesEqual(f.bulk, other.bulk)
	case KindArray, KindSet:
		a, b := f.Items(), other.Items()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case KindNull:
		return true
	case KindBoolean:
		return f.boolean == other.boolean
	case KindDouble:
		return f.double == other.double
	case KindMap:
		if len(f.mapping) != len(other.mapping) {
			return false
		}
		am := sortedEntries(f.mapping)
		bm := sortedEntries(other.mapping)
		for i := range am {
			if am[i].Key != bm[i].Key || !am[i].Value.Equal(bm[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func sortedEntries(entries []MapEntry) []MapEntry {
	out := make([]MapEntry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
