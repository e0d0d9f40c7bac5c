package resp

import "testing"

func TestFrameEqualStructural(t *testing.T) {
	a := Array([]Frame{BulkStringFromString("a"), Integer(1)})
	b := Array([]Frame{BulkStringFromString("a"), Integer(1)})
	if !a.Equal(b) {
		t.Fatalf("expected equal arrays")
	}
	c := Array([]Frame{BulkStringFromString("a"), Integer(2)})
	if a.Equal(c) {
		t.Fatalf("expected unequal arrays")
	}
}

func TestFrameEqualMapOrderIndependent(t *testing.T) {
	a := Map([]MapEntry{{Key: "x", Value: Integer(1)}, {Key: "y", Value: Integer(2)}})
	b := Map([]MapEntry{{Key: "y", Value: Integer(2)}, {Key: "x", Value: Integer(1)}})
	if !a.Equal(b) {
		t.Fatalf("expected maps equal regardless of entry order")
	}
}

func TestFrameCloneSharesPayload(t *testing.T) {
	original := BulkStringFromString("hello")
	clone := original.Clone()
	if !original.Equal(clone) {
		t.Fatalf("clone should be structurally equal to original")
	}
	if &clone.Bulk()[0] != &original.Bulk()[0] {
		t.Fatalf("clone should share the original's payload bytes")
	}
}

func TestBulkStringNilPromotesToEmpty(t *testing.T) {
	f := BulkString(nil)
	if f.Kind() != KindBulkString || len(f.Bulk()) != 0 {
		t.Fatalf("expected empty bulk string, got %+v", f)
	}
}
