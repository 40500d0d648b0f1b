package arena

import "testing"

func TestAllocateWithinCapacity(t *testing.T) {
	a := New(64)
	b, ok := a.Allocate(16)
	if !ok {
		t.Fatalf("expected allocation to succeed")
	}
	if len(b) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(b))
	}
	if a.Len() == 0 {
		t.Fatalf("expected arena offset to advance")
	}
}

func TestAllocateExhaustion(t *testing.T) {
	a := New(8)
	before := a.Len()
	_, ok := a.Allocate(32)
	if ok {
		t.Fatalf("expected allocation beyond capacity to fail")
	}
	if a.Len() != before {
		t.Fatalf("failed allocation must not move the offset: before=%d after=%d", before, a.Len())
	}
}

func TestAllocateStringRoundTrip(t *testing.T) {
	a := New(128)
	s, ok := a.AllocateString("hello")
	if !ok || s != "hello" {
		t.Fatalf("expected copy of string, got %q ok=%v", s, ok)
	}
}

func TestResetReclaimsSpace(t *testing.T) {
	a := New(16)
	if _, ok := a.Allocate(16); !ok {
		t.Fatalf("expected first allocation to succeed")
	}
	if _, ok := a.Allocate(1); ok {
		t.Fatalf("expected arena to be full")
	}
	a.Reset()
	if a.Len() != 0 {
		t.Fatalf("expected reset to zero the offset")
	}
	if _, ok := a.Allocate(16); !ok {
		t.Fatalf("expected allocation after reset to succeed")
	}
}

func TestDestroyReleasesBuffer(t *testing.T) {
	a := New(16)
	a.Destroy()
	if a.Cap() != 0 {
		t.Fatalf("expected capacity to be zero after destroy")
	}
}
