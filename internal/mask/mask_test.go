package mask

import (
	"testing"

	"github.com/corvidchess/engine/internal/square"
)

func TestSetClearHas(t *testing.T) {
	var m BoardMask
	m = m.Set(square.E4)
	if !m.Has(square.E4) {
		t.Fatal("expected e4 to be a member after Set")
	}
	m = m.Clear(square.E4)
	if m.Has(square.E4) {
		t.Fatal("expected e4 to be absent after Clear")
	}
}

func TestUnionIntersectSymDiffComplement(t *testing.T) {
	a := Empty.Set(square.A1).Set(square.B1)
	b := Empty.Set(square.B1).Set(square.C1)

	if got := a.Union(b); got.PopCount() != 3 {
		t.Errorf("Union popcount = %d, want 3", got.PopCount())
	}
	if got := a.Intersect(b); got != Of(square.B1) {
		t.Errorf("Intersect = %v, want {b1}", got)
	}
	if got := a.SymDiff(b); got.PopCount() != 2 || got.Has(square.B1) {
		t.Errorf("SymDiff = %v, want {a1,c1}", got)
	}
	if got := Full.Complement(); got != Empty {
		t.Errorf("Full.Complement() = %v, want Empty", got)
	}
}

func TestPopCountAndIsEmpty(t *testing.T) {
	if !Empty.IsEmpty() {
		t.Error("Empty should be empty")
	}
	if Full.PopCount() != 64 {
		t.Errorf("Full.PopCount() = %d, want 64", Full.PopCount())
	}
}

func TestSquaresAscendingOrder(t *testing.T) {
	m := Empty.Set(square.H8).Set(square.A1).Set(square.D4)
	got := m.Squares()
	want := []square.Square{square.A1, square.D4, square.H8}
	if len(got) != len(want) {
		t.Fatalf("Squares() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Squares()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPopLSBConsumesInAscendingOrder(t *testing.T) {
	m := Empty.Set(square.C1).Set(square.A1)
	first := m.PopLSB()
	if first != square.A1 {
		t.Errorf("first PopLSB = %d, want a1", first)
	}
	second := m.PopLSB()
	if second != square.C1 {
		t.Errorf("second PopLSB = %d, want c1", second)
	}
	if !m.IsEmpty() {
		t.Errorf("mask should be empty after popping every member, got %v", m)
	}
}

func TestOccupancyMirrorsBoardMaskAlgebra(t *testing.T) {
	var o Occupancy
	o = o.Set(square.E4).Set(square.D5)
	if o.PopCount() != 2 {
		t.Errorf("PopCount() = %d, want 2", o.PopCount())
	}
	if !o.Has(square.E4) {
		t.Error("expected e4 occupied")
	}
	o = o.Clear(square.E4)
	if o.Has(square.E4) {
		t.Error("expected e4 cleared")
	}
}

func TestMaskAsOccupancyRoundTrip(t *testing.T) {
	b := Empty.Set(square.A1).Set(square.H8)
	o := MaskAsOccupancy(b)
	if o.AsMask() != b {
		t.Errorf("round trip mismatch: got %v, want %v", o.AsMask(), b)
	}
}
