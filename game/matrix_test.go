package game

import "testing"

func TestMatrixGetSetCopy(t *testing.T) {
	m := NewMatrix(3, 2, -1)
	if m.Width() != 3 || m.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", m.Width(), m.Height())
	}
	if got := m.Get(2, 1); got != -1 {
		t.Fatalf("default fill = %d, want -1", got)
	}
	m.Set(2, 1, 7)
	m.Set(0, 1, 3)

	clone := m.Copy()
	clone.Set(2, 1, 9)
	if got := m.Get(2, 1); got != 7 {
		t.Fatalf("original changed through copy: %d", got)
	}
	if got := clone.Max(); got != 9 {
		t.Fatalf("clone max = %d, want 9", got)
	}
	if got := m.Max(); got != 7 {
		t.Fatalf("max = %d, want 7", got)
	}

	rows := m.Rows()
	if len(rows) != 2 || rows[1][0] != 3 || rows[1][2] != 7 || rows[0][1] != -1 {
		t.Fatalf("rows = %v", rows)
	}
}

func TestMatrixSetOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-range set")
		}
	}()
	NewMatrix(8, 8, 0).Set(8, 0, 1)
}

func TestBounds(t *testing.T) {
	cells := map[Position]bool{
		Pos(1, 5): true, Pos(8, 8): true, Pos(-1, 4): false,
		Pos(9, 4): false, Pos(4, -1): false, Pos(4, 9): false,
	}
	for p, want := range cells {
		if got := IsCellInBounds(p); got != want {
			t.Errorf("IsCellInBounds(%v) = %v, want %v", p, got, want)
		}
	}
	slots := map[Position]bool{
		Pos(5, 1): true, Pos(7, 7): true, Pos(-1, 4): false,
		Pos(8, 4): false, Pos(4, -1): false, Pos(4, 8): false,
	}
	for p, want := range slots {
		if got := IsWallSlotInBounds(p); got != want {
			t.Errorf("IsWallSlotInBounds(%v) = %v, want %v", p, got, want)
		}
	}
}
