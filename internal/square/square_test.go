package square

import "testing"

func TestNewAndDecompose(t *testing.T) {
	tests := []struct {
		file, rank int
		want       Square
	}{
		{0, 0, A1},
		{7, 0, H1},
		{0, 7, A8},
		{7, 7, H8},
		{4, 3, E4},
	}
	for _, tc := range tests {
		got := New(tc.file, tc.rank)
		if got != tc.want {
			t.Errorf("New(%d,%d) = %d, want %d", tc.file, tc.rank, got, tc.want)
		}
		if got.File() != tc.file || got.Rank() != tc.rank {
			t.Errorf("%s: File()=%d Rank()=%d, want %d,%d", got, got.File(), got.Rank(), tc.file, tc.rank)
		}
	}
}

func TestFromCoordsRejectsOutOfRange(t *testing.T) {
	tests := [][2]int{{-1, 0}, {8, 0}, {0, -1}, {0, 8}}
	for _, tc := range tests {
		if _, err := FromCoords(tc[0], tc[1]); err == nil {
			t.Errorf("FromCoords(%d,%d) succeeded, want error", tc[0], tc[1])
		}
	}
}

func TestParseAndString(t *testing.T) {
	tests := map[string]Square{
		"a1": A1, "h1": H1, "a8": A8, "h8": H8, "e4": E4,
	}
	for s, want := range tests {
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %d, want %d", s, got, want)
		}
		if got.String() != s {
			t.Errorf("%d.String() = %q, want %q", got, got.String(), s)
		}
	}
}

func TestMoveOnRankAndFileBounds(t *testing.T) {
	if _, err := E4.MoveOnRank(10); err == nil {
		t.Error("MoveOnRank(10) from e4 should fail")
	}
	if _, err := A1.MoveOnFile(-1); err == nil {
		t.Error("MoveOnFile(-1) from a1 should fail")
	}
	got, err := E4.MoveOnRank(1)
	if err != nil || got != E5 {
		t.Errorf("E4.MoveOnRank(1) = %s, %v, want e5, nil", got, err)
	}
}

func TestDelta(t *testing.T) {
	rankDelta, fileDelta := Delta(E2, E4)
	if rankDelta != 2 || fileDelta != 0 {
		t.Errorf("Delta(e2,e4) = %d,%d, want 2,0", rankDelta, fileDelta)
	}
	rankDelta, fileDelta = Delta(E4, D5)
	if rankDelta != 1 || fileDelta != -1 {
		t.Errorf("Delta(e4,d5) = %d,%d, want 1,-1", rankDelta, fileDelta)
	}
}
