// Package square implements the board's square primitive: a 0-63 index with
// rank/file decomposition and bounded delta arithmetic.
package square

import "fmt"

// Square identifies one of the 64 board squares using little-endian
// rank-file mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	// None represents "no square" - used for e.g. the lowest square of an
	// empty mask.
	None Square = 64
)

// New constructs a square from a zero-indexed file (0=a..7=h) and rank
// (0=rank 1..7=rank 8). The caller must ensure file and rank are each in
// [0,7]; out-of-range values wrap via the same arithmetic as File/Rank.
func New(file, rank int) Square {
	return Square(rank*8 + file)
}

// FromCoords is the checked factory: it fails when file or rank falls
// outside [0,7].
func FromCoords(file, rank int) (Square, error) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return None, fmt.Errorf("square: file=%d rank=%d out of range", file, rank)
	}
	return New(file, rank), nil
}

// File returns the file (column) of the square, 0=a through 7=h.
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square, 0=rank-1 through 7=rank-8.
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// IsValid reports whether the square is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < None
}

// String returns algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// Parse parses algebraic notation (e.g. "e4") into a Square.
func Parse(s string) (Square, error) {
	if len(s) != 2 {
		return None, fmt.Errorf("square: invalid notation %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return FromCoords(file, rank)
}

// MoveOnRank shifts the square delta ranks, keeping its file fixed. It fails
// if the result leaves the board.
func (sq Square) MoveOnRank(delta int) (Square, error) {
	rank := sq.Rank() + delta
	if rank < 0 || rank > 7 {
		return None, fmt.Errorf("square: rank %d out of range from %s", rank, sq)
	}
	return New(sq.File(), rank), nil
}

// MoveOnFile shifts the square delta files, keeping its rank fixed. It fails
// if the result would cross off either edge of the board.
func (sq Square) MoveOnFile(delta int) (Square, error) {
	file := sq.File() + delta
	if file < 0 || file > 7 {
		return None, fmt.Errorf("square: file %d out of range from %s", file, sq)
	}
	return New(file, sq.Rank()), nil
}

// Delta computes the independent rank and file deltas from "from" to "to"
// (to.Rank()-from.Rank(), to.File()-from.File()).
func Delta(from, to Square) (rankDelta, fileDelta int) {
	return to.Rank() - from.Rank(), to.File() - from.File()
}
