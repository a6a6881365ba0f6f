// Package attacks implements the pure, deterministic move-pattern
// generators: blocker masks and ray-cast attack patterns for rooks and
// bishops, and the occupancy-independent knight pattern. These are the
// reference functions the magic builder (package magic) checks its fast
// lookup against, and the ones used directly to materialize each magic
// table's entries.
package attacks

import (
	"github.com/corvidchess/engine/internal/mask"
	"github.com/corvidchess/engine/internal/square"
)

// rookDirections and bishopDirections are (file-delta, rank-delta) steps for
// the four rook rays and four bishop rays respectively.
var rookDirections = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// RookMask returns the relevant blocker mask for a rook on sq: every square
// on its rank and file, excluding sq itself and excluding the ray's two
// edge squares (a piece on an edge can never block further movement, and
// each excluded square halves the blocker index space).
func RookMask(sq square.Square) mask.BoardMask {
	file, rank := sq.File(), sq.Rank()
	var m mask.BoardMask

	for f := 1; f < 7; f++ {
		if f != file {
			m = m.Set(square.New(f, rank))
		}
	}
	for r := 1; r < 7; r++ {
		if r != rank {
			m = m.Set(square.New(file, r))
		}
	}
	return m
}

// BishopMask returns the relevant blocker mask for a bishop on sq: both
// diagonals through sq, excluding sq and the board edges.
func BishopMask(sq square.Square) mask.BoardMask {
	file, rank := sq.File(), sq.Rank()
	var m mask.BoardMask

	for _, d := range bishopDirections {
		f, r := file+d[0], rank+d[1]
		for f > 0 && f < 7 && r > 0 && r < 7 {
			m = m.Set(square.New(f, r))
			f += d[0]
			r += d[1]
		}
	}
	return m
}

// RookAttacks ray-casts the four cardinal rays from sq, stopping at (and
// including) the first occupied square on each ray.
func RookAttacks(sq square.Square, occ mask.Occupancy) mask.BoardMask {
	return rayAttacks(sq, occ, rookDirections)
}

// BishopAttacks ray-casts the four diagonal rays from sq, stopping at (and
// including) the first occupied square on each ray.
func BishopAttacks(sq square.Square, occ mask.Occupancy) mask.BoardMask {
	return rayAttacks(sq, occ, bishopDirections)
}

// QueenAttacks is the union of rook and bishop attacks from the same square.
func QueenAttacks(sq square.Square, occ mask.Occupancy) mask.BoardMask {
	return RookAttacks(sq, occ).Union(BishopAttacks(sq, occ))
}

func rayAttacks(sq square.Square, occ mask.Occupancy, directions [4][2]int) mask.BoardMask {
	file, rank := sq.File(), sq.Rank()
	var attacks mask.BoardMask

	for _, d := range directions {
		for f, r := file+d[0], rank+d[1]; f >= 0 && f <= 7 && r >= 0 && r <= 7; f, r = f+d[0], r+d[1] {
			s := square.New(f, r)
			attacks = attacks.Set(s)
			if occ.Has(s) {
				break
			}
		}
	}
	return attacks
}

// knightDeltas are the eight (file-delta, rank-delta) L-shaped steps.
var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// KnightPattern returns the knight's up-to-eight destinations from sq,
// bounded by the board edges. It does not depend on occupancy.
func KnightPattern(sq square.Square) mask.BoardMask {
	file, rank := sq.File(), sq.Rank()
	var m mask.BoardMask

	for _, d := range knightDeltas {
		f, r := file+d[0], rank+d[1]
		if f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			m = m.Set(square.New(f, r))
		}
	}
	return m
}

// KingPattern returns the king's up-to-eight adjacent squares, bounded by
// the board edges.
func KingPattern(sq square.Square) mask.BoardMask {
	file, rank := sq.File(), sq.Rank()
	var m mask.BoardMask

	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			f, r := file+df, rank+dr
			if f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				m = m.Set(square.New(f, r))
			}
		}
	}
	return m
}

// PawnAttacks returns the two diagonal-forward squares a pawn attacks from
// sq, bounded by the board edges. forward is +1 for White (attacks go up
// the ranks) and -1 for Black (attacks go down); this mirrors the direction
// convention the game package uses for pawn pushes, keeping this leaf
// package free of a dependency on the piece package's Color type.
func PawnAttacks(sq square.Square, forward int) mask.BoardMask {
	file, rank := sq.File(), sq.Rank()
	var m mask.BoardMask
	for _, df := range [2]int{-1, 1} {
		f, r := file+df, rank+forward
		if f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			m = m.Set(square.New(f, r))
		}
	}
	return m
}
