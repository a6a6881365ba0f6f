// Package mask implements 64-bit square sets: BoardMask, a general-purpose
// set of squares, and Occupancy, the structurally identical type used
// specifically for "which squares hold any piece". Keeping them distinct
// types stops a BoardMask meant as an attack pattern from being passed where
// an Occupancy was expected, and vice versa, even though both share the same
// bitwise algebra.
package mask

import (
	"fmt"
	"math/bits"

	"github.com/corvidchess/engine/internal/square"
)

// BoardMask is a 64-bit set of squares, one bit per square in little-endian
// rank-file order (bit 0 = a1, bit 63 = h8).
type BoardMask uint64

// Occupancy has the exact same representation as BoardMask but is kept
// distinct in the type system: it is specifically the set of squares
// currently holding any piece, and it is what the magic hash is computed
// over.
type Occupancy uint64

// File masks.
const (
	FileA BoardMask = 0x0101010101010101
	FileB BoardMask = FileA << 1
	FileC BoardMask = FileA << 2
	FileD BoardMask = FileA << 3
	FileE BoardMask = FileA << 4
	FileF BoardMask = FileA << 5
	FileG BoardMask = FileA << 6
	FileH BoardMask = FileA << 7
)

// Rank masks.
const (
	Rank1 BoardMask = 0x00000000000000FF
	Rank2 BoardMask = Rank1 << (8 * 1)
	Rank3 BoardMask = Rank1 << (8 * 2)
	Rank4 BoardMask = Rank1 << (8 * 3)
	Rank5 BoardMask = Rank1 << (8 * 4)
	Rank6 BoardMask = Rank1 << (8 * 5)
	Rank7 BoardMask = Rank1 << (8 * 6)
	Rank8 BoardMask = Rank1 << (8 * 7)
)

// Empty and Full are the zero set and the universal set.
const (
	Empty BoardMask = 0
	Full  BoardMask = 0xFFFFFFFFFFFFFFFF
)

// Of returns a BoardMask containing exactly the given square.
func Of(sq square.Square) BoardMask {
	return BoardMask(1) << sq
}

// Union, Intersect, SymDiff and Complement implement the set algebra named
// in the data model: union (|), intersection (&), symmetric difference (^)
// and complement (^Full).

// Union returns the union of two masks.
func (b BoardMask) Union(other BoardMask) BoardMask { return b | other }

// Intersect returns the intersection of two masks.
func (b BoardMask) Intersect(other BoardMask) BoardMask { return b & other }

// SymDiff returns the symmetric difference of two masks.
func (b BoardMask) SymDiff(other BoardMask) BoardMask { return b ^ other }

// Complement returns every square not in the mask.
func (b BoardMask) Complement() BoardMask { return ^b }

// Without returns b with every square in other cleared.
func (b BoardMask) Without(other BoardMask) BoardMask { return b &^ other }

// Has reports whether sq is a member of the mask.
func (b BoardMask) Has(sq square.Square) bool {
	return b&Of(sq) != 0
}

// Set returns b with sq added.
func (b BoardMask) Set(sq square.Square) BoardMask {
	return b | Of(sq)
}

// Clear returns b with sq removed.
func (b BoardMask) Clear(sq square.Square) BoardMask {
	return b &^ Of(sq)
}

// PopCount returns the number of squares in the mask.
func (b BoardMask) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// IsEmpty reports whether the mask has no members.
func (b BoardMask) IsEmpty() bool {
	return b == 0
}

// LSB returns the lowest-indexed square in the mask, or square.None if empty.
func (b BoardMask) LSB() square.Square {
	if b == 0 {
		return square.None
	}
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest-indexed square in the mask.
func (b *BoardMask) PopLSB() square.Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Squares returns the mask's members as a slice, in ascending index order.
func (b BoardMask) Squares() []square.Square {
	out := make([]square.Square, 0, b.PopCount())
	rest := b
	for rest != 0 {
		out = append(out, rest.PopLSB())
	}
	return out
}

// ForEach calls f for each square in the mask, in ascending index order.
func (b BoardMask) ForEach(f func(square.Square)) {
	rest := b
	for rest != 0 {
		f(rest.PopLSB())
	}
}

// String renders the mask as an 8x8 grid, rank 8 first, for debugging.
func (b BoardMask) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			if b.Has(square.New(file, rank)) {
				s += "1 "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	s += "  a b c d e f g h\n"
	return s
}

// Occupancy carries the subset of BoardMask's operations that board
// bookkeeping needs (membership, set/clear, union, intersection, popcount);
// it is kept as a thin, separately-typed mirror so the magic hash and board
// bookkeeping can't
// accidentally accept a pattern mask where a live-piece set is required.

// OccupancyOf returns an Occupancy containing exactly the given square.
func OccupancyOf(sq square.Square) Occupancy {
	return Occupancy(1) << sq
}

// Has reports whether sq is occupied.
func (o Occupancy) Has(sq square.Square) bool {
	return o&OccupancyOf(sq) != 0
}

// Set returns o with sq added.
func (o Occupancy) Set(sq square.Square) Occupancy {
	return o | OccupancyOf(sq)
}

// Clear returns o with sq removed.
func (o Occupancy) Clear(sq square.Square) Occupancy {
	return o &^ OccupancyOf(sq)
}

// Union returns the union of two occupancies.
func (o Occupancy) Union(other Occupancy) Occupancy { return o | other }

// Intersect returns the intersection of two occupancies.
func (o Occupancy) Intersect(other Occupancy) Occupancy { return o & other }

// PopCount returns the number of occupied squares.
func (o Occupancy) PopCount() int {
	return bits.OnesCount64(uint64(o))
}

// IsEmpty reports whether no square is occupied.
func (o Occupancy) IsEmpty() bool {
	return o == 0
}

// AsMask reinterprets the occupancy as a BoardMask, used when intersecting a
// blocker mask (a BoardMask) against the live occupancy.
func (o Occupancy) AsMask() BoardMask {
	return BoardMask(o)
}

// MaskAsOccupancy reinterprets a BoardMask subset as an Occupancy, used by
// the magic builder when it enumerates blocker subsets.
func MaskAsOccupancy(b BoardMask) Occupancy {
	return Occupancy(b)
}
