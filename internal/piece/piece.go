// Package piece implements the tagged-variant Piece and Color types. Piece
// is a closed set of cases rather than a class hierarchy: Pawn, Knight,
// Bishop, Rook, Queen and King, where Rook and King additionally carry a
// has_moved flag that gates castling.
package piece

import "fmt"

// Color is White or Black.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Kind identifies which of the six piece shapes a Piece is.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoKind
)

// String returns the piece kind's name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the piece kind's uppercase letter, or 0 for a pawn (and for
// NoKind).
func (k Kind) Char() byte {
	switch k {
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return 0
	}
}

// Piece is a tagged variant over the six piece kinds. HasMoved is only
// meaningful for Rook and King; it is ignored for the other four kinds and
// is not compared when matching a move's declared piece kind against the
// piece actually occupying a square: kind must match, the
// castling-eligibility tag does not.
type Piece struct {
	Kind     Kind
	Color    Color
	HasMoved bool
}

// New constructs a piece of the given kind and color with HasMoved unset.
// Use NewRook/NewKing directly when the moved state is already known (e.g.
// when restoring a piece that has moved).
func New(k Kind, c Color) Piece {
	return Piece{Kind: k, Color: c}
}

// NewRook constructs a rook carrying an explicit has_moved flag.
func NewRook(c Color, hasMoved bool) Piece {
	return Piece{Kind: Rook, Color: c, HasMoved: hasMoved}
}

// NewKing constructs a king carrying an explicit has_moved flag.
func NewKing(c Color, hasMoved bool) Piece {
	return Piece{Kind: King, Color: c, HasMoved: hasMoved}
}

// MarkMoved sets HasMoved on a copy of p if p is a King or Rook; it is a
// no-op (returns p unchanged) for every other kind. Pawns carry no moved
// state: en passant eligibility is derived from move history, not from a
// mutable tag on the pawn (see the game package).
func (p Piece) MarkMoved() Piece {
	if p.Kind == King || p.Kind == Rook {
		p.HasMoved = true
	}
	return p
}

// SameShape reports whether two pieces have the same kind and color,
// ignoring HasMoved.
func (p Piece) SameShape(other Piece) bool {
	return p.Kind == other.Kind && p.Color == other.Color
}

// String renders the piece as one letter: uppercase for White, lowercase
// for Black, with pawns shown as P/p.
func (p Piece) String() string {
	c := p.Kind.Char()
	if c == 0 {
		c = 'P'
	}
	if p.Color == Black {
		c = c - 'A' + 'a'
	}
	return fmt.Sprintf("%c", c)
}
