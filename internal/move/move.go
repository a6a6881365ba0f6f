// Package move implements the Move tagged variant and its move-list
// container. A Move is immutable data describing one candidate or executed
// move; all game state (whose turn it is, what has happened before) lives in
// the game package, not here.
package move

import (
	"github.com/corvidchess/engine/internal/piece"
	"github.com/corvidchess/engine/internal/square"
)

// Kind distinguishes the seven move shapes named in the data model.
type Kind uint8

const (
	Normal Kind = iota
	Capture
	EnPassant
	Promotion
	PromotionCapture
	CastleKingside
	CastleQueenside
)

// Move is a tagged variant over the seven move shapes. Only the fields
// relevant to Kind are meaningful; constructors below populate exactly the
// fields each shape needs.
type Move struct {
	Kind Kind

	Piece piece.Kind
	From  square.Square
	To    square.Square

	// Capture / PromotionCapture: the piece that mv.To held.
	Captured piece.Kind

	// Promotion / PromotionCapture: the piece the pawn becomes.
	PromotedTo piece.Kind

	// CastleKingside / CastleQueenside: the rook's squares. KingFrom/KingTo
	// reuse From/To.
	RookFrom square.Square
	RookTo   square.Square
}

// NewNormal builds a non-capturing move.
func NewNormal(p piece.Kind, from, to square.Square) Move {
	return Move{Kind: Normal, Piece: p, From: from, To: to}
}

// NewCapture builds a capturing move.
func NewCapture(p piece.Kind, from, to square.Square, captured piece.Kind) Move {
	return Move{Kind: Capture, Piece: p, From: from, To: to, Captured: captured}
}

// NewEnPassant builds an en passant capture. The captured pawn sits on the
// square behind "to" (to's file, from's rank), not on it; the executor
// locates and removes it.
func NewEnPassant(from, to square.Square) Move {
	return Move{Kind: EnPassant, Piece: piece.Pawn, From: from, To: to, Captured: piece.Pawn}
}

// NewPromotion builds a non-capturing promotion.
func NewPromotion(from, to square.Square, promoted piece.Kind) Move {
	return Move{Kind: Promotion, Piece: piece.Pawn, From: from, To: to, PromotedTo: promoted}
}

// NewPromotionCapture builds a capturing promotion.
func NewPromotionCapture(from, to square.Square, captured, promoted piece.Kind) Move {
	return Move{Kind: PromotionCapture, Piece: piece.Pawn, From: from, To: to, Captured: captured, PromotedTo: promoted}
}

// NewCastleKingside builds a kingside castle.
func NewCastleKingside(kingFrom, kingTo, rookFrom, rookTo square.Square) Move {
	return Move{Kind: CastleKingside, Piece: piece.King, From: kingFrom, To: kingTo, RookFrom: rookFrom, RookTo: rookTo}
}

// NewCastleQueenside builds a queenside castle.
func NewCastleQueenside(kingFrom, kingTo, rookFrom, rookTo square.Square) Move {
	return Move{Kind: CastleQueenside, Piece: piece.King, From: kingFrom, To: kingTo, RookFrom: rookFrom, RookTo: rookTo}
}

// IsCapture reports whether the move removes an enemy piece from the board
// (en passant counts; the captured square differs from To).
func (m Move) IsCapture() bool {
	switch m.Kind {
	case Capture, PromotionCapture, EnPassant:
		return true
	default:
		return false
	}
}

// IsCastle reports whether the move is a castle of either side.
func (m Move) IsCastle() bool {
	return m.Kind == CastleKingside || m.Kind == CastleQueenside
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind == Promotion || m.Kind == PromotionCapture
}

// String renders a display-only, close-to-algebraic notation: piece letter
// (blank for pawn), from-square, 'x' on capture, to-square, '=' plus piece
// letter on promotion, "O-O"/"O-O-O" for castles, and an "e.p." suffix for
// en passant. It is not meant to be parsed back.
func (m Move) String() string {
	switch m.Kind {
	case CastleKingside:
		return "O-O"
	case CastleQueenside:
		return "O-O-O"
	}

	letter := m.Piece.Char()
	s := ""
	if letter != 0 {
		s += string(letter)
	}
	s += m.From.String()
	if m.IsCapture() {
		s += "x"
	}
	s += m.To.String()
	if m.IsPromotion() {
		s += "=" + string(m.PromotedTo.Char())
	}
	if m.Kind == EnPassant {
		s += " e.p."
	}
	return s
}

// List is a growable sequence of moves, used both for pseudo-legal
// enumeration and for a game's append-only history.
type List struct {
	moves []Move
}

// Add appends a move to the list.
func (l *List) Add(m Move) {
	l.moves = append(l.moves, m)
}

// Len returns the number of moves in the list.
func (l *List) Len() int {
	return len(l.moves)
}

// Get returns the move at index i.
func (l *List) Get(i int) Move {
	return l.moves[i]
}

// Slice returns the moves as a slice; callers must not mutate it.
func (l *List) Slice() []Move {
	return l.moves
}

// Last returns the most recently added move and true, or the zero Move and
// false if the list is empty.
func (l *List) Last() (Move, bool) {
	if len(l.moves) == 0 {
		return Move{}, false
	}
	return l.moves[len(l.moves)-1], true
}
