package move

import (
	"fmt"

	"github.com/corvidchess/engine/internal/piece"
	"github.com/corvidchess/engine/internal/square"
)

// ErrorKind discriminates the error taxonomy surfaced from executing a
// move. Each kind carries exactly the fields each error case actually
// needs; unused fields on a given kind are left zero.
type ErrorKind uint8

const (
	// EmptySquare: the source square holds no piece.
	EmptySquare ErrorKind = iota
	// DifferentPiece: the piece at the source does not match the move's
	// declared piece kind.
	DifferentPiece
	// NotYourPiece: the source piece belongs to the other side.
	NotYourPiece
	// TakesOwnPiece: the destination holds a friendly piece.
	TakesOwnPiece
	// TakesEmptySquare: a pawn capture aimed at an empty square that is not
	// a valid en passant.
	TakesEmptySquare
	// Blocked: an intermediate square is occupied when it must be empty.
	Blocked
	// Invalid: geometry is wrong for the piece kind.
	Invalid
	// InCheck: the move would leave (or keep) the mover's king attacked.
	InCheck
)

// Error is the single error type returned by Game.Execute. Its Kind
// selects which of the fields below are meaningful; each case carries only
// the payload it needs.
type Error struct {
	Kind ErrorKind

	Square square.Square // EmptySquare, NotYourPiece, TakesEmptySquare, Blocked

	Expected piece.Kind // DifferentPiece
	Found    piece.Kind // DifferentPiece

	Color piece.Color // NotYourPiece

	Move  Move        // TakesOwnPiece, TakesEmptySquare, Blocked, Invalid
	Piece piece.Piece // TakesOwnPiece
}

func (e *Error) Error() string {
	switch e.Kind {
	case EmptySquare:
		return fmt.Sprintf("empty square: %s", e.Square)
	case DifferentPiece:
		return fmt.Sprintf("the piece on the square and the piece in the move don't match: expected %s, found %s", e.Expected, e.Found)
	case NotYourPiece:
		return fmt.Sprintf("can't move piece on square %s: not your color (%s)", e.Square, e.Color)
	case TakesOwnPiece:
		return fmt.Sprintf("move %s takes your own piece %s", e.Move, e.Piece)
	case TakesEmptySquare:
		return fmt.Sprintf("move %s takes an empty square %s with a pawn", e.Move, e.Square)
	case Blocked:
		return fmt.Sprintf("move %s is blocked at %s", e.Move, e.Square)
	case Invalid:
		return fmt.Sprintf("not a valid move for piece: %s", e.Move)
	case InCheck:
		return "your king is in check"
	default:
		return "invalid move"
	}
}

// Is lets errors.Is(err, move.NewInCheckError()) style comparisons work by
// matching only on Kind; payload fields are diagnostic, not identity.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// NewEmptySquareError builds an EmptySquare error.
func NewEmptySquareError(sq square.Square) *Error {
	return &Error{Kind: EmptySquare, Square: sq}
}

// NewDifferentPieceError builds a DifferentPiece error.
func NewDifferentPieceError(expected, found piece.Kind) *Error {
	return &Error{Kind: DifferentPiece, Expected: expected, Found: found}
}

// NewNotYourPieceError builds a NotYourPiece error.
func NewNotYourPieceError(c piece.Color, sq square.Square) *Error {
	return &Error{Kind: NotYourPiece, Color: c, Square: sq}
}

// NewTakesOwnPieceError builds a TakesOwnPiece error.
func NewTakesOwnPieceError(mv Move, p piece.Piece) *Error {
	return &Error{Kind: TakesOwnPiece, Move: mv, Piece: p}
}

// NewTakesEmptySquareError builds a TakesEmptySquare error.
func NewTakesEmptySquareError(mv Move, sq square.Square) *Error {
	return &Error{Kind: TakesEmptySquare, Move: mv, Square: sq}
}

// NewBlockedError builds a Blocked error.
func NewBlockedError(mv Move, sq square.Square) *Error {
	return &Error{Kind: Blocked, Move: mv, Square: sq}
}

// NewInvalidError builds an Invalid error.
func NewInvalidError(mv Move) *Error {
	return &Error{Kind: Invalid, Move: mv}
}

// NewInCheckError builds an InCheck error.
func NewInCheckError() *Error {
	return &Error{Kind: InCheck}
}
