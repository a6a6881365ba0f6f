// Package game ties BitBoard, AttackTables and the move history together
// into the single stateful surface external callers use: Game. movegen.go
// enumerates pseudo-legal candidates and execute.go is the sole authority
// on full legality and board mutation; BitBoard and the magic tables
// themselves stay ignorant of turn order, history, or legality.
package game

import (
	"github.com/corvidchess/engine/internal/bitboard"
	"github.com/corvidchess/engine/internal/magic"
	"github.com/corvidchess/engine/internal/move"
	"github.com/corvidchess/engine/internal/piece"
	"github.com/corvidchess/engine/internal/square"
)

// Game is a BitBoard, an append-only move history, and the color to move.
type Game struct {
	board      *bitboard.BitBoard
	tables     *magic.AttackTables
	history    move.List
	sideToMove piece.Color
}

// New starts a game at the standard position using the process-wide shared
// attack tables (built, and cached, on first use).
func New() *Game {
	return NewWithTables(magic.Shared())
}

// NewWithTables starts a game at the standard position against an explicit
// AttackTables, so tests and tools can supply an isolated instance instead
// of the process-wide singleton.
func NewWithTables(tables *magic.AttackTables) *Game {
	return &Game{
		board:      bitboard.New32(),
		tables:     tables,
		sideToMove: piece.White,
	}
}

// SideToMove returns the color to move.
func (g *Game) SideToMove() piece.Color {
	return g.sideToMove
}

// PieceAt returns a read-only view of whatever occupies sq, or nil if empty.
func (g *Game) PieceAt(sq square.Square) *piece.Piece {
	if p := g.board.Get(sq); p != nil {
		cp := *p
		return &cp
	}
	return nil
}

// History returns the moves executed so far, in order.
func (g *Game) History() []move.Move {
	return g.history.Slice()
}

func forwardDirection(c piece.Color) int {
	if c == piece.White {
		return 1
	}
	return -1
}

func startingRank(c piece.Color) int {
	if c == piece.White {
		return 1
	}
	return 6
}

func promotionRank(c piece.Color) int {
	if c == piece.White {
		return 7
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// kingSquare scans for the king of the given color. Called only on the
// few-times-per-move check-detection path, not a hot loop.
func (g *Game) kingSquare(c piece.Color) square.Square {
	for sq := square.A1; sq <= square.H8; sq++ {
		if p := g.board.Get(sq); p != nil && p.Kind == piece.King && p.Color == c {
			return sq
		}
	}
	return square.None
}
