// Package bitboard implements BitBoard, the dual board representation: a
// 64-cell piece list kept in lock-step with an Occupancy bitboard. Every
// mutation goes through Place/Remove so the two representations can never
// drift apart.
package bitboard

import (
	"github.com/corvidchess/engine/internal/attacks"
	"github.com/corvidchess/engine/internal/magic"
	"github.com/corvidchess/engine/internal/mask"
	"github.com/corvidchess/engine/internal/piece"
	"github.com/corvidchess/engine/internal/square"
)

// BitBoard is the position: a piece-list plus an Occupancy bitboard that
// must always agree (cell i is populated iff bit i of Occ is set).
type BitBoard struct {
	cells [64]*piece.Piece
	Occ   mask.Occupancy
}

// New returns an empty BitBoard.
func New() *BitBoard {
	return &BitBoard{}
}

// Place writes p into sq and sets the corresponding occupancy bit,
// returning whatever previously occupied sq (nil if it was empty). Both
// representations are updated atomically from the caller's perspective.
func (b *BitBoard) Place(p piece.Piece, sq square.Square) *piece.Piece {
	prev := b.cells[sq]
	pc := p
	b.cells[sq] = &pc
	b.Occ = b.Occ.Set(sq)
	return prev
}

// Remove clears sq and its occupancy bit, returning whatever occupied it
// (nil if it was already empty).
func (b *BitBoard) Remove(sq square.Square) *piece.Piece {
	prev := b.cells[sq]
	b.cells[sq] = nil
	b.Occ = b.Occ.Clear(sq)
	return prev
}

// Get returns the piece at sq without touching occupancy, or nil if empty.
func (b *BitBoard) Get(sq square.Square) *piece.Piece {
	return b.cells[sq]
}

// IsOccupied reports whether sq holds any piece.
func (b *BitBoard) IsOccupied(sq square.Square) bool {
	return b.Occ.Has(sq)
}

// SquareIsControlledBy reports whether any piece of color `by` attacks sq,
// used for both check detection and castling path safety. Sliding and
// knight attackers are found by querying the attack tables FROM sq (the
// same ray/leap a piece standing on sq would see) and checking whether a
// matching enemy piece sits on a reached square; pawn and king attackers
// are found by explicit adjacency checks in the attacking color's
// direction. Pins are not considered here.
func (b *BitBoard) SquareIsControlledBy(sq square.Square, by piece.Color, tables *magic.AttackTables) bool {
	occ := b.Occ

	rookReach := tables.RookAttacks(sq, occ)
	for _, s := range rookReach.Squares() {
		if p := b.cells[s]; p != nil && p.Color == by && (p.Kind == piece.Rook || p.Kind == piece.Queen) {
			return true
		}
	}

	bishopReach := tables.BishopAttacks(sq, occ)
	for _, s := range bishopReach.Squares() {
		if p := b.cells[s]; p != nil && p.Color == by && (p.Kind == piece.Bishop || p.Kind == piece.Queen) {
			return true
		}
	}

	knightReach := tables.KnightAttacks(sq)
	for _, s := range knightReach.Squares() {
		if p := b.cells[s]; p != nil && p.Color == by && p.Kind == piece.Knight {
			return true
		}
	}

	// White pawns attack the two diagonals one rank up; black pawns one
	// rank down. An attacking pawn of color `by` therefore sits one rank
	// *behind* sq (from its own forward direction) on an adjacent file.
	forward := 1
	if by == piece.Black {
		forward = -1
	}
	if behind, err := sq.MoveOnRank(-forward); err == nil {
		for _, df := range [2]int{-1, 1} {
			if s, err := behind.MoveOnFile(df); err == nil {
				if p := b.cells[s]; p != nil && p.Color == by && p.Kind == piece.Pawn {
					return true
				}
			}
		}
	}

	for _, s := range attacks.KingPattern(sq).Squares() {
		if p := b.cells[s]; p != nil && p.Color == by && p.Kind == piece.King {
			return true
		}
	}

	return false
}

// New32 places the standard starting position: 32 pieces with every King
// and Rook's HasMoved cleared.
func New32() *BitBoard {
	b := New()

	backRank := [8]piece.Kind{
		piece.Rook, piece.Knight, piece.Bishop, piece.Queen,
		piece.King, piece.Bishop, piece.Knight, piece.Rook,
	}

	for file := 0; file < 8; file++ {
		kind := backRank[file]
		b.Place(makeBackRankPiece(kind, piece.White), square.New(file, 0))
		b.Place(makeBackRankPiece(kind, piece.Black), square.New(file, 7))
		b.Place(piece.New(piece.Pawn, piece.White), square.New(file, 1))
		b.Place(piece.New(piece.Pawn, piece.Black), square.New(file, 6))
	}

	return b
}

func makeBackRankPiece(k piece.Kind, c piece.Color) piece.Piece {
	switch k {
	case piece.Rook:
		return piece.NewRook(c, false)
	case piece.King:
		return piece.NewKing(c, false)
	default:
		return piece.New(k, c)
	}
}
