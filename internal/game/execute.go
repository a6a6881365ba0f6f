package game

import (
	"github.com/corvidchess/engine/internal/move"
	"github.com/corvidchess/engine/internal/piece"
	"github.com/corvidchess/engine/internal/square"
)

// Execute validates mv against the current position as a strict sequence of
// checks: any failure returns a specific error and leaves the game
// unchanged. On success the board is mutated, mv is appended to history and
// the side to move toggles.
func (g *Game) Execute(mv move.Move) error {
	src := g.board.Get(mv.From)
	if src == nil {
		return move.NewEmptySquareError(mv.From)
	}
	if src.Kind != mv.Piece {
		return move.NewDifferentPieceError(mv.Piece, src.Kind)
	}
	if src.Color != g.sideToMove {
		return move.NewNotYourPieceError(src.Color, mv.From)
	}
	if dest := g.board.Get(mv.To); dest != nil && dest.Color == src.Color {
		return move.NewTakesOwnPieceError(mv, *dest)
	}

	mover := *src
	if err := g.validateGeometry(mv, mover); err != nil {
		return err
	}

	snapshot := *g.board
	g.apply(mv, mover)

	if g.board.SquareIsControlledBy(g.kingSquare(mover.Color), mover.Color.Other(), g.tables) {
		*g.board = snapshot
		return move.NewInCheckError()
	}

	g.history.Add(mv)
	g.sideToMove = g.sideToMove.Other()
	return nil
}

// validateGeometry dispatches by piece kind: sliders and the knight are
// checked against table membership; pawns and kings need explicit,
// direction- and state-aware rules.
func (g *Game) validateGeometry(mv move.Move, mover piece.Piece) error {
	switch mover.Kind {
	case piece.Pawn:
		return g.validatePawnMove(mv, mover)
	case piece.Knight:
		if !g.tables.KnightAttacks(mv.From).Has(mv.To) {
			return move.NewInvalidError(mv)
		}
	case piece.Bishop:
		if !g.tables.BishopAttacks(mv.From, g.board.Occ).Has(mv.To) {
			return move.NewInvalidError(mv)
		}
	case piece.Rook:
		if !g.tables.RookAttacks(mv.From, g.board.Occ).Has(mv.To) {
			return move.NewInvalidError(mv)
		}
	case piece.Queen:
		if !g.tables.QueenAttacks(mv.From, g.board.Occ).Has(mv.To) {
			return move.NewInvalidError(mv)
		}
	case piece.King:
		return g.validateKingMove(mv, mover)
	}
	return nil
}

func (g *Game) validatePawnMove(mv move.Move, p piece.Piece) error {
	direction := forwardDirection(p.Color)
	rankDelta, fileDelta := square.Delta(mv.From, mv.To)

	switch fileDelta {
	case 0:
		if mv.Kind != move.Normal && mv.Kind != move.Promotion {
			return move.NewInvalidError(mv)
		}
		switch rankDelta {
		case direction:
			if g.board.IsOccupied(mv.To) {
				return move.NewBlockedError(mv, mv.To)
			}
			return nil
		case 2 * direction:
			if mv.From.Rank() != startingRank(p.Color) {
				return move.NewInvalidError(mv)
			}
			mid, err := mv.From.MoveOnRank(direction)
			if err != nil {
				return move.NewInvalidError(mv)
			}
			if g.board.IsOccupied(mid) {
				return move.NewBlockedError(mv, mid)
			}
			if g.board.IsOccupied(mv.To) {
				return move.NewBlockedError(mv, mv.To)
			}
			return nil
		default:
			return move.NewInvalidError(mv)
		}

	case 1, -1:
		if rankDelta != direction {
			return move.NewInvalidError(mv)
		}
		if dest := g.board.Get(mv.To); dest != nil {
			if mv.Kind != move.Capture && mv.Kind != move.PromotionCapture {
				return move.NewInvalidError(mv)
			}
			return nil
		}
		if !g.isEnPassantTarget(mv.To, p.Color, mv.From) {
			return move.NewTakesEmptySquareError(mv, mv.To)
		}
		if mv.Kind != move.EnPassant {
			return move.NewInvalidError(mv)
		}
		return nil

	default:
		return move.NewInvalidError(mv)
	}
}

func (g *Game) validateKingMove(mv move.Move, king piece.Piece) error {
	rankDelta, fileDelta := square.Delta(mv.From, mv.To)
	if abs(rankDelta) > 1 {
		return move.NewInvalidError(mv)
	}
	if fileDelta == 2 || fileDelta == -2 {
		return g.validateCastle(mv, king, fileDelta)
	}
	if abs(fileDelta) > 1 {
		return move.NewInvalidError(mv)
	}
	return nil
}

// validateCastle checks the full castling precondition set: both
// participants unmoved, rook present, path empty, and the king's start,
// transit and landing squares all free of attack. The rook's own
// destination square need not be safe.
func (g *Game) validateCastle(mv move.Move, king piece.Piece, fileDelta int) error {
	if mv.Kind != move.CastleKingside && mv.Kind != move.CastleQueenside {
		return move.NewInvalidError(mv)
	}
	if king.HasMoved {
		return move.NewInvalidError(mv)
	}

	rook := g.board.Get(mv.RookFrom)
	if rook == nil || rook.Kind != piece.Rook || rook.Color != king.Color || rook.HasMoved {
		return move.NewInvalidError(mv)
	}

	lo, hi := mv.RookFrom, mv.From
	if lo > hi {
		lo, hi = hi, lo
	}
	for s := lo + 1; s < hi; s++ {
		if g.board.IsOccupied(s) {
			return move.NewBlockedError(mv, s)
		}
	}

	opponent := king.Color.Other()
	if g.board.SquareIsControlledBy(mv.From, opponent, g.tables) {
		return move.NewInCheckError()
	}

	step := 1
	if fileDelta < 0 {
		step = -1
	}
	for f := mv.From; ; {
		next, err := f.MoveOnFile(step)
		if err != nil {
			return move.NewInvalidError(mv)
		}
		if g.board.SquareIsControlledBy(next, opponent, g.tables) {
			return move.NewInCheckError()
		}
		if next == mv.To {
			break
		}
		f = next
	}
	return nil
}

// apply mutates the board for an already-validated move.
func (g *Game) apply(mv move.Move, mover piece.Piece) {
	switch mv.Kind {
	case move.Normal, move.Capture:
		g.board.Remove(mv.From)
		g.board.Place(mover.MarkMoved(), mv.To)

	case move.EnPassant:
		g.board.Remove(mv.From)
		captured := square.New(mv.To.File(), mv.From.Rank())
		g.board.Remove(captured)
		g.board.Place(mover, mv.To)

	case move.Promotion, move.PromotionCapture:
		g.board.Remove(mv.From)
		g.board.Place(piece.New(mv.PromotedTo, mover.Color), mv.To)

	case move.CastleKingside, move.CastleQueenside:
		rook := *g.board.Get(mv.RookFrom)
		g.board.Remove(mv.From)
		g.board.Remove(mv.RookFrom)
		g.board.Place(mover.MarkMoved(), mv.To)
		g.board.Place(rook.MarkMoved(), mv.RookTo)
	}
}
