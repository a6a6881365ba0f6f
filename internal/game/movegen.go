package game

import (
	"github.com/corvidchess/engine/internal/attacks"
	"github.com/corvidchess/engine/internal/mask"
	"github.com/corvidchess/engine/internal/move"
	"github.com/corvidchess/engine/internal/piece"
	"github.com/corvidchess/engine/internal/square"
)

// promotionKinds are the four pieces a pawn may become, in the order the
// enumerator emits them.
var promotionKinds = [4]piece.Kind{piece.Knight, piece.Bishop, piece.Rook, piece.Queen}

// GenerateMoves enumerates pseudo-legal moves for the side to move: moves
// that satisfy piece-movement geometry and capture rules but have not been
// checked for leaving the mover's own king in check. Execute is the sole
// authority on full legality.
func (g *Game) GenerateMoves() *move.List {
	list := &move.List{}
	color := g.sideToMove

	for sq := square.A1; sq <= square.H8; sq++ {
		p := g.board.Get(sq)
		if p == nil || p.Color != color {
			continue
		}

		switch p.Kind {
		case piece.Pawn:
			g.generatePawnMoves(list, sq, color)
		case piece.Knight:
			g.generateTableMoves(list, sq, piece.Knight, color, g.tables.KnightAttacks(sq))
		case piece.Bishop:
			g.generateTableMoves(list, sq, piece.Bishop, color, g.tables.BishopAttacks(sq, g.board.Occ))
		case piece.Rook:
			g.generateTableMoves(list, sq, piece.Rook, color, g.tables.RookAttacks(sq, g.board.Occ))
		case piece.Queen:
			g.generateTableMoves(list, sq, piece.Queen, color, g.tables.QueenAttacks(sq, g.board.Occ))
		case piece.King:
			g.generateTableMoves(list, sq, piece.King, color, attacks.KingPattern(sq))
			g.generateCastleMoves(list, sq, *p)
		}
	}
	return list
}

// generateTableMoves covers every piece whose reachable squares come from a
// precomputed or ray-cast pattern: empty squares are Normal moves, enemy
// squares are Captures, own-piece squares are skipped.
func (g *Game) generateTableMoves(list *move.List, from square.Square, kind piece.Kind, color piece.Color, pattern mask.BoardMask) {
	for _, to := range pattern.Squares() {
		target := g.board.Get(to)
		switch {
		case target == nil:
			list.Add(move.NewNormal(kind, from, to))
		case target.Color != color:
			list.Add(move.NewCapture(kind, from, to, target.Kind))
		}
	}
}

func (g *Game) generatePawnMoves(list *move.List, from square.Square, color piece.Color) {
	direction := forwardDirection(color)
	promoRank := promotionRank(color)

	oneAhead, err := from.MoveOnRank(direction)
	if err != nil {
		return
	}

	if !g.board.IsOccupied(oneAhead) {
		if oneAhead.Rank() == promoRank {
			for _, k := range promotionKinds {
				list.Add(move.NewPromotion(from, oneAhead, k))
			}
		} else {
			list.Add(move.NewNormal(piece.Pawn, from, oneAhead))
		}

		if from.Rank() == startingRank(color) {
			if twoAhead, err := from.MoveOnRank(2 * direction); err == nil && !g.board.IsOccupied(twoAhead) {
				list.Add(move.NewNormal(piece.Pawn, from, twoAhead))
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, err := oneAhead.MoveOnFile(df)
		if err != nil {
			continue
		}

		if target := g.board.Get(to); target != nil {
			if target.Color == color {
				continue
			}
			if to.Rank() == promoRank {
				for _, k := range promotionKinds {
					list.Add(move.NewPromotionCapture(from, to, target.Kind, k))
				}
			} else {
				list.Add(move.NewCapture(piece.Pawn, from, to, target.Kind))
			}
			continue
		}

		if g.isEnPassantTarget(to, color, from) {
			list.Add(move.NewEnPassant(from, to))
		}
	}
}

// generateCastleMoves emits a candidate castle move for each side whose
// king and rook are both unmoved, present, and whose path between them is
// empty. Whether the king's current square, transit squares and landing
// square are attacked is a legality question left to Execute.
func (g *Game) generateCastleMoves(list *move.List, kingSq square.Square, king piece.Piece) {
	if king.HasMoved {
		return
	}
	homeRank := kingSq.Rank()

	kingside := square.New(7, homeRank)
	if g.castlePathClear(kingSq, kingside, king.Color) {
		list.Add(move.NewCastleKingside(kingSq, square.New(6, homeRank), kingside, square.New(5, homeRank)))
	}

	queenside := square.New(0, homeRank)
	if g.castlePathClear(kingSq, queenside, king.Color) {
		list.Add(move.NewCastleQueenside(kingSq, square.New(2, homeRank), queenside, square.New(3, homeRank)))
	}
}

func (g *Game) castlePathClear(kingSq, rookSq square.Square, color piece.Color) bool {
	rook := g.board.Get(rookSq)
	if rook == nil || rook.Kind != piece.Rook || rook.Color != color || rook.HasMoved {
		return false
	}

	lo, hi := kingSq, rookSq
	if lo > hi {
		lo, hi = hi, lo
	}
	for s := lo + 1; s < hi; s++ {
		if g.board.IsOccupied(s) {
			return false
		}
	}
	return true
}

// isEnPassantTarget reports whether `to` is the square behind the pawn that
// just made a double push, as seen from a pawn of `color` standing at
// `from`: the previous move must be an opposing pawn's double push landing
// on the same rank as `from` and an adjacent file.
func (g *Game) isEnPassantTarget(to square.Square, color piece.Color, from square.Square) bool {
	last, ok := g.history.Last()
	if !ok || last.Kind != move.Normal || last.Piece != piece.Pawn {
		return false
	}

	rankDelta, fileDelta := square.Delta(last.From, last.To)
	if fileDelta != 0 || abs(rankDelta) != 2 {
		return false
	}
	if last.To.Rank() != from.Rank() {
		return false
	}
	if _, df := square.Delta(from, last.To); df != 1 && df != -1 {
		return false
	}

	want := square.New(last.To.File(), from.Rank()+forwardDirection(color))
	return to == want
}
