package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/corvidchess/engine/internal/magic"
	"github.com/corvidchess/engine/internal/move"
	"github.com/corvidchess/engine/internal/piece"
	"github.com/corvidchess/engine/internal/square"
)

// sharedTestTables avoids rebuilding the 192-entry magic tables once per
// test function; every test in this package only reads from it.
var sharedTestTables = magic.New()

func newTestGame() *Game {
	return NewWithTables(sharedTestTables)
}

func TestDoublePawnPushAtStart(t *testing.T) {
	g := newTestGame()
	if err := g.Execute(move.NewNormal(piece.Pawn, square.E2, square.E4)); err != nil {
		t.Fatalf("e2e4 should succeed, got %v", err)
	}

	if p := g.PieceAt(square.E4); p == nil || p.Kind != piece.Pawn || p.Color != piece.White {
		t.Fatalf("e4 = %v, want a White Pawn", p)
	}
	if g.PieceAt(square.E2) != nil {
		t.Fatal("e2 should be empty after the push")
	}
	if g.SideToMove() != piece.Black {
		t.Fatalf("side to move = %s, want Black", g.SideToMove())
	}
	if len(g.History()) != 1 {
		t.Fatalf("history length = %d, want 1", len(g.History()))
	}
}

func TestInvalidPawnJump(t *testing.T) {
	g := newTestGame()
	err := g.Execute(move.NewNormal(piece.Pawn, square.E2, square.E5))

	var moveErr *move.Error
	if !errors.As(err, &moveErr) || moveErr.Kind != move.Invalid {
		t.Fatalf("e2e5 error = %v, want Invalid", err)
	}
	if g.PieceAt(square.E2) == nil {
		t.Fatal("position should be unchanged after a rejected move")
	}
	if g.SideToMove() != piece.White {
		t.Fatal("side to move should not change on a failed execution")
	}
}

func TestKnightDevelopment(t *testing.T) {
	g := newTestGame()
	if err := g.Execute(move.NewNormal(piece.Knight, square.G1, square.F3)); err != nil {
		t.Fatalf("Ng1-f3 should succeed, got %v", err)
	}
	if p := g.PieceAt(square.F3); p == nil || p.Kind != piece.Knight || p.Color != piece.White {
		t.Fatalf("f3 = %v, want a White Knight", p)
	}
	if g.PieceAt(square.G1) != nil {
		t.Fatal("g1 should be empty after the knight develops")
	}
}

func TestEnPassant(t *testing.T) {
	g := newTestGame()
	seq := []move.Move{
		move.NewNormal(piece.Pawn, square.E2, square.E4),
		move.NewNormal(piece.Pawn, square.A7, square.A6),
		move.NewNormal(piece.Pawn, square.E4, square.E5),
		move.NewNormal(piece.Pawn, square.D7, square.D5),
	}
	for _, mv := range seq {
		if err := g.Execute(mv); err != nil {
			t.Fatalf("%s failed: %v", mv, err)
		}
	}

	ep := move.NewEnPassant(square.E5, square.D6)
	if err := g.Execute(ep); err != nil {
		t.Fatalf("en passant e5xd6 should succeed, got %v", err)
	}

	if g.PieceAt(square.D5) != nil {
		t.Fatal("d5 should be empty: the captured pawn must be removed")
	}
	if p := g.PieceAt(square.D6); p == nil || p.Kind != piece.Pawn || p.Color != piece.White {
		t.Fatalf("d6 = %v, want a White Pawn", p)
	}
}

func TestKingsideCastleAfterClearingPath(t *testing.T) {
	g := newTestGame()
	g.board.Remove(square.F1)
	g.board.Remove(square.G1)

	mv := move.NewCastleKingside(square.E1, square.G1, square.H1, square.F1)
	if err := g.Execute(mv); err != nil {
		t.Fatalf("kingside castle should succeed, got %v", err)
	}

	king := g.PieceAt(square.G1)
	if king == nil || king.Kind != piece.King || !king.HasMoved {
		t.Fatalf("g1 = %v, want a moved White King", king)
	}
	rook := g.PieceAt(square.F1)
	if rook == nil || rook.Kind != piece.Rook || !rook.HasMoved {
		t.Fatalf("f1 = %v, want a moved White Rook", rook)
	}
	if a1 := g.PieceAt(square.A1); a1 == nil || a1.Kind != piece.Rook || a1.HasMoved {
		t.Fatalf("a1 = %v, want the untouched queenside Rook", a1)
	}
}

func TestCastleDeniedWhileKingInCheck(t *testing.T) {
	g := newTestGame()
	g.board.Remove(square.F1)
	g.board.Remove(square.G1)
	g.board.Remove(square.E2)
	g.board.Remove(square.E7)
	g.board.Place(piece.New(piece.Rook, piece.Black), square.E8)

	mv := move.NewCastleKingside(square.E1, square.G1, square.H1, square.F1)
	err := g.Execute(mv)

	var moveErr *move.Error
	if !errors.As(err, &moveErr) || moveErr.Kind != move.InCheck {
		t.Fatalf("castling through check error = %v, want InCheck", err)
	}
	if king := g.PieceAt(square.E1); king == nil || king.HasMoved {
		t.Fatal("king should remain on e1, unmoved, after a rejected castle")
	}
	if rook := g.PieceAt(square.H1); rook == nil || rook.HasMoved {
		t.Fatal("rook should remain on h1, unmoved, after a rejected castle")
	}
}

func TestSideToMoveTogglesOnlyOnSuccess(t *testing.T) {
	g := newTestGame()
	start := g.SideToMove()

	if err := g.Execute(move.NewNormal(piece.Pawn, square.E2, square.E5)); err == nil {
		t.Fatal("expected the illegal jump to fail")
	}
	if g.SideToMove() != start {
		t.Fatal("a failed execution must not toggle the side to move")
	}

	if err := g.Execute(move.NewNormal(piece.Pawn, square.E2, square.E4)); err != nil {
		t.Fatalf("legal push failed: %v", err)
	}
	if g.SideToMove() == start {
		t.Fatal("a successful execution must toggle the side to move")
	}
}

func TestHasMovedOnlyOnThePieceThatMoved(t *testing.T) {
	g := newTestGame()
	if err := g.Execute(move.NewNormal(piece.Knight, square.G1, square.F3)); err != nil {
		t.Fatalf("Ng1-f3 failed: %v", err)
	}
	if h1 := g.PieceAt(square.H1); h1 == nil || h1.HasMoved {
		t.Fatal("the h1 rook never moved, HasMoved must stay false")
	}
}

func TestStartingRankPawnBlockedByEnemyTwoAhead(t *testing.T) {
	g := newTestGame()
	g.board.Place(piece.New(piece.Pawn, piece.Black), square.E4)

	if err := g.Execute(move.NewNormal(piece.Pawn, square.E2, square.E4)); err == nil {
		t.Fatal("double push into an occupied square should fail")
	}

	g.board.Place(piece.New(piece.Pawn, piece.Black), square.E3)
	if err := g.Execute(move.NewNormal(piece.Pawn, square.E2, square.E3)); err == nil {
		t.Fatal("single push into an occupied square should fail")
	}
}

func TestHistoryRecordsExecutedMovesInOrder(t *testing.T) {
	g := newTestGame()
	seq := []move.Move{
		move.NewNormal(piece.Pawn, square.E2, square.E4),
		move.NewNormal(piece.Pawn, square.E7, square.E5),
		move.NewNormal(piece.Knight, square.G1, square.F3),
	}
	for _, mv := range seq {
		if err := g.Execute(mv); err != nil {
			t.Fatalf("%s failed: %v", mv, err)
		}
	}

	if diff := cmp.Diff(seq, g.History()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateMovesStartingPositionCount(t *testing.T) {
	g := newTestGame()
	moves := g.GenerateMoves()
	if moves.Len() != 20 {
		t.Fatalf("pseudo-legal moves from the starting position = %d, want 20", moves.Len())
	}
}
