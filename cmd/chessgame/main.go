// chessgame is a thin driver: it initializes the engine and plays one
// illustrative move against the starting position.
package main

import (
	"log"

	"github.com/corvidchess/engine/internal/game"
	"github.com/corvidchess/engine/internal/move"
	"github.com/corvidchess/engine/internal/piece"
	"github.com/corvidchess/engine/internal/square"
)

func main() {
	g := game.New()

	opening := move.NewNormal(piece.Pawn, square.E2, square.E4)
	if err := g.Execute(opening); err != nil {
		log.Fatalf("chessgame: %v", err)
	}

	log.Printf("played %s; %s to move; e4 now holds %s", opening, g.SideToMove(), g.PieceAt(square.E4))
}
