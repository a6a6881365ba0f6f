package magic

import (
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/corvidchess/engine/internal/attacks"
	"github.com/corvidchess/engine/internal/mask"
	"github.com/corvidchess/engine/internal/square"
)

// AttackTables holds exactly 64 rook magics, 64 bishop magics and 64 knight
// patterns. Once built it is immutable and safe to share by reference
// across every Game in the process; construction itself runs once, before
// any Game accepts a move.
type AttackTables struct {
	Rook   [64]AttackMagic
	Bishop [64]AttackMagic
	Knight [64]mask.BoardMask
}

// New builds a fresh AttackTables, searching a magic for every rook and
// bishop square and computing every knight pattern, all in parallel: one
// task per square per piece kind, 192 tasks in total, joined before the
// table is returned. Each square's search is bounded by maxSearchAttempts,
// and New panics if any search exhausts that bound; see LoadOrBuild for
// the cache-aware entry point callers should normally use.
func New() *AttackTables {
	t := &AttackTables{}

	var g errgroup.Group
	for sq := square.A1; sq <= square.H8; sq++ {
		sq := sq
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seedFor(sq, 0)))
			m, err := buildRook(sq, rng)
			if err != nil {
				return err
			}
			t.Rook[sq] = m
			return nil
		})
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seedFor(sq, 1)))
			m, err := buildBishop(sq, rng)
			if err != nil {
				return err
			}
			t.Bishop[sq] = m
			return nil
		})
		g.Go(func() error {
			t.Knight[sq] = attacks.KnightPattern(sq)
			return nil
		})
	}

	// Table generation cannot fail in practice (see maxSearchAttempts); a
	// failure here means the search truly exhausted its budget, which is
	// treated as an unrecoverable construction error rather than something
	// gameplay code could meaningfully retry.
	if err := g.Wait(); err != nil {
		panic(err)
	}

	return t
}

// seedFor derives a deterministic, collision-free seed per (square, piece
// kind) pair so concurrent searches don't share (and contend on) a single
// PRNG, and so a rebuild without a cache hit is reproducible.
func seedFor(sq square.Square, pieceKind int) int64 {
	return int64(sq)*2 + int64(pieceKind) + 0x5EED
}

// RookAttacks returns the rook's attack pattern from sq given occ.
func (t *AttackTables) RookAttacks(sq square.Square, occ mask.Occupancy) mask.BoardMask {
	return t.Rook[sq].Lookup(occ)
}

// BishopAttacks returns the bishop's attack pattern from sq given occ.
func (t *AttackTables) BishopAttacks(sq square.Square, occ mask.Occupancy) mask.BoardMask {
	return t.Bishop[sq].Lookup(occ)
}

// QueenAttacks is the union of rook and bishop attacks from sq given occ.
func (t *AttackTables) QueenAttacks(sq square.Square, occ mask.Occupancy) mask.BoardMask {
	return t.RookAttacks(sq, occ).Union(t.BishopAttacks(sq, occ))
}

// KnightAttacks returns the occupancy-independent knight pattern from sq.
func (t *AttackTables) KnightAttacks(sq square.Square) mask.BoardMask {
	return t.Knight[sq]
}

var (
	globalOnce   sync.Once
	globalTables *AttackTables
)

// Shared returns the process-wide AttackTables, building (and caching) it
// on first use via double-checked initialization; every later call returns
// the same immutable value. Use this from gameplay code. New and
// LoadOrBuild remain available for tests and tools that want an isolated
// instance.
func Shared() *AttackTables {
	globalOnce.Do(func() {
		globalTables = LoadOrBuild(DefaultCachePath())
	})
	return globalTables
}
