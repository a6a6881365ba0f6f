// Package magic builds and serves magic-bitboard attack tables for sliding
// pieces. For each square it hashes every subset of the square's relevant
// blocker mask into a dense index via one multiply-and-shift, so that
// runtime lookup is a single array access. Two subsets may share an index
// only when their attack patterns are equal. See AttackMagic for the
// per-square artifact and AttackTables for the full 64+64+64 table set.
package magic

import (
	"fmt"
	"math/rand"

	"github.com/corvidchess/engine/internal/attacks"
	"github.com/corvidchess/engine/internal/mask"
	"github.com/corvidchess/engine/internal/square"
)

// slack is the sparseness slack H added to the index space beyond the
// minimum popcount(mask) bits. H=1 relaxes the perfect-hash search (fewer
// collisions, faster search) at the cost of a few empty slots per square.
const slack = 1

// maxSearchAttempts bounds a single square's random search. In practice a
// valid magic for H=1 is found within a few hundred attempts; this bound
// exists only to turn a catastrophically unlucky run into a panic rather
// than a silent hang, since the search runs synchronously with no way for
// a caller to cancel it.
const maxSearchAttempts = 100_000_000

// AttackMagic is the per-square artifact: the blocker mask, the multiplier
// and shift that hash it, and the densely-indexed attack pattern this
// square owns. For every subset S of Mask, Patterns[index(S)] holds the
// attack pattern that applies when exactly the squares in S are occupied.
type AttackMagic struct {
	Mask       mask.BoardMask
	Multiplier uint64
	Shift      uint8
	Patterns   []mask.BoardMask
}

// Index computes the dense table index for a given occupancy, restricted to
// the squares relevant to this square (occ & Mask).
func (m *AttackMagic) Index(occ mask.Occupancy) int {
	relevant := uint64(occ.AsMask().Intersect(m.Mask))
	return int((relevant * m.Multiplier) >> m.Shift)
}

// Lookup returns the attack pattern for the given occupancy.
func (m *AttackMagic) Lookup(occ mask.Occupancy) mask.BoardMask {
	return m.Patterns[m.Index(occ)]
}

// blockerSubsets enumerates every subset of m, including the empty set, via
// the classical carry-rippler trick: starting from 0, each step computes
// the next subset of m in a cycle that visits exactly 2^popcount(m)
// distinct values before returning to 0.
func blockerSubsets(m mask.BoardMask) []mask.BoardMask {
	n := m.PopCount()
	subsets := make([]mask.BoardMask, 0, 1<<uint(n))
	sub := mask.BoardMask(0)
	for {
		subsets = append(subsets, sub)
		sub = (sub - m) & m
		if sub == 0 {
			break
		}
	}
	return subsets
}

// buildRook searches a magic for the rook on sq and materializes its
// attack-pattern array.
func buildRook(sq square.Square, rng *rand.Rand) (AttackMagic, error) {
	return build(sq, rng, attacks.RookMask, attacks.RookAttacks)
}

// buildBishop searches a magic for the bishop on sq and materializes its
// attack-pattern array.
func buildBishop(sq square.Square, rng *rand.Rand) (AttackMagic, error) {
	return build(sq, rng, attacks.BishopMask, attacks.BishopAttacks)
}

func build(
	sq square.Square,
	rng *rand.Rand,
	maskFn func(square.Square) mask.BoardMask,
	attacksFn func(square.Square, mask.Occupancy) mask.BoardMask,
) (AttackMagic, error) {
	blockerMask := maskFn(sq)
	n := blockerMask.PopCount()
	shift := uint8(64 - (n + slack))
	size := 1 << uint(n+slack)

	subsets := blockerSubsets(blockerMask)
	wantPatterns := make([]mask.BoardMask, len(subsets))
	for i, s := range subsets {
		wantPatterns[i] = attacksFn(sq, mask.MaskAsOccupancy(s))
	}

	slots := make([]mask.BoardMask, size)
	filled := make([]bool, size)

	for attempt := 0; attempt < maxSearchAttempts; attempt++ {
		multiplier := sparseCandidate(rng)

		for i := range filled {
			filled[i] = false
		}

		collision := false
		for i, s := range subsets {
			idx := (uint64(s) * multiplier) >> shift
			if filled[idx] {
				if slots[idx] != wantPatterns[i] {
					collision = true
					break
				}
				continue
			}
			filled[idx] = true
			slots[idx] = wantPatterns[i]
		}

		if !collision {
			patterns := make([]mask.BoardMask, size)
			copy(patterns, slots)
			return AttackMagic{
				Mask:       blockerMask,
				Multiplier: multiplier,
				Shift:      shift,
				Patterns:   patterns,
			}, nil
		}
	}

	return AttackMagic{}, fmt.Errorf("magic: no perfect hash found for square %s after %d attempts", sq, maxSearchAttempts)
}

// sparseCandidate draws a 64-bit candidate biased toward few set bits
// (AND-ing several random draws together), which in practice finds valid
// magics far faster than drawing uniformly.
func sparseCandidate(rng *rand.Rand) uint64 {
	return rng.Uint64() & rng.Uint64() & rng.Uint64()
}
