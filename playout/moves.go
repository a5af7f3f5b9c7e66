// Package playout provides move-generation helpers that sit just
// outside the board-position core: enumerating legal moves and
// picking a randomized one for a Monte-Carlo playout policy to build
// on. It deliberately knows nothing about capture value, patterns, or
// eyes beyond what Position.IsMoveLegal already enforces -- the
// playout/search policy itself is an external collaborator.
package playout

import (
	"math/rand"

	mt19937 "github.com/bszcz/mt19937_64"

	"github.com/quartobyte/gopos/position"
)

// LegalMoves returns every legal move for pos.ToPlay(), in increasing
// coordinate order, followed by Pass. The order is deterministic so
// it is also suitable for exhaustive search and for tests.
func LegalMoves(pos *position.Position) []position.Coord {
	moves := make([]position.Coord, 0, position.BoardArea/2+1)
	for c := position.Coord(0); c < position.BoardArea; c++ {
		if pos.IsMoveLegal(c) {
			moves = append(moves, c)
		}
	}
	moves = append(moves, position.Pass)
	return moves
}

// Source adapts an mt19937_64 generator to math/rand.Source64, so the
// Mersenne Twister can drive math/rand's Shuffle and friends.
type Source struct {
	gen *mt19937.MT
}

// NewSource returns a Source seeded deterministically from seed.
func NewSource(seed uint64) *Source {
	gen := mt19937.New()
	gen.SeedByUint(seed)
	return &Source{gen: gen}
}

func (s *Source) Uint64() uint64 { return s.gen.Uint64() }
func (s *Source) Int63() int64   { return int64(s.gen.Uint64() >> 1) }
func (s *Source) Seed(seed int64) {
	s.gen.SeedByUint(uint64(seed))
}

// RandomMove returns a uniformly random legal board move for
// pos.ToPlay(), using rng as the source of randomness. Pass is never
// chosen while a board move is legal; it is returned only if no board
// move is legal.
func RandomMove(pos *position.Position, rng *rand.Rand) position.Coord {
	moves := LegalMoves(pos)
	if len(moves) == 1 {
		// Only Pass was legal.
		return moves[0]
	}
	// Exclude the trailing Pass from the shuffle candidates -- callers
	// wanting eye-avoidance, pattern weighting or deliberate passing
	// build that policy on top of this, per package doc.
	nonPass := moves[:len(moves)-1]
	rng.Shuffle(len(nonPass), func(i, j int) {
		nonPass[i], nonPass[j] = nonPass[j], nonPass[i]
	})
	return nonPass[0]
}
