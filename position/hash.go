package position

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
)

// hashTable[c][color] holds a pseudo-random 64-bit value for stone
// color occupying point c, derived at init from xxhash so the table
// is reproducible across runs (tests rely on Hash being deterministic
// for a given board).
var hashTable [BoardArea][3]uint64
var hashToPlay [3]uint64
var hashKo [BoardArea]uint64

func init() {
	var buf [4]byte
	next := func(tag byte, idx int) uint64 {
		binary.LittleEndian.PutUint32(buf[:], uint32(idx))
		return xxhash.Checksum64(append(buf[:], tag))
	}
	for c := 0; c < BoardArea; c++ {
		hashTable[c][Black] = next('B', c)
		hashTable[c][White] = next('W', c)
		hashKo[c] = next('K', c)
	}
	hashToPlay[Black] = next('T', int(Black))
	hashToPlay[White] = next('T', int(White))
}

// Hash returns a 64-bit digest of the board, ko point, and side to
// move. It is recomputed from scratch on every call rather than
// maintained incrementally, so it adds no bookkeeping to
// AddStoneToBoard and cannot violate any Position invariant. It
// exists for external collaborators (an MCTS transposition table, a
// self-play dedup pass) to key on; the core itself never consults it,
// since only single-point ko is tracked here, not full superko.
func (p *Position) Hash() uint64 {
	var h uint64
	for c := Coord(0); c < BoardArea; c++ {
		s := p.stones[c]
		if !s.Empty() {
			h ^= hashTable[c][s.color]
		}
	}
	if p.ko.InBounds() {
		h ^= hashKo[p.ko]
	}
	h ^= hashToPlay[p.toPlay]
	return h
}
