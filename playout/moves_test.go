package playout

import (
	"math/rand"
	"testing"

	"github.com/quartobyte/gopos/position"
)

func newTestPosition() *position.Position {
	bv := &position.BoardVisitor{}
	gv := &position.GroupVisitor{}
	return position.New(bv, gv, 0, position.Black, 0)
}

func TestLegalMovesOnEmptyBoardIncludesEveryPointAndPass(t *testing.T) {
	pos := newTestPosition()
	moves := LegalMoves(pos)
	if len(moves) != position.BoardArea+1 {
		t.Fatalf("len(moves) = %d, want %d", len(moves), position.BoardArea+1)
	}
	if moves[len(moves)-1] != position.Pass {
		t.Fatal("Pass should be the last legal move")
	}
}

func TestLegalMovesExcludesOccupiedPoints(t *testing.T) {
	pos := newTestPosition()
	e5, err := position.ParseCoord("E5")
	if err != nil {
		t.Fatal(err)
	}
	pos.AddStoneToBoard(e5, position.Black)

	for _, m := range LegalMoves(pos) {
		if m == e5 {
			t.Fatal("occupied point should not be a legal move")
		}
	}
}

func TestSourceIsDeterministic(t *testing.T) {
	s1 := NewSource(42)
	s2 := NewSource(42)
	for i := 0; i < 8; i++ {
		if s1.Uint64() != s2.Uint64() {
			t.Fatal("two sources with the same seed should produce the same stream")
		}
	}
}

func TestRandomMoveReturnsLegalMove(t *testing.T) {
	pos := newTestPosition()
	rng := rand.New(NewSource(7))
	for i := 0; i < 20; i++ {
		mv := RandomMove(pos, rng)
		if !pos.IsMoveLegal(mv) {
			t.Fatalf("RandomMove returned illegal move %v", mv)
		}
		pos.PlayMove(mv, position.Empty)
	}
}

func TestRandomMoveReturnsLegalMoveAfterGameOver(t *testing.T) {
	pos := newTestPosition()
	pos.PlayMove(position.Pass, position.Empty)
	pos.PlayMove(position.Pass, position.Empty)
	// Game is over but RandomMove itself has no notion of that; it
	// should still return a legal move, and Pass is always legal.
	rng := rand.New(NewSource(1))
	mv := RandomMove(pos, rng)
	if !pos.IsMoveLegal(mv) {
		t.Fatalf("RandomMove returned illegal move %v", mv)
	}
}
