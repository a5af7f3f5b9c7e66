// Package position implements the board-position core of a Go (weiqi)
// engine: stones, groups, move legality, capture/ko bookkeeping, and
// area scoring. Everything here is designed to be copied thousands of
// times per second during tree search, so it avoids heap allocation on
// the hot paths.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// N is the board edge length. Compile-time constant, as in the source
// engine (its Go port hardcodes N = 13); the concrete scenarios this
// package is tested against are all 9x9, so N is set accordingly.
const N = 9

// BoardArea is the number of points on the board.
const BoardArea = N * N

// MaxGroups bounds the number of simultaneously allocated groups. One
// stone can never belong to more than one group, so BoardArea stones
// can never require more than BoardArea distinct groups.
const MaxGroups = BoardArea

// Coord addresses a point on the board, or one of the two sentinel
// values Pass and Invalid.
type Coord uint16

const (
	// Pass represents passing a turn instead of placing a stone.
	Pass Coord = BoardArea
	// Invalid marks "no coordinate", e.g. before any move has been played.
	Invalid Coord = 0xffff
)

// kgsColumns are the column letters used in human notation; the letter
// I is skipped, matching the source engine's KGS coordinate format.
const kgsColumns = "ABCDEFGHJKLMNOPQRST"

// NewCoord builds a Coord from a zero-based (row, col) pair.
func NewCoord(row, col int) Coord {
	checkf(row >= 0 && row < N, "row %d out of range", row)
	checkf(col >= 0 && col < N, "col %d out of range", col)
	return Coord(row*N + col)
}

// Row returns the zero-based row of c. c must be an in-board coordinate.
func (c Coord) Row() int { return int(c) / N }

// Col returns the zero-based column of c. c must be an in-board coordinate.
func (c Coord) Col() int { return int(c) % N }

// InBounds reports whether c addresses an actual board point (as
// opposed to Pass or Invalid).
func (c Coord) InBounds() bool { return c < BoardArea }

// String renders c in KGS-like column-letter/row-number notation, e.g.
// "E5", or "pass"/"invalid" for the sentinel values.
func (c Coord) String() string {
	switch c {
	case Pass:
		return "pass"
	case Invalid:
		return "invalid"
	}
	if !c.InBounds() {
		return fmt.Sprintf("<out of range coord %d>", uint16(c))
	}
	row, col := c.Row(), c.Col()
	return fmt.Sprintf("%c%d", kgsColumns[col], N-row)
}

// ParseCoord parses a coordinate in column-letter/row-number notation
// (e.g. "E5"), or "pass" (case-insensitive). It returns Invalid and an
// error if s cannot be parsed.
func ParseCoord(s string) (Coord, error) {
	if strings.EqualFold(s, "pass") {
		return Pass, nil
	}
	if len(s) < 2 {
		return Invalid, errors.Errorf("coord %q too short", s)
	}
	colChar := s[0]
	if colChar >= 'a' && colChar <= 'z' {
		colChar -= 'a' - 'A'
	}
	if colChar < 'A' || colChar > 'T' || colChar == 'I' {
		return Invalid, errors.Errorf("coord %q has invalid column", s)
	}
	var col int
	if colChar < 'I' {
		col = int(colChar - 'A')
	} else {
		col = 8 + int(colChar-'J')
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Invalid, errors.Wrapf(err, "coord %q has invalid row", s)
	}
	if row <= 0 || row > N || col >= N {
		return Invalid, errors.Errorf("coord %q is out of range", s)
	}
	return NewCoord(N-row, col), nil
}

// neighborTable[c] holds the up-to-four orthogonal in-bounds neighbors
// of c, and neighborCount[c] how many of its four slots are valid.
// Built once at package init so the hot-path lookup in Neighbors is a
// simple, branch-free slice of a precomputed table.
var neighborTable [BoardArea][4]Coord
var neighborCount [BoardArea]int8

func init() {
	for row := 0; row < N; row++ {
		for col := 0; col < N; col++ {
			c := Coord(row*N + col)
			n := int8(0)
			if col > 0 {
				neighborTable[c][n] = Coord(row*N + col - 1)
				n++
			}
			if col < N-1 {
				neighborTable[c][n] = Coord(row*N + col + 1)
				n++
			}
			if row > 0 {
				neighborTable[c][n] = Coord((row-1)*N + col)
				n++
			}
			if row < N-1 {
				neighborTable[c][n] = Coord((row+1)*N + col)
				n++
			}
			neighborCount[c] = n
		}
	}
}

// Neighbors returns the in-bounds orthogonal neighbors of c. The
// returned slice aliases a package-level table; it must not be
// mutated and is only valid until the next call does not invalidate
// it (the table is immutable after init, so callers may retain it).
func Neighbors(c Coord) []Coord {
	return neighborTable[c][:neighborCount[c]]
}
