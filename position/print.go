package position

import (
	"fmt"
	"strings"
)

// ToSimpleString renders the board as one character per point: X for
// Black, O for White, * for the ko point, . for empty, with a
// newline after each row and a trailing newline.
func (p *Position) ToSimpleString() string {
	var b strings.Builder
	for row := 0; row < N; row++ {
		for col := 0; col < N; col++ {
			c := Coord(row*N + col)
			switch p.stones[c].Color() {
			case White:
				b.WriteByte('O')
			case Black:
				b.WriteByte('X')
			default:
				if c == p.ko {
					b.WriteByte('*')
				} else {
					b.WriteByte('.')
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ToGroupString renders each point as either "." for empty or the
// hex group id of its stone, for debugging group/liberty bookkeeping.
func (p *Position) ToGroupString() string {
	var b strings.Builder
	for row := 0; row < N; row++ {
		for col := 0; col < N; col++ {
			c := Coord(row*N + col)
			s := p.stones[c]
			if s.Empty() {
				b.WriteString(".  ")
			} else {
				fmt.Fprintf(&b, "%02x ", s.group)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

const (
	ansiWhite  = "\x1b[0;31;47m"
	ansiBlack  = "\x1b[0;31;40m"
	ansiEmpty  = "\x1b[0;31;43m"
	ansiNormal = "\x1b[0m"
)

// ToPrettyString renders the board colorized, with column letters and
// row numbers, for interactive debugging.
func (p *Position) ToPrettyString() string {
	var b strings.Builder

	formatCols := func() {
		b.WriteString("   ")
		for i := 0; i < N; i++ {
			fmt.Fprintf(&b, "%c ", kgsColumns[i])
		}
		b.WriteByte('\n')
	}

	formatCols()
	for row := 0; row < N; row++ {
		fmt.Fprintf(&b, "%2d ", N-row)
		for col := 0; col < N; col++ {
			c := Coord(row*N + col)
			switch p.stones[c].Color() {
			case White:
				b.WriteString(ansiWhite + "O ")
			case Black:
				b.WriteString(ansiBlack + "X ")
			default:
				if c == p.ko {
					b.WriteString(ansiEmpty + "* ")
				} else {
					b.WriteString(ansiEmpty + ". ")
				}
			}
		}
		b.WriteString(ansiNormal)
		fmt.Fprintf(&b, "%2d", N-row)
		b.WriteByte('\n')
	}
	formatCols()
	return b.String()
}

// ParseBoard parses a multi-line textual board into an array of
// Color, for test setup. 'X' is Black, 'O' is White, anything else
// (including a short or missing line) is Empty. Lines are padded to N
// columns and missing trailing rows are padded as empty.
func ParseBoard(s string) [BoardArea]Color {
	var colors [BoardArea]Color
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for row := 0; row < N && row < len(lines); row++ {
		line := lines[row]
		for col := 0; col < N && col < len(line); col++ {
			switch line[col] {
			case 'X':
				colors[row*N+col] = Black
			case 'O':
				colors[row*N+col] = White
			default:
				colors[row*N+col] = Empty
			}
		}
	}
	return colors
}
