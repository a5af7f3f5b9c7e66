package position

// CalculateScore computes the Tromp-Taylor area score from Black's
// perspective: a player's score is their stones on the board plus any
// empty region bordered exclusively by their color, minus komi.
// Positive means Black is ahead.
func (p *Position) CalculateScore() float64 {
	score := 0

	p.groupVisitor.Begin()
	p.boardVisitor.Begin()

	for row := 0; row < N; row++ {
		for col := 0; col < N; col++ {
			c := Coord(row*N + col)
			s := p.stones[c]
			if s.Empty() {
				if p.boardVisitor.Visit(c) {
					score += p.scoreEmptyRegion(c)
				}
			} else if p.groupVisitor.Visit(s.group) {
				size := p.groups.Get(s.group).Size
				if s.Color() == Black {
					score += size
				} else {
					score -= size
				}
			}
		}
	}

	return float64(score) - p.komi
}

// scoreEmptyRegion flood-fills the empty region containing (and
// already queued at) c, returning its size signed by which color(s)
// border it: +size if only Black borders it, -size if only White,
// and 0 if both colors border it (or the board is entirely empty).
func (p *Position) scoreEmptyRegion(c Coord) int {
	numVisited := 0
	foundBits := 0
	for {
		cur := p.boardVisitor.Next()
		numVisited++
		for _, nc := range Neighbors(cur) {
			color := p.stones[nc].Color()
			if color == Empty {
				p.boardVisitor.Visit(nc)
			} else {
				foundBits |= int(color)
			}
		}
		if p.boardVisitor.Done() {
			break
		}
	}

	switch foundBits {
	case int(Black):
		return numVisited
	case int(White):
		return -numVisited
	default:
		return 0
	}
}
