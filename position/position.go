package position

// Position is a single Go board state: the stones on the board, their
// groups, whose turn it is, the running capture counts, the current
// ko ban, and komi. It is designed to be copied cheaply (it holds no
// pointers of its own except the borrowed scratch visitors) so that
// tree search can hold thousands of positions at once.
//
// A Position does not own its BoardVisitor/GroupVisitor: those are
// borrowed, epoch-based scratch structures that must not be used by
// two operations concurrently (see Clone/CloneWithVisitors for the
// threading model).
type Position struct {
	stones [BoardArea]Stone
	groups GroupPool

	toPlay       Color
	previousMove Coord
	ko           Coord

	numCaptures [2]int

	n                    int
	numConsecutivePasses int

	komi float64

	boardVisitor *BoardVisitor
	groupVisitor *GroupVisitor
}

// New returns an empty board with the given komi and player to move.
// bv and gv are borrowed scratch visitors; the caller retains
// ownership and must not use them from another goroutine while this
// Position (or any of its clones sharing them) is in use.
func New(bv *BoardVisitor, gv *GroupVisitor, komi float64, toPlay Color, n int) *Position {
	checkf(toPlay == Black || toPlay == White, "to_play must be Black or White, got %v", toPlay)
	return &Position{
		groups:       newGroupPool(),
		toPlay:       toPlay,
		previousMove: Invalid,
		ko:           Invalid,
		n:            n,
		komi:         komi,
		boardVisitor: bv,
		groupVisitor: gv,
	}
}

// FromColors builds a position by placing every non-empty cell of
// colors onto an empty board, in raster order, via AddStoneToBoard.
// It is a test-setup helper for constructing arbitrary board shapes
// directly, bypassing move legality and move counters; see
// ParseBoard for turning ASCII diagrams into a colors array.
func FromColors(bv *BoardVisitor, gv *GroupVisitor, colors [BoardArea]Color, komi float64, toPlay Color) *Position {
	p := New(bv, gv, komi, toPlay, 0)
	for c := Coord(0); c < BoardArea; c++ {
		if colors[c] != Empty {
			p.AddStoneToBoard(c, colors[c])
		}
	}
	return p
}

// Clone copies the position, keeping the same borrowed visitors. The
// clone must not be used concurrently with p or with any other clone
// sharing the same visitors.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

// CloneWithVisitors copies the position's state, rebinding it to a
// different visitor pair. This is the idiomatic-Go rendition of the
// source engine's "copy constructor that takes explicit visitor
// references": each worker goroutine in a parallel search owns one
// visitor pair and constructs its Positions bound to it.
func (p *Position) CloneWithVisitors(bv *BoardVisitor, gv *GroupVisitor) *Position {
	cp := *p
	cp.boardVisitor = bv
	cp.groupVisitor = gv
	return &cp
}

// ToPlay returns the color to move.
func (p *Position) ToPlay() Color { return p.toPlay }

// PreviousMove returns the last move played (Pass or Invalid are
// possible values).
func (p *Position) PreviousMove() Coord { return p.previousMove }

// Stones returns the whole board array of stone cells.
func (p *Position) Stones() [BoardArea]Stone { return p.stones }

// N returns the half-move counter since the game began.
func (p *Position) N() int { return p.n }

// IsGameOver reports whether two passes have been played in a row.
func (p *Position) IsGameOver() bool { return p.numConsecutivePasses >= 2 }

// NumCaptures returns the running capture counts, indexed by capturer
// color: index 0 is Black's captures, index 1 is White's.
func (p *Position) NumCaptures() [2]int { return p.numCaptures }

// Komi returns the komi added to White's area in scoring.
func (p *Position) Komi() float64 { return p.komi }

// Ko returns the current single-point ko ban, or Invalid if none.
func (p *Position) Ko() Coord { return p.ko }

// groupAt returns the group of the stone at c, or the zero Group if c
// is empty. Exposed for tests.
func (p *Position) groupAt(c Coord) Group {
	s := p.stones[c]
	if s.Empty() {
		return Group{}
	}
	return p.groups.Get(s.group)
}

// IsMoveLegal reports whether color ToPlay() may legally play at c.
func (p *Position) IsMoveLegal(c Coord) bool {
	if c == Pass {
		return true
	}
	if !p.stones[c].Empty() {
		return false
	}
	if c == p.ko {
		return false
	}
	if p.isMoveSuicidal(c, p.toPlay) {
		return false
	}
	return true
}

// isMoveSuicidal reports whether playing color at c would leave its
// own group with no liberties and capture nothing.
func (p *Position) isMoveSuicidal(c Coord, color Color) bool {
	otherColor := OtherColor(color)
	for _, nc := range Neighbors(c) {
		s := p.stones[nc]
		if s.Empty() {
			// At least one liberty remains at nc.
			return false
		}
		if s.Color() == otherColor {
			if p.groups.Get(s.group).NumLiberties == 1 {
				// Playing at c will capture the opponent group through nc.
				return false
			}
		} else {
			if p.groups.Get(s.group).NumLiberties > 1 {
				// Connects to a same-colored group that survives.
				return false
			}
		}
	}
	return true
}

// isKoish returns the color c would need to be "koish" for: c is
// empty and every in-board neighbor is a stone of the same single
// color. Edge/corner points can never be koish because an off-board
// neighbor is absent rather than same-colored.
func (p *Position) isKoish(c Coord) Color {
	if !p.stones[c].Empty() {
		return Empty
	}
	koColor := Empty
	for _, nc := range Neighbors(c) {
		s := p.stones[nc]
		if s.Empty() {
			return Empty
		}
		if s.Color() != koColor {
			if koColor == Empty {
				koColor = s.Color()
			} else {
				return Empty
			}
		}
	}
	return koColor
}

// PlayMove plays a move at c. If color is Empty, the stone is played
// as ToPlay(); otherwise color overrides ToPlay() for this move (the
// source engine's open question: callers may play out of turn, and
// is_move_legal is evaluated against the overriding color, since
// IsMoveLegal always consults p.toPlay and PlayMove sets p.toPlay to
// color before checking legality -- see DESIGN.md).
//
// c must be a legal move (Pass is always legal). Playing an illegal
// move is a programming error and panics.
func (p *Position) PlayMove(c Coord, color Color) {
	if c == Pass {
		p.passMove()
		return
	}

	if color == Empty {
		color = p.toPlay
	} else {
		p.toPlay = color
	}
	checkf(p.IsMoveLegal(c), "illegal move %v for %v", c, color)

	p.AddStoneToBoard(c, color)

	p.n++
	p.numConsecutivePasses = 0
	p.toPlay = OtherColor(p.toPlay)
	p.previousMove = c
}

func (p *Position) passMove() {
	p.n++
	p.numConsecutivePasses++
	p.ko = Invalid
	p.toPlay = OtherColor(p.toPlay)
	p.previousMove = Pass
}

// AddStoneToBoard places a stone of color at c, merging same-color
// neighbor groups, decrementing opponent liberties, capturing any
// opponent groups left with no liberties, and updating the ko point.
// It does not touch n, numConsecutivePasses, toPlay, or
// previousMove -- it is exposed separately from PlayMove so tests can
// set up board positions without advancing move counters.
func (p *Position) AddStoneToBoard(c Coord, color Color) {
	potentialKo := p.isKoish(c)
	opponentColor := OtherColor(color)

	var captured capturedSet4
	var liberties coordSet4
	var opponentGroups groupIDSet4
	var sameColorGroups groupIDSet4

	for _, nc := range Neighbors(c) {
		neighbor := p.stones[nc]
		switch {
		case neighbor.Empty():
			liberties.add(nc)
		case neighbor.Color() == color:
			sameColorGroups.insert(neighbor.group)
		case neighbor.Color() == opponentColor:
			if opponentGroups.insert(neighbor.group) {
				g := p.groups.At(neighbor.group)
				g.NumLiberties--
				if g.NumLiberties == 0 {
					captured.add(neighbor.group, nc)
				}
			}
		}
	}

	switch sameColorGroups.n {
	case 0:
		// No same-color neighbor: start a new group.
		p.stones[c] = Stone{color: color, group: p.groups.Alloc(1, liberties.n)}
	case 1:
		// Exactly one same-color neighbor group: extend it in place.
		groupID := sameColorGroups.items[0]
		group := p.groups.At(groupID)
		group.Size++
		group.NumLiberties-- // The point at c is no longer a liberty of group.
		for _, lc := range liberties.slice() {
			if !p.hasNeighboringGroup(lc, groupID) {
				group.NumLiberties++
			}
		}
		p.stones[c] = Stone{color: color, group: groupID}
	default:
		// Two or more same-color neighbor groups: merge them into the first.
		groupID := sameColorGroups.items[0]
		p.stones[c] = Stone{color: color, group: groupID}
		p.mergeGroup(c)
		for _, other := range sameColorGroups.slice()[1:] {
			p.groups.Free(other)
		}
	}

	for _, cg := range captured.slice() {
		numCapturedStones := p.groups.Get(cg.id).Size
		if color == Black {
			p.numCaptures[0] += numCapturedStones
		} else {
			p.numCaptures[1] += numCapturedStones
		}
		p.removeGroup(cg.seed)
	}

	if captured.n == 1 && p.groups.Get(captured.items[0].id).Size == 1 && potentialKo == opponentColor {
		p.ko = captured.items[0].seed
	} else {
		p.ko = Invalid
	}
}

// hasNeighboringGroup reports whether c has a neighboring stone
// belonging to groupID.
func (p *Position) hasNeighboringGroup(c Coord, groupID GroupID) bool {
	for _, nc := range Neighbors(c) {
		s := p.stones[nc]
		if !s.Empty() && s.group == groupID {
			return true
		}
	}
	return false
}

// mergeGroup recomputes, from scratch, the size and liberty count of
// the group occupying c by flood-filling through same-color stones.
// It is the slow path, only taken when a placed stone touches two or
// more distinct same-color groups.
func (p *Position) mergeGroup(c Coord) {
	s := p.stones[c]
	color := s.Color()
	opponentColor := OtherColor(color)
	group := p.groups.At(s.group)
	group.Size = 0
	group.NumLiberties = 0

	p.boardVisitor.Begin()
	p.boardVisitor.Visit(c)
	for !p.boardVisitor.Done() {
		cur := p.boardVisitor.Next()
		if p.stones[cur].Empty() {
			group.NumLiberties++
			continue
		}
		checkf(p.stones[cur].Color() == color, "mergeGroup found a stone of the wrong color at %v", cur)
		group.Size++
		p.stones[cur] = s
		for _, nc := range Neighbors(cur) {
			if p.stones[nc].Color() != opponentColor {
				// Same-color stones to absorb, and empty points to count
				// as liberties exactly once via the visitor's dedup.
				p.boardVisitor.Visit(nc)
			}
		}
	}
}

// removeGroup empties every stone of the group seeded at c, crediting
// each orthogonally adjacent opponent group with one new liberty per
// removed stone it touches. The dedup is per removed stone (a fresh
// small set of up to 4 group ids for each stone's neighbors) rather
// than across the whole removal, since a single opponent group can
// legitimately gain a liberty at more than one of the points this
// capture frees up. The removed group's id is released back to the
// pool. The group visitor is still started here (Begin)
// to keep its epoch advancing in lockstep with every traversal, even
// though this function's own dedup uses the local set below.
func (p *Position) removeGroup(c Coord) {
	removedColor := p.stones[c].Color()
	otherColor := OtherColor(removedColor)
	removedGroupID := p.stones[c].group
	p.groups.Free(removedGroupID)

	p.groupVisitor.Begin()
	p.boardVisitor.Begin()
	p.boardVisitor.Visit(c)
	for !p.boardVisitor.Done() {
		cur := p.boardVisitor.Next()
		checkf(p.stones[cur].group == removedGroupID, "removeGroup found a stone outside the removed group at %v", cur)
		p.stones[cur] = Stone{}

		var otherGroups groupIDSet4
		for _, nc := range Neighbors(cur) {
			ns := p.stones[nc]
			switch ns.Color() {
			case otherColor:
				if otherGroups.insert(ns.group) {
					p.groups.At(ns.group).NumLiberties++
				}
			case removedColor:
				p.boardVisitor.Visit(nc)
			}
		}
	}
}
