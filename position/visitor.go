package position

// BoardVisitor visits points on the board at most once per traversal
// epoch, maintaining a LIFO frontier so flood fills can run without
// allocating. Typical use:
//
//	bv.Begin()
//	bv.Visit(start)
//	for !bv.Done() {
//	    c := bv.Next()
//	    for _, nc := range Neighbors(c) {
//	        bv.Visit(nc)
//	    }
//	}
//
// Next returns pending points last-in first-out, so a traversal is
// depth-first; each point is queued at most once per epoch.
type BoardVisitor struct {
	stack   [BoardArea]Coord
	stackN  int
	visited [BoardArea]uint8
	epoch   uint8
}

// Begin starts a new traversal. The previous traversal must be Done.
func (v *BoardVisitor) Begin() {
	checkf(v.Done(), "BoardVisitor.Begin called before previous traversal finished")
	v.epoch++
	if v.epoch == 0 {
		for i := range v.visited {
			v.visited[i] = 0
		}
		v.epoch = 1
	}
}

// Done reports whether there are no more points queued to visit.
func (v *BoardVisitor) Done() bool { return v.stackN == 0 }

// Next pops and returns the most recently queued point.
func (v *BoardVisitor) Next() Coord {
	checkf(v.stackN > 0, "BoardVisitor.Next called with nothing pending")
	v.stackN--
	return v.stack[v.stackN]
}

// Visit marks c visited for this epoch and queues it if this is the
// first time it has been seen since Begin. Returns true iff it queued
// c.
func (v *BoardVisitor) Visit(c Coord) bool {
	if v.visited[c] == v.epoch {
		return false
	}
	v.visited[c] = v.epoch
	v.stack[v.stackN] = c
	v.stackN++
	return true
}

// GroupVisitor tracks which group ids have been visited since the
// most recent Begin. Unlike BoardVisitor it keeps no pending frontier.
type GroupVisitor struct {
	visited [MaxGroups]uint8
	epoch   uint8
}

// Begin starts a new visiting epoch.
func (v *GroupVisitor) Begin() {
	v.epoch++
	if v.epoch == 0 {
		for i := range v.visited {
			v.visited[i] = 0
		}
		v.epoch = 1
	}
}

// Visit reports whether this is the first time id has been visited
// since the last Begin, marking it visited as a side effect.
func (v *GroupVisitor) Visit(id GroupID) bool {
	if v.visited[id] == v.epoch {
		return false
	}
	v.visited[id] = v.epoch
	return true
}
