package position

// GroupID identifies a group record inside a GroupPool.
type GroupID uint16

// Group is the size and liberty count of a maximal 4-connected region
// of same-colored stones. A group is alive iff NumLiberties > 0 at
// the moment a move finishes being applied.
type Group struct {
	Size         int
	NumLiberties int
}

// GroupPool is a fixed-capacity slab allocator for Group records,
// indexed by the small integer GroupID. It is a plain array plus an
// intrusive free-list stack, so it is trivially and cheaply copyable
// (copying a Position copies its pool by value) and never touches the
// heap after construction.
type GroupPool struct {
	groups  [MaxGroups]Group
	free    [MaxGroups]GroupID
	numFree int
}

// newGroupPool returns a pool with every id on the free list.
func newGroupPool() GroupPool {
	var p GroupPool
	for i := 0; i < MaxGroups; i++ {
		p.free[i] = GroupID(i)
	}
	p.numFree = MaxGroups
	return p
}

// Alloc returns an unused GroupID in O(1) and initializes its record.
// It only fails if the pool is exhausted, which never happens on a
// legal board because MaxGroups >= BoardArea.
func (p *GroupPool) Alloc(size, numLiberties int) GroupID {
	checkf(p.numFree > 0, "group pool exhausted")
	p.numFree--
	id := p.free[p.numFree]
	p.groups[id] = Group{Size: size, NumLiberties: numLiberties}
	return id
}

// Free releases id back to the pool; a future Alloc may reuse it.
func (p *GroupPool) Free(id GroupID) {
	p.free[p.numFree] = id
	p.numFree++
}

// At returns a mutable reference to the group record for id.
func (p *GroupPool) At(id GroupID) *Group {
	return &p.groups[id]
}

// Get returns a copy of the group record for id.
func (p *GroupPool) Get(id GroupID) Group {
	return p.groups[id]
}
