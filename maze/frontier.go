package maze

// frontier is a set of wall ids with O(1) access by position, so a uniform
// index draw maps to one element. Removal swaps the last element into the
// vacated position; the resulting order depends only on the operation sequence.
type frontier struct {
	ids   []WallID
	index map[WallID]int
}

func newFrontier() *frontier {
	return &frontier{index: make(map[WallID]int)}
}

func (f *frontier) len() int {
	return len(f.ids)
}

func (f *frontier) has(id WallID) bool {
	_, ok := f.index[id]
	return ok
}

func (f *frontier) add(id WallID) {
	if f.has(id) {
		return
	}
	f.index[id] = len(f.ids)
	f.ids = append(f.ids, id)
}

func (f *frontier) at(i int) WallID {
	return f.ids[i]
}

func (f *frontier) remove(id WallID) {
	i, ok := f.index[id]
	if !ok {
		return
	}
	last := len(f.ids) - 1
	f.ids[i] = f.ids[last]
	f.index[f.ids[i]] = i
	f.ids = f.ids[:last]
	delete(f.index, id)
}
