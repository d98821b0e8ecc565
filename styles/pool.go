package styles

// pool is the append-only flyweight container behind the font, fill, border
// and cell-format pools: an ordered sequence of registered values plus a
// canonical-key index for O(1) amortized dedup. Index 0 holds the reserved
// default value, established at construction and never evicted. There is no
// removal: pools only grow for the lifetime of the owning style sheet.
type pool[T any] struct {
	items []T
	index map[string]uint32
	key   func(T) string
}

func newPool[T any](key func(T) string, def T) *pool[T] {
	p := &pool[T]{index: make(map[string]uint32), key: key}
	p.register(def)
	return p
}

// register returns the index of v, appending it when its canonical key has
// not been seen before. Indices are assigned in registration order and are
// never reused or reordered, so they form a stable registration-order total
// order within one pool. Registration cannot fail.
func (p *pool[T]) register(v T) uint32 {
	k := p.key(v)
	if idx, ok := p.index[k]; ok {
		return idx
	}
	idx := uint32(len(p.items))
	p.items = append(p.items, v)
	p.index[k] = idx
	return idx
}

// at returns the value registered at idx and whether idx is in range.
func (p *pool[T]) at(idx uint32) (T, bool) {
	if int(idx) >= len(p.items) {
		var zero T
		return zero, false
	}
	return p.items[idx], true
}

func (p *pool[T]) size() int {
	return len(p.items)
}

// all returns the backing slice in registration order. Callers must not
// mutate it.
func (p *pool[T]) all() []T {
	return p.items
}

// load replaces the pool contents with values in the given order, keeping
// file indices intact even when the input contains duplicates: only the
// first occurrence of a key wins the index mapping. Used when rebuilding a
// style sheet from a parsed package.
func (p *pool[T]) load(values []T) {
	p.items = p.items[:0]
	clear(p.index)
	for _, v := range values {
		k := p.key(v)
		idx := uint32(len(p.items))
		p.items = append(p.items, v)
		if _, ok := p.index[k]; !ok {
			p.index[k] = idx
		}
	}
}
