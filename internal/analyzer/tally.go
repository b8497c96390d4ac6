package analyzer

// Tally is an insertion-order-preserving frequency counter. Iteration and
// max selection follow the order in which keys were first seen, so ties
// resolve deterministically in favor of the earlier key.
type Tally[K comparable] struct {
	counts map[K]int
	order  []K
}

// NewTally returns an empty tally.
func NewTally[K comparable]() *Tally[K] {
	return &Tally[K]{counts: make(map[K]int)}
}

// Add increments key's count, registering the key on first sight.
func (t *Tally[K]) Add(key K) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// Len returns the number of distinct keys.
func (t *Tally[K]) Len() int {
	return len(t.order)
}

// Max returns the key with the highest count. Among equal counts the key
// seen first wins. ok is false when the tally is empty.
func (t *Tally[K]) Max() (key K, count int, ok bool) {
	for _, k := range t.order {
		if c := t.counts[k]; c > count {
			key, count, ok = k, c, true
		}
	}
	return key, count, ok
}

// Pair is one (key, count) entry of a tally.
type Pair[K comparable] struct {
	Key   K
	Count int
}

// Pairs returns all entries in first-seen order.
func (t *Tally[K]) Pairs() []Pair[K] {
	pairs := make([]Pair[K], 0, len(t.order))
	for _, k := range t.order {
		pairs = append(pairs, Pair[K]{Key: k, Count: t.counts[k]})
	}
	return pairs
}
