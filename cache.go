package lazy

import "sync"

// cache is the lazily-populated ordered buffer backing the cache-based
// operator nodes (sort, shuffle, reverse over a non-indexable parent,
// unique other than its small-input strategy, flatten, filter over an
// indexable parent, without, intersection, zip). Materialize is
// idempotent and safe under concurrent Each/Get/Length calls on the
// same node, per §5's "at most one materialization per node"
// requirement.
type cache[T any] struct {
	once sync.Once
	fill func() []T
	data []T
}

func newCache[T any](fill func() []T) *cache[T] { return &cache[T]{fill: fill} }

func (c *cache[T]) materialize() []T {
	c.once.Do(func() { c.data = c.fill() })
	return c.data
}

func (c *cache[T]) Each(v Visitor[T]) {
	data := c.materialize()
	for i, elem := range data {
		if !v(elem, i) {
			return
		}
	}
}

func (c *cache[T]) Get(i int) T { return c.materialize()[i] }
func (c *cache[T]) Length() int { return len(c.materialize()) }
