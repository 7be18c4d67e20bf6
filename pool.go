package calm

// Lifetime tracks the age of an entity against its total life, both in
// milliseconds.
type Lifetime struct {
	Age, Life float64
}

// Advance ages the entity by dt and reports whether it is still alive.
func (l *Lifetime) Advance(dt float64) bool {
	l.Age += dt
	return !l.Expired()
}

// Expired reports whether age has reached life.
func (l Lifetime) Expired() bool {
	return l.Age >= l.Life
}

// Progress returns age/life clamped to [0, 1]. A zero life counts as done.
func (l Lifetime) Progress() float64 {
	if l.Life <= 0 {
		return 1
	}
	return Clamp01(l.Age / l.Life)
}

// Remaining returns the time left before expiry, never negative.
func (l Lifetime) Remaining() float64 {
	if l.Age >= l.Life {
		return 0
	}
	return l.Life - l.Age
}

// Pool is an ordered, capped collection of live entities. Entities are
// stored by value and drawn in spawn order; pruning keeps that order.
type Pool[T any] struct {
	items []T
	limit int
}

// NewPool creates a pool that holds at most limit entities. A limit of zero
// or less means unbounded.
func NewPool[T any](limit int) *Pool[T] {
	n := limit
	if n <= 0 || n > 256 {
		n = 16
	}
	return &Pool[T]{items: make([]T, 0, n), limit: limit}
}

// Spawn appends v unless the pool is full. It reports whether v was added.
func (p *Pool[T]) Spawn(v T) bool {
	if p.Full() {
		return false
	}
	p.items = append(p.items, v)
	return true
}

// Full reports whether the pool is at its cap.
func (p *Pool[T]) Full() bool {
	return p.limit > 0 && len(p.items) >= p.limit
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int { return len(p.items) }

// Limit returns the cap passed to NewPool.
func (p *Pool[T]) Limit() int { return p.limit }

// At returns a pointer to the i-th entity. The pointer is valid until the
// next Spawn, Update or Clear.
func (p *Pool[T]) At(i int) *T { return &p.items[i] }

// Items exposes the live entities in spawn order. Callers may mutate the
// elements but must not retain the slice across Spawn, Update or Clear.
func (p *Pool[T]) Items() []T { return p.items }

// Update calls step on every entity and removes those for which it returns
// false. Survivors keep their relative order.
func (p *Pool[T]) Update(step func(*T) bool) {
	n := 0
	for i := range p.items {
		if step(&p.items[i]) {
			if n != i {
				p.items[n] = p.items[i]
			}
			n++
		}
	}
	var zero T
	for i := n; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:n]
}

// Clear removes every entity.
func (p *Pool[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}
