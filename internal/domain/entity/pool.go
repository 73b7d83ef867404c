package entity

// Poolable is implemented by every pooled entity.
// IsActive is the only thing that decides whether an entity takes part in
// update, collision and render.
type Poolable interface {
	IsActive() bool
}

// Pool is a dense array of short-lived entities.
//
// Entities are stored by value. Dead entities stay in place until Compact
// removes them with swap-remove, so indices are only stable between
// compactions.
type Pool[T Poolable] struct {
	items []T
}

// NewPool creates an empty pool with room for capacity entities
func NewPool[T Poolable](capacity int) *Pool[T] {
	return &Pool[T]{items: make([]T, 0, capacity)}
}

// Spawn appends an entity and returns a pointer to its slot.
// The pointer is invalidated by the next Spawn or Compact.
func (p *Pool[T]) Spawn(e T) *T {
	p.items = append(p.items, e)
	return &p.items[len(p.items)-1]
}

// Len returns the number of slots, dead ones included
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// At returns a pointer to the entity in slot i
func (p *Pool[T]) At(i int) *T {
	return &p.items[i]
}

// Items returns the backing slice for read-only iteration
func (p *Pool[T]) Items() []T {
	return p.items
}

// CountActive returns the number of active entities
func (p *Pool[T]) CountActive() int {
	n := 0
	for i := range p.items {
		if p.items[i].IsActive() {
			n++
		}
	}
	return n
}

// Compact removes every inactive entity and returns how many were removed.
func (p *Pool[T]) Compact() int {
	var zero T
	removed := 0
	for i := 0; i < len(p.items); {
		if p.items[i].IsActive() {
			i++
			continue
		}
		last := len(p.items) - 1
		p.items[i] = p.items[last]
		p.items[last] = zero
		p.items = p.items[:last]
		removed++
	}
	return removed
}

// Clear removes all entities but keeps the allocated capacity
func (p *Pool[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}
