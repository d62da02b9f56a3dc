// Package scratch holds the process-lifetime primitive and collection values
// behind /api/primitives and /api/collections. Nothing here is persisted.
package scratch

import (
	"sync"

	dom "github.com/cuihairu/labcatalog/internal/ports"
)

// Store owns every scratch value. Each member guards itself, so concurrent
// requests see a consistent state per value.
type Store struct {
	Number  Value[int]
	String  Value[string]
	Boolean Value[bool]

	Numbers  List[int]
	Strings  List[string]
	Booleans List[bool]
	Items    List[string]

	StringSet  StringSet
	BooleanMap BoolCounter
}

func NewStore() *Store { return &Store{} }

// Reset clears every value.
func (s *Store) Reset() {
	s.Number.Clear()
	s.String.Clear()
	s.Boolean.Clear()
	s.Numbers.Clear()
	s.Strings.Clear()
	s.Booleans.Clear()
	s.Items.Clear()
	s.StringSet.Clear()
	s.BooleanMap.Clear()
}

// Value is an optional single value.
type Value[T any] struct {
	mu  sync.RWMutex
	v   T
	set bool
}

func (p *Value[T]) Set(v T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.v, p.set = v, true
}

// Get returns the value and whether one is stored.
func (p *Value[T]) Get() (T, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.v, p.set
}

func (p *Value[T]) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	var zero T
	p.v, p.set = zero, false
}

// List is an ordered sequence with index-addressed insert and lookup.
type List[T any] struct {
	mu    sync.RWMutex
	items []T
}

// Add appends v and returns the new length.
func (l *List[T]) Add(v T) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, v)
	return len(l.items)
}

// InsertAt places v at index, shifting later items. 0 <= index <= len.
func (l *List[T]) InsertAt(index int, v T) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index > len(l.items) {
		return len(l.items), dom.Invalid("index", "Index %d out of range [0, %d]", index, len(l.items))
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = v
	return len(l.items), nil
}

// At returns the item at index. 0 <= index < len.
func (l *List[T]) At(index int) (T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, dom.Invalid("index", "Index %d out of range [0, %d)", index, len(l.items))
	}
	return l.items[index], nil
}

// All returns a copy of the items.
func (l *List[T]) All() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append(make([]T, 0, len(l.items)), l.items...)
}

func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

func (l *List[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
}

// StringSet keeps unique strings in insertion order.
type StringSet struct {
	mu    sync.RWMutex
	order []string
	seen  map[string]struct{}
}

// Add rejects duplicates with a ConflictError and returns the set size.
func (s *StringSet) Add(v string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[v]; ok {
		return len(s.order), dom.Conflictf("String '%s' already exists in the set", v)
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
	return len(s.order), nil
}

func (s *StringSet) All() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]string, 0, len(s.order)), s.order...)
}

func (s *StringSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order, s.seen = nil, nil
}

// BoolCounter counts how many times each boolean was added.
type BoolCounter struct {
	mu            sync.RWMutex
	trues, falses int
}

// Add counts v and returns the total across both keys.
func (c *BoolCounter) Add(v bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v {
		c.trues++
	} else {
		c.falses++
	}
	return c.trues + c.falses
}

// Counts returns the per-key counts; keys never added are absent.
func (c *BoolCounter) Counts() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]int, 2)
	if c.trues > 0 {
		out["true"] = c.trues
	}
	if c.falses > 0 {
		out["false"] = c.falses
	}
	return out
}

func (c *BoolCounter) Total() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trues + c.falses
}

func (c *BoolCounter) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trues, c.falses = 0, 0
}
