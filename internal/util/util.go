package util

import (
	"sort"
	"strings"
)

// MakeTextList gives a list of things joined with commas and a final
// conjunction, e.g. "A, B or C" for conj "or". No oxford comma is used.
func MakeTextList(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " " + conj + " " + items[len(items)-1]
	}
}

// SortBy returns a sorted copy of items, ordered by the less function. The
// original slice is not modified.
func SortBy[E any](items []E, less func(left, right E) bool) []E {
	sorted := make([]E, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// Dedupe returns items with every repeat of an earlier element removed. Order
// of first occurrence is preserved.
func Dedupe[E comparable](items []E) []E {
	seen := NewKeySet[E]()
	var out []E
	for _, it := range items {
		if seen.Has(it) {
			continue
		}
		seen.Add(it)
		out = append(out, it)
	}
	return out
}

// Stack is a LIFO stack.
type Stack[E any] struct {
	Of []E
}

// Push puts v on top of the stack.
func (s *Stack[E]) Push(v E) {
	s.Of = append(s.Of, v)
}

// Pop removes and returns the top of the stack. It panics if the stack is
// empty.
func (s *Stack[E]) Pop() E {
	if len(s.Of) == 0 {
		panic("pop of empty stack")
	}
	v := s.Of[len(s.Of)-1]
	s.Of = s.Of[:len(s.Of)-1]
	return v
}

// Peek returns the top of the stack without removing it. It panics if the
// stack is empty.
func (s *Stack[E]) Peek() E {
	if len(s.Of) == 0 {
		panic("peek of empty stack")
	}
	return s.Of[len(s.Of)-1]
}

func (s *Stack[E]) Len() int {
	return len(s.Of)
}

func (s *Stack[E]) Empty() bool {
	return len(s.Of) == 0
}
