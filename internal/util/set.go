package util

import (
	"fmt"
	"sort"
	"strings"
)

// KeySet is a set of comparable values. The grammar analysis keeps its FIRST
// and FOLLOW sets in these.
type KeySet[E comparable] map[E]bool

// NewKeySet returns a KeySet holding the keys of every given map.
func NewKeySet[E comparable](of ...map[E]bool) KeySet[E] {
	s := KeySet[E]{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

// KeySetOf returns a KeySet containing every element of sl.
func KeySetOf[E comparable](sl []E) KeySet[E] {
	s := NewKeySet[E]()
	for i := range sl {
		s.Add(sl[i])
	}
	return s
}

// Copy returns a new KeySet with the same elements as s.
func (s KeySet[E]) Copy() KeySet[E] {
	return NewKeySet[E](s)
}

// Union returns a new KeySet that is the union of s and o.
func (s KeySet[E]) Union(o KeySet[E]) KeySet[E] {
	newSet := NewKeySet[E]()
	newSet.AddAll(s)
	newSet.AddAll(o)

	return newSet
}

// Intersection returns a new KeySet that contains the elements that are in
// both s and o.
func (s KeySet[E]) Intersection(o KeySet[E]) KeySet[E] {
	newSet := NewKeySet[E]()

	for k := range s {
		if o.Has(k) {
			newSet.Add(k)
		}
	}

	return newSet
}

// Difference returns a new KeySet that contains the elements that are in s but
// not in o.
func (s KeySet[E]) Difference(o KeySet[E]) KeySet[E] {
	newSet := NewKeySet[E]()

	for k := range s {
		if !o.Has(k) {
			newSet.Add(k)
		}
	}

	return newSet
}

func (s KeySet[E]) Empty() bool {
	return s.Len() == 0
}

func (s KeySet[E]) Has(value E) bool {
	_, has := s[value]
	return has
}

func (s KeySet[E]) Add(value E) {
	s[value] = true
}

func (s KeySet[E]) Remove(value E) {
	delete(s, value)
}

func (s KeySet[E]) Len() int {
	return len(s)
}

// AddAll adds every element of s2 to s and returns whether s grew.
func (s KeySet[E]) AddAll(s2 KeySet[E]) bool {
	before := len(s)
	for element := range s2 {
		s.Add(element)
	}
	return len(s) != before
}

// Equal returns whether two sets have the same items.
func (s KeySet[E]) Equal(o KeySet[E]) bool {
	if s.Len() != o.Len() {
		return false
	}

	for k := range s {
		if !o.Has(k) {
			return false
		}
	}

	return true
}

// Elements returns the elements of s in no particular order.
func (s KeySet[E]) Elements() []E {
	if s == nil {
		return nil
	}
	sl := make([]E, 0, len(s))
	for item := range s {
		sl = append(sl, item)
	}
	return sl
}

// Ordered returns the elements of s sorted by their string representation.
func (s KeySet[E]) Ordered() []E {
	sl := s.Elements()
	sort.Slice(sl, func(i, j int) bool {
		return fmt.Sprint(sl[i]) < fmt.Sprint(sl[j])
	})
	return sl
}

// StringOrdered is String with the elements alphabetized, for output that
// must be stable such as generated code and tables.
func (s KeySet[E]) StringOrdered() string {
	return formatSet(s.Ordered())
}

// String shows the elements of s in no particular order.
func (s KeySet[E]) String() string {
	return formatSet(s.Elements())
}

func formatSet[E any](items []E) string {
	strs := make([]string, len(items))
	for i := range items {
		strs[i] = fmt.Sprint(items[i])
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
