package rng

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptySelection is returned by Pick on a table with no entries. Tier-gated
// pools can legitimately be empty, so callers check for it.
var ErrEmptySelection = errors.New("rng: pick from empty weighted list")

type weightedEntry[T any] struct {
	value  T
	weight float64
}

// WeightedList is a discrete distribution over a mutable set of values. The
// cumulative weight cache is rebuilt lazily on the first Pick after a mutation.
type WeightedList[T any] struct {
	entries    []weightedEntry[T]
	cumulative []float64
	dirty      bool
}

// NewWeightedList returns an empty list.
func NewWeightedList[T any]() *WeightedList[T] {
	return &WeightedList[T]{}
}

// Add appends a value. Weight must be positive.
func (l *WeightedList[T]) Add(value T, weight float64) error {
	if weight <= 0 {
		return fmt.Errorf("rng: weight must be positive, got %v", weight)
	}
	l.entries = append(l.entries, weightedEntry[T]{value: value, weight: weight})
	l.dirty = true
	return nil
}

// Remove drops every entry for which match returns true and reports how many
// were removed.
func (l *WeightedList[T]) Remove(match func(T) bool) int {
	kept := l.entries[:0]
	removed := 0
	for _, e := range l.entries {
		if match(e.value) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	if removed > 0 {
		l.dirty = true
	}
	return removed
}

// Len returns the number of entries.
func (l *WeightedList[T]) Len() int {
	return len(l.entries)
}

// Total returns the sum of all weights.
func (l *WeightedList[T]) Total() float64 {
	l.rebuild()
	if len(l.cumulative) == 0 {
		return 0
	}
	return l.cumulative[len(l.cumulative)-1]
}

// Pick draws a value with probability weight/total.
func (l *WeightedList[T]) Pick(r Source) (T, error) {
	var zero T
	if len(l.entries) == 0 {
		return zero, ErrEmptySelection
	}
	l.rebuild()
	total := l.cumulative[len(l.cumulative)-1]
	x := r.Float64() * total
	i := sort.Search(len(l.cumulative), func(i int) bool { return l.cumulative[i] > x })
	if i >= len(l.entries) {
		i = len(l.entries) - 1
	}
	return l.entries[i].value, nil
}

func (l *WeightedList[T]) rebuild() {
	if !l.dirty && len(l.cumulative) == len(l.entries) {
		return
	}
	l.cumulative = l.cumulative[:0]
	sum := 0.0
	for _, e := range l.entries {
		sum += e.weight
		l.cumulative = append(l.cumulative, sum)
	}
	l.dirty = false
}
