package models

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded indicates an item that would push the selection past
	// the catalog's capacity.
	ErrCapacityExceeded = errors.New("selection: capacity exceeded")
	// ErrUnknownItem indicates an item ID missing from the catalog.
	ErrUnknownItem = errors.New("selection: unknown item")
)

// Selection is an ordered set of chosen items under a weight budget. The zero
// value is an empty selection with no budget; use NewSelection. Selections are
// values: every change returns a new one.
type Selection struct {
	capacity int
	items    []Item
}

// NewSelection returns an empty selection bounded by capacity.
func NewSelection(capacity int) Selection {
	return Selection{capacity: capacity}
}

// SelectionOf builds a selection from items, rejecting it if the items do not
// fit.
func SelectionOf(capacity int, items ...Item) (Selection, error) {
	s := NewSelection(capacity)
	var err error
	for _, it := range items {
		if s, err = s.Add(it); err != nil {
			return Selection{}, err
		}
	}
	return s, nil
}

func (s Selection) Capacity() int { return s.capacity }
func (s Selection) Len() int      { return len(s.items) }

// Items returns a copy of the chosen items in selection order.
func (s Selection) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Has reports whether the item with id is chosen.
func (s Selection) Has(id string) bool {
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Add returns s with it appended. Adding an item already present is a no-op.
func (s Selection) Add(it Item) (Selection, error) {
	if s.Has(it.ID) {
		return s, nil
	}
	if s.Weight()+it.Weight > s.capacity {
		return s, fmt.Errorf("%w: %s weighs %d, %d of %d used", ErrCapacityExceeded, it.ID, it.Weight, s.Weight(), s.capacity)
	}
	next := Selection{capacity: s.capacity, items: make([]Item, len(s.items), len(s.items)+1)}
	copy(next.items, s.items)
	next.items = append(next.items, it)
	return next, nil
}

// Remove returns s without the item with id.
func (s Selection) Remove(id string) Selection {
	next := Selection{capacity: s.capacity}
	for _, it := range s.items {
		if it.ID != id {
			next.items = append(next.items, it)
		}
	}
	return next
}

// Toggle removes it if chosen and adds it otherwise.
func (s Selection) Toggle(it Item) (Selection, error) {
	if s.Has(it.ID) {
		return s.Remove(it.ID), nil
	}
	return s.Add(it)
}

// Fits reports whether it could be added without exceeding the capacity.
func (s Selection) Fits(it Item) bool {
	return s.Has(it.ID) || s.Weight()+it.Weight <= s.capacity
}

// Weight is the summed weight of the chosen items.
func (s Selection) Weight() int {
	w := 0
	for _, it := range s.items {
		w += it.Weight
	}
	return w
}

// Value is the summed raw value of the chosen items regardless of kind.
func (s Selection) Value() int {
	v := 0
	for _, it := range s.items {
		v += it.Value
	}
	return v
}

// ValueOf sums the raw value of chosen items of kind k.
func (s Selection) ValueOf(k Kind) int {
	v := 0
	for _, it := range s.items {
		if it.Kind == k {
			v += it.Value
		}
	}
	return v
}

// WeightOf sums the weight of chosen items of kind k.
func (s Selection) WeightOf(k Kind) int {
	w := 0
	for _, it := range s.items {
		if it.Kind == k {
			w += it.Weight
		}
	}
	return w
}

// CountOf returns how many chosen items are of kind k.
func (s Selection) CountOf(k Kind) int {
	n := 0
	for _, it := range s.items {
		if it.Kind == k {
			n++
		}
	}
	return n
}

// Balance is virtue value minus sin value.
func (s Selection) Balance() int {
	return s.ValueOf(Virtue) - s.ValueOf(Sin)
}

// IDs returns the chosen item IDs in selection order.
func (s Selection) IDs() []string {
	ids := make([]string, len(s.items))
	for i, it := range s.items {
		ids[i] = it.ID
	}
	return ids
}
