// Package knapsack selects a value-maximizing subset of weighted items under a
// weight budget.
//
// Solve runs the exact 0/1 dynamic program: each item is taken at most once.
// The table best[i][w] holds the best value reachable with the first i items
// and capacity w, and the chosen subset is rebuilt by scanning the table
// backward from the last item.
//
// Complexity:
//
//   - Time:  O(n·C)
//   - Space: O(n·C)
//
// The result is a pure function of its inputs. When two subsets tie on value
// the reconstruction keeps the "exclude item i" branch, so repeated calls with
// the same input always return the same indices.
package knapsack

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")
	// ErrNegativeWeight indicates an item with a weight below zero.
	ErrNegativeWeight = errors.New("knapsack: item weight must be non-negative")
)

// Item is a single candidate for selection.
type Item struct {
	Weight int
	Value  int
}

// Result is the optimizer's chosen subset.
type Result struct {
	// Indices into the input slice, ascending.
	Indices     []int
	TotalWeight int
	TotalValue  int
}

// Solve returns the subset of items with maximum total value whose total
// weight does not exceed capacity.
func Solve(items []Item, capacity int) (Result, error) {
	if capacity < 0 {
		return Result{}, ErrNegativeCapacity
	}
	for i, it := range items {
		if it.Weight < 0 {
			return Result{}, fmt.Errorf("%w: item %d weight=%d", ErrNegativeWeight, i, it.Weight)
		}
	}

	n := len(items)
	best := make([][]int, n+1)
	for i := range best {
		best[i] = make([]int, capacity+1)
	}

	for i := 1; i <= n; i++ {
		it := items[i-1]
		for w := 0; w <= capacity; w++ {
			best[i][w] = best[i-1][w]
			if it.Weight <= w {
				if take := best[i-1][w-it.Weight] + it.Value; take > best[i][w] {
					best[i][w] = take
				}
			}
		}
	}

	res := Result{Indices: []int{}}
	w := capacity
	for i := n; i > 0; i-- {
		// equal values mean item i was not needed for this optimum
		if best[i][w] == best[i-1][w] {
			continue
		}
		it := items[i-1]
		res.Indices = append(res.Indices, i-1)
		res.TotalWeight += it.Weight
		res.TotalValue += it.Value
		w -= it.Weight
	}

	for l, r := 0, len(res.Indices)-1; l < r; l, r = l+1, r-1 {
		res.Indices[l], res.Indices[r] = res.Indices[r], res.Indices[l]
	}

	return res, nil
}
