package dice

import (
	"errors"
	"fmt"
)

// Pick returns one element of items chosen uniformly
func Pick[T any](r Roller, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errors.New("cannot pick from an empty list")
	}

	idx, err := r.Choose(len(items))
	if err != nil {
		return zero, err
	}
	return items[idx], nil
}

// Sample returns up to k distinct elements of items, in draw order, without
// replacement. items is not modified.
func Sample[T any](r Roller, items []T, k int) ([]T, error) {
	if k > len(items) {
		k = len(items)
	}

	pool := make([]T, len(items))
	copy(pool, items)

	out := make([]T, 0, k)
	for len(out) < k {
		idx, err := r.Choose(len(pool))
		if err != nil {
			return nil, err
		}
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return out, nil
}

// Between returns a uniform integer in [lo, hi]
func Between(r Roller, lo, hi int) (int, error) {
	if hi < lo {
		return 0, fmt.Errorf("invalid range %d-%d", lo, hi)
	}

	idx, err := r.Choose(hi - lo + 1)
	if err != nil {
		return 0, err
	}
	return lo + idx, nil
}

// OneIn reports whether a 1-in-n chance succeeded (a roll of 1 on a dn)
func OneIn(r Roller, n int) (bool, error) {
	result, err := r.Roll(1, n, 0)
	if err != nil {
		return false, err
	}
	return result.RawTotal == 1, nil
}

// Weighted returns the index of the chosen weight. Weights must be
// non-negative with a positive sum.
func Weighted(r Roller, weights []int) (int, error) {
	total := 0
	for _, w := range weights {
		if w < 0 {
			return 0, fmt.Errorf("negative weight %d", w)
		}
		total += w
	}
	if total == 0 {
		return 0, errors.New("weights sum to zero")
	}

	target, err := r.Choose(total)
	if err != nil {
		return 0, err
	}

	for i, w := range weights {
		if target < w {
			return i, nil
		}
		target -= w
	}

	return len(weights) - 1, nil
}
