// SPDX-License-Identifier: MIT
// Package: lvtopo/core
//
// family.go — deduplicated subset families over a fixed carrier.
//
// Subsets are encoded as membership masks over carrier positions so that
// set equality, union and intersection are word operations and duplicate
// detection is a map lookup. All mask work stays private; callers see []T.

package core

import (
	"encoding/binary"
	"math/bits"
)

// mask is a bitset over carrier positions.
type mask []uint64

func newMask(n int) mask {
	return make(mask, (n+63)/64)
}

func (m mask) set(i int) { m[i/64] |= 1 << (uint(i) % 64) }

func (m mask) has(i int) bool { return m[i/64]&(1<<(uint(i)%64)) != 0 }

func (m mask) or(o mask) mask {
	out := make(mask, len(m))
	for i := range m {
		out[i] = m[i] | o[i]
	}
	return out
}

func (m mask) and(o mask) mask {
	out := make(mask, len(m))
	for i := range m {
		out[i] = m[i] & o[i]
	}
	return out
}

func (m mask) count() int {
	c := 0
	for _, w := range m {
		c += bits.OnesCount64(w)
	}
	return c
}

// key is a map key identifying the subset.
func (m mask) key() string {
	buf := make([]byte, 0, 8*len(m))
	for _, w := range m {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return string(buf)
}

// Family is a collection of subsets of a fixed carrier with no two members
// equal as sets. It is the work area for every closure algorithm in lvtopo.
//
// The zero value is not usable; construct with NewFamily.
type Family[T any] struct {
	eq      *Eq[T]
	carrier []T
	index   map[string]int
	masks   []mask
}

// NewFamily starts an empty family over carrier. The carrier is used as-is;
// pass a deduplicated carrier (Dedupe) for meaningful positions.
func NewFamily[T any](eq *Eq[T], carrier []T) *Family[T] {
	return &Family[T]{
		eq:      eq,
		carrier: carrier,
		index:   make(map[string]int),
	}
}

// maskOf encodes subset, failing on points outside the carrier.
func (f *Family[T]) maskOf(subset []T) (mask, error) {
	m := newMask(len(f.carrier))
	for _, x := range subset {
		i := IndexOf(f.eq, f.carrier, x)
		if i < 0 {
			return nil, ErrNotInCarrier
		}
		m.set(i)
	}
	return m, nil
}

func (f *Family[T]) fullMask() mask {
	m := newMask(len(f.carrier))
	for i := range f.carrier {
		// duplicates in a raw carrier collapse onto their first position
		m.set(IndexOf(f.eq, f.carrier, f.carrier[i]))
	}
	return m
}

func (f *Family[T]) addMask(m mask) bool {
	k := m.key()
	if _, ok := f.index[k]; ok {
		return false
	}
	f.index[k] = len(f.masks)
	f.masks = append(f.masks, m)
	return true
}

func (f *Family[T]) hasMask(m mask) bool {
	_, ok := f.index[m.key()]
	return ok
}

// Add inserts subset unless an equal set is already present.
// Returns ErrNotInCarrier if subset has a stray point.
func (f *Family[T]) Add(subset []T) (bool, error) {
	m, err := f.maskOf(subset)
	if err != nil {
		return false, err
	}
	return f.addMask(m), nil
}

// AddEmpty inserts ∅.
func (f *Family[T]) AddEmpty() bool { return f.addMask(newMask(len(f.carrier))) }

// AddCarrier inserts the whole carrier.
func (f *Family[T]) AddCarrier() bool { return f.addMask(f.fullMask()) }

// Has reports whether a set equal to subset is present. Subsets with stray
// points are never present.
func (f *Family[T]) Has(subset []T) bool {
	m, err := f.maskOf(subset)
	if err != nil {
		return false
	}
	return f.hasMask(m)
}

// HasEmpty reports whether ∅ is present.
func (f *Family[T]) HasEmpty() bool { return f.hasMask(newMask(len(f.carrier))) }

// HasCarrier reports whether the whole carrier is present.
func (f *Family[T]) HasCarrier() bool { return f.hasMask(f.fullMask()) }

// Len returns the number of distinct subsets.
func (f *Family[T]) Len() int { return len(f.masks) }

// Set decodes the i-th member in carrier order.
func (f *Family[T]) Set(i int) []T {
	m := f.masks[i]
	out := make([]T, 0, m.count())
	for p, x := range f.carrier {
		if m.has(p) {
			out = append(out, x)
		}
	}
	return out
}

// Sets decodes every member in insertion order.
func (f *Family[T]) Sets() [][]T {
	out := make([][]T, len(f.masks))
	for i := range f.masks {
		out[i] = f.Set(i)
	}
	return out
}

// CloseUnderUnionIntersection saturates the family with pairwise unions and
// intersections until nothing new appears.
//
// Worklist: member i is paired with every earlier member j < i; members
// appended during the sweep are reached later by the same loop, so a single
// forward pass reaches the fixed point. The number of members is bounded by
// 2^n for an n-point carrier, which bounds the loop.
//
// Returns the number of members added.
func (f *Family[T]) CloseUnderUnionIntersection() int {
	before := len(f.masks)
	for i := 0; i < len(f.masks); i++ {
		for j := 0; j < i; j++ {
			f.addMask(f.masks[i].or(f.masks[j]))
			f.addMask(f.masks[i].and(f.masks[j]))
		}
	}
	return len(f.masks) - before
}

// CloseUnderIntersection saturates the family with pairwise intersections
// only. Combined with AddCarrier this yields closure under all finite
// intersections, the empty intersection included.
func (f *Family[T]) CloseUnderIntersection() int {
	before := len(f.masks)
	for i := 0; i < len(f.masks); i++ {
		for j := 0; j < i; j++ {
			f.addMask(f.masks[i].and(f.masks[j]))
		}
	}
	return len(f.masks) - before
}

// ClosedUnderUnionIntersection reports whether every pairwise union and
// intersection is already a member, without adding anything.
func (f *Family[T]) ClosedUnderUnionIntersection() (ok bool, i, j int) {
	for i = 0; i < len(f.masks); i++ {
		for j = 0; j < i; j++ {
			if !f.hasMask(f.masks[i].or(f.masks[j])) || !f.hasMask(f.masks[i].and(f.masks[j])) {
				return false, i, j
			}
		}
	}
	return true, -1, -1
}

// PowerSet enumerates every subset of carrier by bitmask over positions,
// in ascending mask order (∅ first, the full carrier last).
// The carrier must have fewer than 64 points; callers enforce tighter limits.
func PowerSet[T any](carrier []T) [][]T {
	n := len(carrier)
	total := uint64(1) << uint(n)
	out := make([][]T, 0, total)
	for bm := uint64(0); bm < total; bm++ {
		sub := make([]T, 0, bits.OnesCount64(bm))
		for p := 0; p < n; p++ {
			if bm&(1<<uint(p)) != 0 {
				sub = append(sub, carrier[p])
			}
		}
		out = append(out, sub)
	}
	return out
}
