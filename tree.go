// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snzi

import "fmt"

// maxTreeSpan bounds K^(H+1). It keeps the node-count arithmetic far from
// uint64 overflow and the node array within a sane allocation.
const maxTreeSpan = 1 << 32

// geometry holds the immutable shape of a SNZI tree: node counts, the
// arity used for parent arithmetic, and the thread-to-leaf mapping
// parameters. It is fixed at construction and shared read-only afterwards.
type geometry struct {
	arity          uint64 // K
	nodes          uint64 // (K^(H+1) - 1) / (K - 1)
	leaves         uint64 // K^H
	threadsPerLeaf uint64 // ceil(T / leaves), at least 1
	threads        int    // T
}

// newGeometry validates (arity, height, threads) and computes the derived
// counts. All violations surface as errors wrapping ErrArgument.
func newGeometry(arity, height, threads int) (geometry, error) {
	if arity < 2 {
		return geometry{}, fmt.Errorf("%w: arity %d, must be >= 2", ErrArgument, arity)
	}
	if height < 0 {
		return geometry{}, fmt.Errorf("%w: height %d, must be >= 0", ErrArgument, height)
	}
	if threads < 1 {
		return geometry{}, fmt.Errorf("%w: threads %d, must be >= 1", ErrArgument, threads)
	}

	k := uint64(arity)
	span, ok := powInt(k, uint64(height)+1)
	if !ok {
		return geometry{}, fmt.Errorf("%w: arity %d height %d exceeds supported tree span", ErrArgument, arity, height)
	}

	g := geometry{
		arity:   k,
		nodes:   (span - 1) / (k - 1),
		leaves:  span / k, // K^H
		threads: threads,
	}
	g.threadsPerLeaf = (uint64(threads) + g.leaves - 1) / g.leaves
	if g.threadsPerLeaf == 0 {
		g.threadsPerLeaf = 1
	}
	return g, nil
}

// leafOf returns the node index where goroutine tid performs its Arrive
// and Depart operations.
//
// tid/threadsPerLeaf assigns identifiers to leaves in blocks; the mod
// keeps out-of-band identifiers inside the leaf range. Leaves occupy the
// last K^H slots of the level-order array, so the first leaf sits at
// nodes - leaves. With height 0 the root is the only leaf and the result
// is index 0.
func (g *geometry) leafOf(tid int) uint64 {
	return g.nodes - g.leaves + (uint64(tid)/g.threadsPerLeaf)%g.leaves
}

// parentOf returns the level-order parent index of node i, for i >= 1.
func (g *geometry) parentOf(i uint64) uint64 {
	return (i - 1) / g.arity
}

// nodeCount returns the number of nodes in a perfect K-ary tree of
// height h.
func nodeCount(k, h uint64) uint64 {
	span, _ := powInt(k, h+1)
	return (span - 1) / (k - 1)
}

// leafCount returns the number of leaves in a perfect K-ary tree of
// height h.
func leafCount(k, h uint64) uint64 {
	span, _ := powInt(k, h)
	return span
}

// powInt returns b^e and whether the result stays within maxTreeSpan.
// The bound is checked before each multiply so the product cannot wrap.
func powInt(b, e uint64) (uint64, bool) {
	result := uint64(1)
	for range e {
		if result > maxTreeSpan/b {
			return 0, false
		}
		result *= b
	}
	return result, true
}
