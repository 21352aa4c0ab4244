// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snzi

// NoContention is the plain SNZI variant: lazy propagation with no
// contention damping. Cheapest per operation when transitions through
// zero are rare; under heavy 0↔1 traffic on one node, duplicate
// propagations and their compensating departs reach the parent more
// often than with the other variants.
type NoContention struct {
	tree bareTree
}

// NewNoContention creates a NoContention indicator shaped as a perfect
// arity-ary tree of the given height, used by up to threads goroutines
// with identifiers in [0, threads).
//
// arity must be >= 2, height >= 0, threads >= 1, and arity^(height+1)
// must not exceed 2^32. Violations return an error wrapping ErrArgument.
func NewNoContention(arity, height, threads int) (*NoContention, error) {
	g, err := newGeometry(arity, height, threads)
	if err != nil {
		return nil, err
	}
	s := &NoContention{}
	s.tree.init(g)
	return s, nil
}

// Arrive declares the presence of goroutine tid at its assigned leaf.
func (s *NoContention) Arrive(tid int) {
	leaf := s.tree.geom.leafOf(tid)
	if leaf == 0 {
		s.tree.root.arrive()
		return
	}
	s.tree.arriveAt(leaf)
}

// Depart retracts a presence previously declared by Arrive on the
// same tid.
func (s *NoContention) Depart(tid int) {
	leaf := s.tree.geom.leafOf(tid)
	if leaf == 0 {
		s.tree.root.depart()
		return
	}
	s.tree.departAt(leaf)
}

// Query reports whether there is a surplus of Arrive operations.
func (s *NoContention) Query() bool {
	return s.tree.root.query()
}

// Cap returns the number of nodes in the tree.
func (s *NoContention) Cap() int {
	return int(s.tree.geom.nodes)
}
