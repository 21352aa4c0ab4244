// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snzi

// SemiContention is the announce-gated SNZI variant. Each non-root node
// carries an announce bit that collapses duplicate upward propagation
// while many goroutines cross the same node's zero boundary at once.
// This is the balanced default.
type SemiContention struct {
	tree announceTree
}

// NewSemiContention creates a SemiContention indicator shaped as a
// perfect arity-ary tree of the given height, used by up to threads
// goroutines with identifiers in [0, threads).
//
// Parameter restrictions are those of NewNoContention.
func NewSemiContention(arity, height, threads int) (*SemiContention, error) {
	g, err := newGeometry(arity, height, threads)
	if err != nil {
		return nil, err
	}
	s := &SemiContention{}
	s.tree.init(g)
	return s, nil
}

// Arrive declares the presence of goroutine tid at its assigned leaf.
func (s *SemiContention) Arrive(tid int) {
	leaf := s.tree.geom.leafOf(tid)
	if leaf == 0 {
		s.tree.root.arrive()
		return
	}
	s.tree.arriveAt(leaf)
}

// Depart retracts a presence previously declared by Arrive on the
// same tid.
func (s *SemiContention) Depart(tid int) {
	leaf := s.tree.geom.leafOf(tid)
	if leaf == 0 {
		s.tree.root.depart()
		return
	}
	s.tree.departAt(leaf)
}

// Query reports whether there is a surplus of Arrive operations.
func (s *SemiContention) Query() bool {
	return s.tree.root.query()
}

// Cap returns the number of nodes in the tree.
func (s *SemiContention) Cap() int {
	return int(s.tree.geom.nodes)
}
