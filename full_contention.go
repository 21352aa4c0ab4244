// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snzi

// FullContention is the escalating SNZI variant. Goroutines start on a
// direct CAS path at the root, which behaves like a centralized counter
// and is the fastest structure while contention is low. They are promoted
// one-way onto the announce-gated tree once their direct arrives start
// failing CAS repeatedly.
//
// Every operation takes the calling goroutine's private Status record;
// see Status for the ownership rules.
type FullContention struct {
	tree announceTree
}

// NewFullContention creates a FullContention indicator shaped as a
// perfect arity-ary tree of the given height, used by up to threads
// goroutines with identifiers in [0, threads).
//
// Parameter restrictions are those of NewNoContention.
func NewFullContention(arity, height, threads int) (*FullContention, error) {
	g, err := newGeometry(arity, height, threads)
	if err != nil {
		return nil, err
	}
	s := &FullContention{}
	s.tree.init(g)
	return s, nil
}

// Arrive declares the presence of goroutine tid. A goroutine not yet
// promoted goes through the direct root path; contention observed there
// marks st for promotion.
func (s *FullContention) Arrive(tid int, st *Status) {
	if !st.treeArrive {
		s.tree.root.arriveDirectly(st)
		return
	}

	leaf := s.tree.geom.leafOf(tid)
	if leaf == 0 {
		s.tree.root.arrive()
		return
	}
	s.tree.arriveAt(leaf)
}

// Depart retracts a presence previously declared by Arrive on the same
// tid with the same st. A pending promotion takes effect here, after the
// direct-path pair completes.
func (s *FullContention) Depart(tid int, st *Status) {
	if !st.treeDepart {
		s.tree.root.departDirectly(st)
		return
	}

	leaf := s.tree.geom.leafOf(tid)
	if leaf == 0 {
		s.tree.root.depart()
		return
	}
	s.tree.departAt(leaf)
}

// Query reports whether there is a surplus of Arrive operations.
func (s *FullContention) Query() bool {
	return s.tree.root.query()
}

// Cap returns the number of nodes in the tree.
func (s *FullContention) Cap() int {
	return int(s.tree.geom.nodes)
}
