// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snzi

import "code.hybscloud.com/atomix"

// escalationThreshold is the number of CAS failures within a single
// direct arrive after which the owning goroutine is promoted to the
// tree path.
const escalationThreshold = 5

// negOne is the two's-complement increment that decrements an unsigned
// atomic counter.
const negOne = ^uint64(0)

// rootNode is the distinguished top node of the tree. Its counter is the
// sole source of truth for Query. Padded so neighbouring tree state never
// shares its cache line.
type rootNode struct {
	x atomix.Uint64
	_ padShort
}

// arrive registers one presence at the root.
func (r *rootNode) arrive() {
	r.x.AddAcqRel(1)
}

// depart retracts one presence from the root.
func (r *rootNode) depart() {
	r.x.AddAcqRel(negOne)
}

// query reports whether the root counter is nonzero.
func (r *rootNode) query() bool {
	return r.x.LoadAcquire() != 0
}

// arriveDirectly is the FullContention fast path: CAS the counter upward
// with exponential backoff, counting failures. A goroutine that fails the
// CAS escalationThreshold times in one call has its status marked for
// promotion to the tree path.
func (r *rootNode) arriveDirectly(st *Status) {
	oldx := r.x.LoadAcquire()

	var b Backoff
	failures := 0
	for !r.x.CompareAndSwapAcqRel(oldx, oldx+1) {
		failures++
		b.Backoff()
		oldx = r.x.LoadAcquire()
	}

	if failures >= escalationThreshold {
		// the next pair of operations switches to the snzi tree
		st.escalate = true
	}
}

// departDirectly retracts a presence taken through the direct path and
// applies a pending promotion. The promotion lands here, not in
// arriveDirectly, so an arrive/depart pair never splits across the two
// routing modes.
func (r *rootNode) departDirectly(st *Status) {
	r.depart()

	if st.escalate {
		st.treeArrive = true
		st.treeDepart = true
	}
}
