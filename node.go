// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snzi

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// announceSpinBudget is the number of counter re-checks an arriving
// goroutine grants an in-flight announcement before announcing itself.
const announceSpinBudget = 16

// bareNode is a non-root tree node of the NoContention variant: a lazy
// propagation counter and the parent's level-order index. The counter
// gets its own cache line; the parent index is written once at
// construction and only read afterwards.
type bareNode struct {
	x      atomix.Uint64
	_      padShort
	parent uint64
	_      padShort
}

// announceNode is a non-root tree node of the contention-handling
// variants. announce is true while the subtree has declared presence to
// its parent and not yet retracted it; it collapses duplicate upward
// propagation during 0→1 transitions. Counter and announce bit live on
// separate cache lines.
type announceNode struct {
	x        atomix.Uint64
	_        padShort
	announce atomix.Bool
	_        padBool
	parent   uint64
	_        padShort
}

// bareTree is the shared tree state behind NoContention.
//
// nodes[0] is never used: the root is a distinct rootNode so its direct
// fast path and query stay off the node array, and leaving slot 0 empty
// keeps node indices equal to their level-order tree positions.
type bareTree struct {
	root  rootNode
	nodes []bareNode
	geom  geometry
}

func (t *bareTree) init(g geometry) {
	t.geom = g
	t.nodes = make([]bareNode, g.nodes)
	for i := uint64(1); i < g.nodes; i++ {
		t.nodes[i].parent = g.parentOf(i)
	}
}

// arriveAt runs the arrive protocol on node i.
//
// If the counter is observed at zero, presence is propagated to the
// parent before the local increment so a Query racing with this arrive
// already sees the subtree as nonzero. When the CAS then reveals that
// another goroutine raised the node first, the duplicate presence is
// handed back with a compensating parent depart; at most one announcement
// per subtree is held at the parent.
func (t *bareTree) arriveAt(i uint64) {
	n := &t.nodes[i]
	parentArrived := false
	oldx := n.x.LoadAcquire()

	sw := spin.Wait{}
	for {
		if oldx == 0 && !parentArrived {
			t.arriveParent(n.parent)
			parentArrived = true
		}
		if n.x.CompareAndSwapAcqRel(oldx, oldx+1) {
			break
		}
		sw.Once()
		oldx = n.x.LoadAcquire()
	}

	if parentArrived && oldx != 0 {
		t.departParent(n.parent)
	}
}

// departAt runs the depart protocol on node i: decrement, and on the
// 1→0 transition retract the subtree's presence from the parent.
func (t *bareTree) departAt(i uint64) {
	n := &t.nodes[i]

	sw := spin.Wait{}
	for {
		oldx := n.x.LoadAcquire()
		if n.x.CompareAndSwapAcqRel(oldx, oldx-1) {
			if oldx == 1 {
				t.departParent(n.parent)
			}
			return
		}
		sw.Once()
	}
}

func (t *bareTree) arriveParent(p uint64) {
	if p == 0 {
		t.root.arrive()
		return
	}
	t.arriveAt(p)
}

func (t *bareTree) departParent(p uint64) {
	if p == 0 {
		t.root.depart()
		return
	}
	t.departAt(p)
}

// announceTree is the shared tree state behind SemiContention and
// FullContention. Layout mirrors bareTree; see there for the nodes[0]
// convention.
type announceTree struct {
	root  rootNode
	nodes []announceNode
	geom  geometry
}

func (t *announceTree) init(g geometry) {
	t.geom = g
	t.nodes = make([]announceNode, g.nodes)
	for i := uint64(1); i < g.nodes; i++ {
		t.nodes[i].parent = g.parentOf(i)
	}
}

// arriveAt runs the announce-gated arrive protocol on node i.
//
// Like the bare protocol, but a goroutine that finds the announce bit set
// grants the in-flight propagation a bounded window to raise the counter:
// it re-checks X up to announceSpinBudget times under exponential backoff
// and skips its own propagation as soon as X turns nonzero. Only when the
// window expires with X still zero does it announce and propagate itself.
func (t *announceTree) arriveAt(i uint64) {
	n := &t.nodes[i]
	parentArrived := false
	oldx := n.x.LoadAcquire()

	sw := spin.Wait{}
	for {
		if oldx == 0 && !parentArrived {
			doArrive := true
			if n.announce.LoadAcquire() {
				var b Backoff
				for range announceSpinBudget {
					oldx = n.x.LoadAcquire()
					if oldx != 0 {
						doArrive = false
						break
					}
					b.Backoff()
				}
			}
			if doArrive {
				n.announce.StoreRelease(true)
				t.arriveParent(n.parent)
				parentArrived = true
			}
		}
		if n.x.CompareAndSwapAcqRel(oldx, oldx+1) {
			break
		}
		sw.Once()
		oldx = n.x.LoadAcquire()
	}

	if parentArrived && oldx != 0 {
		t.departParent(n.parent)
	}
}

// departAt runs the announce-clearing depart protocol on node i.
//
// The announce bit is reset before the decrement whenever the observed
// counter is 1, so the bit is already clear when the 1→0 transition
// becomes visible. Go's CompareAndSwap cannot fail spuriously; a retry
// means X really changed, and announce is written again only if the
// reloaded value is 1 once more.
func (t *announceTree) departAt(i uint64) {
	n := &t.nodes[i]

	sw := spin.Wait{}
	for {
		oldx := n.x.LoadAcquire()
		if oldx == 1 {
			n.announce.StoreRelease(false)
		}
		if n.x.CompareAndSwapAcqRel(oldx, oldx-1) {
			if oldx == 1 {
				t.departParent(n.parent)
			}
			return
		}
		sw.Once()
	}
}

func (t *announceTree) arriveParent(p uint64) {
	if p == 0 {
		t.root.arrive()
		return
	}
	t.arriveAt(p)
}

func (t *announceTree) departParent(p uint64) {
	if p == 0 {
		t.root.depart()
		return
	}
	t.departAt(p)
}
