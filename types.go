// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snzi

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// Indicator is the common surface of the NoContention and SemiContention
// variants.
//
// Arrive declares the presence of goroutine tid, Depart retracts it, and
// Query reports whether any presence is outstanding anywhere in the tree.
// FullContention is not an Indicator: its operations additionally take the
// per-goroutine *Status record.
//
// Example:
//
//	ind, err := snzi.Build(snzi.New(2, 1, 8))
//	if err != nil {
//	    return err
//	}
//	ind.Arrive(tid)
//	busy := ind.Query() // true
//	ind.Depart(tid)
type Indicator interface {
	// Arrive declares the presence of goroutine tid.
	// tid must be in [0, T) and owned by exactly one goroutine at a time.
	Arrive(tid int)

	// Depart retracts a presence previously declared by a completed
	// Arrive on the same tid. Unmatched departs are undefined behavior.
	Depart(tid int)

	// Query reports whether there is a surplus of Arrive operations.
	// Wait-free: a single atomic load of the root counter.
	Query() bool

	// Cap returns the number of nodes in the tree.
	Cap() int
}

// Status records one goroutine's contention history with the
// FullContention variant.
//
// The zero value is ready to use. Allocate one Status per goroutine and
// pass the same record to every Arrive and Depart that goroutine makes;
// a Status must never be shared between goroutines.
//
// A fresh Status routes operations through the direct root path. Once the
// owning goroutine observes enough CAS contention there, the record is
// promoted and all later operations walk the tree instead. Promotion never
// reverts.
type Status struct {
	treeArrive bool // route Arrive through the tree
	treeDepart bool // route Depart through the tree
	escalate   bool // set by a contended direct arrive, applied at the next direct depart
}

// UsingTree reports whether the owning goroutine has been promoted to the
// tree path.
func (s *Status) UsingTree() bool {
	return s.treeArrive && s.treeDepart
}

// CacheLineSize is the alignment and padding unit used to keep each hot
// atomic on its own cache line.
const CacheLineSize = 64

// boolSize is the in-memory size of an atomix.Bool.
const boolSize = int(unsafe.Sizeof(atomix.Bool{}))

// padShort is padding to fill a cache line after an 8-byte field.
type padShort [CacheLineSize - 8]byte

// padBool is padding to fill a cache line after an atomix.Bool.
type padBool [CacheLineSize - boolSize]byte
