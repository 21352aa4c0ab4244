// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package snzi provides Scalable NonZero Indicator implementations.
//
// A SNZI object answers one question, "is there currently a surplus of
// Arrive operations over Depart operations?", without funnelling every
// goroutine through a single hot counter. The structure was introduced by
// Ellen, Lev, Luchangco and Moir, "SNZI: Scalable NonZero Indicators"
// (PODC 2007).
//
// The package offers three variants that differ only in how they mitigate
// contention:
//
//   - NoContention:   plain lazy-propagation tree
//   - SemiContention: announce bits damp duplicate upward propagation
//   - FullContention: per-goroutine escalation from a direct root fast
//     path onto the tree once CAS contention is observed
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	s, err := snzi.NewSemiContention(2, 2, 16) // arity, height, goroutines
//	if err != nil {
//	    // bad shape parameters
//	}
//
//	// goroutine tid declares presence, later retracts it
//	s.Arrive(tid)
//	defer s.Depart(tid)
//
//	// any goroutine, any time
//	if s.Query() {
//	    // at least one presence is outstanding
//	}
//
// Builder API selects a variant from hints:
//
//	ind, err := snzi.Build(snzi.New(2, 2, 16))                // → SemiContention
//	ind, err := snzi.Build(snzi.New(2, 2, 16).NoContention()) // → NoContention
//	fc, err := snzi.BuildFull(snzi.New(2, 2, 16))             // → FullContention
//
// # Tree Shape
//
// A SNZI object is a perfect K-ary tree of height H stored level-order in
// one array; index 0 is the root. Goroutines run Arrive and Depart at an
// assigned leaf, nonzero transitions propagate toward the root, and Query
// is always served by a single atomic load of the root counter.
//
// Goroutines with identifiers 0..T-1 are mapped onto leaves in blocks, so
// neighbouring identifiers share a leaf:
//
//	leaf 0: tids 0, 1
//	leaf 1: tids 2, 3
//	leaf 2: tids 4, 5
//	leaf 3: tids 6, 7
//
// It is generally beneficial to have more than one goroutine per leaf;
// a leaf with a single user pushes every transition to its parent and
// recreates the contention the tree is meant to spread. Choose H so the
// leaf count K^H stays below T.
//
// # Identifier Contract
//
// tid must be in [0, T). One goroutine per tid at a time, and a Depart must
// be paired with an earlier completed Arrive on the same tid
// (well-formedness). The structure does not detect violations; misuse is
// undefined behavior.
//
// # The Full Variant
//
// FullContention takes a per-goroutine Status record on each operation:
//
//	var st snzi.Status // zero value ready, one per goroutine, never shared
//	fc.Arrive(tid, &st)
//	fc.Depart(tid, &st)
//
// Goroutines start on a direct CAS path at the root. A goroutine whose
// direct arrive suffers repeated CAS failures is promoted to the tree path
// for all later operations. Promotion is one-way: a goroutine that once
// contended is assumed to keep contending.
//
// # Memory Ordering
//
// All counters and announce bits are [code.hybscloud.com/atomix] values
// with acquire-release discipline. Every Query-visible transition reaches
// the root through a read-modify-write with release semantics, so a Query
// observes any Arrive whose root propagation completed before it. The root
// counter is linearizable; Query is a single wait-free load.
//
// Arrive and Depart never block on the OS. They may spin on CAS retries
// in the tree (paced by [code.hybscloud.com/spin]) and, in the contention
// variants, wait out an announce window with bounded exponential backoff.
// The FullContention direct root path retries its CAS under [Backoff],
// which yields to the scheduler once its pause loops pass the ceiling.
//
// # False Sharing
//
// Each node counter and each announce bit is padded out to its own cache
// line (64 bytes). The node array never shares a counter line between
// nodes.
//
// # Race Detection
//
// The protocols share nothing through non-atomic memory, so the race
// detector is safe to use. Stress tests consult [RaceEnabled] to shrink
// iteration counts under the detector's slowdown, and the escalation test
// is skipped because the detector's serialization starves the CAS
// contention it waits for.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering and [code.hybscloud.com/spin] for CPU pause
// pacing in retry loops. Tests additionally use [code.hybscloud.com/iox]
// for adaptive polling backoff.
package snzi
