// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snzi_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/snzi"
)

// =============================================================================
// Single-Goroutine Behavior
// =============================================================================

// TestNoContentionSingleGoroutine checks the degenerate height-0 tree,
// where the assigned leaf is the root itself.
func TestNoContentionSingleGoroutine(t *testing.T) {
	s, err := snzi.NewNoContention(2, 0, 1)
	if err != nil {
		t.Fatalf("NewNoContention: %v", err)
	}
	if s.Cap() != 1 {
		t.Fatalf("Cap: got %d, want 1", s.Cap())
	}

	s.Arrive(0)
	if !s.Query() {
		t.Fatal("Query after arrive: got false, want true")
	}
	s.Depart(0)
	if s.Query() {
		t.Fatal("Query after depart: got true, want false")
	}
}

func TestSemiContentionSingleGoroutine(t *testing.T) {
	s, err := snzi.NewSemiContention(2, 0, 1)
	if err != nil {
		t.Fatalf("NewSemiContention: %v", err)
	}

	s.Arrive(0)
	if !s.Query() {
		t.Fatal("Query after arrive: got false, want true")
	}
	s.Depart(0)
	if s.Query() {
		t.Fatal("Query after depart: got true, want false")
	}
}

func TestFullContentionSingleGoroutine(t *testing.T) {
	s, err := snzi.NewFullContention(2, 0, 1)
	if err != nil {
		t.Fatalf("NewFullContention: %v", err)
	}

	var st snzi.Status
	s.Arrive(0, &st)
	if !s.Query() {
		t.Fatal("Query after arrive: got false, want true")
	}
	s.Depart(0, &st)
	if s.Query() {
		t.Fatal("Query after depart: got true, want false")
	}
	if st.UsingTree() {
		t.Fatal("UsingTree without contention: got true, want false")
	}
}

// TestFreshQuery verifies a freshly constructed tree reports no surplus.
func TestFreshQuery(t *testing.T) {
	nc, err := snzi.NewNoContention(2, 2, 8)
	if err != nil {
		t.Fatalf("NewNoContention: %v", err)
	}
	sc, err := snzi.NewSemiContention(2, 2, 8)
	if err != nil {
		t.Fatalf("NewSemiContention: %v", err)
	}
	fc, err := snzi.NewFullContention(2, 2, 8)
	if err != nil {
		t.Fatalf("NewFullContention: %v", err)
	}

	if nc.Query() || sc.Query() || fc.Query() {
		t.Fatal("Query on fresh tree: got true, want false")
	}
}

// TestRepeatedArrivals checks that k arrives on one tid keep the
// indicator raised until all k matched departs complete.
func TestRepeatedArrivals(t *testing.T) {
	s, err := snzi.NewSemiContention(2, 1, 4)
	if err != nil {
		t.Fatalf("NewSemiContention: %v", err)
	}

	const k = 5
	for range k {
		s.Arrive(2)
	}
	for i := range k {
		if !s.Query() {
			t.Fatalf("Query before depart %d: got false, want true", i)
		}
		s.Depart(2)
	}
	if s.Query() {
		t.Fatal("Query after all departs: got true, want false")
	}
}

// =============================================================================
// Constructor Validation
// =============================================================================

func TestConstructorValidation(t *testing.T) {
	cases := []struct {
		name                   string
		arity, height, threads int
	}{
		{"arity 1", 1, 2, 4},
		{"arity 0", 0, 2, 4},
		{"negative arity", -3, 2, 4},
		{"negative height", 2, -1, 4},
		{"zero threads", 2, 2, 0},
		{"oversized span", 2, 40, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := snzi.NewNoContention(tc.arity, tc.height, tc.threads); !snzi.IsArgument(err) {
				t.Fatalf("NewNoContention: got %v, want ErrArgument", err)
			}
			if _, err := snzi.NewSemiContention(tc.arity, tc.height, tc.threads); !snzi.IsArgument(err) {
				t.Fatalf("NewSemiContention: got %v, want ErrArgument", err)
			}
			if _, err := snzi.NewFullContention(tc.arity, tc.height, tc.threads); !snzi.IsArgument(err) {
				t.Fatalf("NewFullContention: got %v, want ErrArgument", err)
			}
			if _, err := snzi.Build(snzi.New(tc.arity, tc.height, tc.threads)); !snzi.IsArgument(err) {
				t.Fatalf("Build: got %v, want ErrArgument", err)
			}
		})
	}
}

func TestCap(t *testing.T) {
	s, err := snzi.NewSemiContention(3, 2, 9)
	if err != nil {
		t.Fatalf("NewSemiContention: %v", err)
	}
	if s.Cap() != 13 {
		t.Fatalf("Cap: got %d, want 13", s.Cap())
	}
}

// =============================================================================
// Multi-Goroutine Scenarios
// =============================================================================

// TestAllGoroutinesArrive has every goroutine declare presence, verifies
// an observer sees the surplus, then retracts everything.
func TestAllGoroutinesArrive(t *testing.T) {
	const threads = 4
	s, err := snzi.NewSemiContention(2, 1, threads)
	if err != nil {
		t.Fatalf("NewSemiContention: %v", err)
	}

	var wg sync.WaitGroup
	for tid := range threads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Arrive(tid)
		}()
	}
	wg.Wait()

	if !s.Query() {
		t.Fatal("Query with all arrived: got false, want true")
	}

	for tid := range threads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Depart(tid)
		}()
	}
	wg.Wait()

	if s.Query() {
		t.Fatal("Query with all departed: got true, want false")
	}
}

// TestNetSurplus runs unbalanced well-formed histories: goroutine 0
// leaves three presences outstanding while goroutine 1 fully retracts
// its own.
func TestNetSurplus(t *testing.T) {
	s, err := snzi.NewNoContention(2, 1, 2)
	if err != nil {
		t.Fatalf("NewNoContention: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.Arrive(0)
		s.Arrive(0)
		s.Arrive(0)
	}()
	go func() {
		defer wg.Done()
		s.Arrive(1)
		s.Arrive(1)
		s.Depart(1)
		s.Depart(1)
	}()
	wg.Wait()

	if !s.Query() {
		t.Fatal("Query with net surplus 3: got false, want true")
	}

	s.Depart(0)
	s.Depart(0)
	s.Depart(0)
	if s.Query() {
		t.Fatal("Query with net surplus 0: got true, want false")
	}
}

// =============================================================================
// Builder
// =============================================================================

func TestBuildDefault(t *testing.T) {
	ind, err := snzi.Build(snzi.New(2, 1, 4))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := ind.(*snzi.SemiContention); !ok {
		t.Fatalf("Build default: got %T, want *snzi.SemiContention", ind)
	}
}

func TestBuildNoContention(t *testing.T) {
	ind, err := snzi.Build(snzi.New(2, 1, 4).NoContention())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := ind.(*snzi.NoContention); !ok {
		t.Fatalf("Build with NoContention: got %T, want *snzi.NoContention", ind)
	}
}

func TestBuildFull(t *testing.T) {
	fc, err := snzi.BuildFull(snzi.New(2, 1, 4))
	if err != nil {
		t.Fatalf("BuildFull: %v", err)
	}

	var st snzi.Status
	fc.Arrive(0, &st)
	if !fc.Query() {
		t.Fatal("Query after arrive: got false, want true")
	}
	fc.Depart(0, &st)
	if fc.Query() {
		t.Fatal("Query after depart: got true, want false")
	}
}

func TestBuildPanicsOnFullHint(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Build with FullContention hint: expected panic")
		}
	}()
	_, _ = snzi.Build(snzi.New(2, 1, 4).FullContention())
}

func TestBuildFullPanicsOnNoContentionHint(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("BuildFull with NoContention hint: expected panic")
		}
	}()
	_, _ = snzi.BuildFull(snzi.New(2, 1, 4).NoContention())
}
