// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snzi

import (
	"runtime"

	"code.hybscloud.com/snzi/internal/pause"
)

// backoffCeiling is the largest pause-loop length the backoff executes
// before switching to cooperative yields.
const backoffCeiling = 1 << 16

// Backoff implements bounded exponential spinning for retry loops.
//
// Each call to Backoff busies the CPU with spin-wait hints, doubling the
// hint count from 1 per call; once the count would exceed the ceiling the
// call yields the goroutine to the scheduler instead. Reset restores the
// initial delay after a successful attempt.
//
// The zero value is ready to use. A Backoff is not safe for concurrent
// use; keep one per goroutine or per retry loop.
//
// Example:
//
//	var b snzi.Backoff
//	for !tryAcquire() {
//	    b.Backoff()
//	}
//	b.Reset()
type Backoff struct {
	tries uint32
}

// Backoff waits for one escalation step: a pause-hint loop of the current
// length, or a scheduler yield once the ceiling is passed.
func (b *Backoff) Backoff() {
	if b.tries == 0 {
		b.tries = 1
	}
	if b.tries > backoffCeiling {
		runtime.Gosched()
		return
	}
	for range b.tries {
		pause.Pause()
	}
	b.tries <<= 1
}

// Reset restores the delay to the initial value.
func (b *Backoff) Reset() {
	b.tries = 1
}
