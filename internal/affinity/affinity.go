// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package affinity pins goroutines to CPUs for clean measurements.
//
// Benchmarks use it to keep each worker on one core so cache-residency
// effects of the tree shape are visible instead of being smeared by
// thread migration. Pinning is best-effort: on platforms without an
// affinity syscall only the goroutine↔thread lock is established.
package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and, where the
// platform allows it, binds that thread to CPU cpu modulo the machine's
// CPU count. Pair with Unpin.
func Pin(cpu int) {
	runtime.LockOSThread()
	setAffinity(cpu % runtime.NumCPU())
}

// Unpin releases the thread lock established by Pin. The thread's CPU
// mask is left as-is; the thread is returned to the runtime's pool.
func Unpin() {
	runtime.UnlockOSThread()
}
