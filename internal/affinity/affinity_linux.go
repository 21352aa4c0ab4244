// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package affinity

import (
	"syscall"
	"unsafe"
)

// setAffinity binds the current thread to the given CPU via
// sched_setaffinity(2). CPUs beyond the first 64 fold back into the
// single-word mask; good enough for benchmark pinning.
func setAffinity(cpu int) {
	if cpu < 0 {
		return
	}
	mask := [1]uintptr{1 << (uint(cpu) % 64)}
	_, _, _ = syscall.RawSyscall(
		syscall.SYS_SCHED_SETAFFINITY,
		0, // current thread
		uintptr(unsafe.Sizeof(mask[0])),
		uintptr(unsafe.Pointer(&mask)),
	)
}
