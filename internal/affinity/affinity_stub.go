// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package affinity

// setAffinity is a no-op where sched_setaffinity(2) is unavailable.
func setAffinity(cpu int) {}
