// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pause provides the architectural spin-wait hint used by
// backoff loops.
//
// One call emits one hint instruction: PAUSE on amd64, YIELD on arm64.
// The hint tells the core the caller is in a spin loop, which reduces
// power draw and frees pipeline resources for a sibling hyperthread. On
// architectures without a dedicated hint the call is a no-op; caller
// correctness never depends on the hint's duration.
package pause
