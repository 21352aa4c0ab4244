// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snzi

import "errors"

// ErrArgument indicates an invalid tree shape parameter.
//
// Constructors return an error wrapping ErrArgument when the arity is
// below 2, the height is negative, the goroutine count is below 1, or the
// requested shape exceeds the supported size bound (K^(H+1) must not
// exceed 2^32).
//
// This is the only error surface of the package: Arrive, Depart and Query
// cannot fail.
var ErrArgument = errors.New("snzi: invalid argument")

// IsArgument reports whether err is a constructor argument error.
// Supports wrapped errors via errors.Is.
func IsArgument(err error) bool {
	return errors.Is(err, ErrArgument)
}
