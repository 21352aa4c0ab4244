// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snzi

// StampedCounter packs a 32-bit stamp and a 32-bit counter into one
// 64-bit value, so the pair fits a single word and a single atomic slot:
//
//	<------------- 64 bits ------------->
//	|     stamp      |     counter      |
//	<--- 32 bits ---> <--- 32 bits ---->
//
// Arithmetic on either half wraps at 32 bits and never carries into the
// other half. A StampedCounter has value semantics and is not itself
// thread-safe; store it behind an atomic when sharing.
type StampedCounter uint64

const (
	stampShift  = 32
	counterMask = 1<<32 - 1
)

// MakeStampedCounter packs stamp and counter into a StampedCounter.
func MakeStampedCounter(stamp, counter uint32) StampedCounter {
	return StampedCounter(uint64(stamp)<<stampShift | uint64(counter))
}

// Stamp returns the stamp half.
func (sc StampedCounter) Stamp() uint32 {
	return uint32(sc >> stampShift)
}

// Counter returns the counter half.
func (sc StampedCounter) Counter() uint32 {
	return uint32(sc & counterMask)
}

// WithStamp returns sc with the stamp half replaced.
func (sc StampedCounter) WithStamp(stamp uint32) StampedCounter {
	return MakeStampedCounter(stamp, sc.Counter())
}

// WithCounter returns sc with the counter half replaced.
func (sc StampedCounter) WithCounter(counter uint32) StampedCounter {
	return MakeStampedCounter(sc.Stamp(), counter)
}

// AddStamp returns sc with delta added to the stamp half.
func (sc StampedCounter) AddStamp(delta uint32) StampedCounter {
	return sc.WithStamp(sc.Stamp() + delta)
}

// SubStamp returns sc with delta subtracted from the stamp half.
func (sc StampedCounter) SubStamp(delta uint32) StampedCounter {
	return sc.WithStamp(sc.Stamp() - delta)
}

// AddCounter returns sc with delta added to the counter half.
func (sc StampedCounter) AddCounter(delta uint32) StampedCounter {
	return sc.WithCounter(sc.Counter() + delta)
}

// SubCounter returns sc with delta subtracted from the counter half.
func (sc StampedCounter) SubCounter(delta uint32) StampedCounter {
	return sc.WithCounter(sc.Counter() - delta)
}
