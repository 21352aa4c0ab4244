// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snzi

// Options configures indicator creation and variant selection.
type Options struct {
	// Contention hints (determine the variant)
	noContention   bool
	fullContention bool

	// Tree shape
	arity   int
	height  int
	threads int
}

// Builder creates indicators with fluent configuration.
//
// The builder selects the variant from contention hints; without hints it
// builds SemiContention, the balanced default.
//
// Example:
//
//	ind, err := snzi.Build(snzi.New(2, 2, 16))                // SemiContention
//	ind, err := snzi.Build(snzi.New(2, 2, 16).NoContention()) // NoContention
//	fc, err := snzi.BuildFull(snzi.New(2, 2, 16))             // FullContention
type Builder struct {
	opts Options
}

// New creates an indicator builder for a perfect arity-ary tree of the
// given height used by up to threads goroutines. Shape validation happens
// at Build time.
func New(arity, height, threads int) *Builder {
	return &Builder{opts: Options{arity: arity, height: height, threads: threads}}
}

// NoContention declares that callers expect little contention, selecting
// the variant without announce bits.
func (b *Builder) NoContention() *Builder {
	b.opts.noContention = true
	return b
}

// FullContention declares that callers want direct-path escalation.
// Use BuildFull to build: the full variant's operations take a *Status
// and do not satisfy Indicator.
func (b *Builder) FullContention() *Builder {
	b.opts.fullContention = true
	return b
}

// Build creates the configured Indicator.
//
// Variant selection:
//
//	NoContention() hint → NoContention
//	no hint            → SemiContention
//
// Panics if FullContention() was requested: that variant's operations
// need a *Status and are built with BuildFull.
func Build(b *Builder) (Indicator, error) {
	if b.opts.fullContention {
		panic("snzi: Build cannot produce the full-contention variant; use BuildFull")
	}
	if b.opts.noContention {
		return NewNoContention(b.opts.arity, b.opts.height, b.opts.threads)
	}
	return NewSemiContention(b.opts.arity, b.opts.height, b.opts.threads)
}

// BuildFull creates a FullContention indicator with compile-time type
// safety. Panics if the builder carries the NoContention hint.
func BuildFull(b *Builder) (*FullContention, error) {
	if b.opts.noContention {
		panic("snzi: BuildFull conflicts with the NoContention hint")
	}
	return NewFullContention(b.opts.arity, b.opts.height, b.opts.threads)
}
