// SPDX-License-Identifier: MIT
// Package: completion
//
// options.go: functional options for Complete.

package completion

// Option configures Complete via functional arguments.
type Option func(*Options)

// Options holds callbacks to observe a construction.
type Options struct {
	// OnSplice is called for every emitted off-diagonal entry, in emission order.
	OnSplice func(Splice)
}

// DefaultOptions returns Options with a no-op OnSplice hook.
func DefaultOptions() Options {
	return Options{
		OnSplice: func(Splice) {},
	}
}

// WithOnSplice registers a callback invoked for each emitted entry.
// A nil fn keeps the current hook.
func WithOnSplice(fn func(Splice)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSplice = fn
		}
	}
}
