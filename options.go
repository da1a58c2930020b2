// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package lophat

// Event is emitted through Options.Trace at phase boundaries of a
// decomposition. It carries no information that affects the computed
// diagram; Trace exists purely for caller-side observability, the way the
// teacher's commit.Logger lets a caller observe commits without the
// collection depending on any particular logging package.
type Event struct {
	Phase  string // e.g. "anti-transpose", "clearing", "sweep", "redo"
	Detail string
}

// Options configures a decomposition. The zero value is usable: NumThreads
// 0 means "use all available", MinChunkLen 0 is treated as 1, and Clearing
// and AntiTranspose are off. Decompose normalises it via withDefaults.
type Options struct {
	// MaintainV retains the V column alongside R for every slot. Required
	// for representatives; if representatives are requested without this
	// set, Decompose enables it silently rather than erroring.
	MaintainV bool

	// NumThreads selects the worker pool size. 0 means "use all available
	// CPUs" (GOMAXPROCS); 1 selects the sequential fast path described in
	// spec.md section 4.6, which elides CAS contention entirely.
	NumThreads int

	// ColumnHeight declares the row-space size H. 0 means "square": the
	// matrix has as many rows as columns.
	ColumnHeight uint32

	// MinChunkLen is the minimum work-stealing chunk size, in columns.
	// Values below 1 are treated as 1.
	MinChunkLen int

	// Clearing enables the clearing optimisation. Requires a square matrix.
	// The zero value is false (disabled); use DefaultOptions to start from
	// the recommended on-by-default configuration, since a plain bool has
	// no way to distinguish "unset" from "explicitly disabled".
	Clearing bool

	// AntiTranspose applies the anti-transpose preprocessing step. Requires
	// a square matrix. The zero value is false, for the same reason as
	// Clearing above.
	AntiTranspose bool

	// Representatives requests that the extractor attach representative
	// cycles/chains to the output diagram. Forces MaintainV.
	Representatives bool

	// Trace, if non-nil, receives Event values at phase boundaries. It is
	// never required for correctness and defaults to a no-op.
	Trace func(Event)
}

// DefaultOptions returns the recognised-field defaults from spec.md section 6:
// MaintainV=false, NumThreads=0, MinChunkLen=1, Clearing=true,
// AntiTranspose=true. Pass the result to Decompose directly, or start from
// it and override individual fields, to get the recommended preprocessing
// pipeline; an Options{} literal leaves Clearing and AntiTranspose off,
// since neither can distinguish "not set" from "set to false".
func DefaultOptions() Options {
	return Options{
		MinChunkLen:   1,
		Clearing:      true,
		AntiTranspose: true,
	}
}

// withDefaults fills in the fields that have a genuine "unset" sentinel
// distinct from their zero value (MinChunkLen: 0 means unset, since a real
// chunk length is always >= 1; Representatives forcing MaintainV). Clearing,
// AntiTranspose, NumThreads, ColumnHeight, and Trace are passed through
// unchanged, the way the teacher's NewCollection takes a caller-supplied
// Options literally rather than deep-merging it against a package default
// (collection.go) — callers who want the DefaultOptions preset ask for it
// explicitly rather than relying on zero-value Options to imply it.
func withDefaults(o Options) Options {
	out := o
	if out.MinChunkLen <= 0 {
		out.MinChunkLen = 1
	}

	// Requesting representatives without MaintainV silently enables it,
	// per spec.md section 7.
	if out.Representatives {
		out.MaintainV = true
	}
	return out
}

// trace emits an Event if a Trace hook was configured, and is a no-op
// otherwise; every call site treats it as free.
func (o Options) trace(phase, detail string) {
	if o.Trace != nil {
		o.Trace(Event{Phase: phase, Detail: detail})
	}
}

// validate checks the recognised Options combinations from spec.md section 7
// against the input shape (n columns, declared or implied height) and
// returns a *ConfigError describing the first violation found.
func validate(o Options, n int, square bool) error {
	if o.NumThreads < 0 {
		return configErrorf("num_threads must be >= 0, got %d", o.NumThreads)
	}
	if o.Clearing && !square {
		return configErrorf("clearing requires a square matrix (column_height must equal the column count)")
	}
	if o.AntiTranspose && !square {
		return configErrorf("anti_transpose requires a square matrix (column_height must equal the column count)")
	}
	return nil
}
