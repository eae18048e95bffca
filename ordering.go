package atomicbits

import "strings"

// Ordering is the memory ordering requested for a bit operation.
//
// The levels mirror the vocabulary of the platform memory model. Go's
// sync/atomic operations are sequentially consistent, which satisfies every
// level, so the ordering never adds a fence or lock of its own. Callers that
// need ordering across different words choose the level accordingly.
type Ordering uint8

const (
	// Relaxed guarantees atomicity only.
	Relaxed Ordering = iota
	// Acquire orders later accesses after the operation.
	Acquire
	// Release orders earlier accesses before the operation.
	Release
	// AcqRel combines Acquire and Release.
	AcqRel
	// SeqCst is AcqRel plus a single total order over all SeqCst operations.
	SeqCst
)

// String returns the string representation of an Ordering.
func (o Ordering) String() string {
	switch o {
	case Relaxed:
		return "relaxed"
	case Acquire:
		return "acquire"
	case Release:
		return "release"
	case AcqRel:
		return "acqrel"
	case SeqCst:
		return "seqcst"
	default:
		return "unknown"
	}
}

// ParseOrdering parses a string into an Ordering value.
func ParseOrdering(s string) (Ordering, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relaxed":
		return Relaxed, true
	case "acquire":
		return Acquire, true
	case "release":
		return Release, true
	case "acqrel", "acq_rel", "acquire-release":
		return AcqRel, true
	case "seqcst", "seq_cst", "sequentially-consistent":
		return SeqCst, true
	default:
		return Relaxed, false
	}
}
