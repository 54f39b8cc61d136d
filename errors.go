package genarena

import "errors"

var (
	// ErrNotFound reports that a handle does not denote a live value, either because
	// its slot was reused or because the index was never allocated.
	ErrNotFound = errors.New("genarena: handle not found")
	// ErrCapacityExceeded indicates the arena cannot address any more slots.
	ErrCapacityExceeded = errors.New("genarena: slot capacity exceeded")
	// ErrInvariantViolated is returned by CheckInvariants when internal bookkeeping is corrupt.
	ErrInvariantViolated = errors.New("genarena: invariant violated")

	errStale      = errors.New("stale generation")
	errOutOfRange = errors.New("index out of range")
	errVacant     = errors.New("slot vacant")
)
