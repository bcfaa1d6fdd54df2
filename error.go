package borrowbag

import (
	"errors"
)

// Borrow panics with an error wrapping one of these when a handle is used
// against a bag it does not belong to. Such a call is a programming error:
// a handle is only good for the bag returned together with it and for bags
// derived from that one by further adds.
var (
	// ErrZeroHandle is reported for a Handle that was never minted by Add or
	// Put.
	ErrZeroHandle = errors.New("zero handle")

	// ErrForeignHandle is reported when the handle was minted for a bag of a
	// different lineage, i.e. one that started from another New call.
	ErrForeignHandle = errors.New("handle belongs to another bag")

	// ErrStaleBag is reported when the bag is older than the handle: it was
	// frozen before the handle's value was added.
	ErrStaleBag = errors.New("bag predates handle")

	// ErrForkedHandle is reported when the bag and the handle share an
	// ancestor, but the handle's value was added on a sibling branch.
	ErrForkedHandle = errors.New("handle belongs to a forked bag")

	// ErrShapeMismatch is reported when the element at the handle's position
	// does not have the handle's type.
	ErrShapeMismatch = errors.New("element type does not match handle")
)
