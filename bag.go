// Package borrowbag is an append-only bag holding values of any number of
// different types. Adding a value returns a typed Handle, which is later
// used to borrow the value back:
//
//	bag := borrowbag.New()
//	bag, greeting := borrowbag.Add(bag, "hello")
//	bag, answer := borrowbag.Add(bag, 42)
//
//	s := borrowbag.Borrow(bag, greeting) // *string
//	n := borrowbag.Borrow(bag, answer)   // *int
//
// A Bag is immutable. Add leaves its input alone and returns a longer bag;
// the old one keeps working for the handles it already had, but callers
// should carry on with the new one. Positions never move, so every handle
// stays valid for every bag derived from the one it was minted for.
//
// The element type is enforced by the compiler. Whether a handle belongs to
// a bag is enforced at run time, and a mismatch panics. The typed
// sub-package trades the arbitrary length of this bag for fully static
// checks.
package borrowbag

import (
	"fmt"
)

// Bag is the container. The zero Bag is empty and ready to use.
type Bag struct {
	root    cell
	n       int
	lineage *lineage
}

// New returns an empty bag.
func New() Bag {
	return Bag{root: empty{}, lineage: newLineage()}
}

func (b Bag) spine() cell {
	if b.root == nil {
		return empty{}
	}
	return b.root
}

// Len returns the number of values in the bag.
func (b Bag) Len() int { return b.n }

func (b Bag) String() string {
	return fmt.Sprintf("borrowbag.Bag{lineage=%s len=%d}", b.lineage, b.n)
}

// Add returns a bag holding everything in b followed by v, and a handle to
// v. Add costs time proportional to b.Len(); use a Builder to add many
// values at once.
func Add[T any](b Bag, v T) (Bag, Handle[T]) {
	if b.lineage == nil {
		b = New()
	}
	m := &mark{lineage: b.lineage, pos: b.n}
	root, path := b.spine().appendCell(&node[T]{head: v, mark: m, tail: empty{}})
	if path.Skips() != m.pos {
		panic(fmt.Sprintf("borrowbag: value landed at %s, want position %d", path, m.pos))
	}
	return Bag{root: root, n: b.n + 1, lineage: b.lineage}, Handle[T]{path: path, mark: m}
}

// Borrow returns a pointer to the value h was minted for. The pointer
// aliases the stored value and must not be written through.
//
// Borrow panics if h does not belong to b; the panic value is an error
// wrapping ErrZeroHandle, ErrForeignHandle, ErrStaleBag or ErrForkedHandle.
func Borrow[T any](b Bag, h Handle[T]) *T {
	n, err := resolve(b, h)
	if err != nil {
		panic(fmt.Errorf("borrowbag: borrow %s from %s: %w", h, b, err))
	}
	return &n.head
}

// Owns reports whether h belongs to b, i.e. whether Borrow(b, h) succeeds.
func Owns[T any](b Bag, h Handle[T]) bool {
	_, err := resolve(b, h)
	return err == nil
}

func resolve[T any](b Bag, h Handle[T]) (*node[T], error) {
	switch {
	case h.mark == nil:
		return nil, ErrZeroHandle
	case h.mark.lineage != b.lineage:
		return nil, fmt.Errorf("%w: minted for lineage %s", ErrForeignHandle, h.mark.lineage)
	case h.path.Skips() >= b.n:
		return nil, fmt.Errorf("%w: handle is for position %d", ErrStaleBag, h.path.Skips())
	}
	n, err := lookupNode[T](b.spine(), h.path, 0)
	if err != nil {
		return nil, err
	}
	if n.mark != h.mark {
		return nil, fmt.Errorf("%w: position %d", ErrForkedHandle, h.path.Skips())
	}
	return n, nil
}

// Extends reports whether b was derived from prev by zero or more adds, in
// which case every handle valid for prev is valid for b. The zero Bag is
// extended by every bag.
func (b Bag) Extends(prev Bag) bool {
	if prev.lineage == nil {
		return true
	}
	if prev.lineage != b.lineage || prev.n > b.n {
		return false
	}
	return prefixedWith(b.spine(), prev.spine(), prev.n)
}
