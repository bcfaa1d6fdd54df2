// Package typed is a fixed-size counterpart of borrowbag whose handles are
// checked entirely by the compiler.
//
// A BagN's element types are part of its type, and a Handle names both the
// value's type and its position as a nav.Navigator. Borrowing with a handle
// of the wrong type or for the wrong position does not compile:
//
//	bag := typed.New()
//	bag1, s := typed.AddTo0(bag, "hello") // Handle[string, nav.Take]
//	bag2, n := typed.AddTo1(bag1, 42)     // Handle[int, nav.Skip[nav.Take]]
//
//	bag2.Borrow0(s) // *string
//	bag2.Borrow1(n) // *int
//	bag2.Borrow0(n) // compile error
//
// Since positions never move, a handle for position i fits BorrowI of every
// larger bag built from the one it came from. The check is by shape only:
// a handle also fits another bag with the same element types at the same
// positions. Bags are provided up to Bag8; use borrowbag for more.
package typed

//go:generate go run gen.go

import (
	"github.com/mre/borrow-bag/nav"
)

// Handle has no size and cannot be compared. Its type parameters carry
// everything the compiler needs to resolve the value it was returned for.
type Handle[T any, N nav.Navigator] struct {
	_ [0]func()
}

// node and end spell out the bag's spine as a nested type, head first.
type node[H, T any] struct {
	head H
	tail T
}

type end struct{}

func cons[H, T any](head H, tail T) node[H, T] {
	return node[H, T]{head: head, tail: tail}
}

// New returns an empty bag.
func New() Bag0 {
	return Bag0{}
}
