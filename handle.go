package borrowbag

import (
	"fmt"

	"github.com/mre/borrow-bag/nav"
)

// Handle is returned by Add and Put and used to borrow the value back.
//
// The type parameter is checked by the compiler: Borrow with a Handle[T]
// yields a *T and nothing else. The position, and the bag the handle belongs
// to, are checked when borrowing. Handles are opaque and cannot be compared;
// there is no way to make a usable one other than adding a value.
type Handle[T any] struct {
	_    [0]func()
	path nav.Path
	mark *mark
}

func (h Handle[T]) String() string {
	if h.mark == nil {
		return "borrowbag.Handle{zero}"
	}
	return fmt.Sprintf("borrowbag.Handle{%s}", h.path)
}
