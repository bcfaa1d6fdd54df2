package borrowbag

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/mre/borrow-bag/nav"
)

func TestBuilderBasic(t *testing.T) {
	t.Parallel()

	builder := Prototype{SizeHint: 4}.NewBuilder()
	hA := Put(builder, "hello")
	hB := Put(builder, 42)
	hC := Put(builder, true)
	qt.Assert(t, builder.Len(), qt.Equals, 3)

	bag := builder.Build()
	qt.Assert(t, bag.Len(), qt.Equals, 3)
	qt.Assert(t, *Borrow(bag, hA), qt.Equals, "hello")
	qt.Assert(t, *Borrow(bag, hB), qt.Equals, 42)
	qt.Assert(t, *Borrow(bag, hC), qt.Equals, true)
	qt.Assert(t, hC.path, qt.Equals, nav.At(2))
}

func TestBuilderMany(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(Prototype{})
	const number = 500
	handles := make([]Handle[string], 0, number)
	for i := 0; i < number; i++ {
		handles = append(handles, Put(builder, fmt.Sprintf("%03d", i)))
	}
	bag := builder.Build()

	qt.Assert(t, bag.Len(), qt.Equals, number)
	for i, h := range handles {
		qt.Assert(t, *Borrow(bag, h), qt.Equals, fmt.Sprintf("%03d", i))
	}
}

func TestBuilderRebuild(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(Prototype{SizeHint: -1})
	h1 := Put(builder, "x")
	bag1 := builder.Build()
	qt.Assert(t, bag1.Len(), qt.Equals, 1)

	// Building again after more puts extends the first bag.
	h2 := Put(builder, "y")
	bag2 := builder.Build()
	qt.Assert(t, bag1.Len(), qt.Equals, 1)
	qt.Assert(t, bag2.Len(), qt.Equals, 2)
	qt.Assert(t, bag2.Extends(bag1), qt.IsTrue)
	qt.Assert(t, *Borrow(bag2, h1), qt.Equals, "x")
	qt.Assert(t, *Borrow(bag2, h2), qt.Equals, "y")
	qt.Assert(t, Owns(bag1, h2), qt.IsFalse)

	// Adding to a built bag keeps the builder's handles working.
	bag3, h3 := Add(bag2, 3)
	qt.Assert(t, *Borrow(bag3, h1), qt.Equals, "x")
	qt.Assert(t, *Borrow(bag3, h3), qt.Equals, 3)
}

func TestBuilderReset(t *testing.T) {
	t.Parallel()

	builder := Prototype{}.NewBuilder()
	h := Put(builder, "foo")
	bag1 := builder.Build()

	// If we reset the builder, the bag should still be the same.
	builder.Reset()
	qt.Assert(t, builder.Len(), qt.Equals, 0)
	qt.Assert(t, bag1.Len(), qt.Equals, 1)
	qt.Assert(t, *Borrow(bag1, h), qt.Equals, "foo")

	// A builder that was reset starts a new lineage.
	h2 := Put(builder, "foo")
	bag2 := builder.Build()
	qt.Assert(t, Owns(bag2, h), qt.IsFalse)
	qt.Assert(t, Owns(bag1, h2), qt.IsFalse)
	qt.Assert(t, bag2.Extends(bag1), qt.IsFalse)
}

func TestBuilderStartWith(t *testing.T) {
	t.Parallel()

	bag, h1 := Add(New(), "bar1")
	bag, h2 := Add(bag, 2)

	builder := Prototype{}.NewBuilder()
	Put(builder, "discarded")
	builder.StartWith(bag)
	qt.Assert(t, builder.Len(), qt.Equals, 2)

	h3 := Put(builder, "bar3")
	next := builder.Build()

	qt.Check(t, next.Len(), qt.Equals, 3)
	qt.Check(t, next.Extends(bag), qt.IsTrue)
	qt.Assert(t, *Borrow(next, h1), qt.Equals, "bar1")
	qt.Assert(t, *Borrow(next, h2), qt.Equals, 2)
	qt.Assert(t, *Borrow(next, h3), qt.Equals, "bar3")

	// The original bag is untouched, and a sibling add is told apart.
	qt.Assert(t, bag.Len(), qt.Equals, 2)
	sibling, h4 := Add(bag, "bar4")
	qt.Assert(t, Owns(next, h4), qt.IsFalse)
	qt.Assert(t, Owns(sibling, h3), qt.IsFalse)
}

func TestBuilderStartWithZeroBag(t *testing.T) {
	t.Parallel()

	builder := Prototype{}.NewBuilder()
	builder.StartWith(Bag{})
	qt.Assert(t, builder.Len(), qt.Equals, 0)

	h := Put(builder, 1)
	bag := builder.Build()
	qt.Assert(t, *Borrow(bag, h), qt.Equals, 1)
}

func TestBuilderEmptyBuild(t *testing.T) {
	t.Parallel()

	bag := Prototype{}.NewBuilder().Build()
	qt.Assert(t, bag.Len(), qt.Equals, 0)

	bag, h := Add(bag, "first")
	qt.Assert(t, *Borrow(bag, h), qt.Equals, "first")
}
