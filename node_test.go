package borrowbag

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/mre/borrow-bag/nav"
)

func TestAppendCell(t *testing.T) {
	t.Parallel()

	var spine cell = empty{}
	var path nav.Path
	for i := uint8(1); i <= 3; i++ {
		spine, path = spine.appendCell(&node[uint8]{head: i, mark: &mark{pos: int(i) - 1}, tail: empty{}})
		qt.Assert(t, path, qt.Equals, nav.At(int(i)-1))
	}

	first := spine.(*node[uint8])
	second := first.tail.(*node[uint8])
	third := second.tail.(*node[uint8])
	qt.Assert(t, first.head, qt.Equals, uint8(1))
	qt.Assert(t, second.head, qt.Equals, uint8(2))
	qt.Assert(t, third.head, qt.Equals, uint8(3))
	qt.Assert(t, third.tail, qt.Equals, cell(empty{}))
}

func TestAppendCellCopiesSpine(t *testing.T) {
	t.Parallel()

	old, _ := empty{}.appendCell(&node[string]{head: "a", mark: &mark{}, tail: empty{}})
	grown, _ := old.appendCell(&node[int]{head: 1, mark: &mark{pos: 1}, tail: empty{}})

	qt.Assert(t, grown == old, qt.IsFalse)
	qt.Assert(t, old.next(), qt.Equals, cell(empty{}))
	qt.Assert(t, prefixedWith(grown, old, 1), qt.IsTrue)
	qt.Assert(t, prefixedWith(old, grown, 2), qt.IsFalse)
}

func TestLookupNode(t *testing.T) {
	t.Parallel()

	spine, _ := empty{}.appendCell(&node[string]{head: "a", mark: &mark{}, tail: empty{}})
	spine, _ = spine.appendCell(&node[int]{head: 7, mark: &mark{pos: 1}, tail: empty{}})

	n, err := lookupNode[int](spine, nav.PathOf[nav.Skip[nav.Take]](), 0)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, n.head, qt.Equals, 7)

	_, err = lookupNode[int](spine, nav.PathOf[nav.Take](), 0)
	qt.Assert(t, err, qt.ErrorIs, ErrShapeMismatch)

	_, err = lookupNode[int](spine, nav.At(2), 0)
	qt.Assert(t, err, qt.ErrorIs, ErrStaleBag)
}

func TestPrefixedWithKinds(t *testing.T) {
	t.Parallel()

	m := &mark{}
	a := (&node[string]{head: "a", mark: m}).withTail(empty{})
	b := (&node[int]{head: 1, mark: m}).withTail(empty{})

	// Same mark but a different element type is not a prefix.
	qt.Assert(t, prefixedWith(a, b, 1), qt.IsFalse)
	qt.Assert(t, prefixedWith(a, a, 1), qt.IsTrue)
	qt.Assert(t, prefixedWith(empty{}, empty{}, 0), qt.IsTrue)
	qt.Assert(t, func() { empty{}.withTail(a) }, qt.PanicMatches, "borrowbag: withTail on the empty cell")
}
