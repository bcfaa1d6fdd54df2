package borrowbag

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mre/borrow-bag/nav"
)

// lineage is shared by every bag derived from one New call (or one Builder).
type lineage struct {
	id uuid.UUID
}

func newLineage() *lineage {
	return &lineage{id: uuid.New()}
}

func (l *lineage) String() string {
	if l == nil {
		return "none"
	}
	return l.id.String()[:8]
}

// mark identifies a single append. Two nodes carry the same mark only if one
// bag is derived from the other, so a handle's mark tells a sibling branch
// apart from the branch that minted it.
type mark struct {
	lineage *lineage
	pos     int
}

// cell is one link of the spine: either empty, or a node holding a head
// value and the rest of the spine.
type cell interface {
	// next returns the tail, or nil for empty.
	next() cell
	stamp() *mark

	// appendCell returns a copy of the spine with last in place of the
	// terminating empty cell, plus the path from the receiver to last.
	appendCell(last cell) (cell, nav.Path)

	// withTail returns a copy of the receiver pointing at tail.
	withTail(tail cell) cell

	// sameKind reports whether other holds the same element type.
	sameKind(other cell) bool
}

type empty struct{}

func (empty) next() cell   { return nil }
func (empty) stamp() *mark { return nil }

func (empty) appendCell(last cell) (cell, nav.Path) {
	return last, nav.At(0)
}

func (empty) withTail(cell) cell {
	panic("borrowbag: withTail on the empty cell")
}

func (empty) sameKind(other cell) bool {
	_, ok := other.(empty)
	return ok
}

type node[H any] struct {
	head H
	mark *mark
	tail cell
}

func (n *node[H]) next() cell   { return n.tail }
func (n *node[H]) stamp() *mark { return n.mark }

func (n *node[H]) appendCell(last cell) (cell, nav.Path) {
	// Everything before the end is copied as is; only the tail grows.
	tail, path := n.tail.appendCell(last)
	return &node[H]{head: n.head, mark: n.mark, tail: tail}, path.Prepend()
}

func (n *node[H]) withTail(tail cell) cell {
	return &node[H]{head: n.head, mark: n.mark, tail: tail}
}

func (n *node[H]) sameKind(other cell) bool {
	_, ok := other.(*node[H])
	return ok
}

// lookupNode follows p from c and returns the node it ends on.
func lookupNode[T any](c cell, p nav.Path, depth int) (*node[T], error) {
	if _, ok := c.(empty); ok || c == nil {
		return nil, fmt.Errorf("%w: spine ends at position %d", ErrStaleBag, depth)
	}
	switch step := p.Step(0); step {
	case nav.StepTake:
		n, ok := c.(*node[T])
		if !ok {
			return nil, fmt.Errorf("%w: position %d", ErrShapeMismatch, depth)
		}
		return n, nil
	case nav.StepSkip:
		return lookupNode[T](c.next(), p.Rest(), depth+1)
	default:
		panic(fmt.Sprintf("unexpected navigator step: %v", step))
	}
}

// prefixedWith reports whether the first n cells of c are the cells of prev:
// same marks, same element types, same order.
func prefixedWith(c, prev cell, n int) bool {
	for i := 0; i < n; i++ {
		if c == nil || prev == nil {
			return false
		}
		if c.stamp() != prev.stamp() || !c.sameKind(prev) {
			return false
		}
		c, prev = c.next(), prev.next()
	}
	return true
}
