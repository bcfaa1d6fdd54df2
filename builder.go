package borrowbag

import (
	"github.com/mre/borrow-bag/nav"
)

// Prototype configures a Builder.
type Prototype struct {
	// SizeHint is the number of values the builder expects to hold.
	SizeHint int
}

func (p Prototype) NewBuilder() *Builder {
	return NewBuilder(p)
}

// Builder accumulates values in amortized constant time per value and
// produces a Bag with Build. Handles returned by Put are valid for the
// built bag and for any bag derived from it.
//
// A Builder is not safe for concurrent use. The bags it builds are.
type Builder struct {
	// cells hold the values in order. Their tails are ignored; Build
	// links copies of them.
	cells   []cell
	lineage *lineage
}

func NewBuilder(proto Prototype) *Builder {
	// Set the defaults.
	if proto.SizeHint < 0 {
		proto.SizeHint = 0
	}
	return &Builder{cells: make([]cell, 0, proto.SizeHint)}
}

// StartWith discards the builder's contents and continues from b. Handles
// for b stay valid for what the builder builds next.
func (b *Builder) StartWith(bag Bag) {
	b.Reset()
	b.lineage = bag.lineage
	for c := bag.spine(); c.next() != nil; c = c.next() {
		b.cells = append(b.cells, c)
	}
}

// Put appends v and returns its handle.
func Put[T any](b *Builder, v T) Handle[T] {
	if b.lineage == nil {
		b.lineage = newLineage()
	}
	m := &mark{lineage: b.lineage, pos: len(b.cells)}
	b.cells = append(b.cells, &node[T]{head: v, mark: m})
	return Handle[T]{path: nav.At(m.pos), mark: m}
}

// Len returns the number of values put so far.
func (b *Builder) Len() int { return len(b.cells) }

// Build returns a bag holding every value put so far. The builder can keep
// going afterwards; later builds extend earlier ones.
func (b *Builder) Build() Bag {
	if b.lineage == nil {
		b.lineage = newLineage()
	}
	var root cell = empty{}
	for i := len(b.cells) - 1; i >= 0; i-- {
		root = b.cells[i].withTail(root)
	}
	return Bag{root: root, n: len(b.cells), lineage: b.lineage}
}

// Reset empties the builder. Bags built earlier are not affected.
func (b *Builder) Reset() {
	clear(b.cells)
	b.cells = b.cells[:0]
	b.lineage = nil
}
