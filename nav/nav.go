// Package nav describes the position of an element inside a bag as a type.
//
// A navigator is a run of Skip markers terminated by exactly one Take:
//
//	nav.Take                     // the head
//	nav.Skip[nav.Take]           // the element after the head
//	nav.Skip[nav.Skip[nav.Take]] // and so on
//
// The markers carry no data. Navigator is sealed, so a navigator that does
// not end in Take cannot be written down.
package nav

// Navigator is satisfied by Take and by Skip of another Navigator.
type Navigator interface {
	skips() int
}

// Take marks the target element.
type Take struct{}

// Skip marks an element that is passed over; the target is somewhere in the
// tail, as described by N.
type Skip[N Navigator] struct{}

func (Take) skips() int { return 0 }

func (Skip[N]) skips() int {
	var next N
	return 1 + next.skips()
}

// Depth returns the number of Skip markers in N, which is the zero-based
// position of the element N points at.
func Depth[N Navigator]() int {
	var n N
	return n.skips()
}

// PathOf returns the runtime form of N.
func PathOf[N Navigator]() Path {
	return Path{skips: Depth[N]()}
}
