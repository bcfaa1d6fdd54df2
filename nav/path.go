package nav

import (
	"fmt"
	"strings"
)

// Step is one directive of a Path.
type Step uint8

const (
	StepSkip Step = iota
	StepTake
)

func (s Step) String() string {
	switch s {
	case StepSkip:
		return "Skip"
	case StepTake:
		return "Take"
	default:
		return fmt.Sprintf("Step(%d)", uint8(s))
	}
}

// Path is the runtime form of a Navigator: Skips() Skip steps followed by a
// single Take. The zero Path is a lone Take.
type Path struct {
	skips int
}

// At returns the path for position k.
func At(k int) Path {
	if k < 0 {
		panic(fmt.Sprintf("nav: negative position %d", k))
	}
	return Path{skips: k}
}

// Skips returns the number of Skip steps, i.e. the target's position.
func (p Path) Skips() int { return p.skips }

// Len returns the number of steps including the final Take.
func (p Path) Len() int { return p.skips + 1 }

// Step returns the i-th directive.
func (p Path) Step(i int) Step {
	switch {
	case i < 0 || i > p.skips:
		panic(fmt.Sprintf("nav: step %d out of range for path of length %d", i, p.Len()))
	case i == p.skips:
		return StepTake
	default:
		return StepSkip
	}
}

// Rest drops the first step. It panics on a lone Take, which has no rest.
func (p Path) Rest() Path {
	if p.skips == 0 {
		panic("nav: Rest of a terminal Take")
	}
	return Path{skips: p.skips - 1}
}

// Prepend returns the path with one more Skip in front.
func (p Path) Prepend() Path {
	return Path{skips: p.skips + 1}
}

func (p Path) String() string {
	var sb strings.Builder
	for i := 0; i < p.skips; i++ {
		sb.WriteString("Skip/")
	}
	sb.WriteString("Take")
	return sb.String()
}
