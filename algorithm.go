package quiverbloom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tphakala/go-quiverbloom/internal/formula"
)

// Algorithm selects one of the eight coordinate formulas.
// Valid values are 1 through AlgorithmCount(); 0 is reserved.
type Algorithm int

const (
	// AlgorithmWisp is a drifting column of strands with a slow vertical pulse.
	AlgorithmWisp Algorithm = iota + 1

	// AlgorithmLotus is a layered bloom driven by an arctangent petal term.
	AlgorithmLotus

	// AlgorithmSpiral is a rotating ring; its phase runs four times faster.
	AlgorithmSpiral

	// AlgorithmFlame is a flickering column with a reciprocal flare term.
	AlgorithmFlame

	// AlgorithmOrbit is a polar swirl; its phase runs sixteen times faster.
	AlgorithmOrbit

	// AlgorithmShell is a spiral shell built from tangent ribs, also at
	// sixteen times speed.
	AlgorithmShell

	// AlgorithmCreature is a breathing grid creature.
	AlgorithmCreature

	// AlgorithmMedusa is a jellyfish-like variant of AlgorithmCreature.
	AlgorithmMedusa
)

var algorithmNames = [numAlgorithms + 1]string{
	AlgorithmWisp:     "wisp",
	AlgorithmLotus:    "lotus",
	AlgorithmSpiral:   "spiral",
	AlgorithmFlame:    "flame",
	AlgorithmOrbit:    "orbit",
	AlgorithmShell:    "shell",
	AlgorithmCreature: "creature",
	AlgorithmMedusa:   "medusa",
}

// Common errors returned by the convenience API and hosts.
var (
	// ErrUnknownAlgorithm indicates an id or name outside the catalog.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrInvalidConfig indicates invalid frame or sequence parameters.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Canvas describes the drawing surface an algorithm is authored for and the
// number of points it is meant to be drawn with. It is a sizing hint only.
type Canvas struct {
	Width  int
	Height int
	Points int
}

// Algorithms returns every algorithm in id order.
func Algorithms() []Algorithm {
	all := make([]Algorithm, numAlgorithms)
	for i := range all {
		all[i] = Algorithm(i + 1)
	}
	return all
}

// AlgorithmCount returns the number of algorithms. Ids run from 1 to
// AlgorithmCount() inclusive.
func AlgorithmCount() int {
	return numAlgorithms
}

// CanvasWidth returns the canvas width for a.
func CanvasWidth(a Algorithm) int {
	return a.Canvas().Width
}

// CanvasHeight returns the canvas height for a.
func CanvasHeight(a Algorithm) int {
	return a.Canvas().Height
}

// RecommendedPointCount returns the number of points a is meant to be drawn
// with. Buffers of any size are accepted by GenerateFrame.
func RecommendedPointCount(a Algorithm) int {
	return a.Canvas().Points
}

// Canvas returns the catalog entry for a. Ids outside the catalog get the
// standard entry; callers should not rely on that.
func (a Algorithm) Canvas() Canvas {
	c := Canvas{
		Width:  defaultCanvasSize,
		Height: defaultCanvasSize,
		Points: pointsStandard,
	}

	switch a {
	case AlgorithmShell:
		c.Points = pointsDense
	case AlgorithmCreature, AlgorithmMedusa:
		c.Points = pointsDensest
	}

	return c
}

// Valid reports whether a names one of the catalog's formulas.
func (a Algorithm) Valid() bool {
	return a >= 1 && a <= numAlgorithms
}

// String returns the variant name, or "Algorithm(n)" for invalid ids.
func (a Algorithm) String() string {
	if !a.Valid() {
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
	return algorithmNames[a]
}

// TimeScale returns the factor applied to t before the phase wraps: 1 for
// most variants, 4 for AlgorithmSpiral, 16 for AlgorithmOrbit and
// AlgorithmShell. It returns 0 for invalid ids.
func (a Algorithm) TimeScale() float64 {
	f, ok := formula.Lookup(int(a))
	if !ok {
		return 0
	}
	return f.TimeScale
}

// Period returns the smallest t shift that reproduces a frame. The scaled
// variants wrap t·s modulo s, so they repeat after 1 like the others; any
// multiple of the period, TimeScale() included, also reproduces the frame.
func (a Algorithm) Period() float64 {
	return loopPeriod
}

// ParseAlgorithm resolves a numeric id ("3") or a variant name ("spiral",
// case-insensitive).
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.TrimSpace(s)

	if id, err := strconv.Atoi(s); err == nil {
		a := Algorithm(id)
		if !a.Valid() {
			return 0, fmt.Errorf("%w: %d (valid ids are 1-%d)", ErrUnknownAlgorithm, id, numAlgorithms)
		}
		return a, nil
	}

	for _, a := range Algorithms() {
		if strings.EqualFold(s, algorithmNames[a]) {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MustAlgorithm converts a raw id into an Algorithm and panics when the id is
// outside the catalog. It is meant for boundary code where a bad id is a
// programming error on the caller's side.
func MustAlgorithm(id int) Algorithm {
	a := Algorithm(id)
	if !a.Valid() {
		panic(fmt.Errorf("quiverbloom: %w: %d", ErrUnknownAlgorithm, id))
	}
	return a
}
