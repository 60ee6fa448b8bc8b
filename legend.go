package clicker

import "fmt"

// DefaultInactiveAlpha is the opacity of legend entries for inactive classes.
const DefaultInactiveAlpha = 0.2

// legendSelector binds legend artifacts to classes and tracks the active
// class. The binding is built once at construction; the class set and the
// artifacts never change afterward.
type legendSelector[C comparable] struct {
	classes       []C
	active        C
	inactiveAlpha float64

	byArtifact map[Artifact]C
	artifacts  map[C][]Artifact // every artifact whose opacity follows the class
}

func newLegendSelector[C comparable](classes []C, active C, items []LegendItem, inactiveAlpha, pickDistance float64) *legendSelector[C] {
	ls := &legendSelector[C]{
		classes:       classes,
		active:        active,
		inactiveAlpha: inactiveAlpha,
		byArtifact:    make(map[Artifact]C),
		artifacts:     make(map[C][]Artifact, len(classes)),
	}
	// Hosts may return fewer items than classes; unmatched classes simply
	// have nothing to pick or highlight.
	for i, it := range items {
		if i >= len(classes) {
			break
		}
		c := classes[i]
		for _, a := range it.Pickable {
			a.SetPickRadius(pickDistance)
			ls.byArtifact[a] = c
		}
		ls.artifacts[c] = it.Artifacts()
	}
	return ls
}

// classFor resolves a picked artifact to its class. ok is false for artifacts
// that do not belong to this legend; callers ignore those.
func (ls *legendSelector[C]) classFor(a Artifact) (class C, ok bool) {
	if a == nil {
		return class, false
	}
	class, ok = ls.byArtifact[a]
	return class, ok
}

func (ls *legendSelector[C]) contains(class C) bool {
	for _, c := range ls.classes {
		if c == class {
			return true
		}
	}
	return false
}

func (ls *legendSelector[C]) setActive(class C) error {
	if !ls.contains(class) {
		return fmt.Errorf("%w: class %v is not in %v", ErrValidation, class, ls.classes)
	}
	ls.active = class
	return nil
}

func (ls *legendSelector[C]) activeClass() C {
	return ls.active
}

func (ls *legendSelector[C]) alphaFor(class C) float64 {
	if class == ls.active {
		return 1
	}
	return ls.inactiveAlpha
}

// highlight returns the opacity of every class's legend entry.
func (ls *legendSelector[C]) highlight() map[C]float64 {
	out := make(map[C]float64, len(ls.classes))
	for _, c := range ls.classes {
		out[c] = ls.alphaFor(c)
	}
	return out
}

// apply pushes the current highlight state onto the legend artifacts.
func (ls *legendSelector[C]) apply() {
	for _, c := range ls.classes {
		alpha := ls.alphaFor(c)
		for _, a := range ls.artifacts[c] {
			a.SetAlpha(alpha)
		}
	}
}
