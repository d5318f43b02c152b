package neural

import "fmt"

// ComparisonResult is the verdict of comparing two neural types.
type ComparisonResult int

// Comparison verdicts. Only Same and Greater are accepted at a binding site.
const (
	// Same: axes and element type are identical.
	Same ComparisonResult = iota
	// Lesser: the candidate is a specialization of the expectation.
	Lesser
	// Greater: the candidate is a generalization compatible with the
	// narrower expectation.
	Greater
	// DimIncompatible: axis count or a fixed axis size differs.
	DimIncompatible
	// TransposeSame: same axis kinds in a different order.
	TransposeSame
	// Incompatible: axis kinds or element types do not match.
	Incompatible
)

// String returns a human-readable verdict name.
func (r ComparisonResult) String() string {
	switch r {
	case Same:
		return "same"
	case Lesser:
		return "lesser"
	case Greater:
		return "greater"
	case DimIncompatible:
		return "dim_incompatible"
	case TransposeSame:
		return "transpose_same"
	case Incompatible:
		return "incompatible"
	default:
		return "unknown"
	}
}

// Accepted reports whether the verdict is acceptable at a binding site.
func (r ComparisonResult) Accepted() bool {
	return r == Same || r == Greater
}

// NeuralType is the declared type of a module port: an ordered axis sequence
// plus a semantic element type. Immutable once created.
type NeuralType struct {
	axes    []Axis
	element *ElementType
}

// NewType creates a neural type. No axes means a scalar.
func NewType(element *ElementType, axes ...Axis) *NeuralType {
	cp := make([]Axis, len(axes))
	copy(cp, axes)
	return &NeuralType{axes: cp, element: element}
}

// Axes returns a copy of the ordered axis sequence.
func (t *NeuralType) Axes() []Axis {
	cp := make([]Axis, len(t.axes))
	copy(cp, t.axes)
	return cp
}

// Element returns the semantic element type.
func (t *NeuralType) Element() *ElementType { return t.element }

// Compare compares the expected type t against a candidate type.
//
// Axes are compared structurally first: a differing axis count or a fixed-size
// mismatch yields DimIncompatible, a reordering of the same kinds yields
// TransposeSame, and a kind or container mismatch yields Incompatible. With
// matching axes the element types decide: identical types yield Same, a
// candidate that generalizes the expectation yields Greater, a candidate that
// specializes it yields Lesser, and unrelated types yield Incompatible.
//
// A Void expectation accepts any candidate with matching axes.
func (t *NeuralType) Compare(other *NeuralType) ComparisonResult {
	if verdict := compareAxes(t.axes, other.axes); verdict != Same {
		return verdict
	}
	if t.element == Void {
		return Same
	}
	switch {
	case t.element == other.element:
		return Same
	case t.element.DerivesFrom(other.element):
		return Greater
	case other.element.DerivesFrom(t.element):
		return Lesser
	default:
		return Incompatible
	}
}

// String renders the type as e.g. "[B, T]<Logits>".
func (t *NeuralType) String() string {
	return fmt.Sprintf("%s<%s>", formatAxes(t.axes), t.element.Name())
}

func compareAxes(expected, got []Axis) ComparisonResult {
	if len(expected) != len(got) {
		return DimIncompatible
	}
	kindsMatch := true
	sizesMatch := true
	for i := range expected {
		e, g := expected[i], got[i]
		if e.IsList != g.IsList {
			return Incompatible
		}
		if e.Kind != g.Kind && e.Kind != AxisAny && g.Kind != AxisAny {
			kindsMatch = false
		}
		if e.Size != 0 && g.Size != 0 && e.Size != g.Size {
			sizesMatch = false
		}
	}
	if !kindsMatch {
		if kindsPermuted(expected, got) {
			return TransposeSame
		}
		return Incompatible
	}
	if !sizesMatch {
		return DimIncompatible
	}
	return Same
}

// kindsPermuted reports whether both sequences carry the same multiset of
// axis kinds.
func kindsPermuted(a, b []Axis) bool {
	counts := make(map[AxisKind]int, len(a))
	for _, ax := range a {
		counts[ax.Kind]++
	}
	for _, ax := range b {
		counts[ax.Kind]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
