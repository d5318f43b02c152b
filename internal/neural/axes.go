package neural

import (
	"fmt"
	"strconv"
	"strings"
)

// AxisKind identifies the semantic role of a tensor axis.
type AxisKind int

// Supported axis kinds.
const (
	// AxisAny matches any axis kind during comparison.
	AxisAny AxisKind = iota
	// AxisBatch is the batch axis (usually the first one).
	AxisBatch
	// AxisTime is a sequence/time axis.
	AxisTime
	// AxisDimension is a generic feature dimension.
	AxisDimension
	// AxisChannel is a channel axis (e.g. spectrogram bands).
	AxisChannel
)

// String returns the single-letter tag conventionally used for the kind.
func (k AxisKind) String() string {
	switch k {
	case AxisAny:
		return "*"
	case AxisBatch:
		return "B"
	case AxisTime:
		return "T"
	case AxisDimension:
		return "D"
	case AxisChannel:
		return "C"
	default:
		return "?"
	}
}

// Axis describes one dimension of a neural type.
//
// A Size of 0 means the dimension is dynamic and matches any concrete size.
// IsList marks list-of-tensors container axes; a list axis never matches a
// plain tensor axis.
type Axis struct {
	Kind   AxisKind
	Size   int
	IsList bool
}

// String renders the axis as e.g. "B", "D:4" or "list(T)".
func (a Axis) String() string {
	s := a.Kind.String()
	if a.Size > 0 {
		s += ":" + strconv.Itoa(a.Size)
	}
	if a.IsList {
		s = "list(" + s + ")"
	}
	return s
}

// formatAxes renders an axis sequence as "[B, T, D]".
func formatAxes(axes []Axis) string {
	parts := make([]string, len(axes))
	for i, a := range axes {
		parts[i] = a.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
