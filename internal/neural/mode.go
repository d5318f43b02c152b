package neural

import "fmt"

// OperationMode constrains what a graph may be nested into.
type OperationMode int

// Operation modes. ModeBoth is the default.
const (
	ModeBoth OperationMode = iota
	ModeTraining
	ModeInference
)

// String returns the mode's canonical name.
func (m OperationMode) String() string {
	switch m {
	case ModeBoth:
		return "both"
	case ModeTraining:
		return "training"
	case ModeInference:
		return "inference"
	default:
		return "unknown"
	}
}

// ParseMode parses a canonical mode name.
func ParseMode(s string) (OperationMode, error) {
	switch s {
	case "both":
		return ModeBoth, nil
	case "training":
		return ModeTraining, nil
	case "inference":
		return ModeInference, nil
	default:
		return ModeBoth, fmt.Errorf("unknown operation mode %q", s)
	}
}
