package neural

// ElementType is a semantic tag describing what a tensor's elements mean.
//
// Element types form a single-inheritance hierarchy. A port declared with a
// given element type accepts tensors of the same type (Same) or of an
// ancestor type (Greater); see NeuralType.Compare.
type ElementType struct {
	name   string
	parent *ElementType
}

// NewElementType creates a new element type derived from parent.
// A nil parent creates a hierarchy root.
func NewElementType(name string, parent *ElementType) *ElementType {
	return &ElementType{name: name, parent: parent}
}

// Name returns the element type's name.
func (e *ElementType) Name() string { return e.name }

// Parent returns the element type this one derives from, or nil for roots.
func (e *ElementType) Parent() *ElementType { return e.parent }

// DerivesFrom reports whether e is other or a descendant of other.
func (e *ElementType) DerivesFrom(other *ElementType) bool {
	for t := e; t != nil; t = t.parent {
		if t == other {
			return true
		}
	}
	return false
}

func (e *ElementType) String() string { return e.name }

// The built-in element hierarchy. Void is special: a port declared Void
// accepts any element type.
var (
	// Void accepts everything.
	Void = NewElementType("Void", nil)
	// Element is the root of the concrete hierarchy.
	Element = NewElementType("Element", nil)
	// Channel marks per-channel continuous values.
	Channel = NewElementType("Channel", Element)
	// Spectrogram marks time-frequency representations.
	Spectrogram = NewElementType("Spectrogram", Channel)
	// MelSpectrogram marks mel-scaled spectrograms.
	MelSpectrogram = NewElementType("MelSpectrogram", Spectrogram)
	// Logits marks unnormalized classifier outputs.
	Logits = NewElementType("Logits", Channel)
	// Regression marks continuous regression values.
	Regression = NewElementType("Regression", Channel)
	// Labels marks categorical targets.
	Labels = NewElementType("Labels", Element)
	// TokenIndex marks vocabulary token identifiers.
	TokenIndex = NewElementType("TokenIndex", Labels)
	// Loss marks scalar loss values.
	Loss = NewElementType("Loss", Element)
)
