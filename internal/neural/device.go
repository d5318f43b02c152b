package neural

// Device identifies the compute device modules are placed on.
// Construction-time bookkeeping is device-agnostic; the device is carried on
// the application state for execution engines to consult.
type Device int

// Supported devices.
const (
	CPU Device = iota
	GPU
)

// String returns the device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "cpu"
	case GPU:
		return "gpu"
	default:
		return "unknown"
	}
}
