package tensor

// Backend identifies the execution target a kernel is compiled for.
type Backend int

// Supported execution backends. BackendUndefined is the zero value and
// never keys a stored kernel.
const (
	BackendUndefined Backend = iota
	CPU
	GPU
	XPU
	NPU
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendUndefined:
		return "Undefined"
	case CPU:
		return "CPU"
	case GPU:
		return "GPU"
	case XPU:
		return "XPU"
	case NPU:
		return "NPU"
	default:
		return "unknown"
	}
}
