package tensor

// Layout describes how a tensor's elements are arranged in memory.
type Layout int

// Supported memory layouts. AnyLayout is a registration-time wildcard
// that resolves to DefaultLayout; stored kernels always carry a
// concrete layout.
const (
	LayoutUndefined Layout = iota
	NCHW
	NHWC
	AnyLayout
)

// DefaultLayout is the concrete layout AnyLayout resolves to.
const DefaultLayout = NCHW

// String returns a human-readable name for the layout.
func (l Layout) String() string {
	switch l {
	case LayoutUndefined:
		return "Undefined"
	case NCHW:
		return "NCHW"
	case NHWC:
		return "NHWC"
	case AnyLayout:
		return "Any"
	default:
		return "unknown"
	}
}
