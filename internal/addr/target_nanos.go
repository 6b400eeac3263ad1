//go:build !nanox

package addr

// Target names the display the binary is built for.
const Target = "nanos"

const (
	verifyExplorerText = " using any Flow  blockch. explorer."

	// DefaultLabelCap and DefaultValueCap are the output buffer sizes the
	// device UI hands to GetItem, NUL included.
	DefaultLabelCap = 64
	DefaultValueCap = 37
)
