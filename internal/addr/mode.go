package addr

import "strings"

// Mode records why, and whether, an address is being shown. The flow
// controller picks it once per verification flow, before enumeration.
type Mode uint8

const (
	// NotRequested means the address does not need to be shown.
	NotRequested Mode = iota
	// EmptySlot means no address is stored on the device for this context.
	EmptySlot
	// PathMismatch means an address for a different path is stored.
	PathMismatch
	// ConfirmedShown means the stored address matches the requested path.
	ConfirmedShown
)

var modeNames = [...]string{
	NotRequested:   "not-requested",
	EmptySlot:      "empty-slot",
	PathMismatch:   "path-mismatch",
	ConfirmedShown: "confirmed",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return Mode(i), true
		}
	}
	return 0, false
}
