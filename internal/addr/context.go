package addr

import (
	"errors"
	"fmt"

	"FLOWADDR/internal/hdpath"
	"FLOWADDR/internal/keybuf"
)

var (
	// ErrNoData ends the device paging loop: the index or page is out of
	// range, or the display state cannot produce the requested item.
	ErrNoData = errors.New("no data")
	// ErrUnexpectedMode is reported by the address item when the display
	// mode has nothing to show there. It matches ErrNoData.
	ErrUnexpectedMode = fmt.Errorf("%w: unexpected display mode", ErrNoData)

	ErrNotRequested = errors.New("address display not requested")
	ErrNoPublicKey  = errors.New("key buffer holds no public key")
	ErrNoAddress    = errors.New("key buffer holds no address")
)

// Context is everything the enumerator reads. The verification flow builds
// one per display and must not change it while the menu is iterated.
type Context struct {
	Mode   Mode
	Expert bool
	Keys   keybuf.View
	Path   hdpath.Path
}

// Validate reports integration faults the enumerator would otherwise only
// surface as ErrNoData halfway through the menu.
func (c Context) Validate() error {
	switch c.Mode {
	case NotRequested:
		return ErrNotRequested
	case EmptySlot, PathMismatch, ConfirmedShown:
	default:
		return ErrUnexpectedMode
	}
	if c.Keys.PublicKeyText() == "" {
		return ErrNoPublicKey
	}
	if c.Mode == ConfirmedShown && c.Keys.AddressText() == "" {
		return ErrNoAddress
	}
	if c.Expert {
		if err := c.Path.Validate(); err != nil {
			return err
		}
	}
	return nil
}
