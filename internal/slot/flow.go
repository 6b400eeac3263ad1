package slot

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"FLOWADDR/internal/addr"
	"FLOWADDR/internal/hdpath"
	"FLOWADDR/internal/keybuf"
)

// ResolveMode compares the slot at index with the requested path and
// decides what the address screen shows. The returned address text is
// only set for addr.ConfirmedShown.
func ResolveMode(st *Store, index int, requested hdpath.Path) (addr.Mode, string, error) {
	s, err := st.Get(index)
	if err != nil {
		return addr.NotRequested, "", err
	}
	switch {
	case s.IsEmpty():
		return addr.EmptySlot, "", nil
	case s.Path != requested:
		return addr.PathMismatch, "", nil
	default:
		return addr.ConfirmedShown, s.AccountHex(), nil
	}
}

// Option adjusts how NewContext builds the display context.
type Option func(*flowOptions)

type flowOptions struct {
	mode   addr.Mode
	forced bool
}

// WithMode replaces the mode the slot state would select. A forced
// addr.ConfirmedShown shows the slot's account even when its path differs.
func WithMode(m addr.Mode) Option {
	return func(o *flowOptions) {
		o.mode, o.forced = m, true
	}
}

// NewContext runs the verification flow up to the point the menu starts:
// it resolves the display mode from the slot, lays out the key buffer and
// returns a validated enumeration context.
func NewContext(st *Store, index int, requested hdpath.Path, pub []byte, expert bool, opts ...Option) (addr.Context, error) {
	var o flowOptions
	for _, opt := range opts {
		opt(&o)
	}
	mode, address, err := ResolveMode(st, index, requested)
	if err != nil {
		return addr.Context{}, errors.Wrapf(err, "resolve slot %d", index)
	}
	if o.forced {
		log.Debug().Stringer("resolved", mode).Stringer("forced", o.mode).Msg("display mode overridden")
		mode, address = o.mode, ""
		if s, _ := st.Get(index); mode == addr.ConfirmedShown && !s.IsEmpty() {
			address = s.AccountHex()
		}
	}
	keys, err := keybuf.Build(pub, address)
	if err != nil {
		return addr.Context{}, errors.Wrap(err, "build key buffer")
	}
	c := addr.Context{Mode: mode, Expert: expert, Keys: keys, Path: requested}
	if err := c.Validate(); err != nil {
		return addr.Context{}, errors.Wrap(err, "display context")
	}
	log.Debug().
		Int("slot", index).
		Stringer("mode", mode).
		Str("path", requested.String()).
		Bool("expert", expert).
		Msg("address display context ready")
	return c, nil
}
