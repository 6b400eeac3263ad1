// Package config loads the YAML device profile used by the address display.
package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"FLOWADDR/internal/addr"
	"FLOWADDR/internal/hdpath"
	"FLOWADDR/internal/slot"
)

var ErrInvalidProfile = errors.New("invalid device profile")

const (
	minLabelCap = 2
	// a value page must hold at least one rune of any width
	minValueCap = 5
)

// SlotConfig is one pre-populated device slot.
type SlotConfig struct {
	Index   int    `yaml:"index"`
	Account string `yaml:"account"`
	Path    string `yaml:"path"`
}

// Profile describes the emulated device.
type Profile struct {
	Target     string       `yaml:"target"`      // "nanos" or "nanox"
	LabelCap   int          `yaml:"label_cap"`   // label buffer size, NUL included
	ValueCap   int          `yaml:"value_cap"`   // value buffer size, NUL included
	ExpertMode bool         `yaml:"expert_mode"` // show the derivation path screen
	Slots      []SlotConfig `yaml:"slots,omitempty"`
}

// Default returns the profile of the build target with no slots in use.
func Default() Profile {
	return Profile{
		Target:   addr.Target,
		LabelCap: addr.DefaultLabelCap,
		ValueCap: addr.DefaultValueCap,
	}
}

// Load reads a YAML profile. Fields missing from the file keep their defaults.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "read profile %s", path)
	}
	p, err := Parse(data)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "profile %s", path)
	}
	return p, nil
}

// Parse decodes and validates a YAML profile.
func Parse(data []byte) (Profile, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("%w: decode: %w", ErrInvalidProfile, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	if p.Target != addr.Target {
		log.Warn().
			Str("profile_target", p.Target).
			Str("build_target", addr.Target).
			Msg("profile target differs from build target; explorer hint text follows the build")
	}
	return p, nil
}

// Validate checks buffer sizes, the target name and every slot entry.
func (p Profile) Validate() error {
	switch p.Target {
	case "nanos", "nanox":
	default:
		return errors.Wrapf(ErrInvalidProfile, "unknown target %q", p.Target)
	}
	if p.LabelCap < minLabelCap {
		return errors.Wrapf(ErrInvalidProfile, "label_cap %d below %d", p.LabelCap, minLabelCap)
	}
	if p.ValueCap < minValueCap {
		return errors.Wrapf(ErrInvalidProfile, "value_cap %d below %d", p.ValueCap, minValueCap)
	}
	seen := make(map[int]bool, len(p.Slots))
	for _, sc := range p.Slots {
		if seen[sc.Index] {
			return errors.Wrapf(ErrInvalidProfile, "slot %d listed twice", sc.Index)
		}
		seen[sc.Index] = true
		if _, err := sc.slot(); err != nil {
			return errors.Wrapf(ErrInvalidProfile, "slot %d: %v", sc.Index, err)
		}
	}
	return nil
}

// Store builds the in-memory slot store described by the profile.
func (p Profile) Store() (*slot.Store, error) {
	st := &slot.Store{}
	for _, sc := range p.Slots {
		s, err := sc.slot()
		if err != nil {
			return nil, errors.Wrapf(err, "slot %d", sc.Index)
		}
		if err := st.Set(sc.Index, s); err != nil {
			return nil, errors.Wrapf(err, "slot %d", sc.Index)
		}
	}
	return st, nil
}

func (sc SlotConfig) slot() (slot.Slot, error) {
	if sc.Index < 0 || sc.Index >= slot.Count {
		return slot.Slot{}, slot.ErrSlotIndex
	}
	account, err := slot.ParseAccount(sc.Account)
	if err != nil {
		return slot.Slot{}, err
	}
	path, err := hdpath.Parse(sc.Path)
	if err != nil {
		return slot.Slot{}, err
	}
	return slot.Slot{Account: account, Path: path}, nil
}
