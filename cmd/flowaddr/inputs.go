package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"FLOWADDR/internal/addr"
	"FLOWADDR/internal/config"
	"FLOWADDR/internal/derive"
	"FLOWADDR/internal/hdpath"
	"FLOWADDR/internal/slot"
)

// displayInputs are the flags shared by show and preview.
type displayInputs struct {
	configPath  string
	path        string
	mnemonicEnv string
	pubkey      string
	slot        int
	expert      bool
	labelCap    int
	valueCap    int
	mode        string
}

func (in *displayInputs) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&in.configPath, "config", "", "device profile (YAML)")
	f.StringVar(&in.path, "path", hdpath.Default.String(), "derivation path to verify")
	f.StringVar(&in.mnemonicEnv, "mnemonic-env", "", "name of the environment variable holding the mnemonic")
	f.StringVar(&in.pubkey, "pubkey", "", "public key in hex, instead of deriving one")
	f.IntVar(&in.slot, "slot", 0, "device slot holding the account to verify")
	f.BoolVar(&in.expert, "expert", false, "expert mode: also show the derivation path")
	f.IntVar(&in.labelCap, "label-cap", 0, "label buffer size, NUL included (default from profile)")
	f.IntVar(&in.valueCap, "value-cap", 0, "value buffer size, NUL included (default from profile)")
	f.StringVar(&in.mode, "mode", "", "force the display mode: not-requested, empty-slot, path-mismatch or confirmed")
}

// screen is what the menu needs: the enumeration context and the buffer
// sizes of the emulated display.
type screen struct {
	ctx      addr.Context
	labelCap int
	valueCap int
}

// resolve runs the verification flow: load the profile, obtain the public
// key, resolve the slot state and build the display context.
func (in *displayInputs) resolve(cmd *cobra.Command, getenv func(string) string) (screen, error) {
	profile := config.Default()
	if in.configPath != "" {
		p, err := config.Load(in.configPath)
		if err != nil {
			return screen{}, err
		}
		profile = p
	}
	if cmd.Flags().Changed("expert") {
		profile.ExpertMode = in.expert
	}
	if in.labelCap != 0 {
		profile.LabelCap = in.labelCap
	}
	if in.valueCap != 0 {
		profile.ValueCap = in.valueCap
	}
	if err := profile.Validate(); err != nil {
		return screen{}, usageError{err}
	}

	path, err := hdpath.Parse(in.path)
	if err != nil {
		return screen{}, usagef("invalid --path %q: %v", in.path, err)
	}
	if in.slot < 0 || in.slot >= slot.Count {
		return screen{}, usagef("invalid --slot %d", in.slot)
	}
	var opts []slot.Option
	if in.mode != "" {
		mode, ok := addr.ParseMode(in.mode)
		if !ok {
			return screen{}, usagef("invalid --mode %q", in.mode)
		}
		opts = append(opts, slot.WithMode(mode))
	}
	pub, err := in.publicKey(path, getenv)
	if err != nil {
		return screen{}, err
	}
	st, err := profile.Store()
	if err != nil {
		return screen{}, err
	}
	c, err := slot.NewContext(st, in.slot, path, pub, profile.ExpertMode, opts...)
	if err != nil {
		return screen{}, err
	}
	return screen{ctx: c, labelCap: profile.LabelCap, valueCap: profile.ValueCap}, nil
}

func (in *displayInputs) publicKey(path hdpath.Path, getenv func(string) string) ([]byte, error) {
	switch {
	case in.pubkey != "" && in.mnemonicEnv != "":
		return nil, usagef("--pubkey and --mnemonic-env are mutually exclusive")
	case in.pubkey != "":
		pub, err := derive.ParsePublicKey(in.pubkey)
		if err != nil {
			return nil, usageError{err}
		}
		return pub, nil
	case in.mnemonicEnv != "":
		raw := getenv(in.mnemonicEnv)
		if raw == "" {
			return nil, usagef("mnemonic env is empty: %s", in.mnemonicEnv)
		}
		mnemonic, ok := derive.CanonicalizeMnemonic(raw)
		if !ok {
			return nil, derive.ErrInvalidMnemonic
		}
		pub, err := derive.DerivePublicKey(mnemonic, path)
		if err != nil {
			return nil, errors.Wrap(err, "derive public key")
		}
		return pub, nil
	default:
		return nil, usagef("one of --pubkey or --mnemonic-env is required")
	}
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) != 0 {
		return usagef("unexpected arguments: %v", args)
	}
	return nil
}

func targetName() string { return addr.Target }
