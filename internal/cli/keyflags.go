package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/enigma/internal/config"
	"github.com/roach88/enigma/internal/keylist"
	"github.com/roach88/enigma/internal/keysheet"
)

// KeyFlags holds the machine setting flags shared by encipher and validate.
// Flags override the environment; --keys takes the whole setting from a
// key list instead.
type KeyFlags struct {
	RotorOrder     string
	RingSettings   string
	RotorPositions string
	PlugboardPairs string
	Keys           string
	Day            int
}

func (k *KeyFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&k.RotorOrder, "rotor-order", "", "rotors left to right, e.g. I,II,III (default from "+config.EnvRotorOrder+")")
	f.StringVar(&k.RingSettings, "ring-settings", "", "ring settings 01-26, e.g. 01,01,01 (default from "+config.EnvRingSettings+")")
	f.StringVarP(&k.RotorPositions, "rotor-positions", "g", "", "starting window, e.g. EAB (default from "+config.EnvRotorPositions+")")
	f.StringVar(&k.PlugboardPairs, "plugboard-pairs", "", "plugboard cables, e.g. AZ,BY,CX (default from "+config.EnvPlugboardPairs+")")
	f.StringVar(&k.Keys, "keys", "", "key list file (.yaml, .yml or .cue)")
	f.IntVar(&k.Day, "day", 0, "day of month to take from --keys")
}

// raw merges the configured defaults with any flags the user set. An
// explicitly empty --plugboard-pairs clears a configured default.
func (k *KeyFlags) raw(cmd *cobra.Command, cfg *config.Config) keysheet.Raw {
	raw := cfg.Key
	f := cmd.Flags()
	if f.Changed("rotor-order") {
		raw.RotorOrder = k.RotorOrder
	}
	if f.Changed("ring-settings") {
		raw.RingSettings = k.RingSettings
	}
	if f.Changed("rotor-positions") {
		raw.RotorPositions = k.RotorPositions
	}
	if f.Changed("plugboard-pairs") {
		raw.PlugboardPairs = k.PlugboardPairs
	}
	return raw
}

// fromKeyList reports whether the setting comes from a key list file.
func (k *KeyFlags) fromKeyList() bool {
	return k.Keys != ""
}

// loadKeyList loads --keys after checking the flag combination.
func (k *KeyFlags) loadKeyList(cmd *cobra.Command) (*keylist.List, error) {
	for _, name := range []string{"rotor-order", "ring-settings", "rotor-positions", "plugboard-pairs"} {
		if cmd.Flags().Changed(name) {
			return nil, fmt.Errorf("--%s cannot be combined with --keys", name)
		}
	}
	return keylist.Load(k.Keys)
}

// resolve returns the validated key sheet the command should use. Field
// errors come back as *keysheet.ValidationError; everything else is a
// problem with the command line or the key list file.
func (k *KeyFlags) resolve(cmd *cobra.Command, cfg *config.Config) (*keysheet.KeySheet, error) {
	if !k.fromKeyList() {
		return keysheet.Parse(k.raw(cmd, cfg))
	}

	if !cmd.Flags().Changed("day") {
		return nil, errors.New("--day is required with --keys")
	}
	list, err := k.loadKeyList(cmd)
	if err != nil {
		return nil, err
	}
	return list.Sheet(k.Day)
}

// keyError turns a resolve error into formatted output and an exit error.
func keyError(formatter *OutputFormatter, err error) error {
	var ve *keysheet.ValidationError
	if errors.As(err, &ve) {
		_ = formatter.Error(ve.Code(), ve.Kind.String()+": "+ve.Message, map[string]string{"field": ve.Field(), "value": ve.Value})
		return WrapExitError(ExitFailure, "invalid key sheet", err)
	}
	_ = formatter.Error(ErrCodeKeyList, err.Error(), nil)
	return WrapExitError(ExitCommandError, "cannot resolve key sheet", err)
}
