package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/enigma/internal/keysheet"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Key KeyFlags
}

// FieldError is one failing key sheet field in validate output.
type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid       bool         `json:"valid"`
	Fingerprint string       `json:"fingerprint,omitempty"`
	Days        []int        `json:"days,omitempty"`
	Errors      []FieldError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a key sheet or key list without enciphering",
		Long: `Validate the machine setting given by flags and environment, or every
day of a key list file.

A single key sheet reports every failing field at once, each with its
error code (E201 plugboard pairs, E202 ring settings, E203 rotor order,
E204 rotor positions).

Exit codes:
  0 - Valid
  1 - One or more fields invalid
  2 - Command error (unreadable key list, etc.)

Examples:
  enigma validate --rotor-order II,IV,V --ring-settings 02,21,12 -g BLA
  enigma validate --keys june.cue`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, cmd)
		},
	}

	opts.Key.bind(cmd)

	return cmd
}

func runValidate(opts *ValidateOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if opts.Key.fromKeyList() {
		return validateKeyList(opts, formatter, cmd)
	}

	cfg, err := opts.config()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	raw := opts.Key.raw(cmd, cfg)

	if errs := keysheet.Validate(raw); len(errs) > 0 {
		return outputValidationErrors(formatter, errs)
	}

	ks, err := keysheet.Parse(raw)
	if err != nil {
		return keyError(formatter, err)
	}
	fingerprint, err := ks.Fingerprint()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to fingerprint key sheet", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Fingerprint: fingerprint})
	}
	fmt.Fprintln(formatter.Writer, "✓ Key sheet valid")
	formatter.VerboseLog("fingerprint %s", fingerprint)
	return nil
}

// validateKeyList loads the list; Load already validates every day.
func validateKeyList(opts *ValidateOptions, formatter *OutputFormatter, cmd *cobra.Command) error {
	list, err := opts.Key.loadKeyList(cmd)
	if err != nil {
		return keyError(formatter, err)
	}

	days := list.Days()
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Days: days})
	}
	fmt.Fprintf(formatter.Writer, "✓ Key list valid: %d day(s)\n", len(days))
	if list.Name != "" {
		formatter.VerboseLog("name %s", list.Name)
	}
	return nil
}

// outputValidationErrors outputs every failing field.
func outputValidationErrors(formatter *OutputFormatter, errs []*keysheet.ValidationError) error {
	fields := make([]FieldError, len(errs))
	for i, e := range errs {
		fields[i] = FieldError{
			Code:    e.Code(),
			Field:   e.Field(),
			Value:   e.Value,
			Message: e.Message,
		}
	}

	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Errors: fields},
			Error: &CLIError{
				Code:    fields[0].Code,
				Message: errs[0].Error(),
			},
		}
		if err := formatter.JSON(response); err != nil {
			return err
		}

		// Validation failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, f := range fields {
		fmt.Fprintf(formatter.Writer, "  %s %s %q: %s\n", f.Code, f.Field, f.Value, f.Message)
	}

	// Validation failures = exit code 1
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
