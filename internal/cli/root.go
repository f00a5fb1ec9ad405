// Package cli implements the planner command line tool.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/healthtrack/backend/internal/planner"
)

// Output formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type options struct {
	output string
}

// NewRootCmd builds the planner command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "planner",
		Short:         "Calorie and macro planner",
		Long:          `Computes BMI, BMR, TDEE, goal-based calorie targets and macro splits from imperial biometrics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case FormatText, FormatJSON, FormatYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", opts.output)
			}
		},
	}
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", FormatText, "output format: text, json or yaml")

	root.AddCommand(
		newBMICmd(opts),
		newBodyCmd(opts),
		newPlanCmd(opts),
		newMacrosCmd(opts),
	)
	return root
}

// Execute runs the command tree and prints any error to stderr.
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

// inputError presents planner validation failures with the generic message.
type inputError struct {
	err error
}

func (e *inputError) Error() string { return planner.InvalidInputMessage }
func (e *inputError) Unwrap() error { return e.err }

func userError(err error) error {
	if errors.Is(err, planner.ErrInvalidInput) {
		return &inputError{err: err}
	}
	return err
}

// render writes v in the selected format. text prints the human summary.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}
