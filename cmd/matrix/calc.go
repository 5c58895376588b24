package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/phrazzld/destiny-matrix/internal/render"
	"github.com/phrazzld/destiny-matrix/internal/service"
)

// errSomeFailed is returned when at least one date of a multi-date run could
// not be calculated. The details have already been printed.
var errSomeFailed = errors.New("some birth dates could not be calculated")

// batchEntry is the encoded form of one multi-date result.
type batchEntry struct {
	Input   string           `json:"input" yaml:"input"`
	Reading *service.Reading `json:"reading,omitempty" yaml:"reading,omitempty"`
	Error   string           `json:"error,omitempty" yaml:"error,omitempty"`
}

func newCalcCmd(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "calc <birthdate> [birthdate...]",
		Short: "Calculate and interpret the matrix of one or more birth dates",
		Example: `  matrix calc 1990-05-15
  matrix calc 15.05.1990 --format json
  matrix calc 1990-05-15 2000-01-01 --format yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return c.calcOne(cmd, f, args[0])
			}
			return c.calcMany(cmd, f, args)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatText), "output format: text, json or yaml")
	return cmd
}

func (c *cli) calcOne(cmd *cobra.Command, format render.Format, input string) error {
	reading, err := c.svc.Calculate(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("%q: %w", input, err)
	}
	return write(cmd.OutOrStdout(), format, reading)
}

func (c *cli) calcMany(cmd *cobra.Command, format render.Format, inputs []string) error {
	items, err := c.svc.CalculateBatch(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	failed := 0
	out := cmd.OutOrStdout()
	entries := make([]batchEntry, 0, len(items))
	for _, item := range items {
		entry := batchEntry{Input: item.Input, Reading: item.Reading}
		if item.Err != nil {
			failed++
			entry.Error = item.Err.Error()
		}
		entries = append(entries, entry)

		if format != render.FormatText {
			continue
		}
		if item.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %q: %v\n", item.Input, item.Err)
			continue
		}
		if _, err := io.WriteString(out, render.Reading(item.Reading, render.NewStyles())+"\n"); err != nil {
			return err
		}
	}

	if format != render.FormatText {
		if err := render.Encode(out, format, entries); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errSomeFailed, failed, len(items))
	}
	return nil
}

func write(w io.Writer, format render.Format, reading *service.Reading) error {
	if format == render.FormatText {
		_, err := io.WriteString(w, render.Reading(reading, render.NewStyles()))
		return err
	}
	return render.Encode(w, format, reading)
}
