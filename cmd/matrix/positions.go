package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/phrazzld/destiny-matrix/internal/render"
)

func newPositionsCmd(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "positions",
		Short: "List the eleven matrix positions with their element and planet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			positions := c.svc.Positions()
			if f == render.FormatText {
				_, err = io.WriteString(cmd.OutOrStdout(), render.Positions(positions, render.NewStyles()))
				return err
			}
			return render.Encode(cmd.OutOrStdout(), f, positions)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatText), "output format: text, json or yaml")
	return cmd
}
