package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mediagrab/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report external tool and directory status without installing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			report, err := preflight.Run(cmd.Context(), cfg, preflight.Options{
				Out:       cmd.ErrOrStderr(),
				CheckOnly: true,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderTable([]string{"Tool", "Status", "Version", "Detail"}, toolRows(report, colorize)))
			for _, line := range directoryLines(report.Directories, colorize) {
				fmt.Fprintln(out, line)
			}
			if !report.Ready() {
				return errors.New("preflight checks failed")
			}
			fmt.Fprintln(out, renderStatusLine("summary", statusOK, "ready", colorize))
			return nil
		},
	}
}
