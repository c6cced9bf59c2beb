package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mediagrab/internal/links"
	"mediagrab/internal/operations"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var opName string
	var format string
	var move bool

	cmd := &cobra.Command{
		Use:   "run --op <operation> URL...",
		Short: "Run one operation over the given links without the menu",
		Long: fmt.Sprintf("Run one operation over the given links without the menu.\n\nOperations: %s",
			strings.Join(operations.KindNames(), ", ")),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := operations.ParseKind(opName)
			if err != nil {
				return err
			}
			list := links.Parse(strings.Join(args, ","))
			if len(list) < len(args) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Skipping %d invalid link(s)\n", len(args)-len(list))
			}
			settings := sessionSettings{format: format, assumeMove: move}
			return ctx.withSession(cmd, settings, func(run sessionRun) error {
				return run.session.Batch(run.ctx, kind, list)
			})
		},
	}

	cmd.Flags().StringVarP(&opName, "op", "o", "", "Operation to run ("+strings.Join(operations.KindNames(), "|")+")")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Format code for video downloads (prompted when omitted)")
	cmd.Flags().BoolVar(&move, "move", false, "Move downloaded videos to the media directory without asking")
	_ = cmd.MarkFlagRequired("op")
	return cmd
}
