package main

import (
	"github.com/spf13/cobra"

	"mediagrab/internal/prompt"
)

func newRootCommand() *cobra.Command {
	return buildRootCommand(nil)
}

// buildRootCommand assembles the command tree. A nil prompter selects the
// readline terminal editor.
func buildRootCommand(prompter prompt.Prompter) *cobra.Command {
	var configFlag string
	var workDirFlag string
	var verbose bool

	ctx := newCommandContext(&configFlag, &workDirFlag, &verbose)
	ctx.prompter = prompter

	rootCmd := &cobra.Command{
		Use:           "mediagrab",
		Short:         "Download videos, audio and metadata with yt-dlp",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, sessionSettings{}, func(run sessionRun) error {
				return run.session.Interactive(run.ctx)
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&workDirFlag, "workdir", "w", "", "Directory downloads are written to (overrides paths.work_dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Mirror debug logs to stderr")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
