package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"mediagrab/internal/config"
	"mediagrab/internal/prompt"
	"mediagrab/internal/session"
)

type commandContext struct {
	configFlag  *string
	workDirFlag *string
	verbose     *bool
	prompter    prompt.Prompter

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, workDirFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		workDirFlag: workDirFlag,
		verbose:     verbose,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.workDirFlag != nil && strings.TrimSpace(*c.workDirFlag) != "" {
			dir, err := config.ExpandPath(strings.TrimSpace(*c.workDirFlag))
			if err != nil {
				c.configErr = fmt.Errorf("resolve --workdir: %w", err)
				return
			}
			cfg.Paths.WorkDir = dir
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) verboseEnabled() bool {
	return c.verbose != nil && *c.verbose
}

type sessionSettings struct {
	format     string
	assumeMove bool
}

type sessionRun struct {
	ctx     context.Context
	session *session.Session
}

// withSession opens a locked session bound to SIGINT/SIGTERM and closes it
// when fn returns.
func (c *commandContext) withSession(cmd *cobra.Command, settings sessionSettings, fn func(sessionRun) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s, err := session.Open(signalCtx, cfg, session.Options{
		Verbose:    c.verboseEnabled(),
		Out:        cmd.OutOrStdout(),
		ErrOut:     cmd.ErrOrStderr(),
		Prompter:   c.prompter,
		Format:     settings.format,
		AssumeMove: settings.assumeMove,
	})
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(sessionRun{ctx: signalCtx, session: s})
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
