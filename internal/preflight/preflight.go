package preflight

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	goytdlp "github.com/lrstanley/go-ytdlp"

	"mediagrab/internal/config"
	"mediagrab/internal/deps"
	"mediagrab/internal/logging"
	"mediagrab/internal/services"
)

var (
	// ErrTranscoderMissing reports that ffmpeg could not be run.
	ErrTranscoderMissing = errors.New("ffmpeg is not installed")
	// ErrToolMissing reports that yt-dlp is absent and could not be installed.
	ErrToolMissing = errors.New("yt-dlp is not installed")
)

const installNotice = "yt-dlp is not installed. Installing now..."

// Installer fetches a yt-dlp executable and returns its path.
type Installer interface {
	Install(ctx context.Context) (string, error)
}

// InstallerFunc adapts a function to Installer.
type InstallerFunc func(ctx context.Context) (string, error)

// Install implements Installer.
func (f InstallerFunc) Install(ctx context.Context) (string, error) {
	return f(ctx)
}

// DefaultInstaller downloads the matching yt-dlp release into the user cache
// via go-ytdlp.
func DefaultInstaller() Installer {
	return InstallerFunc(func(ctx context.Context) (string, error) {
		resolved, err := goytdlp.Install(ctx, &goytdlp.InstallOptions{})
		if err != nil {
			return "", err
		}
		return resolved.Executable, nil
	})
}

// Options tunes a preflight run.
type Options struct {
	Executor  services.Executor
	Installer Installer
	Out       io.Writer
	Logger    *slog.Logger
	// CheckOnly reports problems without installing or failing.
	CheckOnly bool
}

// Report is the outcome of a preflight run.
type Report struct {
	YtDLP       deps.Status
	FFmpeg      deps.Status
	JQ          deps.Status
	Directories []Result
	// YtDLPBinary is the executable sessions should invoke. It differs from
	// the configured binary after an install.
	YtDLPBinary string
	Installed   bool
}

// Tools lists every tool status in display order.
func (r Report) Tools() []deps.Status {
	return []deps.Status{r.YtDLP, r.FFmpeg, r.JQ}
}

// Ready reports whether every required check passed.
func (r Report) Ready() bool {
	for _, status := range r.Tools() {
		if !status.Available && !status.Optional {
			return false
		}
	}
	for _, result := range r.Directories {
		if !result.Passed {
			return false
		}
	}
	return true
}

// Run probes the external tools and directories described by cfg.
func Run(ctx context.Context, cfg *config.Config, opts Options) (Report, error) {
	if cfg == nil {
		return Report{}, fmt.Errorf("%w: preflight requires a config", services.ErrConfiguration)
	}
	if opts.Executor == nil {
		opts.Executor = services.CommandExecutor{}
	}
	if opts.Installer == nil {
		opts.Installer = DefaultInstaller()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	logger := logging.NewComponentLogger(opts.Logger, "preflight")

	report := Report{YtDLPBinary: cfg.Tools.YtDLPBinary}
	report.YtDLP = deps.Probe(ctx, opts.Executor, ytdlpRequirement(cfg.Tools.YtDLPBinary))
	if !report.YtDLP.Available && !opts.CheckOnly {
		if !cfg.Tools.AutoInstall {
			return report, fmt.Errorf("%w: %s (auto_install disabled)", ErrToolMissing, report.YtDLP.Detail)
		}
		fmt.Fprintln(opts.Out, installNotice)
		logger.Info("installing yt-dlp", logging.String("configured", cfg.Tools.YtDLPBinary))
		path, err := opts.Installer.Install(ctx)
		if err != nil {
			return report, fmt.Errorf("%w: install failed: %w", ErrToolMissing, err)
		}
		report.YtDLP = deps.Probe(ctx, opts.Executor, ytdlpRequirement(path))
		if !report.YtDLP.Available {
			return report, fmt.Errorf("%w: installed binary unusable: %s", ErrToolMissing, report.YtDLP.Detail)
		}
		report.YtDLPBinary = report.YtDLP.Path
		report.Installed = true
		logger.Info("yt-dlp installed",
			logging.String("path", report.YtDLPBinary),
			logging.String("version", report.YtDLP.Version),
		)
	}

	ffmpegReq, jqReq := requirements(cfg)
	report.FFmpeg = deps.Probe(ctx, opts.Executor, ffmpegReq)
	if !report.FFmpeg.Available && !opts.CheckOnly {
		logging.ErrorWithContext(logger, "ffmpeg unavailable", "transcoder_missing",
			logging.String("detail", report.FFmpeg.Detail),
			logging.String(logging.FieldErrorHint, "install ffmpeg with your package manager"),
		)
		return report, ErrTranscoderMissing
	}

	report.JQ = deps.Probe(ctx, opts.Executor, jqReq)
	if !report.JQ.Available {
		logging.WarnWithContext(logger, "jq unavailable", "jq_missing",
			logging.String("detail", report.JQ.Detail),
			logging.String(logging.FieldErrorHint, "install jq to extract comments"),
			logging.String(logging.FieldImpact, "comment operations will fail"),
		)
	}

	report.Directories = []Result{
		CheckDirectoryAccess("Working directory", cfg.Paths.WorkDir),
		checkMediaDirectory(cfg.Paths.MediaDir),
	}

	logger.Info("preflight complete",
		logging.String("ytdlp_version", report.YtDLP.Version),
		logging.String("ffmpeg_version", report.FFmpeg.Version),
		logging.Bool("jq_available", report.JQ.Available),
	)
	return report, nil
}
