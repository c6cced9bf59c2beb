package preflight

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediagrab/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckMediaDirectoryAllowsMissing(t *testing.T) {
	result := checkMediaDirectory(filepath.Join(t.TempDir(), "Movies"))
	if !result.Passed || !strings.Contains(result.Detail, "created on first move") {
		t.Fatalf("unexpected result %#v", result)
	}
}

func failingInstaller(t *testing.T) Installer {
	return InstallerFunc(func(context.Context) (string, error) {
		t.Fatal("installer must not run")
		return "", nil
	})
}

func TestRunAllToolsPresent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.StubBinaries(t, filepath.Join(testsupport.BaseDir(cfg), "bin"), "echo 1.2.3", "yt-dlp", "ffmpeg", "jq")

	report, err := Run(context.Background(), cfg, Options{Installer: failingInstaller(t), Out: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !report.Ready() {
		t.Fatalf("expected ready report, got %#v", report)
	}
	if report.YtDLP.Version != "1.2.3" || report.Installed {
		t.Fatalf("unexpected yt-dlp status %#v", report.YtDLP)
	}
	if report.YtDLPBinary != "yt-dlp" {
		t.Fatalf("binary = %q, want configured name", report.YtDLPBinary)
	}
}

func TestRunInstallsMissingYtDLP(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithAutoInstall(true))
	base := testsupport.BaseDir(cfg)
	testsupport.StubBinaries(t, filepath.Join(base, "bin"), "echo ok", "ffmpeg", "jq")

	installed := filepath.Join(base, "cache", "yt-dlp")
	installer := InstallerFunc(func(context.Context) (string, error) {
		testsupport.WriteFile(t, installed, "#!/bin/sh\necho 2025.06.30\n")
		if err := os.Chmod(installed, 0o755); err != nil {
			return "", err
		}
		return installed, nil
	})
	var out bytes.Buffer

	report, err := Run(context.Background(), cfg, Options{Installer: installer, Out: &out})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "yt-dlp is not installed. Installing now...") {
		t.Fatalf("missing install notice in %q", out.String())
	}
	if !report.Installed || report.YtDLPBinary != installed {
		t.Fatalf("expected installed binary %s, got %#v", installed, report)
	}
	if report.YtDLP.Version != "2025.06.30" {
		t.Fatalf("version = %q", report.YtDLP.Version)
	}
}

func TestRunFailsWhenInstallFails(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithAutoInstall(true))
	testsupport.StubBinaries(t, filepath.Join(testsupport.BaseDir(cfg), "bin"), "exit 0", "ffmpeg")

	installer := InstallerFunc(func(context.Context) (string, error) {
		return "", errors.New("network unreachable")
	})
	_, err := Run(context.Background(), cfg, Options{Installer: installer, Out: &bytes.Buffer{}})
	if !errors.Is(err, ErrToolMissing) || !strings.Contains(err.Error(), "network unreachable") {
		t.Fatalf("expected install failure, got %v", err)
	}
}

func TestRunWithoutAutoInstallFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.StubBinaries(t, filepath.Join(testsupport.BaseDir(cfg), "bin"), "exit 0", "ffmpeg")

	_, err := Run(context.Background(), cfg, Options{Installer: failingInstaller(t), Out: &bytes.Buffer{}})
	if !errors.Is(err, ErrToolMissing) {
		t.Fatalf("expected ErrToolMissing, got %v", err)
	}
}

func TestRunMissingTranscoder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.StubBinaries(t, filepath.Join(testsupport.BaseDir(cfg), "bin"), "exit 0", "yt-dlp", "jq")

	_, err := Run(context.Background(), cfg, Options{Installer: failingInstaller(t), Out: &bytes.Buffer{}})
	if !errors.Is(err, ErrTranscoderMissing) {
		t.Fatalf("expected ErrTranscoderMissing, got %v", err)
	}
}

func TestRunMissingJQIsOptional(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.StubBinaries(t, filepath.Join(testsupport.BaseDir(cfg), "bin"), "exit 0", "yt-dlp", "ffmpeg")

	report, err := Run(context.Background(), cfg, Options{Installer: failingInstaller(t), Out: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.JQ.Available {
		t.Fatal("expected jq to be reported missing")
	}
	if !report.Ready() {
		t.Fatal("missing jq must not block the session")
	}
}

func TestRunCheckOnlyReportsWithoutFailing(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithAutoInstall(true))
	testsupport.StubBinaries(t, filepath.Join(testsupport.BaseDir(cfg), "bin"), "exit 0")
	var out bytes.Buffer

	report, err := Run(context.Background(), cfg, Options{Installer: failingInstaller(t), Out: &out, CheckOnly: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Ready() {
		t.Fatal("expected report to flag missing tools")
	}
	if out.Len() != 0 {
		t.Fatalf("check mode should not print, got %q", out.String())
	}
	if len(report.Directories) != 2 || !report.Directories[0].Passed {
		t.Fatalf("unexpected directory results %#v", report.Directories)
	}
}

func TestRunNilConfig(t *testing.T) {
	if _, err := Run(context.Background(), nil, Options{}); err == nil {
		t.Fatal("expected error for nil config")
	}
}
