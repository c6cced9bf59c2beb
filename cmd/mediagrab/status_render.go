package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mediagrab/internal/deps"
	"mediagrab/internal/preflight"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

var labelCaser = cases.Title(language.English)

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := fmt.Sprintf("[%s]", statusKindLabel(kind))
	if message != "" {
		statusText += " " + message
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, labelCaser.String(label)+":", statusText)
	return paint(kind, base, colorize)
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func paint(kind statusKind, s string, colorize bool) string {
	var c *color.Color
	switch kind {
	case statusOK:
		c = color.New(color.FgGreen)
	case statusWarn:
		c = color.New(color.FgYellow)
	case statusError:
		c = color.New(color.FgRed)
	default:
		c = color.New(color.FgBlue)
	}
	if colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func toolKind(status deps.Status) statusKind {
	switch {
	case status.Available:
		return statusOK
	case status.Optional:
		return statusWarn
	default:
		return statusError
	}
}

func toolRows(report preflight.Report, colorize bool) [][]string {
	rows := make([][]string, 0, 3)
	for _, status := range report.Tools() {
		kind := toolKind(status)
		detail := status.Detail
		if status.Available {
			detail = status.Path
		}
		rows = append(rows, []string{
			status.Name,
			paint(kind, statusKindLabel(kind), colorize),
			status.Version,
			detail,
		})
	}
	return rows
}

func directoryLines(results []preflight.Result, colorize bool) []string {
	lines := make([]string, 0, len(results))
	for _, result := range results {
		kind := statusOK
		if !result.Passed {
			kind = statusError
		}
		lines = append(lines, renderStatusLine(result.Name, kind, result.Detail, colorize))
	}
	return lines
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
