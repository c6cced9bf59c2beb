package dispatch

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"mediagrab/internal/operations"
)

// Choice is a menu number in [1, MaxChoice].
type Choice int

// MaxChoice is the highest menu entry.
const MaxChoice Choice = 12

var (
	// ErrNotNumber reports menu input that is not an integer.
	ErrNotNumber = errors.New("choice is not a number")
	// ErrOutOfRange reports an integer outside the menu.
	ErrOutOfRange = errors.New("choice out of range")
)

type menuEntry struct {
	group string
	text  string
	kind  operations.Kind
}

// The multi-link entries map onto the same operations as their single-link
// counterparts; the number of links is handled by the batch runner.
var menuEntries = map[Choice]menuEntry{
	1:  {"Combo", "Download video with audio", operations.KindVideoAudio},
	2:  {"Combo", "Download audio + description", operations.KindAudioDescription},
	3:  {"Combo", "Download video/audio + comments", operations.KindMediaComments},
	4:  {"Single", "Only title", operations.KindTitle},
	5:  {"Single", "Only audio", operations.KindAudio},
	6:  {"Single", "Only description", operations.KindDescription},
	7:  {"Single", "Only comments", operations.KindComments},
	8:  {"Multi", "Multi-link video+audio download", operations.KindVideoAudio},
	9:  {"Multi", "Multi-link only titles", operations.KindTitle},
	10: {"Multi", "Multi-link only descriptions", operations.KindDescription},
	11: {"Multi", "Multi-link only comments", operations.KindComments},
	12: {"Multi", "Multi-link only audio", operations.KindAudio},
}

// ParseChoice converts raw menu input into a Choice.
func ParseChoice(input string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotNumber
	}
	choice := Choice(n)
	if choice < 1 || choice > MaxChoice {
		return 0, ErrOutOfRange
	}
	return choice, nil
}

// Kind returns the operation selected by c.
func (c Choice) Kind() operations.Kind {
	return menuEntries[c].kind
}

// RenderMenu returns the numbered menu as a table.
func RenderMenu() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("YouTube Downloader Tool")
	tw.AppendHeader(table.Row{"", "#", "Action"})

	group := ""
	for choice := Choice(1); choice <= MaxChoice; choice++ {
		entry := menuEntries[choice]
		label := ""
		if entry.group != group {
			if group != "" {
				tw.AppendSeparator()
			}
			group = entry.group
			label = group
		}
		tw.AppendRow(table.Row{label, int(choice), entry.text})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	return tw.Render()
}
