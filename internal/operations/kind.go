package operations

import (
	"fmt"
	"strings"
)

// Kind identifies one operation in the catalog.
type Kind int

const (
	KindVideoAudio Kind = iota + 1
	KindAudioDescription
	KindMediaComments
	KindTitle
	KindAudio
	KindDescription
	KindComments
)

var kindNames = map[Kind]string{
	KindVideoAudio:       "video-audio",
	KindAudioDescription: "audio-description",
	KindMediaComments:    "media-comments",
	KindTitle:            "title",
	KindAudio:            "audio",
	KindDescription:      "description",
	KindComments:         "comments",
}

var kindLabels = map[Kind]string{
	KindVideoAudio:       "Downloading video with audio",
	KindAudioDescription: "Downloading audio + description",
	KindMediaComments:    "Downloading video/audio + comments",
	KindTitle:            "Title",
	KindAudio:            "Downloading Audio Only",
	KindDescription:      "Description",
	KindComments:         "Comments",
}

// Kinds lists every catalog entry in menu order.
func Kinds() []Kind {
	return []Kind{
		KindVideoAudio,
		KindAudioDescription,
		KindMediaComments,
		KindTitle,
		KindAudio,
		KindDescription,
		KindComments,
	}
}

// String returns the stable name used on the command line and in logs.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Label is the banner text printed before each link is processed.
func (k Kind) Label() string {
	return kindLabels[k]
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind resolves a command-line name such as "audio" or "video-audio".
func ParseKind(name string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, kind := range Kinds() {
		if kindNames[kind] == needle {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q (want one of %s)", name, strings.Join(KindNames(), ", "))
}

// KindNames returns the command-line names of every kind in menu order.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for _, kind := range Kinds() {
		names = append(names, kindNames[kind])
	}
	return names
}
