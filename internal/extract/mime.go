package extract

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// extensionMap is consulted in order; a detected type matches an entry when
// the type or one of its aliases equals the entry's MIME string.
var extensionMap = []struct {
	mime string
	ext  string
}{
	{"image/jpeg", ".jpg"},
	{"image/png", ".png"},
	{"image/gif", ".gif"},
	{"video/ogg", ".ogg"},
	{"video/mp4", ".mp4"},
	{"audio/mpeg", ".mp3"},
	{"audio/basic", ".snd"},
	{"audio/mid", ".mid"},
	{"audio/x-m4a", ".m4a"},
	{"video/x-ms-asf", ".wmv"},
	{"video/x-flv", ".flv"},
	{"audio/x-aiff", ".aiff"},
	{"audio/x-mpegurl", ".m3u"},
	{"audio/x-pn-realaudio", ".ra"},
	{"audio/x-wav", ".wav"},
	{"text/xml", ".xml"},
	{"text/html", ".html"},
	{"application/pdf", ".pdf"},
}

// detectorNames lists the names the detector reports for table entries it
// knows under a different type. Both playlist and RealMedia files are
// registered there under application/ types with no audio/ alias.
var detectorNames = map[string][]string{
	"audio/x-mpegurl":      {"application/vnd.apple.mpegurl", "audio/mpegurl"},
	"audio/x-pn-realaudio": {"application/vnd.rn-realmedia", "application/vnd.rn-realmedia-vbr"},
}

// matches reports whether detected is the entry's type under any of the
// names the detector may use for it.
func matches(detected *mimetype.MIME, mime string) bool {
	if detected.Is(mime) {
		return true
	}
	for _, name := range detectorNames[mime] {
		if detected.Is(name) {
			return true
		}
	}
	return false
}

type mimeSniffer struct{}

func newMime(Settings) (Extractor, error) {
	return mimeSniffer{}, nil
}

func (mimeSniffer) Placeholders(path string) (Values, error) {
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect mimetype of %s: %w", path, err)
	}
	if detected == nil || detected.String() == "" {
		return nil, fmt.Errorf("unable to guess mimetype")
	}
	for _, entry := range extensionMap {
		if matches(detected, entry.mime) {
			return Values{"mime": entry.ext}, nil
		}
	}
	base, _, _ := strings.Cut(detected.String(), ";")
	return nil, fmt.Errorf("unable to map extension: %s", strings.TrimSpace(base))
}
