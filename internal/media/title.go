package media

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// ReadTitle returns the ID3v2 title of an MP3 file, falling back to the file
// name without its extension.
func ReadTitle(path string) string {
	if FormatForPath(path) == FormatMP3 {
		tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
		if err == nil {
			defer tag.Close()
			if title := strings.TrimSpace(tag.Title()); title != "" {
				return title
			}
		}
	}
	return baseName(path)
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
