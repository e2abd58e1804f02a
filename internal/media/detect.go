package media

import (
	"path/filepath"
	"strings"
)

// Format identifies how a path file is encoded.
type Format int

const (
	FormatUnknown Format = iota
	FormatBinary
	FormatText
	FormatWAV
	FormatFLAC
	FormatMP3
	FormatOGG
)

func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatText:
		return "text"
	case FormatWAV:
		return "wav"
	case FormatFLAC:
		return "flac"
	case FormatMP3:
		return "mp3"
	case FormatOGG:
		return "ogg"
	default:
		return "unknown"
	}
}

// IsAudio reports whether the format is decoded as stereo audio.
func (f Format) IsAudio() bool {
	switch f {
	case FormatWAV, FormatFLAC, FormatMP3, FormatOGG:
		return true
	}
	return false
}

var pathExts = map[string]Format{
	".bin":  FormatBinary,
	".path": FormatBinary,
	".txt":  FormatText,
	".csv":  FormatText,
	".wav":  FormatWAV,
	".flac": FormatFLAC,
	".mp3":  FormatMP3,
	".ogg":  FormatOGG,
}

var galleryExts = map[string]bool{
	".gallery": true,
	".m3u":     true,
}

// FormatForExt returns the format for a file extension (with leading dot).
func FormatForExt(ext string) Format {
	return pathExts[strings.ToLower(ext)]
}

// FormatForPath returns the format for a file name.
func FormatForPath(path string) Format {
	return FormatForExt(filepath.Ext(path))
}

// IsSupportedExt returns true if the extension is a readable path format.
func IsSupportedExt(ext string) bool {
	return FormatForExt(ext) != FormatUnknown
}

// IsGalleryExt returns true if the extension is a gallery manifest.
func IsGalleryExt(ext string) bool {
	return galleryExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of readable path formats.
func SupportedExtsList() string {
	return ".bin, .path, .txt, .csv, .wav, .flac, .mp3, .ogg"
}
