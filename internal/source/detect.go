package source

import (
	"path/filepath"
	"strings"
)

// Basic set of supported input formats. Other formats work as long as both
// ffprobe and ffmpeg understand how to decode them.
var audioExtensions = map[string]struct{}{
	"mp3":  {},
	"ogg":  {},
	"flac": {},
	"m4a":  {},
	"mpc":  {},
	"wav":  {},
}

func normalizedExt(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// IsAudioFile reports whether the file extension belongs to the recognized
// audio type set. Matching is case-insensitive.
func IsAudioFile(path string) bool {
	_, ok := audioExtensions[normalizedExt(path)]
	return ok
}

// IsPLSPlaylist reports whether the path names a PLS playlist.
func IsPLSPlaylist(path string) bool {
	return normalizedExt(path) == "pls"
}

// IsM3UPlaylist reports whether the path names an M3U playlist. Both .m3u
// and .m3u8 are parsed by the same line grammar.
func IsM3UPlaylist(path string) bool {
	ext := normalizedExt(path)
	return ext == "m3u" || ext == "m3u8"
}

// IsPlaylist reports whether the path names a supported playlist format.
func IsPlaylist(path string) bool {
	return IsPLSPlaylist(path) || IsM3UPlaylist(path)
}
