package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PlaylistRef carries the playlist context of a source drawn from a
// playlist input: the playlist path, the source's 1-based position within
// it, and the playlist's total extracted entry count.
type PlaylistRef struct {
	File       string
	FileNumber int
	TotalFiles int
}

// AudioSource represents one input audio file to be processed. The path is
// always absolute and normalized. FileNumber and TotalFiles describe the
// source's position within its originating top-level input element.
// Playlist is nil for sources not drawn from a playlist. Immutable once
// resolution completes.
type AudioSource struct {
	Path       string
	FileNumber int
	TotalFiles int
	Playlist   *PlaylistRef
	Spec       TranscodeSpec
}

// Basename returns the file name of the source.
func (s AudioSource) Basename() string {
	return filepath.Base(s.Path)
}

// Stem returns the file name without its extension.
func (s AudioSource) Stem() string {
	base := filepath.Base(s.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParentBase returns the basename of the source's parent directory.
func (s AudioSource) ParentBase() string {
	return filepath.Base(filepath.Dir(s.Path))
}

// Filetype returns the lowercased extension without the leading dot, or an
// empty string when the file has no extension.
func (s AudioSource) Filetype() string {
	ext := strings.ToLower(filepath.Ext(s.Path))
	return strings.TrimPrefix(ext, ".")
}

// Describe renders a diagnostic description including playlist context when
// present, used in collision logs to identify both claimants.
func (s AudioSource) Describe() string {
	if s.Playlist != nil {
		return fmt.Sprintf("%s#%d:%s", s.Playlist.File, s.Playlist.FileNumber, s.Path)
	}
	return s.Path
}
