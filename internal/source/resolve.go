package source

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"tonearm/internal/logging"
	"tonearm/internal/playlist"
)

// Resolver expands heterogeneous inputs (files, directories, playlists)
// into a flat, ordered list of audio sources. Ordering is deterministic:
// directory walks sort names lexically at every level and playlists keep
// their own entry order, so repeated runs over unchanged input produce
// identical lists.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver constructs a resolver. A nil logger is replaced with a no-op.
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logging.NewComponentLogger(logger, "resolve")}
}

// Resolve processes the ordered input list. Every returned source has an
// absolute path, a transcode spec, and positional context from its own
// top-level input element. Extensions listed in copyExtensions override the
// spec codec to copy for matching sources.
func (r *Resolver) Resolve(inputs []string, spec TranscodeSpec, copyExtensions []string) ([]AudioSource, error) {
	copySet := make(map[string]struct{}, len(copyExtensions))
	for _, ext := range copyExtensions {
		copySet[ext] = struct{}{}
	}

	var sources []AudioSource
	for _, input := range inputs {
		resolved, err := r.resolveInput(input, spec)
		if err != nil {
			return nil, err
		}
		sources = append(sources, resolved...)
	}

	for i := range sources {
		if _, ok := copySet[sources[i].Filetype()]; ok {
			sources[i].Spec = TranscodeSpec{Codec: CodecCopy}
		}
	}
	return sources, nil
}

func (r *Resolver) resolveInput(input string, spec TranscodeSpec) ([]AudioSource, error) {
	abs, err := filepath.Abs(input)
	if err != nil {
		return nil, fmt.Errorf("resolve input %q: %w", input, err)
	}

	if IsPlaylist(abs) {
		return r.resolvePlaylist(abs, spec)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Warn("input does not exist, skipping", logging.String(logging.FieldSource, abs))
			return nil, nil
		}
		return nil, fmt.Errorf("inspect input %q: %w", abs, err)
	}

	var paths []string
	if info.IsDir() {
		paths, err = walkAudioFiles(abs)
		if err != nil {
			return nil, err
		}
	} else if IsAudioFile(abs) {
		paths = []string{abs}
	} else {
		r.logger.Warn("not a known audio file type, skipping", logging.String(logging.FieldSource, abs))
		return nil, nil
	}

	sources := make([]AudioSource, 0, len(paths))
	for i, path := range paths {
		sources = append(sources, AudioSource{
			Path:       path,
			FileNumber: i + 1,
			TotalFiles: len(paths),
			Spec:       spec,
		})
	}
	return sources, nil
}

func (r *Resolver) resolvePlaylist(path string, spec TranscodeSpec) ([]AudioSource, error) {
	paths, err := ReadPlaylist(path)
	if err != nil {
		return nil, err
	}

	sources := make([]AudioSource, 0, len(paths))
	for i, audioPath := range paths {
		sources = append(sources, AudioSource{
			Path:       audioPath,
			FileNumber: i + 1,
			TotalFiles: len(paths),
			Playlist: &PlaylistRef{
				File:       path,
				FileNumber: i + 1,
				TotalFiles: len(paths),
			},
			Spec: spec,
		})
	}
	return sources, nil
}

// ReadPlaylist extracts the ordered audio file references of a playlist,
// resolving each entry to an absolute path relative to the playlist's own
// directory. Entries whose extension is not a recognized audio type are
// dropped. An unsupported playlist extension yields UnsupportedFileError.
func ReadPlaylist(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open playlist %q: %w", path, err)
	}
	defer file.Close()

	var entries []string
	switch {
	case IsPLSPlaylist(path):
		entries, err = playlist.ExtractPLS(file)
	case IsM3UPlaylist(path):
		entries, err = playlist.ExtractM3U(file)
	default:
		return nil, &UnsupportedFileError{Path: path, Ext: filepath.Ext(path)}
	}
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !IsAudioFile(entry) {
			continue
		}
		if !filepath.IsAbs(entry) {
			entry = filepath.Join(dir, entry)
		}
		abs, err := filepath.Abs(entry)
		if err != nil {
			return nil, fmt.Errorf("resolve playlist entry %q: %w", entry, err)
		}
		paths = append(paths, abs)
	}
	return paths, nil
}

// walkAudioFiles collects audio files under dir. At every level the
// directory's own matching files come first in lexical name order, then
// each subdirectory is descended, also in lexical name order.
func walkAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}

	var paths []string
	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, filepath.Join(dir, entry.Name()))
			continue
		}
		if IsAudioFile(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	for _, subdir := range subdirs {
		nested, err := walkAudioFiles(subdir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, nested...)
	}
	return paths, nil
}
