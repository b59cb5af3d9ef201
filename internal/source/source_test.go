package source_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tonearm/internal/logging"
	"tonearm/internal/source"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func paths(sources []source.AudioSource) []string {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = s.Path
	}
	return out
}

func TestResolveDirectoryOrdering(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.mp3"), "x")
	writeFile(t, filepath.Join(root, "a.flac"), "x")
	writeFile(t, filepath.Join(root, "notes.txt"), "x")
	writeFile(t, filepath.Join(root, "sub", "c.ogg"), "x")
	writeFile(t, filepath.Join(root, "aaa", "d.wav"), "x")

	resolver := source.NewResolver(logging.NewNop())
	sources, err := resolver.Resolve([]string{root}, source.TranscodeSpec{Codec: source.CodecMP3}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := []string{
		filepath.Join(root, "a.flac"),
		filepath.Join(root, "b.mp3"),
		filepath.Join(root, "aaa", "d.wav"),
		filepath.Join(root, "sub", "c.ogg"),
	}
	got := paths(sources)
	if len(got) != len(want) {
		t.Fatalf("resolved %d sources, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("source %d = %s, want %s", i, got[i], want[i])
		}
	}
	for i, s := range sources {
		if s.FileNumber != i+1 {
			t.Errorf("source %d FileNumber = %d, want %d", i, s.FileNumber, i+1)
		}
		if s.TotalFiles != len(want) {
			t.Errorf("source %d TotalFiles = %d, want %d", i, s.TotalFiles, len(want))
		}
		if s.Playlist != nil {
			t.Errorf("source %d has playlist context for a directory input", i)
		}
	}
}

func TestResolveSingleFile(t *testing.T) {
	root := t.TempDir()
	audio := filepath.Join(root, "song.Mp3")
	writeFile(t, audio, "x")

	resolver := source.NewResolver(logging.NewNop())
	sources, err := resolver.Resolve([]string{audio}, source.TranscodeSpec{Codec: source.CodecVorbis}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(sources) != 1 {
		t.Fatalf("resolved %d sources, want 1", len(sources))
	}
	s := sources[0]
	if s.FileNumber != 1 || s.TotalFiles != 1 {
		t.Errorf("position = (%d, %d), want (1, 1)", s.FileNumber, s.TotalFiles)
	}
	if s.Spec.Codec != source.CodecVorbis {
		t.Errorf("codec = %s, want vorbis", s.Spec.Codec)
	}
}

func TestResolveSkipsNonAudioAndMissing(t *testing.T) {
	root := t.TempDir()
	text := filepath.Join(root, "readme.txt")
	writeFile(t, text, "x")

	resolver := source.NewResolver(logging.NewNop())
	sources, err := resolver.Resolve(
		[]string{text, filepath.Join(root, "nope.flac")},
		source.TranscodeSpec{Codec: source.CodecMP3}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(sources) != 0 {
		t.Fatalf("resolved %d sources, want 0: %v", len(sources), paths(sources))
	}
}

func TestResolvePlaylistOrdinals(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "one.mp3"), "x")
	writeFile(t, filepath.Join(root, "disc", "two.flac"), "x")
	pls := filepath.Join(root, "mix.m3u")
	writeFile(t, pls, "# a comment\none.mp3\ncover.jpg\ndisc/two.flac\n")

	resolver := source.NewResolver(logging.NewNop())
	sources, err := resolver.Resolve([]string{pls}, source.TranscodeSpec{Codec: source.CodecMP3}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("resolved %d sources, want 2: %v", len(sources), paths(sources))
	}

	want := []string{
		filepath.Join(root, "one.mp3"),
		filepath.Join(root, "disc", "two.flac"),
	}
	for i, s := range sources {
		if s.Path != want[i] {
			t.Errorf("source %d path = %s, want %s", i, s.Path, want[i])
		}
		if s.Playlist == nil {
			t.Fatalf("source %d missing playlist context", i)
		}
		if s.Playlist.File != pls {
			t.Errorf("source %d playlist file = %s, want %s", i, s.Playlist.File, pls)
		}
		if s.Playlist.FileNumber != i+1 || s.Playlist.TotalFiles != 2 {
			t.Errorf("source %d playlist position = (%d, %d), want (%d, 2)",
				i, s.Playlist.FileNumber, s.Playlist.TotalFiles, i+1)
		}
		if s.FileNumber != i+1 || s.TotalFiles != 2 {
			t.Errorf("source %d position = (%d, %d), want (%d, 2)",
				i, s.FileNumber, s.TotalFiles, i+1)
		}
	}
}

func TestResolvePLSPlaylist(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.ogg"), "x")
	writeFile(t, filepath.Join(root, "b.ogg"), "x")
	pls := filepath.Join(root, "set.pls")
	writeFile(t, pls, "[playlist]\nFile1=a.ogg\nTitle1=A\nFile2=b.ogg\nNumberOfEntries=2\n")

	resolver := source.NewResolver(logging.NewNop())
	sources, err := resolver.Resolve([]string{pls}, source.TranscodeSpec{Codec: source.CodecAAC}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got := paths(sources)
	want := []string{filepath.Join(root, "a.ogg"), filepath.Join(root, "b.ogg")}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("resolved %v, want %v", got, want)
	}
}

func TestResolveCopyExtensionOverride(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.flac"), "x")
	writeFile(t, filepath.Join(root, "recode.mp3"), "x")

	spec := source.TranscodeSpec{Codec: source.CodecVorbis, ForceTranscode: true, Quality: "5"}
	resolver := source.NewResolver(logging.NewNop())
	sources, err := resolver.Resolve([]string{root}, spec, []string{"flac"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("resolved %d sources, want 2", len(sources))
	}
	for _, s := range sources {
		switch s.Filetype() {
		case "flac":
			if !s.Spec.Codec.IsCopy() {
				t.Errorf("flac codec = %s, want copy", s.Spec.Codec)
			}
			if s.Spec.ForceTranscode {
				t.Error("copy override kept ForceTranscode")
			}
		case "mp3":
			if s.Spec.Codec != source.CodecVorbis {
				t.Errorf("mp3 codec = %s, want vorbis", s.Spec.Codec)
			}
		}
	}
}

func TestResolveIndependentInputCounts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "solo.mp3"), "x")
	writeFile(t, filepath.Join(root, "album", "t1.mp3"), "x")
	writeFile(t, filepath.Join(root, "album", "t2.mp3"), "x")

	resolver := source.NewResolver(logging.NewNop())
	sources, err := resolver.Resolve(
		[]string{filepath.Join(root, "solo.mp3"), filepath.Join(root, "album")},
		source.TranscodeSpec{Codec: source.CodecMP3}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(sources) != 3 {
		t.Fatalf("resolved %d sources, want 3", len(sources))
	}
	if sources[0].TotalFiles != 1 {
		t.Errorf("solo TotalFiles = %d, want 1", sources[0].TotalFiles)
	}
	if sources[1].TotalFiles != 2 || sources[2].TotalFiles != 2 {
		t.Errorf("album TotalFiles = (%d, %d), want (2, 2)",
			sources[1].TotalFiles, sources[2].TotalFiles)
	}
}

func TestReadPlaylistUnsupportedExtension(t *testing.T) {
	root := t.TempDir()
	bogus := filepath.Join(root, "list.txt")
	writeFile(t, bogus, "a.mp3\n")

	_, err := source.ReadPlaylist(bogus)
	var unsupported *source.UnsupportedFileError
	if !errors.As(err, &unsupported) {
		t.Fatalf("err = %v, want UnsupportedFileError", err)
	}
	if unsupported.Ext != ".txt" {
		t.Errorf("ext = %q, want .txt", unsupported.Ext)
	}
}

func TestParseCodec(t *testing.T) {
	if _, err := source.ParseCodec("opus"); err == nil {
		t.Error("ParseCodec accepted unsupported codec")
	}
	codec, err := source.ParseCodec(" MP3 ")
	if err != nil {
		t.Fatalf("ParseCodec: %v", err)
	}
	if codec != source.CodecMP3 {
		t.Errorf("codec = %s, want mp3", codec)
	}
}
