package tags

import (
	"context"
	"os/exec"
	"testing"

	"tonearm/internal/logging"
)

func TestGetIsCaseInsensitive(t *testing.T) {
	tg := FromMap(map[string]string{"ARTIST": "Queen"})

	for _, name := range []string{"artist", "ARTIST", "Artist"} {
		value, ok := tg.Get(name)
		if !ok || value != "Queen" {
			t.Fatalf("Get(%q) = %q, %v", name, value, ok)
		}
	}
}

func TestGetMissingTag(t *testing.T) {
	tg := FromMap(map[string]string{"artist": "Queen"})
	if value, ok := tg.Get("composer"); ok || value != "" {
		t.Fatalf("expected missing tag, got %q, %v", value, ok)
	}
}

func TestMultiValuedTagsJoinWithComma(t *testing.T) {
	var tg Tags
	tg.add("genre", "Rock")
	tg.add("genre", "Pop")

	value, ok := tg.Get("genre")
	if !ok || value != "Rock,Pop" {
		t.Fatalf("expected joined value, got %q, %v", value, ok)
	}
}

func TestFFprobeReaderParsesFormatAndStreamTags(t *testing.T) {
	restore := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		payload := `{"streams":[{"codec_type":"audio","tags":{"TITLE":"Stream Title","composer":"Someone"}}],` +
			`"format":{"tags":{"artist":"Queen","title":"Format Title"}}}`
		return exec.CommandContext(ctx, "echo", payload)
	}
	t.Cleanup(func() { commandContext = restore })

	reader := NewFFprobeReader("ffprobe", logging.NewNop())
	tg := reader.Read(context.Background(), "/music/song.ogg")

	if value, _ := tg.Get("artist"); value != "Queen" {
		t.Fatalf("unexpected artist: %q", value)
	}
	// Format-level tags win over stream-level duplicates.
	if value, _ := tg.Get("title"); value != "Format Title" {
		t.Fatalf("unexpected title: %q", value)
	}
	// Stream-only tags are still visible.
	if value, _ := tg.Get("composer"); value != "Someone" {
		t.Fatalf("unexpected composer: %q", value)
	}
}

func TestFFprobeReaderDegradesToEmptyTags(t *testing.T) {
	restore := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "false")
	}
	t.Cleanup(func() { commandContext = restore })

	reader := NewFFprobeReader("", logging.NewNop())
	tg := reader.Read(context.Background(), "/music/broken.mp3")
	if len(tg.Names()) != 0 {
		t.Fatalf("expected empty tags, got %v", tg.Names())
	}
}
