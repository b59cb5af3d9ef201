package ffmpeg

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"tonearm/internal/logging"
	"tonearm/internal/plan"
	"tonearm/internal/source"
)

func stubCommand(t *testing.T, name string, args ...string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, _ string, _ ...string) *exec.Cmd {
		return exec.CommandContext(ctx, name, args...)
	}
	t.Cleanup(func() { commandContext = original })
}

func TestBuildArgsMP3WithQuality(t *testing.T) {
	spec := source.TranscodeSpec{Codec: source.CodecMP3, Quality: "6"}
	args, err := BuildArgs("/in/a.flac", "/out/a.mp3", spec)
	if err != nil {
		t.Fatalf("BuildArgs: %v", err)
	}
	want := []string{
		"-nostdin", "-i", "/in/a.flac", "-y", "-map_chapters", "-1",
		"-codec:a", "libmp3lame", "-qscale:a", "6", "-id3v2_version", "3",
		"/out/a.mp3",
	}
	if strings.Join(args, " ") != strings.Join(want, " ") {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestBuildArgsBitrateOnly(t *testing.T) {
	spec := source.TranscodeSpec{Codec: source.CodecVorbis, Bitrate: "192"}
	args, err := BuildArgs("/in/a.flac", "/out/a.ogg", spec)
	if err != nil {
		t.Fatalf("BuildArgs: %v", err)
	}
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-b:a 192k") {
		t.Errorf("args missing bitrate option: %v", args)
	}
	if strings.Contains(joined, "-qscale:a") {
		t.Errorf("args carry quality option without a quality value: %v", args)
	}
}

func TestBuildArgsOggInputMapsStreamMetadata(t *testing.T) {
	spec := source.TranscodeSpec{Codec: source.CodecMP3}
	args, err := BuildArgs("/in/a.OGG", "/out/a.mp3", spec)
	if err != nil {
		t.Fatalf("BuildArgs: %v", err)
	}
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-map_metadata 0:s:0") {
		t.Errorf("ogg input did not map stream metadata: %v", args)
	}
}

func TestBuildArgsCopy(t *testing.T) {
	args, err := BuildArgs("/in/a.flac", "/out/a.flac", source.TranscodeSpec{Codec: source.CodecCopy})
	if err != nil {
		t.Fatalf("BuildArgs: %v", err)
	}
	want := []string{"-nostdin", "-i", "/in/a.flac", "-y", "-map_chapters", "-1", "/out/a.flac"}
	if strings.Join(args, " ") != strings.Join(want, " ") {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestCheckVersion(t *testing.T) {
	stubCommand(t, "echo", "ffmpeg version 6.1.1-test Copyright (c) 2000-2023")
	version, err := CheckVersion(context.Background(), "echo")
	if err != nil {
		t.Fatalf("CheckVersion: %v", err)
	}
	if version != "6.1.1-test" {
		t.Errorf("version = %q, want 6.1.1-test", version)
	}
}

func TestCheckVersionMissingBinary(t *testing.T) {
	_, err := CheckVersion(context.Background(), "tonearm-no-such-encoder")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("err = %v, want CommandError", err)
	}
}

func TestCheckVersionUnparseableOutput(t *testing.T) {
	stubCommand(t, "echo", "not an encoder banner")
	_, err := CheckVersion(context.Background(), "echo")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("err = %v, want CommandError", err)
	}
}

func TestRunnerCopiesWithoutEncoder(t *testing.T) {
	dest := t.TempDir()
	srcDir := t.TempDir()
	srcPath := filepath.Join(srcDir, "song.mp3")
	if err := os.WriteFile(srcPath, []byte("audio-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	units := []plan.WorkUnit{
		{
			Source: source.AudioSource{
				Path: srcPath,
				Spec: source.TranscodeSpec{Codec: source.CodecMP3},
			},
			Status:     plan.StatusReady,
			TargetPath: filepath.Join(dest, "album", "song.mp3"),
		},
		{
			Source:     source.AudioSource{Path: "/nope.flac"},
			Status:     plan.StatusSkippedNameCollision,
			TargetPath: filepath.Join(dest, "album", "song.mp3"),
		},
	}

	runner := NewRunner("", 2, logging.NewNop())
	done, err := runner.Run(context.Background(), dest, units)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if done[0].Status != plan.StatusCompleted {
		t.Errorf("ready unit status = %s, want COMPLETED", done[0].Status)
	}
	if done[1].Status != plan.StatusSkippedNameCollision {
		t.Errorf("skipped unit status changed to %s", done[1].Status)
	}
	copied, err := os.ReadFile(done[0].TargetPath)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(copied) != "audio-bytes" {
		t.Errorf("target content = %q", copied)
	}
	if _, err := os.Stat(filepath.Join(dest, lockFileName)); !os.IsNotExist(err) {
		t.Error("lock file left behind after run")
	}
}

func TestRunnerMarksEncoderFailure(t *testing.T) {
	dest := t.TempDir()
	srcDir := t.TempDir()
	srcPath := filepath.Join(srcDir, "song.flac")
	if err := os.WriteFile(srcPath, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	stubCommand(t, "false")

	units := []plan.WorkUnit{{
		Source: source.AudioSource{
			Path: srcPath,
			Spec: source.TranscodeSpec{Codec: source.CodecVorbis},
		},
		Status:     plan.StatusReady,
		TargetPath: filepath.Join(dest, "song.ogg"),
	}}

	done, err := NewRunner("", 1, logging.NewNop()).Run(context.Background(), dest, units)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if done[0].Status != plan.StatusFailedFFmpeg {
		t.Errorf("status = %s, want FAILED_FFMPEG", done[0].Status)
	}
}

func TestRunnerForceTranscodeBypassesCopy(t *testing.T) {
	unit := plan.WorkUnit{Source: source.AudioSource{
		Path: "/m/a.mp3",
		Spec: source.TranscodeSpec{Codec: source.CodecMP3, ForceTranscode: true},
	}}
	runner := NewRunner("", 1, logging.NewNop())
	if runner.shouldCopy(unit) {
		t.Error("force-transcode unit classified as copy")
	}

	unit.Source.Spec.ForceTranscode = false
	if !runner.shouldCopy(unit) {
		t.Error("same-format unit not classified as copy")
	}
}
