package tags

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"tonearm/internal/logging"
)

var commandContext = exec.CommandContext

// FFprobeReader reads tags by shelling out to ffprobe and decoding its JSON
// output. Ogg files attach tags to the audio stream rather than the
// container, so stream-level tag maps are merged in as well.
type FFprobeReader struct {
	binary string
	logger *slog.Logger
}

// NewFFprobeReader constructs a reader using the provided ffprobe binary
// name. An empty binary falls back to "ffprobe".
func NewFFprobeReader(binary string, logger *slog.Logger) *FFprobeReader {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	return &FFprobeReader{
		binary: binary,
		logger: logging.NewComponentLogger(logger, "tags"),
	}
}

type probeResult struct {
	Streams []struct {
		CodecType string            `json:"codec_type"`
		Tags      map[string]string `json:"tags"`
	} `json:"streams"`
	Format struct {
		Tags map[string]string `json:"tags"`
	} `json:"format"`
}

// Read inspects the file with ffprobe. Any failure is logged at warning
// level and degrades to empty Tags.
func (r *FFprobeReader) Read(ctx context.Context, path string) Tags {
	result, err := r.probe(ctx, path)
	if err != nil {
		r.logger.Warn("could not read tags",
			logging.String(logging.FieldSource, path),
			logging.Error(err))
		return Tags{}
	}

	merged := Tags{}
	for name, value := range result.Format.Tags {
		merged.add(name, value)
	}
	for _, stream := range result.Streams {
		if !strings.EqualFold(stream.CodecType, "audio") {
			continue
		}
		for name, value := range stream.Tags {
			if _, ok := merged.Get(name); ok {
				continue
			}
			merged.add(name, value)
		}
	}
	return merged
}

func (r *FFprobeReader) probe(ctx context.Context, path string) (probeResult, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return probeResult{}, fmt.Errorf("ffprobe inspect: empty path")
	}

	cmd := commandContext(ctx, r.binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return probeResult{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var result probeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return probeResult{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

var _ Reader = (*FFprobeReader)(nil)
