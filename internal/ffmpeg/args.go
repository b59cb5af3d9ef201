package ffmpeg

import (
	"path/filepath"
	"strings"

	"tonearm/internal/source"
	"tonearm/internal/template"
)

// Per-codec encoder options. The quality and bitrate knobs are placeholder
// templates so that unset values drop the whole option pair. Album art
// copying is disabled for AAC targets since it is unreliable with ffmpeg.
var codecOptions = map[source.Codec][]string{
	source.CodecMP3: {
		"-codec:a libmp3lame",
		"<-qscale:a +transcode_quality+> <-b:a +transcode_bitrate+k>",
		"-id3v2_version 3",
	},
	source.CodecAAC: {
		"-codec:v copy -codec:a aac",
		"<-vbr +transcode_quality+> <-b:a +transcode_bitrate+k>",
	},
	source.CodecFDKAAC: {
		"-codec:v copy -codec:a libfdk_aac",
		"<-vbr +transcode_quality+> <-b:a +transcode_bitrate+k>",
	},
	source.CodecVorbis: {
		"-codec:a libvorbis",
		"<-qscale:a +transcode_quality+> <-b:a +transcode_bitrate+k>",
	},
	source.CodecCopy: {},
}

// Ogg audio files attach metadata to the audio stream instead of the
// container, which makes a difference for ffmpeg.
var inputFileOptions = map[string][]string{
	"ogg": {"-map_metadata 0:s:0"},
}

// BuildArgs assembles the ffmpeg argument list for transcoding one file.
// Chapter data is dropped since it has no place in audio-only output.
func BuildArgs(inputPath, outputPath string, spec source.TranscodeSpec) ([]string, error) {
	args := []string{"-nostdin", "-i", inputPath, "-y", "-map_chapters", "-1"}
	resolver := template.MapResolver(map[string]string{
		"transcode_quality": spec.Quality,
		"transcode_bitrate": spec.Bitrate,
	})

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(inputPath)), ".")
	for _, part := range inputFileOptions[ext] {
		expanded, err := template.Expand(part, resolver)
		if err != nil {
			return nil, err
		}
		args = append(args, strings.Fields(expanded)...)
	}

	for _, part := range codecOptions[spec.Codec] {
		expanded, err := template.Expand(part, resolver)
		if err != nil {
			return nil, err
		}
		args = append(args, strings.Fields(expanded)...)
	}

	return append(args, outputPath), nil
}
