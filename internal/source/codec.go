package source

import (
	"fmt"
	"strings"
)

// Codec identifies a transcoding target. CodecCopy is the sentinel for
// copying the audio without re-encoding.
type Codec string

const (
	CodecMP3    Codec = "mp3"
	CodecAAC    Codec = "aac"
	CodecFDKAAC Codec = "fdkaac"
	CodecVorbis Codec = "vorbis"
	CodecCopy   Codec = "copy"
)

var allCodecs = []Codec{CodecMP3, CodecAAC, CodecFDKAAC, CodecVorbis, CodecCopy}

var codecExtensions = map[Codec]string{
	CodecMP3:    "mp3",
	CodecAAC:    "m4a",
	CodecFDKAAC: "m4a",
	CodecVorbis: "ogg",
}

// ParseCodec converts a string into a known Codec.
func ParseCodec(value string) (Codec, error) {
	normalized := Codec(strings.ToLower(strings.TrimSpace(value)))
	for _, codec := range allCodecs {
		if codec == normalized {
			return codec, nil
		}
	}
	return "", fmt.Errorf("unsupported codec %q", value)
}

// AllCodecs returns the supported codec names.
func AllCodecs() []Codec {
	cp := make([]Codec, len(allCodecs))
	copy(cp, allCodecs)
	return cp
}

// Extension returns the canonical file extension for the codec, without a
// leading dot. CodecCopy has no canonical extension; targets keep the
// source's own extension.
func (c Codec) Extension() (string, bool) {
	ext, ok := codecExtensions[c]
	return ext, ok
}

// IsCopy reports whether the codec is the copy sentinel.
func (c Codec) IsCopy() bool {
	return c == CodecCopy
}

// TranscodeSpec is the encoding directive attached to each audio source.
// Quality and Bitrate are orthogonal codec-specific knobs; either or both
// may be empty. A copy codec ignores both.
type TranscodeSpec struct {
	Codec          Codec
	ForceTranscode bool
	Quality        string
	Bitrate        string
}
