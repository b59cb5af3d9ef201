// Package source resolves the command line's input list (audio files,
// directories, and playlists) into a flat, ordered list of audio sources
// annotated with positional context and a per-source transcode spec.
package source
