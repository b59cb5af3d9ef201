// Package ffmpeg drives the external encoder: version preflight, argument
// construction from per-codec option templates, and parallel execution of
// planned work units.
package ffmpeg
