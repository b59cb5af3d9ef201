package playlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
)

// WriteM3U writes an M3U playlist: one audio path per line with CRLF line
// endings. With utf8 false the file is encoded as Latin-1, as the original
// .m3u format expects; content that cannot be represented in Latin-1 yields
// an error with a user-facing remediation message instead of a raw encoding
// failure.
func WriteM3U(path string, audioFiles []string, utf8 bool) error {
	if len(audioFiles) == 0 {
		return nil
	}

	var body strings.Builder
	for _, file := range audioFiles {
		body.WriteString(file)
		body.WriteString("\r\n")
	}

	data := []byte(body.String())
	if !utf8 {
		encoded, err := charmap.ISO8859_1.NewEncoder().Bytes(data)
		if err != nil {
			return fmt.Errorf(
				"m3u playlist %q could not be written using latin-1 encoding, which the format requires; use the .m3u8 format instead, or force UTF-8 output (non-standard, but accepted by many players): %w",
				path, err)
		}
		data = encoded
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write m3u playlist: %w", err)
	}
	return nil
}

var titleCaser = cases.Title(language.Und)

// WritePLS writes a PLS playlist with 1-based TitleN/FileN pairs, an entry
// count and a capitalized X-Gnome-Title derived from the playlist filename.
func WritePLS(path string, audioFiles []string) error {
	if len(audioFiles) == 0 {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pls playlist: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, "[playlist]")
	for i, audioFile := range audioFiles {
		base := filepath.Base(audioFile)
		title := strings.TrimSuffix(base, filepath.Ext(base))
		fmt.Fprintf(w, "Title%d=%s\n", i+1, title)
		fmt.Fprintf(w, "File%d=%s\n", i+1, audioFile)
	}
	fmt.Fprintf(w, "NumberOfEntries=%d\n", len(audioFiles))
	fmt.Fprintf(w, "X-Gnome-Title=%s\n", titleCaser.String(Name(path)))
	fmt.Fprintln(w, "Version=2")

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write pls playlist: %w", err)
	}
	return nil
}
