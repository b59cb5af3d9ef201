package playlist

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

const fileURIPrefix = "file://"

// Name derives a playlist's display name from its file path: the basename
// without extension.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// decodeEntry strips a file:// URI prefix and percent-decodes the remainder.
// Plain paths pass through untouched.
func decodeEntry(entry string) string {
	if !strings.HasPrefix(entry, fileURIPrefix) {
		return entry
	}
	trimmed := entry[len(fileURIPrefix):]
	decoded, err := url.PathUnescape(trimmed)
	if err != nil {
		return trimmed
	}
	return decoded
}

// ExtractM3U reads an M3U or M3U8 playlist. Every line not beginning with
// '#' is a path; blank and whitespace-only lines are ignored. Entries keep
// their file order.
func ExtractM3U(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		paths = append(paths, decodeEntry(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read m3u playlist: %w", err)
	}
	return paths, nil
}

var plsFilePattern = regexp.MustCompile(`^File[0-9]+=(.*)$`)

// ExtractPLS reads a PLS playlist. Lines matching FileN=<path> contribute
// their path; entries are taken in file-line order, not re-sorted by N.
func ExtractPLS(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := plsFilePattern.FindStringSubmatch(scanner.Text())
		if m == nil || strings.TrimSpace(m[1]) == "" {
			continue
		}
		paths = append(paths, decodeEntry(m[1]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read pls playlist: %w", err)
	}
	return paths, nil
}
