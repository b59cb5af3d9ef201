package naming

import (
	"fmt"
	"strconv"
	"strings"

	"tonearm/internal/playlist"
	"tonearm/internal/source"
	"tonearm/internal/tags"
	"tonearm/internal/template"
)

// VariableResolver builds the template resolver for one audio source. It
// maps the fixed variable vocabulary, case-insensitively, to values drawn
// from the source's tags, its filesystem path, and its positional context.
// Names outside the vocabulary fall back to a direct tag lookup. Bad
// numeric values and missing tags resolve to "no value", never an error.
func VariableResolver(src source.AudioSource, t tags.Tags) template.Resolver {
	return func(name string) (string, bool) {
		switch strings.ToLower(name) {
		case "a", "artist":
			return t.Get("artist")
		case "b", "album":
			return t.Get("album")
		case "t", "title":
			return t.Get("title")
		case "aa", "albumartist":
			return t.Get("albumartist")
		case "aaa", "albumartist_or_artist":
			if value, ok := t.Get("albumartist"); ok && value != "" {
				return value, true
			}
			return t.Get("artist")
		case "tn", "track", "tracknumber":
			return paddedNumerator(t, "tracknumber")
		case "tt", "tracktotal":
			if value, ok := t.Get("tracktotal"); ok && value != "" {
				return padNumeric(value)
			}
			value, ok := t.Get("tracknumber")
			if !ok {
				return "", false
			}
			i := strings.Index(value, "/")
			if i < 0 {
				return "", false
			}
			return padNumeric(value[i+1:])
		case "dn", "discnumber":
			return paddedNumerator(t, "discnumber")
		case "filename":
			return src.Basename(), true
		case "filename_noext":
			return src.Stem(), true
		case "parentdir_basename":
			return src.ParentBase(), true
		case "ext":
			return src.Filetype(), true
		case "filenumber":
			return zeropad(src.FileNumber, src.TotalFiles), true
		case "totalfiles":
			return strconv.Itoa(src.TotalFiles), true
		case "playlist_name":
			if src.Playlist == nil {
				return "", false
			}
			return playlist.Name(src.Playlist.File), true
		case "playlist_filenumber":
			if src.Playlist == nil {
				return "", false
			}
			return zeropad(src.Playlist.FileNumber, src.Playlist.TotalFiles), true
		case "playlist_totalfiles":
			if src.Playlist == nil {
				return "", false
			}
			return strconv.Itoa(src.Playlist.TotalFiles), true
		}
		return t.Get(name)
	}
}

// paddedNumerator reads a tag whose value may be "N" or "N/Total" and
// returns the numerator zero-padded to two digits.
func paddedNumerator(t tags.Tags, name string) (string, bool) {
	value, ok := t.Get(name)
	if !ok || value == "" {
		return "", false
	}
	if i := strings.Index(value, "/"); i >= 0 {
		value = value[:i]
	}
	return padNumeric(value)
}

func padNumeric(value string) (string, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%02d", n), true
}

// zeropad renders n padded with zeros to the decimal width of total.
func zeropad(n, total int) string {
	return fmt.Sprintf("%0*d", len(strconv.Itoa(total)), n)
}
