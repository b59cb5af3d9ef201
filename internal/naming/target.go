package naming

import (
	"log/slog"
	"path/filepath"
	"strings"

	"tonearm/internal/logging"
	"tonearm/internal/pathclean"
	"tonearm/internal/source"
	"tonearm/internal/tags"
	"tonearm/internal/template"
)

// TargetPath renders the absolute target path for a source under destDir.
//
// The template is expanded with the source's variable resolver, sanitized,
// and trimmed. If the result is unusable (empty, ends in a separator, is an
// absolute path, or the template itself is malformed) the name falls back
// to `<parent-directory-basename>/<filename-without-extension>` with a
// warning, so every source always gets a target. The extension appended is
// the codec's canonical one, or the source's own for copy mode, skipping
// duplication when the rendered name already carries it.
func TargetPath(src source.AudioSource, t tags.Tags, tmpl, destDir string, logger *slog.Logger) string {
	result, err := template.Expand(tmpl, VariableResolver(src, t), template.DisallowSeparator())
	if err == nil {
		result = strings.TrimSpace(pathclean.Clean(result))
	}

	if err != nil || result == "" || strings.HasSuffix(result, "/") || filepath.IsAbs(result) {
		result = pathclean.Clean(filepath.Join(src.ParentBase(), src.Stem()))
		logger.Warn("template expansion produced a bad file path, using fallback naming",
			logging.String(logging.FieldSource, src.Path),
			logging.String("fallback", result))
	}

	ext := src.Filetype()
	if !src.Spec.Codec.IsCopy() {
		if canonical, ok := src.Spec.Codec.Extension(); ok {
			ext = canonical
		}
	}
	if ext != "" && !strings.HasSuffix(result, "."+ext) {
		result += "." + ext
	}

	return filepath.Join(destDir, result)
}
