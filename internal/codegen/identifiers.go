package codegen

import (
	"path/filepath"
	"strings"
)

// sanitizeIdentifier derives a safe C identifier from an asset path: the
// last path segment without its extension, then every character outside
// [A-Za-z0-9_] replaced with '_' (§4.6 identifier sanitisation). Callers
// that already hold an author-given name should use it directly instead —
// this is for paths only.
func sanitizeIdentifier(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return sanitizeName(base)
}

// sanitizeName replaces every character outside [A-Za-z0-9_] with '_'.
func sanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
