package helpers

import "strings"

// FirstNonEmpty returns the first argument that is not blank after trimming,
// trimmed. Used to pick stderr over stdout for diagnostics.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
