package formatter

import "strings"

// EscapeMarkdown escapes characters that Reddit markdown treats specially,
// so quoted tweet captions render verbatim inside the comment body.
func EscapeMarkdown(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '*', '_', '[', ']', '(', ')', '~', '`', '>', '#', '^', '|':
			sb.WriteRune('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Truncate shortens s to at most max runes, appending an ellipsis when it cut
// anything off.
func Truncate(s string, max int) string {
	if max <= 3 {
		max = 3
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
