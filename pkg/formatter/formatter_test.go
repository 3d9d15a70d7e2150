package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `\*bold\*`, EscapeMarkdown("*bold*"))
	assert.Equal(t, `\[link\]\(url\)`, EscapeMarkdown("[link](url)"))
	assert.Equal(t, "plain text", EscapeMarkdown("plain text"))
	assert.Equal(t, "", EscapeMarkdown(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "lo...", Truncate("longer text", 5))
}
