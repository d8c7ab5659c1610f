package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/interalchemy/rewilding/pkg/sanitizer"
)

func TestSingleLine(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Ana":                          "Ana",
		"  Ana   Li ":                  "Ana Li",
		"Ana\r\nBcc: evil@example.com": "Ana Bcc: evil@example.com",
		"Ana Li":                  "Ana Li",
		"\t\n":                         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizer.SingleLine(in), "%q", in)
	}
}

func TestRemoveControlChars(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a\nb\tc", sanitizer.RemoveControlChars("a\x00\n\rb\tc\x7f"))
}

func TestMaxLength(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ñañ", sanitizer.MaxLength(3)("ñañaña"))
	assert.Equal(t, "ab", sanitizer.MaxLength(5)("ab"))
	assert.Empty(t, sanitizer.MaxLength(0)("ab"))
}

func TestComposeAndApply(t *testing.T) {
	t.Parallel()

	subjectName := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine, sanitizer.MaxLength(10))
	assert.Equal(t, "Ana Li Bcc", subjectName(" Ana\r\nLi\x00 Bcc: x"))

	assert.Equal(t, "X", sanitizer.Apply(" x ", sanitizer.Trim, strings.ToUpper))
	assert.Equal(t, 3, sanitizer.Apply(1, func(i int) int { return i + 2 }))
}
