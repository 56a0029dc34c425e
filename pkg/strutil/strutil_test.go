package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpaces(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", NormalizeSpaces("  hello \t  world \n"))
	assert.Equal(t, "", NormalizeSpaces("   "))
}

func TestMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcdefgh", "abcd***"},
		{"abcdefghijklmn", "abcd***klmn"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mask(tt.in), "input=%q", tt.in)
	}
}

func TestStripHTMLTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bad Gateway & retry", StripHTMLTags("<html><body><h1>Bad Gateway</h1> &amp; retry</body></html>"))
	assert.Equal(t, "3 < 5", StripHTMLTags("3 < 5"))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "상품명", Truncate("상품명", 3))
	assert.Equal(t, "상품...", Truncate("상품명", 2))
	assert.Equal(t, "", Truncate("abc", 0))
}
