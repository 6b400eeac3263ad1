package pager

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageSplitsIntoFixedWidthPages(t *testing.T) {
	out := make([]byte, 5)

	n := Page(out, "abcdefghij", 0)
	require.Equal(t, 3, n)
	assert.Equal(t, "abcd", Text(out))
	assert.Equal(t, byte(0), out[4])

	Page(out, "abcdefghij", 1)
	assert.Equal(t, "efgh", Text(out))

	Page(out, "abcdefghij", 2)
	assert.Equal(t, "ij", Text(out))
}

func TestPageExactMultiple(t *testing.T) {
	out := make([]byte, 5)
	n := Page(out, "abcdefgh", 1)
	require.Equal(t, 2, n)
	assert.Equal(t, "efgh", Text(out))
}

func TestPageOutOfRangeLeavesBufferEmpty(t *testing.T) {
	out := []byte("xxxxx")
	n := Page(out, "abc", 3)
	require.Equal(t, 1, n)
	assert.Equal(t, "", Text(out))

	n = Page(out, "abc", -1)
	require.Equal(t, 1, n)
	assert.Equal(t, "", Text(out))
}

func TestPageEmptyValueAndZeroWidth(t *testing.T) {
	out := make([]byte, 8)
	assert.Equal(t, 1, Page(out, "", 0))
	assert.Equal(t, "", Text(out))

	assert.Equal(t, 0, Page(make([]byte, 1), "abc", 0))
	assert.Equal(t, 0, Page(nil, "abc", 0))
}

func TestPageNeverSplitsRunes(t *testing.T) {
	in := "añb€cd😀e"
	for width := utf8.UTFMax; width <= len(in)+1; width++ {
		out := make([]byte, width+1)
		n := Page(out, in, 0)
		require.GreaterOrEqual(t, n, (len(in)+width-1)/width)

		var b strings.Builder
		for p := 0; p < n; p++ {
			Page(out, in, p)
			chunk := Text(out)
			require.True(t, utf8.ValidString(chunk), "width %d page %d: %q", width, p, chunk)
			require.NotEmpty(t, chunk)
			b.WriteString(chunk)
		}
		assert.Equal(t, in, b.String(), "width %d", width)
	}
}

func TestPageRoundTripHex(t *testing.T) {
	in := strings.Repeat("0123456789abcdef", 8)
	out := make([]byte, 17)
	n := Page(out, in, 0)
	require.Equal(t, 8, n)

	var b strings.Builder
	for p := 0; p < n; p++ {
		Page(out, in, p)
		b.WriteString(Text(out))
	}
	assert.Equal(t, in, b.String())
}

func TestFormatTruncates(t *testing.T) {
	out := make([]byte, 6)
	assert.Equal(t, 5, Format(out, "Verify if this"))
	assert.Equal(t, "Verif", Text(out))

	assert.Equal(t, 3, Format(out, "abc"))
	assert.Equal(t, "abc", Text(out))

	// "ab€" is 5 bytes; a 4-byte buffer keeps "ab" rather than half of the euro sign.
	out = make([]byte, 4)
	assert.Equal(t, 2, Format(out, "ab€"))
	assert.Equal(t, "ab", Text(out))

	assert.Equal(t, 0, Format(nil, "abc"))
}

// The page count comes from the same walk that copies the page, whichever
// page is requested.
func TestPageCountIndependentOfRequestedPage(t *testing.T) {
	in := strings.Repeat("ab€", 7)
	out := make([]byte, 6)
	n := Page(out, in, 0)
	for p := -1; p <= n+1; p++ {
		assert.Equal(t, n, Page(out, in, p), "page %d", p)
	}
}
