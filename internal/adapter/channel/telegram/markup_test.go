package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

func TestNewMarkup(t *testing.T) {
	t.Parallel()

	md, err := NewMarkup(domain.MarkupMarkdownV2)
	require.NoError(t, err)
	assert.Equal(t, "MarkdownV2", md.ParseMode())

	h, err := NewMarkup(domain.MarkupHTML)
	require.NoError(t, err)
	assert.Equal(t, "HTML", h.ParseMode())

	_, err = NewMarkup("Markdown")
	assert.Error(t, err)
}

func TestMarkdownV2_Escape(t *testing.T) {
	t.Parallel()

	m := markdownV2{}
	for _, c := range "_*[]()~`>#+-=|{}.!" {
		got := m.Escape(string(c))
		assert.Equal(t, `\`+string(c), got, "char %q", c)
	}

	assert.Equal(t, `a\\b`, m.Escape(`a\b`))
	assert.Equal(t, `\+7 \(900\) 123\-45\-67`, m.Escape("+7 (900) 123-45-67"))
	assert.Equal(t, "Привет, мир", m.Escape("Привет, мир"))
}

func TestHTML_Escape(t *testing.T) {
	t.Parallel()

	m := htmlMarkup{}
	assert.Equal(t, "&lt;b&gt;x&lt;/b&gt; &amp; &#34;q&#34; &#39;s&#39;", m.Escape(`<b>x</b> & "q" 's'`))
	assert.Equal(t, "+7 (900)", m.Escape("+7 (900)"))
}

func TestTruncate_ShortUnchanged(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", Truncate(markdownV2{}, "hello", 5))
}

func TestTruncate_CountsRunes(t *testing.T) {
	t.Parallel()

	s := strings.Repeat("ж", 1000)
	got := Truncate(htmlMarkup{}, s, 800)

	assert.Equal(t, 800, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, ellipsis))
	assert.True(t, utf8.ValidString(got))
}

func TestTruncate_MarkdownV2NoDanglingBackslash(t *testing.T) {
	t.Parallel()

	m := markdownV2{}
	escaped := m.Escape(strings.Repeat(".", 100)) // "\.\.\." ...

	for limit := 2; limit < 40; limit++ {
		got := Truncate(m, escaped, limit)
		body := strings.TrimSuffix(got, ellipsis)
		trailing := len(body) - len(strings.TrimRight(body, `\`))
		assert.Equal(t, 0, trailing%2, "limit %d leaves a dangling escape: %q", limit, got)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), limit)
	}
}

func TestTruncate_MarkdownV2KeepsEscapedBackslash(t *testing.T) {
	t.Parallel()

	// `ab\\` is an escaped backslash and must survive intact.
	got := Truncate(markdownV2{}, `ab\\cdef`, 5)
	assert.Equal(t, `ab\\`+ellipsis, got)
}

func TestTruncate_HTMLNoHalfEntity(t *testing.T) {
	t.Parallel()

	m := htmlMarkup{}
	escaped := m.Escape(strings.Repeat("<&>", 50))

	for limit := 2; limit < 60; limit++ {
		got := Truncate(m, escaped, limit)
		body := strings.TrimSuffix(got, ellipsis)
		if i := strings.LastIndexByte(body, '&'); i >= 0 {
			assert.Contains(t, body[i:], ";", "limit %d leaves a half entity: %q", limit, got)
		}
		assert.LessOrEqual(t, utf8.RuneCountInString(got), limit)
	}
}

func TestTruncate_HTMLNoHalfTag(t *testing.T) {
	t.Parallel()

	got := Truncate(htmlMarkup{}, "text <b>bold</b>", 8)
	assert.Equal(t, "text "+ellipsis, got)
}
