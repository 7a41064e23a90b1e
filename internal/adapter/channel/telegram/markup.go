package telegram

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

const ellipsis = "…"

// Markup escapes user text for one Bot API parse mode.
type Markup interface {
	// ParseMode is the parse_mode value sent with the message.
	ParseMode() string
	// Escape makes s safe to embed as literal text.
	Escape(s string) string
	// Bold wraps already escaped text.
	Bold(s string) string
	// trimDangling drops an escape sequence cut in half at the end of s.
	trimDangling(s string) string
}

// NewMarkup returns the strategy for mode.
func NewMarkup(mode domain.MarkupMode) (Markup, error) {
	switch mode {
	case domain.MarkupMarkdownV2:
		return markdownV2{}, nil
	case domain.MarkupHTML:
		return htmlMarkup{}, nil
	}
	return nil, fmt.Errorf("telegram: unknown markup %q", mode)
}

type markdownV2 struct{}

func (markdownV2) ParseMode() string { return tgbotapi.ModeMarkdownV2 }

// Escape prefixes every reserved character, including the backslash itself,
// with a backslash.
func (markdownV2) Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func (markdownV2) Bold(s string) string { return "*" + s + "*" }

func (markdownV2) trimDangling(s string) string {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	if n%2 == 1 {
		return s[:len(s)-1]
	}
	return s
}

type htmlMarkup struct{}

func (htmlMarkup) ParseMode() string { return tgbotapi.ModeHTML }

// Escape replaces & < > " ' with entities.
func (htmlMarkup) Escape(s string) string { return html.EscapeString(s) }

func (htmlMarkup) Bold(s string) string { return "<b>" + s + "</b>" }

func (htmlMarkup) trimDangling(s string) string {
	if i := strings.LastIndexByte(s, '&'); i >= 0 && !strings.Contains(s[i:], ";") {
		s = s[:i]
	}
	if i := strings.LastIndexByte(s, '<'); i >= 0 && !strings.Contains(s[i:], ">") {
		s = s[:i]
	}
	return s
}

// Truncate cuts an already escaped message to at most maxRunes runes,
// ending with an ellipsis when cut.
func Truncate(m Markup, s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 0 {
		return ""
	}
	cut := m.trimDangling(string(runes[:maxRunes-1]))
	return cut + ellipsis
}
