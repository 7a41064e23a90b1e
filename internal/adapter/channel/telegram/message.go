package telegram

import (
	"strings"
	"time"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

const (
	header      = "📥 Новая заявка с сайта"
	placeholder = "-"
)

// FormatMessage renders lead as an escaped multi-line message no longer
// than maxRunes.
func FormatMessage(m Markup, lead domain.Lead, maxRunes int) string {
	var b strings.Builder

	line := func(label, value string) {
		b.WriteString(m.Escape(label + ": " + value))
		b.WriteByte('\n')
	}

	b.WriteString(m.Bold(m.Escape(header)))
	b.WriteByte('\n')
	line("ID", lead.ExternalID.String())
	line("Дата", lead.ReceivedAt.UTC().Format(time.DateTime)+" UTC")
	line("Имя", orPlaceholder(lead.Name))
	line("Телефон", lead.Phone)
	line("Текст", orPlaceholder(lead.Message))
	line("Источник", lead.Source)
	if topic := lead.Topic(); topic != "" {
		line("Категория/проблема", topic)
	}
	if lead.ClientIP != "" {
		line("IP", lead.ClientIP)
	}
	if lead.UserAgent != "" {
		line("UA", lead.UserAgent)
	}

	return Truncate(m, strings.TrimRight(b.String(), "\n"), maxRunes)
}

func orPlaceholder(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return placeholder
	}
	return *s
}
