package domain

// ChannelKind identifies an outbound notification channel.
type ChannelKind string

const (
	ChannelWebhook  ChannelKind = "webhook"
	ChannelTelegram ChannelKind = "telegram"
)

func (k ChannelKind) String() string { return string(k) }

func (k ChannelKind) IsValid() bool {
	switch k {
	case ChannelWebhook, ChannelTelegram:
		return true
	}
	return false
}

// Other returns the opposite channel, used as the fallback target.
func (k ChannelKind) Other() ChannelKind {
	if k == ChannelTelegram {
		return ChannelWebhook
	}
	return ChannelTelegram
}

// MarkupMode selects how chat messages are escaped.
type MarkupMode string

const (
	MarkupMarkdownV2 MarkupMode = "markdownv2"
	MarkupHTML       MarkupMode = "html"
)

func (m MarkupMode) String() string { return string(m) }

func (m MarkupMode) IsValid() bool {
	switch m {
	case MarkupMarkdownV2, MarkupHTML:
		return true
	}
	return false
}

// DeliveryOutcome is the result label of one channel attempt.
type DeliveryOutcome string

const (
	OutcomeDelivered     DeliveryOutcome = "delivered"
	OutcomeFailed        DeliveryOutcome = "failed"
	OutcomeNotConfigured DeliveryOutcome = "not_configured"
)

func (o DeliveryOutcome) String() string { return string(o) }
