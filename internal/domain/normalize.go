package domain

import (
	"regexp"
	"strings"
)

// phonePrefix is the country prefix every canonical phone starts with.
const phonePrefix = "+7"

var phonePattern = regexp.MustCompile(`^\+79\d{9}$`)

type phoneOptions struct {
	keepPrefixOnEmpty bool
}

// PhoneOption tunes NormalizePhone.
type PhoneOption func(*phoneOptions)

// KeepPrefixOnEmpty makes NormalizePhone return "+7" instead of "" when the
// input is non-empty but carries no digits. Form inputs use it as a typing
// anchor; the result never passes IsValidPhone.
func KeepPrefixOnEmpty() PhoneOption {
	return func(o *phoneOptions) { o.keepPrefixOnEmpty = true }
}

// NormalizePhone brings a user-typed phone number to the "+7XXXXXXXXXX" form:
//   - whitespace-only input yields ""
//   - every non-digit is dropped
//   - an 11-digit number starting with 7 or 8 has its trunk digit replaced by 7
//   - a leading 7 is treated as the country code and removed
//   - at most 10 subscriber digits are kept
//
// The result may be shorter than canonical; use IsValidPhone to check it.
func NormalizePhone(raw string, opts ...PhoneOption) string {
	var o phoneOptions
	for _, opt := range opts {
		opt(&o)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) == 0 {
		if o.keepPrefixOnEmpty {
			return phonePrefix
		}
		return ""
	}

	if len(digits) == 11 && (digits[0] == '8' || digits[0] == '7') {
		digits[0] = '7'
	}
	if digits[0] == '7' {
		digits = digits[1:]
	}
	if len(digits) > 10 {
		digits = digits[:10]
	}

	return phonePrefix + string(digits)
}

// IsValidPhone reports whether value is a canonical mobile number +79XXXXXXXXX.
func IsValidPhone(value string) bool {
	return phonePattern.MatchString(value)
}

// MaskPhone hides all but the last four digits, for logs.
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return "***"
	}
	return "***" + phone[len(phone)-4:]
}

// TrimOrNil trims s and returns nil when nothing is left.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
