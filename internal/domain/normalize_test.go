package domain

import "testing"

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trunk prefix 8", input: "89001234567", want: "+79001234567"},
		{name: "country code 7", input: "79001234567", want: "+79001234567"},
		{name: "already canonical", input: "+79001234567", want: "+79001234567"},
		{name: "formatted", input: "+7 (900) 123-45-67", want: "+79001234567"},
		{name: "formatted with 8", input: "8 900 123 45 67", want: "+79001234567"},
		{name: "ten digits", input: "9001234567", want: "+79001234567"},
		{name: "surrounding spaces", input: "  89001234567 ", want: "+79001234567"},
		{name: "too short", input: "123", want: "+7123"},
		{name: "extra digits cut", input: "+7900123456789", want: "+79001234567"},
		{name: "landline keeps shape", input: "84951234567", want: "+74951234567"},
		{name: "lone seven", input: "7", want: "+7"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace", input: "   ", want: ""},
		{name: "no digits", input: "abc", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone_KeepPrefixOnEmpty(t *testing.T) {
	t.Parallel()

	if got := NormalizePhone("+", KeepPrefixOnEmpty()); got != "+7" {
		t.Errorf("got %q, want +7", got)
	}
	if got := NormalizePhone("  ", KeepPrefixOnEmpty()); got != "" {
		t.Errorf("blank input: got %q, want empty", got)
	}
	if IsValidPhone(NormalizePhone("()", KeepPrefixOnEmpty())) {
		t.Error("typing anchor must not validate")
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"89001234567", "+7 900 123 45 67", "123", "9", "+7"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		if twice := NormalizePhone(once); twice != once {
			t.Errorf("NormalizePhone not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"+79001234567", true},
		{"+79999999999", true},
		{"+74951234567", false},
		{"+7900123456", false},
		{"+790012345678", false},
		{"79001234567", false},
		{"+7", false},
		{"", false},
		{" +79001234567", false},
	}
	for _, tt := range tests {
		if got := IsValidPhone(tt.input); got != tt.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMaskPhone(t *testing.T) {
	t.Parallel()

	if got := MaskPhone("+79001234567"); got != "***4567" {
		t.Errorf("MaskPhone = %q", got)
	}
	if got := MaskPhone("12"); got != "***" {
		t.Errorf("MaskPhone short = %q", got)
	}
}

func TestTrimOrNil(t *testing.T) {
	t.Parallel()

	s := func(v string) *string { return &v }

	if TrimOrNil(nil) != nil {
		t.Error("nil input should stay nil")
	}
	if TrimOrNil(s("   ")) != nil {
		t.Error("blank input should become nil")
	}
	if got := TrimOrNil(s("  Иван ")); got == nil || *got != "Иван" {
		t.Errorf("TrimOrNil = %v", got)
	}
}
