package services

import "testing"

func TestFormatMoney_Values(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		input  float64
		expect string
	}{
		{"zero", "R$", 0, "R$ 0,00"},
		{"small integer", "R$", 5, "R$ 5,00"},
		{"with decimals", "R$", 42.5, "R$ 42,50"},
		{"hundreds", "R$", 999.99, "R$ 999,99"},
		{"thousands", "R$", 1234.56, "R$ 1.234,56"},
		{"exact thousand", "R$", 1000, "R$ 1.000,00"},
		{"millions", "R$", 1234567.891, "R$ 1.234.567,89"},
		{"rounds half up", "R$", 283.505, "R$ 283,51"},
		{"negative", "R$", -250000.5, "-R$ 250.000,50"},
		{"negative rounds to zero", "R$", -0.001, "R$ 0,00"},
		{"other symbol", "US$", 13.5, "US$ 13,50"},
		{"no symbol", "", 270, "270,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMoney(tt.symbol, tt.input)
			if got != tt.expect {
				t.Errorf("FormatMoney(%q, %v) = %q, want %q", tt.symbol, tt.input, got, tt.expect)
			}
		})
	}
}

func TestApplyThousandsGrouping(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"5", "5"},
		{"999", "999"},
		{"1234", "1.234"},
		{"12345", "12.345"},
		{"123456", "123.456"},
		{"1234567", "1.234.567"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := applyThousandsGrouping(tt.input)
			if got != tt.expect {
				t.Errorf("applyThousandsGrouping(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestRoundMoney(t *testing.T) {
	if got := RoundMoney(13.4999); got != 13.5 {
		t.Errorf("RoundMoney(13.4999) = %v, want 13.5", got)
	}
	if got := RoundMoney(0.1 + 0.2); got != 0.3 {
		t.Errorf("RoundMoney(0.1+0.2) = %v, want 0.3", got)
	}
}
