package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats amount with the given currency symbol in Brazilian
// notation: dot thousands separator, comma decimal separator and exactly
// two decimal places (e.g. "R$ 1.234,56"). Halves round away from zero.
func FormatMoney(symbol string, amount float64) string {
	d := decimal.NewFromFloat(amount)
	negative := d.IsNegative()
	raw := d.Abs().StringFixed(2)

	parts := strings.SplitN(raw, ".", 2)
	result := applyThousandsGrouping(parts[0]) + "," + parts[1]
	if symbol != "" {
		result = symbol + " " + result
	}
	if negative && raw != "0.00" {
		result = "-" + result
	}
	return result
}

// RoundMoney rounds amount to cents.
func RoundMoney(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// applyThousandsGrouping inserts a dot every three digits from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
