// Package money holds amounts as integer centavos. Localized strings such
// as "R$ 1.234,56" only exist at the edges: ParseBRL ingests legacy rows,
// FormatBRL renders for display.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Cents is a BRL amount in centavos.
type Cents int64

var ErrInvalidAmount = errors.New("invalid amount")

// ParseBRL parses a Brazilian-formatted currency string ("R$ 1.234,56",
// "1234,56", "R$97,00") into centavos. The currency symbol and thousands
// separators are optional; the decimal part, when present, must have
// exactly two digits.
func ParseBRL(s string) (Cents, error) {
	v := strings.TrimSpace(s)
	neg := strings.HasPrefix(v, "-")
	v = strings.TrimPrefix(v, "-")
	v = strings.TrimPrefix(strings.TrimSpace(v), "R$")
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, ErrInvalidAmount
	}

	whole := v
	frac := "00"
	if i := strings.LastIndexByte(v, ','); i >= 0 {
		whole, frac = v[:i], v[i+1:]
		if len(frac) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
	}
	whole = strings.ReplaceAll(whole, ".", "")
	if whole == "" {
		whole = "0"
	}

	reais, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	total := Cents(reais*100 + cents)
	if neg {
		total = -total
	}
	return total, nil
}

// FormatBRL renders centavos as "R$ 1.234,56".
func FormatBRL(c Cents) string {
	neg := c < 0
	if neg {
		c = -c
	}

	reais := int64(c) / 100
	cents := int64(c) % 100

	digits := strconv.FormatInt(reais, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), cents)
}

// Reais returns the amount as a float for presentation-only consumers.
func (c Cents) Reais() float64 {
	return float64(c) / 100
}
