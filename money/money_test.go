package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBRL(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"R$ 97,00", 9700},
		{"R$ 1.234,56", 123456},
		{"R$97,00", 9700},
		{"1234,56", 123456},
		{"97", 9700},
		{"R$ 0,09", 9},
		{"-R$ 10,50", -1050},
	}

	for _, c := range cases {
		got, err := ParseBRL(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestParseBRLInvalid(t *testing.T) {
	for _, in := range []string{"", "R$", "abc", "R$ 1,2", "R$ 1,234", "1,2x"} {
		_, err := ParseBRL(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

// The legacy payment rows carried localized strings. Summing the two
// canonical samples must come out to exactly 1331.56.
func TestParseBRLSum(t *testing.T) {
	var total Cents
	for _, s := range []string{"R$ 97,00", "R$ 1.234,56"} {
		v, err := ParseBRL(s)
		require.NoError(t, err)
		total += v
	}

	assert.Equal(t, Cents(133156), total)
	assert.Equal(t, 1331.56, total.Reais())
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 97,00", FormatBRL(9700))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(123456))
	assert.Equal(t, "R$ 0,09", FormatBRL(9))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(100000000))
	assert.Equal(t, "-R$ 10,50", FormatBRL(-1050))
}
