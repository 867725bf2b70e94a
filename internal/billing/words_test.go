package billing_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billkit/internal/billing"
)

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "Zero Rupees only"},
		{"1", "One Rupees only"},
		{"15", "Fifteen Rupees only"},
		{"20", "Twenty Rupees only"},
		{"99", "Ninety Nine Rupees only"},
		{"100", "One Hundred Rupees only"},
		{"101", "One Hundred and One Rupees only"},
		{"1000", "One Thousand Rupees only"},
		{"1180", "One Thousand One Hundred and Eighty Rupees only"},
		{"100000", "One Lakh Rupees only"},
		{"101000", "One Lakh One Thousand Rupees only"},
		{"1234567", "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven Rupees only"},
		{"10000000", "One Crore Rupees only"},
		{"99999999.99", "Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred and Ninety Nine Rupees and Ninety Nine Paise only"},
		{"0.50", "Zero Rupees and Fifty Paise only"},
		{"1180.05", "One Thousand One Hundred and Eighty Rupees and Five Paise only"},
		{"12.999", "Thirteen Rupees only"},
		{"1500000000", "One Hundred and Fifty Crore Rupees only"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, billing.AmountToWords(decimal.RequireFromString(tt.amount)), "AmountToWords(%s)", tt.amount)
	}
}

func TestAmountToWords_Negative(t *testing.T) {
	assert.Equal(t, "Minus Five Rupees only", billing.AmountToWords(decimal.NewFromInt(-5)))
	assert.Equal(t, "Zero Rupees only", billing.AmountToWords(decimal.RequireFromString("-0.001")))
}

func TestAmountToWords_RoundTrip(t *testing.T) {
	amounts := []string{
		"0", "1", "7", "15", "19", "40", "99", "100", "110", "999",
		"1000", "1001", "10010", "99999", "100000", "100001", "101000", "1234567",
		"9999999", "10000000", "10000001", "12345678.90", "99999999.99", "123456789.01",
		"999999999", "1000000000", "9999999999.99", "0.01", "0.99", "5.05",
	}
	for _, a := range amounts {
		amount := decimal.RequireFromString(a)
		words := billing.AmountToWords(amount)
		parsed, err := parseIndianWords(words)
		require.NoError(t, err, "parse %q", words)
		assert.True(t, amount.Equal(parsed), "%s -> %q -> %s", a, words, parsed)
	}
}

var wordValues = map[string]int64{
	"One": 1, "Two": 2, "Three": 3, "Four": 4, "Five": 5, "Six": 6, "Seven": 7,
	"Eight": 8, "Nine": 9, "Ten": 10, "Eleven": 11, "Twelve": 12, "Thirteen": 13,
	"Fourteen": 14, "Fifteen": 15, "Sixteen": 16, "Seventeen": 17, "Eighteen": 18,
	"Nineteen": 19, "Twenty": 20, "Thirty": 30, "Forty": 40, "Fifty": 50,
	"Sixty": 60, "Seventy": 70, "Eighty": 80, "Ninety": 90, "Zero": 0,
}

// parseIndianWords inverts AmountToWords for the round-trip test.
func parseIndianWords(s string) (decimal.Decimal, error) {
	s = strings.TrimSuffix(s, " only")
	rupeePart, paisePart, hasPaise := strings.Cut(s, " Rupees")
	rupees, err := parseInteger(rupeePart)
	if err != nil {
		return decimal.Zero, err
	}
	result := decimal.NewFromInt(rupees)
	if hasPaise && paisePart != "" {
		paiseWords := strings.TrimSuffix(strings.TrimPrefix(paisePart, " and "), " Paise")
		paise, err := parseInteger(paiseWords)
		if err != nil {
			return decimal.Zero, err
		}
		result = result.Add(decimal.New(paise, -2))
	}
	return result, nil
}

func parseInteger(s string) (int64, error) {
	var total, current int64
	for _, tok := range strings.Fields(s) {
		switch tok {
		case "and":
		case "Hundred":
			current *= 100
		case "Thousand":
			total += current * 1000
			current = 0
		case "Lakh":
			total += current * 100000
			current = 0
		case "Crore":
			total = (total + current) * 10000000
			current = 0
		default:
			v, ok := wordValues[tok]
			if !ok {
				return 0, assert.AnError
			}
			current += v
		}
	}
	return total + current, nil
}
