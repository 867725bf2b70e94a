package commands_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billkit/internal/commands"
	"billkit/internal/domain"
)

func runBillctl(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWords(t *testing.T) {
	out, err := runBillctl(t, "", "words", "101000.50")
	require.NoError(t, err)
	assert.Equal(t, "One Lakh One Thousand Rupees and Fifty Paise only\n", out)
}

func TestWords_InvalidAmount(t *testing.T) {
	_, err := runBillctl(t, "", "words", "ten")
	require.Error(t, err)
}

const interStateInvoice = `{
  "line_items": [{"description": "Hosting", "quantity": "1", "unit_rate": "1000", "tax_rate_percent": "18"}],
  "place_of_supply": "Sector 62, Noida, Uttar Pradesh"
}`

func TestTotals_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.json")
	require.NoError(t, os.WriteFile(path, []byte(interStateInvoice), 0o644))

	out, err := runBillctl(t, "", "totals", "-f", path)
	require.NoError(t, err)

	var totals domain.InvoiceTotals
	require.NoError(t, json.Unmarshal([]byte(out), &totals))
	assert.Equal(t, domain.SupplyInterState, totals.SupplyType)
	assert.Equal(t, "180", totals.IGST.String())
	assert.Equal(t, "1180", totals.Total.String())
}

func TestTotals_SellerStateFlag(t *testing.T) {
	out, err := runBillctl(t, interStateInvoice, "totals", "-f", "-", "--seller-state", "09")
	require.NoError(t, err)

	var totals domain.InvoiceTotals
	require.NoError(t, json.Unmarshal([]byte(out), &totals))
	assert.Equal(t, domain.SupplyIntraState, totals.SupplyType)
	assert.Equal(t, "90", totals.CGST.String())
	assert.Equal(t, "90", totals.SGST.String())
}

func TestTotals_StrictRejectsUnknownPlace(t *testing.T) {
	in := `{"line_items": [{"quantity": "1", "unit_rate": "100"}], "place_of_supply": "Atlantis"}`
	_, err := runBillctl(t, in, "totals", "-f", "-", "--strict")
	assert.True(t, errors.Is(err, domain.ErrUnresolvableJurisdiction))
}

func TestTotals_FileRequired(t *testing.T) {
	_, err := runBillctl(t, "", "totals")
	require.Error(t, err)
}

func TestSchedule_MonthEnd(t *testing.T) {
	out, err := runBillctl(t, "", "schedule", "--start", "2024-01-31", "--frequency", "monthly", "--count", "4")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31\n2024-02-29\n2024-03-31\n2024-04-30\n", out)
}

func TestSchedule_InvalidFrequency(t *testing.T) {
	_, err := runBillctl(t, "", "schedule", "--start", "2024-01-31", "--frequency", "hourly")
	assert.True(t, errors.Is(err, domain.ErrInvalidFrequency))
}

func TestSchedule_InvalidStart(t *testing.T) {
	_, err := runBillctl(t, "", "schedule", "--start", "31/01/2024")
	assert.True(t, errors.Is(err, domain.ErrInvalidDate))
}
