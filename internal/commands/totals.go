package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"billkit/internal/billing"
	"billkit/internal/domain"
)

// totalsFile is the JSON document read by `billctl totals`.
type totalsFile struct {
	LineItems       []domain.LineItem     `json:"line_items"`
	Discount        *domain.Discount      `json:"discount"`
	AdditionalTax   *domain.AdditionalTax `json:"additional_tax"`
	Adjustment      decimal.Decimal       `json:"adjustment"`
	PlaceOfSupply   string                `json:"place_of_supply"`
	BillingAddress  string                `json:"billing_address"`
	ShippingAddress string                `json:"shipping_address"`
}

func newTotalsCommand() *cobra.Command {
	var file string
	var sellerState string
	var strict bool

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Compute invoice totals from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening %s: %w", file, err)
				}
				defer f.Close()
				r = f
			}

			policy := billing.JurisdictionPolicyDefault
			if strict {
				policy = billing.JurisdictionPolicyReject
			}
			return runTotals(r, cmd.OutOrStdout(), sellerState, policy)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "invoice JSON file, or - for stdin (required)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().StringVar(&sellerState, "seller-state", billing.LegacySellerState, "two-digit GST state code of the seller")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the place of supply cannot be resolved")

	return cmd
}

func runTotals(r io.Reader, w io.Writer, sellerState string, policy billing.JurisdictionPolicy) error {
	var in totalsFile
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return fmt.Errorf("decoding invoice: %w", err)
	}

	fallback := in.ShippingAddress
	if fallback == "" {
		fallback = in.BillingAddress
	}
	var discount domain.Discount
	if in.Discount != nil {
		discount = *in.Discount
	}

	totals, err := billing.ComputeTotals(billing.TotalsInput{
		LineItems:       in.LineItems,
		Discount:        discount,
		AdditionalTax:   in.AdditionalTax,
		Adjustment:      in.Adjustment,
		SellerState:     sellerState,
		PlaceOfSupply:   in.PlaceOfSupply,
		FallbackAddress: fallback,
		Policy:          policy,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(totals)
}
