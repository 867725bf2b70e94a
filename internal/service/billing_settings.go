package service

import (
	"fmt"
	"strings"
	"time"

	"billkit/internal/billing"
	"billkit/internal/domain"
)

// BillingSettings carries the organisation's billing configuration into services.
type BillingSettings struct {
	SellerState          string
	JurisdictionPolicy   billing.JurisdictionPolicy
	UncheckedTransitions bool
}

const dateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q: %w", field, value, domain.ErrInvalidDate)
	}
	return t, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func fallbackAddress(shipping, billingAddr string) string {
	if strings.TrimSpace(shipping) != "" {
		return shipping
	}
	return billingAddr
}

func discountOf(d *domain.Discount) domain.Discount {
	if d == nil {
		return domain.Discount{}
	}
	return *d
}
