package billing

import (
	"strings"

	"billkit/internal/domain"
)

// Supply is the outcome of place-of-supply classification.
type Supply struct {
	Type               domain.SupplyType
	SellerState        string
	PlaceOfSupplyState string
	// Defaulted is true when the place of supply fell back to DefaultStateCode.
	Defaulted bool
}

// ClassifySupply resolves the place of supply (the explicit address when
// non-blank, otherwise the fallback) and compares it to the seller state.
func ClassifySupply(sellerState, placeOfSupply, fallbackAddress string) Supply {
	address := placeOfSupply
	if strings.TrimSpace(address) == "" {
		address = fallbackAddress
	}
	code, matched := ResolveJurisdiction(address)

	supplyType := domain.SupplyInterState
	if code == sellerState {
		supplyType = domain.SupplyIntraState
	}
	return Supply{
		Type:               supplyType,
		SellerState:        sellerState,
		PlaceOfSupplyState: code,
		Defaulted:          !matched,
	}
}
