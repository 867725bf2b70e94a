package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is a single billable row on an invoice or recurring template.
type LineItem struct {
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitRate       decimal.Decimal `json:"unit_rate"`
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
}

// Amount returns quantity × unit rate.
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitRate)
}

// TaxAmount returns the GST on the line before any invoice-level discount.
func (li LineItem) TaxAmount() decimal.Decimal {
	return li.Amount().Mul(li.TaxRatePercent).Div(decimal.NewFromInt(100))
}

// LineItems is an ordered list of line items stored as JSONB.
type LineItems []LineItem

func (l LineItems) Value() (driver.Value, error) { return jsonValue(l) }
func (l *LineItems) Scan(src interface{}) error  { return jsonScan(src, l) }

// Discount is an invoice-level discount.
type Discount struct {
	Value decimal.Decimal `json:"value"`
	Mode  DiscountMode    `json:"mode"`
}

// IsZero reports whether the discount has no effect.
func (d Discount) IsZero() bool { return d.Value.IsZero() }

// AdditionalTax is a TDS or TCS withholding applied to the grand total.
// Amount is always a non-negative magnitude; Kind decides the sign.
type AdditionalTax struct {
	Kind        AdditionalTaxKind `json:"kind"`
	RatePercent decimal.Decimal   `json:"rate_percent"`
	Amount      decimal.Decimal   `json:"amount"`
}

func (a AdditionalTax) Value() (driver.Value, error) { return jsonValue(a) }
func (a *AdditionalTax) Scan(src interface{}) error  { return jsonScan(src, a) }

// TaxBreakdown holds the GST components of an invoice.
type TaxBreakdown struct {
	CGST decimal.Decimal `json:"cgst"`
	SGST decimal.Decimal `json:"sgst"`
	IGST decimal.Decimal `json:"igst"`
}

// Total returns cgst + sgst + igst.
func (t TaxBreakdown) Total() decimal.Decimal {
	return t.CGST.Add(t.SGST).Add(t.IGST)
}

// InvoiceTotals is the computed financial summary of an invoice.
type InvoiceTotals struct {
	SubTotal       decimal.Decimal `json:"sub_total"`
	TotalQuantity  decimal.Decimal `json:"total_quantity"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	TaxBreakdown

	SupplyType            SupplyType `json:"supply_type"`
	SellerState           string     `json:"seller_state"`
	PlaceOfSupplyState    string     `json:"place_of_supply_state"`
	JurisdictionDefaulted bool       `json:"jurisdiction_defaulted"`

	AdditionalTaxKind   AdditionalTaxKind `json:"additional_tax_kind,omitempty"`
	AdditionalTaxAmount decimal.Decimal   `json:"additional_tax_amount"`
	Adjustment          decimal.Decimal   `json:"adjustment"`
	Total               decimal.Decimal   `json:"total"`

	NegativeTotal                 bool   `json:"negative_total"`
	DiscountClamped               bool   `json:"discount_clamped"`
	DiscountAppliesAtInvoiceLevel bool   `json:"discount_applies_at_invoice_level"`
	AmountInWords                 string `json:"amount_in_words"`
}

func (t InvoiceTotals) Value() (driver.Value, error) { return jsonValue(t) }
func (t *InvoiceTotals) Scan(src interface{}) error  { return jsonScan(src, t) }

// Invoice is a single billing document.
type Invoice struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	Number          string          `db:"number" json:"number"`
	ProfileID       *uuid.UUID      `db:"profile_id" json:"profile_id,omitempty"`
	GenerationDate  *time.Time      `db:"generation_date" json:"generation_date,omitempty"`
	CustomerName    string          `db:"customer_name" json:"customer_name"`
	BillingAddress  string          `db:"billing_address" json:"billing_address"`
	ShippingAddress string          `db:"shipping_address" json:"shipping_address"`
	PlaceOfSupply   string          `db:"place_of_supply" json:"place_of_supply"`
	IssueDate       time.Time       `db:"issue_date" json:"issue_date"`
	DueDate         time.Time       `db:"due_date" json:"due_date"`
	LineItems       LineItems       `db:"line_items" json:"line_items"`
	DiscountValue   decimal.Decimal `db:"discount_value" json:"-"`
	DiscountMode    DiscountMode    `db:"discount_mode" json:"-"`
	AdditionalTax   *AdditionalTax  `db:"additional_tax" json:"additional_tax,omitempty"`
	Adjustment      decimal.Decimal `db:"adjustment" json:"adjustment"`
	Totals          InvoiceTotals   `db:"totals" json:"totals"`
	Status          InvoiceStatus   `db:"status" json:"status"`
	Version         int             `db:"version" json:"version"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// Discount returns the invoice-level discount.
func (i *Invoice) Discount() Discount {
	return Discount{Value: i.DiscountValue, Mode: i.DiscountMode}
}

// UUIDList is an ordered list of IDs stored as JSONB.
type UUIDList []uuid.UUID

func (l UUIDList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *UUIDList) Scan(src interface{}) error  { return jsonScan(src, l) }

// RecurringProfile is a template that periodically materialises invoices.
// GeneratedInvoices holds weak references to invoices owned by the invoice store.
type RecurringProfile struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	Name               string          `db:"name" json:"name"`
	CustomerName       string          `db:"customer_name" json:"customer_name"`
	BillingAddress     string          `db:"billing_address" json:"billing_address"`
	ShippingAddress    string          `db:"shipping_address" json:"shipping_address"`
	PlaceOfSupply      string          `db:"place_of_supply" json:"place_of_supply"`
	LineItems          LineItems       `db:"line_items" json:"line_items"`
	DiscountValue      decimal.Decimal `db:"discount_value" json:"-"`
	DiscountMode       DiscountMode    `db:"discount_mode" json:"-"`
	AdditionalTax      *AdditionalTax  `db:"additional_tax" json:"additional_tax,omitempty"`
	Adjustment         decimal.Decimal `db:"adjustment" json:"adjustment"`
	Frequency          Frequency       `db:"frequency" json:"frequency"`
	StartDate          time.Time       `db:"start_date" json:"start_date"`
	EndDate            *time.Time      `db:"end_date" json:"end_date,omitempty"`
	NeverExpires       bool            `db:"never_expires" json:"never_expires"`
	NextGenerationDate time.Time       `db:"next_generation_date" json:"next_generation_date"`
	GeneratedCount     int             `db:"generated_count" json:"generated_count"`
	GeneratedInvoices  UUIDList        `db:"generated_invoices" json:"generated_invoices"`
	Status             ProfileStatus   `db:"status" json:"status"`
	AutoSend           bool            `db:"auto_send" json:"auto_send"`
	PaymentTermsDays   int             `db:"payment_terms_days" json:"payment_terms_days"`
	InvoicePrefix      string          `db:"invoice_prefix" json:"invoice_prefix"`
	Version            int             `db:"version" json:"version"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updated_at"`
}

// Discount returns the template's invoice-level discount.
func (p *RecurringProfile) Discount() Discount {
	return Discount{Value: p.DiscountValue, Mode: p.DiscountMode}
}

// GenerationLogEntry records that a profile produced an invoice for a generation date.
type GenerationLogEntry struct {
	ProfileID      uuid.UUID `db:"profile_id" json:"profile_id"`
	GenerationDate time.Time `db:"generation_date" json:"generation_date"`
	InvoiceID      uuid.UUID `db:"invoice_id" json:"invoice_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func jsonScan(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported JSON source type %T", src)
	}
}
