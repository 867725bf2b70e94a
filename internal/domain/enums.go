package domain

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusSent          InvoiceStatus = "sent"
	InvoiceStatusUnpaid        InvoiceStatus = "unpaid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
	InvoiceStatusVoid          InvoiceStatus = "void"
)

// AllInvoiceStatuses lists every invoice status in display order.
var AllInvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft,
	InvoiceStatusSent,
	InvoiceStatusUnpaid,
	InvoiceStatusPartiallyPaid,
	InvoiceStatusPaid,
	InvoiceStatusOverdue,
	InvoiceStatusCancelled,
	InvoiceStatusVoid,
}

// Valid reports whether s is a known invoice status.
func (s InvoiceStatus) Valid() bool {
	for _, known := range AllInvoiceStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ProfileStatus represents the lifecycle state of a recurring profile.
type ProfileStatus string

const (
	ProfileStatusActive    ProfileStatus = "active"
	ProfileStatusPaused    ProfileStatus = "paused"
	ProfileStatusCompleted ProfileStatus = "completed"
)

// Valid reports whether s is a known profile status.
func (s ProfileStatus) Valid() bool {
	switch s {
	case ProfileStatusActive, ProfileStatusPaused, ProfileStatusCompleted:
		return true
	}
	return false
}

// Frequency is the generation interval of a recurring profile.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether f is a supported frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// DiscountMode selects how a discount value is interpreted.
type DiscountMode string

const (
	DiscountModePercentage DiscountMode = "percentage"
	DiscountModeFixed      DiscountMode = "fixed"
)

// AdditionalTaxKind is the withholding tax applied on top of GST.
type AdditionalTaxKind string

const (
	// AdditionalTaxTDS is deducted at source and reduces the invoice total.
	AdditionalTaxTDS AdditionalTaxKind = "tds"
	// AdditionalTaxTCS is collected at source and increases the invoice total.
	AdditionalTaxTCS AdditionalTaxKind = "tcs"
)

// SupplyType distinguishes same-state from cross-state supplies for GST.
type SupplyType string

const (
	SupplyIntraState SupplyType = "intra_state"
	SupplyInterState SupplyType = "inter_state"
)
