package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LineItemRequest represents one line item in a request body.
type LineItemRequest struct {
	Description    string `json:"description" example:"Annual maintenance"`
	Quantity       string `json:"quantity" example:"2"`
	UnitRate       string `json:"unit_rate" example:"500.00"`
	TaxRatePercent string `json:"tax_rate_percent" example:"18"`
}

// DiscountRequest represents an invoice-level discount.
type DiscountRequest struct {
	Value string `json:"value" example:"10"`
	Mode  string `json:"mode" example:"percentage" enums:"percentage,fixed"`
}

// AdditionalTaxRequest represents a TDS or TCS withholding.
type AdditionalTaxRequest struct {
	Kind        string `json:"kind" example:"tds" enums:"tds,tcs"`
	RatePercent string `json:"rate_percent" example:"2"`
	Amount      string `json:"amount" example:"0"`
}

// ComputeRequest represents the compute totals request body.
type ComputeRequest struct {
	LineItems       []LineItemRequest     `json:"line_items"`
	Discount        *DiscountRequest      `json:"discount"`
	AdditionalTax   *AdditionalTaxRequest `json:"additional_tax"`
	Adjustment      string                `json:"adjustment" example:"-0.40"`
	PlaceOfSupply   string                `json:"place_of_supply" example:"Karnataka"`
	BillingAddress  string                `json:"billing_address" example:"12 MG Road, Bengaluru, Karnataka 560001"`
	ShippingAddress string                `json:"shipping_address" example:""`
}

// CreateInvoiceRequest represents the create invoice request body.
type CreateInvoiceRequest struct {
	ComputeRequest
	Number           string `json:"number" example:"INV-2024-0001"`
	CustomerName     string `json:"customer_name" binding:"required" example:"Acme Traders"`
	IssueDate        string `json:"issue_date" example:"2024-01-05"`
	DueDate          string `json:"due_date" example:"2024-02-04"`
	PaymentTermsDays int    `json:"payment_terms_days" example:"30"`
	SendImmediately  bool   `json:"send_immediately" example:"false"`
}

// TransitionRequest represents the invoice status change request body.
type TransitionRequest struct {
	Status          string `json:"status" binding:"required" example:"sent" enums:"draft,sent,unpaid,partially_paid,paid,overdue,cancelled,void"`
	ExpectedVersion *int   `json:"expected_version" example:"1"`
}

// CreateProfileRequest represents the create recurring profile request body.
type CreateProfileRequest struct {
	Name             string                `json:"name" binding:"required" example:"Monthly hosting"`
	CustomerName     string                `json:"customer_name" binding:"required" example:"Acme Traders"`
	BillingAddress   string                `json:"billing_address" example:"Sector 18, Noida, Uttar Pradesh"`
	ShippingAddress  string                `json:"shipping_address" example:""`
	PlaceOfSupply    string                `json:"place_of_supply" example:""`
	LineItems        []LineItemRequest     `json:"line_items" binding:"required"`
	Discount         *DiscountRequest      `json:"discount"`
	AdditionalTax    *AdditionalTaxRequest `json:"additional_tax"`
	Adjustment       string                `json:"adjustment" example:"0"`
	Frequency        string                `json:"frequency" binding:"required" example:"monthly" enums:"daily,weekly,monthly,yearly"`
	StartDate        string                `json:"start_date" binding:"required" example:"2024-01-31"`
	EndDate          string                `json:"end_date" example:"2024-12-31"`
	NeverExpires     bool                  `json:"never_expires" example:"false"`
	AutoSend         bool                  `json:"auto_send" example:"false"`
	PaymentTermsDays int                   `json:"payment_terms_days" example:"15"`
	InvoicePrefix    string                `json:"invoice_prefix" example:"HOST"`
}

// --- Response Types ---

// AmountInWordsResponse represents the amount-in-words response.
type AmountInWordsResponse struct {
	Amount string `json:"amount" example:"1180.50"`
	Words  string `json:"words" example:"One Thousand One Hundred and Eighty Rupees and Fifty Paise only"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
