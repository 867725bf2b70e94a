package domain

import "errors"

var (
	ErrNotFound                   = errors.New("resource not found")
	ErrInvoiceNotFound            = errors.New("invoice not found")
	ErrProfileNotFound            = errors.New("recurring profile not found")
	ErrVersionConflict            = errors.New("record was modified concurrently")
	ErrInvalidTransition          = errors.New("status transition not allowed")
	ErrInvalidStatus              = errors.New("unknown status")
	ErrNegativeAmount             = errors.New("amount must not be negative")
	ErrInvalidTaxRate             = errors.New("tax rate must be between 0 and 100")
	ErrInvalidDiscount            = errors.New("invalid discount")
	ErrInvalidAdditionalTax       = errors.New("invalid additional tax")
	ErrAdditionalTaxAmountMissing = errors.New("additional tax kind set but amount is zero")
	ErrUnresolvableJurisdiction   = errors.New("place of supply could not be resolved to a state")
	ErrInvalidStateCode           = errors.New("invalid state code")
	ErrInvalidFrequency           = errors.New("unsupported recurrence frequency")
	ErrInvalidSchedule            = errors.New("invalid recurrence schedule")
	ErrInvalidDate                = errors.New("dates must use the YYYY-MM-DD format")
	ErrDuplicateInvoiceNumber     = errors.New("invoice number already exists")
	ErrDuplicateGeneration        = errors.New("invoice already generated for this profile and date")
)
