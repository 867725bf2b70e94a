package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"billkit/internal/billing"
	"billkit/internal/domain"
	"billkit/internal/port"
	"billkit/internal/service"
	"billkit/mocks"
)

var today = time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC)

func newInvoiceService(repo *mocks.MockInvoiceRepo, settings service.BillingSettings) service.InvoiceService {
	if settings.SellerState == "" {
		settings.SellerState = "29"
	}
	return service.NewInvoiceService(repo, port.FixedClock{T: today}, settings, zap.NewNop())
}

func consultingItems() []domain.LineItem {
	return []domain.LineItem{{
		Description:    "Consulting",
		Quantity:       decimal.NewFromInt(2),
		UnitRate:       decimal.NewFromInt(500),
		TaxRatePercent: decimal.NewFromInt(18),
	}}
}

func TestInvoiceService_Compute_IntraState(t *testing.T) {
	svc := newInvoiceService(new(mocks.MockInvoiceRepo), service.BillingSettings{})

	totals, err := svc.Compute(context.Background(), service.ComputeInput{
		LineItems:      consultingItems(),
		BillingAddress: "MG Road, Bengaluru, Karnataka 560001",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SupplyIntraState, totals.SupplyType)
	assert.Equal(t, "90.00", totals.CGST.StringFixed(2))
	assert.Equal(t, "90.00", totals.SGST.StringFixed(2))
	assert.True(t, totals.IGST.IsZero())
	assert.Equal(t, "1180.00", totals.Total.StringFixed(2))
	assert.Equal(t, "One Thousand One Hundred and Eighty Rupees only", totals.AmountInWords)
}

func TestInvoiceService_Compute_ShippingAddressWins(t *testing.T) {
	svc := newInvoiceService(new(mocks.MockInvoiceRepo), service.BillingSettings{})

	totals, err := svc.Compute(context.Background(), service.ComputeInput{
		LineItems:       consultingItems(),
		BillingAddress:  "Bengaluru, Karnataka",
		ShippingAddress: "Andheri, Mumbai, Maharashtra",
	})

	require.NoError(t, err)
	assert.Equal(t, "27", totals.PlaceOfSupplyState)
	assert.Equal(t, domain.SupplyInterState, totals.SupplyType)
	assert.Equal(t, "180.00", totals.IGST.StringFixed(2))
}

func TestInvoiceService_Compute_RejectUnresolved(t *testing.T) {
	svc := newInvoiceService(new(mocks.MockInvoiceRepo), service.BillingSettings{
		JurisdictionPolicy: billing.JurisdictionPolicyReject,
	})

	totals, err := svc.Compute(context.Background(), service.ComputeInput{
		LineItems:      consultingItems(),
		BillingAddress: "Somewhere far away",
	})

	assert.Nil(t, totals)
	assert.ErrorIs(t, err, domain.ErrUnresolvableJurisdiction)
}

func TestInvoiceService_Compute_DefaultUnresolved(t *testing.T) {
	svc := newInvoiceService(new(mocks.MockInvoiceRepo), service.BillingSettings{})

	totals, err := svc.Compute(context.Background(), service.ComputeInput{
		LineItems:      consultingItems(),
		BillingAddress: "Somewhere far away",
	})

	require.NoError(t, err)
	assert.True(t, totals.JurisdictionDefaulted)
	assert.Equal(t, billing.DefaultStateCode, totals.PlaceOfSupplyState)
}

func TestInvoiceService_Create_Success(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(repo, service.BillingSettings{})

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		ComputeInput: service.ComputeInput{
			LineItems:      consultingItems(),
			BillingAddress: "Noida, Uttar Pradesh",
			Discount:       &domain.Discount{Value: decimal.NewFromInt(10), Mode: domain.DiscountModePercentage},
		},
		CustomerName:     "Acme Traders",
		PaymentTermsDays: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, 1, inv.Version)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), inv.IssueDate)
	assert.Equal(t, time.Date(2024, 2, 4, 0, 0, 0, 0, time.UTC), inv.DueDate)
	assert.Regexp(t, `^INV-20240105-[0-9A-F]{8}$`, inv.Number)
	assert.Equal(t, domain.DiscountModePercentage, inv.DiscountMode)
	assert.Equal(t, "100.00", inv.Totals.DiscountAmount.StringFixed(2))
	assert.Equal(t, "1062.00", inv.Totals.Total.StringFixed(2))
	repo.AssertExpectations(t)
}

func TestInvoiceService_Create_SendImmediately(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(repo, service.BillingSettings{})

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		ComputeInput:    service.ComputeInput{LineItems: consultingItems(), PlaceOfSupply: "Karnataka"},
		Number:          "KA/2024/001",
		CustomerName:    "Acme Traders",
		IssueDate:       "2024-03-01",
		DueDate:         "2024-03-15",
		SendImmediately: true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusSent, inv.Status)
	assert.Equal(t, "KA/2024/001", inv.Number)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), inv.DueDate)
}

func TestInvoiceService_Create_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input service.CreateInvoiceInput
		want  error
	}{
		{
			name: "bad issue date",
			input: service.CreateInvoiceInput{
				ComputeInput: service.ComputeInput{LineItems: consultingItems()},
				IssueDate:    "05/01/2024",
			},
			want: domain.ErrInvalidDate,
		},
		{
			name: "due before issue",
			input: service.CreateInvoiceInput{
				ComputeInput: service.ComputeInput{LineItems: consultingItems()},
				IssueDate:    "2024-03-01",
				DueDate:      "2024-02-01",
			},
			want: domain.ErrInvalidDate,
		},
		{
			name: "negative quantity",
			input: service.CreateInvoiceInput{
				ComputeInput: service.ComputeInput{LineItems: []domain.LineItem{{
					Quantity: decimal.NewFromInt(-1), UnitRate: decimal.NewFromInt(10),
				}}},
			},
			want: domain.ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockInvoiceRepo)
			svc := newInvoiceService(repo, service.BillingSettings{})

			inv, err := svc.Create(context.Background(), tt.input)

			assert.Nil(t, inv)
			assert.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestInvoiceService_List_InvalidStatus(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(repo, service.BillingSettings{})

	_, _, err := svc.List(context.Background(), port.InvoiceFilter{Status: "archived"}, 0, 20)

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_TransitionStatus_Success(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(repo, service.BillingSettings{})

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).
		Return(&domain.Invoice{ID: id, Status: domain.InvoiceStatusDraft, Version: 3}, nil)
	repo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("*domain.Invoice"), 3).Return(nil)

	inv, err := svc.TransitionStatus(context.Background(), id, service.TransitionInput{Status: domain.InvoiceStatusSent})

	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusSent, inv.Status)
	repo.AssertExpectations(t)
}

func TestInvoiceService_TransitionStatus_NotAllowed(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(repo, service.BillingSettings{})

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).
		Return(&domain.Invoice{ID: id, Status: domain.InvoiceStatusPaid, Version: 1}, nil)

	inv, err := svc.TransitionStatus(context.Background(), id, service.TransitionInput{Status: domain.InvoiceStatusDraft})

	assert.Nil(t, inv)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_TransitionStatus_Unchecked(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(repo, service.BillingSettings{UncheckedTransitions: true})

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).
		Return(&domain.Invoice{ID: id, Status: domain.InvoiceStatusPaid, Version: 1}, nil)
	repo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("*domain.Invoice"), 1).Return(nil)

	inv, err := svc.TransitionStatus(context.Background(), id, service.TransitionInput{Status: domain.InvoiceStatusDraft})

	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
}

func TestInvoiceService_TransitionStatus_SameStatusIsNoop(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(repo, service.BillingSettings{})

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).
		Return(&domain.Invoice{ID: id, Status: domain.InvoiceStatusPaid, Version: 4}, nil)

	inv, err := svc.TransitionStatus(context.Background(), id, service.TransitionInput{Status: domain.InvoiceStatusPaid})

	require.NoError(t, err)
	assert.Equal(t, 4, inv.Version)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_TransitionStatus_StaleVersion(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(repo, service.BillingSettings{})

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).
		Return(&domain.Invoice{ID: id, Status: domain.InvoiceStatusSent, Version: 5}, nil)

	stale := 4
	_, err := svc.TransitionStatus(context.Background(), id, service.TransitionInput{
		Status:          domain.InvoiceStatusPaid,
		ExpectedVersion: &stale,
	})

	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestInvoiceService_TransitionStatus_NotFound(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(repo, service.BillingSettings{})

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrInvoiceNotFound)

	_, err := svc.TransitionStatus(context.Background(), id, service.TransitionInput{Status: domain.InvoiceStatusSent})

	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestInvoiceService_MarkOverdue(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(repo, service.BillingSettings{})

	sent := domain.Invoice{ID: uuid.New(), Status: domain.InvoiceStatusSent, Version: 1}
	partial := domain.Invoice{ID: uuid.New(), Status: domain.InvoiceStatusPartiallyPaid, Version: 2}
	raced := domain.Invoice{ID: uuid.New(), Status: domain.InvoiceStatusUnpaid, Version: 1}

	asOf := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	repo.On("ListOverdueCandidates", mock.Anything, asOf, 10).
		Return([]domain.Invoice{sent, partial, raced}, nil)
	repo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.ID == raced.ID
	}), 1).Return(domain.ErrVersionConflict)
	repo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.Status == domain.InvoiceStatusOverdue
	}), mock.AnythingOfType("int")).Return(nil)

	n, err := svc.MarkOverdue(context.Background(), today, 10)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
