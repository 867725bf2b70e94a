package lifecycle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billkit/internal/domain"
	"billkit/internal/lifecycle"
)

func TestTransition_Allowed(t *testing.T) {
	tests := []struct {
		from, to domain.InvoiceStatus
	}{
		{domain.InvoiceStatusDraft, domain.InvoiceStatusSent},
		{domain.InvoiceStatusDraft, domain.InvoiceStatusCancelled},
		{domain.InvoiceStatusSent, domain.InvoiceStatusPaid},
		{domain.InvoiceStatusSent, domain.InvoiceStatusOverdue},
		{domain.InvoiceStatusUnpaid, domain.InvoiceStatusPartiallyPaid},
		{domain.InvoiceStatusPartiallyPaid, domain.InvoiceStatusPaid},
		{domain.InvoiceStatusOverdue, domain.InvoiceStatusPaid},
		{domain.InvoiceStatusOverdue, domain.InvoiceStatusVoid},
	}
	for _, tt := range tests {
		got, err := lifecycle.Transition(tt.from, tt.to)
		assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		assert.Equal(t, tt.to, got)
	}
}

func TestTransition_Rejected(t *testing.T) {
	tests := []struct {
		from, to domain.InvoiceStatus
	}{
		{domain.InvoiceStatusPaid, domain.InvoiceStatusDraft},
		{domain.InvoiceStatusPaid, domain.InvoiceStatusVoid},
		{domain.InvoiceStatusCancelled, domain.InvoiceStatusSent},
		{domain.InvoiceStatusVoid, domain.InvoiceStatusPaid},
		{domain.InvoiceStatusDraft, domain.InvoiceStatusPaid},
		{domain.InvoiceStatusDraft, domain.InvoiceStatusOverdue},
		{domain.InvoiceStatusPartiallyPaid, domain.InvoiceStatusDraft},
		{domain.InvoiceStatusPartiallyPaid, domain.InvoiceStatusCancelled},
	}
	for _, tt := range tests {
		got, err := lifecycle.Transition(tt.from, tt.to)
		require.Error(t, err, "%s -> %s", tt.from, tt.to)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Equal(t, tt.from, got)

		var te *lifecycle.TransitionError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, string(tt.from), te.From)
		assert.Equal(t, string(tt.to), te.To)
	}
}

func TestTransition_PaidOnlyFromOpenStates(t *testing.T) {
	for _, from := range domain.AllInvoiceStatuses {
		_, err := lifecycle.Transition(from, domain.InvoiceStatusPaid)
		switch from {
		case domain.InvoiceStatusSent, domain.InvoiceStatusUnpaid,
			domain.InvoiceStatusPartiallyPaid, domain.InvoiceStatusOverdue,
			domain.InvoiceStatusPaid:
			assert.NoError(t, err, "%s -> paid", from)
		default:
			assert.ErrorIs(t, err, domain.ErrInvalidTransition, "%s -> paid", from)
		}
	}
}

func TestTransition_TerminalStates(t *testing.T) {
	for _, s := range []domain.InvoiceStatus{domain.InvoiceStatusPaid, domain.InvoiceStatusCancelled, domain.InvoiceStatusVoid} {
		assert.True(t, lifecycle.IsTerminal(s))
		assert.Empty(t, lifecycle.AllowedTransitions(s))
	}
	assert.False(t, lifecycle.IsTerminal(domain.InvoiceStatusDraft))
}

func TestTransition_SameStatusIsNoop(t *testing.T) {
	got, err := lifecycle.Transition(domain.InvoiceStatusPaid, domain.InvoiceStatusPaid)
	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, got)
}

func TestTransition_UnknownStatus(t *testing.T) {
	_, err := lifecycle.Transition(domain.InvoiceStatusDraft, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = lifecycle.Transition("", domain.InvoiceStatusSent)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestMachine_Unchecked(t *testing.T) {
	m := lifecycle.Machine{Unchecked: true}
	got, err := m.Transition(domain.InvoiceStatusPaid, domain.InvoiceStatusDraft)
	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusDraft, got)

	_, err = m.Transition(domain.InvoiceStatusPaid, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestAllowedTransitions_ReturnsCopy(t *testing.T) {
	next := lifecycle.AllowedTransitions(domain.InvoiceStatusDraft)
	next[0] = domain.InvoiceStatusPaid
	assert.False(t, lifecycle.CanTransition(domain.InvoiceStatusDraft, domain.InvoiceStatusPaid))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, domain.InvoiceStatusDraft, lifecycle.InitialStatus(false))
	assert.Equal(t, domain.InvoiceStatusSent, lifecycle.InitialStatus(true))
}

func TestTransitionProfile(t *testing.T) {
	got, err := lifecycle.TransitionProfile(domain.ProfileStatusActive, domain.ProfileStatusPaused)
	assert.NoError(t, err)
	assert.Equal(t, domain.ProfileStatusPaused, got)

	got, err = lifecycle.TransitionProfile(domain.ProfileStatusPaused, domain.ProfileStatusActive)
	assert.NoError(t, err)
	assert.Equal(t, domain.ProfileStatusActive, got)

	_, err = lifecycle.TransitionProfile(domain.ProfileStatusPaused, domain.ProfileStatusCompleted)
	assert.NoError(t, err)

	_, err = lifecycle.TransitionProfile(domain.ProfileStatusCompleted, domain.ProfileStatusActive)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = lifecycle.TransitionProfile(domain.ProfileStatusActive, "deleted")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
