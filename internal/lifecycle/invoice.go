package lifecycle

import (
	"fmt"

	"billkit/internal/domain"
)

// invoiceTransitions lists, for each status, the statuses it may move to.
// Paid, cancelled and void are terminal.
var invoiceTransitions = map[domain.InvoiceStatus][]domain.InvoiceStatus{
	domain.InvoiceStatusDraft: {
		domain.InvoiceStatusSent,
		domain.InvoiceStatusUnpaid,
		domain.InvoiceStatusCancelled,
		domain.InvoiceStatusVoid,
	},
	domain.InvoiceStatusSent: {
		domain.InvoiceStatusUnpaid,
		domain.InvoiceStatusPartiallyPaid,
		domain.InvoiceStatusPaid,
		domain.InvoiceStatusOverdue,
		domain.InvoiceStatusCancelled,
		domain.InvoiceStatusVoid,
	},
	domain.InvoiceStatusUnpaid: {
		domain.InvoiceStatusSent,
		domain.InvoiceStatusPartiallyPaid,
		domain.InvoiceStatusPaid,
		domain.InvoiceStatusOverdue,
		domain.InvoiceStatusCancelled,
		domain.InvoiceStatusVoid,
	},
	domain.InvoiceStatusPartiallyPaid: {
		domain.InvoiceStatusPaid,
		domain.InvoiceStatusOverdue,
		domain.InvoiceStatusVoid,
	},
	domain.InvoiceStatusOverdue: {
		domain.InvoiceStatusPartiallyPaid,
		domain.InvoiceStatusPaid,
		domain.InvoiceStatusCancelled,
		domain.InvoiceStatusVoid,
	},
	domain.InvoiceStatusPaid:      nil,
	domain.InvoiceStatusCancelled: nil,
	domain.InvoiceStatusVoid:      nil,
}

// TransitionError reports a disallowed status change. It matches
// domain.ErrInvalidTransition with errors.Is.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move from %s to %s: %v", e.From, e.To, domain.ErrInvalidTransition)
}

func (e *TransitionError) Unwrap() error { return domain.ErrInvalidTransition }

// Machine validates invoice status changes. Unchecked restores the legacy
// behaviour where any known status is reachable from any other.
type Machine struct {
	Unchecked bool
}

// Transition returns the new status or an error if the move is not allowed.
// Requesting the current status is a no-op.
func (m Machine) Transition(current, requested domain.InvoiceStatus) (domain.InvoiceStatus, error) {
	if !current.Valid() {
		return current, fmt.Errorf("current status %q: %w", current, domain.ErrInvalidStatus)
	}
	if !requested.Valid() {
		return current, fmt.Errorf("requested status %q: %w", requested, domain.ErrInvalidStatus)
	}
	if current == requested || m.Unchecked {
		return requested, nil
	}
	if !CanTransition(current, requested) {
		return current, &TransitionError{From: string(current), To: string(requested)}
	}
	return requested, nil
}

// Transition validates a status change against the enforced table.
func Transition(current, requested domain.InvoiceStatus) (domain.InvoiceStatus, error) {
	return Machine{}.Transition(current, requested)
}

// CanTransition reports whether the table allows from → to.
func CanTransition(from, to domain.InvoiceStatus) bool {
	for _, allowed := range invoiceTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from s.
func AllowedTransitions(s domain.InvoiceStatus) []domain.InvoiceStatus {
	next := invoiceTransitions[s]
	out := make([]domain.InvoiceStatus, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether no further transitions are allowed from s.
func IsTerminal(s domain.InvoiceStatus) bool {
	next, ok := invoiceTransitions[s]
	return ok && len(next) == 0
}

// InitialStatus is the status a new invoice starts in.
func InitialStatus(sendImmediately bool) domain.InvoiceStatus {
	if sendImmediately {
		return domain.InvoiceStatusSent
	}
	return domain.InvoiceStatusDraft
}
