package lifecycle

import (
	"fmt"

	"billkit/internal/domain"
)

var profileTransitions = map[domain.ProfileStatus][]domain.ProfileStatus{
	domain.ProfileStatusActive:    {domain.ProfileStatusPaused, domain.ProfileStatusCompleted},
	domain.ProfileStatusPaused:    {domain.ProfileStatusActive, domain.ProfileStatusCompleted},
	domain.ProfileStatusCompleted: nil,
}

// TransitionProfile validates a recurring profile status change.
func TransitionProfile(current, requested domain.ProfileStatus) (domain.ProfileStatus, error) {
	if !current.Valid() {
		return current, fmt.Errorf("current status %q: %w", current, domain.ErrInvalidStatus)
	}
	if !requested.Valid() {
		return current, fmt.Errorf("requested status %q: %w", requested, domain.ErrInvalidStatus)
	}
	if current == requested {
		return requested, nil
	}
	for _, allowed := range profileTransitions[current] {
		if allowed == requested {
			return requested, nil
		}
	}
	return current, &TransitionError{From: string(current), To: string(requested)}
}
