package room

import "errors"

var ErrUnknownStatus = errors.New("unknown room status")

type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusOccupied    Status = "OCCUPIED"
	StatusCleaning    Status = "CLEANING"
	StatusMaintenance Status = "MAINTENANCE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusCleaning, StatusMaintenance:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// CanTransitionTo implements the permissive transition rule: every distinct
// pair of valid statuses is legal, only the identity transition is not.
func (s Status) CanTransitionTo(next Status) bool {
	return next.IsValid() && next != s
}
