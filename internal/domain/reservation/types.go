package reservation

type Status string

const (
	StatusBooked     Status = "BOOKED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCanceled   Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCheckedIn, StatusCheckedOut, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further lifecycle operation is legal.
func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCanceled
}
