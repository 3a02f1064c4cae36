package commands

import (
	"time"

	"hotelier/internal/pkg/errs"
)

// Accepts plain dates as well as full RFC3339 timestamps, like the public API.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t, nil
		}
	}
	return nil, errs.Newf("invalid date %q", *s)
}
