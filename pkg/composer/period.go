package composer

import (
	"fmt"
	"time"
)

// ResolveVerificationPeriod turns the form token into the concrete expiry
// date the backend expects, computed from now at submission time.
func ResolveVerificationPeriod(token string, custom time.Time, now time.Time) (time.Time, error) {
	switch token {
	case PeriodCustom:
		if custom.IsZero() {
			return time.Time{}, fmt.Errorf("custom verification period without a date")
		}
		return custom, nil
	case Period1Week:
		return now.AddDate(0, 0, 7), nil
	case Period2Week:
		return now.AddDate(0, 0, 14), nil
	case Period1Month:
		return now.AddDate(0, 1, 0), nil
	case Period6Months:
		return now.AddDate(0, 6, 0), nil
	case Period12Months:
		return now.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unknown verification period %q", token)
	}
}
