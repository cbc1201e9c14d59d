package domain

import "time"

// CalendarWeeks is how far back the contribution calendar reaches
const CalendarWeeks = 53

// AnchorPolicy selects how the automatic calendar anchor is computed
type AnchorPolicy string

const (
	// AnchorFiftyThreeWeeks subtracts 53 weeks from now
	AnchorFiftyThreeWeeks AnchorPolicy = "53-weeks"
	// AnchorOneYear subtracts one calendar year from now
	AnchorOneYear AnchorPolicy = "one-year"
)

// DefaultAnchorPolicy is used when no policy is configured
const DefaultAnchorPolicy = AnchorFiftyThreeWeeks

// ValidAnchorPolicies lists the accepted policy names
func ValidAnchorPolicies() []string {
	return []string{string(AnchorFiftyThreeWeeks), string(AnchorOneYear)}
}

// StartOfWeek returns midnight of the Sunday at or before t, in t's location
func StartOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// ResolveAnchor computes the Sunday the visible calendar window begins on.
// Unknown policies behave like DefaultAnchorPolicy.
func ResolveAnchor(now time.Time, policy AnchorPolicy) time.Time {
	switch policy {
	case AnchorOneYear:
		return StartOfWeek(now.AddDate(-1, 0, 0))
	default:
		return StartOfWeek(now.AddDate(0, 0, -7*CalendarWeeks))
	}
}

// AnchorFromDate normalizes a user supplied date to the Sunday of its week
func AnchorFromDate(date time.Time) time.Time {
	return StartOfWeek(date)
}
