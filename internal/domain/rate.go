package domain

import "time"

type SeasonType string

const (
	SeasonTypeRegular SeasonType = "REGULAR"
	SeasonTypePeak    SeasonType = "PEAK"
	SeasonTypeOffPeak SeasonType = "OFF_PEAK"
	SeasonTypeHoliday SeasonType = "HOLIDAY"
	SeasonTypeSpecial SeasonType = "SPECIAL"
)

// RateDefinition is a tiered price structure for one vehicle group.
// A nil validity window marks the regular fallback rate; dated windows
// take precedence over it when they contain the requested interval.
// All prices are integer cents. WeekendRateCents is stored on the
// schema but not read by the price calculator.
type RateDefinition struct {
	ID               int32      `json:"id"`
	GroupID          int32      `json:"group_id"`
	Season           SeasonType `json:"season"`
	DailyRateCents   int64      `json:"daily_rate_cents"`
	WeeklyRateCents  *int64     `json:"weekly_rate_cents,omitempty"`
	MonthlyRateCents *int64     `json:"monthly_rate_cents,omitempty"`
	WeekendRateCents *int64     `json:"weekend_rate_cents,omitempty"`
	ValidFrom        *time.Time `json:"valid_from,omitempty"`
	ValidTo          *time.Time `json:"valid_to,omitempty"`
	IsActive         bool       `json:"is_active"`
}

// Covers reports whether the rate's validity window fully contains
// [start, end]. Windowless rates cover nothing; they are the fallback.
func (r *RateDefinition) Covers(start, end time.Time) bool {
	if r.ValidFrom == nil || r.ValidTo == nil {
		return false
	}
	return !r.ValidFrom.After(start) && !r.ValidTo.Before(end)
}

// IsFallback reports whether this is the always-valid regular rate.
func (r *RateDefinition) IsFallback() bool {
	return r.ValidFrom == nil && r.ValidTo == nil
}
