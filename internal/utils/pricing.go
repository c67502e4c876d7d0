package utils

import (
	"time"

	"fleetrental-backend/internal/domain"
)

// RentalDays returns the chargeable day count for the interval,
// rounding partial days up. Callers guarantee start < end, so the
// result is always at least 1.
func RentalDays(start, end time.Time) int32 {
	d := end.Sub(start)
	days := int32(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// PriceBreakdown provides the tiered base-cost breakdown for a rental.
// All amounts are integer cents.
type PriceBreakdown struct {
	Days       int32 `json:"days"` // total chargeable days
	MonthUnits int32 `json:"month_units"`
	WeekUnits  int32 `json:"week_units"`
	DayUnits   int32 `json:"day_units"` // remainder days billed at the daily rate
	MonthsCost int64 `json:"months_cost_cents"`
	WeeksCost  int64 `json:"weeks_cost_cents"`
	DaysCost   int64 `json:"days_cost_cents"`
	TotalCents int64 `json:"total_cents"`
}

const (
	daysPerMonth = 30
	daysPerWeek  = 7
)

// CalculateBaseCost computes the tiered base price for the given day
// count against one rate definition, largest unit first:
//
//   - days >= 30 with a monthly rate: bill whole 30-day months, the
//     remainder at the daily rate
//   - days >= 7 with a weekly rate: bill whole weeks, the remainder at
//     the daily rate
//   - otherwise every day at the daily rate
//
// The weekend rate is not consulted here; it exists on the rate schema
// but no pricing path reads it.
func CalculateBaseCost(days int32, rate *domain.RateDefinition) PriceBreakdown {
	b := PriceBreakdown{Days: days}

	switch {
	case days >= daysPerMonth && rate.MonthlyRateCents != nil:
		b.MonthUnits = days / daysPerMonth
		b.DayUnits = days % daysPerMonth
		b.MonthsCost = int64(b.MonthUnits) * *rate.MonthlyRateCents
		b.DaysCost = int64(b.DayUnits) * rate.DailyRateCents
	case days >= daysPerWeek && rate.WeeklyRateCents != nil:
		b.WeekUnits = days / daysPerWeek
		b.DayUnits = days % daysPerWeek
		b.WeeksCost = int64(b.WeekUnits) * *rate.WeeklyRateCents
		b.DaysCost = int64(b.DayUnits) * rate.DailyRateCents
	default:
		b.DayUnits = days
		b.DaysCost = int64(days) * rate.DailyRateCents
	}

	b.TotalCents = b.MonthsCost + b.WeeksCost + b.DaysCost
	return b
}
