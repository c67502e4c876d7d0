package domain

type OptionType string

const (
	OptionTypeInsurance OptionType = "INSURANCE"
	OptionTypeEquipment OptionType = "EQUIPMENT"
	OptionTypeService   OptionType = "SERVICE"
	OptionTypeFee       OptionType = "FEE"
)

// AdditionalOption is a priced add-on (insurance, GPS, child seat, ...).
// PriceCents is a per-day charge; the calculator multiplies it by
// quantity and rental days.
type AdditionalOption struct {
	ID         int32      `json:"id"`
	Name       string     `json:"name"`
	Type       OptionType `json:"type"`
	PriceCents int64      `json:"price_cents"`
	IsActive   bool       `json:"is_active"`
}
