package service

import (
	"context"
	"fmt"
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
	"fleetrental-backend/internal/utils"
)

type pricingService struct {
	rateRepo   repository.RateRepository
	optionRepo repository.OptionRepository
}

func NewPricingService(rateRepo repository.RateRepository, optionRepo repository.OptionRepository) PricingService {
	return &pricingService{rateRepo: rateRepo, optionRepo: optionRepo}
}

// CalculateRentalPrice builds a tiered quote for the vehicle group
// over [start, end] with the selected add-ons. Option ids that do not
// resolve against the active price list are skipped without error;
// negative quantities are rejected.
func (s *pricingService) CalculateRentalPrice(ctx context.Context, groupID int32, start, end time.Time, options []SelectedOption) (*Quote, error) {
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start date must be before end date", domain.ErrInvalidArgument)
	}
	for _, sel := range options {
		if sel.Quantity < 0 {
			return nil, fmt.Errorf("%w: option %d has negative quantity %d", domain.ErrInvalidArgument, sel.OptionID, sel.Quantity)
		}
	}

	group, err := s.rateRepo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	rates, err := s.rateRepo.ListActiveByGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	rate := selectRate(rates, start, end)
	if rate == nil {
		return nil, fmt.Errorf("%w: vehicle group %d has no active rate", domain.ErrNoRateAvailable, group.ID)
	}

	days := utils.RentalDays(start, end)
	base := utils.CalculateBaseCost(days, rate)

	quote := &Quote{
		GroupID:        group.ID,
		RateID:         rate.ID,
		Season:         rate.Season,
		Days:           days,
		Base:           base,
		BasePriceCents: base.TotalCents,
	}

	resolved, err := s.resolveOptions(ctx, options)
	if err != nil {
		return nil, err
	}
	for _, line := range resolved {
		cost := line.PriceCents * int64(line.Quantity) * int64(days)
		quote.Options = append(quote.Options, QuoteOption{
			OptionID:   line.OptionID,
			Name:       line.Name,
			PriceCents: line.PriceCents,
			Quantity:   line.Quantity,
			CostCents:  cost,
		})
		quote.OptionsPriceCents += cost
	}

	quote.TotalPriceCents = quote.BasePriceCents + quote.OptionsPriceCents
	return quote, nil
}

type resolvedOption struct {
	OptionID   int32
	Name       string
	PriceCents int64
	Quantity   int32
}

func (s *pricingService) resolveOptions(ctx context.Context, selected []SelectedOption) ([]resolvedOption, error) {
	if len(selected) == 0 {
		return nil, nil
	}
	ids := make([]int32, 0, len(selected))
	for _, sel := range selected {
		ids = append(ids, sel.OptionID)
	}
	active, err := s.optionRepo.ListActiveByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int32]domain.AdditionalOption, len(active))
	for _, opt := range active {
		byID[opt.ID] = opt
	}

	var out []resolvedOption
	for _, sel := range selected {
		opt, ok := byID[sel.OptionID]
		if !ok {
			continue // unknown or inactive id: skip silently
		}
		out = append(out, resolvedOption{
			OptionID:   opt.ID,
			Name:       opt.Name,
			PriceCents: opt.PriceCents,
			Quantity:   sel.Quantity,
		})
	}
	return out, nil
}

// selectRate picks the applicable rate definition: among dated windows
// fully containing [start, end], the one with the latest start wins;
// otherwise the windowless regular rate is the fallback.
func selectRate(rates []domain.RateDefinition, start, end time.Time) *domain.RateDefinition {
	var best *domain.RateDefinition
	var fallback *domain.RateDefinition

	for i := range rates {
		r := &rates[i]
		if r.Covers(start, end) {
			if best == nil || r.ValidFrom.After(*best.ValidFrom) {
				best = r
			}
			continue
		}
		if r.IsFallback() && fallback == nil {
			fallback = r
		}
	}
	if best != nil {
		return best
	}
	return fallback
}
