package service

import (
	"cmp"
	"context"
	"slices"

	"dealer-finance/domain"
	"dealer-finance/metrics"
	"dealer-finance/repository"
)

type InventoryService struct {
	repo        repository.VehicleRepository
	loanService *LoanService
}

func NewInventoryService(repo repository.VehicleRepository, loanService *LoanService) *InventoryService {
	return &InventoryService{repo: repo, loanService: loanService}
}

// Search applies the filters and sort order. Facets are computed over the
// whole catalog so the UI can offer every option regardless of the current
// selection.
func (s *InventoryService) Search(ctx context.Context, filters domain.FiltersState) (domain.SearchResult, error) {
	if err := filters.Validate(); err != nil {
		return domain.SearchResult{}, err
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return domain.SearchResult{}, err
	}
	metrics.InventorySearches.Inc()

	matched := make([]domain.Vehicle, 0, len(all))
	for _, v := range all {
		if filters.Matches(v) {
			matched = append(matched, v)
		}
	}
	sortVehicles(matched, filters.Sort)

	return domain.SearchResult{
		Total:    len(matched),
		Vehicles: matched,
		Filters:  filters,
		Facets:   buildFacets(all),
	}, nil
}

func (s *InventoryService) Get(ctx context.Context, idOrSlug string) (domain.Vehicle, error) {
	return s.repo.Get(ctx, idOrSlug)
}

// VehicleQuote prices a quote for a listing. Selecting a vehicle always starts
// from the defaults for its price; overrides are applied on top.
func (s *InventoryService) VehicleQuote(
	ctx context.Context,
	idOrSlug string,
	overrides domain.QuoteRequest,
) (domain.VehicleQuoteResult, error) {
	v, err := s.repo.Get(ctx, idOrSlug)
	if err != nil {
		return domain.VehicleQuoteResult{}, err
	}

	overrides.Price = v.Price
	quote, err := s.loanService.Quote(ctx, overrides)
	if err != nil {
		return domain.VehicleQuoteResult{}, err
	}
	metrics.VehicleQuotes.WithLabelValues(v.Make).Inc()

	return domain.VehicleQuoteResult{Vehicle: v, Quote: quote}, nil
}

func sortVehicles(vehicles []domain.Vehicle, order string) {
	switch order {
	case domain.SortPriceAsc:
		slices.SortStableFunc(vehicles, func(a, b domain.Vehicle) int { return cmp.Compare(a.Price, b.Price) })
	case domain.SortPriceDesc:
		slices.SortStableFunc(vehicles, func(a, b domain.Vehicle) int { return cmp.Compare(b.Price, a.Price) })
	case domain.SortYearDesc:
		slices.SortStableFunc(vehicles, func(a, b domain.Vehicle) int { return cmp.Compare(b.Year, a.Year) })
	case domain.SortMileageAsc:
		slices.SortStableFunc(vehicles, func(a, b domain.Vehicle) int { return cmp.Compare(a.Mileage, b.Mileage) })
	default:
		// featured listings first, catalog order otherwise
		slices.SortStableFunc(vehicles, func(a, b domain.Vehicle) int {
			switch {
			case a.Featured == b.Featured:
				return 0
			case a.Featured:
				return -1
			default:
				return 1
			}
		})
	}
}

func buildFacets(vehicles []domain.Vehicle) domain.Facets {
	facets := domain.Facets{
		Makes:         distinct(vehicles, func(v domain.Vehicle) string { return v.Make }),
		BodyTypes:     distinct(vehicles, func(v domain.Vehicle) string { return v.BodyType }),
		FuelTypes:     distinct(vehicles, func(v domain.Vehicle) string { return v.FuelType }),
		Transmissions: distinct(vehicles, func(v domain.Vehicle) string { return v.Transmission }),
	}
	for i, v := range vehicles {
		if i == 0 || v.Price < facets.MinPrice {
			facets.MinPrice = v.Price
		}
		if v.Price > facets.MaxPrice {
			facets.MaxPrice = v.Price
		}
	}
	return facets
}

func distinct(vehicles []domain.Vehicle, field func(domain.Vehicle) string) []string {
	out := []string{}
	for _, v := range vehicles {
		if f := field(v); f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	slices.Sort(out)
	return out
}
