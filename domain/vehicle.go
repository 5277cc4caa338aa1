package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Vehicle is a listing in the dealership inventory.
type Vehicle struct {
	ID           string   `json:"id" yaml:"id"`
	Slug         string   `json:"slug" yaml:"slug"`
	Make         string   `json:"make" yaml:"make"`
	Model        string   `json:"model" yaml:"model"`
	Variant      string   `json:"variant,omitempty" yaml:"variant"`
	Year         int      `json:"year" yaml:"year"`
	Price        int64    `json:"price" yaml:"price"`
	PriceLabel   string   `json:"price_label,omitempty" yaml:"price_label"`
	Mileage      int      `json:"mileage" yaml:"mileage"`
	FuelType     string   `json:"fuel_type" yaml:"fuel_type"`
	Transmission string   `json:"transmission" yaml:"transmission"`
	BodyType     string   `json:"body_type" yaml:"body_type"`
	Color        string   `json:"color,omitempty" yaml:"color"`
	Featured     bool     `json:"featured" yaml:"featured"`
	Images       []string `json:"images,omitempty" yaml:"images"`
}

// Title is the display name, e.g. "2021 BMW X5 xDrive40i".
func (v Vehicle) Title() string {
	title := fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
	if v.Variant != "" {
		title += " " + v.Variant
	}
	return title
}

// Sort orders accepted by FiltersState.
const (
	SortDefault    = ""
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortYearDesc   = "year_desc"
	SortMileageAsc = "mileage_asc"
)

// FiltersState is the inventory search model. Zero values mean "no constraint".
type FiltersState struct {
	Query         string   `json:"query,omitempty"`
	Makes         []string `json:"makes,omitempty"`
	BodyTypes     []string `json:"body_types,omitempty"`
	FuelTypes     []string `json:"fuel_types,omitempty"`
	Transmissions []string `json:"transmissions,omitempty"`
	MinPrice      int64    `json:"min_price,omitempty"`
	MaxPrice      int64    `json:"max_price,omitempty"`
	MinYear       int      `json:"min_year,omitempty"`
	MaxYear       int      `json:"max_year,omitempty"`
	MaxMileage    int      `json:"max_mileage,omitempty"`
	Sort          string   `json:"sort,omitempty"`
}

// Validate rejects unknown sort orders and inverted ranges.
func (f FiltersState) Validate() error {
	switch f.Sort {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortYearDesc, SortMileageAsc:
	default:
		return fmt.Errorf("%w: unknown sort %q", ErrInvalidFilter, f.Sort)
	}
	if f.MinPrice < 0 || f.MaxPrice < 0 || f.MinYear < 0 || f.MaxYear < 0 || f.MaxMileage < 0 {
		return fmt.Errorf("%w: negative bound", ErrInvalidFilter)
	}
	if f.MaxPrice > 0 && f.MinPrice > f.MaxPrice {
		return fmt.Errorf("%w: min_price greater than max_price", ErrInvalidFilter)
	}
	if f.MaxYear > 0 && f.MinYear > f.MaxYear {
		return fmt.Errorf("%w: min_year greater than max_year", ErrInvalidFilter)
	}
	return nil
}

// Matches reports whether v satisfies every constraint in f.
func (f FiltersState) Matches(v Vehicle) bool {
	if !matchesAny(f.Makes, v.Make) ||
		!matchesAny(f.BodyTypes, v.BodyType) ||
		!matchesAny(f.FuelTypes, v.FuelType) ||
		!matchesAny(f.Transmissions, v.Transmission) {
		return false
	}
	if f.MinPrice > 0 && v.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && v.Price > f.MaxPrice {
		return false
	}
	if f.MinYear > 0 && v.Year < f.MinYear {
		return false
	}
	if f.MaxYear > 0 && v.Year > f.MaxYear {
		return false
	}
	if f.MaxMileage > 0 && v.Mileage > f.MaxMileage {
		return false
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		haystack := strings.ToLower(v.Title() + " " + v.BodyType + " " + v.Color)
		for _, term := range strings.Fields(strings.ToLower(q)) {
			if !strings.Contains(haystack, term) {
				return false
			}
		}
	}
	return true
}

func matchesAny(options []string, value string) bool {
	if len(options) == 0 {
		return true
	}
	for _, o := range options {
		if strings.EqualFold(strings.TrimSpace(o), value) {
			return true
		}
	}
	return false
}

var (
	pricePrefixes = []string{"₹", "inr", "rs.", "rs"}

	// Longest first so "lakhs" is not read as "l".
	priceSuffixes = []struct {
		suffix     string
		multiplier float64
	}{
		{"crores", 1e7},
		{"crore", 1e7},
		{"cr", 1e7},
		{"lakhs", 1e5},
		{"lakh", 1e5},
		{"lacs", 1e5},
		{"lac", 1e5},
		{"l", 1e5},
	}
)

// ParsePrice converts a display price such as "₹ 40,00,000", "45.5 Lakh",
// "12 lacs", "40L" or "1.2 Cr" into whole currency units. Any text other than
// a currency prefix and a lakh/crore suffix makes the label invalid.
func ParsePrice(label string) (int64, error) {
	s := strings.ToLower(strings.TrimSpace(label))
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidPrice)
	}

	for _, prefix := range pricePrefixes {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
			break
		}
	}

	multiplier := 1.0
	for _, sfx := range priceSuffixes {
		if strings.HasSuffix(s, sfx.suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, sfx.suffix))
			multiplier = sfx.multiplier
			break
		}
	}

	var digits strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsDigit(r), r == '.':
			digits.WriteRune(r)
		case r == ',', unicode.IsSpace(r):
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, label)
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, label)
	}

	value, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, label)
	}
	price := math.Round(value * multiplier)
	if price <= 0 || price > math.MaxInt64/2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, label)
	}
	return int64(price), nil
}

// Facets lists the distinct values available for each filter dimension.
type Facets struct {
	Makes         []string `json:"makes"`
	BodyTypes     []string `json:"body_types"`
	FuelTypes     []string `json:"fuel_types"`
	Transmissions []string `json:"transmissions"`
	MinPrice      int64    `json:"min_price"`
	MaxPrice      int64    `json:"max_price"`
}

type SearchResult struct {
	Total    int          `json:"total"`
	Vehicles []Vehicle    `json:"vehicles"`
	Filters  FiltersState `json:"filters"`
	Facets   Facets       `json:"facets"`
}

type VehicleQuoteResult struct {
	Vehicle Vehicle     `json:"vehicle"`
	Quote   QuoteResult `json:"quote"`
}
