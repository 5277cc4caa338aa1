package repository

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"dealer-finance/domain"
)

type VehicleRepository interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
	Get(ctx context.Context, idOrSlug string) (domain.Vehicle, error)
}

type inventoryFile struct {
	Vehicles []domain.Vehicle `yaml:"vehicles"`
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// LoadVehiclesYAML reads an inventory file. Missing IDs are generated, missing
// slugs are derived from the title, and a zero price is parsed from the
// price label.
func LoadVehiclesYAML(path string) ([]domain.Vehicle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inventory file: %w", err)
	}
	return ParseVehiclesYAML(raw)
}

func ParseVehiclesYAML(raw []byte) ([]domain.Vehicle, error) {
	var file inventoryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode inventory: %w", err)
	}

	seen := make(map[string]bool, len(file.Vehicles))
	for i := range file.Vehicles {
		v := &file.Vehicles[i]
		if v.ID == "" {
			v.ID = uuid.NewString()
		}
		if v.Slug == "" {
			v.Slug = Slugify(v.Title())
		}
		if v.Price == 0 && v.PriceLabel != "" {
			price, err := domain.ParsePrice(v.PriceLabel)
			if err != nil {
				return nil, fmt.Errorf("vehicle %s: %w", v.Slug, err)
			}
			v.Price = price
		}
		if v.Price <= 0 {
			return nil, fmt.Errorf("vehicle %s: %w", v.Slug, domain.ErrInvalidPrice)
		}
		if seen[v.ID] || seen[v.Slug] {
			return nil, fmt.Errorf("duplicate vehicle id or slug: %s", v.Slug)
		}
		seen[v.ID] = true
		seen[v.Slug] = true
	}
	return file.Vehicles, nil
}

// Slugify lowercases s and joins alphanumeric runs with dashes.
func Slugify(s string) string {
	return strings.Trim(slugInvalid.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
