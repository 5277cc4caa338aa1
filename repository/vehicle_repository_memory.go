package repository

import (
	"context"
	"slices"
	"sync"

	"dealer-finance/domain"
)

type VehicleRepositoryMemory struct {
	mu       sync.RWMutex
	vehicles []domain.Vehicle
	index    map[string]int
}

func NewVehicleRepositoryMemory(vehicles []domain.Vehicle) *VehicleRepositoryMemory {
	r := &VehicleRepositoryMemory{}
	r.Replace(vehicles)
	return r
}

// Replace swaps the whole catalog, e.g. after the inventory file changes.
func (r *VehicleRepositoryMemory) Replace(vehicles []domain.Vehicle) {
	index := make(map[string]int, len(vehicles)*2)
	for i, v := range vehicles {
		index[v.ID] = i
		index[v.Slug] = i
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles = slices.Clone(vehicles)
	r.index = index
}

func (r *VehicleRepositoryMemory) List(_ context.Context) ([]domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.vehicles), nil
}

func (r *VehicleRepositoryMemory) Get(_ context.Context, idOrSlug string) (domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[idOrSlug]
	if !ok {
		return domain.Vehicle{}, domain.ErrVehicleNotFound
	}
	return r.vehicles[i], nil
}
