package memory

import (
	"context"
	"fmt"

	"github.com/garnizeh/treeline/pkg/models"
)

func (s *Store) CreateRegion(ctx context.Context, in *models.RegionInsert) (*models.Region, error) {
	if in == nil {
		return nil, fmt.Errorf("region insert is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.regionSeq++
	r := models.Region{
		ID:          s.regionSeq,
		Name:        in.Name,
		Description: in.Description,
		Coordinates: in.Coordinates,
	}
	s.regions[r.ID] = r

	return &r, nil
}

func (s *Store) GetRegion(ctx context.Context, id int64) (*models.Region, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.regions[id]
	if !ok {
		return nil, nil
	}

	return &r, nil
}

func (s *Store) ListRegions(ctx context.Context) ([]models.Region, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Region, 0, len(s.regions))
	for _, id := range sortedIDs(s.regions) {
		out = append(out, s.regions[id])
	}

	return out, nil
}

func (s *Store) UpdateRegion(ctx context.Context, id int64, patch *models.RegionPatch) (*models.Region, error) {
	if patch == nil {
		return nil, fmt.Errorf("region patch is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.regions[id]
	if !ok {
		return nil, nil
	}

	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.Description != nil {
		r.Description = patch.Description
	}
	if patch.Coordinates != nil {
		r.Coordinates = patch.Coordinates
	}
	s.regions[id] = r

	return &r, nil
}

func (s *Store) DeleteRegion(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.regions[id]; !ok {
		return false, nil
	}
	delete(s.regions, id)

	return true, nil
}
