package memory

import (
	"context"
	"fmt"

	"github.com/garnizeh/treeline/pkg/models"
)

func (s *Store) CreateLocation(ctx context.Context, in *models.LocationInsert) (*models.Location, error) {
	if in == nil {
		return nil, fmt.Errorf("location insert is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.locationSeq++
	l := models.Location{
		ID:          s.locationSeq,
		RegionID:    in.RegionID,
		Name:        in.Name,
		Status:      in.Status,
		Coordinates: in.Coordinates,
		LastUpdated: now(),
	}
	s.locations[l.ID] = l

	return &l, nil
}

func (s *Store) GetLocation(ctx context.Context, id int64) (*models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locations[id]
	if !ok {
		return nil, nil
	}

	return &l, nil
}

func (s *Store) ListLocations(ctx context.Context) ([]models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Location, 0, len(s.locations))
	for _, id := range sortedIDs(s.locations) {
		out = append(out, s.locations[id])
	}

	return out, nil
}

// ListLocationsByRegion does not check that the region exists; an unknown
// regionId simply matches nothing.
func (s *Store) ListLocationsByRegion(ctx context.Context, regionID int64) ([]models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Location{}
	for _, id := range sortedIDs(s.locations) {
		if l := s.locations[id]; l.RegionID == regionID {
			out = append(out, l)
		}
	}

	return out, nil
}

func (s *Store) UpdateLocation(ctx context.Context, id int64, patch *models.LocationPatch) (*models.Location, error) {
	if patch == nil {
		return nil, fmt.Errorf("location patch is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locations[id]
	if !ok {
		return nil, nil
	}

	if patch.RegionID != nil {
		l.RegionID = *patch.RegionID
	}
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.Status != nil {
		l.Status = *patch.Status
	}
	if patch.Coordinates != nil {
		l.Coordinates = patch.Coordinates
	}
	// lastUpdated refreshes on every update, even an empty one
	l.LastUpdated = now()
	s.locations[id] = l

	return &l, nil
}

func (s *Store) DeleteLocation(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.locations[id]; !ok {
		return false, nil
	}
	delete(s.locations, id)

	return true, nil
}
