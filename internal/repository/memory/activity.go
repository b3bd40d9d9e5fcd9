package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/garnizeh/treeline/pkg/models"
)

func (s *Store) CreateActivity(ctx context.Context, in *models.ActivityInsert) (*models.Activity, error) {
	if in == nil {
		return nil, fmt.Errorf("activity insert is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.activitySeq++
	a := models.Activity{
		ID:          s.activitySeq,
		UserID:      in.UserID,
		Type:        in.Type,
		Description: in.Description,
		Location:    in.Location,
		Team:        in.Team,
		Timestamp:   now(),
		Coordinates: in.Coordinates,
	}
	s.activity[a.ID] = a

	return &a, nil
}

func (s *Store) GetActivity(ctx context.Context, id int64) (*models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activity[id]
	if !ok {
		return nil, nil
	}

	return &a, nil
}

func (s *Store) ListActivities(ctx context.Context) ([]models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Activity, 0, len(s.activity))
	for _, id := range sortedIDs(s.activity) {
		out = append(out, s.activity[id])
	}

	return out, nil
}

// ListRecentActivities returns activities newest-first, truncated to limit.
// A limit <= 0 means no truncation.
func (s *Store) ListRecentActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Activity, 0, len(s.activity))
	for _, a := range s.activity {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (s *Store) UpdateActivity(ctx context.Context, id int64, patch *models.ActivityPatch) (*models.Activity, error) {
	if patch == nil {
		return nil, fmt.Errorf("activity patch is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activity[id]
	if !ok {
		return nil, nil
	}

	if patch.UserID != nil {
		a.UserID = *patch.UserID
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.Description != nil {
		a.Description = *patch.Description
	}
	if patch.Location != nil {
		a.Location = *patch.Location
	}
	if patch.Team != nil {
		a.Team = patch.Team
	}
	if patch.Coordinates != nil {
		a.Coordinates = patch.Coordinates
	}
	s.activity[id] = a

	return &a, nil
}

func (s *Store) DeleteActivity(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.activity[id]; !ok {
		return false, nil
	}
	delete(s.activity, id)

	return true, nil
}
