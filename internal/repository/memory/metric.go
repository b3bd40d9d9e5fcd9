package memory

import (
	"context"
	"fmt"

	"github.com/garnizeh/treeline/pkg/models"
)

func (s *Store) CreateMetric(ctx context.Context, in *models.MetricInsert) (*models.Metric, error) {
	if in == nil {
		return nil, fmt.Errorf("metric insert is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.metricSeq++
	m := models.Metric{
		ID:               s.metricSeq,
		Name:             in.Name,
		Value:            in.Value,
		Unit:             in.Unit,
		PreviousValue:    in.PreviousValue,
		ChangePercentage: in.ChangePercentage,
		Trend:            in.Trend,
		Icon:             in.Icon,
		Category:         in.Category,
		Timestamp:        now(),
	}
	s.metrics[m.ID] = m

	return &m, nil
}

func (s *Store) GetMetric(ctx context.Context, id int64) (*models.Metric, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.metrics[id]
	if !ok {
		return nil, nil
	}

	return &m, nil
}

func (s *Store) ListMetrics(ctx context.Context) ([]models.Metric, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Metric, 0, len(s.metrics))
	for _, id := range sortedIDs(s.metrics) {
		out = append(out, s.metrics[id])
	}

	return out, nil
}

// ListLatestMetrics returns the most recent metric per category, in the
// fixed category order. Categories with no records are omitted.
func (s *Store) ListLatestMetrics(ctx context.Context) ([]models.Metric, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Metric{}
	for _, cat := range models.MetricCategories {
		var best *models.Metric
		for _, id := range sortedIDs(s.metrics) {
			m := s.metrics[id]
			if m.Category != cat {
				continue
			}
			if best == nil || m.Timestamp.After(best.Timestamp) || (m.Timestamp.Equal(best.Timestamp) && m.ID > best.ID) {
				mm := m
				best = &mm
			}
		}
		if best != nil {
			out = append(out, *best)
		}
	}

	return out, nil
}

func (s *Store) UpdateMetric(ctx context.Context, id int64, patch *models.MetricPatch) (*models.Metric, error) {
	if patch == nil {
		return nil, fmt.Errorf("metric patch is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.metrics[id]
	if !ok {
		return nil, nil
	}

	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Value != nil {
		m.Value = *patch.Value
	}
	if patch.Unit != nil {
		m.Unit = *patch.Unit
	}
	if patch.PreviousValue != nil {
		m.PreviousValue = patch.PreviousValue
	}
	if patch.ChangePercentage != nil {
		m.ChangePercentage = patch.ChangePercentage
	}
	if patch.Trend != nil {
		m.Trend = patch.Trend
	}
	if patch.Icon != nil {
		m.Icon = patch.Icon
	}
	if patch.Category != nil {
		m.Category = *patch.Category
	}
	s.metrics[id] = m

	return &m, nil
}

func (s *Store) DeleteMetric(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.metrics[id]; !ok {
		return false, nil
	}
	delete(s.metrics, id)

	return true, nil
}
