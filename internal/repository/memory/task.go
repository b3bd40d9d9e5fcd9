package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/garnizeh/treeline/pkg/models"
)

func (s *Store) CreateTask(ctx context.Context, in *models.TaskInsert) (*models.Task, error) {
	if in == nil {
		return nil, fmt.Errorf("task insert is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = models.TaskPending
	}

	s.taskSeq++
	t := models.Task{
		ID:            s.taskSeq,
		Title:         in.Title,
		Description:   in.Description,
		Location:      in.Location,
		Priority:      in.Priority,
		Status:        status,
		Category:      in.Category,
		AssignedTo:    in.AssignedTo,
		ScheduledDate: in.ScheduledDate,
		Completed:     false,
		CompletedAt:   nil,
	}
	s.tasks[t.ID] = t

	return &t, nil
}

func (s *Store) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}

	return &t, nil
}

func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Task, 0, len(s.tasks))
	for _, id := range sortedIDs(s.tasks) {
		out = append(out, s.tasks[id])
	}

	return out, nil
}

// ListUpcomingTasks returns incomplete tasks scheduled strictly in the
// future, soonest first. A limit <= 0 means no truncation.
func (s *Store) ListUpcomingTasks(ctx context.Context, limit int) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now()
	out := []models.Task{}
	for _, t := range s.tasks {
		if t.Completed || !t.ScheduledDate.After(cutoff) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledDate.Equal(out[j].ScheduledDate) {
			return out[i].ScheduledDate.Before(out[j].ScheduledDate)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (s *Store) UpdateTask(ctx context.Context, id int64, patch *models.TaskPatch) (*models.Task, error) {
	if patch == nil {
		return nil, fmt.Errorf("task patch is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.Location != nil {
		t.Location = *patch.Location
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.AssignedTo != nil {
		t.AssignedTo = patch.AssignedTo
	}
	if patch.ScheduledDate != nil {
		t.ScheduledDate = *patch.ScheduledDate
	}
	s.tasks[id] = t

	return &t, nil
}

// CompleteTask marks the task completed. Repeat completion overwrites
// completedAt with the new current time.
func (s *Store) CompleteTask(ctx context.Context, id int64) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}

	ts := now()
	t.Completed = true
	t.Status = models.TaskCompleted
	t.CompletedAt = &ts
	s.tasks[id] = t

	return &t, nil
}

func (s *Store) DeleteTask(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false, nil
	}
	delete(s.tasks, id)

	return true, nil
}
