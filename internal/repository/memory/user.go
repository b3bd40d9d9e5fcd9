package memory

import (
	"context"
	"fmt"

	"github.com/garnizeh/treeline/pkg/models"
)

func (s *Store) CreateUser(ctx context.Context, in *models.UserInsert) (*models.User, error) {
	if in == nil {
		return nil, fmt.Errorf("user insert is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	u := models.User{
		ID:           s.userSeq,
		Username:     in.Username,
		Password:     in.Password,
		FullName:     in.FullName,
		Email:        in.Email,
		Role:         in.Role,
		ProfileImage: in.ProfileImage,
	}
	s.users[u.ID] = u

	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.users))
	for _, id := range sortedIDs(s.users) {
		out = append(out, s.users[id])
	}

	return out, nil
}

func (s *Store) UpdateUser(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error) {
	if patch == nil {
		return nil, fmt.Errorf("user patch is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.ProfileImage != nil {
		u.ProfileImage = patch.ProfileImage
	}
	s.users[id] = u

	return &u, nil
}

func (s *Store) DeleteUser(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)

	return true, nil
}
