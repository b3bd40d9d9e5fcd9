package memory

import (
	"context"
	"fmt"

	"github.com/garnizeh/treeline/pkg/models"
)

func (s *Store) CreateInventoryItem(ctx context.Context, in *models.InventoryItemInsert) (*models.InventoryItem, error) {
	if in == nil {
		return nil, fmt.Errorf("inventory insert is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.inventorySeq++
	it := models.InventoryItem{
		ID:          s.inventorySeq,
		Type:        in.Type,
		Name:        in.Name,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Status:      in.Status,
		LastUpdated: now(),
	}
	s.inventory[it.ID] = it

	return &it, nil
}

func (s *Store) GetInventoryItem(ctx context.Context, id int64) (*models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.inventory[id]
	if !ok {
		return nil, nil
	}

	return &it, nil
}

func (s *Store) ListInventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.InventoryItem, 0, len(s.inventory))
	for _, id := range sortedIDs(s.inventory) {
		out = append(out, s.inventory[id])
	}

	return out, nil
}

func (s *Store) UpdateInventoryItem(ctx context.Context, id int64, patch *models.InventoryItemPatch) (*models.InventoryItem, error) {
	if patch == nil {
		return nil, fmt.Errorf("inventory patch is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.inventory[id]
	if !ok {
		return nil, nil
	}

	if patch.Type != nil {
		it.Type = *patch.Type
	}
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		it.Unit = *patch.Unit
	}
	if patch.Status != nil {
		it.Status = *patch.Status
	}
	it.LastUpdated = now()
	s.inventory[id] = it

	return &it, nil
}

func (s *Store) DeleteInventoryItem(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inventory[id]; !ok {
		return false, nil
	}
	delete(s.inventory, id)

	return true, nil
}
