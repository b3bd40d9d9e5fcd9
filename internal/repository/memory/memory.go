// Package memory is the reference storage engine: seven independent
// collections held in process memory, each keyed by an auto-incrementing
// int64 id. A single mutex serializes access so the monotonic-id invariant
// holds under concurrent creates.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/garnizeh/treeline/pkg/models"
	"github.com/garnizeh/treeline/pkg/repository"
)

// Store implements repository.Store in memory.
type Store struct {
	mu sync.Mutex

	users     map[int64]models.User
	regions   map[int64]models.Region
	locations map[int64]models.Location
	inventory map[int64]models.InventoryItem
	activity  map[int64]models.Activity
	tasks     map[int64]models.Task
	metrics   map[int64]models.Metric

	// per-entity id counters; start at 0 and only ever grow, so ids are
	// positive, unique and never reused after deletion
	userSeq      int64
	regionSeq    int64
	locationSeq  int64
	inventorySeq int64
	activitySeq  int64
	taskSeq      int64
	metricSeq    int64
}

var _ repository.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		users:     map[int64]models.User{},
		regions:   map[int64]models.Region{},
		locations: map[int64]models.Location{},
		inventory: map[int64]models.InventoryItem{},
		activity:  map[int64]models.Activity{},
		tasks:     map[int64]models.Task{},
		metrics:   map[int64]models.Metric{},
	}
}

func now() time.Time {
	return time.Now().UTC()
}

// sortedIDs returns the keys of m ascending. Ids are assigned
// monotonically, so ascending id order is insertion order.
func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
