// store/memory.go
package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cmlsolutions-1/sgi-sub000/models"
)

// MemoryStore is an in-memory Repository. It backs tests and lets the
// surrounding app run without a database. Records are deep-copied on the way
// in and out so callers can never mutate stored state through a reference.
type MemoryStore struct {
	mu      sync.Mutex
	records []models.RiskRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadAll(ctx context.Context) ([]models.RiskRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	out := make([]models.RiskRecord, 0, len(s.records))
	for i := range s.records {
		r := *s.records[i].Clone()
		Normalize(&r, now)
		out = append(out, r)
	}
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, record *models.RiskRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	record.Reclassify()

	s.records = append(s.records, *record.Clone())
	return nil
}

func (s *MemoryStore) UpdateByID(ctx context.Context, id string, record *models.RiskRecord) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == oid {
			record.ID = oid
			record.UpdatedAt = time.Now()
			record.Reclassify()
			s.records[i] = *record.Clone()
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == oid {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
