// store/store.go
package store

import (
	"context"
	"errors"

	"github.com/cmlsolutions-1/sgi-sub000/models"
)

// ErrNotFound is returned when an update or delete targets an id that is not
// in the collection.
var ErrNotFound = errors.New("risk record not found")

// Repository is the persistence contract for risk records. The engine never
// touches storage directly: implementations are injected so tests can swap in
// MemoryStore.
type Repository interface {
	LoadAll(ctx context.Context) ([]models.RiskRecord, error)
	Create(ctx context.Context, record *models.RiskRecord) error
	UpdateByID(ctx context.Context, id string, record *models.RiskRecord) error
	DeleteByID(ctx context.Context, id string) error
}
