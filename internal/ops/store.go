package ops

import (
	"github.com/jacksmith/emp/internal/model"
	"github.com/jacksmith/emp/internal/storage"
)

// Store defines the persistence interface required by Session.
// The concrete implementation is storage.Store, but this interface allows
// alternative backends (in-memory, failing writers) for testing.
type Store interface {
	Load() (*model.Table, *storage.LoadReport, error)
	Save(t *model.Table) error
}
