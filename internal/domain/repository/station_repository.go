package repository

import (
	"context"

	"github.com/prasetyow/nota-spbu-api/internal/domain/entity"
)

// StationRepository defines the interface for station profile data access.
// Any persistence backend satisfying this contract is substitutable.
type StationRepository interface {
	// List returns all profiles; the persisted collection is the source of
	// truth for the selectable list.
	List(ctx context.Context) ([]entity.StationProfile, error)
	GetByID(ctx context.Context, id string) (*entity.StationProfile, error)
	// Save upserts by id, merging fields without deleting unspecified ones.
	Save(ctx context.Context, station *entity.StationProfile) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
