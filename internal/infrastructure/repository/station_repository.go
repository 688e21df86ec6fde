package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/prasetyow/nota-spbu-api/internal/domain/entity"
	"github.com/prasetyow/nota-spbu-api/internal/domain/repository"
)

type stationRepository struct {
	db *gorm.DB
}

// stationUpsertColumns are the columns refreshed when a save hits an existing
// ID. deleted_at is included so saving over a soft-deleted ID revives the row
// instead of silently updating an invisible one.
var stationUpsertColumns = []string{"name", "address", "footer_note", "receipt_width", "updated_at", "deleted_at"}

// NewStationRepository creates a new station profile repository
func NewStationRepository(db *gorm.DB) repository.StationRepository {
	return &stationRepository{db: db}
}

// List retrieves all station profiles ordered by creation time
func (r *stationRepository) List(ctx context.Context) ([]entity.StationProfile, error) {
	var stations []entity.StationProfile
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&stations).Error
	return stations, err
}

// GetByID retrieves a station profile by ID
func (r *stationRepository) GetByID(ctx context.Context, id string) (*entity.StationProfile, error) {
	var station entity.StationProfile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&station).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &station, nil
}

// Save upserts a station profile by ID. Existing rows have their fields
// merged; columns not carried by the model are left untouched.
func (r *stationRepository) Save(ctx context.Context, station *entity.StationProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(stationUpsertColumns),
	}).Create(station).Error
}

// Delete removes a station profile by ID
func (r *stationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.StationProfile{}).Error
}

// Count returns the number of station profiles
func (r *stationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.StationProfile{}).Count(&count).Error
	return count, err
}
