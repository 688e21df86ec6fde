package service

import (
	"context"

	"github.com/prasetyow/nota-spbu-api/internal/domain/entity"
	"github.com/prasetyow/nota-spbu-api/internal/domain/repository"
	"github.com/prasetyow/nota-spbu-api/pkg/apperror"
)

// StationService handles station profile business logic
type StationService struct {
	stationRepo repository.StationRepository
}

// NewStationService creates a new station service
func NewStationService(stationRepo repository.StationRepository) *StationService {
	return &StationService{stationRepo: stationRepo}
}

// List returns all station profiles
func (s *StationService) List(ctx context.Context) ([]entity.StationProfile, error) {
	return s.stationRepo.List(ctx)
}

// Get retrieves a station profile by ID
func (s *StationService) Get(ctx context.Context, id string) (*entity.StationProfile, error) {
	station, err := s.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, apperror.NewNotFoundError("Station profile")
	}
	return station, nil
}

// SaveStationInput carries a field-by-field profile patch. Nil fields are
// left unchanged on update.
type SaveStationInput struct {
	ID           string
	Name         *string
	Address      *string
	FooterNote   *string
	ReceiptWidth *int
}

// apply merges the non-nil patch fields onto a profile.
func (in *SaveStationInput) apply(station *entity.StationProfile) {
	if in.Name != nil {
		station.Name = *in.Name
	}
	if in.Address != nil {
		station.Address = *in.Address
	}
	if in.FooterNote != nil {
		station.FooterNote = *in.FooterNote
	}
	if in.ReceiptWidth != nil && *in.ReceiptWidth > 0 {
		station.ReceiptWidth = *in.ReceiptWidth
	}
}

// Create adds a new station profile. Omitted fields get the placeholder
// values a freshly added profile starts with.
func (s *StationService) Create(ctx context.Context, input *SaveStationInput) (*entity.StationProfile, error) {
	station := entity.DefaultStationProfile()
	station.Name = "SPBU BARU"
	station.Address = "Alamat SPBU Baru"

	input.apply(station)

	if err := s.stationRepo.Save(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

// Save upserts a station profile by ID, merging the patch onto the stored
// profile so fields absent from the request are never blanked. The merged
// profile name must not be empty; validation happens before any store write.
func (s *StationService) Save(ctx context.Context, input *SaveStationInput) (*entity.StationProfile, error) {
	station, err := s.stationRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if station == nil {
		station = &entity.StationProfile{ID: input.ID, ReceiptWidth: 300}
	}

	input.apply(station)

	if station.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Station name must not be empty"},
		})
	}

	if err := s.stationRepo.Save(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

// Delete removes a station profile. Deleting the sole remaining profile is
// rejected before any store call so the selectable list never becomes empty.
func (s *StationService) Delete(ctx context.Context, id string) error {
	station, err := s.stationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if station == nil {
		return apperror.NewNotFoundError("Station profile")
	}

	count, err := s.stationRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return apperror.ErrLastStation
	}

	return s.stationRepo.Delete(ctx, id)
}
