package entity

import (
	"time"

	"gorm.io/gorm"

	"github.com/prasetyow/nota-spbu-api/pkg/format"
)

// StationProfile represents a fuel station's identity and receipt
// presentation settings. Exactly one profile is active per session; the
// persisted collection is the source of truth for the selectable list.
type StationProfile struct {
	ID           string         `gorm:"size:64;primary_key" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Address      string         `gorm:"type:text" json:"address"`         // newline-separated lines
	FooterNote   string         `gorm:"type:text" json:"footer_note"`     // contains a {subsidi} placeholder
	ReceiptWidth int            `gorm:"default:300" json:"receipt_width"` // pixels
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a station ID before creating a new profile
func (s *StationProfile) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = format.NewStationID()
	}
	return nil
}

// TableName returns the table name for the StationProfile model
func (StationProfile) TableName() string {
	return "station_profiles"
}

// DefaultStationProfile returns the profile seeded on first boot so the
// selectable list is never empty.
func DefaultStationProfile() *StationProfile {
	return &StationProfile{
		ID:      format.NewStationID(),
		Name:    "SPBU SEMARANG DEMAK, BATU",
		Address: "JL. RY SEMARANG DEMAK DS.BATU",
		FooterNote: "Anda mendapat subsidi dari\n" +
			"Pemerintah sebesar Rp {subsidi}\n" +
			"(Perhitungan Subsidi Unaudited\n" +
			"atau Estimasi). Gunakan BBM\n" +
			"Subsidi secara bijak.",
		ReceiptWidth: 300,
	}
}
