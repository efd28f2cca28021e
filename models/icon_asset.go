package models

import (
	"time"

	"github.com/google/uuid"
)

// IconAsset is an uploaded image prepared for label printing. WidthDots and
// HeightDots record the monochrome raster size the file was normalized to.
type IconAsset struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UUID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_icon_assets_uuid" json:"uuid"`
	OperatorID uint      `gorm:"not null;index:idx_icon_assets_operator_id" json:"operator_id"`
	Operator   *Operator `gorm:"foreignKey:OperatorID;references:ID" json:"operator,omitempty"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Path       string    `gorm:"size:512;not null" json:"-"`
	MimeType   string    `gorm:"size:100;not null" json:"mime_type"`
	WidthDots  int       `gorm:"not null" json:"width_dots"`
	HeightDots int       `gorm:"not null" json:"height_dots"`
	SizeBytes  int64     `gorm:"not null" json:"size_bytes"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_icon_assets_created_at" json:"created_at"`
}

func (IconAsset) TableName() string {
	return "icon_assets"
}

// BeforeCreate is called before creating a new record
func (a *IconAsset) BeforeCreate() error {
	if a.UUID == uuid.Nil {
		a.UUID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return nil
}

// IconAssetFilter represents filter criteria for icon asset queries
type IconAssetFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	OperatorID    *uint
	Name          *string
	MimeType      *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
