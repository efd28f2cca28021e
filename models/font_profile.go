package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FontProfile persists a named set of font settings as the flat key map the
// client apps exchange. Old app versions wrote legacy key names
// (subtitleFontSize, titleFontSize, contentFontSize, smallFontSize); the
// tspl package translates those when the map is decoded, so rows are never
// rewritten on read.
type FontProfile struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UUID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uk_font_profiles_uuid" json:"uuid"`
	OperatorID uint            `gorm:"not null;index:idx_font_profiles_operator_id;uniqueIndex:uk_font_profiles_operator_name" json:"operator_id"`
	Operator   *Operator       `gorm:"foreignKey:OperatorID;references:ID" json:"operator,omitempty"`
	Name       string          `gorm:"size:64;not null;uniqueIndex:uk_font_profiles_operator_name" json:"name"`
	Settings   json.RawMessage `gorm:"type:jsonb;not null" json:"settings"`
	IsPreset   *bool           `gorm:"default:false" json:"is_preset"`

	CreatedAt time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (FontProfile) TableName() string {
	return "font_profiles"
}

// BeforeCreate is called before creating a new record
func (p *FontProfile) BeforeCreate() error {
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return nil
}

// BeforeUpdate is called before updating a record
func (p *FontProfile) BeforeUpdate() error {
	now := time.Now().UTC()
	p.UpdatedAt = &now
	return nil
}

// SettingsMap decodes the stored settings into the flat key map.
func (p *FontProfile) SettingsMap() (map[string]any, error) {
	if len(p.Settings) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(p.Settings, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Names of the seeded preset profiles.
const (
	FontProfileDefault = "default"
	FontProfileSmall   = "small"
	FontProfileLarge   = "large"
)

// FontProfileFilter represents filter criteria for font profile queries
type FontProfileFilter struct {
	ID         *uint
	UUID       *uuid.UUID
	OperatorID *uint
	Name       *string
	IsPreset   *bool
}
