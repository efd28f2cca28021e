// Package models contains domain entities and business models for the label service
package models

import (
	"time"

	"github.com/google/uuid"
)

// LabelConfig describes the physical geometry of a label stock loaded in a
// printer: width, height and the gap between consecutive labels, all in mm.
type LabelConfig struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UUID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_label_configs_uuid" json:"uuid"`
	OperatorID  uint      `gorm:"not null;index:idx_label_configs_operator_id" json:"operator_id"`
	Operator    *Operator `gorm:"foreignKey:OperatorID;references:ID" json:"operator,omitempty"`
	Name        string    `gorm:"size:100;not null;index:idx_label_configs_name" json:"name"`
	WidthMM     float64   `gorm:"not null" json:"width_mm"`
	HeightMM    float64   `gorm:"not null" json:"height_mm"`
	SpacingMM   float64   `gorm:"not null;default:2" json:"spacing_mm"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	IsDefault   *bool     `gorm:"default:false;index:idx_label_configs_is_default" json:"is_default"`
	IsBuiltin   *bool     `gorm:"default:false" json:"is_builtin"`

	CreatedAt time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_label_configs_created_at" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Relations
	Designs []LabelDesign `gorm:"foreignKey:LabelConfigID" json:"-"`
}

func (LabelConfig) TableName() string {
	return "label_configs"
}

// BeforeCreate is called before creating a new record
func (c *LabelConfig) BeforeCreate() error {
	if c.UUID == uuid.Nil {
		c.UUID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return nil
}

// Same reports whether two configs describe the same stock. Identity is
// name plus physical size; spacing and description may differ.
func (c *LabelConfig) Same(other *LabelConfig) bool {
	if other == nil {
		return false
	}
	return c.Name == other.Name &&
		c.WidthMM == other.WidthMM &&
		c.HeightMM == other.HeightMM
}

// HasValidGeometry checks that the stock dimensions are printable.
func (c *LabelConfig) HasValidGeometry() bool {
	return c.WidthMM > 0 && c.HeightMM > 0 && c.SpacingMM >= 0
}

// LabelConfigFilter represents filter criteria for label config queries
type LabelConfigFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	OperatorID    *uint
	Name          *string
	WidthMM       *float64
	HeightMM      *float64
	IsDefault     *bool
	IsBuiltin     *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
