package models

import (
	"time"

	"github.com/google/uuid"
)

// LabelDesign is an operator-authored arrangement of elements on a label
// stock. Elements are kept in a separate table ordered by SortOrder.
type LabelDesign struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	UUID          uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uk_label_designs_uuid" json:"uuid"`
	OperatorID    uint         `gorm:"not null;index:idx_label_designs_operator_id" json:"operator_id"`
	Operator      *Operator    `gorm:"foreignKey:OperatorID;references:ID" json:"operator,omitempty"`
	LabelConfigID uint         `gorm:"not null;index:idx_label_designs_label_config_id" json:"label_config_id"`
	LabelConfig   *LabelConfig `gorm:"foreignKey:LabelConfigID;references:ID" json:"label_config,omitempty"`
	Name          string       `gorm:"size:100;not null" json:"name"`
	Description   *string      `gorm:"type:text" json:"description,omitempty"`
	IsDefault     *bool        `gorm:"default:false;index:idx_label_designs_is_default" json:"is_default"`

	CreatedAt time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_label_designs_created_at" json:"created_at"`
	UpdatedAt *time.Time `gorm:"index:idx_label_designs_updated_at" json:"updated_at,omitempty"`

	// Relations
	Elements  []LabelElement `gorm:"foreignKey:DesignID" json:"elements,omitempty"`
	PrintJobs []PrintJob     `gorm:"foreignKey:DesignID" json:"-"`
}

func (LabelDesign) TableName() string {
	return "label_designs"
}

// BeforeCreate is called before creating a new record
func (d *LabelDesign) BeforeCreate() error {
	if d.UUID == uuid.Nil {
		d.UUID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	return nil
}

// BeforeUpdate is called before updating a record
func (d *LabelDesign) BeforeUpdate() error {
	now := time.Now().UTC()
	d.UpdatedAt = &now
	return nil
}

// VisibleElements returns the elements that will be rendered, in sort order.
// The slice must already be loaded ordered by SortOrder.
func (d *LabelDesign) VisibleElements() []LabelElement {
	visible := make([]LabelElement, 0, len(d.Elements))
	for _, e := range d.Elements {
		if e.IsVisible() {
			visible = append(visible, e)
		}
	}
	return visible
}

// LabelDesignFilter represents filter criteria for label design queries
type LabelDesignFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	OperatorID    *uint
	LabelConfigID *uint
	Name          *string
	IsDefault     *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
}
