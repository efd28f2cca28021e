package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ElementKind identifies what an element on a label represents. Text kinds
// map to font roles at render time; icon and separator are drawn directly.
type ElementKind string

const (
	ElementKindHeader     ElementKind = "header"
	ElementKindName       ElementKind = "name"
	ElementKindAddress    ElementKind = "address"
	ElementKindPhone      ElementKind = "phone"
	ElementKindLabelTitle ElementKind = "label_title"
	ElementKindCOD        ElementKind = "cod"
	ElementKindFreeText   ElementKind = "free_text"
	ElementKindIcon       ElementKind = "icon"
	ElementKindSeparator  ElementKind = "separator"
)

// String returns the string representation of the kind
func (k ElementKind) String() string {
	return string(k)
}

// Valid checks if the kind is valid
func (k ElementKind) Valid() bool {
	switch k {
	case ElementKindHeader, ElementKindName, ElementKindAddress,
		ElementKindPhone, ElementKindLabelTitle, ElementKindCOD,
		ElementKindFreeText, ElementKindIcon, ElementKindSeparator:
		return true
	default:
		return false
	}
}

// IsText reports whether the kind renders through the font resolver.
func (k ElementKind) IsText() bool {
	switch k {
	case ElementKindHeader, ElementKindName, ElementKindAddress,
		ElementKindPhone, ElementKindLabelTitle, ElementKindCOD,
		ElementKindFreeText:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for ElementKind
func (k *ElementKind) Scan(value any) error {
	if value == nil {
		*k = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*k = ElementKind(v)
	case []byte:
		*k = ElementKind(string(v))
	default:
		return fmt.Errorf("cannot scan %T into ElementKind", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for ElementKind
func (k ElementKind) Value() (driver.Value, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid ElementKind: %s", k)
	}
	return string(k), nil
}

// LabelElement is one positioned item of a design. Coordinates are printer
// dots from the top-left corner of the label.
type LabelElement struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	DesignID  uint        `gorm:"not null;index:idx_label_elements_design_id" json:"design_id"`
	ElementID string      `gorm:"size:64;not null" json:"element_id"`
	Kind      ElementKind `gorm:"type:label_element_kind;not null" json:"kind"`
	Text      string      `gorm:"type:text;not null;default:''" json:"text"`
	X         int         `gorm:"not null" json:"x"`
	Y         int         `gorm:"not null" json:"y"`
	FontSize  int         `gorm:"not null;default:4" json:"font_size"`
	Bold      *bool       `gorm:"default:false" json:"bold"`
	Visible   *bool       `gorm:"default:true" json:"visible"`
	SortOrder int         `gorm:"not null;default:0;index:idx_label_elements_sort_order" json:"sort_order"`

	// Icon elements only
	IconAssetID *uint      `gorm:"index:idx_label_elements_icon_asset_id" json:"icon_asset_id,omitempty"`
	IconAsset   *IconAsset `gorm:"foreignKey:IconAssetID;references:ID" json:"icon_asset,omitempty"`
	IconWidth   *int       `json:"icon_width,omitempty"`
	IconHeight  *int       `json:"icon_height,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
}

func (LabelElement) TableName() string {
	return "label_elements"
}

func (e *LabelElement) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

func (e *LabelElement) IsBold() bool {
	return e.Bold != nil && *e.Bold
}

// HasValidPosition checks that the element sits inside the printable area.
func (e *LabelElement) HasValidPosition() bool {
	return e.X >= 0 && e.Y >= 0
}

// LabelElementFilter represents filter criteria for label element queries
type LabelElementFilter struct {
	ID        *uint
	DesignID  *uint
	ElementID *string
	Kind      *ElementKind
	Visible   *bool
}
