package dto

// LabelElementDTO represents one positioned element of a design
type LabelElementDTO struct {
	ElementID  string  `json:"element_id" validate:"required,min=1,max=64" example:"to_name"`
	Kind       string  `json:"kind" validate:"required" example:"name"`
	Text       string  `json:"text" validate:"max=500" example:"[TO NAME]"`
	X          int     `json:"x" validate:"gte=0" example:"20"`
	Y          int     `json:"y" validate:"gte=0" example:"150"`
	FontSize   int     `json:"font_size" validate:"gte=1,lte=8" example:"6"`
	Bold       bool    `json:"bold" example:"true"`
	Visible    bool    `json:"visible" example:"true"`
	IconUUID   *string `json:"icon_uuid,omitempty" validate:"omitempty,uuid"`
	IconWidth  *int    `json:"icon_width,omitempty" validate:"omitempty,gt=0"`
	IconHeight *int    `json:"icon_height,omitempty" validate:"omitempty,gt=0"`
}

// CreateLabelDesignRequest represents the request to create a design
type CreateLabelDesignRequest struct {
	Name            string            `json:"name" validate:"required,min=1,max=100" example:"Standard shipping"`
	Description     *string           `json:"description,omitempty" validate:"omitempty,max=500"`
	LabelConfigUUID string            `json:"label_config_uuid" validate:"required,uuid"`
	UseDefault      bool              `json:"use_default_layout" example:"true"`
	FontProfile     *string           `json:"font_profile,omitempty" validate:"omitempty,max=64" example:"default"`
	Elements        []LabelElementDTO `json:"elements,omitempty" validate:"omitempty,dive"`
}

// UpdateLabelDesignRequest represents the request to update a design. A
// non-nil Elements slice replaces the stored element list entirely.
type UpdateLabelDesignRequest struct {
	Name        *string           `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string           `json:"description,omitempty" validate:"omitempty,max=500"`
	IsDefault   *bool             `json:"is_default,omitempty"`
	Elements    []LabelElementDTO `json:"elements,omitempty" validate:"omitempty,dive"`
}

// DefaultLayoutRequest asks for a generated starting layout for a stock
type DefaultLayoutRequest struct {
	LabelConfigUUID string  `json:"label_config_uuid" validate:"required,uuid"`
	FontProfile     *string `json:"font_profile,omitempty" validate:"omitempty,max=64" example:"default"`
}

// LabelDesignDTO represents a design in API responses
type LabelDesignDTO struct {
	UUID        string            `json:"uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string            `json:"name" example:"Standard shipping"`
	Description *string           `json:"description,omitempty"`
	LabelConfig LabelConfigDTO    `json:"label_config"`
	IsDefault   bool              `json:"is_default" example:"false"`
	Elements    []LabelElementDTO `json:"elements"`
	CreatedAt   string            `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt   *string           `json:"updated_at,omitempty"`
}

// ListLabelDesignsResponse represents the design listing payload
type ListLabelDesignsResponse struct {
	Designs []LabelDesignDTO `json:"designs"`
	Total   int64            `json:"total" example:"12"`
}

// DefaultLayoutResponse carries a generated element list that has not been
// persisted yet
type DefaultLayoutResponse struct {
	Elements []LabelElementDTO `json:"elements"`
}
