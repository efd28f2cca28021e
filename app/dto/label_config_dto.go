package dto

// CreateLabelConfigRequest represents the request to register a label stock
type CreateLabelConfigRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100" example:"100x150 Shipping"`
	WidthMM     float64 `json:"width_mm" validate:"required,gt=0,lte=300" example:"101"`
	HeightMM    float64 `json:"height_mm" validate:"required,gt=0,lte=600" example:"152"`
	SpacingMM   float64 `json:"spacing_mm" validate:"gte=0,lte=20" example:"3"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsDefault   bool    `json:"is_default" example:"false"`
}

// UpdateLabelConfigRequest represents the request to update a label stock
type UpdateLabelConfigRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	WidthMM     *float64 `json:"width_mm,omitempty" validate:"omitempty,gt=0,lte=300"`
	HeightMM    *float64 `json:"height_mm,omitempty" validate:"omitempty,gt=0,lte=600"`
	SpacingMM   *float64 `json:"spacing_mm,omitempty" validate:"omitempty,gte=0,lte=20"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	IsDefault   *bool    `json:"is_default,omitempty"`
}

// LabelConfigDTO represents a label stock in API responses
type LabelConfigDTO struct {
	UUID        string  `json:"uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string  `json:"name" example:"100x150 Shipping"`
	WidthMM     float64 `json:"width_mm" example:"101"`
	HeightMM    float64 `json:"height_mm" example:"152"`
	SpacingMM   float64 `json:"spacing_mm" example:"3"`
	Description *string `json:"description,omitempty"`
	IsDefault   bool    `json:"is_default" example:"false"`
	IsBuiltin   bool    `json:"is_builtin" example:"true"`
	CreatedAt   string  `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// ListLabelConfigsResponse represents the label stock listing payload
type ListLabelConfigsResponse struct {
	Configs []LabelConfigDTO `json:"configs"`
	Total   int              `json:"total" example:"4"`
}
