package dto

// SaveFontSettingsRequest carries the flat settings map for a named profile.
// Legacy key names written by old app versions are accepted and translated
// on read; the stored map is never rewritten.
type SaveFontSettingsRequest struct {
	Settings map[string]any `json:"settings" validate:"required"`
}

// FontSettingsDTO represents a named font profile in API responses
type FontSettingsDTO struct {
	Name     string         `json:"name" example:"default"`
	Settings map[string]any `json:"settings"`
	IsPreset bool           `json:"is_preset" example:"true"`
}

// ListFontPresetsResponse represents the seeded preset profiles
type ListFontPresetsResponse struct {
	Presets []FontSettingsDTO `json:"presets"`
}
