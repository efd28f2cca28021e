package dto

// IconAssetDTO represents an uploaded icon in API responses
type IconAssetDTO struct {
	UUID       string `json:"uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name       string `json:"name" example:"fragile"`
	MimeType   string `json:"mime_type" example:"image/png"`
	WidthDots  int    `json:"width_dots" example:"96"`
	HeightDots int    `json:"height_dots" example:"96"`
	SizeBytes  int64  `json:"size_bytes" example:"2048"`
	CreatedAt  string `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// UploadIconResponse represents the outcome of an icon upload
type UploadIconResponse struct {
	Icon IconAssetDTO `json:"icon"`
}

// ListIconsResponse represents the icon listing payload
type ListIconsResponse struct {
	Icons []IconAssetDTO `json:"icons"`
	Total int            `json:"total" example:"3"`
}
