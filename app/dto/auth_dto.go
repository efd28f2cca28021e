// Package dto contains Data Transfer Objects for API request and response structures
package dto

import (
	"time"
)

// LoginRequest represents the request payload for operator login
type LoginRequest struct {
	Email        string  `json:"email" validate:"required,email,max=255" example:"operator@example.com"`
	Password     string  `json:"password" validate:"required,min=8,max=100" example:"SecurePass123!"`
	CaptchaID    string  `json:"captcha_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	CaptchaAngle float64 `json:"captcha_angle" validate:"required" example:"137"`
}

// OperatorDTO represents operator information returned in auth responses
type OperatorDTO struct {
	ID        uint   `json:"id" example:"123"`
	UUID      string `json:"uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email     string `json:"email" example:"operator@example.com"`
	FullName  string `json:"full_name" example:"Jane Smith"`
	IsActive  *bool  `json:"is_active" example:"true"`
	CreatedAt string `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// SessionDTO represents the issued token pair
type SessionDTO struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken *string `json:"refresh_token,omitempty"`
	TokenType    string  `json:"token_type" example:"Bearer"`
	ExpiresIn    int     `json:"expires_in" example:"86400"`
	CreatedAt    string  `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// LoginResponse represents the successful login response payload
type LoginResponse struct {
	Operator OperatorDTO `json:"operator"`
	Session  SessionDTO  `json:"session"`
}

// RefreshTokenRequest represents the request to rotate a token pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// RefreshTokenResponse represents the response with a fresh token pair
type RefreshTokenResponse struct {
	Session SessionDTO `json:"session"`
}

// CaptchaResponse represents a generated rotate-captcha challenge
type CaptchaResponse struct {
	CaptchaID         string `json:"captcha_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	MasterImageBase64 string `json:"master_image_base64"`
	ThumbImageBase64  string `json:"thumb_image_base64"`
	ExpiresAt         string `json:"expires_at" example:"2024-01-15T10:32:00Z"`
}

// Common error codes for auth operations
const (
	ErrorOperatorNotFound  = "OPERATOR_NOT_FOUND"
	ErrorIncorrectPassword = "INCORRECT_PASSWORD"
	ErrorAccountInactive   = "ACCOUNT_INACTIVE"
	ErrorCaptchaFailed     = "CAPTCHA_FAILED"
	ErrorTokenInvalid      = "TOKEN_INVALID"
	ErrorTokenExpired      = "TOKEN_EXPIRED"
)

// NewSessionDTO builds a SessionDTO from raw token material
func NewSessionDTO(accessToken string, refreshToken *string, expiresAt, createdAt time.Time) SessionDTO {
	return SessionDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(time.Until(expiresAt).Seconds()),
		CreatedAt:    createdAt.Format(time.RFC3339),
	}
}
