// Package middleware contains HTTP middleware functions for request processing
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/services"
)

// AuthMiddleware handles JWT token validation for protected endpoints
type AuthMiddleware struct {
	tokenService services.TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokenService services.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate is the middleware function that validates JWT tokens
func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Get the Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: "Authorization header is required",
				Error: dto.ErrorDetail{
					Code: "MISSING_AUTHORIZATION_HEADER",
				},
			})
		}

		// Check if the header starts with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: "Invalid authorization header format. Expected 'Bearer <token>'",
				Error: dto.ErrorDetail{
					Code: "INVALID_AUTHORIZATION_FORMAT",
				},
			})
		}

		// Extract the token (remove "Bearer " prefix)
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: "Access token is required",
				Error: dto.ErrorDetail{
					Code: "MISSING_ACCESS_TOKEN",
				},
			})
		}

		// Validate the token (this already checks for revocation)
		claims, err := m.tokenService.ValidateToken(token)
		if err != nil {
			var errorCode string
			var message string

			// Determine the specific error type
			if errors.Is(err, services.ErrTokenExpired) {
				errorCode = "TOKEN_EXPIRED"
				message = "Access token has expired"
			} else if errors.Is(err, services.ErrTokenInvalid) {
				errorCode = "TOKEN_INVALID"
				message = "Invalid access token"
			} else if errors.Is(err, services.ErrTokenRevoked) {
				errorCode = "TOKEN_REVOKED"
				message = "Access token has been revoked"
			} else {
				errorCode = "TOKEN_VALIDATION_FAILED"
				message = "Token validation failed"
			}

			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: message,
				Error: dto.ErrorDetail{
					Code: errorCode,
				},
			})
		}

		// Store operator information in context for downstream handlers
		c.Locals("operator_id", claims.OperatorID)
		c.Locals("token_id", claims.TokenID)
		c.Locals("token_claims", claims)

		// Store RequestID for audit logging
		if requestID := c.Get("X-Request-ID"); requestID != "" {
			c.Locals("request_id", requestID)
		}

		// Continue to the next handler
		return c.Next()
	}
}

// OptionalAuth is a middleware that validates JWT tokens if present, but doesn't require them
func (m *AuthMiddleware) OptionalAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Get the Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// No authorization header, continue without authentication
			return c.Next()
		}

		// Check if the header starts with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			// Invalid format, continue without authentication
			return c.Next()
		}

		// Extract the token (remove "Bearer " prefix)
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			// Empty token, continue without authentication
			return c.Next()
		}

		// Try to validate the token (this already checks for revocation)
		claims, err := m.tokenService.ValidateToken(token)
		if err != nil {
			// Token is invalid, but this is optional auth, so continue
			return c.Next()
		}

		// Store operator information in context for downstream handlers
		c.Locals("operator_id", claims.OperatorID)
		c.Locals("token_id", claims.TokenID)
		c.Locals("token_claims", claims)

		// Store RequestID for audit logging
		if requestID := c.Get("X-Request-ID"); requestID != "" {
			c.Locals("request_id", requestID)
		}

		// Continue to the next handler
		return c.Next()
	}
}

// GetOperatorIDFromContext extracts operator ID from the request context
func GetOperatorIDFromContext(c fiber.Ctx) (uint, bool) {
	operatorID, ok := c.Locals("operator_id").(uint)
	return operatorID, ok
}

// GetTokenClaimsFromContext extracts token claims from the request context
func GetTokenClaimsFromContext(c fiber.Ctx) (*services.TokenClaims, bool) {
	claims, ok := c.Locals("token_claims").(*services.TokenClaims)
	return claims, ok
}

// RequireAuth is a helper function that ensures authentication is required
func RequireAuth(c fiber.Ctx) error {
	operatorID, exists := GetOperatorIDFromContext(c)
	if !exists {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
			Success: false,
			Message: "Authentication required",
			Error: dto.ErrorDetail{
				Code: "AUTHENTICATION_REQUIRED",
			},
		})
	}

	// Check if operator ID is valid
	if operatorID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
			Success: false,
			Message: "Invalid operator ID",
			Error: dto.ErrorDetail{
				Code: "INVALID_OPERATOR_ID",
			},
		})
	}

	return nil
}
