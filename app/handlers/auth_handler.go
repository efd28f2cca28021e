// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	businessflow "github.com/nmzabith/thermal-printer-label-app-sub001/business_flow"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
)

// AuthHandlerInterface defines the contract for authentication handlers
type AuthHandlerInterface interface {
	GetCaptcha(c fiber.Ctx) error
	Login(c fiber.Ctx) error
	RefreshToken(c fiber.Ctx) error
	Logout(c fiber.Ctx) error
	Health(c fiber.Ctx) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authFlow  businessflow.AuthFlow
	validator *validator.Validate
}

func (h *AuthHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *AuthHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authFlow businessflow.AuthFlow) *AuthHandler {
	return &AuthHandler{
		authFlow:  authFlow,
		validator: validator.New(),
	}
}

// GetCaptcha issues a rotate-captcha challenge for the login form
// @Summary Get Login Captcha
// @Description Generate a rotate captcha challenge required for login
// @Tags Authentication
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CaptchaResponse} "Captcha generated"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/auth/captcha [get]
func (h *AuthHandler) GetCaptcha(c fiber.Ctx) error {
	result, err := h.authFlow.GetCaptcha(h.createRequestContext(c, "/api/v1/auth/captcha"))
	if err != nil {
		log.Println("Captcha generation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Captcha generation failed", "CAPTCHA_GENERATION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Captcha generated", result)
}

// Login handles operator authentication
// @Summary Operator Login
// @Description Authenticate operator with email, password and captcha answer
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful with tokens"
// @Failure 400 {object} dto.APIResponse "Invalid request or captcha"
// @Failure 401 {object} dto.APIResponse "Authentication failed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	// Validate request
	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	// Get client information
	ipAddress := c.IP()
	userAgent := c.Get("User-Agent")
	metadata := businessflow.NewClientMetadata(ipAddress, userAgent)

	// Call business logic with proper context
	result, err := h.authFlow.Login(h.createRequestContext(c, "/api/v1/auth/login"), &req, metadata)
	if err != nil {
		// Handle specific business errors
		if businessflow.IsCaptchaFailed(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Captcha verification failed", "CAPTCHA_FAILED", nil)
		}
		if businessflow.IsOperatorNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS", nil)
		}
		if businessflow.IsIncorrectPassword(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS", nil)
		}
		if businessflow.IsAccountInactive(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account is inactive", "ACCOUNT_INACTIVE", nil)
		}

		log.Println("Login failed", err)
		// Handle generic business errors
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", "LOGIN_FAILED", nil)
	}

	// Successful login - return tokens and operator info
	return h.SuccessResponse(c, fiber.StatusOK, "Login successful", fiber.Map{
		"access_token":  result.Session.AccessToken,
		"refresh_token": result.Session.RefreshToken,
		"token_type":    "Bearer",
		"expires_in":    utils.AccessTokenTTLSeconds,
		"operator":      result.Operator,
	})
}

// RefreshToken rotates an access/refresh token pair
// @Summary Refresh Token
// @Description Exchange a valid refresh token for a new token pair
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.RefreshTokenResponse} "Token pair rotated"
// @Failure 400 {object} dto.APIResponse "Invalid request"
// @Failure 401 {object} dto.APIResponse "Refresh token invalid or expired"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	// Validate request
	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	// Get client information
	ipAddress := c.IP()
	userAgent := c.Get("User-Agent")
	metadata := businessflow.NewClientMetadata(ipAddress, userAgent)

	// Call business logic with proper context
	result, err := h.authFlow.RefreshToken(h.createRequestContext(c, "/api/v1/auth/refresh"), &req, metadata)
	if err != nil {
		// Handle specific business errors
		if businessflow.IsSessionNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Session not found", "SESSION_NOT_FOUND", nil)
		}
		if businessflow.IsSessionExpired(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Session expired", "SESSION_EXPIRED", nil)
		}
		if businessflow.IsRefreshTokenInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token is invalid", "REFRESH_TOKEN_INVALID", nil)
		}
		if businessflow.IsAccountInactive(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account is inactive", "ACCOUNT_INACTIVE", nil)
		}

		log.Println("Token refresh failed", err)
		// Handle generic business errors
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Token refresh failed", "TOKEN_REFRESH_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Token refreshed", fiber.Map{
		"access_token":  result.Session.AccessToken,
		"refresh_token": result.Session.RefreshToken,
		"token_type":    "Bearer",
		"expires_in":    utils.AccessTokenTTLSeconds,
	})
}

// Logout ends the current session
// @Summary Operator Logout
// @Description Expire the current session and revoke its access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Logged out"
// @Failure 401 {object} dto.APIResponse "Not authenticated"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Access token is required", "MISSING_ACCESS_TOKEN", nil)
	}

	// Get client information
	ipAddress := c.IP()
	userAgent := c.Get("User-Agent")
	metadata := businessflow.NewClientMetadata(ipAddress, userAgent)

	err := h.authFlow.Logout(h.createRequestContext(c, "/api/v1/auth/logout"), token, metadata)
	if err != nil {
		if businessflow.IsSessionNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Session not found", "SESSION_NOT_FOUND", nil)
		}

		log.Println("Logout failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Logout failed", "LOGOUT_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Logged out", nil)
}

// Health handles health check requests
// @Summary Health Check
// @Description Check the health status of the API
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse "Service is healthy"
// @Router /api/v1/health [get]
func (h *AuthHandler) Health(c fiber.Ctx) error {
	return h.SuccessResponse(c, fiber.StatusOK, "Label service is healthy", fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "label-service",
	})
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *AuthHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

// createRequestContextWithTimeout creates a context with custom timeout and request-scoped values
func (h *AuthHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	// Create context with custom timeout
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	// Add request-scoped values for observability
	ctx = context.WithValue(ctx, businessflow.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel) // Store cancel function for cleanup

	return ctx
}
