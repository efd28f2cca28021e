// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	businessflow "github.com/nmzabith/thermal-printer-label-app-sub001/business_flow"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
)

// FontSettingsHandlerInterface defines the contract for font profile handlers
type FontSettingsHandlerInterface interface {
	GetFontSettings(c fiber.Ctx) error
	SaveFontSettings(c fiber.Ctx) error
	ListFontPresets(c fiber.Ctx) error
}

// FontSettingsHandler handles font profile HTTP requests
type FontSettingsHandler struct {
	fontFlow  businessflow.FontSettingsFlow
	validator *validator.Validate
}

// NewFontSettingsHandler creates a new font settings handler
func NewFontSettingsHandler(fontFlow businessflow.FontSettingsFlow) *FontSettingsHandler {
	return &FontSettingsHandler{
		fontFlow:  fontFlow,
		validator: validator.New(),
	}
}

func (h *FontSettingsHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *FontSettingsHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// GetFontSettings returns a named font profile
// @Summary Get Font Profile
// @Description Retrieve a stored font profile; preset names fall back to factory defaults
// @Tags Font Settings
// @Produce json
// @Security BearerAuth
// @Param name path string true "Profile name" default(default)
// @Success 200 {object} dto.APIResponse{data=dto.FontSettingsDTO} "Font profile"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/font-settings/{name} [get]
func (h *FontSettingsHandler) GetFontSettings(c fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Profile name is required", "PROFILE_NAME_REQUIRED", nil)
	}

	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	result, err := h.fontFlow.GetFontSettings(h.createRequestContext(c, "/api/v1/font-settings/{name}"), operatorID, name)
	if err != nil {
		if businessflow.IsFontProfileNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Font profile not found", "FONT_PROFILE_NOT_FOUND", nil)
		}

		log.Println("Font profile retrieval failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Font profile retrieval failed", "FONT_PROFILE_GET_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Font profile retrieved", result)
}

// SaveFontSettings upserts a named font profile
// @Summary Save Font Profile
// @Description Store or overwrite a named font profile for the operator
// @Tags Font Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Profile name" default(default)
// @Param request body dto.SaveFontSettingsRequest true "Profile settings map"
// @Success 200 {object} dto.APIResponse{data=dto.FontSettingsDTO} "Font profile saved"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/font-settings/{name} [put]
func (h *FontSettingsHandler) SaveFontSettings(c fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Profile name is required", "PROFILE_NAME_REQUIRED", nil)
	}

	var req dto.SaveFontSettingsRequest
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

	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.fontFlow.SaveFontSettings(h.createRequestContext(c, "/api/v1/font-settings/{name}"), operatorID, name, &req, metadata)
	if err != nil {
		if businessflow.IsFontProfileNameInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Font profile name is invalid", "FONT_PROFILE_NAME_INVALID", nil)
		}

		log.Println("Font profile save failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Font profile save failed", "FONT_PROFILE_SAVE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Font profile saved", result)
}

// ListFontPresets returns the preset profiles merged with stored overrides
// @Summary List Font Presets
// @Description List the factory preset profiles, reflecting any operator overrides
// @Tags Font Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ListFontPresetsResponse} "Presets"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/font-settings [get]
func (h *FontSettingsHandler) ListFontPresets(c fiber.Ctx) error {
	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	result, err := h.fontFlow.ListFontPresets(h.createRequestContext(c, "/api/v1/font-settings"), operatorID)
	if err != nil {
		log.Println("Font preset listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Font preset listing failed", "FONT_PRESET_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Font presets retrieved", result)
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *FontSettingsHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	ctx = context.WithValue(ctx, businessflow.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)

	return ctx
}
