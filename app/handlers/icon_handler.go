// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	businessflow "github.com/nmzabith/thermal-printer-label-app-sub001/business_flow"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
)

// IconHandlerInterface defines the contract for icon asset handlers
type IconHandlerInterface interface {
	UploadIcon(c fiber.Ctx) error
	ListIcons(c fiber.Ctx) error
	DeleteIcon(c fiber.Ctx) error
}

// IconHandler handles icon asset HTTP requests
type IconHandler struct {
	iconFlow businessflow.IconFlow
}

// NewIconHandler creates a new icon handler
func NewIconHandler(iconFlow businessflow.IconFlow) *IconHandler {
	return &IconHandler{iconFlow: iconFlow}
}

func (h *IconHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *IconHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// UploadIcon stores a PNG or JPEG icon for use in label designs
// @Summary Upload Icon
// @Description Upload a PNG or JPEG icon (<=1MB) to place on label designs
// @Tags Icons
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Icon image (<=1MB)"
// @Param name formData string false "Display name, defaults to the filename"
// @Success 201 {object} dto.APIResponse{data=dto.UploadIconResponse} "Icon uploaded"
// @Failure 400 {object} dto.APIResponse "Invalid file or format"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/icons [post]
func (h *IconHandler) UploadIcon(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "file is required", "INVALID_FILE", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "invalid file", "INVALID_FILE", err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "invalid file", "INVALID_FILE", err.Error())
	}

	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	name := c.FormValue("name")

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.iconFlow.UploadIcon(h.createRequestContext(c, "/api/v1/icons"), operatorID, name, fileHeader.Filename, data, metadata)
	if err != nil {
		if businessflow.IsIconTooLarge(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Icon exceeds the 1MB size limit", "ICON_TOO_LARGE", nil)
		}
		if businessflow.IsIconFormatUnsupported(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Icon must be a PNG or JPEG image", "ICON_FORMAT_UNSUPPORTED", nil)
		}

		log.Println("Icon upload failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Icon upload failed", "ICON_UPLOAD_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Icon uploaded", result)
}

// ListIcons lists the operator's uploaded icons
// @Summary List Icons
// @Description List the operator's uploaded icons
// @Tags Icons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ListIconsResponse} "Icons"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/icons [get]
func (h *IconHandler) ListIcons(c fiber.Ctx) error {
	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	result, err := h.iconFlow.ListIcons(h.createRequestContext(c, "/api/v1/icons"), operatorID)
	if err != nil {
		log.Println("Icon listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Icon listing failed", "ICON_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Icons retrieved", result)
}

// DeleteIcon removes an icon and its stored file
// @Summary Delete Icon
// @Description Delete an icon by UUID together with its stored file
// @Tags Icons
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Icon UUID"
// @Success 200 {object} dto.APIResponse "Icon deleted"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Access denied"
// @Failure 404 {object} dto.APIResponse "Icon not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/icons/{uuid} [delete]
func (h *IconHandler) DeleteIcon(c fiber.Ctx) error {
	iconUUID := c.Params("uuid")
	if iconUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid uuid", "INVALID_UUID", nil)
	}

	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	err := h.iconFlow.DeleteIcon(h.createRequestContext(c, "/api/v1/icons/{uuid}"), operatorID, iconUUID, metadata)
	if err != nil {
		if businessflow.IsIconNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Icon not found", "ICON_NOT_FOUND", nil)
		}
		if businessflow.IsIconAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Access denied", "ICON_ACCESS_DENIED", nil)
		}

		log.Println("Icon deletion failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Icon deletion failed", "ICON_DELETION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Icon deleted", nil)
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *IconHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	ctx = context.WithValue(ctx, businessflow.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)

	return ctx
}
