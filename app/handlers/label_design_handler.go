// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	businessflow "github.com/nmzabith/thermal-printer-label-app-sub001/business_flow"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
)

// LabelDesignHandlerInterface defines the contract for label design handlers
type LabelDesignHandlerInterface interface {
	GenerateDefaultLayout(c fiber.Ctx) error
	CreateLabelDesign(c fiber.Ctx) error
	ListLabelDesigns(c fiber.Ctx) error
	GetLabelDesign(c fiber.Ctx) error
	UpdateLabelDesign(c fiber.Ctx) error
	DeleteLabelDesign(c fiber.Ctx) error
}

// LabelDesignHandler handles label design HTTP requests
type LabelDesignHandler struct {
	designFlow businessflow.LabelDesignFlow
	validator  *validator.Validate
}

// NewLabelDesignHandler creates a new label design handler
func NewLabelDesignHandler(designFlow businessflow.LabelDesignFlow) *LabelDesignHandler {
	return &LabelDesignHandler{
		designFlow: designFlow,
		validator:  validator.New(),
	}
}

func (h *LabelDesignHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *LabelDesignHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// GenerateDefaultLayout builds the generated starting layout for a stock
// @Summary Generate Default Layout
// @Description Produce the generated element layout for a label stock without persisting anything
// @Tags Label Designs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DefaultLayoutRequest true "Target label stock"
// @Success 200 {object} dto.APIResponse{data=dto.DefaultLayoutResponse} "Generated layout"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Label stock not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/designs/default-layout [post]
func (h *LabelDesignHandler) GenerateDefaultLayout(c fiber.Ctx) error {
	var req dto.DefaultLayoutRequest
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

	result, err := h.designFlow.GenerateDefaultLayout(h.createRequestContext(c, "/api/v1/designs/default-layout"), operatorID, &req)
	if err != nil {
		if businessflow.IsLabelConfigNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Label stock not found", "LABEL_CONFIG_NOT_FOUND", nil)
		}
		if businessflow.IsLabelConfigAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Access denied", "LABEL_CONFIG_ACCESS_DENIED", nil)
		}
		if businessflow.IsFontProfileNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Font profile not found", "FONT_PROFILE_NOT_FOUND", nil)
		}

		log.Println("Default layout generation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Default layout generation failed", "DEFAULT_LAYOUT_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Default layout generated", result)
}

// CreateLabelDesign persists a new label design
// @Summary Create Label Design
// @Description Create a design for a label stock, either from the generated layout or from explicit elements
// @Tags Label Designs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLabelDesignRequest true "Design data"
// @Success 201 {object} dto.APIResponse{data=dto.LabelDesignDTO} "Design created"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Label stock or icon not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/designs [post]
func (h *LabelDesignHandler) CreateLabelDesign(c fiber.Ctx) error {
	var req dto.CreateLabelDesignRequest
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
	result, err := h.designFlow.CreateLabelDesign(h.createRequestContext(c, "/api/v1/designs"), operatorID, &req, metadata)
	if err != nil {
		if businessflow.IsDesignNameRequired(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Design name is required", "DESIGN_NAME_REQUIRED", nil)
		}
		if businessflow.IsLabelConfigNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Label stock not found", "LABEL_CONFIG_NOT_FOUND", nil)
		}
		if businessflow.IsLabelConfigAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Access denied", "LABEL_CONFIG_ACCESS_DENIED", nil)
		}
		if businessflow.IsElementKindInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Element kind is invalid", "ELEMENT_KIND_INVALID", nil)
		}
		if businessflow.IsElementIconMissing(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Icon elements require an icon UUID", "ELEMENT_ICON_MISSING", nil)
		}
		if businessflow.IsIconNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Icon not found", "ICON_NOT_FOUND", nil)
		}
		if businessflow.IsIconAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Icon access denied", "ICON_ACCESS_DENIED", nil)
		}
		if businessflow.IsFontProfileNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Font profile not found", "FONT_PROFILE_NOT_FOUND", nil)
		}

		log.Println("Design creation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Design creation failed", "DESIGN_CREATION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Design created", result)
}

// ListLabelDesigns lists the operator's designs
// @Summary List Label Designs
// @Description List the operator's designs with pagination
// @Tags Label Designs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.ListLabelDesignsResponse} "Designs"
// @Failure 400 {object} dto.APIResponse "Invalid pagination"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/designs [get]
func (h *LabelDesignHandler) ListLabelDesigns(c fiber.Ctx) error {
	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))

	result, err := h.designFlow.ListLabelDesigns(h.createRequestContext(c, "/api/v1/designs"), operatorID, page, pageSize)
	if err != nil {
		if businessflow.IsInvalidPage(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid page number", "INVALID_PAGE", nil)
		}
		if businessflow.IsInvalidPageSize(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid page size", "INVALID_PAGE_SIZE", nil)
		}

		log.Println("Design listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Design listing failed", "DESIGN_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Designs retrieved", result)
}

// GetLabelDesign returns a single design with its elements
// @Summary Get Label Design
// @Description Retrieve one design by UUID including its ordered elements
// @Tags Label Designs
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Design UUID"
// @Success 200 {object} dto.APIResponse{data=dto.LabelDesignDTO} "Design"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Access denied"
// @Failure 404 {object} dto.APIResponse "Design not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/designs/{uuid} [get]
func (h *LabelDesignHandler) GetLabelDesign(c fiber.Ctx) error {
	designUUID := c.Params("uuid")
	if designUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid uuid", "INVALID_UUID", nil)
	}

	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	result, err := h.designFlow.GetLabelDesign(h.createRequestContext(c, "/api/v1/designs/{uuid}"), operatorID, designUUID)
	if err != nil {
		if businessflow.IsLabelDesignNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Design not found", "DESIGN_NOT_FOUND", nil)
		}
		if businessflow.IsLabelDesignAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Access denied", "DESIGN_ACCESS_DENIED", nil)
		}

		log.Println("Design retrieval failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Design retrieval failed", "DESIGN_GET_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Design retrieved", result)
}

// UpdateLabelDesign updates a design and optionally replaces its elements
// @Summary Update Label Design
// @Description Update design metadata; a non-empty elements list replaces the stored layout
// @Tags Label Designs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Design UUID"
// @Param request body dto.UpdateLabelDesignRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.LabelDesignDTO} "Design updated"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Access denied"
// @Failure 404 {object} dto.APIResponse "Design not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/designs/{uuid} [put]
func (h *LabelDesignHandler) UpdateLabelDesign(c fiber.Ctx) error {
	designUUID := c.Params("uuid")
	if designUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid uuid", "INVALID_UUID", nil)
	}

	var req dto.UpdateLabelDesignRequest
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
	result, err := h.designFlow.UpdateLabelDesign(h.createRequestContext(c, "/api/v1/designs/{uuid}"), operatorID, designUUID, &req, metadata)
	if err != nil {
		if businessflow.IsLabelDesignNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Design not found", "DESIGN_NOT_FOUND", nil)
		}
		if businessflow.IsLabelDesignAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Access denied", "DESIGN_ACCESS_DENIED", nil)
		}
		if businessflow.IsDesignUpdateRequired(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "No fields to update", "DESIGN_UPDATE_REQUIRED", nil)
		}
		if businessflow.IsElementKindInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Element kind is invalid", "ELEMENT_KIND_INVALID", nil)
		}
		if businessflow.IsElementIconMissing(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Icon elements require an icon UUID", "ELEMENT_ICON_MISSING", nil)
		}
		if businessflow.IsIconNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Icon not found", "ICON_NOT_FOUND", nil)
		}
		if businessflow.IsIconAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Icon access denied", "ICON_ACCESS_DENIED", nil)
		}

		log.Println("Design update failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Design update failed", "DESIGN_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Design updated", result)
}

// DeleteLabelDesign removes a design and its elements
// @Summary Delete Label Design
// @Description Delete a design together with its elements
// @Tags Label Designs
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Design UUID"
// @Success 200 {object} dto.APIResponse "Design deleted"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Access denied"
// @Failure 404 {object} dto.APIResponse "Design not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/designs/{uuid} [delete]
func (h *LabelDesignHandler) DeleteLabelDesign(c fiber.Ctx) error {
	designUUID := c.Params("uuid")
	if designUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid uuid", "INVALID_UUID", nil)
	}

	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	err := h.designFlow.DeleteLabelDesign(h.createRequestContext(c, "/api/v1/designs/{uuid}"), operatorID, designUUID, metadata)
	if err != nil {
		if businessflow.IsLabelDesignNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Design not found", "DESIGN_NOT_FOUND", nil)
		}
		if businessflow.IsLabelDesignAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Access denied", "DESIGN_ACCESS_DENIED", nil)
		}

		log.Println("Design deletion failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Design deletion failed", "DESIGN_DELETION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Design deleted", nil)
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *LabelDesignHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	ctx = context.WithValue(ctx, businessflow.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)

	return ctx
}
