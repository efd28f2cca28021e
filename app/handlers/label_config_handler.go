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

// LabelConfigHandlerInterface defines the contract for label stock handlers
type LabelConfigHandlerInterface interface {
	CreateLabelConfig(c fiber.Ctx) error
	ListLabelConfigs(c fiber.Ctx) error
	GetLabelConfig(c fiber.Ctx) error
	UpdateLabelConfig(c fiber.Ctx) error
	DeleteLabelConfig(c fiber.Ctx) error
}

// LabelConfigHandler handles label stock HTTP requests
type LabelConfigHandler struct {
	configFlow businessflow.LabelConfigFlow
	validator  *validator.Validate
}

// NewLabelConfigHandler creates a new label stock handler
func NewLabelConfigHandler(configFlow businessflow.LabelConfigFlow) *LabelConfigHandler {
	return &LabelConfigHandler{
		configFlow: configFlow,
		validator:  validator.New(),
	}
}

func (h *LabelConfigHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *LabelConfigHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreateLabelConfig registers a new label stock for the operator
// @Summary Create Label Stock
// @Description Register a label stock (physical label dimensions) for the authenticated operator
// @Tags Label Stocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLabelConfigRequest true "Label stock data"
// @Success 201 {object} dto.APIResponse{data=dto.LabelConfigDTO} "Label stock created"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 409 {object} dto.APIResponse "Label stock already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/label-configs [post]
func (h *LabelConfigHandler) CreateLabelConfig(c fiber.Ctx) error {
	var req dto.CreateLabelConfigRequest
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
	result, err := h.configFlow.CreateLabelConfig(h.createRequestContext(c, "/api/v1/label-configs"), operatorID, &req, metadata)
	if err != nil {
		if businessflow.IsLabelConfigInvalidSize(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Label dimensions are out of range", "LABEL_CONFIG_INVALID_SIZE", nil)
		}
		if businessflow.IsLabelConfigExists(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "A label stock with these dimensions already exists", "LABEL_CONFIG_EXISTS", nil)
		}

		log.Println("Label stock creation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Label stock creation failed", "LABEL_CONFIG_CREATION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Label stock created", result)
}

// ListLabelConfigs lists the operator's label stocks
// @Summary List Label Stocks
// @Description List the operator's label stocks, seeding the builtin set on first use
// @Tags Label Stocks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ListLabelConfigsResponse} "Label stocks"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/label-configs [get]
func (h *LabelConfigHandler) ListLabelConfigs(c fiber.Ctx) error {
	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	result, err := h.configFlow.ListLabelConfigs(h.createRequestContext(c, "/api/v1/label-configs"), operatorID)
	if err != nil {
		log.Println("Label stock listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Label stock listing failed", "LABEL_CONFIG_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Label stocks retrieved", result)
}

// GetLabelConfig returns a single label stock
// @Summary Get Label Stock
// @Description Retrieve one label stock by UUID
// @Tags Label Stocks
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Label stock UUID"
// @Success 200 {object} dto.APIResponse{data=dto.LabelConfigDTO} "Label stock"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Access denied"
// @Failure 404 {object} dto.APIResponse "Label stock not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/label-configs/{uuid} [get]
func (h *LabelConfigHandler) GetLabelConfig(c fiber.Ctx) error {
	configUUID := c.Params("uuid")
	if configUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid uuid", "INVALID_UUID", nil)
	}

	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	result, err := h.configFlow.GetLabelConfig(h.createRequestContext(c, "/api/v1/label-configs/{uuid}"), operatorID, configUUID)
	if err != nil {
		if businessflow.IsLabelConfigNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Label stock not found", "LABEL_CONFIG_NOT_FOUND", nil)
		}
		if businessflow.IsLabelConfigAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Access denied", "LABEL_CONFIG_ACCESS_DENIED", nil)
		}

		log.Println("Label stock retrieval failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Label stock retrieval failed", "LABEL_CONFIG_GET_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Label stock retrieved", result)
}

// UpdateLabelConfig updates a label stock
// @Summary Update Label Stock
// @Description Update an operator-defined label stock; builtin stocks are read-only
// @Tags Label Stocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Label stock UUID"
// @Param request body dto.UpdateLabelConfigRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.LabelConfigDTO} "Label stock updated"
// @Failure 400 {object} dto.APIResponse "Validation error or builtin stock"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Access denied"
// @Failure 404 {object} dto.APIResponse "Label stock not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/label-configs/{uuid} [put]
func (h *LabelConfigHandler) UpdateLabelConfig(c fiber.Ctx) error {
	configUUID := c.Params("uuid")
	if configUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid uuid", "INVALID_UUID", nil)
	}

	var req dto.UpdateLabelConfigRequest
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
	result, err := h.configFlow.UpdateLabelConfig(h.createRequestContext(c, "/api/v1/label-configs/{uuid}"), operatorID, configUUID, &req, metadata)
	if err != nil {
		if businessflow.IsLabelConfigNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Label stock not found", "LABEL_CONFIG_NOT_FOUND", nil)
		}
		if businessflow.IsLabelConfigAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Access denied", "LABEL_CONFIG_ACCESS_DENIED", nil)
		}
		if businessflow.IsLabelConfigBuiltin(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Builtin label stocks cannot be modified", "LABEL_CONFIG_BUILTIN", nil)
		}
		if businessflow.IsLabelConfigInvalidSize(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Label dimensions are out of range", "LABEL_CONFIG_INVALID_SIZE", nil)
		}

		log.Println("Label stock update failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Label stock update failed", "LABEL_CONFIG_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Label stock updated", result)
}

// DeleteLabelConfig removes a label stock
// @Summary Delete Label Stock
// @Description Delete an operator-defined label stock that no design references
// @Tags Label Stocks
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Label stock UUID"
// @Success 200 {object} dto.APIResponse "Label stock deleted"
// @Failure 400 {object} dto.APIResponse "Builtin stock or stock in use"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Access denied"
// @Failure 404 {object} dto.APIResponse "Label stock not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/label-configs/{uuid} [delete]
func (h *LabelConfigHandler) DeleteLabelConfig(c fiber.Ctx) error {
	configUUID := c.Params("uuid")
	if configUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid uuid", "INVALID_UUID", nil)
	}

	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	err := h.configFlow.DeleteLabelConfig(h.createRequestContext(c, "/api/v1/label-configs/{uuid}"), operatorID, configUUID, metadata)
	if err != nil {
		if businessflow.IsLabelConfigNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Label stock not found", "LABEL_CONFIG_NOT_FOUND", nil)
		}
		if businessflow.IsLabelConfigAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Access denied", "LABEL_CONFIG_ACCESS_DENIED", nil)
		}
		if businessflow.IsLabelConfigBuiltin(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Builtin label stocks cannot be deleted", "LABEL_CONFIG_BUILTIN", nil)
		}
		if businessflow.IsLabelConfigInUse(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Label stock is referenced by existing designs", "LABEL_CONFIG_IN_USE", nil)
		}

		log.Println("Label stock deletion failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Label stock deletion failed", "LABEL_CONFIG_DELETION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Label stock deleted", nil)
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *LabelConfigHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	ctx = context.WithValue(ctx, businessflow.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)

	return ctx
}
