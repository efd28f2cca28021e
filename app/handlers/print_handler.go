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
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/middleware"
	businessflow "github.com/nmzabith/thermal-printer-label-app-sub001/business_flow"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
)

// PrintHandlerInterface defines the contract for print handlers
type PrintHandlerInterface interface {
	Preview(c fiber.Ctx) error
	Print(c fiber.Ctx) error
	ListPrintJobs(c fiber.Ctx) error
	GetPrintJob(c fiber.Ctx) error
}

// PrintHandler handles rendering and dispatch HTTP requests
type PrintHandler struct {
	printFlow businessflow.PrintFlow
	validator *validator.Validate
}

// NewPrintHandler creates a new print handler
func NewPrintHandler(printFlow businessflow.PrintFlow) *PrintHandler {
	return &PrintHandler{
		printFlow: printFlow,
		validator: validator.New(),
	}
}

func (h *PrintHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *PrintHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Preview renders a design to its command stream without dispatching it
// @Summary Preview Print Payload
// @Description Render a design to its printer command stream without contacting a printer
// @Tags Printing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PrintPreviewRequest true "Design to render"
// @Success 200 {object} dto.APIResponse{data=dto.PrintPreviewResponse} "Rendered payload"
// @Failure 400 {object} dto.APIResponse "Validation error or empty design"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Design not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/print/preview [post]
func (h *PrintHandler) Preview(c fiber.Ctx) error {
	var req dto.PrintPreviewRequest
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

	result, err := h.printFlow.Preview(h.createRequestContext(c, "/api/v1/print/preview", 30*time.Second), operatorID, &req)
	if err != nil {
		if businessflow.IsLabelDesignNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Design not found", "DESIGN_NOT_FOUND", nil)
		}
		if businessflow.IsLabelDesignAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Access denied", "DESIGN_ACCESS_DENIED", nil)
		}
		if businessflow.IsCopiesOutOfRange(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Copies must be between 1 and 100", "COPIES_OUT_OF_RANGE", nil)
		}
		if businessflow.IsDesignHasNoElements(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Design has no visible elements", "DESIGN_HAS_NO_ELEMENTS", nil)
		}

		log.Println("Preview failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Preview failed", "PREVIEW_FAILED", nil)
	}

	middleware.RecordLabelRendered()

	return h.SuccessResponse(c, fiber.StatusOK, "Payload rendered", result)
}

// Print renders a design and dispatches it to a printer
// @Summary Print Label
// @Description Render a design and send the command stream to the target printer over raw TCP
// @Tags Printing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PrintRequest true "Design, printer and copies"
// @Success 200 {object} dto.APIResponse{data=dto.PrintResponse} "Job dispatched"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Design not found"
// @Failure 502 {object} dto.APIResponse "Printer unreachable"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/print [post]
func (h *PrintHandler) Print(c fiber.Ctx) error {
	var req dto.PrintRequest
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

	// Dispatch can block on the printer socket, so the budget is wider
	// than the default request timeout.
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.printFlow.Print(h.createRequestContext(c, "/api/v1/print", 60*time.Second), operatorID, &req, metadata)
	if err != nil {
		if businessflow.IsLabelDesignNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Design not found", "DESIGN_NOT_FOUND", nil)
		}
		if businessflow.IsLabelDesignAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Access denied", "DESIGN_ACCESS_DENIED", nil)
		}
		if businessflow.IsCopiesOutOfRange(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Copies must be between 1 and 100", "COPIES_OUT_OF_RANGE", nil)
		}
		if businessflow.IsPrinterAddrRequired(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "No printer address configured or provided", "PRINTER_ADDR_REQUIRED", nil)
		}
		if businessflow.IsDesignHasNoElements(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Design has no visible elements", "DESIGN_HAS_NO_ELEMENTS", nil)
		}

		log.Println("Print failed", err)
		middleware.RecordPrintJob("failed")
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Print failed", "PRINT_FAILED", nil)
	}

	middleware.RecordLabelRendered()
	middleware.RecordPrintJob(result.Job.Status)

	// A failed dispatch still produces a job row; surface it with the
	// gateway status so clients can retry.
	if result.Job.Status == "failed" {
		return c.Status(fiber.StatusBadGateway).JSON(dto.APIResponse{
			Success: false,
			Message: "Printer unreachable",
			Data:    result,
			Error: dto.ErrorDetail{
				Code: "PRINTER_DISPATCH_FAILED",
			},
		})
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Job dispatched", result)
}

// ListPrintJobs lists the operator's print history
// @Summary List Print Jobs
// @Description List the operator's print jobs with pagination, newest first
// @Tags Printing
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.ListPrintJobsResponse} "Print jobs"
// @Failure 400 {object} dto.APIResponse "Invalid pagination"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/print/jobs [get]
func (h *PrintHandler) ListPrintJobs(c fiber.Ctx) error {
	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))

	result, err := h.printFlow.ListPrintJobs(h.createRequestContext(c, "/api/v1/print/jobs", 30*time.Second), operatorID, page, pageSize)
	if err != nil {
		if businessflow.IsInvalidPage(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid page number", "INVALID_PAGE", nil)
		}
		if businessflow.IsInvalidPageSize(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid page size", "INVALID_PAGE_SIZE", nil)
		}

		log.Println("Print job listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Print job listing failed", "PRINT_JOB_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Print jobs retrieved", result)
}

// GetPrintJob returns one print job
// @Summary Get Print Job
// @Description Retrieve one print job by UUID
// @Tags Printing
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Job UUID"
// @Success 200 {object} dto.APIResponse{data=dto.PrintJobDTO} "Print job"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Access denied"
// @Failure 404 {object} dto.APIResponse "Job not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/print/jobs/{uuid} [get]
func (h *PrintHandler) GetPrintJob(c fiber.Ctx) error {
	jobUUID := c.Params("uuid")
	if jobUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid uuid", "INVALID_UUID", nil)
	}

	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	result, err := h.printFlow.GetPrintJob(h.createRequestContext(c, "/api/v1/print/jobs/{uuid}", 30*time.Second), operatorID, jobUUID)
	if err != nil {
		if businessflow.IsPrintJobNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Print job not found", "PRINT_JOB_NOT_FOUND", nil)
		}

		log.Println("Print job retrieval failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Print job retrieval failed", "PRINT_JOB_GET_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Print job retrieved", result)
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *PrintHandler) createRequestContext(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	ctx = context.WithValue(ctx, businessflow.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)

	return ctx
}
