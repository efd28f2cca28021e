// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	businessflow "github.com/nmzabith/thermal-printer-label-app-sub001/business_flow"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
)

// ReportHandlerInterface defines the contract for report export handlers
type ReportHandlerInterface interface {
	ExportPrintJobs(c fiber.Ctx) error
	ExportAuditTrail(c fiber.Ctx) error
}

// ReportHandler serves Excel exports of print activity
type ReportHandler struct {
	reportFlow businessflow.ReportFlow
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportFlow businessflow.ReportFlow) *ReportHandler {
	return &ReportHandler{reportFlow: reportFlow}
}

func (h *ReportHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

// ExportPrintJobs downloads the operator's print history as an Excel file
// @Summary Export Print Jobs
// @Description Download the operator's full print history as an xlsx workbook
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {string} string "Excel file"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/reports/print-jobs [get]
func (h *ReportHandler) ExportPrintJobs(c fiber.Ctx) error {
	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	filename, content, err := h.reportFlow.ExportPrintJobs(h.createRequestContext(c, "/api/v1/reports/print-jobs"), operatorID, metadata)
	if err != nil {
		log.Println("Print job export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Print job export failed", "REPORT_EXPORT_FAILED", nil)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(content)
}

// ExportAuditTrail downloads the operator's audit entries as an Excel file
// @Summary Export Audit Trail
// @Description Download the operator's audit trail as an xlsx workbook
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {string} string "Excel file"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/reports/audit-trail [get]
func (h *ReportHandler) ExportAuditTrail(c fiber.Ctx) error {
	operatorID, ok := c.Locals("operator_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Operator ID not found in context", "MISSING_OPERATOR_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	filename, content, err := h.reportFlow.ExportAuditTrail(h.createRequestContext(c, "/api/v1/reports/audit-trail"), operatorID, metadata)
	if err != nil {
		log.Println("Audit trail export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Audit trail export failed", "REPORT_EXPORT_FAILED", nil)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(content)
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *ReportHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	// Exports can page through large histories
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)

	ctx = context.WithValue(ctx, businessflow.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)

	return ctx
}
