package businessflow

import (
	"context"
	"fmt"
	"time"

	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"github.com/xuri/excelize/v2"
)

// exportBatchSize caps how many rows a single export pulls per query.
const exportBatchSize = 500

// ReportFlow produces downloadable exports of print activity
type ReportFlow interface {
	ExportPrintJobs(ctx context.Context, operatorID uint, metadata *ClientMetadata) (filename string, content []byte, err error)
	ExportAuditTrail(ctx context.Context, operatorID uint, metadata *ClientMetadata) (filename string, content []byte, err error)
}

// ReportFlowImpl implements the report business flow
type ReportFlowImpl struct {
	jobRepo   repository.PrintJobRepository
	auditRepo repository.AuditLogRepository
}

// NewReportFlow creates a new report flow instance
func NewReportFlow(
	jobRepo repository.PrintJobRepository,
	auditRepo repository.AuditLogRepository,
) ReportFlow {
	return &ReportFlowImpl{
		jobRepo:   jobRepo,
		auditRepo: auditRepo,
	}
}

// ExportPrintJobs builds an Excel workbook of the operator's print history
func (rf *ReportFlowImpl) ExportPrintJobs(ctx context.Context, operatorID uint, metadata *ClientMetadata) (string, []byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "Print Jobs"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := []string{"job_uuid", "design", "printer", "copies", "status", "error", "created_at", "sent_at"}
	_ = xl.SetSheetRow(sheet, "A1", &header)

	row := 2
	for offset := 0; ; offset += exportBatchSize {
		jobs, err := rf.jobRepo.ListByOperator(ctx, operatorID, exportBatchSize, offset)
		if err != nil {
			return "", nil, NewBusinessError("REPORT_EXPORT_FAILED", "Print job export failed", err)
		}
		if len(jobs) == 0 {
			break
		}

		for _, j := range jobs {
			designName := ""
			if j.Design != nil {
				designName = j.Design.Name
			}
			errText := ""
			if j.Error != nil {
				errText = *j.Error
			}
			sentAt := ""
			if j.SentAt != nil {
				sentAt = j.SentAt.UTC().Format(time.RFC3339)
			}

			record := []any{
				j.UUID.String(),
				designName,
				j.PrinterAddr,
				j.Copies,
				j.Status.String(),
				errText,
				j.CreatedAt.UTC().Format(time.RFC3339),
				sentAt,
			}
			cellRef, _ := excelize.CoordinatesToCellName(1, row)
			_ = xl.SetSheetRow(sheet, cellRef, &record)
			row++
		}

		if len(jobs) < exportBatchSize {
			break
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}

	_ = rf.logExport(ctx, operatorID, fmt.Sprintf("Print job export generated: %d rows", row-2), metadata)

	filename := fmt.Sprintf("print_jobs_%s.xlsx", utils.UTCNow().Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}

// ExportAuditTrail builds an Excel workbook of the operator's audit entries
func (rf *ReportFlowImpl) ExportAuditTrail(ctx context.Context, operatorID uint, metadata *ClientMetadata) (string, []byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "Audit Trail"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := []string{"action", "description", "success", "ip_address", "request_id", "error", "created_at"}
	_ = xl.SetSheetRow(sheet, "A1", &header)

	row := 2
	for offset := 0; ; offset += exportBatchSize {
		entries, err := rf.auditRepo.ListByOperator(ctx, operatorID, exportBatchSize, offset)
		if err != nil {
			return "", nil, NewBusinessError("REPORT_EXPORT_FAILED", "Audit trail export failed", err)
		}
		if len(entries) == 0 {
			break
		}

		for _, e := range entries {
			record := []any{
				e.Action,
				deref(e.Description),
				e.Success != nil && *e.Success,
				deref(e.IPAddress),
				deref(e.RequestID),
				deref(e.ErrorMessage),
				e.CreatedAt.UTC().Format(time.RFC3339),
			}
			cellRef, _ := excelize.CoordinatesToCellName(1, row)
			_ = xl.SetSheetRow(sheet, cellRef, &record)
			row++
		}

		if len(entries) < exportBatchSize {
			break
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}

	filename := fmt.Sprintf("audit_trail_%s.xlsx", utils.UTCNow().Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}

// Private helper methods

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (rf *ReportFlowImpl) logExport(ctx context.Context, operatorID uint, description string, metadata *ClientMetadata) error {
	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	audit := &models.AuditLog{
		OperatorID:  &operatorID,
		Action:      models.AuditActionReportExported,
		Description: &description,
		Success:     utils.ToPtr(true),
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
	}

	requestID := ctx.Value(RequestIDKey)
	if requestID != nil {
		requestIDStr, ok := requestID.(string)
		if ok {
			audit.RequestID = &requestIDStr
		}
	}

	return rf.auditRepo.Save(ctx, audit)
}
