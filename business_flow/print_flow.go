package businessflow

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/services"
	"github.com/nmzabith/thermal-printer-label-app-sub001/config"
	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	"github.com/nmzabith/thermal-printer-label-app-sub001/tspl"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// separatorThickness is the bar height drawn for separator elements, in dots.
const separatorThickness = 4

// PrintFlow handles rendering designs to TSPL and dispatching them to printers
type PrintFlow interface {
	Preview(ctx context.Context, operatorID uint, request *dto.PrintPreviewRequest) (*dto.PrintPreviewResponse, error)
	Print(ctx context.Context, operatorID uint, request *dto.PrintRequest, metadata *ClientMetadata) (*dto.PrintResponse, error)
	ListPrintJobs(ctx context.Context, operatorID uint, page, pageSize int) (*dto.ListPrintJobsResponse, error)
	GetPrintJob(ctx context.Context, operatorID uint, jobUUID string) (*dto.PrintJobDTO, error)
}

// PrintFlowImpl implements the print business flow
type PrintFlowImpl struct {
	designRepo    repository.LabelDesignRepository
	jobRepo       repository.PrintJobRepository
	iconRepo      repository.IconAssetRepository
	auditRepo     repository.AuditLogRepository
	printerClient services.PrinterClient
	printerConfig config.PrinterConfig
	cacheConfig   *config.CacheConfig
	rc            *redis.Client
	db            *gorm.DB
}

// NewPrintFlow creates a new print flow instance
func NewPrintFlow(
	designRepo repository.LabelDesignRepository,
	jobRepo repository.PrintJobRepository,
	iconRepo repository.IconAssetRepository,
	auditRepo repository.AuditLogRepository,
	printerClient services.PrinterClient,
	printerConfig config.PrinterConfig,
	db *gorm.DB,
	rc *redis.Client,
	cacheConfig *config.CacheConfig,
) PrintFlow {
	return &PrintFlowImpl{
		designRepo:    designRepo,
		jobRepo:       jobRepo,
		iconRepo:      iconRepo,
		auditRepo:     auditRepo,
		printerClient: printerClient,
		printerConfig: printerConfig,
		cacheConfig:   cacheConfig,
		rc:            rc,
		db:            db,
	}
}

// Preview renders a design to its TSPL command stream without dispatching it
func (pf *PrintFlowImpl) Preview(ctx context.Context, operatorID uint, request *dto.PrintPreviewRequest) (*dto.PrintPreviewResponse, error) {
	copies := request.Copies
	if copies == 0 {
		copies = 1
	}
	if copies < 1 || copies > utils.MaxPrintCopies {
		return nil, NewBusinessError("PRINT_VALIDATION_FAILED", "Print validation failed", ErrCopiesOutOfRange)
	}

	design, err := pf.findOwnedDesign(ctx, operatorID, request.DesignUUID)
	if err != nil {
		return nil, NewBusinessError("PRINT_PREVIEW_FAILED", "Print preview failed", err)
	}

	payload, cached, err := pf.renderWithCache(ctx, design, copies)
	if err != nil {
		return nil, NewBusinessError("PRINT_PREVIEW_FAILED", "Print preview failed", err)
	}

	return &dto.PrintPreviewResponse{
		DesignUUID: design.UUID.String(),
		Payload:    string(payload),
		Cached:     cached,
	}, nil
}

// Print renders a design, records a job, and dispatches the stream to the
// printer. The job row survives dispatch failure with its error message.
func (pf *PrintFlowImpl) Print(ctx context.Context, operatorID uint, request *dto.PrintRequest, metadata *ClientMetadata) (*dto.PrintResponse, error) {
	copies := request.Copies
	if copies == 0 {
		copies = 1
	}
	if copies < 1 || copies > utils.MaxPrintCopies {
		return nil, NewBusinessError("PRINT_VALIDATION_FAILED", "Print validation failed", ErrCopiesOutOfRange)
	}

	printerAddr := pf.printerConfig.DefaultAddr
	if request.PrinterAddr != nil && *request.PrinterAddr != "" {
		printerAddr = *request.PrinterAddr
	}
	if printerAddr == "" {
		return nil, NewBusinessError("PRINT_VALIDATION_FAILED", "Print validation failed", ErrPrinterAddrRequired)
	}

	var job *models.PrintJob

	// Job creation commits before dispatch so a socket failure still
	// leaves an inspectable row.
	err := repository.WithTransaction(ctx, pf.db, func(ctx context.Context) error {
		design, err := pf.findOwnedDesign(ctx, operatorID, request.DesignUUID)
		if err != nil {
			return err
		}

		payload, _, err := pf.renderWithCache(ctx, design, copies)
		if err != nil {
			return err
		}

		job = &models.PrintJob{
			OperatorID:  operatorID,
			DesignID:    design.ID,
			Design:      design,
			PrinterAddr: printerAddr,
			Copies:      copies,
			Payload:     payload,
			Status:      models.PrintJobStatusPending,
		}

		return pf.jobRepo.Save(ctx, job)
	})

	if err != nil {
		errMsg := fmt.Sprintf("Print job creation failed: %s", err.Error())
		_ = pf.logPrintAction(ctx, operatorID, models.AuditActionPrintJobCreated, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("PRINT_JOB_CREATION_FAILED", "Print job creation failed", err)
	}

	msg := fmt.Sprintf("Print job created: %s (%d copies to %s)", job.UUID, copies, printerAddr)
	_ = pf.logPrintAction(ctx, operatorID, models.AuditActionPrintJobCreated, msg, true, nil, metadata)

	// Dispatch outside the transaction
	sendCtx, cancel := context.WithTimeout(ctx, utils.DefaultPrintTimeout)
	defer cancel()

	if sendErr := pf.printerClient.Send(sendCtx, printerAddr, job.Payload); sendErr != nil {
		errMsg := sendErr.Error()
		if err := pf.jobRepo.UpdateStatus(ctx, job.ID, models.PrintJobStatusFailed, &errMsg); err != nil {
			return nil, NewBusinessError("PRINT_JOB_UPDATE_FAILED", "Print job update failed", err)
		}
		job.Status = models.PrintJobStatusFailed
		job.Error = &errMsg

		auditMsg := fmt.Sprintf("Print job failed: %s: %s", job.UUID, errMsg)
		_ = pf.logPrintAction(ctx, operatorID, models.AuditActionPrintJobFailed, auditMsg, false, &errMsg, metadata)
	} else {
		if err := pf.jobRepo.UpdateStatus(ctx, job.ID, models.PrintJobStatusSent, nil); err != nil {
			return nil, NewBusinessError("PRINT_JOB_UPDATE_FAILED", "Print job update failed", err)
		}
		job.Status = models.PrintJobStatusSent
		now := utils.UTCNow()
		job.SentAt = &now

		auditMsg := fmt.Sprintf("Print job sent: %s", job.UUID)
		_ = pf.logPrintAction(ctx, operatorID, models.AuditActionPrintJobSent, auditMsg, true, nil, metadata)
	}

	return &dto.PrintResponse{Job: ToPrintJobDTO(*job)}, nil
}

// ListPrintJobs returns the operator's print history, newest first
func (pf *PrintFlowImpl) ListPrintJobs(ctx context.Context, operatorID uint, page, pageSize int) (*dto.ListPrintJobsResponse, error) {
	if page < 1 {
		return nil, NewBusinessError("PRINT_JOB_LIST_FAILED", "Print job listing failed", ErrInvalidPage)
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, NewBusinessError("PRINT_JOB_LIST_FAILED", "Print job listing failed", ErrInvalidPageSize)
	}

	jobs, err := pf.jobRepo.ListByOperator(ctx, operatorID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, NewBusinessError("PRINT_JOB_LIST_FAILED", "Print job listing failed", err)
	}

	total, err := pf.jobRepo.Count(ctx, models.PrintJobFilter{OperatorID: &operatorID})
	if err != nil {
		return nil, NewBusinessError("PRINT_JOB_LIST_FAILED", "Print job listing failed", err)
	}

	out := make([]dto.PrintJobDTO, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, ToPrintJobDTO(*j))
	}

	return &dto.ListPrintJobsResponse{
		Jobs:  out,
		Total: total,
	}, nil
}

// GetPrintJob returns one job by UUID
func (pf *PrintFlowImpl) GetPrintJob(ctx context.Context, operatorID uint, jobUUID string) (*dto.PrintJobDTO, error) {
	if _, err := utils.ParseUUID(jobUUID); err != nil {
		return nil, NewBusinessError("PRINT_JOB_GET_FAILED", "Print job lookup failed", ErrPrintJobNotFound)
	}

	job, err := pf.jobRepo.ByUUID(ctx, jobUUID)
	if err != nil {
		return nil, NewBusinessError("PRINT_JOB_GET_FAILED", "Print job lookup failed", err)
	}
	if job == nil {
		return nil, NewBusinessError("PRINT_JOB_GET_FAILED", "Print job lookup failed", ErrPrintJobNotFound)
	}
	if job.OperatorID != operatorID {
		return nil, NewBusinessError("PRINT_JOB_GET_FAILED", "Print job lookup failed", ErrPrintJobNotFound)
	}

	d := ToPrintJobDTO(*job)
	return &d, nil
}

// Private helper methods

func (pf *PrintFlowImpl) findOwnedDesign(ctx context.Context, operatorID uint, designUUID string) (*models.LabelDesign, error) {
	if _, err := utils.ParseUUID(designUUID); err != nil {
		return nil, ErrLabelDesignNotFound
	}

	design, err := pf.designRepo.ByUUID(ctx, designUUID)
	if err != nil {
		return nil, err
	}
	if design == nil {
		return nil, ErrLabelDesignNotFound
	}
	if design.OperatorID != operatorID {
		return nil, ErrLabelDesignAccessDenied
	}
	if design.LabelConfig == nil {
		return nil, ErrLabelConfigNotFound
	}

	return design, nil
}

// renderCacheKey changes whenever the design is edited, so stale streams
// age out instead of being invalidated explicitly.
func (pf *PrintFlowImpl) renderCacheKey(design *models.LabelDesign, copies int) string {
	version := design.CreatedAt.Unix()
	if design.UpdatedAt != nil {
		version = design.UpdatedAt.Unix()
	}
	return redisKey(*pf.cacheConfig, fmt.Sprintf("render:%s:%d:%d", design.UUID, version, copies))
}

func (pf *PrintFlowImpl) cacheEnabled() bool {
	return pf.rc != nil && pf.cacheConfig != nil && pf.cacheConfig.Enabled
}

func (pf *PrintFlowImpl) renderWithCache(ctx context.Context, design *models.LabelDesign, copies int) (payload []byte, cached bool, err error) {
	if pf.cacheEnabled() {
		key := pf.renderCacheKey(design, copies)
		if bs, err := pf.rc.Get(ctx, key).Bytes(); err == nil && len(bs) > 0 {
			return bs, true, nil
		}
	}

	payload, err = pf.renderDesign(ctx, design, copies)
	if err != nil {
		return nil, false, err
	}

	if pf.cacheEnabled() {
		_ = pf.rc.Set(ctx, pf.renderCacheKey(design, copies), payload, utils.RenderCacheTTL).Err()
	}

	return payload, false, nil
}

// renderDesign turns a design into the complete TSPL command stream.
func (pf *PrintFlowImpl) renderDesign(ctx context.Context, design *models.LabelDesign, copies int) ([]byte, error) {
	cfg := design.LabelConfig
	elements := design.VisibleElements()
	if len(elements) == 0 {
		return nil, ErrDesignHasNoElements
	}

	widthDots := tspl.MMToDots(cfg.WidthMM)

	doc := tspl.NewDocument(cfg.WidthMM, cfg.HeightMM, cfg.SpacingMM).
		Density(pf.printerConfig.Density).
		Direction(pf.printerConfig.Direction).
		Cls()

	for i := range elements {
		e := &elements[i]
		switch {
		case e.Kind.IsText():
			spec := tspl.ResolveStyle(e.FontSize, e.IsBold())
			doc.Text(e.X, e.Y, spec, e.Text)

		case e.Kind == models.ElementKindSeparator:
			width := widthDots - e.X - tspl.LeftMargin
			if width < 1 {
				width = 1
			}
			doc.Bar(e.X, e.Y, width, separatorThickness)

		case e.Kind == models.ElementKindIcon:
			if err := pf.drawIcon(ctx, doc, e); err != nil {
				return nil, err
			}
		}
	}

	doc.Print(copies)
	return doc.Bytes(), nil
}

func (pf *PrintFlowImpl) drawIcon(ctx context.Context, doc *tspl.Document, e *models.LabelElement) error {
	icon := e.IconAsset
	if icon == nil {
		if e.IconAssetID == nil {
			return ErrElementIconMissing
		}
		loaded, err := pf.iconRepo.ByID(ctx, *e.IconAssetID)
		if err != nil {
			return err
		}
		if loaded == nil {
			return ErrIconNotFound
		}
		icon = loaded
	}

	f, err := os.Open(icon.Path)
	if err != nil {
		return fmt.Errorf("failed to open icon %s: %w", icon.UUID, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode icon %s: %w", icon.UUID, err)
	}

	widthDots := icon.WidthDots
	heightDots := icon.HeightDots
	if e.IconWidth != nil && *e.IconWidth > 0 {
		widthDots = *e.IconWidth
	}
	if e.IconHeight != nil && *e.IconHeight > 0 {
		heightDots = *e.IconHeight
	}

	data, widthBytes := tspl.Rasterize(img, widthDots, heightDots)
	doc.Bitmap(e.X, e.Y, widthBytes, heightDots, data)

	return nil
}

func (pf *PrintFlowImpl) logPrintAction(ctx context.Context, operatorID uint, action string, description string, success bool, errMsg *string, metadata *ClientMetadata) error {
	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	audit := &models.AuditLog{
		OperatorID:   &operatorID,
		Action:       action,
		Description:  &description,
		Success:      utils.ToPtr(success),
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		ErrorMessage: errMsg,
	}

	requestID := ctx.Value(RequestIDKey)
	if requestID != nil {
		requestIDStr, ok := requestID.(string)
		if ok {
			audit.RequestID = &requestIDStr
		}
	}

	return pf.auditRepo.Save(ctx, audit)
}
