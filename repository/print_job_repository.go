package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"gorm.io/gorm"
)

// PrintJobRepositoryImpl implements the PrintJobRepository interface
type PrintJobRepositoryImpl struct {
	*BaseRepository[models.PrintJob, models.PrintJobFilter]
}

// NewPrintJobRepository creates a new print job repository
func NewPrintJobRepository(db *gorm.DB) PrintJobRepository {
	return &PrintJobRepositoryImpl{
		BaseRepository: NewBaseRepository[models.PrintJob, models.PrintJobFilter](db),
	}
}

// ByUUID retrieves a print job by UUID
func (r *PrintJobRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.PrintJob, error) {
	parsedUUID, err := utils.ParseUUID(uuid)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID format: %w", err)
	}

	filter := models.PrintJobFilter{UUID: &parsedUUID}
	jobs, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find print job by UUID: %w", err)
	}

	if len(jobs) == 0 {
		return nil, nil
	}

	return jobs[0], nil
}

// ListByOperator retrieves print jobs of an operator with pagination
func (r *PrintJobRepositoryImpl) ListByOperator(ctx context.Context, operatorID uint, limit, offset int) ([]*models.PrintJob, error) {
	filter := models.PrintJobFilter{OperatorID: &operatorID}
	return r.ByFilter(ctx, filter, "created_at DESC", limit, offset)
}

// ListByDesign retrieves print jobs of a design with pagination
func (r *PrintJobRepositoryImpl) ListByDesign(ctx context.Context, designID uint, limit, offset int) ([]*models.PrintJob, error) {
	filter := models.PrintJobFilter{DesignID: &designID}
	return r.ByFilter(ctx, filter, "created_at DESC", limit, offset)
}

// UpdateStatus records a status transition, stamping sent_at on success
func (r *PrintJobRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status models.PrintJobStatus, errMessage *string) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	updates := map[string]interface{}{
		"status": status,
		"error":  errMessage,
	}
	if status == models.PrintJobStatusSent {
		updates["sent_at"] = time.Now().UTC()
	}

	err = db.Model(&models.PrintJob{}).
		Where("id = ?", id).
		Updates(updates).Error

	if err != nil {
		return fmt.Errorf("failed to update print job status: %w", err)
	}

	return nil
}

// ByFilter retrieves print jobs based on filter criteria
func (r *PrintJobRepositoryImpl) ByFilter(ctx context.Context, filter models.PrintJobFilter, orderBy string, limit, offset int) ([]*models.PrintJob, error) {
	db := r.getDB(ctx)

	var jobs []*models.PrintJob
	query := r.applyFilter(db, filter)

	if orderBy != "" {
		query = query.Order(orderBy)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	query = query.Preload("Design").
		Preload("Design.LabelConfig")

	err := query.Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find print jobs by filter: %w", err)
	}

	return jobs, nil
}

// Count returns the number of print jobs matching the filter
func (r *PrintJobRepositoryImpl) Count(ctx context.Context, filter models.PrintJobFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	var job models.PrintJob
	query := r.applyFilter(db.Model(&job), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count print jobs: %w", err)
	}

	return count, nil
}

// Exists checks if any print job matching the filter exists
func (r *PrintJobRepositoryImpl) Exists(ctx context.Context, filter models.PrintJobFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *PrintJobRepositoryImpl) applyFilter(db *gorm.DB, filter models.PrintJobFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.OperatorID != nil {
		db = db.Where("operator_id = ?", *filter.OperatorID)
	}
	if filter.DesignID != nil {
		db = db.Where("design_id = ?", *filter.DesignID)
	}
	if filter.PrinterAddr != nil {
		db = db.Where("printer_addr = ?", *filter.PrinterAddr)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at <= ?", *filter.CreatedBefore)
	}
	if filter.SentAfter != nil {
		db = db.Where("sent_at >= ?", *filter.SentAfter)
	}
	if filter.SentBefore != nil {
		db = db.Where("sent_at <= ?", *filter.SentBefore)
	}

	return db
}
