// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"fmt"

	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"gorm.io/gorm"
)

// AuditLogRepositoryImpl implements AuditLogRepository interface
type AuditLogRepositoryImpl struct {
	*BaseRepository[models.AuditLog, models.AuditLogFilter]
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &AuditLogRepositoryImpl{
		BaseRepository: NewBaseRepository[models.AuditLog, models.AuditLogFilter](db),
	}
}

// ListByOperator retrieves audit logs for a specific operator with pagination
func (r *AuditLogRepositoryImpl) ListByOperator(ctx context.Context, operatorID uint, limit, offset int) ([]*models.AuditLog, error) {
	db := r.getDB(ctx)

	var logs []*models.AuditLog
	err := db.Where("operator_id = ?", operatorID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Operator").
		Find(&logs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs by operator: %w", err)
	}

	return logs, nil
}

// ListByAction retrieves audit logs for a specific action with pagination
func (r *AuditLogRepositoryImpl) ListByAction(ctx context.Context, action string, limit, offset int) ([]*models.AuditLog, error) {
	db := r.getDB(ctx)

	var logs []*models.AuditLog
	err := db.Where("action = ?", action).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Operator").
		Find(&logs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs by action: %w", err)
	}

	return logs, nil
}

// ListFailedActions retrieves all failed audit log entries with pagination
func (r *AuditLogRepositoryImpl) ListFailedActions(ctx context.Context, limit, offset int) ([]*models.AuditLog, error) {
	db := r.getDB(ctx)

	var logs []*models.AuditLog
	err := db.Where("success = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Operator").
		Find(&logs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list failed audit logs: %w", err)
	}

	return logs, nil
}

// ByFilter retrieves audit logs based on filter criteria
func (r *AuditLogRepositoryImpl) ByFilter(ctx context.Context, filter models.AuditLogFilter, orderBy string, limit, offset int) ([]*models.AuditLog, error) {
	db := r.getDB(ctx)

	var logs []*models.AuditLog
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

	err := query.Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find audit logs by filter: %w", err)
	}

	return logs, nil
}

// Count returns the number of audit logs matching the filter
func (r *AuditLogRepositoryImpl) Count(ctx context.Context, filter models.AuditLogFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	var log models.AuditLog
	query := r.applyFilter(db.Model(&log), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	return count, nil
}

// Exists checks if any audit log matching the filter exists
func (r *AuditLogRepositoryImpl) Exists(ctx context.Context, filter models.AuditLogFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *AuditLogRepositoryImpl) applyFilter(db *gorm.DB, filter models.AuditLogFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.OperatorID != nil {
		db = db.Where("operator_id = ?", *filter.OperatorID)
	}
	if filter.Action != nil {
		db = db.Where("action = ?", *filter.Action)
	}
	if filter.Success != nil {
		db = db.Where("success = ?", *filter.Success)
	}
	if filter.IPAddress != nil {
		db = db.Where("ip_address = ?", *filter.IPAddress)
	}
	if filter.RequestID != nil {
		db = db.Where("request_id = ?", *filter.RequestID)
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at <= ?", *filter.CreatedBefore)
	}

	return db
}
