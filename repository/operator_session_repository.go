package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"gorm.io/gorm"
)

// OperatorSessionRepositoryImpl implements the OperatorSessionRepository interface
type OperatorSessionRepositoryImpl struct {
	*BaseRepository[models.OperatorSession, models.OperatorSessionFilter]
}

// NewOperatorSessionRepository creates a new operator session repository
func NewOperatorSessionRepository(db *gorm.DB) OperatorSessionRepository {
	return &OperatorSessionRepositoryImpl{
		BaseRepository: NewBaseRepository[models.OperatorSession, models.OperatorSessionFilter](db),
	}
}

// BySessionToken retrieves a session by its access token
func (r *OperatorSessionRepositoryImpl) BySessionToken(ctx context.Context, token string) (*models.OperatorSession, error) {
	db := r.getDB(ctx)

	var session models.OperatorSession
	err := db.Preload("Operator").
		Where("session_token = ?", token).
		Last(&session).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find session by token: %w", err)
	}

	return &session, nil
}

// ByRefreshToken retrieves a session by its refresh token
func (r *OperatorSessionRepositoryImpl) ByRefreshToken(ctx context.Context, token string) (*models.OperatorSession, error) {
	db := r.getDB(ctx)

	var session models.OperatorSession
	err := db.Preload("Operator").
		Where("refresh_token = ?", token).
		Last(&session).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find session by refresh token: %w", err)
	}

	return &session, nil
}

// ListActiveSessionsByOperator retrieves all active, unexpired sessions for an operator
func (r *OperatorSessionRepositoryImpl) ListActiveSessionsByOperator(ctx context.Context, operatorID uint) ([]*models.OperatorSession, error) {
	db := r.getDB(ctx)

	var sessions []*models.OperatorSession
	err := db.Where("operator_id = ? AND is_active = ? AND expires_at > ?", operatorID, true, time.Now().UTC()).
		Order("last_accessed_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}

	return sessions, nil
}

// ExpireSession deactivates a single session
func (r *OperatorSessionRepositoryImpl) ExpireSession(ctx context.Context, sessionID uint) error {
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

	err = db.Model(&models.OperatorSession{}).
		Where("id = ?", sessionID).
		Update("is_active", false).Error

	if err != nil {
		return fmt.Errorf("failed to expire session: %w", err)
	}

	return nil
}

// ExpireAllOperatorSessions deactivates every session of an operator
func (r *OperatorSessionRepositoryImpl) ExpireAllOperatorSessions(ctx context.Context, operatorID uint) error {
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

	err = db.Model(&models.OperatorSession{}).
		Where("operator_id = ?", operatorID).
		Update("is_active", false).Error

	if err != nil {
		return fmt.Errorf("failed to expire operator sessions: %w", err)
	}

	return nil
}

// CleanupExpiredSessions deactivates sessions past their expiry time
func (r *OperatorSessionRepositoryImpl) CleanupExpiredSessions(ctx context.Context) error {
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

	err = db.Model(&models.OperatorSession{}).
		Where("expires_at <= ? AND is_active = ?", time.Now().UTC(), true).
		Update("is_active", false).Error

	if err != nil {
		return fmt.Errorf("failed to cleanup expired sessions: %w", err)
	}

	return nil
}

// GetLatestByCorrelationID retrieves the most recent session record in a correlation group
func (r *OperatorSessionRepositoryImpl) GetLatestByCorrelationID(ctx context.Context, correlationID uuid.UUID) (*models.OperatorSession, error) {
	db := r.getDB(ctx)

	var session models.OperatorSession
	err := db.Where("correlation_id = ?", correlationID).
		Order("created_at DESC").
		First(&session).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find session by correlation ID: %w", err)
	}

	return &session, nil
}

// ByFilter retrieves sessions based on filter criteria
func (r *OperatorSessionRepositoryImpl) ByFilter(ctx context.Context, filter models.OperatorSessionFilter, orderBy string, limit, offset int) ([]*models.OperatorSession, error) {
	db := r.getDB(ctx)

	var sessions []*models.OperatorSession
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

	err := query.Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find sessions by filter: %w", err)
	}

	return sessions, nil
}

// Count returns the number of sessions matching the filter
func (r *OperatorSessionRepositoryImpl) Count(ctx context.Context, filter models.OperatorSessionFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	var session models.OperatorSession
	query := r.applyFilter(db.Model(&session), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	return count, nil
}

// Exists checks if any session matching the filter exists
func (r *OperatorSessionRepositoryImpl) Exists(ctx context.Context, filter models.OperatorSessionFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *OperatorSessionRepositoryImpl) applyFilter(db *gorm.DB, filter models.OperatorSessionFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.CorrelationID != nil {
		db = db.Where("correlation_id = ?", *filter.CorrelationID)
	}
	if filter.OperatorID != nil {
		db = db.Where("operator_id = ?", *filter.OperatorID)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IPAddress != nil {
		db = db.Where("ip_address = ?", *filter.IPAddress)
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at <= ?", *filter.CreatedBefore)
	}
	if filter.ExpiresAfter != nil {
		db = db.Where("expires_at >= ?", *filter.ExpiresAfter)
	}
	if filter.ExpiresBefore != nil {
		db = db.Where("expires_at <= ?", *filter.ExpiresBefore)
	}
	if filter.AccessedAfter != nil {
		db = db.Where("last_accessed_at >= ?", *filter.AccessedAfter)
	}
	if filter.AccessedBefore != nil {
		db = db.Where("last_accessed_at <= ?", *filter.AccessedBefore)
	}
	if filter.IsExpired != nil && *filter.IsExpired {
		db = db.Where("expires_at <= ?", time.Now().UTC())
	}

	return db
}
