package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"gorm.io/gorm"
)

// OperatorRepositoryImpl implements the OperatorRepository interface
type OperatorRepositoryImpl struct {
	*BaseRepository[models.Operator, models.OperatorFilter]
}

// NewOperatorRepository creates a new operator repository
func NewOperatorRepository(db *gorm.DB) OperatorRepository {
	return &OperatorRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Operator, models.OperatorFilter](db),
	}
}

// ByEmail retrieves an operator by email address
func (r *OperatorRepositoryImpl) ByEmail(ctx context.Context, email string) (*models.Operator, error) {
	filter := models.OperatorFilter{Email: &email}
	operators, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find operator by email: %w", err)
	}

	if len(operators) == 0 {
		return nil, nil
	}

	return operators[0], nil
}

// ByUUID retrieves an operator by UUID
func (r *OperatorRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.Operator, error) {
	parsedUUID, err := utils.ParseUUID(uuid)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID format: %w", err)
	}

	filter := models.OperatorFilter{UUID: &parsedUUID}
	operators, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find operator by UUID: %w", err)
	}

	if len(operators) == 0 {
		return nil, nil
	}

	return operators[0], nil
}

// UpdateLastLogin stamps the operator's last successful login time
func (r *OperatorRepositoryImpl) UpdateLastLogin(ctx context.Context, operatorID uint) error {
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

	now := time.Now().UTC()
	err = db.Model(&models.Operator{}).
		Where("id = ?", operatorID).
		Updates(map[string]interface{}{
			"last_login_at": now,
			"updated_at":    now,
		}).Error

	if err != nil {
		return fmt.Errorf("failed to update operator last login: %w", err)
	}

	return nil
}

// UpdatePassword updates only the password hash of an operator
func (r *OperatorRepositoryImpl) UpdatePassword(ctx context.Context, operatorID uint, passwordHash string) error {
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

	err = db.Model(&models.Operator{}).
		Where("id = ?", operatorID).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    time.Now().UTC(),
		}).Error

	if err != nil {
		return fmt.Errorf("failed to update operator password: %w", err)
	}

	return nil
}

// ByFilter retrieves operators based on filter criteria
func (r *OperatorRepositoryImpl) ByFilter(ctx context.Context, filter models.OperatorFilter, orderBy string, limit, offset int) ([]*models.Operator, error) {
	db := r.getDB(ctx)

	var operators []*models.Operator
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

	err := query.Find(&operators).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find operators by filter: %w", err)
	}

	return operators, nil
}

// Count returns the number of operators matching the filter
func (r *OperatorRepositoryImpl) Count(ctx context.Context, filter models.OperatorFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	var operator models.Operator
	query := r.applyFilter(db.Model(&operator), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count operators: %w", err)
	}

	return count, nil
}

// Exists checks if any operator matching the filter exists
func (r *OperatorRepositoryImpl) Exists(ctx context.Context, filter models.OperatorFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *OperatorRepositoryImpl) applyFilter(db *gorm.DB, filter models.OperatorFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.Email != nil {
		db = db.Where("email = ?", *filter.Email)
	}
	if filter.FullName != nil {
		db = db.Where("full_name ILIKE ?", "%"+*filter.FullName+"%")
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at <= ?", *filter.CreatedBefore)
	}
	if filter.LastLoginAfter != nil {
		db = db.Where("last_login_at >= ?", *filter.LastLoginAfter)
	}
	if filter.LastLoginBefore != nil {
		db = db.Where("last_login_at <= ?", *filter.LastLoginBefore)
	}

	return db
}
