package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"gorm.io/gorm"
)

// LabelConfigRepositoryImpl implements the LabelConfigRepository interface
type LabelConfigRepositoryImpl struct {
	*BaseRepository[models.LabelConfig, models.LabelConfigFilter]
}

// NewLabelConfigRepository creates a new label config repository
func NewLabelConfigRepository(db *gorm.DB) LabelConfigRepository {
	return &LabelConfigRepositoryImpl{
		BaseRepository: NewBaseRepository[models.LabelConfig, models.LabelConfigFilter](db),
	}
}

// ByUUID retrieves a label config by UUID
func (r *LabelConfigRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.LabelConfig, error) {
	parsedUUID, err := utils.ParseUUID(uuid)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID format: %w", err)
	}

	filter := models.LabelConfigFilter{UUID: &parsedUUID}
	configs, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find label config by UUID: %w", err)
	}

	if len(configs) == 0 {
		return nil, nil
	}

	return configs[0], nil
}

// ListByOperator retrieves all label configs owned by an operator
func (r *LabelConfigRepositoryImpl) ListByOperator(ctx context.Context, operatorID uint) ([]*models.LabelConfig, error) {
	filter := models.LabelConfigFilter{OperatorID: &operatorID}
	return r.ByFilter(ctx, filter, "created_at ASC", 0, 0)
}

// FindSame looks up a config with the same identity (name plus physical size)
func (r *LabelConfigRepositoryImpl) FindSame(ctx context.Context, operatorID uint, name string, widthMM, heightMM float64) (*models.LabelConfig, error) {
	filter := models.LabelConfigFilter{
		OperatorID: &operatorID,
		Name:       &name,
		WidthMM:    &widthMM,
		HeightMM:   &heightMM,
	}
	configs, err := r.ByFilter(ctx, filter, "", 1, 0)
	if err != nil {
		return nil, err
	}

	if len(configs) == 0 {
		return nil, nil
	}

	return configs[0], nil
}

// ClearDefault unsets the default flag on every config of an operator
func (r *LabelConfigRepositoryImpl) ClearDefault(ctx context.Context, operatorID uint) error {
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

	err = db.Model(&models.LabelConfig{}).
		Where("operator_id = ? AND is_default = ?", operatorID, true).
		Update("is_default", false).Error

	if err != nil {
		return fmt.Errorf("failed to clear default label config: %w", err)
	}

	return nil
}

// Update updates a label config
func (r *LabelConfigRepositoryImpl) Update(ctx context.Context, config *models.LabelConfig) error {
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
	config.UpdatedAt = &now

	err = db.Save(config).Error
	if err != nil {
		return fmt.Errorf("failed to update label config: %w", err)
	}

	return nil
}

// Delete removes a label config
func (r *LabelConfigRepositoryImpl) Delete(ctx context.Context, id uint) error {
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

	err = db.Delete(&models.LabelConfig{}, id).Error
	if err != nil {
		return fmt.Errorf("failed to delete label config: %w", err)
	}

	return nil
}

// ByFilter retrieves label configs based on filter criteria
func (r *LabelConfigRepositoryImpl) ByFilter(ctx context.Context, filter models.LabelConfigFilter, orderBy string, limit, offset int) ([]*models.LabelConfig, error) {
	db := r.getDB(ctx)

	var configs []*models.LabelConfig
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

	err := query.Find(&configs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find label configs by filter: %w", err)
	}

	return configs, nil
}

// Count returns the number of label configs matching the filter
func (r *LabelConfigRepositoryImpl) Count(ctx context.Context, filter models.LabelConfigFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	var config models.LabelConfig
	query := r.applyFilter(db.Model(&config), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count label configs: %w", err)
	}

	return count, nil
}

// Exists checks if any label config matching the filter exists
func (r *LabelConfigRepositoryImpl) Exists(ctx context.Context, filter models.LabelConfigFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *LabelConfigRepositoryImpl) applyFilter(db *gorm.DB, filter models.LabelConfigFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.OperatorID != nil {
		db = db.Where("operator_id = ?", *filter.OperatorID)
	}
	if filter.Name != nil {
		db = db.Where("name = ?", *filter.Name)
	}
	if filter.WidthMM != nil {
		db = db.Where("width_mm = ?", *filter.WidthMM)
	}
	if filter.HeightMM != nil {
		db = db.Where("height_mm = ?", *filter.HeightMM)
	}
	if filter.IsDefault != nil {
		db = db.Where("is_default = ?", *filter.IsDefault)
	}
	if filter.IsBuiltin != nil {
		db = db.Where("is_builtin = ?", *filter.IsBuiltin)
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at <= ?", *filter.CreatedBefore)
	}

	return db
}
