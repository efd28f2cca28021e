package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"gorm.io/gorm"
)

// LabelDesignRepositoryImpl implements the LabelDesignRepository interface
type LabelDesignRepositoryImpl struct {
	*BaseRepository[models.LabelDesign, models.LabelDesignFilter]
}

// NewLabelDesignRepository creates a new label design repository
func NewLabelDesignRepository(db *gorm.DB) LabelDesignRepository {
	return &LabelDesignRepositoryImpl{
		BaseRepository: NewBaseRepository[models.LabelDesign, models.LabelDesignFilter](db),
	}
}

// ByID retrieves a label design with its config and ordered elements
func (r *LabelDesignRepositoryImpl) ByID(ctx context.Context, id uint) (*models.LabelDesign, error) {
	db := r.getDB(ctx)

	var design models.LabelDesign
	err := db.Preload("LabelConfig").
		Preload("Elements", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Elements.IconAsset").
		Last(&design, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find label design by ID %d: %w", id, err)
	}

	return &design, nil
}

// ByUUID retrieves a label design by UUID with its config and ordered elements
func (r *LabelDesignRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.LabelDesign, error) {
	parsedUUID, err := utils.ParseUUID(uuid)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID format: %w", err)
	}

	filter := models.LabelDesignFilter{UUID: &parsedUUID}
	designs, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find label design by UUID: %w", err)
	}

	if len(designs) == 0 {
		return nil, nil
	}

	return designs[0], nil
}

// ListByOperator retrieves designs owned by an operator with pagination
func (r *LabelDesignRepositoryImpl) ListByOperator(ctx context.Context, operatorID uint, limit, offset int) ([]*models.LabelDesign, error) {
	filter := models.LabelDesignFilter{OperatorID: &operatorID}
	return r.ByFilter(ctx, filter, "created_at DESC", limit, offset)
}

// ClearDefault unsets the default flag on every design of an operator
func (r *LabelDesignRepositoryImpl) ClearDefault(ctx context.Context, operatorID uint) error {
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

	err = db.Model(&models.LabelDesign{}).
		Where("operator_id = ? AND is_default = ?", operatorID, true).
		Update("is_default", false).Error

	if err != nil {
		return fmt.Errorf("failed to clear default label design: %w", err)
	}

	return nil
}

// Update updates a label design
func (r *LabelDesignRepositoryImpl) Update(ctx context.Context, design *models.LabelDesign) error {
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
	design.UpdatedAt = &now

	err = db.Omit("Elements").Save(design).Error
	if err != nil {
		return fmt.Errorf("failed to update label design: %w", err)
	}

	return nil
}

// ReplaceElements swaps the element list of a design in one transaction
func (r *LabelDesignRepositoryImpl) ReplaceElements(ctx context.Context, designID uint, elements []*models.LabelElement) error {
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

	err = db.Where("design_id = ?", designID).Delete(&models.LabelElement{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete old label elements: %w", err)
	}

	for i, element := range elements {
		element.DesignID = designID
		element.SortOrder = i
	}

	if len(elements) > 0 {
		err = db.CreateInBatches(elements, 100).Error
		if err != nil {
			return fmt.Errorf("failed to insert label elements: %w", err)
		}
	}

	err = db.Model(&models.LabelDesign{}).
		Where("id = ?", designID).
		Update("updated_at", time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to touch label design: %w", err)
	}

	return nil
}

// Delete removes a design and its elements
func (r *LabelDesignRepositoryImpl) Delete(ctx context.Context, id uint) error {
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

	err = db.Where("design_id = ?", id).Delete(&models.LabelElement{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete label elements: %w", err)
	}

	err = db.Delete(&models.LabelDesign{}, id).Error
	if err != nil {
		return fmt.Errorf("failed to delete label design: %w", err)
	}

	return nil
}

// ByFilter retrieves label designs based on filter criteria
func (r *LabelDesignRepositoryImpl) ByFilter(ctx context.Context, filter models.LabelDesignFilter, orderBy string, limit, offset int) ([]*models.LabelDesign, error) {
	db := r.getDB(ctx)

	var designs []*models.LabelDesign
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

	query = query.Preload("LabelConfig").
		Preload("Elements", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Elements.IconAsset")

	err := query.Find(&designs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find label designs by filter: %w", err)
	}

	return designs, nil
}

// Count returns the number of label designs matching the filter
func (r *LabelDesignRepositoryImpl) Count(ctx context.Context, filter models.LabelDesignFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	var design models.LabelDesign
	query := r.applyFilter(db.Model(&design), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count label designs: %w", err)
	}

	return count, nil
}

// Exists checks if any label design matching the filter exists
func (r *LabelDesignRepositoryImpl) Exists(ctx context.Context, filter models.LabelDesignFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *LabelDesignRepositoryImpl) applyFilter(db *gorm.DB, filter models.LabelDesignFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.OperatorID != nil {
		db = db.Where("operator_id = ?", *filter.OperatorID)
	}
	if filter.LabelConfigID != nil {
		db = db.Where("label_config_id = ?", *filter.LabelConfigID)
	}
	if filter.Name != nil {
		db = db.Where("name ILIKE ?", "%"+*filter.Name+"%")
	}
	if filter.IsDefault != nil {
		db = db.Where("is_default = ?", *filter.IsDefault)
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at <= ?", *filter.CreatedBefore)
	}
	if filter.UpdatedAfter != nil {
		db = db.Where("updated_at >= ?", *filter.UpdatedAfter)
	}
	if filter.UpdatedBefore != nil {
		db = db.Where("updated_at <= ?", *filter.UpdatedBefore)
	}

	return db
}
