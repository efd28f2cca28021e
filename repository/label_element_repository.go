package repository

import (
	"context"
	"fmt"

	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"gorm.io/gorm"
)

// LabelElementRepositoryImpl implements the LabelElementRepository interface
type LabelElementRepositoryImpl struct {
	*BaseRepository[models.LabelElement, models.LabelElementFilter]
}

// NewLabelElementRepository creates a new label element repository
func NewLabelElementRepository(db *gorm.DB) LabelElementRepository {
	return &LabelElementRepositoryImpl{
		BaseRepository: NewBaseRepository[models.LabelElement, models.LabelElementFilter](db),
	}
}

// ListByDesign retrieves the elements of a design in sort order
func (r *LabelElementRepositoryImpl) ListByDesign(ctx context.Context, designID uint) ([]*models.LabelElement, error) {
	filter := models.LabelElementFilter{DesignID: &designID}
	return r.ByFilter(ctx, filter, "sort_order ASC", 0, 0)
}

// DeleteByDesign removes every element of a design
func (r *LabelElementRepositoryImpl) DeleteByDesign(ctx context.Context, designID uint) error {
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
		return fmt.Errorf("failed to delete label elements: %w", err)
	}

	return nil
}

// ByFilter retrieves label elements based on filter criteria
func (r *LabelElementRepositoryImpl) ByFilter(ctx context.Context, filter models.LabelElementFilter, orderBy string, limit, offset int) ([]*models.LabelElement, error) {
	db := r.getDB(ctx)

	var elements []*models.LabelElement
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

	err := query.Find(&elements).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find label elements by filter: %w", err)
	}

	return elements, nil
}

// Count returns the number of label elements matching the filter
func (r *LabelElementRepositoryImpl) Count(ctx context.Context, filter models.LabelElementFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	var element models.LabelElement
	query := r.applyFilter(db.Model(&element), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count label elements: %w", err)
	}

	return count, nil
}

// Exists checks if any label element matching the filter exists
func (r *LabelElementRepositoryImpl) Exists(ctx context.Context, filter models.LabelElementFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *LabelElementRepositoryImpl) applyFilter(db *gorm.DB, filter models.LabelElementFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.DesignID != nil {
		db = db.Where("design_id = ?", *filter.DesignID)
	}
	if filter.ElementID != nil {
		db = db.Where("element_id = ?", *filter.ElementID)
	}
	if filter.Kind != nil {
		db = db.Where("kind = ?", *filter.Kind)
	}
	if filter.Visible != nil {
		db = db.Where("visible = ?", *filter.Visible)
	}

	return db
}
