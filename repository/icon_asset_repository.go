package repository

import (
	"context"
	"fmt"

	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"gorm.io/gorm"
)

// IconAssetRepositoryImpl implements the IconAssetRepository interface
type IconAssetRepositoryImpl struct {
	*BaseRepository[models.IconAsset, models.IconAssetFilter]
}

// NewIconAssetRepository creates a new icon asset repository
func NewIconAssetRepository(db *gorm.DB) IconAssetRepository {
	return &IconAssetRepositoryImpl{
		BaseRepository: NewBaseRepository[models.IconAsset, models.IconAssetFilter](db),
	}
}

// ByUUID retrieves an icon asset by UUID
func (r *IconAssetRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.IconAsset, error) {
	parsedUUID, err := utils.ParseUUID(uuid)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID format: %w", err)
	}

	filter := models.IconAssetFilter{UUID: &parsedUUID}
	assets, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find icon asset by UUID: %w", err)
	}

	if len(assets) == 0 {
		return nil, nil
	}

	return assets[0], nil
}

// ListByOperator retrieves all icon assets owned by an operator
func (r *IconAssetRepositoryImpl) ListByOperator(ctx context.Context, operatorID uint) ([]*models.IconAsset, error) {
	filter := models.IconAssetFilter{OperatorID: &operatorID}
	return r.ByFilter(ctx, filter, "created_at DESC", 0, 0)
}

// Delete removes an icon asset record
func (r *IconAssetRepositoryImpl) Delete(ctx context.Context, id uint) error {
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

	err = db.Delete(&models.IconAsset{}, id).Error
	if err != nil {
		return fmt.Errorf("failed to delete icon asset: %w", err)
	}

	return nil
}

// ByFilter retrieves icon assets based on filter criteria
func (r *IconAssetRepositoryImpl) ByFilter(ctx context.Context, filter models.IconAssetFilter, orderBy string, limit, offset int) ([]*models.IconAsset, error) {
	db := r.getDB(ctx)

	var assets []*models.IconAsset
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

	err := query.Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find icon assets by filter: %w", err)
	}

	return assets, nil
}

// Count returns the number of icon assets matching the filter
func (r *IconAssetRepositoryImpl) Count(ctx context.Context, filter models.IconAssetFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	var asset models.IconAsset
	query := r.applyFilter(db.Model(&asset), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count icon assets: %w", err)
	}

	return count, nil
}

// Exists checks if any icon asset matching the filter exists
func (r *IconAssetRepositoryImpl) Exists(ctx context.Context, filter models.IconAssetFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *IconAssetRepositoryImpl) applyFilter(db *gorm.DB, filter models.IconAssetFilter) *gorm.DB {
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
		db = db.Where("name ILIKE ?", "%"+*filter.Name+"%")
	}
	if filter.MimeType != nil {
		db = db.Where("mime_type = ?", *filter.MimeType)
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at <= ?", *filter.CreatedBefore)
	}

	return db
}
