package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FontProfileRepositoryImpl implements the FontProfileRepository interface
type FontProfileRepositoryImpl struct {
	*BaseRepository[models.FontProfile, models.FontProfileFilter]
}

// NewFontProfileRepository creates a new font profile repository
func NewFontProfileRepository(db *gorm.DB) FontProfileRepository {
	return &FontProfileRepositoryImpl{
		BaseRepository: NewBaseRepository[models.FontProfile, models.FontProfileFilter](db),
	}
}

// ByOperatorAndName retrieves a profile by its opaque key for an operator
func (r *FontProfileRepositoryImpl) ByOperatorAndName(ctx context.Context, operatorID uint, name string) (*models.FontProfile, error) {
	filter := models.FontProfileFilter{
		OperatorID: &operatorID,
		Name:       &name,
	}
	profiles, err := r.ByFilter(ctx, filter, "", 1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find font profile: %w", err)
	}

	if len(profiles) == 0 {
		return nil, nil
	}

	return profiles[0], nil
}

// ListPresets retrieves the seeded preset profiles for an operator
func (r *FontProfileRepositoryImpl) ListPresets(ctx context.Context, operatorID uint) ([]*models.FontProfile, error) {
	isPreset := true
	filter := models.FontProfileFilter{
		OperatorID: &operatorID,
		IsPreset:   &isPreset,
	}
	return r.ByFilter(ctx, filter, "name ASC", 0, 0)
}

// Upsert inserts a profile or replaces the settings of an existing one
func (r *FontProfileRepositoryImpl) Upsert(ctx context.Context, profile *models.FontProfile) error {
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

	if err = profile.BeforeCreate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	profile.UpdatedAt = &now

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "operator_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"settings", "updated_at"}),
	}).Create(profile).Error

	if err != nil {
		return fmt.Errorf("failed to upsert font profile: %w", err)
	}

	return nil
}

// ByFilter retrieves font profiles based on filter criteria
func (r *FontProfileRepositoryImpl) ByFilter(ctx context.Context, filter models.FontProfileFilter, orderBy string, limit, offset int) ([]*models.FontProfile, error) {
	db := r.getDB(ctx)

	var profiles []*models.FontProfile
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

	err := query.Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find font profiles by filter: %w", err)
	}

	return profiles, nil
}

// Count returns the number of font profiles matching the filter
func (r *FontProfileRepositoryImpl) Count(ctx context.Context, filter models.FontProfileFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	var profile models.FontProfile
	query := r.applyFilter(db.Model(&profile), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count font profiles: %w", err)
	}

	return count, nil
}

// Exists checks if any font profile matching the filter exists
func (r *FontProfileRepositoryImpl) Exists(ctx context.Context, filter models.FontProfileFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *FontProfileRepositoryImpl) applyFilter(db *gorm.DB, filter models.FontProfileFilter) *gorm.DB {
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
	if filter.IsPreset != nil {
		db = db.Where("is_preset = ?", *filter.IsPreset)
	}

	return db
}
