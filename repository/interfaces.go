// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// OperatorRepository defines operations for operators
type OperatorRepository interface {
	Repository[models.Operator, models.OperatorFilter]
	ByEmail(ctx context.Context, email string) (*models.Operator, error)
	ByUUID(ctx context.Context, uuid string) (*models.Operator, error)
	UpdateLastLogin(ctx context.Context, operatorID uint) error
	UpdatePassword(ctx context.Context, operatorID uint, passwordHash string) error
}

// OperatorSessionRepository defines operations for operator sessions
type OperatorSessionRepository interface {
	Repository[models.OperatorSession, models.OperatorSessionFilter]
	BySessionToken(ctx context.Context, token string) (*models.OperatorSession, error)
	ByRefreshToken(ctx context.Context, token string) (*models.OperatorSession, error)
	ListActiveSessionsByOperator(ctx context.Context, operatorID uint) ([]*models.OperatorSession, error)
	ExpireSession(ctx context.Context, sessionID uint) error
	ExpireAllOperatorSessions(ctx context.Context, operatorID uint) error
	CleanupExpiredSessions(ctx context.Context) error
	GetLatestByCorrelationID(ctx context.Context, correlationID uuid.UUID) (*models.OperatorSession, error)
}

// LabelConfigRepository defines operations for label stock configurations
type LabelConfigRepository interface {
	Repository[models.LabelConfig, models.LabelConfigFilter]
	ByUUID(ctx context.Context, uuid string) (*models.LabelConfig, error)
	ListByOperator(ctx context.Context, operatorID uint) ([]*models.LabelConfig, error)
	FindSame(ctx context.Context, operatorID uint, name string, widthMM, heightMM float64) (*models.LabelConfig, error)
	ClearDefault(ctx context.Context, operatorID uint) error
	Update(ctx context.Context, config *models.LabelConfig) error
	Delete(ctx context.Context, id uint) error
}

// LabelDesignRepository defines operations for label designs
type LabelDesignRepository interface {
	Repository[models.LabelDesign, models.LabelDesignFilter]
	ByUUID(ctx context.Context, uuid string) (*models.LabelDesign, error)
	ListByOperator(ctx context.Context, operatorID uint, limit, offset int) ([]*models.LabelDesign, error)
	ClearDefault(ctx context.Context, operatorID uint) error
	Update(ctx context.Context, design *models.LabelDesign) error
	ReplaceElements(ctx context.Context, designID uint, elements []*models.LabelElement) error
	Delete(ctx context.Context, id uint) error
}

// LabelElementRepository defines operations for label elements
type LabelElementRepository interface {
	Repository[models.LabelElement, models.LabelElementFilter]
	ListByDesign(ctx context.Context, designID uint) ([]*models.LabelElement, error)
	DeleteByDesign(ctx context.Context, designID uint) error
}

// FontProfileRepository defines operations for font profiles
type FontProfileRepository interface {
	Repository[models.FontProfile, models.FontProfileFilter]
	ByOperatorAndName(ctx context.Context, operatorID uint, name string) (*models.FontProfile, error)
	ListPresets(ctx context.Context, operatorID uint) ([]*models.FontProfile, error)
	Upsert(ctx context.Context, profile *models.FontProfile) error
}

// PrintJobRepository defines operations for print jobs
type PrintJobRepository interface {
	Repository[models.PrintJob, models.PrintJobFilter]
	ByUUID(ctx context.Context, uuid string) (*models.PrintJob, error)
	ListByOperator(ctx context.Context, operatorID uint, limit, offset int) ([]*models.PrintJob, error)
	ListByDesign(ctx context.Context, designID uint, limit, offset int) ([]*models.PrintJob, error)
	UpdateStatus(ctx context.Context, id uint, status models.PrintJobStatus, errMessage *string) error
}

// IconAssetRepository defines operations for icon assets
type IconAssetRepository interface {
	Repository[models.IconAsset, models.IconAssetFilter]
	ByUUID(ctx context.Context, uuid string) (*models.IconAsset, error)
	ListByOperator(ctx context.Context, operatorID uint) ([]*models.IconAsset, error)
	Delete(ctx context.Context, id uint) error
}

// AuditLogRepository defines operations for audit logs
type AuditLogRepository interface {
	Repository[models.AuditLog, models.AuditLogFilter]
	ListByOperator(ctx context.Context, operatorID uint, limit, offset int) ([]*models.AuditLog, error)
	ListByAction(ctx context.Context, action string, limit, offset int) ([]*models.AuditLog, error)
	ListFailedActions(ctx context.Context, limit, offset int) ([]*models.AuditLog, error)
}
