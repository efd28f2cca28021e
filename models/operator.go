package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
)

// Operator is the authenticated principal of the service: a warehouse or
// shop worker who designs labels and dispatches print jobs.
type Operator struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UUID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_operators_uuid" json:"uuid"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:idx_operators_email" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"` // Never serialize password hash
	FullName     string    `gorm:"size:255;not null" json:"full_name"`
	IsActive     *bool     `gorm:"default:true;index:idx_operators_is_active" json:"is_active"`

	CreatedAt   time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_operators_created_at" json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	LastLoginAt *time.Time `gorm:"index:idx_operators_last_login_at" json:"last_login_at,omitempty"`

	// Relations
	Sessions     []OperatorSession `gorm:"foreignKey:OperatorID" json:"-"`
	LabelConfigs []LabelConfig     `gorm:"foreignKey:OperatorID" json:"-"`
	LabelDesigns []LabelDesign     `gorm:"foreignKey:OperatorID" json:"-"`
	AuditLogs    []AuditLog        `gorm:"foreignKey:OperatorID" json:"-"`
}

func (Operator) TableName() string {
	return "operators"
}

// BeforeCreate is called before creating a new record
func (o *Operator) BeforeCreate() error {
	if o.UUID == uuid.Nil {
		o.UUID = uuid.New()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (o *Operator) CanLogin() bool {
	return utils.IsTrue(o.IsActive)
}

// OperatorFilter represents filter criteria for operator queries
type OperatorFilter struct {
	ID              *uint
	UUID            *uuid.UUID
	Email           *string
	FullName        *string
	IsActive        *bool
	CreatedAfter    *time.Time
	CreatedBefore   *time.Time
	LastLoginAfter  *time.Time
	LastLoginBefore *time.Time
}
