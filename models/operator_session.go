package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
)

type OperatorSession struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CorrelationID  uuid.UUID `gorm:"type:uuid;not null;index:idx_operator_sessions_correlation_id" json:"correlation_id"` // Groups related session records
	OperatorID     uint      `gorm:"not null;index:idx_operator_sessions_operator_id" json:"operator_id"`
	Operator       Operator  `gorm:"foreignKey:OperatorID;references:ID" json:"operator,omitempty"`
	SessionToken   string    `gorm:"size:255;not null;uniqueIndex:idx_operator_sessions_session_token" json:"-"` // Never serialize token
	RefreshToken   *string   `gorm:"size:255;uniqueIndex:idx_operator_sessions_refresh_token" json:"-"`          // Never serialize refresh token
	IPAddress      *string   `gorm:"type:inet;index:idx_operator_sessions_ip_address" json:"ip_address,omitempty"`
	UserAgent      *string   `gorm:"type:text" json:"user_agent,omitempty"`
	IsActive       *bool     `gorm:"default:true;index:idx_operator_sessions_is_active" json:"is_active"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	LastAccessedAt time.Time `gorm:"default:CURRENT_TIMESTAMP;index:idx_operator_sessions_last_accessed" json:"last_accessed_at"`
	ExpiresAt      time.Time `gorm:"not null;index:idx_operator_sessions_expires_at" json:"expires_at"`
}

func (OperatorSession) TableName() string {
	return "operator_sessions"
}

// OperatorSessionFilter represents filter criteria for session queries
type OperatorSessionFilter struct {
	ID             *uint
	CorrelationID  *uuid.UUID
	OperatorID     *uint
	IsActive       *bool
	IPAddress      *string
	CreatedAfter   *time.Time
	CreatedBefore  *time.Time
	ExpiresAfter   *time.Time
	ExpiresBefore  *time.Time
	AccessedAfter  *time.Time
	AccessedBefore *time.Time
	IsExpired      *bool // Helper to filter expired sessions
}

func (s *OperatorSession) IsExpiredNow() bool {
	return time.Now().After(s.ExpiresAt)
}

func (s *OperatorSession) IsValid() bool {
	return utils.IsTrue(s.IsActive) && !s.IsExpiredNow()
}
