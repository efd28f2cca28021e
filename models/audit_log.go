package models

import (
	"encoding/json"
	"time"
)

type AuditLog struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	OperatorID   *uint           `gorm:"index:idx_audit_operator_id" json:"operator_id,omitempty"`
	Operator     *Operator       `gorm:"foreignKey:OperatorID;references:ID" json:"operator,omitempty"`
	Action       string          `gorm:"type:audit_action_enum;not null;index:idx_audit_action" json:"action"`
	Description  *string         `gorm:"type:text" json:"description,omitempty"`
	IPAddress    *string         `gorm:"type:inet;index:idx_audit_ip_address" json:"ip_address,omitempty"`
	UserAgent    *string         `gorm:"type:text" json:"user_agent,omitempty"`
	RequestID    *string         `gorm:"size:255;index:idx_audit_request_id" json:"request_id,omitempty"`
	Metadata     json.RawMessage `gorm:"type:jsonb;index:idx_audit_metadata,type:gin" json:"metadata,omitempty"`
	Success      *bool           `gorm:"default:true;index:idx_audit_success" json:"success"`
	ErrorMessage *string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time       `gorm:"default:CURRENT_TIMESTAMP;index:idx_audit_created_at" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}

// Audit action constants
const (
	AuditActionLoginSuccess       = "login_success"
	AuditActionLoginFailed        = "login_failed"
	AuditActionLogout             = "logout"
	AuditActionTokenRefreshed     = "token_refreshed"
	AuditActionSessionCreated     = "session_created"
	AuditActionSessionExpired     = "session_expired"
	AuditActionLabelConfigCreated = "label_config_created"
	AuditActionLabelConfigUpdated = "label_config_updated"
	AuditActionLabelConfigDeleted = "label_config_deleted"
	AuditActionLabelDesignCreated = "label_design_created"
	AuditActionLabelDesignUpdated = "label_design_updated"
	AuditActionLabelDesignDeleted = "label_design_deleted"
	AuditActionFontProfileSaved   = "font_profile_saved"
	AuditActionIconUploaded       = "icon_uploaded"
	AuditActionPrintJobCreated    = "print_job_created"
	AuditActionPrintJobSent       = "print_job_sent"
	AuditActionPrintJobFailed     = "print_job_failed"
	AuditActionReportExported     = "report_exported"
	AuditActionAccountActivated   = "account_activated"
	AuditActionAccountDeactivated = "account_deactivated"
)

// AuditLogFilter represents filter criteria for audit log queries
type AuditLogFilter struct {
	ID            *uint
	OperatorID    *uint
	Action        *string
	Success       *bool
	IPAddress     *string
	RequestID     *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

func (a *AuditLog) IsFailed() bool {
	return a.Success != nil && !*a.Success
}

func (a *AuditLog) IsSecurityEvent() bool {
	securityActions := map[string]bool{
		AuditActionLoginSuccess:       true,
		AuditActionLoginFailed:        true,
		AuditActionAccountActivated:   true,
		AuditActionAccountDeactivated: true,
	}
	return securityActions[a.Action]
}
