package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PrintJobStatus represents the lifecycle state of a print job
type PrintJobStatus string

const (
	PrintJobStatusPending PrintJobStatus = "pending"
	PrintJobStatusSent    PrintJobStatus = "sent"
	PrintJobStatusFailed  PrintJobStatus = "failed"
)

// String returns the string representation of the status
func (s PrintJobStatus) String() string {
	return string(s)
}

// Valid checks if the status is valid
func (s PrintJobStatus) Valid() bool {
	switch s {
	case PrintJobStatusPending, PrintJobStatusSent, PrintJobStatusFailed:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for PrintJobStatus
func (s *PrintJobStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*s = PrintJobStatus(v)
	case []byte:
		*s = PrintJobStatus(string(v))
	default:
		return fmt.Errorf("cannot scan %T into PrintJobStatus", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for PrintJobStatus
func (s PrintJobStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid PrintJobStatus: %s", s)
	}
	return string(s), nil
}

// PrintJob records one dispatch of a rendered design to a printer. The
// payload is the exact TSPL byte stream that was (or would be) written to
// the socket, kept for reprints and troubleshooting.
type PrintJob struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UUID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uk_print_jobs_uuid" json:"uuid"`
	OperatorID  uint           `gorm:"not null;index:idx_print_jobs_operator_id" json:"operator_id"`
	Operator    *Operator      `gorm:"foreignKey:OperatorID;references:ID" json:"operator,omitempty"`
	DesignID    uint           `gorm:"not null;index:idx_print_jobs_design_id" json:"design_id"`
	Design      *LabelDesign   `gorm:"foreignKey:DesignID;references:ID" json:"design,omitempty"`
	PrinterAddr string         `gorm:"size:255;not null" json:"printer_addr"`
	Copies      int            `gorm:"not null;default:1" json:"copies"`
	Payload     []byte         `gorm:"type:bytea" json:"-"`
	Status      PrintJobStatus `gorm:"type:print_job_status;not null;default:'pending';index:idx_print_jobs_status" json:"status"`
	Error       *string        `gorm:"type:text" json:"error,omitempty"`

	CreatedAt time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_print_jobs_created_at" json:"created_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}

func (PrintJob) TableName() string {
	return "print_jobs"
}

// BeforeCreate is called before creating a new record
func (j *PrintJob) BeforeCreate() error {
	if j.UUID == uuid.Nil {
		j.UUID = uuid.New()
	}
	if j.Status == "" {
		j.Status = PrintJobStatusPending
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	return nil
}

// CanTransitionTo checks if the job can move to the given status
func (j *PrintJob) CanTransitionTo(newStatus PrintJobStatus) bool {
	switch j.Status {
	case PrintJobStatusPending:
		return newStatus == PrintJobStatusSent || newStatus == PrintJobStatusFailed
	default:
		return false
	}
}

func (j *PrintJob) IsFinished() bool {
	return j.Status == PrintJobStatusSent || j.Status == PrintJobStatusFailed
}

// PrintJobFilter represents filter criteria for print job queries
type PrintJobFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	OperatorID    *uint
	DesignID      *uint
	PrinterAddr   *string
	Status        *PrintJobStatus
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	SentAfter     *time.Time
	SentBefore    *time.Time
}
