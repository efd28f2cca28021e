// Package businessflow contains the business logic for the application.
package businessflow

import (
	"time"

	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	"github.com/nmzabith/thermal-printer-label-app-sub001/config"
	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds all client-related information for audit logging and session tracking
type ClientMetadata struct {
	IPAddress  string            `json:"ip_address"`
	UserAgent  string            `json:"user_agent"`
	DeviceInfo map[string]string `json:"device_info,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
	SessionID  string            `json:"session_id,omitempty"`
	Additional map[string]string `json:"additional,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		DeviceInfo: make(map[string]string),
		Additional: make(map[string]string),
	}
}

// AddDeviceInfo adds device information to the metadata
func (cm *ClientMetadata) AddDeviceInfo(key, value string) {
	if cm.DeviceInfo == nil {
		cm.DeviceInfo = make(map[string]string)
	}
	cm.DeviceInfo[key] = value
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// SetSessionID sets the session ID
func (cm *ClientMetadata) SetSessionID(sessionID string) {
	cm.SessionID = sessionID
}

// redisKey prefixes a cache key with the configured namespace.
func redisKey(cfg config.CacheConfig, key string) string {
	return cfg.RedisPrefix + key
}

// ToOperatorDTO converts an operator model to OperatorDTO for auth responses
func ToOperatorDTO(operator models.Operator) dto.OperatorDTO {
	return dto.OperatorDTO{
		ID:        operator.ID,
		UUID:      operator.UUID.String(),
		Email:     operator.Email,
		FullName:  operator.FullName,
		IsActive:  operator.IsActive,
		CreatedAt: operator.CreatedAt.Format(time.RFC3339),
	}
}

func ToSessionDTO(session models.OperatorSession) dto.SessionDTO {
	return dto.NewSessionDTO(session.SessionToken, session.RefreshToken, session.ExpiresAt, session.CreatedAt)
}

func ToLabelConfigDTO(cfg models.LabelConfig) dto.LabelConfigDTO {
	return dto.LabelConfigDTO{
		UUID:        cfg.UUID.String(),
		Name:        cfg.Name,
		WidthMM:     cfg.WidthMM,
		HeightMM:    cfg.HeightMM,
		SpacingMM:   cfg.SpacingMM,
		Description: cfg.Description,
		IsDefault:   utils.IsTrue(cfg.IsDefault),
		IsBuiltin:   utils.IsTrue(cfg.IsBuiltin),
		CreatedAt:   cfg.CreatedAt.Format(time.RFC3339),
	}
}

func ToLabelElementDTO(e models.LabelElement) dto.LabelElementDTO {
	d := dto.LabelElementDTO{
		ElementID:  e.ElementID,
		Kind:       e.Kind.String(),
		Text:       e.Text,
		X:          e.X,
		Y:          e.Y,
		FontSize:   e.FontSize,
		Bold:       e.IsBold(),
		Visible:    e.IsVisible(),
		IconWidth:  e.IconWidth,
		IconHeight: e.IconHeight,
	}
	if e.IconAsset != nil {
		iconUUID := e.IconAsset.UUID.String()
		d.IconUUID = &iconUUID
	}
	return d
}

func ToLabelDesignDTO(design models.LabelDesign) dto.LabelDesignDTO {
	d := dto.LabelDesignDTO{
		UUID:        design.UUID.String(),
		Name:        design.Name,
		Description: design.Description,
		IsDefault:   utils.IsTrue(design.IsDefault),
		Elements:    make([]dto.LabelElementDTO, 0, len(design.Elements)),
		CreatedAt:   design.CreatedAt.Format(time.RFC3339),
	}
	if design.LabelConfig != nil {
		d.LabelConfig = ToLabelConfigDTO(*design.LabelConfig)
	}
	if design.UpdatedAt != nil {
		updatedAt := design.UpdatedAt.Format(time.RFC3339)
		d.UpdatedAt = &updatedAt
	}
	for _, e := range design.Elements {
		d.Elements = append(d.Elements, ToLabelElementDTO(e))
	}
	return d
}

func ToFontSettingsDTO(profile models.FontProfile) (dto.FontSettingsDTO, error) {
	settings, err := profile.SettingsMap()
	if err != nil {
		return dto.FontSettingsDTO{}, err
	}
	return dto.FontSettingsDTO{
		Name:     profile.Name,
		Settings: settings,
		IsPreset: utils.IsTrue(profile.IsPreset),
	}, nil
}

func ToPrintJobDTO(job models.PrintJob) dto.PrintJobDTO {
	d := dto.PrintJobDTO{
		UUID:        job.UUID.String(),
		PrinterAddr: job.PrinterAddr,
		Copies:      job.Copies,
		Status:      job.Status.String(),
		Error:       job.Error,
		CreatedAt:   job.CreatedAt.Format(time.RFC3339),
	}
	if job.Design != nil {
		d.DesignUUID = job.Design.UUID.String()
		d.DesignName = job.Design.Name
	}
	if job.SentAt != nil {
		sentAt := job.SentAt.Format(time.RFC3339)
		d.SentAt = &sentAt
	}
	return d
}

func ToIconAssetDTO(icon models.IconAsset) dto.IconAssetDTO {
	return dto.IconAssetDTO{
		UUID:       icon.UUID.String(),
		Name:       icon.Name,
		MimeType:   icon.MimeType,
		WidthDots:  icon.WidthDots,
		HeightDots: icon.HeightDots,
		SizeBytes:  icon.SizeBytes,
		CreatedAt:  icon.CreatedAt.Format(time.RFC3339),
	}
}
