package businessflow

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	"github.com/nmzabith/thermal-printer-label-app-sub001/tspl"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"gorm.io/gorm"
)

// FontSettingsFlow handles named font profile operations
type FontSettingsFlow interface {
	GetFontSettings(ctx context.Context, operatorID uint, name string) (*dto.FontSettingsDTO, error)
	SaveFontSettings(ctx context.Context, operatorID uint, name string, request *dto.SaveFontSettingsRequest, metadata *ClientMetadata) (*dto.FontSettingsDTO, error)
	ListFontPresets(ctx context.Context, operatorID uint) (*dto.ListFontPresetsResponse, error)
}

// FontSettingsFlowImpl implements the font settings business flow
type FontSettingsFlowImpl struct {
	profileRepo repository.FontProfileRepository
	auditRepo   repository.AuditLogRepository
	db          *gorm.DB
}

// NewFontSettingsFlow creates a new font settings flow instance
func NewFontSettingsFlow(
	profileRepo repository.FontProfileRepository,
	auditRepo repository.AuditLogRepository,
	db *gorm.DB,
) FontSettingsFlow {
	return &FontSettingsFlowImpl{
		profileRepo: profileRepo,
		auditRepo:   auditRepo,
		db:          db,
	}
}

// presetSettings returns the factory settings for a preset name.
func presetSettings(name string) (tspl.FontSettings, bool) {
	switch name {
	case models.FontProfileDefault:
		return tspl.DefaultFontSettings(), true
	case models.FontProfileSmall:
		return tspl.SmallFontSettings(), true
	case models.FontProfileLarge:
		return tspl.LargeFontSettings(), true
	default:
		return tspl.FontSettings{}, false
	}
}

// GetFontSettings returns a named profile. Preset names resolve to their
// factory settings when the operator has not customized them yet.
func (ff *FontSettingsFlowImpl) GetFontSettings(ctx context.Context, operatorID uint, name string) (*dto.FontSettingsDTO, error) {
	if name == "" {
		name = models.FontProfileDefault
	}

	profile, err := ff.profileRepo.ByOperatorAndName(ctx, operatorID, name)
	if err != nil {
		return nil, NewBusinessError("FONT_SETTINGS_GET_FAILED", "Font settings lookup failed", err)
	}

	if profile == nil {
		settings, ok := presetSettings(name)
		if !ok {
			return nil, NewBusinessError("FONT_SETTINGS_GET_FAILED", "Font settings lookup failed", ErrFontProfileNotFound)
		}
		return &dto.FontSettingsDTO{
			Name:     name,
			Settings: settings.ToMap(),
			IsPreset: true,
		}, nil
	}

	out, err := ToFontSettingsDTO(*profile)
	if err != nil {
		return nil, NewBusinessError("FONT_SETTINGS_GET_FAILED", "Font settings lookup failed", err)
	}

	return &out, nil
}

// SaveFontSettings stores a named profile, normalizing the map through the
// settings codec so legacy keys and out-of-range sizes never persist.
func (ff *FontSettingsFlowImpl) SaveFontSettings(ctx context.Context, operatorID uint, name string, request *dto.SaveFontSettingsRequest, metadata *ClientMetadata) (*dto.FontSettingsDTO, error) {
	if name == "" || len(name) > 64 {
		return nil, NewBusinessError("FONT_SETTINGS_VALIDATION_FAILED", "Font settings validation failed", ErrFontProfileNameInvalid)
	}

	resp, err := ff.withProfileTransaction(ctx, func(ctx context.Context) (*dto.FontSettingsDTO, error) {
		normalized := tspl.FontSettingsFromMap(request.Settings).ToMap()

		raw, err := json.Marshal(normalized)
		if err != nil {
			return nil, err
		}

		_, isPreset := presetSettings(name)
		profile := &models.FontProfile{
			OperatorID: operatorID,
			Name:       name,
			Settings:   raw,
			IsPreset:   utils.ToPtr(isPreset),
		}

		if err := ff.profileRepo.Upsert(ctx, profile); err != nil {
			return nil, err
		}

		return &dto.FontSettingsDTO{
			Name:     name,
			Settings: normalized,
			IsPreset: isPreset,
		}, nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Font settings save failed: %s", err.Error())
		_ = ff.logProfileAction(ctx, operatorID, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("FONT_SETTINGS_SAVE_FAILED", "Font settings save failed", err)
	}

	msg := fmt.Sprintf("Font settings saved: %s", name)
	_ = ff.logProfileAction(ctx, operatorID, msg, true, nil, metadata)

	return resp, nil
}

// ListFontPresets returns the three factory presets, reflecting any operator
// customization stored over them
func (ff *FontSettingsFlowImpl) ListFontPresets(ctx context.Context, operatorID uint) (*dto.ListFontPresetsResponse, error) {
	stored, err := ff.profileRepo.ListPresets(ctx, operatorID)
	if err != nil {
		return nil, NewBusinessError("FONT_PRESET_LIST_FAILED", "Font preset listing failed", err)
	}

	byName := make(map[string]*models.FontProfile, len(stored))
	for _, p := range stored {
		byName[p.Name] = p
	}

	presets := make([]dto.FontSettingsDTO, 0, 3)
	for _, name := range []string{models.FontProfileDefault, models.FontProfileSmall, models.FontProfileLarge} {
		if p, ok := byName[name]; ok {
			out, err := ToFontSettingsDTO(*p)
			if err != nil {
				return nil, NewBusinessError("FONT_PRESET_LIST_FAILED", "Font preset listing failed", err)
			}
			presets = append(presets, out)
			continue
		}

		settings, _ := presetSettings(name)
		presets = append(presets, dto.FontSettingsDTO{
			Name:     name,
			Settings: settings.ToMap(),
			IsPreset: true,
		})
	}

	return &dto.ListFontPresetsResponse{Presets: presets}, nil
}

// Private helper methods

func (ff *FontSettingsFlowImpl) withProfileTransaction(ctx context.Context, fn func(context.Context) (*dto.FontSettingsDTO, error)) (*dto.FontSettingsDTO, error) {
	var result *dto.FontSettingsDTO
	var fnErr error

	err := repository.WithTransaction(ctx, ff.db, func(ctx context.Context) error {
		result, fnErr = fn(ctx)
		return fnErr
	})

	if err != nil {
		return nil, err
	}
	return result, fnErr
}

func (ff *FontSettingsFlowImpl) logProfileAction(ctx context.Context, operatorID uint, description string, success bool, errMsg *string, metadata *ClientMetadata) error {
	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	audit := &models.AuditLog{
		OperatorID:   &operatorID,
		Action:       models.AuditActionFontProfileSaved,
		Description:  &description,
		Success:      utils.ToPtr(success),
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		ErrorMessage: errMsg,
	}

	requestID := ctx.Value(RequestIDKey)
	if requestID != nil {
		requestIDStr, ok := requestID.(string)
		if ok {
			audit.RequestID = &requestIDStr
		}
	}

	return ff.auditRepo.Save(ctx, audit)
}
