package businessflow

import (
	"context"
	"fmt"

	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	"github.com/nmzabith/thermal-printer-label-app-sub001/tspl"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"gorm.io/gorm"
)

// LabelDesignFlow handles label design authoring operations
type LabelDesignFlow interface {
	GenerateDefaultLayout(ctx context.Context, operatorID uint, request *dto.DefaultLayoutRequest) (*dto.DefaultLayoutResponse, error)
	CreateLabelDesign(ctx context.Context, operatorID uint, request *dto.CreateLabelDesignRequest, metadata *ClientMetadata) (*dto.LabelDesignDTO, error)
	ListLabelDesigns(ctx context.Context, operatorID uint, page, pageSize int) (*dto.ListLabelDesignsResponse, error)
	GetLabelDesign(ctx context.Context, operatorID uint, designUUID string) (*dto.LabelDesignDTO, error)
	UpdateLabelDesign(ctx context.Context, operatorID uint, designUUID string, request *dto.UpdateLabelDesignRequest, metadata *ClientMetadata) (*dto.LabelDesignDTO, error)
	DeleteLabelDesign(ctx context.Context, operatorID uint, designUUID string, metadata *ClientMetadata) error
}

// LabelDesignFlowImpl implements the label design business flow
type LabelDesignFlowImpl struct {
	designRepo  repository.LabelDesignRepository
	configRepo  repository.LabelConfigRepository
	elementRepo repository.LabelElementRepository
	profileRepo repository.FontProfileRepository
	iconRepo    repository.IconAssetRepository
	auditRepo   repository.AuditLogRepository
	db          *gorm.DB
}

// NewLabelDesignFlow creates a new label design flow instance
func NewLabelDesignFlow(
	designRepo repository.LabelDesignRepository,
	configRepo repository.LabelConfigRepository,
	elementRepo repository.LabelElementRepository,
	profileRepo repository.FontProfileRepository,
	iconRepo repository.IconAssetRepository,
	auditRepo repository.AuditLogRepository,
	db *gorm.DB,
) LabelDesignFlow {
	return &LabelDesignFlowImpl{
		designRepo:  designRepo,
		configRepo:  configRepo,
		elementRepo: elementRepo,
		profileRepo: profileRepo,
		iconRepo:    iconRepo,
		auditRepo:   auditRepo,
		db:          db,
	}
}

// elementKindAliases maps wire and legacy kind names to the stored enum.
// Old app versions wrote subtitle/title/content/small for the four text
// roles.
var elementKindAliases = map[string]models.ElementKind{
	"labelTitle": models.ElementKindLabelTitle,
	"freeText":   models.ElementKindFreeText,
	"subtitle":   models.ElementKindHeader,
	"title":      models.ElementKindName,
	"content":    models.ElementKindAddress,
	"small":      models.ElementKindPhone,
}

// parseElementKind resolves a kind name, accepting current names and legacy
// aliases.
func parseElementKind(s string) (models.ElementKind, error) {
	kind := models.ElementKind(s)
	if kind.Valid() {
		return kind, nil
	}
	if kind, ok := elementKindAliases[s]; ok {
		return kind, nil
	}
	return "", ErrElementKindInvalid
}

// roleKinds maps layout generator roles to stored element kinds.
var roleKinds = map[tspl.Role]models.ElementKind{
	tspl.RoleHeader:     models.ElementKindHeader,
	tspl.RoleName:       models.ElementKindName,
	tspl.RoleAddress:    models.ElementKindAddress,
	tspl.RolePhone:      models.ElementKindPhone,
	tspl.RoleLabelTitle: models.ElementKindLabelTitle,
	tspl.RoleCOD:        models.ElementKindCOD,
}

// GenerateDefaultLayout produces a starting element list for a stock without
// persisting anything
func (df *LabelDesignFlowImpl) GenerateDefaultLayout(ctx context.Context, operatorID uint, request *dto.DefaultLayoutRequest) (*dto.DefaultLayoutResponse, error) {
	config, err := df.findOwnedConfig(ctx, operatorID, request.LabelConfigUUID)
	if err != nil {
		return nil, NewBusinessError("DEFAULT_LAYOUT_FAILED", "Default layout generation failed", err)
	}

	settings, err := df.loadFontSettings(ctx, operatorID, request.FontProfile)
	if err != nil {
		return nil, NewBusinessError("DEFAULT_LAYOUT_FAILED", "Default layout generation failed", err)
	}

	elements := tspl.DefaultLayout(config.WidthMM, config.HeightMM, settings)

	out := make([]dto.LabelElementDTO, 0, len(elements))
	for _, e := range elements {
		out = append(out, dto.LabelElementDTO{
			ElementID: e.ElementID,
			Kind:      roleKinds[e.Role].String(),
			Text:      e.Text,
			X:         e.X,
			Y:         e.Y,
			FontSize:  e.FontSize,
			Bold:      e.Bold,
			Visible:   e.Visible,
		})
	}

	return &dto.DefaultLayoutResponse{Elements: out}, nil
}

// CreateLabelDesign persists a new design, optionally starting from the
// generated default layout
func (df *LabelDesignFlowImpl) CreateLabelDesign(ctx context.Context, operatorID uint, request *dto.CreateLabelDesignRequest, metadata *ClientMetadata) (*dto.LabelDesignDTO, error) {
	if request.Name == "" {
		return nil, NewBusinessError("LABEL_DESIGN_VALIDATION_FAILED", "Label design validation failed", ErrDesignNameRequired)
	}

	resp, err := df.withDesignTransaction(ctx, func(ctx context.Context) (*dto.LabelDesignDTO, error) {
		config, err := df.findOwnedConfig(ctx, operatorID, request.LabelConfigUUID)
		if err != nil {
			return nil, err
		}

		design := &models.LabelDesign{
			OperatorID:    operatorID,
			LabelConfigID: config.ID,
			Name:          request.Name,
			Description:   request.Description,
			IsDefault:     utils.ToPtr(false),
		}

		if err := df.designRepo.Save(ctx, design); err != nil {
			return nil, err
		}

		var elements []*models.LabelElement
		if request.UseDefault {
			settings, err := df.loadFontSettings(ctx, operatorID, request.FontProfile)
			if err != nil {
				return nil, err
			}
			elements = df.generatedElements(config, settings)
		} else {
			elements, err = df.buildElements(ctx, operatorID, request.Elements)
			if err != nil {
				return nil, err
			}
		}

		if len(elements) > 0 {
			if err := df.designRepo.ReplaceElements(ctx, design.ID, elements); err != nil {
				return nil, err
			}
		}

		stored, err := df.designRepo.ByID(ctx, design.ID)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			return nil, ErrLabelDesignNotFound
		}

		d := ToLabelDesignDTO(*stored)
		return &d, nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Label design creation failed: %s", err.Error())
		_ = df.logDesignAction(ctx, operatorID, models.AuditActionLabelDesignCreated, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("LABEL_DESIGN_CREATION_FAILED", "Label design creation failed", err)
	}

	msg := fmt.Sprintf("Label design created: %s (%s)", resp.Name, resp.UUID)
	_ = df.logDesignAction(ctx, operatorID, models.AuditActionLabelDesignCreated, msg, true, nil, metadata)

	return resp, nil
}

// ListLabelDesigns returns the operator's designs, newest first
func (df *LabelDesignFlowImpl) ListLabelDesigns(ctx context.Context, operatorID uint, page, pageSize int) (*dto.ListLabelDesignsResponse, error) {
	if page < 1 {
		return nil, NewBusinessError("LABEL_DESIGN_LIST_FAILED", "Label design listing failed", ErrInvalidPage)
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, NewBusinessError("LABEL_DESIGN_LIST_FAILED", "Label design listing failed", ErrInvalidPageSize)
	}

	designs, err := df.designRepo.ListByOperator(ctx, operatorID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, NewBusinessError("LABEL_DESIGN_LIST_FAILED", "Label design listing failed", err)
	}

	total, err := df.designRepo.Count(ctx, models.LabelDesignFilter{OperatorID: &operatorID})
	if err != nil {
		return nil, NewBusinessError("LABEL_DESIGN_LIST_FAILED", "Label design listing failed", err)
	}

	out := make([]dto.LabelDesignDTO, 0, len(designs))
	for _, d := range designs {
		out = append(out, ToLabelDesignDTO(*d))
	}

	return &dto.ListLabelDesignsResponse{
		Designs: out,
		Total:   total,
	}, nil
}

// GetLabelDesign returns one design with its elements
func (df *LabelDesignFlowImpl) GetLabelDesign(ctx context.Context, operatorID uint, designUUID string) (*dto.LabelDesignDTO, error) {
	design, err := df.findOwnedDesign(ctx, operatorID, designUUID)
	if err != nil {
		return nil, NewBusinessError("LABEL_DESIGN_GET_FAILED", "Label design lookup failed", err)
	}

	d := ToLabelDesignDTO(*design)
	return &d, nil
}

// UpdateLabelDesign modifies a design; a non-nil element list replaces the
// stored elements entirely
func (df *LabelDesignFlowImpl) UpdateLabelDesign(ctx context.Context, operatorID uint, designUUID string, request *dto.UpdateLabelDesignRequest, metadata *ClientMetadata) (*dto.LabelDesignDTO, error) {
	if request.Name == nil && request.Description == nil && request.IsDefault == nil && request.Elements == nil {
		return nil, NewBusinessError("LABEL_DESIGN_VALIDATION_FAILED", "Label design validation failed", ErrDesignUpdateRequired)
	}

	resp, err := df.withDesignTransaction(ctx, func(ctx context.Context) (*dto.LabelDesignDTO, error) {
		design, err := df.findOwnedDesign(ctx, operatorID, designUUID)
		if err != nil {
			return nil, err
		}

		if request.Name != nil {
			if *request.Name == "" {
				return nil, ErrDesignNameRequired
			}
			design.Name = *request.Name
		}
		if request.Description != nil {
			design.Description = request.Description
		}
		if request.IsDefault != nil {
			if *request.IsDefault {
				if err := df.designRepo.ClearDefault(ctx, operatorID); err != nil {
					return nil, err
				}
			}
			design.IsDefault = request.IsDefault
		}

		if err := df.designRepo.Update(ctx, design); err != nil {
			return nil, err
		}

		if request.Elements != nil {
			elements, err := df.buildElements(ctx, operatorID, request.Elements)
			if err != nil {
				return nil, err
			}
			if err := df.designRepo.ReplaceElements(ctx, design.ID, elements); err != nil {
				return nil, err
			}
		}

		stored, err := df.designRepo.ByID(ctx, design.ID)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			return nil, ErrLabelDesignNotFound
		}

		d := ToLabelDesignDTO(*stored)
		return &d, nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Label design update failed: %s", err.Error())
		_ = df.logDesignAction(ctx, operatorID, models.AuditActionLabelDesignUpdated, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("LABEL_DESIGN_UPDATE_FAILED", "Label design update failed", err)
	}

	msg := fmt.Sprintf("Label design updated: %s", resp.UUID)
	_ = df.logDesignAction(ctx, operatorID, models.AuditActionLabelDesignUpdated, msg, true, nil, metadata)

	return resp, nil
}

// DeleteLabelDesign removes a design and its elements
func (df *LabelDesignFlowImpl) DeleteLabelDesign(ctx context.Context, operatorID uint, designUUID string, metadata *ClientMetadata) error {
	err := repository.WithTransaction(ctx, df.db, func(ctx context.Context) error {
		design, err := df.findOwnedDesign(ctx, operatorID, designUUID)
		if err != nil {
			return err
		}

		if err := df.elementRepo.DeleteByDesign(ctx, design.ID); err != nil {
			return err
		}

		return df.designRepo.Delete(ctx, design.ID)
	})

	if err != nil {
		errMsg := fmt.Sprintf("Label design deletion failed: %s", err.Error())
		_ = df.logDesignAction(ctx, operatorID, models.AuditActionLabelDesignDeleted, errMsg, false, &errMsg, metadata)

		return NewBusinessError("LABEL_DESIGN_DELETION_FAILED", "Label design deletion failed", err)
	}

	msg := fmt.Sprintf("Label design deleted: %s", designUUID)
	_ = df.logDesignAction(ctx, operatorID, models.AuditActionLabelDesignDeleted, msg, true, nil, metadata)

	return nil
}

// Private helper methods

func (df *LabelDesignFlowImpl) findOwnedConfig(ctx context.Context, operatorID uint, configUUID string) (*models.LabelConfig, error) {
	if _, err := utils.ParseUUID(configUUID); err != nil {
		return nil, ErrLabelConfigNotFound
	}

	config, err := df.configRepo.ByUUID(ctx, configUUID)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, ErrLabelConfigNotFound
	}
	if config.OperatorID != operatorID {
		return nil, ErrLabelConfigAccessDenied
	}

	return config, nil
}

func (df *LabelDesignFlowImpl) findOwnedDesign(ctx context.Context, operatorID uint, designUUID string) (*models.LabelDesign, error) {
	if _, err := utils.ParseUUID(designUUID); err != nil {
		return nil, ErrLabelDesignNotFound
	}

	design, err := df.designRepo.ByUUID(ctx, designUUID)
	if err != nil {
		return nil, err
	}
	if design == nil {
		return nil, ErrLabelDesignNotFound
	}
	if design.OperatorID != operatorID {
		return nil, ErrLabelDesignAccessDenied
	}

	return design, nil
}

// loadFontSettings resolves a named profile to concrete settings. A nil or
// unknown name yields the default preset.
func (df *LabelDesignFlowImpl) loadFontSettings(ctx context.Context, operatorID uint, profileName *string) (tspl.FontSettings, error) {
	name := models.FontProfileDefault
	if profileName != nil && *profileName != "" {
		name = *profileName
	}

	profile, err := df.profileRepo.ByOperatorAndName(ctx, operatorID, name)
	if err != nil {
		return tspl.FontSettings{}, err
	}
	if profile == nil {
		switch name {
		case models.FontProfileSmall:
			return tspl.SmallFontSettings(), nil
		case models.FontProfileLarge:
			return tspl.LargeFontSettings(), nil
		default:
			return tspl.DefaultFontSettings(), nil
		}
	}

	m, err := profile.SettingsMap()
	if err != nil {
		return tspl.FontSettings{}, err
	}

	return tspl.FontSettingsFromMap(m), nil
}

func (df *LabelDesignFlowImpl) generatedElements(config *models.LabelConfig, settings tspl.FontSettings) []*models.LabelElement {
	generated := tspl.DefaultLayout(config.WidthMM, config.HeightMM, settings)

	elements := make([]*models.LabelElement, 0, len(generated))
	for i, e := range generated {
		elements = append(elements, &models.LabelElement{
			ElementID: e.ElementID,
			Kind:      roleKinds[e.Role],
			Text:      e.Text,
			X:         e.X,
			Y:         e.Y,
			FontSize:  e.FontSize,
			Bold:      utils.ToPtr(e.Bold),
			Visible:   utils.ToPtr(e.Visible),
			SortOrder: i,
		})
	}
	return elements
}

func (df *LabelDesignFlowImpl) buildElements(ctx context.Context, operatorID uint, dtos []dto.LabelElementDTO) ([]*models.LabelElement, error) {
	elements := make([]*models.LabelElement, 0, len(dtos))
	for i, e := range dtos {
		kind, err := parseElementKind(e.Kind)
		if err != nil {
			return nil, err
		}

		element := &models.LabelElement{
			ElementID: e.ElementID,
			Kind:      kind,
			Text:      e.Text,
			X:         maxInt(e.X, 0),
			Y:         maxInt(e.Y, 0),
			FontSize:  tspl.ClampFontSize(e.FontSize),
			Bold:      utils.ToPtr(e.Bold),
			Visible:   utils.ToPtr(e.Visible),
			SortOrder: i,
		}

		if kind == models.ElementKindIcon {
			if e.IconUUID == nil {
				return nil, ErrElementIconMissing
			}
			icon, err := df.iconRepo.ByUUID(ctx, *e.IconUUID)
			if err != nil {
				return nil, err
			}
			if icon == nil {
				return nil, ErrIconNotFound
			}
			if icon.OperatorID != operatorID {
				return nil, ErrIconAccessDenied
			}
			element.IconAssetID = &icon.ID
			element.IconWidth = e.IconWidth
			element.IconHeight = e.IconHeight
		}

		elements = append(elements, element)
	}
	return elements, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (df *LabelDesignFlowImpl) withDesignTransaction(ctx context.Context, fn func(context.Context) (*dto.LabelDesignDTO, error)) (*dto.LabelDesignDTO, error) {
	var result *dto.LabelDesignDTO
	var fnErr error

	err := repository.WithTransaction(ctx, df.db, func(ctx context.Context) error {
		result, fnErr = fn(ctx)
		return fnErr
	})

	if err != nil {
		return nil, err
	}
	return result, fnErr
}

func (df *LabelDesignFlowImpl) logDesignAction(ctx context.Context, operatorID uint, action string, description string, success bool, errMsg *string, metadata *ClientMetadata) error {
	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	audit := &models.AuditLog{
		OperatorID:   &operatorID,
		Action:       action,
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

	return df.auditRepo.Save(ctx, audit)
}
