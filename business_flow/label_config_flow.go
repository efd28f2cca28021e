package businessflow

import (
	"context"
	"fmt"

	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"gorm.io/gorm"
)

// LabelConfigFlow handles label stock registration and management operations
type LabelConfigFlow interface {
	CreateLabelConfig(ctx context.Context, operatorID uint, request *dto.CreateLabelConfigRequest, metadata *ClientMetadata) (*dto.LabelConfigDTO, error)
	ListLabelConfigs(ctx context.Context, operatorID uint) (*dto.ListLabelConfigsResponse, error)
	GetLabelConfig(ctx context.Context, operatorID uint, configUUID string) (*dto.LabelConfigDTO, error)
	UpdateLabelConfig(ctx context.Context, operatorID uint, configUUID string, request *dto.UpdateLabelConfigRequest, metadata *ClientMetadata) (*dto.LabelConfigDTO, error)
	DeleteLabelConfig(ctx context.Context, operatorID uint, configUUID string, metadata *ClientMetadata) error
}

// builtinStock describes one factory-seeded label stock.
type builtinStock struct {
	name      string
	widthMM   float64
	heightMM  float64
	spacingMM float64
}

// builtinStocks are the label sizes the client apps ship with. They are
// seeded per operator on first listing so the picker is never empty.
var builtinStocks = []builtinStock{
	{name: "100x150 Shipping", widthMM: 100, heightMM: 150, spacingMM: 2},
	{name: "101x152 Shipping (4x6\")", widthMM: 101, heightMM: 152, spacingMM: 3},
	{name: "80x50 Product", widthMM: 80, heightMM: 50, spacingMM: 2},
	{name: "60x40 Barcode", widthMM: 60, heightMM: 40, spacingMM: 2},
}

// LabelConfigFlowImpl implements the label config business flow
type LabelConfigFlowImpl struct {
	configRepo repository.LabelConfigRepository
	designRepo repository.LabelDesignRepository
	auditRepo  repository.AuditLogRepository
	db         *gorm.DB
}

// NewLabelConfigFlow creates a new label config flow instance
func NewLabelConfigFlow(
	configRepo repository.LabelConfigRepository,
	designRepo repository.LabelDesignRepository,
	auditRepo repository.AuditLogRepository,
	db *gorm.DB,
) LabelConfigFlow {
	return &LabelConfigFlowImpl{
		configRepo: configRepo,
		designRepo: designRepo,
		auditRepo:  auditRepo,
		db:         db,
	}
}

// CreateLabelConfig registers a new label stock for an operator
func (lf *LabelConfigFlowImpl) CreateLabelConfig(ctx context.Context, operatorID uint, request *dto.CreateLabelConfigRequest, metadata *ClientMetadata) (*dto.LabelConfigDTO, error) {
	resp, err := lf.withConfigTransaction(ctx, func(ctx context.Context) (*dto.LabelConfigDTO, error) {
		config := &models.LabelConfig{
			OperatorID:  operatorID,
			Name:        request.Name,
			WidthMM:     request.WidthMM,
			HeightMM:    request.HeightMM,
			SpacingMM:   request.SpacingMM,
			Description: request.Description,
			IsDefault:   utils.ToPtr(request.IsDefault),
			IsBuiltin:   utils.ToPtr(false),
		}

		if !config.HasValidGeometry() {
			return nil, ErrLabelConfigInvalidSize
		}

		// Same name and size already registered counts as a duplicate
		existing, err := lf.configRepo.FindSame(ctx, operatorID, request.Name, request.WidthMM, request.HeightMM)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrLabelConfigExists
		}

		if request.IsDefault {
			if err := lf.configRepo.ClearDefault(ctx, operatorID); err != nil {
				return nil, err
			}
		}

		if err := lf.configRepo.Save(ctx, config); err != nil {
			return nil, err
		}

		d := ToLabelConfigDTO(*config)
		return &d, nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Label config creation failed: %s", err.Error())
		_ = lf.logConfigAction(ctx, operatorID, models.AuditActionLabelConfigCreated, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("LABEL_CONFIG_CREATION_FAILED", "Label config creation failed", err)
	}

	msg := fmt.Sprintf("Label config created: %s (%gx%g mm)", resp.Name, resp.WidthMM, resp.HeightMM)
	_ = lf.logConfigAction(ctx, operatorID, models.AuditActionLabelConfigCreated, msg, true, nil, metadata)

	return resp, nil
}

// ListLabelConfigs returns all stocks visible to the operator, seeding the
// builtin sizes on first use
func (lf *LabelConfigFlowImpl) ListLabelConfigs(ctx context.Context, operatorID uint) (*dto.ListLabelConfigsResponse, error) {
	resp, err := lf.withListTransaction(ctx, func(ctx context.Context) (*dto.ListLabelConfigsResponse, error) {
		configs, err := lf.configRepo.ListByOperator(ctx, operatorID)
		if err != nil {
			return nil, err
		}

		if len(configs) == 0 {
			configs, err = lf.seedBuiltinConfigs(ctx, operatorID)
			if err != nil {
				return nil, err
			}
		}

		out := make([]dto.LabelConfigDTO, 0, len(configs))
		for _, c := range configs {
			out = append(out, ToLabelConfigDTO(*c))
		}

		return &dto.ListLabelConfigsResponse{
			Configs: out,
			Total:   len(out),
		}, nil
	})

	if err != nil {
		return nil, NewBusinessError("LABEL_CONFIG_LIST_FAILED", "Label config listing failed", err)
	}

	return resp, nil
}

// GetLabelConfig returns a single stock by UUID
func (lf *LabelConfigFlowImpl) GetLabelConfig(ctx context.Context, operatorID uint, configUUID string) (*dto.LabelConfigDTO, error) {
	config, err := lf.findOwnedConfig(ctx, operatorID, configUUID)
	if err != nil {
		return nil, NewBusinessError("LABEL_CONFIG_GET_FAILED", "Label config lookup failed", err)
	}

	d := ToLabelConfigDTO(*config)
	return &d, nil
}

// UpdateLabelConfig modifies an operator-owned stock
func (lf *LabelConfigFlowImpl) UpdateLabelConfig(ctx context.Context, operatorID uint, configUUID string, request *dto.UpdateLabelConfigRequest, metadata *ClientMetadata) (*dto.LabelConfigDTO, error) {
	resp, err := lf.withConfigTransaction(ctx, func(ctx context.Context) (*dto.LabelConfigDTO, error) {
		config, err := lf.findOwnedConfig(ctx, operatorID, configUUID)
		if err != nil {
			return nil, err
		}

		if utils.IsTrue(config.IsBuiltin) {
			return nil, ErrLabelConfigBuiltin
		}

		if request.Name != nil {
			config.Name = *request.Name
		}
		if request.WidthMM != nil {
			config.WidthMM = *request.WidthMM
		}
		if request.HeightMM != nil {
			config.HeightMM = *request.HeightMM
		}
		if request.SpacingMM != nil {
			config.SpacingMM = *request.SpacingMM
		}
		if request.Description != nil {
			config.Description = request.Description
		}

		if !config.HasValidGeometry() {
			return nil, ErrLabelConfigInvalidSize
		}

		if request.IsDefault != nil {
			if *request.IsDefault {
				if err := lf.configRepo.ClearDefault(ctx, operatorID); err != nil {
					return nil, err
				}
			}
			config.IsDefault = request.IsDefault
		}

		if err := lf.configRepo.Update(ctx, config); err != nil {
			return nil, err
		}

		d := ToLabelConfigDTO(*config)
		return &d, nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Label config update failed: %s", err.Error())
		_ = lf.logConfigAction(ctx, operatorID, models.AuditActionLabelConfigUpdated, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("LABEL_CONFIG_UPDATE_FAILED", "Label config update failed", err)
	}

	msg := fmt.Sprintf("Label config updated: %s", resp.UUID)
	_ = lf.logConfigAction(ctx, operatorID, models.AuditActionLabelConfigUpdated, msg, true, nil, metadata)

	return resp, nil
}

// DeleteLabelConfig removes an operator-owned stock that no design uses
func (lf *LabelConfigFlowImpl) DeleteLabelConfig(ctx context.Context, operatorID uint, configUUID string, metadata *ClientMetadata) error {
	err := repository.WithTransaction(ctx, lf.db, func(ctx context.Context) error {
		config, err := lf.findOwnedConfig(ctx, operatorID, configUUID)
		if err != nil {
			return err
		}

		if utils.IsTrue(config.IsBuiltin) {
			return ErrLabelConfigBuiltin
		}

		inUse, err := lf.designRepo.Exists(ctx, models.LabelDesignFilter{LabelConfigID: &config.ID})
		if err != nil {
			return err
		}
		if inUse {
			return ErrLabelConfigInUse
		}

		return lf.configRepo.Delete(ctx, config.ID)
	})

	if err != nil {
		errMsg := fmt.Sprintf("Label config deletion failed: %s", err.Error())
		_ = lf.logConfigAction(ctx, operatorID, models.AuditActionLabelConfigDeleted, errMsg, false, &errMsg, metadata)

		return NewBusinessError("LABEL_CONFIG_DELETION_FAILED", "Label config deletion failed", err)
	}

	msg := fmt.Sprintf("Label config deleted: %s", configUUID)
	_ = lf.logConfigAction(ctx, operatorID, models.AuditActionLabelConfigDeleted, msg, true, nil, metadata)

	return nil
}

// Private helper methods

func (lf *LabelConfigFlowImpl) findOwnedConfig(ctx context.Context, operatorID uint, configUUID string) (*models.LabelConfig, error) {
	if _, err := utils.ParseUUID(configUUID); err != nil {
		return nil, ErrLabelConfigNotFound
	}

	config, err := lf.configRepo.ByUUID(ctx, configUUID)
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

func (lf *LabelConfigFlowImpl) seedBuiltinConfigs(ctx context.Context, operatorID uint) ([]*models.LabelConfig, error) {
	configs := make([]*models.LabelConfig, 0, len(builtinStocks))
	for i, stock := range builtinStocks {
		configs = append(configs, &models.LabelConfig{
			OperatorID: operatorID,
			Name:       stock.name,
			WidthMM:    stock.widthMM,
			HeightMM:   stock.heightMM,
			SpacingMM:  stock.spacingMM,
			IsDefault:  utils.ToPtr(i == 0),
			IsBuiltin:  utils.ToPtr(true),
		})
	}

	if err := lf.configRepo.SaveBatch(ctx, configs); err != nil {
		return nil, err
	}

	return configs, nil
}

func (lf *LabelConfigFlowImpl) withConfigTransaction(ctx context.Context, fn func(context.Context) (*dto.LabelConfigDTO, error)) (*dto.LabelConfigDTO, error) {
	var result *dto.LabelConfigDTO
	var fnErr error

	err := repository.WithTransaction(ctx, lf.db, func(ctx context.Context) error {
		result, fnErr = fn(ctx)
		return fnErr
	})

	if err != nil {
		return nil, err
	}
	return result, fnErr
}

func (lf *LabelConfigFlowImpl) withListTransaction(ctx context.Context, fn func(context.Context) (*dto.ListLabelConfigsResponse, error)) (*dto.ListLabelConfigsResponse, error) {
	var result *dto.ListLabelConfigsResponse
	var fnErr error

	err := repository.WithTransaction(ctx, lf.db, func(ctx context.Context) error {
		result, fnErr = fn(ctx)
		return fnErr
	})

	if err != nil {
		return nil, err
	}
	return result, fnErr
}

func (lf *LabelConfigFlowImpl) logConfigAction(ctx context.Context, operatorID uint, action string, description string, success bool, errMsg *string, metadata *ClientMetadata) error {
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

	return lf.auditRepo.Save(ctx, audit)
}
