package businessflow

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"gorm.io/gorm"
)

const (
	// maxIconSizeBytes bounds uploaded icon files.
	maxIconSizeBytes = 1 << 20

	// defaultIconDots is the raster size the longest icon edge is
	// normalized to when no explicit size is stored.
	defaultIconDots = 96
)

// IconFlow handles icon asset upload and management operations
type IconFlow interface {
	UploadIcon(ctx context.Context, operatorID uint, name, filename string, data []byte, metadata *ClientMetadata) (*dto.UploadIconResponse, error)
	ListIcons(ctx context.Context, operatorID uint) (*dto.ListIconsResponse, error)
	DeleteIcon(ctx context.Context, operatorID uint, iconUUID string, metadata *ClientMetadata) error
}

// IconFlowImpl implements the icon business flow
type IconFlowImpl struct {
	iconRepo  repository.IconAssetRepository
	auditRepo repository.AuditLogRepository
	uploadDir string
	db        *gorm.DB
}

// NewIconFlow creates a new icon flow instance
func NewIconFlow(
	iconRepo repository.IconAssetRepository,
	auditRepo repository.AuditLogRepository,
	uploadDir string,
	db *gorm.DB,
) IconFlow {
	return &IconFlowImpl{
		iconRepo:  iconRepo,
		auditRepo: auditRepo,
		uploadDir: uploadDir,
		db:        db,
	}
}

// UploadIcon validates and stores an uploaded image, recording the raster
// size it will print at
func (cf *IconFlowImpl) UploadIcon(ctx context.Context, operatorID uint, name, filename string, data []byte, metadata *ClientMetadata) (*dto.UploadIconResponse, error) {
	resp, err := cf.withIconTransaction(ctx, func(ctx context.Context) (*dto.UploadIconResponse, error) {
		if len(data) == 0 || len(data) > maxIconSizeBytes {
			return nil, ErrIconTooLarge
		}

		imgConfig, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, ErrIconFormatUnsupported
		}

		var mimeType, ext string
		switch format {
		case "png":
			mimeType, ext = "image/png", ".png"
		case "jpeg":
			mimeType, ext = "image/jpeg", ".jpg"
		default:
			return nil, ErrIconFormatUnsupported
		}

		if name == "" {
			base := filepath.Base(filename)
			name = base[:len(base)-len(filepath.Ext(base))]
		}

		widthDots, heightDots := normalizedIconDots(imgConfig.Width, imgConfig.Height)

		iconUUID := uuid.New()
		path := filepath.Join(cf.uploadDir, iconUUID.String()+ext)

		if err := os.MkdirAll(cf.uploadDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to store icon file: %w", err)
		}

		icon := &models.IconAsset{
			UUID:       iconUUID,
			OperatorID: operatorID,
			Name:       name,
			Path:       path,
			MimeType:   mimeType,
			WidthDots:  widthDots,
			HeightDots: heightDots,
			SizeBytes:  int64(len(data)),
		}

		if err := cf.iconRepo.Save(ctx, icon); err != nil {
			// best effort cleanup of the orphaned file
			_ = os.Remove(path)
			return nil, err
		}

		return &dto.UploadIconResponse{Icon: ToIconAssetDTO(*icon)}, nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Icon upload failed: %s", err.Error())
		_ = cf.logIconAction(ctx, operatorID, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("ICON_UPLOAD_FAILED", "Icon upload failed", err)
	}

	msg := fmt.Sprintf("Icon uploaded: %s (%s)", resp.Icon.Name, resp.Icon.UUID)
	_ = cf.logIconAction(ctx, operatorID, msg, true, nil, metadata)

	return resp, nil
}

// ListIcons returns the operator's uploaded icons
func (cf *IconFlowImpl) ListIcons(ctx context.Context, operatorID uint) (*dto.ListIconsResponse, error) {
	icons, err := cf.iconRepo.ListByOperator(ctx, operatorID)
	if err != nil {
		return nil, NewBusinessError("ICON_LIST_FAILED", "Icon listing failed", err)
	}

	out := make([]dto.IconAssetDTO, 0, len(icons))
	for _, icon := range icons {
		out = append(out, ToIconAssetDTO(*icon))
	}

	return &dto.ListIconsResponse{
		Icons: out,
		Total: len(out),
	}, nil
}

// DeleteIcon removes an icon record and its stored file
func (cf *IconFlowImpl) DeleteIcon(ctx context.Context, operatorID uint, iconUUID string, metadata *ClientMetadata) error {
	var path string

	err := repository.WithTransaction(ctx, cf.db, func(ctx context.Context) error {
		if _, err := utils.ParseUUID(iconUUID); err != nil {
			return ErrIconNotFound
		}

		icon, err := cf.iconRepo.ByUUID(ctx, iconUUID)
		if err != nil {
			return err
		}
		if icon == nil {
			return ErrIconNotFound
		}
		if icon.OperatorID != operatorID {
			return ErrIconAccessDenied
		}

		path = icon.Path
		return cf.iconRepo.Delete(ctx, icon.ID)
	})

	if err != nil {
		errMsg := fmt.Sprintf("Icon deletion failed: %s", err.Error())
		_ = cf.logIconAction(ctx, operatorID, errMsg, false, &errMsg, metadata)

		return NewBusinessError("ICON_DELETION_FAILED", "Icon deletion failed", err)
	}

	if path != "" {
		_ = os.Remove(path)
	}

	msg := fmt.Sprintf("Icon deleted: %s", iconUUID)
	_ = cf.logIconAction(ctx, operatorID, msg, true, nil, metadata)

	return nil
}

// Private helper methods

// normalizedIconDots scales pixel dimensions so the longest edge lands on
// defaultIconDots, preserving aspect ratio.
func normalizedIconDots(pxWidth, pxHeight int) (int, int) {
	if pxWidth < 1 {
		pxWidth = 1
	}
	if pxHeight < 1 {
		pxHeight = 1
	}

	if pxWidth >= pxHeight {
		h := int(math.Round(float64(defaultIconDots) * float64(pxHeight) / float64(pxWidth)))
		if h < 1 {
			h = 1
		}
		return defaultIconDots, h
	}

	w := int(math.Round(float64(defaultIconDots) * float64(pxWidth) / float64(pxHeight)))
	if w < 1 {
		w = 1
	}
	return w, defaultIconDots
}

func (cf *IconFlowImpl) withIconTransaction(ctx context.Context, fn func(context.Context) (*dto.UploadIconResponse, error)) (*dto.UploadIconResponse, error) {
	var result *dto.UploadIconResponse
	var fnErr error

	err := repository.WithTransaction(ctx, cf.db, func(ctx context.Context) error {
		result, fnErr = fn(ctx)
		return fnErr
	})

	if err != nil {
		return nil, err
	}
	return result, fnErr
}

func (cf *IconFlowImpl) logIconAction(ctx context.Context, operatorID uint, description string, success bool, errMsg *string, metadata *ClientMetadata) error {
	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	audit := &models.AuditLog{
		OperatorID:   &operatorID,
		Action:       models.AuditActionIconUploaded,
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

	return cf.auditRepo.Save(ctx, audit)
}
