package businessflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/services"
	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthFlow handles operator authentication and session lifecycle operations
type AuthFlow interface {
	GetCaptcha(ctx context.Context) (*dto.CaptchaResponse, error)
	Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error)
	RefreshToken(ctx context.Context, request *dto.RefreshTokenRequest, metadata *ClientMetadata) (*dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, accessToken string, metadata *ClientMetadata) error
}

// AuthFlowImpl implements the authentication business flow
type AuthFlowImpl struct {
	operatorRepo   repository.OperatorRepository
	sessionRepo    repository.OperatorSessionRepository
	auditRepo      repository.AuditLogRepository
	tokenService   services.TokenService
	captchaService services.CaptchaService
	db             *gorm.DB
}

// NewAuthFlow creates a new auth flow instance
func NewAuthFlow(
	operatorRepo repository.OperatorRepository,
	sessionRepo repository.OperatorSessionRepository,
	auditRepo repository.AuditLogRepository,
	tokenService services.TokenService,
	captchaService services.CaptchaService,
	db *gorm.DB,
) AuthFlow {
	return &AuthFlowImpl{
		operatorRepo:   operatorRepo,
		sessionRepo:    sessionRepo,
		auditRepo:      auditRepo,
		tokenService:   tokenService,
		captchaService: captchaService,
		db:             db,
	}
}

// GetCaptcha generates a rotate captcha challenge for the login form
func (af *AuthFlowImpl) GetCaptcha(ctx context.Context) (*dto.CaptchaResponse, error) {
	challenge, err := af.captchaService.GenerateRotate(ctx)
	if err != nil {
		return nil, NewBusinessError("CAPTCHA_GENERATION_FAILED", "Captcha generation failed", err)
	}

	return &dto.CaptchaResponse{
		CaptchaID:         challenge.ID,
		MasterImageBase64: challenge.MasterImageBase64,
		ThumbImageBase64:  challenge.ThumbImageBase64,
		ExpiresAt:         challenge.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// Login authenticates an operator with email and password
func (af *AuthFlowImpl) Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error) {
	// Validate business rules
	if err := af.validateLoginRequest(request); err != nil {
		return nil, NewBusinessError("LOGIN_VALIDATION_FAILED", "Login validation failed", err)
	}

	// Verify captcha before touching the database
	if !af.captchaService.VerifyRotate(ctx, request.CaptchaID, request.CaptchaAngle) {
		return nil, NewBusinessError(dto.ErrorCaptchaFailed, "Captcha verification failed", ErrCaptchaFailed)
	}

	var operator *models.Operator

	// Start transaction for login process
	resp, err := af.WithLoginTransaction(ctx, func(ctx context.Context) (*dto.LoginResponse, error) {
		var err error
		operator, err = af.operatorRepo.ByEmail(ctx, strings.TrimSpace(strings.ToLower(request.Email)))
		if err != nil {
			return nil, err
		}
		if operator == nil {
			return nil, ErrOperatorNotFound
		}

		// Check if account is active
		if !operator.CanLogin() {
			return nil, ErrAccountInactive
		}

		// Verify password
		if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(request.Password)); err != nil {
			return nil, ErrIncorrectPassword
		}

		if err := af.operatorRepo.UpdateLastLogin(ctx, operator.ID); err != nil {
			return nil, err
		}

		// Create new session
		session, err := af.CreateSession(ctx, operator.ID, metadata)
		if err != nil {
			return nil, err
		}

		return &dto.LoginResponse{
			Operator: ToOperatorDTO(*operator),
			Session:  ToSessionDTO(*session),
		}, nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Login failed: %s", err.Error())
		_ = af.LogAuthAttempt(ctx, operator, models.AuditActionLoginFailed, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	} else {
		msg := fmt.Sprintf("Operator logged in successfully: %d", resp.Operator.ID)
		_ = af.LogAuthAttempt(ctx, operator, models.AuditActionLoginSuccess, msg, true, nil, metadata)
	}

	return resp, nil
}

// RefreshToken rotates a token pair using a valid refresh token
func (af *AuthFlowImpl) RefreshToken(ctx context.Context, request *dto.RefreshTokenRequest, metadata *ClientMetadata) (*dto.RefreshTokenResponse, error) {
	if request.RefreshToken == "" {
		return nil, NewBusinessError("REFRESH_VALIDATION_FAILED", "Refresh validation failed", ErrRefreshTokenInvalid)
	}

	var operator *models.Operator

	resp, err := af.WithRefreshTransaction(ctx, func(ctx context.Context) (*dto.RefreshTokenResponse, error) {
		session, err := af.sessionRepo.ByRefreshToken(ctx, request.RefreshToken)
		if err != nil {
			return nil, err
		}
		if session == nil {
			return nil, ErrSessionNotFound
		}
		if !session.IsValid() {
			return nil, ErrSessionExpired
		}

		operator, err = af.operatorRepo.ByID(ctx, session.OperatorID)
		if err != nil {
			return nil, err
		}
		if operator == nil {
			return nil, ErrOperatorNotFound
		}
		if !operator.CanLogin() {
			return nil, ErrAccountInactive
		}

		accessToken, refreshToken, err := af.tokenService.RefreshToken(request.RefreshToken)
		if err != nil {
			return nil, ErrRefreshTokenInvalid
		}

		// Retire the old session record and chain the replacement through
		// the same correlation ID.
		if err := af.sessionRepo.ExpireSession(ctx, session.ID); err != nil {
			return nil, err
		}

		newSession, err := af.createSessionRecord(ctx, session.OperatorID, session.CorrelationID, accessToken, refreshToken, metadata)
		if err != nil {
			return nil, err
		}

		return &dto.RefreshTokenResponse{
			Session: ToSessionDTO(*newSession),
		}, nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Token refresh failed: %s", err.Error())
		_ = af.LogAuthAttempt(ctx, operator, models.AuditActionLoginFailed, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("TOKEN_REFRESH_FAILED", "Token refresh failed", err)
	} else {
		msg := "Token pair refreshed successfully"
		_ = af.LogAuthAttempt(ctx, operator, models.AuditActionTokenRefreshed, msg, true, nil, metadata)
	}

	return resp, nil
}

// Logout expires the session bound to the presented access token
func (af *AuthFlowImpl) Logout(ctx context.Context, accessToken string, metadata *ClientMetadata) error {
	var operator *models.Operator

	err := repository.WithTransaction(ctx, af.db, func(ctx context.Context) error {
		session, err := af.sessionRepo.BySessionToken(ctx, accessToken)
		if err != nil {
			return err
		}
		if session == nil {
			return ErrSessionNotFound
		}

		operator, err = af.operatorRepo.ByID(ctx, session.OperatorID)
		if err != nil {
			return err
		}

		if err := af.sessionRepo.ExpireSession(ctx, session.ID); err != nil {
			return err
		}

		// Revocation failure does not undo the session expiry
		_ = af.tokenService.RevokeToken(accessToken)

		return nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Logout failed: %s", err.Error())
		_ = af.LogAuthAttempt(ctx, operator, models.AuditActionLogout, errMsg, false, &errMsg, metadata)

		return NewBusinessError("LOGOUT_FAILED", "Logout failed", err)
	}

	msg := "Operator logged out successfully"
	_ = af.LogAuthAttempt(ctx, operator, models.AuditActionLogout, msg, true, nil, metadata)

	return nil
}

// Private helper methods

func (af *AuthFlowImpl) CreateSession(ctx context.Context, operatorID uint, metadata *ClientMetadata) (*models.OperatorSession, error) {
	// Generate tokens
	accessToken, refreshToken, err := af.tokenService.GenerateTokens(operatorID)
	if err != nil {
		return nil, err
	}

	return af.createSessionRecord(ctx, operatorID, uuid.New(), accessToken, refreshToken, metadata)
}

func (af *AuthFlowImpl) createSessionRecord(ctx context.Context, operatorID uint, correlationID uuid.UUID, accessToken, refreshToken string, metadata *ClientMetadata) (*models.OperatorSession, error) {
	// Calculate expiry time using constant
	expiresAt := utils.UTCNowAdd(utils.SessionTimeout)

	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	// Create session record
	session := &models.OperatorSession{
		OperatorID:    operatorID,
		CorrelationID: correlationID,
		SessionToken:  accessToken,
		RefreshToken:  &refreshToken,
		ExpiresAt:     expiresAt,
		IsActive:      utils.ToPtr(true),
		IPAddress:     &ipAddress,
		UserAgent:     &userAgent,
	}

	if err := af.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (af *AuthFlowImpl) LogAuthAttempt(ctx context.Context, operator *models.Operator, action string, description string, success bool, errMsg *string, metadata *ClientMetadata) error {
	var operatorID *uint
	if operator != nil {
		operatorID = &operator.ID
	}

	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	audit := &models.AuditLog{
		OperatorID:   operatorID,
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

	return af.auditRepo.Save(ctx, audit)
}

func (af *AuthFlowImpl) WithLoginTransaction(ctx context.Context, fn func(context.Context) (*dto.LoginResponse, error)) (*dto.LoginResponse, error) {
	var result *dto.LoginResponse
	var fnErr error

	err := repository.WithTransaction(ctx, af.db, func(ctx context.Context) error {
		result, fnErr = fn(ctx)
		return fnErr
	})

	if err != nil {
		return nil, err
	}
	return result, fnErr
}

func (af *AuthFlowImpl) WithRefreshTransaction(ctx context.Context, fn func(context.Context) (*dto.RefreshTokenResponse, error)) (*dto.RefreshTokenResponse, error) {
	var result *dto.RefreshTokenResponse
	var fnErr error

	err := repository.WithTransaction(ctx, af.db, func(ctx context.Context) error {
		result, fnErr = fn(ctx)
		return fnErr
	})

	if err != nil {
		return nil, err
	}
	return result, fnErr
}

func (af *AuthFlowImpl) validateLoginRequest(request *dto.LoginRequest) error {
	if request.Email == "" {
		return ErrOperatorNotFound
	}

	if request.Password == "" {
		return ErrIncorrectPassword
	}

	if request.CaptchaID == "" {
		return ErrCaptchaFailed
	}

	return nil
}
