// Package businessflow contains the core business logic and use cases for label workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Operator-related errors
	ErrOperatorNotFound  = errors.New("operator not found")
	ErrAccountInactive   = errors.New("account is inactive")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrCaptchaFailed     = errors.New("captcha verification failed")

	// Session-related errors
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionExpired      = errors.New("session has expired")
	ErrRefreshTokenInvalid = errors.New("refresh token is invalid")

	// Label config errors
	ErrLabelConfigNotFound     = errors.New("label config not found")
	ErrLabelConfigAccessDenied = errors.New("label config access denied")
	ErrLabelConfigExists       = errors.New("label config already exists")
	ErrLabelConfigInvalidSize  = errors.New("label config dimensions are invalid")
	ErrLabelConfigBuiltin      = errors.New("builtin label config cannot be modified")
	ErrLabelConfigInUse        = errors.New("label config is referenced by designs")

	// Label design errors
	ErrLabelDesignNotFound     = errors.New("label design not found")
	ErrLabelDesignAccessDenied = errors.New("label design access denied")
	ErrDesignNameRequired      = errors.New("design name is required")
	ErrElementKindInvalid      = errors.New("element kind is invalid")
	ErrElementIconMissing      = errors.New("icon element references no icon asset")
	ErrDesignUpdateRequired    = errors.New("at least one field must be provided for update")

	// Font profile errors
	ErrFontProfileNotFound    = errors.New("font profile not found")
	ErrFontProfileNameInvalid = errors.New("font profile name is invalid")

	// Print errors
	ErrPrintJobNotFound    = errors.New("print job not found")
	ErrPrinterAddrRequired = errors.New("printer address is required")
	ErrCopiesOutOfRange    = errors.New("copies must be between 1 and 100")
	ErrDesignHasNoElements = errors.New("design has no visible elements")

	// Icon errors
	ErrIconNotFound          = errors.New("icon not found")
	ErrIconAccessDenied      = errors.New("icon access denied")
	ErrIconTooLarge          = errors.New("icon file is too large")
	ErrIconFormatUnsupported = errors.New("icon format is not supported")

	// Filter errors
	ErrInvalidPage     = errors.New("page must be at least 1")
	ErrInvalidPageSize = errors.New("page size must be between 1 and 100")

	ErrCacheNotAvailable = errors.New("cache not available")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsOperatorNotFound(err error) bool {
	return errors.Is(err, ErrOperatorNotFound)
}

func IsAccountInactive(err error) bool {
	return errors.Is(err, ErrAccountInactive)
}

func IsIncorrectPassword(err error) bool {
	return errors.Is(err, ErrIncorrectPassword)
}

func IsCaptchaFailed(err error) bool {
	return errors.Is(err, ErrCaptchaFailed)
}

func IsSessionNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}

func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}

func IsRefreshTokenInvalid(err error) bool {
	return errors.Is(err, ErrRefreshTokenInvalid)
}

func IsLabelConfigNotFound(err error) bool {
	return errors.Is(err, ErrLabelConfigNotFound)
}

func IsLabelConfigAccessDenied(err error) bool {
	return errors.Is(err, ErrLabelConfigAccessDenied)
}

func IsLabelConfigExists(err error) bool {
	return errors.Is(err, ErrLabelConfigExists)
}

func IsLabelConfigInvalidSize(err error) bool {
	return errors.Is(err, ErrLabelConfigInvalidSize)
}

func IsLabelConfigBuiltin(err error) bool {
	return errors.Is(err, ErrLabelConfigBuiltin)
}

func IsLabelConfigInUse(err error) bool {
	return errors.Is(err, ErrLabelConfigInUse)
}

func IsLabelDesignNotFound(err error) bool {
	return errors.Is(err, ErrLabelDesignNotFound)
}

func IsLabelDesignAccessDenied(err error) bool {
	return errors.Is(err, ErrLabelDesignAccessDenied)
}

func IsDesignNameRequired(err error) bool {
	return errors.Is(err, ErrDesignNameRequired)
}

func IsElementKindInvalid(err error) bool {
	return errors.Is(err, ErrElementKindInvalid)
}

func IsElementIconMissing(err error) bool {
	return errors.Is(err, ErrElementIconMissing)
}

func IsDesignUpdateRequired(err error) bool {
	return errors.Is(err, ErrDesignUpdateRequired)
}

func IsFontProfileNotFound(err error) bool {
	return errors.Is(err, ErrFontProfileNotFound)
}

func IsFontProfileNameInvalid(err error) bool {
	return errors.Is(err, ErrFontProfileNameInvalid)
}

func IsPrintJobNotFound(err error) bool {
	return errors.Is(err, ErrPrintJobNotFound)
}

func IsPrinterAddrRequired(err error) bool {
	return errors.Is(err, ErrPrinterAddrRequired)
}

func IsCopiesOutOfRange(err error) bool {
	return errors.Is(err, ErrCopiesOutOfRange)
}

func IsDesignHasNoElements(err error) bool {
	return errors.Is(err, ErrDesignHasNoElements)
}

func IsIconNotFound(err error) bool {
	return errors.Is(err, ErrIconNotFound)
}

func IsIconAccessDenied(err error) bool {
	return errors.Is(err, ErrIconAccessDenied)
}

func IsIconTooLarge(err error) bool {
	return errors.Is(err, ErrIconTooLarge)
}

func IsIconFormatUnsupported(err error) bool {
	return errors.Is(err, ErrIconFormatUnsupported)
}

func IsInvalidPage(err error) bool {
	return errors.Is(err, ErrInvalidPage)
}

func IsInvalidPageSize(err error) bool {
	return errors.Is(err, ErrInvalidPageSize)
}

func IsCacheNotAvailable(err error) bool {
	return errors.Is(err, ErrCacheNotAvailable)
}
