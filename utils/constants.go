package utils

import (
	"time"
)

// ContextKey is the type used for request-scoped context values.
type ContextKey string

// Context keys populated by the handler layer before a request enters
// the business flows.
const (
	RequestIDKey  ContextKey = "request_id"
	UserAgentKey  ContextKey = "user_agent"
	IPAddressKey  ContextKey = "ip_address"
	EndpointKey   ContextKey = "endpoint"
	TimeoutKey    ContextKey = "timeout"
	CancelFuncKey ContextKey = "cancel_func"
	OperatorIDKey ContextKey = "operator_id"
)

// Token and session time constants
const (
	// AccessTokenTTL is the time-to-live for access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour

	// AccessTokenTTLSeconds is the time-to-live for access tokens in seconds (86400 seconds = 24 hours)
	AccessTokenTTLSeconds = 86400

	// RefreshTokenTTL is the time-to-live for refresh tokens (7 days)
	RefreshTokenTTL = 7 * 24 * time.Hour

	// SessionTimeout is the default session timeout (24 hours)
	SessionTimeout = 24 * time.Hour
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Printing constants
const (
	// RawPrintPort is the TCP port TSC printers listen on for raw command streams
	RawPrintPort = 9100

	// MaxPrintCopies is the upper bound for copies in a single print job
	MaxPrintCopies = 100

	// RenderCacheTTL is how long a rendered label payload stays cached
	RenderCacheTTL = 10 * time.Minute

	// DefaultPrintTimeout bounds the TCP round trip to a printer
	DefaultPrintTimeout = 15 * time.Second
)
