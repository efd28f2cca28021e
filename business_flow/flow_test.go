// Package businessflow contains the business logic for the application.
package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nmzabith/thermal-printer-label-app-sub001/app/services"
	testhelpers "github.com/nmzabith/thermal-printer-label-app-sub001/testing"
)

// setupFlowDB provisions a dedicated test database and fixture helper,
// skipping the test when no PostgreSQL server is reachable.
func setupFlowDB(t *testing.T) (*testhelpers.TestDB, *testhelpers.TestFixtures) {
	t.Helper()

	tdb, err := testhelpers.SetupTestDB()
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	t.Cleanup(func() {
		if err := tdb.TeardownTestDB(); err != nil {
			t.Logf("test database teardown: %v", err)
		}
	})

	return tdb, testhelpers.NewTestFixtures(tdb)
}

// newFlowTokenService creates a symmetric-key token service for flow tests
func newFlowTokenService(t *testing.T) services.TokenService {
	t.Helper()

	ts, err := services.NewTokenService(
		15*time.Minute,
		7*24*time.Hour,
		"test-issuer",
		"test-audience",
		false, // useRSAKeys
		"",    // privateKeyPEM
		"",    // publicKeyPEM
		"test-secret-key-for-jwt-signing-32-chars", // secretKey
	)
	require.NoError(t, err)
	return ts
}

func testMetadata() *ClientMetadata {
	return NewClientMetadata("127.0.0.1", "flow-test-agent")
}

// stubCaptchaService accepts or rejects every challenge based on verdict.
type stubCaptchaService struct {
	verdict bool
}

func (s *stubCaptchaService) GenerateRotate(ctx context.Context) (*services.RotateChallenge, error) {
	return &services.RotateChallenge{
		ID:                "stub-challenge",
		MasterImageBase64: "bWFzdGVy",
		ThumbImageBase64:  "dGh1bWI=",
		ExpiresAt:         time.Now().Add(2 * time.Minute),
	}, nil
}

func (s *stubCaptchaService) VerifyRotate(ctx context.Context, challengeID string, userAngle float64) bool {
	return s.verdict
}

// stubPrinterClient records dispatched payloads instead of opening sockets.
type stubPrinterClient struct {
	err      error
	addrs    []string
	payloads [][]byte
}

func (s *stubPrinterClient) Send(ctx context.Context, addr string, payload []byte) error {
	if s.err != nil {
		return s.err
	}
	s.addrs = append(s.addrs, addr)
	s.payloads = append(s.payloads, append([]byte(nil), payload...))
	return nil
}
