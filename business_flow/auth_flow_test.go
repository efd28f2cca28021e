// Package businessflow contains the business logic for the application.
package businessflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	testhelpers "github.com/nmzabith/thermal-printer-label-app-sub001/testing"
)

func newAuthFlowForTest(t *testing.T, tdb *testhelpers.TestDB, captchaOK bool) AuthFlow {
	t.Helper()

	return NewAuthFlow(
		repository.NewOperatorRepository(tdb.DB),
		repository.NewOperatorSessionRepository(tdb.DB),
		repository.NewAuditLogRepository(tdb.DB),
		newFlowTokenService(t),
		&stubCaptchaService{verdict: captchaOK},
		tdb.DB,
	)
}

func loginRequest(email string) *dto.LoginRequest {
	return &dto.LoginRequest{
		Email:        email,
		Password:     testhelpers.TestPassword,
		CaptchaID:    "stub-challenge",
		CaptchaAngle: 137,
	}
}

func TestAuthFlowLoginSuccess(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newAuthFlowForTest(t, tdb, true)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	resp, err := flow.Login(context.Background(), loginRequest(operator.Email), testMetadata())
	require.NoError(t, err)

	assert.Equal(t, operator.Email, resp.Operator.Email)
	assert.Equal(t, operator.UUID.String(), resp.Operator.UUID)
	assert.NotEmpty(t, resp.Session.AccessToken)
	require.NotNil(t, resp.Session.RefreshToken)
	assert.NotEmpty(t, *resp.Session.RefreshToken)
	assert.Equal(t, "Bearer", resp.Session.TokenType)
	assert.Greater(t, resp.Session.ExpiresIn, 0)

	var sessionCount int64
	require.NoError(t, tdb.DB.Model(&models.OperatorSession{}).
		Where("operator_id = ?", operator.ID).Count(&sessionCount).Error)
	assert.Equal(t, int64(1), sessionCount)
}

func TestAuthFlowLoginWrongPassword(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newAuthFlowForTest(t, tdb, true)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	request := loginRequest(operator.Email)
	request.Password = "DefinitelyWrong1!"

	_, err = flow.Login(context.Background(), request, testMetadata())
	require.Error(t, err)
	assert.True(t, IsIncorrectPassword(err))
}

func TestAuthFlowLoginUnknownEmail(t *testing.T) {
	tdb, _ := setupFlowDB(t)
	flow := newAuthFlowForTest(t, tdb, true)

	_, err := flow.Login(context.Background(), loginRequest("nobody@example.com"), testMetadata())
	require.Error(t, err)
	assert.True(t, IsOperatorNotFound(err))
}

func TestAuthFlowLoginCaptchaRejected(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newAuthFlowForTest(t, tdb, false)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	_, err = flow.Login(context.Background(), loginRequest(operator.Email), testMetadata())
	require.Error(t, err)
	assert.True(t, IsCaptchaFailed(err))
}

func TestAuthFlowLoginInactiveAccount(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newAuthFlowForTest(t, tdb, true)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	require.NoError(t, tdb.DB.Model(&models.Operator{}).
		Where("id = ?", operator.ID).Update("is_active", false).Error)

	_, err = flow.Login(context.Background(), loginRequest(operator.Email), testMetadata())
	require.Error(t, err)
	assert.True(t, IsAccountInactive(err))
}

func TestAuthFlowRefreshTokenRotatesSession(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newAuthFlowForTest(t, tdb, true)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	login, err := flow.Login(context.Background(), loginRequest(operator.Email), testMetadata())
	require.NoError(t, err)
	require.NotNil(t, login.Session.RefreshToken)
	oldRefresh := *login.Session.RefreshToken

	refreshed, err := flow.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: oldRefresh}, testMetadata())
	require.NoError(t, err)

	assert.NotEmpty(t, refreshed.Session.AccessToken)
	assert.NotEqual(t, login.Session.AccessToken, refreshed.Session.AccessToken)
	require.NotNil(t, refreshed.Session.RefreshToken)
	assert.NotEqual(t, oldRefresh, *refreshed.Session.RefreshToken)

	// The retired session cannot mint another pair
	_, err = flow.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: oldRefresh}, testMetadata())
	require.Error(t, err)
	assert.True(t, IsSessionExpired(err))
}

func TestAuthFlowRefreshTokenUnknown(t *testing.T) {
	tdb, _ := setupFlowDB(t)
	flow := newAuthFlowForTest(t, tdb, true)

	_, err := flow.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "not-a-real-token"}, testMetadata())
	require.Error(t, err)
	assert.True(t, IsSessionNotFound(err))
}

func TestAuthFlowLogoutExpiresSession(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newAuthFlowForTest(t, tdb, true)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	login, err := flow.Login(context.Background(), loginRequest(operator.Email), testMetadata())
	require.NoError(t, err)

	require.NoError(t, flow.Logout(context.Background(), login.Session.AccessToken, testMetadata()))

	var session models.OperatorSession
	require.NoError(t, tdb.DB.
		Where("session_token = ?", login.Session.AccessToken).
		Last(&session).Error)
	assert.False(t, session.IsValid())
}

func TestAuthFlowLogoutUnknownToken(t *testing.T) {
	tdb, _ := setupFlowDB(t)
	flow := newAuthFlowForTest(t, tdb, true)

	err := flow.Logout(context.Background(), "never-issued-token", testMetadata())
	require.Error(t, err)
	assert.True(t, IsSessionNotFound(err))
}

func TestAuthFlowGetCaptcha(t *testing.T) {
	tdb, _ := setupFlowDB(t)
	flow := newAuthFlowForTest(t, tdb, true)

	resp, err := flow.GetCaptcha(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.CaptchaID)
	assert.NotEmpty(t, resp.MasterImageBase64)
	assert.NotEmpty(t, resp.ThumbImageBase64)
	assert.NotEmpty(t, resp.ExpiresAt)
}
