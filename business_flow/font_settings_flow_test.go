// Package businessflow contains the business logic for the application.
package businessflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	testhelpers "github.com/nmzabith/thermal-printer-label-app-sub001/testing"
)

func newFontFlowForTest(tdb *testhelpers.TestDB) FontSettingsFlow {
	return NewFontSettingsFlow(
		repository.NewFontProfileRepository(tdb.DB),
		repository.NewAuditLogRepository(tdb.DB),
		tdb.DB,
	)
}

func TestGetFontSettingsDefaultPreset(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newFontFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	resp, err := flow.GetFontSettings(context.Background(), operator.ID, "default")
	require.NoError(t, err)

	assert.Equal(t, "default", resp.Name)
	assert.True(t, resp.IsPreset)
	assert.EqualValues(t, 6, resp.Settings["nameFontSize"])
	assert.EqualValues(t, 5, resp.Settings["headerFontSize"])
	assert.Equal(t, true, resp.Settings["nameBold"])
}

func TestGetFontSettingsEmptyNameFallsBackToDefault(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newFontFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	resp, err := flow.GetFontSettings(context.Background(), operator.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "default", resp.Name)
}

func TestGetFontSettingsUnknownName(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newFontFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	_, err = flow.GetFontSettings(context.Background(), operator.ID, "no-such-profile")
	require.Error(t, err)
	assert.True(t, IsFontProfileNotFound(err))
}

func TestSaveFontSettingsClampsSizes(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newFontFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	saved, err := flow.SaveFontSettings(context.Background(), operator.ID, "custom", &dto.SaveFontSettingsRequest{
		Settings: map[string]any{
			"nameFontSize": 99,
			"nameBold":     true,
		},
	}, testMetadata())
	require.NoError(t, err)

	assert.Equal(t, "custom", saved.Name)
	assert.False(t, saved.IsPreset)
	assert.EqualValues(t, 8, saved.Settings["nameFontSize"])
	assert.Equal(t, true, saved.Settings["nameBold"])

	// Unspecified roles keep the default preset's values
	assert.EqualValues(t, 5, saved.Settings["headerFontSize"])

	fetched, err := flow.GetFontSettings(context.Background(), operator.ID, "custom")
	require.NoError(t, err)
	assert.EqualValues(t, 8, fetched.Settings["nameFontSize"])
	assert.False(t, fetched.IsPreset)
}

func TestSaveFontSettingsOverridesPreset(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newFontFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	saved, err := flow.SaveFontSettings(context.Background(), operator.ID, "default", &dto.SaveFontSettingsRequest{
		Settings: map[string]any{"nameFontSize": 3},
	}, testMetadata())
	require.NoError(t, err)
	assert.True(t, saved.IsPreset)

	fetched, err := flow.GetFontSettings(context.Background(), operator.ID, "default")
	require.NoError(t, err)
	assert.EqualValues(t, 3, fetched.Settings["nameFontSize"])
}

func TestSaveFontSettingsInvalidName(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newFontFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	_, err = flow.SaveFontSettings(context.Background(), operator.ID, "", &dto.SaveFontSettingsRequest{
		Settings: map[string]any{},
	}, testMetadata())
	require.Error(t, err)
	assert.True(t, IsFontProfileNameInvalid(err))
}

func TestListFontPresets(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newFontFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	resp, err := flow.ListFontPresets(context.Background(), operator.ID)
	require.NoError(t, err)

	require.Len(t, resp.Presets, 3)
	assert.Equal(t, "default", resp.Presets[0].Name)
	assert.Equal(t, "small", resp.Presets[1].Name)
	assert.Equal(t, "large", resp.Presets[2].Name)
	for _, p := range resp.Presets {
		assert.True(t, p.IsPreset)
		assert.NotEmpty(t, p.Settings)
	}
}

func TestListFontPresetsReflectsStoredOverride(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newFontFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	_, err = flow.SaveFontSettings(context.Background(), operator.ID, "small", &dto.SaveFontSettingsRequest{
		Settings: map[string]any{"headerFontSize": 2},
	}, testMetadata())
	require.NoError(t, err)

	resp, err := flow.ListFontPresets(context.Background(), operator.ID)
	require.NoError(t, err)
	require.Len(t, resp.Presets, 3)
	assert.EqualValues(t, 2, resp.Presets[1].Settings["headerFontSize"])
}
