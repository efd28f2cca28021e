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
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
)

func newConfigFlowForTest(tdb *testhelpers.TestDB) LabelConfigFlow {
	return NewLabelConfigFlow(
		repository.NewLabelConfigRepository(tdb.DB),
		repository.NewLabelDesignRepository(tdb.DB),
		repository.NewAuditLogRepository(tdb.DB),
		tdb.DB,
	)
}

func TestListLabelConfigsSeedsBuiltins(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newConfigFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	resp, err := flow.ListLabelConfigs(context.Background(), operator.ID)
	require.NoError(t, err)

	require.Equal(t, 4, resp.Total)
	for _, c := range resp.Configs {
		assert.True(t, c.IsBuiltin, "seeded stock %s should be builtin", c.Name)
	}

	// A second listing must not seed duplicates
	again, err := flow.ListLabelConfigs(context.Background(), operator.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, again.Total)
}

func TestCreateLabelConfig(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newConfigFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	request := &dto.CreateLabelConfigRequest{
		Name:      "Custom 80x60",
		WidthMM:   80,
		HeightMM:  60,
		SpacingMM: 2,
	}

	created, err := flow.CreateLabelConfig(context.Background(), operator.ID, request, testMetadata())
	require.NoError(t, err)
	assert.Equal(t, "Custom 80x60", created.Name)
	assert.Equal(t, 80.0, created.WidthMM)
	assert.Equal(t, 60.0, created.HeightMM)
	assert.False(t, created.IsBuiltin)

	// Same name and size counts as a duplicate
	_, err = flow.CreateLabelConfig(context.Background(), operator.ID, request, testMetadata())
	require.Error(t, err)
	assert.True(t, IsLabelConfigExists(err))
}

func TestCreateLabelConfigInvalidSize(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newConfigFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	_, err = flow.CreateLabelConfig(context.Background(), operator.ID, &dto.CreateLabelConfigRequest{
		Name:     "Broken",
		WidthMM:  -5,
		HeightMM: 60,
	}, testMetadata())
	require.Error(t, err)
	assert.True(t, IsLabelConfigInvalidSize(err))
}

func TestCreateLabelConfigDefaultIsExclusive(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newConfigFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	first, err := flow.CreateLabelConfig(context.Background(), operator.ID, &dto.CreateLabelConfigRequest{
		Name: "First", WidthMM: 100, HeightMM: 150, SpacingMM: 2, IsDefault: true,
	}, testMetadata())
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := flow.CreateLabelConfig(context.Background(), operator.ID, &dto.CreateLabelConfigRequest{
		Name: "Second", WidthMM: 60, HeightMM: 40, SpacingMM: 2, IsDefault: true,
	}, testMetadata())
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	reloaded, err := flow.GetLabelConfig(context.Background(), operator.ID, first.UUID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)
}

func TestUpdateLabelConfig(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newConfigFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)

	updated, err := flow.UpdateLabelConfig(context.Background(), operator.ID, config.UUID.String(), &dto.UpdateLabelConfigRequest{
		Name:    utils.ToPtr("Renamed"),
		WidthMM: utils.ToPtr(110.0),
	}, testMetadata())
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 110.0, updated.WidthMM)
	assert.Equal(t, config.HeightMM, updated.HeightMM)
}

func TestUpdateBuiltinLabelConfigRejected(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newConfigFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	seeded, err := flow.ListLabelConfigs(context.Background(), operator.ID)
	require.NoError(t, err)
	require.NotEmpty(t, seeded.Configs)
	builtin := seeded.Configs[0]

	_, err = flow.UpdateLabelConfig(context.Background(), operator.ID, builtin.UUID, &dto.UpdateLabelConfigRequest{
		Name: utils.ToPtr("Hacked"),
	}, testMetadata())
	require.Error(t, err)
	assert.True(t, IsLabelConfigBuiltin(err))

	err = flow.DeleteLabelConfig(context.Background(), operator.ID, builtin.UUID, testMetadata())
	require.Error(t, err)
	assert.True(t, IsLabelConfigBuiltin(err))
}

func TestDeleteLabelConfigInUse(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newConfigFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)
	_, err = fixtures.CreateTestLabelDesign(operator.ID, config.ID)
	require.NoError(t, err)

	err = flow.DeleteLabelConfig(context.Background(), operator.ID, config.UUID.String(), testMetadata())
	require.Error(t, err)
	assert.True(t, IsLabelConfigInUse(err))
}

func TestDeleteLabelConfig(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newConfigFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)

	require.NoError(t, flow.DeleteLabelConfig(context.Background(), operator.ID, config.UUID.String(), testMetadata()))

	_, err = flow.GetLabelConfig(context.Background(), operator.ID, config.UUID.String())
	require.Error(t, err)
	assert.True(t, IsLabelConfigNotFound(err))
}

func TestGetLabelConfigOwnership(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newConfigFlowForTest(tdb)

	owner, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	other, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(owner.ID)
	require.NoError(t, err)

	_, err = flow.GetLabelConfig(context.Background(), other.ID, config.UUID.String())
	require.Error(t, err)
	assert.True(t, IsLabelConfigAccessDenied(err))
}
