// Package businessflow contains the business logic for the application.
package businessflow

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	testhelpers "github.com/nmzabith/thermal-printer-label-app-sub001/testing"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
)

func newDesignFlowForTest(tdb *testhelpers.TestDB) LabelDesignFlow {
	return NewLabelDesignFlow(
		repository.NewLabelDesignRepository(tdb.DB),
		repository.NewLabelConfigRepository(tdb.DB),
		repository.NewLabelElementRepository(tdb.DB),
		repository.NewFontProfileRepository(tdb.DB),
		repository.NewIconAssetRepository(tdb.DB),
		repository.NewAuditLogRepository(tdb.DB),
		tdb.DB,
	)
}

func TestGenerateDefaultLayoutTallStock(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newDesignFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)

	resp, err := flow.GenerateDefaultLayout(context.Background(), operator.ID, &dto.DefaultLayoutRequest{
		LabelConfigUUID: config.UUID.String(),
	})
	require.NoError(t, err)

	// A 101x152 stock fits the title line and the full FROM section
	ids := make([]string, 0, len(resp.Elements))
	for _, e := range resp.Elements {
		ids = append(ids, e.ElementID)
	}
	assert.Equal(t, []string{
		"label_title",
		"to_header", "to_name", "to_address", "to_phone",
		"from_header", "from_name", "from_phone",
	}, ids)

	assert.Equal(t, "label_title", resp.Elements[0].Kind)
	assert.Equal(t, "header", resp.Elements[1].Kind)
	assert.Equal(t, "name", resp.Elements[2].Kind)
	assert.Equal(t, "address", resp.Elements[3].Kind)
	assert.Equal(t, "phone", resp.Elements[4].Kind)

	// The name role uses the default preset style
	assert.Equal(t, 6, resp.Elements[2].FontSize)
	assert.True(t, resp.Elements[2].Bold)
	for _, e := range resp.Elements {
		assert.True(t, e.Visible)
	}
}

func TestGenerateDefaultLayoutShortStock(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newDesignFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	config := &models.LabelConfig{
		UUID:       uuid.New(),
		OperatorID: operator.ID,
		Name:       "Short Stock",
		WidthMM:    60,
		HeightMM:   40,
		SpacingMM:  2,
		IsDefault:  utils.ToPtr(false),
		IsBuiltin:  utils.ToPtr(false),
		CreatedAt:  utils.UTCNow(),
	}
	require.NoError(t, tdb.DB.Create(config).Error)

	resp, err := flow.GenerateDefaultLayout(context.Background(), operator.ID, &dto.DefaultLayoutRequest{
		LabelConfigUUID: config.UUID.String(),
	})
	require.NoError(t, err)

	// Too short for the title line and the FROM section
	ids := make([]string, 0, len(resp.Elements))
	for _, e := range resp.Elements {
		ids = append(ids, e.ElementID)
	}
	assert.Equal(t, []string{"to_header", "to_name", "to_address", "to_phone"}, ids)
}

func TestCreateLabelDesignWithDefaultLayout(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newDesignFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)

	created, err := flow.CreateLabelDesign(context.Background(), operator.ID, &dto.CreateLabelDesignRequest{
		Name:            "Standard shipping",
		LabelConfigUUID: config.UUID.String(),
		UseDefault:      true,
	}, testMetadata())
	require.NoError(t, err)

	assert.Equal(t, "Standard shipping", created.Name)
	assert.Equal(t, config.UUID.String(), created.LabelConfig.UUID)
	assert.Len(t, created.Elements, 8)

	fetched, err := flow.GetLabelDesign(context.Background(), operator.ID, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, created.UUID, fetched.UUID)
	assert.Len(t, fetched.Elements, 8)
}

func TestCreateLabelDesignLegacyKindAliases(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newDesignFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)

	created, err := flow.CreateLabelDesign(context.Background(), operator.ID, &dto.CreateLabelDesignRequest{
		Name:            "Legacy payload",
		LabelConfigUUID: config.UUID.String(),
		Elements: []dto.LabelElementDTO{
			{ElementID: "e1", Kind: "subtitle", Text: "TO", X: 20, Y: 20, FontSize: 5, Bold: true, Visible: true},
			{ElementID: "e2", Kind: "title", Text: "[NAME]", X: 20, Y: 80, FontSize: 6, Bold: true, Visible: true},
			{ElementID: "e3", Kind: "content", Text: "[ADDRESS]", X: 20, Y: 150, FontSize: 4, Visible: true},
			{ElementID: "e4", Kind: "small", Text: "[PHONE]", X: 20, Y: 220, FontSize: 3, Visible: true},
		},
	}, testMetadata())
	require.NoError(t, err)
	require.Len(t, created.Elements, 4)

	// Old role names from early app versions map onto the current enum
	assert.Equal(t, "header", created.Elements[0].Kind)
	assert.Equal(t, "name", created.Elements[1].Kind)
	assert.Equal(t, "address", created.Elements[2].Kind)
	assert.Equal(t, "phone", created.Elements[3].Kind)
}

func TestCreateLabelDesignInvalidKind(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newDesignFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)

	_, err = flow.CreateLabelDesign(context.Background(), operator.ID, &dto.CreateLabelDesignRequest{
		Name:            "Bad kind",
		LabelConfigUUID: config.UUID.String(),
		Elements: []dto.LabelElementDTO{
			{ElementID: "e1", Kind: "hologram", Text: "x", Visible: true, FontSize: 4},
		},
	}, testMetadata())
	require.Error(t, err)
	assert.True(t, IsElementKindInvalid(err))
}

func TestCreateLabelDesignIconElementRequiresAsset(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newDesignFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)

	_, err = flow.CreateLabelDesign(context.Background(), operator.ID, &dto.CreateLabelDesignRequest{
		Name:            "Icon without asset",
		LabelConfigUUID: config.UUID.String(),
		Elements: []dto.LabelElementDTO{
			{ElementID: "logo", Kind: "icon", Visible: true, FontSize: 1},
		},
	}, testMetadata())
	require.Error(t, err)
	assert.True(t, IsElementIconMissing(err))
}

func TestUpdateLabelDesignRequiresField(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newDesignFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)
	design, err := fixtures.CreateTestLabelDesign(operator.ID, config.ID)
	require.NoError(t, err)

	_, err = flow.UpdateLabelDesign(context.Background(), operator.ID, design.UUID.String(), &dto.UpdateLabelDesignRequest{}, testMetadata())
	require.Error(t, err)
	assert.True(t, IsDesignUpdateRequired(err))
}

func TestUpdateLabelDesignReplacesElements(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newDesignFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)
	design, err := fixtures.CreateTestLabelDesign(operator.ID, config.ID)
	require.NoError(t, err)

	updated, err := flow.UpdateLabelDesign(context.Background(), operator.ID, design.UUID.String(), &dto.UpdateLabelDesignRequest{
		Name: utils.ToPtr("Trimmed"),
		Elements: []dto.LabelElementDTO{
			{ElementID: "only_name", Kind: "name", Text: "[NAME]", X: 20, Y: 20, FontSize: 6, Bold: true, Visible: true},
			{ElementID: "only_phone", Kind: "phone", Text: "[PHONE]", X: 20, Y: 90, FontSize: 3, Visible: true},
		},
	}, testMetadata())
	require.NoError(t, err)

	assert.Equal(t, "Trimmed", updated.Name)
	require.Len(t, updated.Elements, 2)
	assert.Equal(t, "only_name", updated.Elements[0].ElementID)
	assert.Equal(t, "only_phone", updated.Elements[1].ElementID)
}

func TestDeleteLabelDesign(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newDesignFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)
	design, err := fixtures.CreateTestLabelDesign(operator.ID, config.ID)
	require.NoError(t, err)

	require.NoError(t, flow.DeleteLabelDesign(context.Background(), operator.ID, design.UUID.String(), testMetadata()))

	_, err = flow.GetLabelDesign(context.Background(), operator.ID, design.UUID.String())
	require.Error(t, err)
	assert.True(t, IsLabelDesignNotFound(err))
}

func TestListLabelDesignsPagination(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newDesignFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := fixtures.CreateTestLabelDesign(operator.ID, config.ID)
		require.NoError(t, err)
	}

	first, err := flow.ListLabelDesigns(context.Background(), operator.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, first.Designs, 2)
	assert.Equal(t, int64(3), first.Total)

	second, err := flow.ListLabelDesigns(context.Background(), operator.ID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, second.Designs, 1)

	_, err = flow.ListLabelDesigns(context.Background(), operator.ID, 0, 2)
	require.Error(t, err)
	assert.True(t, IsInvalidPage(err))
}

func TestGetLabelDesignOwnership(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newDesignFlowForTest(tdb)

	owner, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	other, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	config, err := fixtures.CreateTestLabelConfig(owner.ID)
	require.NoError(t, err)
	design, err := fixtures.CreateTestLabelDesign(owner.ID, config.ID)
	require.NoError(t, err)

	_, err = flow.GetLabelDesign(context.Background(), other.ID, design.UUID.String())
	require.Error(t, err)
	assert.True(t, IsLabelDesignAccessDenied(err))
}
