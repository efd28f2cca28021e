// Package businessflow contains the business logic for the application.
package businessflow

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	testhelpers "github.com/nmzabith/thermal-printer-label-app-sub001/testing"
)

func newIconFlowForTest(t *testing.T, tdb *testhelpers.TestDB) IconFlow {
	t.Helper()

	return NewIconFlow(
		repository.NewIconAssetRepository(tdb.DB),
		repository.NewAuditLogRepository(tdb.DB),
		t.TempDir(),
		tdb.DB,
	)
}

// encodeTestPNG renders a small solid image for upload tests
func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.Black)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadIcon(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newIconFlowForTest(t, tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	data := encodeTestPNG(t, 128, 64)
	resp, err := flow.UploadIcon(context.Background(), operator.ID, "fragile", "fragile.png", data, testMetadata())
	require.NoError(t, err)

	assert.Equal(t, "fragile", resp.Icon.Name)
	assert.Equal(t, "image/png", resp.Icon.MimeType)
	// Longest edge normalizes to 96 dots, aspect ratio preserved
	assert.Equal(t, 96, resp.Icon.WidthDots)
	assert.Equal(t, 48, resp.Icon.HeightDots)

	list, err := flow.ListIcons(context.Background(), operator.ID)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, resp.Icon.UUID, list.Icons[0].UUID)
}

func TestUploadIconNameFromFilename(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newIconFlowForTest(t, tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	resp, err := flow.UploadIcon(context.Background(), operator.ID, "", "warning-triangle.png", encodeTestPNG(t, 32, 32), testMetadata())
	require.NoError(t, err)
	assert.Equal(t, "warning-triangle", resp.Icon.Name)
}

func TestUploadIconRejectsGarbage(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newIconFlowForTest(t, tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	_, err = flow.UploadIcon(context.Background(), operator.ID, "bad", "bad.png", []byte("not an image"), testMetadata())
	require.Error(t, err)
	assert.True(t, IsIconFormatUnsupported(err))
}

func TestUploadIconRejectsEmptyData(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newIconFlowForTest(t, tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	_, err = flow.UploadIcon(context.Background(), operator.ID, "empty", "empty.png", nil, testMetadata())
	require.Error(t, err)
	assert.True(t, IsIconTooLarge(err))
}

func TestDeleteIconRemovesFile(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newIconFlowForTest(t, tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	resp, err := flow.UploadIcon(context.Background(), operator.ID, "temp", "temp.png", encodeTestPNG(t, 16, 16), testMetadata())
	require.NoError(t, err)

	require.NoError(t, flow.DeleteIcon(context.Background(), operator.ID, resp.Icon.UUID, testMetadata()))

	list, err := flow.ListIcons(context.Background(), operator.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestDeleteIconOwnership(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newIconFlowForTest(t, tdb)

	owner, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	other, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	resp, err := flow.UploadIcon(context.Background(), owner.ID, "guarded", "guarded.png", encodeTestPNG(t, 16, 16), testMetadata())
	require.NoError(t, err)

	err = flow.DeleteIcon(context.Background(), other.ID, resp.Icon.UUID, testMetadata())
	require.Error(t, err)
	assert.True(t, IsIconAccessDenied(err))
}

func TestDeleteIconUnknown(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newIconFlowForTest(t, tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	err = flow.DeleteIcon(context.Background(), operator.ID, uuid.NewString(), testMetadata())
	require.Error(t, err)
	assert.True(t, IsIconNotFound(err))
}
