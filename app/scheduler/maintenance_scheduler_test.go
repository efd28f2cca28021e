// Package scheduler
package scheduler

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	testhelpers "github.com/nmzabith/thermal-printer-label-app-sub001/testing"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
)

func setupSchedulerTest(t *testing.T) (*testhelpers.TestDB, *testhelpers.TestFixtures, *MaintenanceScheduler) {
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

	s := NewMaintenanceScheduler(
		repository.NewOperatorSessionRepository(tdb.DB),
		repository.NewPrintJobRepository(tdb.DB),
		testLogger(t),
		time.Minute,
		10*time.Minute,
	)

	return tdb, testhelpers.NewTestFixtures(tdb), s
}

func testLogger(t *testing.T) *log.Logger {
	t.Helper()
	return log.New(io.Discard, "", 0)
}

func TestMaintenanceFailsStalePendingJobs(t *testing.T) {
	tdb, fixtures, s := setupSchedulerTest(t)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	labelConfig, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)
	design, err := fixtures.CreateTestLabelDesign(operator.ID, labelConfig.ID)
	require.NoError(t, err)

	stale, err := fixtures.CreateTestPrintJob(operator.ID, design.ID, models.PrintJobStatusPending)
	require.NoError(t, err)
	fresh, err := fixtures.CreateTestPrintJob(operator.ID, design.ID, models.PrintJobStatusPending)
	require.NoError(t, err)

	// Age one job past the abandonment cutoff
	require.NoError(t, tdb.DB.Model(&models.PrintJob{}).
		Where("id = ?", stale.ID).
		Update("created_at", time.Now().UTC().Add(-time.Hour)).Error)

	s.runOnce(context.Background())

	var staleRow models.PrintJob
	require.NoError(t, tdb.DB.First(&staleRow, stale.ID).Error)
	assert.Equal(t, models.PrintJobStatusFailed, staleRow.Status)
	require.NotNil(t, staleRow.Error)
	assert.Equal(t, "abandoned before dispatch", *staleRow.Error)

	var freshRow models.PrintJob
	require.NoError(t, tdb.DB.First(&freshRow, fresh.ID).Error)
	assert.Equal(t, models.PrintJobStatusPending, freshRow.Status)
}

func TestMaintenanceCleansExpiredSessions(t *testing.T) {
	tdb, fixtures, s := setupSchedulerTest(t)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	expired, err := fixtures.CreateTestSession(operator.ID, "expired-token", "expired-refresh", time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	active, err := fixtures.CreateTestSession(operator.ID, "active-token", "active-refresh", time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)

	s.runOnce(context.Background())

	var expiredRow models.OperatorSession
	require.NoError(t, tdb.DB.First(&expiredRow, expired.ID).Error)
	assert.False(t, utils.IsTrue(expiredRow.IsActive))

	var activeRow models.OperatorSession
	require.NoError(t, tdb.DB.First(&activeRow, active.ID).Error)
	assert.True(t, activeRow.IsValid())
}
