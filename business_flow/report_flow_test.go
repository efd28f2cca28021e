// Package businessflow contains the business logic for the application.
package businessflow

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	testhelpers "github.com/nmzabith/thermal-printer-label-app-sub001/testing"
)

func newReportFlowForTest(tdb *testhelpers.TestDB) ReportFlow {
	return NewReportFlow(
		repository.NewPrintJobRepository(tdb.DB),
		repository.NewAuditLogRepository(tdb.DB),
	)
}

func TestExportPrintJobs(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newReportFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	labelConfig, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)
	design, err := fixtures.CreateTestLabelDesign(operator.ID, labelConfig.ID)
	require.NoError(t, err)

	sent, err := fixtures.CreateTestPrintJob(operator.ID, design.ID, models.PrintJobStatusSent)
	require.NoError(t, err)
	_, err = fixtures.CreateTestPrintJob(operator.ID, design.ID, models.PrintJobStatusFailed)
	require.NoError(t, err)

	filename, content, err := flow.ExportPrintJobs(context.Background(), operator.ID, testMetadata())
	require.NoError(t, err)

	assert.Regexp(t, `^print_jobs_\d{4}-\d{2}-\d{2}\.xlsx$`, filename)
	require.NotEmpty(t, content)

	xl, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer func() { _ = xl.Close() }()

	rows, err := xl.GetRows("Print Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header plus two jobs

	assert.Equal(t, "job_uuid", rows[0][0])
	uuids := []string{rows[1][0], rows[2][0]}
	assert.Contains(t, uuids, sent.UUID.String())
}

func TestExportPrintJobsEmptyHistory(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newReportFlowForTest(tdb)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	filename, content, err := flow.ExportPrintJobs(context.Background(), operator.ID, testMetadata())
	require.NoError(t, err)
	assert.NotEmpty(t, filename)

	xl, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer func() { _ = xl.Close() }()

	rows, err := xl.GetRows("Print Jobs")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}

func TestExportAuditTrail(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	reportFlow := newReportFlowForTest(tdb)
	authFlow := newAuthFlowForTest(t, tdb, true)

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	// A login attempt leaves audit entries to export
	_, err = authFlow.Login(context.Background(), loginRequest(operator.Email), testMetadata())
	require.NoError(t, err)

	filename, content, err := reportFlow.ExportAuditTrail(context.Background(), operator.ID, testMetadata())
	require.NoError(t, err)

	assert.Regexp(t, `^audit_trail_\d{4}-\d{2}-\d{2}\.xlsx$`, filename)

	xl, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer func() { _ = xl.Close() }()

	rows, err := xl.GetRows("Audit Trail")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "action", rows[0][0])
}
