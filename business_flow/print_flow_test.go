// Package businessflow contains the business logic for the application.
package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmzabith/thermal-printer-label-app-sub001/app/dto"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/services"
	"github.com/nmzabith/thermal-printer-label-app-sub001/config"
	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	testhelpers "github.com/nmzabith/thermal-printer-label-app-sub001/testing"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
)

const testDefaultPrinterAddr = "192.168.1.77:9100"

func newPrintFlowForTest(tdb *testhelpers.TestDB, client services.PrinterClient) PrintFlow {
	return NewPrintFlow(
		repository.NewLabelDesignRepository(tdb.DB),
		repository.NewPrintJobRepository(tdb.DB),
		repository.NewIconAssetRepository(tdb.DB),
		repository.NewAuditLogRepository(tdb.DB),
		client,
		config.PrinterConfig{
			DefaultAddr:  testDefaultPrinterAddr,
			DialTimeout:  time.Second,
			WriteTimeout: time.Second,
			Density:      8,
			Direction:    0,
		},
		tdb.DB,
		nil, // no redis in tests
		&config.CacheConfig{Enabled: false},
	)
}

func seedPrintableDesign(t *testing.T, fixtures *testhelpers.TestFixtures) (*models.Operator, *models.LabelDesign) {
	t.Helper()

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)
	labelConfig, err := fixtures.CreateTestLabelConfig(operator.ID)
	require.NoError(t, err)
	design, err := fixtures.CreateTestLabelDesign(operator.ID, labelConfig.ID)
	require.NoError(t, err)

	return operator, design
}

func TestPreviewRendersCommandStream(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newPrintFlowForTest(tdb, &stubPrinterClient{})

	operator, design := seedPrintableDesign(t, fixtures)

	resp, err := flow.Preview(context.Background(), operator.ID, &dto.PrintPreviewRequest{
		DesignUUID: design.UUID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, design.UUID.String(), resp.DesignUUID)
	assert.False(t, resp.Cached)
	assert.Contains(t, resp.Payload, "SIZE 101 mm,152 mm")
	assert.Contains(t, resp.Payload, "GAP 3 mm,0 mm")
	assert.Contains(t, resp.Payload, "CLS")
	assert.Contains(t, resp.Payload, "[TO NAME]")
	assert.Contains(t, resp.Payload, "PRINT 1,1")
}

func TestPreviewCopiesOutOfRange(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newPrintFlowForTest(tdb, &stubPrinterClient{})

	operator, design := seedPrintableDesign(t, fixtures)

	for _, copies := range []int{-1, utils.MaxPrintCopies + 1} {
		_, err := flow.Preview(context.Background(), operator.ID, &dto.PrintPreviewRequest{
			DesignUUID: design.UUID.String(),
			Copies:     copies,
		})
		require.Error(t, err)
		assert.True(t, IsCopiesOutOfRange(err), "copies=%d", copies)
	}
}

func TestPreviewUnknownDesign(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newPrintFlowForTest(tdb, &stubPrinterClient{})

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	_, err = flow.Preview(context.Background(), operator.ID, &dto.PrintPreviewRequest{
		DesignUUID: uuid.NewString(),
	})
	require.Error(t, err)
	assert.True(t, IsLabelDesignNotFound(err))
}

func TestPrintDispatchSuccess(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	client := &stubPrinterClient{}
	flow := newPrintFlowForTest(tdb, client)

	operator, design := seedPrintableDesign(t, fixtures)

	resp, err := flow.Print(context.Background(), operator.ID, &dto.PrintRequest{
		DesignUUID: design.UUID.String(),
		Copies:     2,
	}, testMetadata())
	require.NoError(t, err)

	assert.Equal(t, "sent", resp.Job.Status)
	assert.NotNil(t, resp.Job.SentAt)
	assert.Nil(t, resp.Job.Error)
	assert.Equal(t, testDefaultPrinterAddr, resp.Job.PrinterAddr)
	assert.Equal(t, 2, resp.Job.Copies)
	assert.Equal(t, design.Name, resp.Job.DesignName)

	require.Len(t, client.addrs, 1)
	assert.Equal(t, testDefaultPrinterAddr, client.addrs[0])
	assert.Contains(t, string(client.payloads[0]), "PRINT 1,2")

	stored, err := flow.GetPrintJob(context.Background(), operator.ID, resp.Job.UUID)
	require.NoError(t, err)
	assert.Equal(t, "sent", stored.Status)
}

func TestPrintExplicitPrinterAddr(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	client := &stubPrinterClient{}
	flow := newPrintFlowForTest(tdb, client)

	operator, design := seedPrintableDesign(t, fixtures)

	resp, err := flow.Print(context.Background(), operator.ID, &dto.PrintRequest{
		DesignUUID:  design.UUID.String(),
		PrinterAddr: utils.ToPtr("10.0.0.5:9100"),
		Copies:      1,
	}, testMetadata())
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5:9100", resp.Job.PrinterAddr)
	require.Len(t, client.addrs, 1)
	assert.Equal(t, "10.0.0.5:9100", client.addrs[0])
}

func TestPrintDispatchFailureKeepsJob(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newPrintFlowForTest(tdb, &stubPrinterClient{err: services.ErrPrinterUnreachable})

	operator, design := seedPrintableDesign(t, fixtures)

	// Dispatch failure is not an error: the job row records the outcome
	resp, err := flow.Print(context.Background(), operator.ID, &dto.PrintRequest{
		DesignUUID: design.UUID.String(),
		Copies:     1,
	}, testMetadata())
	require.NoError(t, err)

	assert.Equal(t, "failed", resp.Job.Status)
	require.NotNil(t, resp.Job.Error)
	assert.NotEmpty(t, *resp.Job.Error)
	assert.Nil(t, resp.Job.SentAt)

	stored, err := flow.GetPrintJob(context.Background(), operator.ID, resp.Job.UUID)
	require.NoError(t, err)
	assert.Equal(t, "failed", stored.Status)
	assert.NotNil(t, stored.Error)
}

func TestPrintUnknownDesign(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newPrintFlowForTest(tdb, &stubPrinterClient{})

	operator, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	_, err = flow.Print(context.Background(), operator.ID, &dto.PrintRequest{
		DesignUUID: uuid.NewString(),
		Copies:     1,
	}, testMetadata())
	require.Error(t, err)
	assert.True(t, IsLabelDesignNotFound(err))
}

func TestListPrintJobs(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newPrintFlowForTest(tdb, &stubPrinterClient{})

	operator, design := seedPrintableDesign(t, fixtures)
	for i := 0; i < 3; i++ {
		_, err := fixtures.CreateTestPrintJob(operator.ID, design.ID, models.PrintJobStatusSent)
		require.NoError(t, err)
	}

	first, err := flow.ListPrintJobs(context.Background(), operator.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, first.Jobs, 2)
	assert.Equal(t, int64(3), first.Total)

	second, err := flow.ListPrintJobs(context.Background(), operator.ID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, second.Jobs, 1)

	_, err = flow.ListPrintJobs(context.Background(), operator.ID, 1, 0)
	require.Error(t, err)
	assert.True(t, IsInvalidPageSize(err))
}

func TestGetPrintJobOwnership(t *testing.T) {
	tdb, fixtures := setupFlowDB(t)
	flow := newPrintFlowForTest(tdb, &stubPrinterClient{})

	owner, design := seedPrintableDesign(t, fixtures)
	other, err := fixtures.CreateTestOperator()
	require.NoError(t, err)

	job, err := fixtures.CreateTestPrintJob(owner.ID, design.ID, models.PrintJobStatusSent)
	require.NoError(t, err)

	_, err = flow.GetPrintJob(context.Background(), other.ID, job.UUID.String())
	require.Error(t, err)
	assert.True(t, IsPrintJobNotFound(err))

	found, err := flow.GetPrintJob(context.Background(), owner.ID, job.UUID.String())
	require.NoError(t, err)
	assert.Equal(t, job.UUID.String(), found.UUID)
}
