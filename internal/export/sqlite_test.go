package export

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSink(t *testing.T) *SQLSink {
	t.Helper()
	sink, err := NewSQLiteSink(filepath.Join(t.TempDir(), "billing.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sink.Close() })
	return sink
}

func TestSQLiteSinkWritesFullRun(t *testing.T) {
	ds := testDataset(t, 100, 20)
	sink := newTestSink(t)
	ctx := context.Background()

	require.NoError(t, sink.RegisterRun(ctx, ds.RunID, len(ds.Claims), len(ds.Providers)))
	require.NoError(t, sink.WriteClaims(ctx, ds.RunID, ds.Claims))
	require.NoError(t, sink.WriteProviders(ctx, ds.RunID, ds.Providers))

	var claimCount, providerCount int
	require.NoError(t, sink.db.QueryRow(
		"SELECT COUNT(*) FROM billing_claims WHERE run_id = ?", ds.RunID,
	).Scan(&claimCount))
	require.NoError(t, sink.db.QueryRow(
		"SELECT COUNT(*) FROM provider_reference WHERE run_id = ?", ds.RunID,
	).Scan(&providerCount))

	assert.Equal(t, 100, claimCount)
	assert.Equal(t, 20, providerCount)
}

func TestSQLiteSinkRoundTripsClaimRow(t *testing.T) {
	ds := testDataset(t, 10, 5)
	sink := newTestSink(t)
	ctx := context.Background()

	require.NoError(t, sink.RegisterRun(ctx, ds.RunID, len(ds.Claims), len(ds.Providers)))
	require.NoError(t, sink.WriteClaims(ctx, ds.RunID, ds.Claims))

	want := ds.Claims[0]
	var (
		patientID   string
		serviceDate string
		billed      float64
		paymentRate float64
	)
	require.NoError(t, sink.db.QueryRow(`
		SELECT patient_id, service_date, total_billed_amount, payment_rate
		FROM billing_claims WHERE run_id = ? AND claim_id = ?`,
		ds.RunID, want.ClaimID,
	).Scan(&patientID, &serviceDate, &billed, &paymentRate))

	assert.Equal(t, want.PatientID, patientID)
	assert.Equal(t, want.ServiceDate.Format("2006-01-02"), serviceDate)
	assert.Equal(t, want.TotalBilledAmount, billed)
	assert.Equal(t, want.PaymentRate, paymentRate)
}

func TestSQLiteSinkRejectsDuplicateRun(t *testing.T) {
	sink := newTestSink(t)
	ctx := context.Background()

	require.NoError(t, sink.RegisterRun(ctx, "run-1", 10, 2))
	err := sink.RegisterRun(ctx, "run-1", 10, 2)
	assert.Error(t, err)
}

func TestSQLiteSinkIsolatesRuns(t *testing.T) {
	a := testDataset(t, 25, 5)
	sink := newTestSink(t)
	ctx := context.Background()

	require.NoError(t, sink.RegisterRun(ctx, a.RunID, len(a.Claims), len(a.Providers)))
	require.NoError(t, sink.WriteClaims(ctx, a.RunID, a.Claims))

	// Same claim IDs under a different run ID do not collide.
	require.NoError(t, sink.RegisterRun(ctx, "second-run", len(a.Claims), 0))
	require.NoError(t, sink.WriteClaims(ctx, "second-run", a.Claims))

	var total int
	require.NoError(t, sink.db.QueryRow("SELECT COUNT(*) FROM billing_claims").Scan(&total))
	assert.Equal(t, 50, total)
}
