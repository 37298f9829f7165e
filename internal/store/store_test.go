package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenbox/royaltyflow/pkg/errors"
	"github.com/greenbox/royaltyflow/pkg/payout"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveRunAndPayments(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	payments := []payout.Payment{
		{WorkTitle: "Home", PartyName: "Alice", Role: "artist", RoyaltyType: "streaming", Percentage: 60, RevenueTotal: 1000, AmountToPay: 600},
		{WorkTitle: "Home", PartyName: "Bob", Role: "producer", RoyaltyType: "streaming", Percentage: 40, RevenueTotal: 1000, AmountToPay: 400},
	}

	run, err := s.SaveRun(ctx, "q1.csv", 2, payments)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 2, run.PaymentCount)
	assert.InDelta(t, 1000.0, run.GrandTotal, 1e-9)

	got, err := s.Payments(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, payments, got)
}

func TestRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := []payout.Payment{{WorkTitle: "Home", PartyName: "Alice", Role: "artist", RoyaltyType: "streaming", Percentage: 100, RevenueTotal: 10, AmountToPay: 10}}

	first, err := s.SaveRun(ctx, "jan.csv", 1, p)
	require.NoError(t, err)
	second, err := s.SaveRun(ctx, "feb.csv", 1, p)
	require.NoError(t, err)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// created_at has sub-second precision, so ordering can flip only if the
	// two saves landed on the same timestamp.
	if !runs[0].CreatedAt.Equal(runs[1].CreatedAt) {
		assert.Equal(t, second.ID, runs[0].ID)
		assert.Equal(t, first.ID, runs[1].ID)
	}
	assert.Equal(t, 1, runs[0].PaymentCount)
}

func TestPaymentsUnknownRun(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Payments(context.Background(), "no-such-run")
	assert.True(t, errors.IsNotFound(err))
}

func TestSaveRunEmptyPayments(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run, err := s.SaveRun(ctx, "empty.csv", 0, nil)
	require.NoError(t, err)
	assert.Zero(t, run.PaymentCount)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Zero(t, runs[0].PaymentCount)
	assert.Zero(t, runs[0].GrandTotal)
}
