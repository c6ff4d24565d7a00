package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"github.com/izaplantas/floricultura-api/internal/domain/enum"
	infraRepo "github.com/izaplantas/floricultura-api/internal/infrastructure/repository"
	"github.com/izaplantas/floricultura-api/internal/infrastructure/storage"
	"github.com/izaplantas/floricultura-api/pkg/apperror"
	"github.com/izaplantas/floricultura-api/pkg/eventbus"
)

func newFinanceService(t *testing.T) *FinanceService {
	t.Helper()
	store := storage.New(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })
	return NewFinanceService(infraRepo.NewFinanceRepository(store, eventbus.New()))
}

func TestCreateEntryStoresCents(t *testing.T) {
	svc := newFinanceService(t)

	entry, err := svc.CreateEntry(context.Background(), &CreateEntryInput{
		Type:        "expense",
		Description: "Compra de substrato",
		Amount:      89.90,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(8990), entry.Amount)
	assert.Equal(t, enum.EntryTypeExpense, entry.Type)
	assert.Equal(t, "Geral", entry.Category)
	assert.Equal(t, enum.EntrySettlementPaid, entry.Status)
	assert.NotEmpty(t, entry.ID)
}

func TestCreateEntryValidation(t *testing.T) {
	svc := newFinanceService(t)
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, &CreateEntryInput{Type: "transfer", Amount: 10})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.CreateEntry(ctx, &CreateEntryInput{Type: "income", Amount: 0})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.CreateEntry(ctx, &CreateEntryInput{Type: "income", Amount: 10, Status: "overdue"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSummaryBalancesIncomeAgainstExpense(t *testing.T) {
	svc := newFinanceService(t)
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, &CreateEntryInput{Type: "income", Description: "Venda", Amount: 150.00})
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, &CreateEntryInput{Type: "income", Description: "Venda", Amount: 32.90, Status: "pending"})
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, &CreateEntryInput{Type: "expense", Description: "Frete", Amount: 40.00})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	// pending entries count the same as paid ones
	assert.InDelta(t, 182.90, summary.Income, 0.001)
	assert.InDelta(t, 40.00, summary.Expense, 0.001)
	assert.InDelta(t, 142.90, summary.Balance, 0.001)
}

func TestListEntriesNewestDateFirst(t *testing.T) {
	svc := newFinanceService(t)
	ctx := context.Background()

	older := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateEntry(ctx, &CreateEntryInput{Type: "income", Description: "antiga", Amount: 10, Date: &older})
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, &CreateEntryInput{Type: "income", Description: "recente", Amount: 10, Date: &newer})
	require.NoError(t, err)

	result, err := svc.ListEntries(ctx, &FinanceFilter{})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "recente", result.Items[0].Description)
}

func TestListEntriesFiltersByType(t *testing.T) {
	svc := newFinanceService(t)
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, &CreateEntryInput{Type: "income", Description: "Venda", Amount: 10})
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, &CreateEntryInput{Type: "expense", Description: "Frete", Amount: 5})
	require.NoError(t, err)

	result, err := svc.ListEntries(ctx, &FinanceFilter{Type: "expense"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Frete", result.Items[0].Description)
}

func TestDeleteEntryIsQuiet(t *testing.T) {
	svc := newFinanceService(t)
	ctx := context.Background()

	entry, err := svc.CreateEntry(ctx, &CreateEntryInput{Type: "income", Description: "Venda", Amount: 10})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(ctx, entry.ID))
	require.NoError(t, svc.DeleteEntry(ctx, entry.ID))

	result, err := svc.ListEntries(ctx, &FinanceFilter{})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}
