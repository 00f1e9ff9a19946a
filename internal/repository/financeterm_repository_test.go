package repository

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiafi/finance-terms/internal/domain"
)

// Integration tests against a real Postgres, pointed at by TEST_DATABASE_URL.
// Skipped when the variable is unset.
func setupTestRepo(t *testing.T) FinanceTermRepository {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping repository integration tests")
	}

	db, err := sqlx.Connect("postgres", url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewFinanceTermRepository(db)

	ctx := context.Background()
	require.NoError(t, repo.EnsureSchema(ctx))
	// EnsureSchema must be a no-op on an existing table
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.Clear(ctx))

	return repo
}

func sampleTerm(downpayment float64, status string) *domain.FinanceTerm {
	return &domain.FinanceTerm{
		InsurancePolicies: domain.PolicyList{
			{Premium: 100, TaxFee: 10},
			{Premium: 150, TaxFee: 15},
		},
		Downpayment:    downpayment,
		DueDate:        "2024-07-31",
		AmountFinanced: 200,
		Status:         status,
	}
}

func TestFinanceTermRepository_CreateAndGet(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	term := sampleTerm(75, domain.StatusPending)
	require.NoError(t, repo.Create(ctx, term))
	assert.NotZero(t, term.ID)

	got, err := repo.GetByID(ctx, term.ID)
	require.NoError(t, err)
	assert.Equal(t, term.ID, got.ID)
	assert.Equal(t, term.InsurancePolicies, got.InsurancePolicies)
	assert.Equal(t, 75.0, got.Downpayment)
	assert.Equal(t, "2024-07-31", got.DueDate)
	assert.Equal(t, 200.0, got.AmountFinanced)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestFinanceTermRepository_IDsAreUniqueAndIncreasing(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first := sampleTerm(75, domain.StatusPending)
	second := sampleTerm(120, domain.StatusPending)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Greater(t, second.ID, first.ID)
}

func TestFinanceTermRepository_UpdateStatus(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	term := sampleTerm(75, domain.StatusPending)
	require.NoError(t, repo.Create(ctx, term))

	affected, err := repo.UpdateStatus(ctx, term.ID, domain.StatusAgreed)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.GetByID(ctx, term.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAgreed, got.Status)
	// Everything else must be untouched
	assert.Equal(t, term.InsurancePolicies, got.InsurancePolicies)
	assert.Equal(t, term.Downpayment, got.Downpayment)

	// Missing id affects zero rows
	affected, err = repo.UpdateStatus(ctx, term.ID+1000, domain.StatusAgreed)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestFinanceTermRepository_List(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	terms := []*domain.FinanceTerm{
		sampleTerm(50, domain.StatusPending),
		sampleTerm(150, domain.StatusPending),
		sampleTerm(250, domain.StatusAgreed),
	}
	for _, term := range terms {
		require.NoError(t, repo.Create(ctx, term))
	}

	t.Run("no filter returns everything in insertion order", func(t *testing.T) {
		got, err := repo.List(ctx, domain.ListFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, terms[0].ID, got[0].ID)
		assert.Equal(t, terms[2].ID, got[2].ID)
	})

	t.Run("downpayment greater than", func(t *testing.T) {
		got, err := repo.List(ctx, domain.ListFilter{
			Downpayment: &domain.DownpaymentFilter{Op: ">", Value: 100},
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, term := range got {
			assert.Greater(t, term.Downpayment, 100.0)
		}
	})

	t.Run("status equality", func(t *testing.T) {
		got, err := repo.List(ctx, domain.ListFilter{
			Status: strPtr(domain.StatusPending),
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("conjunctive filters", func(t *testing.T) {
		got, err := repo.List(ctx, domain.ListFilter{
			Downpayment: &domain.DownpaymentFilter{Op: ">", Value: 100},
			Status:      strPtr(domain.StatusPending),
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 150.0, got[0].Downpayment)
	})

	t.Run("descending sort", func(t *testing.T) {
		got, err := repo.List(ctx, domain.ListFilter{
			Sort: &domain.SortSpec{Field: "downpayment", Desc: true},
		})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, 250.0, got[0].Downpayment)
		assert.Equal(t, 50.0, got[2].Downpayment)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		got, err := repo.List(ctx, domain.ListFilter{
			Downpayment: &domain.DownpaymentFilter{Op: ">", Value: 10000},
		})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unlisted sort field is rejected", func(t *testing.T) {
		_, err := repo.List(ctx, domain.ListFilter{
			Sort: &domain.SortSpec{Field: "pg_sleep(1)"},
		})
		assert.Error(t, err)
	})
}

func TestFinanceTermRepository_CountByStatusAndClear(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleTerm(75, domain.StatusPending)))
	require.NoError(t, repo.Create(ctx, sampleTerm(80, domain.StatusPending)))
	require.NoError(t, repo.Create(ctx, sampleTerm(90, domain.StatusAgreed)))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[domain.StatusPending])
	assert.Equal(t, int64(1), counts[domain.StatusAgreed])

	require.NoError(t, repo.Clear(ctx))

	counts, err = repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func strPtr(s string) *string {
	return &s
}
