package repositories

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/dcf-builder/internal/database"
)

func fptr(v float64) *float64 { return &v }

func testRepo(t *testing.T) *RunRepository {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())
	return NewRunRepository(db.Conn(), zerolog.Nop())
}

func TestRecordAndRecent(t *testing.T) {
	repo := testRepo(t)

	id, err := repo.Record(&ModelRun{
		Ticker:     "AAPL",
		Scenario:   "Base",
		OutputPath: "DCF_AAPL_20260830.xlsx",
		Price:      fptr(150.0),
		WACC:       fptr(0.095),
		DCFValue:   fptr(162.3),
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	runs, err := repo.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "AAPL", runs[0].Ticker)
	assert.Equal(t, "Base", runs[0].Scenario)
	require.NotNil(t, runs[0].Price)
	assert.Equal(t, 150.0, *runs[0].Price)
	assert.False(t, runs[0].CreatedAt.IsZero())
}

func TestRecordNilMetrics(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.Record(&ModelRun{Ticker: "MSFT", Scenario: "Bear", OutputPath: "out.xlsx"})
	require.NoError(t, err)

	runs, err := repo.Recent(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Nil(t, runs[0].Price)
	assert.Nil(t, runs[0].WACC)
	assert.Nil(t, runs[0].DCFValue)
}

func TestRecentLimit(t *testing.T) {
	repo := testRepo(t)

	for i := 0; i < 5; i++ {
		_, err := repo.Record(&ModelRun{Ticker: "AAPL", Scenario: "Base", OutputPath: "out.xlsx"})
		require.NoError(t, err)
	}

	runs, err := repo.Recent(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)

	// Zero limit falls back to a sane default.
	runs, err = repo.Recent(0)
	require.NoError(t, err)
	assert.Len(t, runs, 5)
}

func TestByTicker(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.Record(&ModelRun{Ticker: "AAPL", Scenario: "Base", OutputPath: "a.xlsx"})
	require.NoError(t, err)
	_, err = repo.Record(&ModelRun{Ticker: "MSFT", Scenario: "Bull", OutputPath: "b.xlsx"})
	require.NoError(t, err)

	runs, err := repo.ByTicker("MSFT", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "b.xlsx", runs[0].OutputPath)

	runs, err = repo.ByTicker("GOOG", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
