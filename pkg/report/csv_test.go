package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockchange/pkg/models"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriterHeaderOnly(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := Create(path, 6)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, [][]string{Header}, readAll(t, path))
	assert.Equal(t, 0, w.Rows())
}

func TestWriterRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := Create(path, 4)
	require.NoError(t, err)

	up := decimal.RequireFromString("1.234567")
	down := decimal.NewFromInt(-3)
	require.NoError(t, w.Write(models.Result{Timestamp: "2024-01-02 10:00:00", Ticker: "AMZN", Change: &up}))
	require.NoError(t, w.Write(models.Result{Timestamp: "2024-01-06 10:00:00", Ticker: "GOOGL"}))
	require.NoError(t, w.Write(models.Result{Timestamp: "2024-01-03 11:00:00", Ticker: "BTC-USD", Change: &down}))
	require.NoError(t, w.Close())

	want := [][]string{
		Header,
		{"2024-01-02 10:00:00", "AMZN", "1.2346"},
		{"2024-01-06 10:00:00", "GOOGL", ""},
		{"2024-01-03 11:00:00", "BTC-USD", "-3.0000"},
	}
	assert.Equal(t, want, readAll(t, path))
	assert.Equal(t, 3, w.Rows())
	assert.Equal(t, 1, w.Missing())
}

func TestCreateTruncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale,data\n1,2\n"), 0644))

	w, err := Create(path, 6)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, [][]string{Header}, readAll(t, path))
}

func TestCreateBadPath(t *testing.T) {
	t.Parallel()

	_, err := Create(filepath.Join(t.TempDir(), "missing", "out.csv"), 6)
	assert.Error(t, err)
}

func TestAbortKeepsDestination(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("previous,good,report\n"), 0644))

	w, err := Create(path, 6)
	require.NoError(t, err)
	change := decimal.NewFromInt(1)
	require.NoError(t, w.Write(models.Result{Timestamp: "2024-01-02 10:00:00", Ticker: "AMZN", Change: &change}))
	w.Abort()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous,good,report\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file removed")
}

func TestCloseReplacesDestination(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	w, err := Create(path, 6)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "destination appears only on Close")

	require.NoError(t, w.Close())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
