package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockchange/pkg/models"
	"github.com/stockchange/pkg/quotes"
)

const dateLayout = "2006-01-02"

// run feeds values into job and collects everything it emits.
func run(job models.Job, values ...interface{}) []interface{} {
	in := make(chan interface{})
	out := make(chan interface{})
	go func() {
		defer close(in)
		for _, v := range values {
			in <- v
		}
	}()
	go func() {
		defer close(out)
		job(context.Background(), in, out)
	}()

	var got []interface{}
	for v := range out {
		got = append(got, v)
	}
	return got
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

type fakeProvider struct {
	mu       sync.Mutex
	inFlight int32
	peak     int32
	delay    func(ticker string, day time.Time) time.Duration
	bars     map[string][]quotes.Bar
	err      map[string]error
}

func (f *fakeProvider) History(ctx context.Context, ticker string, day time.Time) ([]quotes.Bar, error) {
	n := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)

	f.mu.Lock()
	if n > f.peak {
		f.peak = n
	}
	f.mu.Unlock()

	if f.delay != nil {
		time.Sleep(f.delay(ticker, day))
	}

	key := ticker + " " + day.Format(dateLayout)
	if err, ok := f.err[key]; ok {
		return nil, err
	}
	return f.bars[key], nil
}

func TestReadJob(t *testing.T) {
	amzn := writeFile(t, "amzn.txt", "\ufeff2024-01-02 10:00:00.123\n2024-01-03 11:00:00\n")
	btc := writeFile(t, "btc.txt", "2024-01-06 00:00:00\n")
	googl := writeFile(t, "googl.txt", "")

	got := run(NewReadJob([]Source{
		{Ticker: Amazon, Path: amzn},
		{Ticker: Bitcoin, Path: btc},
		{Ticker: Google, Path: googl},
	}, log.NewNopLogger()))

	want := []interface{}{
		models.Task{Index: 0, Timestamp: "2024-01-02 10:00:00", Ticker: Amazon},
		models.Task{Index: 1, Timestamp: "2024-01-03 11:00:00", Ticker: Amazon},
		models.Task{Index: 2, Timestamp: "2024-01-06 00:00:00", Ticker: Bitcoin},
	}
	assert.Equal(t, want, got)
}

func TestReadJobMissingFile(t *testing.T) {
	amzn := writeFile(t, "amzn.txt", "2024-01-02 10:00:00\n")

	got := run(NewReadJob([]Source{
		{Ticker: Amazon, Path: amzn},
		{Ticker: Google, Path: filepath.Join(t.TempDir(), "missing.txt")},
	}, log.NewNopLogger()))

	require.Len(t, got, 1, "no task is emitted when any file fails")
	err, ok := got[0].(error)
	require.True(t, ok)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLookupJobOrderAndBound(t *testing.T) {
	provider := &fakeProvider{
		// later tasks finish first
		delay: func(ticker string, day time.Time) time.Duration {
			return time.Duration(31-day.Day()) * time.Millisecond
		},
		bars: map[string][]quotes.Bar{},
	}

	var tasks []interface{}
	for i := 0; i < 30; i++ {
		day := time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC)
		provider.bars[Amazon+" "+day.Format(dateLayout)] = []quotes.Bar{{Open: 100, Close: 100 + float64(i)}}
		tasks = append(tasks, models.Task{Index: i, Timestamp: day.Format(dateLayout) + " 10:00:00", Ticker: Amazon})
	}

	got := run(NewLookupJob(provider, 4, log.NewNopLogger()), tasks...)
	require.Len(t, got, len(tasks))

	for i, v := range got {
		res, ok := v.(models.Result)
		require.True(t, ok)
		assert.Equal(t, tasks[i].(models.Task).Timestamp, res.Timestamp)
		require.NotNil(t, res.Change)
		assert.True(t, decimal.NewFromInt(int64(i)).Equal(*res.Change), "row %d: %s", i, res.Change)
	}
	assert.LessOrEqual(t, provider.peak, int32(4))
	assert.Greater(t, provider.peak, int32(1))
}

func TestLookupJobMissing(t *testing.T) {
	provider := &fakeProvider{
		bars: map[string][]quotes.Bar{
			Bitcoin + " 2024-01-02": {{Open: 40000, Close: 42000}},
		},
		err: map[string]error{
			Google + " 2024-01-02": errors.New("rate limited"),
		},
	}

	got := run(NewLookupJob(provider, 2, log.NewNopLogger()),
		models.Task{Index: 0, Timestamp: "2024-01-02 10:00:00", Ticker: Bitcoin},
		models.Task{Index: 1, Timestamp: "2024-01-02 10:00:00", Ticker: Google},
		models.Task{Index: 2, Timestamp: "2024-01-06 10:00:00", Ticker: Amazon},
		models.Task{Index: 3, Timestamp: "not a date", Ticker: Amazon},
		models.Task{Index: 4, Timestamp: "", Ticker: Amazon},
	)
	require.Len(t, got, 5)

	first := got[0].(models.Result)
	require.NotNil(t, first.Change)
	assert.True(t, decimal.NewFromInt(5).Equal(*first.Change))

	for _, v := range got[1:] {
		assert.Nil(t, v.(models.Result).Change)
	}
}

func TestLookupJobForwardsErrors(t *testing.T) {
	boom := errors.New("boom")
	got := run(NewLookupJob(&fakeProvider{}, 3, log.NewNopLogger()), boom)
	assert.Equal(t, []interface{}{boom}, got)
}

func TestWriteJob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	change := decimal.RequireFromString("2.5")

	got := run(NewWriteJob(path, 2, log.NewNopLogger()),
		models.Result{Timestamp: "2024-01-02 10:00:00", Ticker: Amazon, Change: &change},
		models.Result{Timestamp: "2024-01-06 10:00:00", Ticker: Google},
	)
	assert.Equal(t, []interface{}{models.Summary{Destination: path, Rows: 2, Missing: 1}}, got)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"timestamp", "stock", "percentage_change"},
		{"2024-01-02 10:00:00", Amazon, "2.50"},
		{"2024-01-06 10:00:00", Google, ""},
	}, records)
}

func TestWriteJobEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	got := run(NewWriteJob(path, 6, log.NewNopLogger()))
	assert.Equal(t, []interface{}{models.Summary{Destination: path}}, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "timestamp,stock,percentage_change\n", string(data))
}

func TestWriteJobUpstreamError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	boom := errors.New("boom")
	change := decimal.NewFromInt(1)

	got := run(NewWriteJob(path, 6, log.NewNopLogger()),
		models.Result{Timestamp: "2024-01-02 10:00:00", Ticker: Amazon, Change: &change},
		boom,
	)
	assert.Equal(t, []interface{}{boom}, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "neither the report nor a temporary file is left behind")
}

func TestWriteJobCanceledKeepsPreviousReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("previous,good,report\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan interface{})
	out := make(chan interface{}, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewWriteJob(path, 6, log.NewNopLogger())(ctx, in, out)
	}()

	change := decimal.NewFromInt(1)
	in <- models.Result{Timestamp: "2024-01-02 10:00:00", Ticker: Amazon, Change: &change}
	cancel()
	close(in)
	<-done

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous,good,report\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLookupJobISODates(t *testing.T) {
	provider := &fakeProvider{
		bars: map[string][]quotes.Bar{
			Amazon + " 2024-01-02": {{Open: 100, Close: 110}},
		},
	}

	got := run(NewLookupJob(provider, 2, log.NewNopLogger()),
		models.Task{Index: 0, Timestamp: "2024-01-02 10:00:00", Ticker: Amazon},
		models.Task{Index: 1, Timestamp: "2024-01-02T10:00:00", Ticker: Amazon},
		models.Task{Index: 2, Timestamp: "2024-01-02T10:00:00Z", Ticker: Amazon},
		models.Task{Index: 3, Timestamp: "2024-01-02", Ticker: Amazon},
	)
	require.Len(t, got, 4)

	for i, v := range got {
		res := v.(models.Result)
		require.NotNil(t, res.Change, "row %d", i)
		assert.True(t, decimal.NewFromInt(10).Equal(*res.Change), "row %d: %s", i, res.Change)
	}
}

func TestLookupJobZeroOpen(t *testing.T) {
	provider := &fakeProvider{
		bars: map[string][]quotes.Bar{
			Amazon + " 2024-01-02": {{Open: 0, Close: 110}},
		},
	}

	got := run(NewLookupJob(provider, 1, log.NewNopLogger()),
		models.Task{Index: 0, Timestamp: "2024-01-02 10:00:00", Ticker: Amazon},
	)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].(models.Result).Change)
}
