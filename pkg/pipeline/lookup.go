package pipeline

import (
	"context"
	"errors"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/stockchange/pkg/models"
	"github.com/stockchange/pkg/quotes"
	"github.com/stockchange/pkg/timestamps"
)

// NewLookupJob resolves tasks into results with at most workers lookups in
// flight. Results leave in the order tasks arrived. Values other than tasks
// are forwarded in place.
func NewLookupJob(provider quotes.Provider, workers int, logger log.Logger) models.Job {
	if workers < 1 {
		workers = 1
	}
	return func(ctx context.Context, in, out chan interface{}) {
		pending := make(chan chan interface{}, workers)
		sem := make(chan struct{}, workers)

		go func() {
			defer close(pending)
			for val := range in {
				slot := make(chan interface{}, 1)
				task, ok := val.(models.Task)
				if !ok {
					slot <- val
					pending <- slot
					continue
				}

				sem <- struct{}{}
				pending <- slot
				go func(task models.Task) {
					defer func() { <-sem }()
					slot <- lookup(ctx, provider, task, logger)
				}(task)
			}
		}()

		for slot := range pending {
			send(ctx, out, <-slot)
		}
	}
}

func lookup(ctx context.Context, provider quotes.Provider, task models.Task, logger log.Logger) models.Result {
	res := models.Result{
		Timestamp: task.Timestamp,
		Ticker:    task.Ticker,
	}

	date := timestamps.Date(task.Timestamp)
	day, err := timestamps.Day(date)
	if err != nil {
		_ = level.Warn(logger).Log("msg", "invalid timestamp", "timestamp", task.Timestamp, "ticker", task.Ticker, "err", err)
		return res
	}

	bars, err := provider.History(ctx, task.Ticker, day)
	if err != nil {
		_ = level.Error(logger).Log("msg", "error fetching data", "timestamp", task.Timestamp, "ticker", task.Ticker, "err", err)
		return res
	}

	change, err := quotes.Change(bars)
	switch {
	case errors.Is(err, quotes.ErrZeroOpen):
		_ = level.Warn(logger).Log("msg", "zero open price", "ticker", task.Ticker, "date", date, "bars", len(bars))
		return res
	case err != nil:
		_ = level.Warn(logger).Log("msg", "no data available", "ticker", task.Ticker, "date", date, "err", err)
		return res
	}
	res.Change = &change
	return res
}
