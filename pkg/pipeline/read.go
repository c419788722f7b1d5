package pipeline

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/stockchange/pkg/models"
	"github.com/stockchange/pkg/timestamps"
)

// NewReadJob reads every source before emitting anything, so a missing file
// fails the run before a single lookup is made. Tasks are numbered in
// emission order.
func NewReadJob(sources []Source, logger log.Logger) models.Job {
	return func(ctx context.Context, in, out chan interface{}) {
		lines := make([][]string, len(sources))
		for i, src := range sources {
			ts, err := timestamps.ReadFile(src.Path)
			if err != nil {
				_ = level.Error(logger).Log("msg", "failed to read file", "ticker", src.Ticker, "path", src.Path, "err", err)
				send(ctx, out, fmt.Errorf("read %s timestamps: %w", src.Ticker, err))
				return
			}
			_ = level.Info(logger).Log("msg", "read timestamps", "ticker", src.Ticker, "path", src.Path, "count", len(ts))
			lines[i] = ts
		}

		index := 0
		for i, src := range sources {
			for _, ts := range lines[i] {
				task := models.Task{
					Index:     index,
					Timestamp: ts,
					Ticker:    src.Ticker,
				}
				if !send(ctx, out, task) {
					return
				}
				index++
			}
		}
	}
}
