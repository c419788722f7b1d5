package pipeline

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/stockchange/pkg/models"
	"github.com/stockchange/pkg/report"
)

// NewWriteJob writes incoming results and emits a models.Summary, or the
// first error seen. The destination is replaced only when the run completes
// without an error and without cancellation; otherwise it is left untouched.
func NewWriteJob(path string, precision int32, logger log.Logger) models.Job {
	return func(ctx context.Context, in, out chan interface{}) {
		var failure error

		w, err := report.Create(path, precision)
		if err != nil {
			failure = fmt.Errorf("create %s: %w", path, err)
		}

		for val := range in {
			switch v := val.(type) {
			case models.Result:
				if failure != nil {
					continue
				}
				if err := w.Write(v); err != nil {
					failure = fmt.Errorf("write %s: %w", path, err)
				}
			case error:
				if failure == nil {
					failure = v
				}
			}
		}

		if failure == nil && ctx.Err() != nil {
			failure = ctx.Err()
		}

		if failure != nil {
			if w != nil {
				w.Abort()
			}
			_ = level.Error(logger).Log("msg", "report discarded", "path", path, "err", failure)
			send(ctx, out, failure)
			return
		}

		if err := w.Close(); err != nil {
			failure = fmt.Errorf("close %s: %w", path, err)
			_ = level.Error(logger).Log("msg", "failed to write report", "path", path, "err", failure)
			send(ctx, out, failure)
			return
		}

		summary := models.Summary{
			Destination: path,
			Rows:        w.Rows(),
			Missing:     w.Missing(),
		}
		_ = level.Info(logger).Log("msg", "report written", "path", path, "rows", summary.Rows, "missing", summary.Missing)
		send(ctx, out, summary)
	}
}
