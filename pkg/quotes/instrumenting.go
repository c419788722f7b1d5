package quotes

import (
	"context"
	"strconv"
	"time"

	"github.com/go-kit/kit/metrics"
)

// instrumentingMiddleware wraps Provider and records lookup metrics
type instrumentingMiddleware struct {
	reqCount    metrics.Counter
	reqDuration metrics.Histogram
	next        Provider
}

func (p *instrumentingMiddleware) History(ctx context.Context, ticker string, day time.Time) (bars []Bar, err error) {
	defer func(begin time.Time) {
		labels := []string{
			"ticker", ticker,
			"error", strconv.FormatBool(err != nil),
			"empty", strconv.FormatBool(len(bars) == 0),
		}
		p.reqCount.With(labels...).Add(1)
		p.reqDuration.With(labels...).Observe(time.Since(begin).Seconds())
	}(time.Now())
	return p.next.History(ctx, ticker, day)
}

// NewInstrumentingMiddleware ...
func NewInstrumentingMiddleware(reqCount metrics.Counter, reqDuration metrics.Histogram, next Provider) Provider {
	return &instrumentingMiddleware{
		reqCount:    reqCount,
		reqDuration: reqDuration,
		next:        next,
	}
}
