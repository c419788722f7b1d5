package quotes

import (
	"context"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// loggingMiddleware wraps Provider and logs every lookup
type loggingMiddleware struct {
	logger log.Logger
	next   Provider
}

func (p *loggingMiddleware) History(ctx context.Context, ticker string, day time.Time) (bars []Bar, err error) {
	defer func(begin time.Time) {
		_ = p.wrap(err).Log(
			"method", "History",
			"ticker", ticker,
			"day", day.Format("2006-01-02"),
			"bars", len(bars),
			"err", err,
			"elapsed", time.Since(begin),
		)
	}(time.Now())
	return p.next.History(ctx, ticker, day)
}

func (p *loggingMiddleware) wrap(err error) log.Logger {
	lvl := level.Debug
	if err != nil {
		lvl = level.Error
	}
	return lvl(p.logger)
}

// NewLoggingMiddleware ...
func NewLoggingMiddleware(logger log.Logger, next Provider) Provider {
	return &loggingMiddleware{
		logger: logger,
		next:   next,
	}
}
