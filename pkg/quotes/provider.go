// Package quotes fetches daily price history and derives intraday changes.
package quotes

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNoData   = errors.New("no price data")
	ErrZeroOpen = errors.New("open price is zero")

	hundred = decimal.NewFromInt(100)
)

// Bar is a single daily OHLCV bar.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Provider returns the bars of the trading session(s) starting within
// [day, day+24h). An empty slice means the provider has no data.
type Provider interface {
	History(ctx context.Context, ticker string, day time.Time) ([]Bar, error)
}

// Change returns (close - open) / open * 100 where open is taken from the
// first bar and close from the last one.
func Change(bars []Bar) (decimal.Decimal, error) {
	if len(bars) == 0 {
		return decimal.Zero, ErrNoData
	}
	open := decimal.NewFromFloat(bars[0].Open)
	if open.IsZero() {
		return decimal.Zero, ErrZeroOpen
	}
	closing := decimal.NewFromFloat(bars[len(bars)-1].Close)
	return closing.Sub(open).Div(open).Mul(hundred), nil
}
