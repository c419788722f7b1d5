// Package pipeline holds the stages chained by the service: reading
// timestamp files, looking up price changes and writing the report.
package pipeline

import (
	"context"
)

// Tickers in the order their timestamp files are processed.
const (
	Amazon  = "AMZN"
	Bitcoin = "BTC-USD"
	Google  = "GOOGL"
)

// Source binds a ticker to its timestamp file.
type Source struct {
	Ticker string
	Path   string
}

func send(ctx context.Context, out chan interface{}, v interface{}) bool {
	select {
	case out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
