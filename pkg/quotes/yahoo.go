package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	// YahooURL is the public Yahoo Finance API host.
	YahooURL = "https://query1.finance.yahoo.com"
	// DefaultUserAgent is sent with every request, the API rejects empty agents.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Yahoo reads daily bars from the Yahoo Finance chart endpoint.
type Yahoo struct {
	cli       *fasthttp.Client
	baseURL   string
	userAgent string
	timeout   time.Duration
}

// NewYahoo creates a Yahoo provider. Zero values fall back to YahooURL,
// DefaultUserAgent and a 30s timeout.
func NewYahoo(cli *fasthttp.Client, baseURL, userAgent string, timeout time.Duration) *Yahoo {
	if baseURL == "" {
		baseURL = YahooURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Yahoo{
		cli:       cli,
		baseURL:   baseURL,
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// History implements Provider.
func (y *Yahoo) History(ctx context.Context, ticker string, day time.Time) ([]Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	args.Set("period1", strconv.FormatInt(start.Unix(), 10))
	args.Set("period2", strconv.FormatInt(end.Unix(), 10))
	args.Set("interval", "1d")
	args.Set("events", "div,splits")

	req, res := fasthttp.AcquireRequest(), fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(res)
	}()

	req.Header.SetMethod(http.MethodGet)
	req.SetRequestURI(fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.baseURL, url.PathEscape(ticker), args.String()))
	req.Header.Set("User-Agent", y.userAgent)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(y.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := y.cli.DoDeadline(req, res, deadline); err != nil {
		return nil, fmt.Errorf("request %s: %w", ticker, err)
	}

	var chart chartResponse
	decodeErr := chart.UnmarshalJSON(res.Body())
	if decodeErr == nil && chart.Error != nil {
		return nil, fmt.Errorf("%s: %s: %s", ticker, chart.Error.Code, chart.Error.Description)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", ticker, res.StatusCode())
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode %s: %w", ticker, decodeErr)
	}

	return chart.bars(), nil
}

func (v *chartResponse) bars() []Bar {
	var bars []Bar
	for _, res := range v.Result {
		if len(res.Quote) == 0 {
			continue
		}
		q := res.Quote[0]
		for i, ts := range res.Timestamp {
			open, ok := at(q.Open, i)
			if !ok {
				continue
			}
			closing, ok := at(q.Close, i)
			if !ok {
				continue
			}
			high, _ := at(q.High, i)
			low, _ := at(q.Low, i)
			volume, _ := at(q.Volume, i)
			bars = append(bars, Bar{
				Time:   time.Unix(ts, 0).UTC(),
				Open:   open,
				High:   high,
				Low:    low,
				Close:  closing,
				Volume: volume,
			})
		}
	}
	return bars
}
