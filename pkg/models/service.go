package models

import (
	"context"

	"github.com/shopspring/decimal"
)

//easyjson:skip
type Job func(ctx context.Context, in, out chan interface{})

type ExecuteRequest struct {
}

type ExecuteResponse struct {
	Data      Summary `json:"data"`
	Error     bool    `json:"error"`
	ErrorText string  `json:"errorText"`
}

// Summary describes a finished run.
type Summary struct {
	Destination string `json:"destination"`
	Rows        int    `json:"rows"`
	Missing     int    `json:"missing"`
}

//easyjson:skip
type Task struct {
	Index     int
	Timestamp string
	Ticker    string
}

// Result is one output row. Change is nil when no price data was found.
//easyjson:skip
type Result struct {
	Timestamp string
	Ticker    string
	Change    *decimal.Decimal
}
