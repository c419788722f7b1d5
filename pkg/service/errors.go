//Package service http errors
//CODE GENERATED AUTOMATICALLY
//THIS FILE COULD BE EDITED BY HANDS
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/valyala/fasthttp"

	"github.com/stockchange/pkg/models"
)

// ErrorProcessor writes errors to responses and reads them back on the client side
type ErrorProcessor interface {
	Encode(ctx context.Context, r *fasthttp.Response, err error)
	Decode(r *fasthttp.Response) error
}

// ErrorCreator builds an error carrying an http status
type ErrorCreator func(status int, format string, v ...interface{}) error

type httpError struct {
	Code    int
	Message string
}

func (e *httpError) Error() string {
	return e.Message
}

// StatusCode ...
func (e *httpError) StatusCode() int {
	return e.Code
}

// NewError the ErrorCreator used by transports
func NewError(status int, format string, v ...interface{}) error {
	return &httpError{
		Code:    status,
		Message: fmt.Sprintf(format, v...),
	}
}

type errorProcessor struct {
	defaultCode    int
	defaultMessage string
}

// Encode method for encoding errors on server side
func (e *errorProcessor) Encode(ctx context.Context, r *fasthttp.Response, err error) {
	code := e.defaultCode
	message := fmt.Sprintf("%s: %v", e.defaultMessage, err)

	var herr *httpError
	switch {
	case errors.As(err, &herr):
		code = herr.Code
		message = herr.Message
	case errors.Is(err, ErrTimeout):
		code = http.StatusGatewayTimeout
		message = err.Error()
	}

	r.SetStatusCode(code)
	r.Header.Set("Content-Type", "application/json")
	body, _ := models.ExecuteResponse{
		Error:     true,
		ErrorText: message,
	}.MarshalJSON()
	r.SetBody(body)
}

// Decode method for decoding errors on client side
func (e *errorProcessor) Decode(r *fasthttp.Response) error {
	var response models.ExecuteResponse
	if err := response.UnmarshalJSON(r.Body()); err != nil || response.ErrorText == "" {
		return NewError(r.StatusCode(), "%s", http.StatusText(r.StatusCode()))
	}
	return NewError(r.StatusCode(), "%s", response.ErrorText)
}

// NewErrorProcessor ...
func NewErrorProcessor(defaultCode int, defaultMessage string) ErrorProcessor {
	return &errorProcessor{
		defaultCode:    defaultCode,
		defaultMessage: defaultMessage,
	}
}
