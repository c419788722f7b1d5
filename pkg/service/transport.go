//Package service http transport
package service

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"github.com/mailru/easyjson"
	"github.com/valyala/fasthttp"

	"github.com/stockchange/pkg/models"
)

const (
	headerRows    = "X-Report-Rows"
	headerMissing = "X-Report-Missing"
)

var contentTypeJSON = []byte("application/json")

// ExecuteTransport transport interface
type ExecuteTransport interface {
	DecodeRequest(ctx context.Context, r *fasthttp.Request) (request models.ExecuteRequest, err error)
	EncodeResponse(ctx context.Context, r *fasthttp.Response, response *models.ExecuteResponse) (err error)
}

type executeTransport struct {
	errorCreator ErrorCreator
}

// DecodeRequest accepts an empty body, so a bare `curl -X POST` triggers a
// run. A body must be JSON.
func (t *executeTransport) DecodeRequest(ctx context.Context, r *fasthttp.Request) (request models.ExecuteRequest, err error) {
	body := r.Body()
	if len(body) == 0 {
		return
	}
	if ct := r.Header.ContentType(); len(ct) > 0 && !bytes.HasPrefix(ct, contentTypeJSON) {
		return models.ExecuteRequest{}, t.errorCreator(
			http.StatusUnsupportedMediaType,
			"unsupported content type %q",
			ct,
		)
	}
	if err = request.UnmarshalJSON(body); err != nil {
		return models.ExecuteRequest{}, t.errorCreator(
			http.StatusBadRequest,
			"failed to decode JSON request: %v",
			err,
		)
	}
	return
}

// EncodeResponse writes the run summary as JSON and repeats the row counts
// in headers.
func (t *executeTransport) EncodeResponse(ctx context.Context, r *fasthttp.Response, response *models.ExecuteResponse) (err error) {
	r.SetStatusCode(http.StatusOK)
	r.Header.SetContentTypeBytes(contentTypeJSON)
	r.Header.Set(headerRows, strconv.Itoa(response.Data.Rows))
	r.Header.Set(headerMissing, strconv.Itoa(response.Data.Missing))
	if _, err = easyjson.MarshalToWriter(response, r.BodyWriter()); err != nil {
		return t.errorCreator(http.StatusInternalServerError, "failed to encode JSON response: %s", err)
	}
	return
}

// NewExecuteTransport the transport creator for http requests
func NewExecuteTransport(
	errorCreator ErrorCreator,
) ExecuteTransport {
	return &executeTransport{
		errorCreator: errorCreator,
	}
}
