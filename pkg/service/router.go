//Package service http router
//CODE GENERATED AUTOMATICALLY
//THIS FILE COULD BE EDITED BY HANDS
package service

import (
	"github.com/buaazp/fasthttprouter"
	"github.com/valyala/fasthttp"
)

// HandlerSettings binds a handler to a method and path
type HandlerSettings struct {
	Path    string
	Method  string
	Handler fasthttp.RequestHandler
}

// MakeFastHTTPRouter ...
func MakeFastHTTPRouter(handlers []*HandlerSettings) *fasthttprouter.Router {
	router := fasthttprouter.New()
	for _, h := range handlers {
		router.Handle(h.Method, h.Path, h.Handler)
	}
	return router
}
