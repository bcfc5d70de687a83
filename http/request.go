package http

import (
	"context"

	"github.com/indigo-web/controller/http/method"
	"github.com/indigo-web/controller/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
	Params  = *kv.Storage
	Vars    = *kv.Storage
)

// Request represents an incoming HTTP request. Controllers and actions treat it as read-only.
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is a decoded request path.
	Path string
	// Params are request URI parameters.
	Params Params
	// Vars are dynamic routing segments, filled by whatever resolved the controller.
	Vars Vars
	// Headers holds non-normalized header pairs, even though lookup is case-insensitive.
	Headers Headers
	// Body is the already received message body.
	Body []byte
	// Ctx is the request-scoped context. Cancellation is owned by the transport.
	Ctx context.Context
}

// NewRequest returns a request with empty headers, params and vars.
func NewRequest(m method.Method, path string) *Request {
	return &Request{
		Method:  m,
		Path:    path,
		Params:  kv.New(),
		Vars:    kv.New(),
		Headers: kv.New(),
		Ctx:     context.Background(),
	}
}

// Context returns the request context, never nil.
func (r *Request) Context() context.Context {
	if r.Ctx == nil {
		return context.Background()
	}

	return r.Ctx
}
