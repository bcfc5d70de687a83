package transport

import (
	"errors"
	"fmt"

	"github.com/indigo-web/controller/http"
	"github.com/indigo-web/controller/http/status"
)

// ErrInvalidCode is returned by emitters for responses whose status code can't be put
// into a status line.
var ErrInvalidCode = errors.New("transport: invalid status code")

// Emitter flushes a finalized response to the client.
type Emitter interface {
	Emit(request *http.Request, response *http.Response) error
}

// EmitterFunc is an adapter allowing the use of an ordinary function as an Emitter.
type EmitterFunc func(request *http.Request, response *http.Response) error

func (e EmitterFunc) Emit(request *http.Request, response *http.Response) error {
	return e(request, response)
}

// Nop discards every response.
var Nop Emitter = EmitterFunc(func(*http.Request, *http.Response) error {
	return nil
})

func validate(response *http.Response) error {
	if code := response.Reveal().Code; !status.IsValid(code) {
		return fmt.Errorf("%w: %d", ErrInvalidCode, code)
	}

	return nil
}
