package transport

import (
	nethttp "net/http"

	"github.com/indigo-web/controller/http"
	"github.com/indigo-web/controller/http/method"
)

// ResponseWriter emits responses through the standard library's http.ResponseWriter, so
// controllers can be mounted into a net/http server.
type ResponseWriter struct {
	W              nethttp.ResponseWriter
	DefaultHeaders map[string]string
}

// Emit copies the response into the ResponseWriter. Responses with codes outside of the
// 100-999 range are rejected with ErrInvalidCode before anything is written.
func (rw ResponseWriter) Emit(request *http.Request, response *http.Response) error {
	if err := validate(response); err != nil {
		return err
	}

	fields := response.Reveal()
	header := rw.W.Header()

	for key, value := range rw.DefaultHeaders {
		header.Set(key, value)
	}

	for i, h := range fields.Headers {
		if !hasHeader(fields.Headers[:i], h.Key) {
			header.Del(h.Key)
		}

		header.Add(h.Key, h.Value)
	}

	header.Set("Content-Type", fields.ContentType)
	rw.W.WriteHeader(int(fields.Code))

	if request != nil && request.Method == method.HEAD {
		return nil
	}

	_, err := rw.W.Write(fields.Body)
	return err
}
