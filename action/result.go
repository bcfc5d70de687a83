package action

import "github.com/indigo-web/controller/http"

// Kind tells which of the variants a Result holds.
type Kind uint8

const (
	// KindEmpty means the action produced no output. The controller falls back to the view.
	KindEmpty Kind = iota
	// KindBody means the action produced a string to be used as the response body.
	KindBody
	// KindResponse means the action produced a fully-formed response.
	KindResponse
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindBody:
		return "body"
	case KindResponse:
		return "response"
	default:
		return "unknown"
	}
}

// Result is what an action returns. The zero value is an empty result.
type Result struct {
	kind     Kind
	body     string
	response *http.Response
}

// Empty creates a result without output.
func Empty() Result {
	return Result{}
}

// String creates a result carrying the response body. An empty string carries no output,
// so it's the same as Empty.
func String(body string) Result {
	if len(body) == 0 {
		return Empty()
	}

	return Result{kind: KindBody, body: body}
}

// Respond creates a result carrying a ready response. Nil response is the same as Empty.
func Respond(response *http.Response) Result {
	if response == nil {
		return Empty()
	}

	return Result{kind: KindResponse, response: response}
}

func (r Result) Kind() Kind {
	return r.kind
}

func (r Result) IsEmpty() bool {
	return r.kind == KindEmpty
}

// Body returns the body of a KindBody result, empty string otherwise.
func (r Result) Body() string {
	return r.body
}

// Response returns the response of a KindResponse result, nil otherwise.
func (r Result) Response() *http.Response {
	return r.response
}
