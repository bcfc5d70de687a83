package status

type (
	// Code is a numeric HTTP status code.
	Code uint16
	// Status is the reason phrase, rendered after the code in a status line.
	Status string
)

const (
	OK        Code = 200
	Created   Code = 201
	Accepted  Code = 202
	NoContent Code = 204

	MovedPermanently  Code = 301
	Found             Code = 302
	SeeOther          Code = 303
	NotModified       Code = 304
	TemporaryRedirect Code = 307
	PermanentRedirect Code = 308

	BadRequest          Code = 400
	Unauthorized        Code = 401
	Forbidden           Code = 403
	NotFound            Code = 404
	MethodNotAllowed    Code = 405
	NotAcceptable       Code = 406
	Conflict            Code = 409
	Gone                Code = 410
	Teapot              Code = 418
	UnprocessableEntity Code = 422
	TooManyRequests     Code = 429
	InternalServerError Code = 500
	NotImplemented      Code = 501
	BadGateway          Code = 502
	ServiceUnavailable  Code = 503
	GatewayTimeout      Code = 504
	LoopDetected        Code = 508
)

const unknownStatusMessage = "Unknown Status Code"

var texts = map[Code]Status{
	OK:        "OK",
	Created:   "Created",
	Accepted:  "Accepted",
	NoContent: "No Content",

	MovedPermanently:  "Moved Permanently",
	Found:             "Found",
	SeeOther:          "See Other",
	NotModified:       "Not Modified",
	TemporaryRedirect: "Temporary Redirect",
	PermanentRedirect: "Permanent Redirect",

	BadRequest:          "Bad Request",
	Unauthorized:        "Unauthorized",
	Forbidden:           "Forbidden",
	NotFound:            "Not Found",
	MethodNotAllowed:    "Method Not Allowed",
	NotAcceptable:       "Not Acceptable",
	Conflict:            "Conflict",
	Gone:                "Gone",
	Teapot:              "I'm a teapot",
	UnprocessableEntity: "Unprocessable Entity",
	TooManyRequests:     "Too Many Requests",
	InternalServerError: "Internal Server Error",
	NotImplemented:      "Not Implemented",
	BadGateway:          "Bad Gateway",
	ServiceUnavailable:  "Service Unavailable",
	GatewayTimeout:      "Gateway Timeout",
	LoopDetected:        "Loop Detected",
}

// Text returns the reason phrase of the code, or "Unknown Status Code".
func Text(code Code) Status {
	if text, ok := texts[code]; ok {
		return text
	}

	return unknownStatusMessage
}

// IsError reports whether the code is of client or server error class.
func IsError(code Code) bool {
	return code >= 400 && code < 600
}

// IsValid reports whether the code fits into the three-digit status-code grammar.
func IsValid(code Code) bool {
	return code >= 100 && code <= 999
}
