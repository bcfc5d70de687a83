package status

import "errors"

// HTTPError is an error carrying the status code it must be answered with.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// CodeOf extracts the status code from the error chain. If no HTTPError is found,
// the fallback is returned.
func CodeOf(err error, fallback Code) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return fallback
}

var (
	ErrBadRequest          = NewError(BadRequest, "bad request")
	ErrUnauthorized        = NewError(Unauthorized, "unauthorized")
	ErrForbidden           = NewError(Forbidden, "forbidden")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrMethodNotAllowed    = NewError(MethodNotAllowed, "method not allowed")
	ErrNotAcceptable       = NewError(NotAcceptable, "not acceptable")
	ErrConflict            = NewError(Conflict, "conflict")
	ErrGone                = NewError(Gone, "gone")
	ErrUnprocessableEntity = NewError(UnprocessableEntity, "unprocessable entity")
	ErrTooManyRequests     = NewError(TooManyRequests, "too many requests")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
	ErrNotImplemented      = NewError(NotImplemented, "not implemented")
	ErrBadGateway          = NewError(BadGateway, "bad gateway")
	ErrServiceUnavailable  = NewError(ServiceUnavailable, "service unavailable")
	ErrGatewayTimeout      = NewError(GatewayTimeout, "gateway timeout")
	ErrLoopDetected        = NewError(LoopDetected, "loop detected")
)
