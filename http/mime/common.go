package mime

import "strings"

type MIME = string

const (
	Plain MIME = "text/plain"
	HTML  MIME = "text/html"
	JSON  MIME = "application/json"
)

// Accepts reports whether the Accept header value explicitly lists the MIME. Wildcards
// aren't taken into account, so */* doesn't accept anything in particular.
func Accepts(accept string, mime MIME) bool {
	for accept != "" {
		var token string
		token, accept, _ = strings.Cut(accept, ",")
		token, _, _ = strings.Cut(token, ";")
		if strings.EqualFold(strings.TrimSpace(token), mime) {
			return true
		}
	}

	return false
}
