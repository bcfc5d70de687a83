package transport

import (
	"io"
	"sort"
	"strconv"

	"github.com/indigo-web/controller/http"
	"github.com/indigo-web/controller/http/method"
	"github.com/indigo-web/controller/http/status"
	"github.com/indigo-web/utils/strcomp"
)

const (
	protocol = "HTTP/1.1 "
	crlf     = "\r\n"
	colonsp  = ": "
)

// Writer serializes responses as HTTP/1.1 messages into the underlying writer. The whole
// message is rendered into the buffer first and written in a single call.
type Writer struct {
	w              io.Writer
	buff           []byte
	defaultHeaders []http.Header
}

// NewWriter returns a Writer emitting into w. Default headers are rendered into every
// response, unless the response sets the same header by itself.
func NewWriter(w io.Writer, defaultHeaders map[string]string) *Writer {
	return &Writer{
		w:              w,
		defaultHeaders: sortedHeaders(defaultHeaders),
	}
}

func (wr *Writer) Emit(request *http.Request, response *http.Response) error {
	if err := validate(response); err != nil {
		return err
	}

	defer wr.clear()

	fields := response.Reveal()
	wr.renderStatusLine(fields)

	for _, header := range fields.Headers {
		wr.renderHeader(header.Key, header.Value)
	}

	for _, header := range wr.defaultHeaders {
		if !hasHeader(fields.Headers, header.Key) {
			wr.renderHeader(header.Key, header.Value)
		}
	}

	// Content-Type is compulsory
	wr.renderHeader("Content-Type", fields.ContentType)
	wr.buff = strconv.AppendInt(append(wr.buff, "Content-Length: "...), int64(len(fields.Body)), 10)
	wr.crlf()
	wr.crlf()

	if request == nil || request.Method != method.HEAD {
		// HEAD request responses must be similar to GET request responses, except
		// forced lack of body, even if Content-Length is specified
		wr.buff = append(wr.buff, fields.Body...)
	}

	_, err := wr.w.Write(wr.buff)
	return err
}

func (wr *Writer) renderStatusLine(fields *http.Fields) {
	wr.buff = append(wr.buff, protocol...)
	wr.buff = strconv.AppendUint(wr.buff, uint64(fields.Code), 10)
	wr.buff = append(wr.buff, ' ')

	if len(fields.Status) > 0 {
		wr.buff = append(wr.buff, fields.Status...)
	} else {
		wr.buff = append(wr.buff, status.Text(fields.Code)...)
	}

	wr.crlf()
}

func (wr *Writer) renderHeader(key, value string) {
	wr.buff = append(wr.buff, key...)
	wr.buff = append(wr.buff, colonsp...)
	wr.buff = append(wr.buff, value...)
	wr.crlf()
}

func (wr *Writer) crlf() {
	wr.buff = append(wr.buff, crlf...)
}

func (wr *Writer) clear() {
	wr.buff = wr.buff[:0]
}

func hasHeader(headers []http.Header, key string) bool {
	for _, header := range headers {
		if strcomp.EqualFold(header.Key, key) {
			return true
		}
	}

	return false
}

func sortedHeaders(m map[string]string) []http.Header {
	headers := make([]http.Header, 0, len(m))
	for key, value := range m {
		headers = append(headers, http.Header{Key: key, Value: value})
	}

	sort.Slice(headers, func(i, j int) bool {
		return headers[i].Key < headers[j].Key
	})

	return headers
}
