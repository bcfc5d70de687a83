package dummy

import (
	"github.com/indigo-web/controller/http"
	"github.com/indigo-web/controller/transport"
)

var _ transport.Emitter = new(Recorder)

// Emission is a single recorded Emit call. The response is a copy taken at the moment
// of emission.
type Emission struct {
	Request  *http.Request
	Response *http.Response
}

// Recorder is an emitter journaling all the emitted responses, thereby suitable for
// verifying how many times and what was emitted.
type Recorder struct {
	err       error
	emissions []Emission
}

func NewRecorder() *Recorder {
	return new(Recorder)
}

// Failing makes every subsequent Emit call record the response and return the error.
func (r *Recorder) Failing(err error) *Recorder {
	r.err = err
	return r
}

func (r *Recorder) Emit(request *http.Request, response *http.Response) error {
	r.emissions = append(r.emissions, Emission{
		Request:  request,
		Response: http.NewResponse().CopyFrom(response),
	})

	return r.err
}

// Calls returns how many times Emit was called.
func (r *Recorder) Calls() int {
	return len(r.emissions)
}

// Emissions returns all the recorded emissions.
func (r *Recorder) Emissions() []Emission {
	return r.emissions
}

// Last returns the most recently emitted response, nil if there were none.
func (r *Recorder) Last() *http.Response {
	if len(r.emissions) == 0 {
		return nil
	}

	return r.emissions[len(r.emissions)-1].Response
}

// Reset forgets all the recorded emissions.
func (r *Recorder) Reset() {
	r.emissions = r.emissions[:0]
}
