package hook

import (
	"io"

	"github.com/danieljhkim/tddguard/internal/log"
)

// DecideFunc evaluates one request and returns the response to emit.
type DecideFunc func(req *Request) Response

// Run executes one hook invocation: read one request from r, decide, and
// write exactly one response to w.
//
// This is where the fail-open policy is enforced as a rule rather than an
// accident: an unreadable request, a panicking decision function, or any
// other internal fault all map to a plain allow. Exactly one response is
// written no matter what.
func Run(r io.Reader, w io.Writer, decide DecideFunc) {
	resp := evaluate(r, decide)
	if err := WriteResponse(w, resp); err != nil {
		log.Error("failed to write hook response: %v", err)
	}
}

func evaluate(r io.Reader, decide DecideFunc) (resp Response) {
	defer func() {
		if p := recover(); p != nil {
			log.Error("panic during hook evaluation, allowing: %v", p)
			resp = AllowResponse()
		}
	}()

	req, err := ReadRequest(r)
	if err != nil {
		log.Debug("unreadable hook request, allowing: %v", err)
		return AllowResponse()
	}

	return decide(req)
}
