package httperr

import (
	"maps"
	"net/http"
	"slices"
)

// Request describes an outgoing HTTP request. A nil Body means no body.
type Request struct {
	Method string
	URL    string
	Header map[string]string
	Body   []byte
}

// Response couples the received status and headers with the decoded body.
// JSON is nil when the body was absent or did not decode to an object.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	JSON       map[string]any
}

// Transaction is an immutable request/response pair kept for diagnostics.
type Transaction struct {
	request  Request
	response Response
}

// NewTransaction copies req and resp into a Transaction.
func NewTransaction(req Request, resp Response) *Transaction {
	return &Transaction{
		request:  cloneRequest(req),
		response: cloneResponse(resp),
	}
}

// Request returns a copy of the recorded request.
func (t *Transaction) Request() Request {
	if t == nil {
		return Request{}
	}
	return cloneRequest(t.request)
}

// Response returns a copy of the recorded response.
func (t *Transaction) Response() Response {
	if t == nil {
		return Response{}
	}
	return cloneResponse(t.response)
}

func cloneRequest(r Request) Request {
	r.Header = maps.Clone(r.Header)
	r.Body = slices.Clone(r.Body)
	return r
}

func cloneResponse(r Response) Response {
	r.Header = r.Header.Clone()
	r.Body = slices.Clone(r.Body)
	r.JSON = maps.Clone(r.JSON)
	return r
}
