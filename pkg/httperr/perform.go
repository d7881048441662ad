package httperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/samvad-hq/samvad-status-probe/pkg/httpclient"
)

var errNilClient = errors.New("http client is nil")

// Option tunes Perform.
type Option func(*performOptions)

type performOptions struct {
	parse func([]byte) (map[string]any, error)
}

// WithStrictJSON makes non-JSON bodies fail with a *SerializationError
// (surfaced as a bad response) instead of decoding to a nil object.
func WithStrictJSON(strict bool) Option {
	return func(o *performOptions) {
		if strict {
			o.parse = ParseObjectStrict
		} else {
			o.parse = ParseObject
		}
	}
}

// Perform issues req through client and classifies the outcome.
//
// On success the parsed Response is returned. Every failure is an *Error,
// except cancellation: when ctx is done the context error is returned as-is
// and nothing is classified.
func Perform(ctx context.Context, client httpclient.Client, req Request, opts ...Option) (Response, error) {
	o := performOptions{parse: ParseObject}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if client == nil {
		return Response{}, BadResponse(errNilClient)
	}

	raw, err := client.Do(ctx, req.Method, req.URL, req.Header, req.Body)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Response{}, ctxErr
	}
	if err != nil {
		return Response{}, Normalize(err)
	}
	if raw == nil {
		return Response{}, BadResponse(nil)
	}

	resp := Response{
		StatusCode: raw.StatusCode(),
		Header:     raw.Header(),
		Body:       raw.Body(),
	}
	if expectsBody(req.Method, resp.StatusCode) {
		obj, err := o.parse(resp.Body)
		if err != nil {
			return Response{}, Normalize(err)
		}
		resp.JSON = obj
	}

	out, err := Classify(req, resp)
	if err != nil {
		return Response{}, Normalize(err)
	}
	return out, nil
}

// expectsBody reports whether an exchange may legitimately carry a body.
func expectsBody(method string, status int) bool {
	if method == http.MethodHead {
		return false
	}
	switch {
	case status >= 100 && status < 200:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}
