package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Format names the JSON shape a decoder expected.
type Format string

const (
	FormatArray      Format = "array"
	FormatDictionary Format = "dictionary"
)

// ErrMissingBody is returned when decoding is attempted without a body.
var ErrMissingBody = errors.New("response body missing")

// UnexpectedFormatError reports valid JSON of the wrong shape.
type UnexpectedFormatError struct {
	Expected Format
}

func (e *UnexpectedFormatError) Error() string {
	return fmt.Sprintf("unexpected json format: expected %s", e.Expected)
}

// SerializationError wraps a JSON syntax failure.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string { return fmt.Sprintf("json serialization: %v", e.Err) }
func (e *SerializationError) Unwrap() error { return e.Err }

// ParseObject decodes body as a JSON object.
//
// A nil body fails with ErrMissingBody. Bytes that are not JSON at all yield
// (nil, nil): the body is treated as unstructured rather than as a failure.
// JSON that is not an object fails with an *UnexpectedFormatError.
func ParseObject(body []byte) (map[string]any, error) {
	obj, err := ParseObjectStrict(body)
	var serr *SerializationError
	if errors.As(err, &serr) {
		return nil, nil
	}
	return obj, err
}

// ParseObjectStrict is ParseObject without the leniency: bytes that are not
// JSON fail with a *SerializationError.
func ParseObjectStrict(body []byte) (map[string]any, error) {
	if body == nil {
		return nil, ErrMissingBody
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, &SerializationError{Err: err}
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &UnexpectedFormatError{Expected: FormatDictionary}
	}
	return obj, nil
}
