package httperr

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseObjectMissingBody(t *testing.T) {
	if _, err := ParseObject(nil); !errors.Is(err, ErrMissingBody) {
		t.Fatalf("expected ErrMissingBody, got %v", err)
	}
}

func TestParseObjectRejectsArray(t *testing.T) {
	_, err := ParseObject([]byte(`[1,2,3]`))
	var ferr *UnexpectedFormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected UnexpectedFormatError, got %v", err)
	}
	if ferr.Expected != FormatDictionary {
		t.Fatalf("expected dictionary format, got %s", ferr.Expected)
	}
}

func TestParseObjectRejectsScalarFragment(t *testing.T) {
	_, err := ParseObject([]byte(`42`))
	var ferr *UnexpectedFormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected UnexpectedFormatError for fragment, got %v", err)
	}
}

func TestParseObjectReturnsObject(t *testing.T) {
	obj, err := ParseObject([]byte(`{"error":"missing","code":7}`))
	if err != nil {
		t.Fatalf("ParseObject: %v", err)
	}
	want := map[string]any{"error": "missing", "code": float64(7)}
	if !reflect.DeepEqual(obj, want) {
		t.Fatalf("got %#v want %#v", obj, want)
	}
}

func TestParseObjectInvalidBytesYieldNil(t *testing.T) {
	for _, body := range [][]byte{[]byte("<html>oops</html>"), {}, []byte("{")} {
		obj, err := ParseObject(body)
		if err != nil || obj != nil {
			t.Fatalf("ParseObject(%q) = %v, %v; want nil, nil", body, obj, err)
		}
	}
}

func TestParseObjectStrictFailsOnInvalidBytes(t *testing.T) {
	_, err := ParseObjectStrict([]byte("not json"))
	var serr *SerializationError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SerializationError, got %v", err)
	}
	if serr.Unwrap() == nil {
		t.Fatalf("expected underlying json error")
	}
}
