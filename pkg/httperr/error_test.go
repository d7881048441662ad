package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindDescriptions(t *testing.T) {
	cases := map[Kind]string{
		KindBadRequest:          "bad request",
		KindUnauthorized:        "unauthorized",
		KindNotFound:            "not found",
		KindInternalServerError: "internal server error",
		KindBadResponse:         "bad response",
		KindUnclassified:        "unclassified",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
		if got := (&Error{Kind: kind}).Error(); got != want {
			t.Fatalf("Error() = %q, want %q", got, want)
		}
	}
	if KindInternalServerError.Slug() != "internal_server_error" {
		t.Fatalf("unexpected slug %q", KindInternalServerError.Slug())
	}
}

func TestNormalizePassesThroughClassifiedErrors(t *testing.T) {
	orig := NotFound(NewTransaction(Request{URL: "u"}, Response{StatusCode: 404}))
	if got := Normalize(orig); got != orig {
		t.Fatalf("expected same *Error back, got %#v", got)
	}

	wrapped := fmt.Errorf("context: %w", orig)
	if got := Normalize(wrapped); got != orig {
		t.Fatalf("expected wrapped *Error to be unwrapped, got %#v", got)
	}
}

func TestNormalizeWrapsForeignErrors(t *testing.T) {
	cause := errors.New("boom")
	got := Normalize(cause)
	if got.Kind != KindBadResponse {
		t.Fatalf("expected bad response, got %s", got.Kind)
	}
	if got.Cause != cause || got.Transaction != nil {
		t.Fatalf("unexpected payload %#v", got)
	}
	if !errors.Is(got, cause) {
		t.Fatalf("expected errors.Is to reach cause")
	}
}

func TestNormalizeNil(t *testing.T) {
	if Normalize(nil) != nil {
		t.Fatalf("expected nil")
	}
}

func TestErrorIsMatchesKind(t *testing.T) {
	err := Unauthorized(nil)
	if !errors.Is(err, &Error{Kind: KindUnauthorized}) {
		t.Fatalf("expected kind match")
	}
	if errors.Is(err, &Error{Kind: KindNotFound}) {
		t.Fatalf("unexpected match on different kind")
	}
}
