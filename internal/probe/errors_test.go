package probe

import (
	"errors"
	"testing"

	"github.com/samvad-hq/samvad-status-probe/pkg/httperr"
)

func TestOperationErrorDescribe(t *testing.T) {
	cases := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"named bad request", &OperationError{Operation: "getting user profile", Err: httperr.BadRequest(nil)}, "failed getting user profile(bad request)"},
		{"named unauthorized", &OperationError{Operation: "register user", Err: httperr.Unauthorized(nil)}, "failed register user(unauthorized)"},
		{"anonymous server error", &OperationError{Err: httperr.InternalServerError(nil)}, "server error(internal server error)"},
		{"foreign cause", &OperationError{Operation: "updating user", Err: errors.New("boom")}, "failed updating user"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Describe(); got != tc.want {
				t.Fatalf("Describe() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOperationErrorUnwrap(t *testing.T) {
	inner := httperr.NotFound(nil)
	err := error(&OperationError{Operation: "updating user", Err: inner})

	var herr *httperr.Error
	if !errors.As(err, &herr) || herr.Kind != httperr.KindNotFound {
		t.Fatalf("expected to unwrap not found, got %v", err)
	}
	if got := err.Error(); got != "failed updating user: not found" {
		t.Fatalf("Error() = %q", got)
	}
}
