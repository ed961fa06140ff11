package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "not found", err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{name: "method", err: E(KindMethodNotAllowed, ""), want: http.StatusMethodNotAllowed},
		{name: "wrapped", err: fmt.Errorf("route: %w", E(KindNotFound, "")), want: http.StatusNotFound},
		{name: "untyped", err: stderrors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("%s: HTTPStatus() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestErrorMessageFallsBackToKind(t *testing.T) {
	t.Parallel()

	if got := E(KindNotFound, "").Error(); got != "not_found" {
		t.Fatalf("Error() = %q, want %q", got, "not_found")
	}
}

func TestPublicMessageHidesInternalErrors(t *testing.T) {
	t.Parallel()

	if got := PublicMessage(stderrors.New("db password leaked")); got != "Internal Server Error" {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(E(KindNotFound, "page missing")); got != "page missing" {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(E(KindMethodNotAllowed, "")); got != "Method Not Allowed" {
		t.Fatalf("PublicMessage() = %q", got)
	}
}
