package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NewNotFoundError("x"), http.StatusNotFound},
		{NewForbiddenError("x"), http.StatusForbidden},
		{NewValidationError("x"), http.StatusBadRequest},
		{NewConflictError("x"), http.StatusConflict},
		{NewProviderAuthError("x"), http.StatusBadGateway},
		{NewProviderSyncError("x"), http.StatusBadGateway},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatusForError(tc.err); got != tc.want {
			t.Errorf("HTTPStatusForError(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestHasErrorCodeUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewConflictError("slot taken"))
	if !HasErrorCode(wrapped, CodeConflict) {
		t.Error("HasErrorCode should see through wrapping")
	}
	if HasErrorCode(wrapped, CodeNotFound) {
		t.Error("HasErrorCode matched the wrong code")
	}
	if HasErrorCode(errors.New("plain"), CodeConflict) {
		t.Error("HasErrorCode matched a non-service error")
	}
}
