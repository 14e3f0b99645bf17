package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if len(body.Details) != 0 {
		t.Fatalf("expected no details, got %v", body.Details)
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
}

func TestAppError_WithDetails(t *testing.T) {
	base := NewDomainErrorSimple("VALIDATION_FAILED", "Missing booking fields", http.StatusUnprocessableEntity)
	withDetails := base.WithDetails("selectedDates", "timeSlots")

	if len(base.Details) != 0 {
		t.Fatalf("base error must not be mutated: %+v", base)
	}
	if got := withDetails.ToHTTPError().Details; len(got) != 2 || got[0] != "selectedDates" {
		t.Fatalf("unexpected details: %v", got)
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound))
	appErr, ok := AsAppError(wrapped)
	if !ok || appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected app error, got %v", appErr)
	}

	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Fatalf("plain errors are not app errors")
	}
}
