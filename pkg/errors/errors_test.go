package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
		expose    bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "Invalid request.", expose: true},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "Not found.", expose: true},
		{code: CodeUnavailable, status: http.StatusInternalServerError, publicMsg: "Internal Server Error", retryable: true, expose: true},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "Internal Server Error", retryable: true},
		{code: CodeDependency, status: http.StatusServiceUnavailable, publicMsg: "Service Unavailable", retryable: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.ExposeMessage != tt.expose {
			t.Fatalf("code %s expected expose %v got %v", tt.code, tt.expose, meta.ExposeMessage)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "Message is required.")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "Message is required." {
		t.Fatalf("unexpected message %q", base.Message())
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeInternal, cause, "ctx")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeInternal {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
	if wrapped.Error() != "INTERNAL_ERROR: ctx: boom" {
		t.Fatalf("unexpected error text %q", wrapped.Error())
	}
}

func TestAsReturnsTypedError(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeNotFound, "no order"))
	if got := As(err); got == nil || got.Code() != CodeNotFound {
		t.Fatalf("As failed to return typed error")
	}
	if !IsCode(err, CodeNotFound) {
		t.Fatalf("IsCode should match wrapped code")
	}
	if IsCode(stdErrors.New("plain"), CodeNotFound) {
		t.Fatalf("IsCode should not match untyped errors")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
}

func TestDumpWalksChain(t *testing.T) {
	err := Wrap(CodeInternal, fmt.Errorf("query: %w", stdErrors.New("connection refused")), "load order")
	dump := Dump(err)
	if dump.Code != CodeInternal {
		t.Fatalf("expected code in dump, got %q", dump.Code)
	}
	if len(dump.Chain) != 3 {
		t.Fatalf("expected 3 chain entries, got %d: %v", len(dump.Chain), dump.Chain)
	}
	fields := dump.Fields()
	if _, ok := fields["sql_code"]; ok {
		t.Fatalf("empty sql fields should be skipped")
	}
	if fields["error_code"] != CodeInternal {
		t.Fatalf("expected error_code field, got %v", fields["error_code"])
	}
}
