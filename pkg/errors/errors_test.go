package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed", detailsOK: true},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found"},
		{code: CodeConflict, status: http.StatusConflict, publicMsg: "conflict detected"},
		{code: CodeInsufficientQuantity, status: http.StatusConflict, publicMsg: "not enough inventory", detailsOK: true},
		{code: CodeIdempotency, status: http.StatusConflict, publicMsg: "idempotency key reused", detailsOK: true},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "internal server error", retryable: true},
		{code: CodeDependency, status: http.StatusServiceUnavailable, publicMsg: "dependency unavailable", retryable: true, detailsOK: true},
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
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
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
	base := New(CodeValidation, "missing name")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing name" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	cause := stdErrors.New("db down")
	wrapped := Wrap(CodeInternal, cause, "list inventory")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped error to unwrap to cause")
	}
	if wrapped.Error() != "INTERNAL_ERROR: list inventory" {
		t.Fatalf("unexpected error string %q", wrapped.Error())
	}

	if got := Wrap(CodeNotFound, nil, "gone"); got.Unwrap() != nil {
		t.Fatalf("wrap with nil cause should not carry a cause")
	}
}

func TestAsAndIsCodeFollowChain(t *testing.T) {
	typed := New(CodeInsufficientQuantity, "not enough inventory")
	outer := fmt.Errorf("add to cart: %w", typed)

	if got := As(outer); got != typed {
		t.Fatalf("expected As to find typed error")
	}
	if !IsCode(outer, CodeInsufficientQuantity) {
		t.Fatalf("expected IsCode to match")
	}
	if IsCode(outer, CodeNotFound) {
		t.Fatalf("did not expect not found match")
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatalf("plain errors should not convert")
	}
}

func TestNilErrorAccessors(t *testing.T) {
	var e *Error
	if e.Code() != CodeInternal {
		t.Fatalf("nil error should report internal code")
	}
	if e.Message() != "" || e.Error() != "" {
		t.Fatalf("nil error should have empty strings")
	}
	if e.WithDetails("x") != nil {
		t.Fatalf("WithDetails on nil should return nil")
	}
}

func TestDumpCapturesPostgresFields(t *testing.T) {
	pgErr := &pgconn.PgError{Code: PGCheckViolation, ConstraintName: "inventory_price_check", TableName: "inventory"}
	dump := Dump(Wrap(CodeInternal, pgErr, "insert inventory"))
	if dump.PGCode != PGCheckViolation || dump.PGConstraint != "inventory_price_check" || dump.PGTable != "inventory" {
		t.Fatalf("unexpected dump %+v", dump)
	}
	if dump.Code != CodeInternal {
		t.Fatalf("expected typed code in dump, got %s", dump.Code)
	}
	if len(dump.Chain) != 2 {
		t.Fatalf("expected two chain entries, got %v", dump.Chain)
	}

	pqErr := &pq.Error{Code: PGNotNullViolation, Column: "name"}
	if got := PGCode(fmt.Errorf("wrap: %w", pqErr)); got != PGNotNullViolation {
		t.Fatalf("expected pq code, got %q", got)
	}
	if got := PGCode(stdErrors.New("plain")); got != "" {
		t.Fatalf("expected empty code for plain error, got %q", got)
	}
}
