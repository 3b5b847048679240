package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/mestore/mestore-backend/pkg/errors"
)

type createItemBody struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"min=0"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Water Can","price":45}`))
	var body createItemBody
	if err := DecodeJSONBody(r, &body); err != nil {
		t.Fatalf("expected valid body, got %v", err)
	}
	if body.Name != "Water Can" {
		t.Fatalf("unexpected name %q", body.Name)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Water Can","bogus":1}`))
	var body createItemBody
	err := DecodeJSONBody(r, &body)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsFieldErrors(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"price":10}`))
	var body createItemBody
	err := DecodeJSONBody(r, &body)
	if err == nil {
		t.Fatal("expected error for missing name")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["name"] != "is required" {
		t.Fatalf("unexpected details %v", details)
	}
}
