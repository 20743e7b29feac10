package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"
)

type samplePayload struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

func TestDecodeAndValidate(t *testing.T) {
	t.Run("Valid payload", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name": "Sofa", "price": 10}`))

		var payload samplePayload
		if err := DecodeAndValidate(req, &payload); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if payload.Name != "Sofa" {
			t.Errorf("Expected decoded name, got %q", payload.Name)
		}
	})

	t.Run("Validation failure", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"price": -1}`))

		var payload samplePayload
		err := DecodeAndValidate(req, &payload)
		if err == nil {
			t.Fatal("Expected a validation error")
		}

		errors := FormatValidationErrors(err)
		if len(errors) != 2 {
			t.Fatalf("Expected 2 field errors, got %d", len(errors))
		}
		fields := map[string]string{}
		for _, e := range errors {
			fields[e.Field] = e.Message
		}
		if _, ok := fields["Name"]; !ok {
			t.Error("Expected an error for Name")
		}
		if _, ok := fields["Price"]; !ok {
			t.Error("Expected an error for Price")
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name"`))

		var payload samplePayload
		err := DecodeAndValidate(req, &payload)
		if err == nil {
			t.Fatal("Expected a decode error")
		}
		if len(FormatValidationErrors(err)) != 0 {
			t.Error("Decode errors must not format as validation errors")
		}
	})
}
