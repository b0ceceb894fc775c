package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-storefront/pkg/input"
	"github.com/goliatone/go-storefront/pkg/render"
)

func TestMapErrorPayload_GoErrorsCompatibility(t *testing.T) {
	fields := []string{"cep", "street", "number", "phone"}

	payload := map[string][]string{
		"/body/cep":                      {"CEP inválido"},
		"$.body.street":                  {"Informe a rua", " Informe a rua "},
		"request.payload.address.number": {"Informe o número"},
		"phone[0]":                       {"Telefone incompleto"},
		"non_field_errors":               {"Carrinho vazio"},
		"request/body/coupon":            {"Cupom expirado"},
		"":                               {"Tente novamente"},
		"city":                           {"   "},
	}

	mapped := render.MapErrorPayload(fields, payload)

	wantFields := map[string][]string{
		"cep":    {"CEP inválido"},
		"street": {"Informe a rua"},
		"number": {"Informe o número"},
		"phone":  {"Telefone incompleto"},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"Carrinho vazio", "Cupom expirado", "Tente novamente"}
	if diff := cmp.Diff(wantForm, mapped.Form, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}

	fieldErrors := mapped.FieldErrors()
	if diff := cmp.Diff(&input.FieldError{Message: "CEP inválido"}, fieldErrors["cep"]); diff != "" {
		t.Fatalf("field error mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayload_Empty(t *testing.T) {
	mapped := render.MapErrorPayload([]string{"cep"}, nil)
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("expected empty mapping, got %#v", mapped)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}
