package checkout

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-storefront/pkg/input"
)

func newForm(t *testing.T, options ...Option) *Form {
	t.Helper()
	form, err := New(options...)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	return form
}

func completeValues() map[string]string {
	return map[string]string{
		FieldCEP:        "01310-100",
		FieldStreet:     "Avenida Paulista",
		FieldNumber:     "1578",
		FieldComplement: "",
		FieldDistrict:   "Bela Vista",
		FieldCity:       "São Paulo",
		FieldUF:         "SP",
		FieldPhone:      "(11) 98765-4321",
	}
}

func TestNew_InputsInRenderOrder(t *testing.T) {
	form := newForm(t)

	var names []string
	for _, in := range form.Inputs() {
		names = append(names, in.Name())
	}
	if diff := cmp.Diff(FieldNames(), names); diff != "" {
		t.Fatalf("input order mismatch (-want +got):\n%s", diff)
	}

	complement, _ := form.Input(FieldComplement)
	if !complement.ShowOptionalHint() {
		t.Fatalf("expected optional hint on empty complement")
	}
	cep, _ := form.Input(FieldCEP)
	if cep.Config().Mask != MaskCEP {
		t.Fatalf("unexpected cep mask %q", cep.Config().Mask)
	}
}

func TestApply_CompleteCEPPrefillsAddress(t *testing.T) {
	form := newForm(t)

	form.Apply(map[string]string{FieldCEP: "01310100"})

	cep, _ := form.Input(FieldCEP)
	if cep.Display() != "01310-100" {
		t.Fatalf("unexpected cep display %q", cep.Display())
	}

	got := form.Values()
	want := map[string]string{
		FieldCEP:        "01310100",
		FieldStreet:     "Avenida Paulista",
		FieldNumber:     "",
		FieldComplement: "",
		FieldDistrict:   "Bela Vista",
		FieldCity:       "São Paulo",
		FieldUF:         "SP",
		FieldPhone:      "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_UnknownCEPLeavesAddressBlank(t *testing.T) {
	form := newForm(t)
	form.Apply(map[string]string{FieldCEP: "99999-999"})

	values := form.Values()
	if values[FieldStreet] != "" || values[FieldCity] != "" {
		t.Fatalf("expected no prefill, got %#v", values)
	}
}

func TestLookup_LevelTriggered(t *testing.T) {
	var calls atomic.Int32
	form := newForm(t, WithDirectory(DirectoryFunc(func(cep string) (Address, bool) {
		calls.Add(1)
		return Address{CEP: cep, City: "Campinas", UF: "SP"}, true
	})))

	cep, _ := form.Input(FieldCEP)
	cep.Change("1301000")
	if calls.Load() != 0 {
		t.Fatalf("lookup ran before the cep was complete")
	}
	cep.Change("13010000")
	cep.Change("130100001")
	if calls.Load() != 2 {
		t.Fatalf("expected a lookup per complete update, got %d", calls.Load())
	}

	city, _ := form.Input(FieldCity)
	if city.Unmasked() != "Campinas" {
		t.Fatalf("expected prefilled city, got %q", city.Unmasked())
	}
}

func TestWithValues_SeedsAfterLookup(t *testing.T) {
	form := newForm(t, WithValues(map[string]string{
		FieldCEP:    "20040-020",
		FieldNumber: "10",
		FieldStreet: "",
	}))

	values := form.Values()
	if values[FieldCity] != "Rio de Janeiro" || values[FieldStreet] != "Avenida Rio Branco" {
		t.Fatalf("expected prefilled address, got %#v", values)
	}
	if values[FieldNumber] != "10" {
		t.Fatalf("expected seeded number, got %q", values[FieldNumber])
	}
}

func TestSubmit_Valid(t *testing.T) {
	form := newForm(t, WithAction("/checkout"))

	result, err := form.Submit(context.Background(), completeValues())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid submission, got %#v", result.Errors)
	}
	if result.Values[FieldPhone] != "11987654321" {
		t.Fatalf("expected unmasked phone, got %q", result.Values[FieldPhone])
	}

	rendered := form.Render()
	if rendered.Notice != NoticeConfirmed || rendered.Action != "/checkout" || rendered.ID != FormID {
		t.Fatalf("unexpected render form %#v", rendered)
	}
	for _, in := range rendered.Inputs {
		if in.Invalid() {
			t.Fatalf("input %q unexpectedly invalid", in.Name())
		}
	}
}

func TestSubmit_ReportsMissingFieldsAfterPrefill(t *testing.T) {
	form := newForm(t)

	result, err := form.Submit(context.Background(), map[string]string{
		FieldCEP:      "01310100",
		FieldStreet:   "",
		FieldNumber:   "",
		FieldDistrict: "",
		FieldCity:     "",
		FieldUF:       "",
		FieldPhone:    "",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Valid {
		t.Fatalf("expected invalid submission")
	}

	want := map[string][]string{
		FieldNumber: {"Informe o número"},
		FieldPhone:  {"Informe o telefone"},
	}
	if diff := cmp.Diff(want, result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	number, _ := form.Input(FieldNumber)
	if number.ErrorMessage() != "Informe o número" {
		t.Fatalf("expected error on number input, got %q", number.ErrorMessage())
	}
	if form.Render().Notice != "" {
		t.Fatalf("no notice expected on invalid submission")
	}
}

func TestSubmit_ClearsErrorsOnResubmit(t *testing.T) {
	form := newForm(t)

	values := completeValues()
	values[FieldPhone] = "1234"
	result, err := form.Submit(context.Background(), values)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := result.Errors[FieldPhone]; len(got) != 1 || got[0] != "Telefone inválido" {
		t.Fatalf("unexpected phone errors %v", got)
	}

	if _, err := form.Submit(context.Background(), completeValues()); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	phone, _ := form.Input(FieldPhone)
	if phone.Invalid() {
		t.Fatalf("expected phone error cleared")
	}
}

func TestSubmit_CanceledContext(t *testing.T) {
	form := newForm(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := form.Submit(ctx, completeValues()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWithRef_ReceivesField(t *testing.T) {
	var ref input.FieldRef
	form := newForm(t, WithRef(FieldPhone, &ref))

	phone, _ := form.Input(FieldPhone)
	if ref.Current() == nil || ref.Current() != phone.Field() {
		t.Fatalf("expected ref to resolve to the phone field")
	}
}

func TestLoadDirectory(t *testing.T) {
	if _, err := LoadDirectory(strings.NewReader("- street: Sem CEP\n")); err == nil {
		t.Fatalf("expected error for entry without cep")
	}
	if _, err := LoadDirectory(strings.NewReader("- cep: \"1\"\n  bogus: x\n")); err == nil {
		t.Fatalf("expected error for unknown key")
	}

	addr, ok := DefaultDirectory().Lookup("01310100")
	if !ok || addr.City != "São Paulo" {
		t.Fatalf("expected bundled address, got %#v", addr)
	}
}
