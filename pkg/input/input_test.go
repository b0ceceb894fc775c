package input_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-storefront/pkg/input"
	"github.com/goliatone/go-storefront/pkg/mask"
)

const phoneMask = "(00) 00000-0000"

func TestNew_SeedsInitialValueThroughMask(t *testing.T) {
	in, err := input.New(input.Config{
		Name:         "cpf",
		Mask:         "000.000.000-00",
		InitialValue: "123",
	}, nil)
	if err != nil {
		t.Fatalf("new input: %v", err)
	}

	want := mask.Value{Display: "123", Unmasked: "123"}
	if diff := cmp.Diff(want, in.Value()); diff != "" {
		t.Fatalf("seeded value mismatch (-want +got):\n%s", diff)
	}

	in, err = input.New(input.Config{Name: "phone", Mask: phoneMask, InitialValue: "11 987654321"}, nil)
	if err != nil {
		t.Fatalf("new input: %v", err)
	}
	if got := in.Display(); got != "(11) 98765-4321" {
		t.Fatalf("expected seeded value to conform to the mask, got %q", got)
	}
}

func TestNew_InvalidMask(t *testing.T) {
	if _, err := input.New(input.Config{Name: "bad", Mask: `0\`}, nil); err == nil {
		t.Fatalf("expected error for dangling escape")
	}
}

func TestOptionalHint(t *testing.T) {
	optional := input.MustNew(input.Config{Name: "complement", Optional: true}, nil)
	if !optional.ShowOptionalHint() {
		t.Fatalf("expected hint for empty optional input")
	}

	optional.Change("a")
	if optional.ShowOptionalHint() {
		t.Fatalf("hint must hide once a character is present")
	}
	if got := optional.View().OptionalHint; got != "" {
		t.Fatalf("view still carries hint %q", got)
	}

	optional.Change("")
	if !optional.ShowOptionalHint() {
		t.Fatalf("hint must reappear when the field is cleared")
	}
	if got := optional.View().OptionalHint; got != input.OptionalHint {
		t.Fatalf("unexpected hint text %q", got)
	}

	required := input.MustNew(input.Config{Name: "street"}, nil)
	if required.ShowOptionalHint() {
		t.Fatalf("non-optional input must never show the hint")
	}
}

func TestErrorMessageIsVerbatim(t *testing.T) {
	message := "  Informe o CEP  "
	in := input.MustNew(input.Config{Name: "cep", Error: &input.FieldError{Message: message}}, nil)

	if !in.Invalid() {
		t.Fatalf("expected input to be invalid")
	}
	if got := in.ErrorMessage(); got != message {
		t.Fatalf("expected verbatim message %q, got %q", message, got)
	}
	if view := in.View(); !view.Invalid || view.ErrorMessage != message {
		t.Fatalf("unexpected view error state: %#v", view)
	}

	in.SetError(nil)
	if in.Invalid() || in.ErrorMessage() != "" {
		t.Fatalf("expected error to be cleared")
	}

	in.SetError(&input.FieldError{})
	if in.Invalid() {
		t.Fatalf("empty message must not mark the input invalid")
	}
}

func TestCallbackIsLevelTriggered(t *testing.T) {
	var calls []string
	in, err := input.NewWithCallback(input.CallbackConfig{
		Config:        input.Config{Name: "phone", Mask: phoneMask},
		TriggerLength: 11,
		Callback: func(unmasked string) {
			calls = append(calls, unmasked)
		},
	}, nil)
	if err != nil {
		t.Fatalf("new input: %v", err)
	}

	edits := []string{"", "119", "1198765", "11987654321", "(11) 98765-4321", "1198765432"}
	wantLengths := []int{0, 3, 7, 11, 11, 10}
	for idx, raw := range edits {
		value := in.Change(raw)
		if got := len(value.Unmasked); got != wantLengths[idx] {
			t.Fatalf("edit %d: expected unmasked length %d, got %d", idx, wantLengths[idx], got)
		}
	}

	want := []string{"11987654321", "11987654321"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Fatalf("callback invocations mismatch (-want +got):\n%s", diff)
	}
}

func TestCallbackFiresOnSeed(t *testing.T) {
	var calls []string
	_, err := input.NewWithCallback(input.CallbackConfig{
		Config:        input.Config{Name: "cep", Mask: "00000-000", InitialValue: "01310100"},
		TriggerLength: 8,
		Callback:      func(v string) { calls = append(calls, v) },
	}, nil)
	if err != nil {
		t.Fatalf("new input: %v", err)
	}
	if diff := cmp.Diff([]string{"01310100"}, calls); diff != "" {
		t.Fatalf("seed callback mismatch (-want +got):\n%s", diff)
	}
}

func TestNewWithCallback_RequiresCallback(t *testing.T) {
	if _, err := input.NewWithCallback(input.CallbackConfig{Config: input.Config{Name: "cep"}}, nil); err == nil {
		t.Fatalf("expected error without callback")
	}
}

func TestMergeRefs_ResolveToSameField(t *testing.T) {
	var external input.FieldRef
	var viaFunc *input.Field

	in := input.MustNew(input.Config{Name: "phone", Mask: phoneMask}, input.MergeRefs(
		&external,
		input.RefFunc(func(f *input.Field) { viaFunc = f }),
		nil,
	))

	if external.Current() == nil {
		t.Fatalf("external ref was not assigned")
	}
	if external.Current() != in.Field() || viaFunc != in.Field() {
		t.Fatalf("refs resolve to different fields")
	}

	external.Current().SetValue("11987654321")
	if got := in.Unmasked(); got != "11987654321" {
		t.Fatalf("write through external ref not masked: %q", got)
	}
	if got := in.Field().Value(); got != "(11) 98765-4321" {
		t.Fatalf("internal handle sees %q", got)
	}

	external.Current().Focus()
	if !in.Field().Focused() || !in.View().Focused {
		t.Fatalf("focus through external ref not visible to the input")
	}
	in.Field().Blur()
	if external.Current().Focused() {
		t.Fatalf("blur through internal handle not visible to the caller")
	}
	if got := external.Current().ID(); got != "sf-phone" {
		t.Fatalf("unexpected control id %q", got)
	}
}

func TestChange_ConcurrentEditsKeepPairInSync(t *testing.T) {
	in := input.MustNew(input.Config{Name: "phone", Mask: phoneMask}, nil)
	m := mask.MustCompile(phoneMask)

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				in.Change(fmt.Sprintf("%d%d", worker, i))
				value := in.Value()
				if m.Apply(value.Display) != value {
					t.Errorf("torn pair observed: %#v", value)
					return
				}
			}
		}(worker)
	}
	wg.Wait()
}

func TestView(t *testing.T) {
	in := input.MustNew(input.Config{
		Name:        "uf",
		Label:       "UF",
		Mask:        "aa",
		RemWidth:    3.75,
		Optional:    true,
		Placeholder: "UF",
		Attrs:       map[string]string{"data-b": "2", "data-a": "1"},
	}, nil)

	want := input.View{
		ID:           "sf-uf",
		Name:         "uf",
		Label:        "UF",
		Type:         "text",
		Mask:         "aa",
		Width:        "3.75rem",
		Placeholder:  "UF",
		OptionalHint: input.OptionalHint,
		Attrs:        []input.Attr{{Key: "data-a", Value: "1"}, {Key: "data-b", Value: "2"}},
	}
	if diff := cmp.Diff(want, in.View()); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
}
