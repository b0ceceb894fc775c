package mask_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-storefront/pkg/mask"
)

func TestApply(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		raw     string
		want    mask.Value
	}{
		{
			name:    "phone complete",
			pattern: "(00) 00000-0000",
			raw:     "11987654321",
			want:    mask.Value{Display: "(11) 98765-4321", Unmasked: "11987654321"},
		},
		{
			name:    "phone partial keeps trailing scaffolding out",
			pattern: "(00) 00000-0000",
			raw:     "119",
			want:    mask.Value{Display: "(11) 9", Unmasked: "119"},
		},
		{
			name:    "phone already formatted",
			pattern: "(00) 00000-0000",
			raw:     "(11) 98765-4321",
			want:    mask.Value{Display: "(11) 98765-4321", Unmasked: "11987654321"},
		},
		{
			name:    "typed literal is kept",
			pattern: "(00) 00000-0000",
			raw:     "(11)",
			want:    mask.Value{Display: "(11)", Unmasked: "11"},
		},
		{
			name:    "cep drops letters",
			pattern: "00000-000",
			raw:     "01a31b0-100",
			want:    mask.Value{Display: "01310-100", Unmasked: "01310100"},
		},
		{
			name:    "cpf partial",
			pattern: "000.000.000-00",
			raw:     "123",
			want:    mask.Value{Display: "123", Unmasked: "123"},
		},
		{
			name:    "overflow ignored",
			pattern: "00-00",
			raw:     "123456",
			want:    mask.Value{Display: "12-34", Unmasked: "1234"},
		},
		{
			name:    "letters only",
			pattern: "aa",
			raw:     "s1p",
			want:    mask.Value{Display: "sp", Unmasked: "sp"},
		},
		{
			name:    "any character",
			pattern: "**-**",
			raw:     "x1y2",
			want:    mask.Value{Display: "x1-y2", Unmasked: "x1y2"},
		},
		{
			name:    "escaped placeholder is literal",
			pattern: `\0-00`,
			raw:     "12",
			want:    mask.Value{Display: "0-12", Unmasked: "12"},
		},
		{
			name:    "static literal",
			pattern: "N/A",
			raw:     "z",
			want:    mask.Value{Display: "N/A"},
		},
		{
			name:    "static literal with empty input",
			pattern: "N/A",
			raw:     "",
			want:    mask.Value{},
		},
		{
			name:    "empty pattern passes through",
			pattern: "",
			raw:     "Rua Augusta, 12",
			want:    mask.Value{Display: "Rua Augusta, 12", Unmasked: "Rua Augusta, 12"},
		},
		{
			name:    "nothing accepted",
			pattern: "000",
			raw:     "abc",
			want:    mask.Value{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mask.Resolve(tc.pattern, tc.raw)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("value mismatch (-want +got):\n%s", diff)
			}
			if len([]rune(got.Unmasked)) > len([]rune(got.Display)) {
				t.Fatalf("unmasked %q longer than display %q", got.Unmasked, got.Display)
			}
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	m := mask.MustCompile("(00) 00000-0000")
	for _, raw := range []string{"", "1", "(11) 9", "11 98765 4321", "abc"} {
		first := m.Apply(raw)
		second := m.Apply(raw)
		if first != second {
			t.Fatalf("apply(%q) not stable: %#v vs %#v", raw, first, second)
		}
		if again := m.Apply(first.Display); again != first {
			t.Fatalf("re-masking display of %q changed value: %#v vs %#v", raw, first, again)
		}
	}
}

func TestCompile_DanglingEscape(t *testing.T) {
	_, err := mask.Compile(`00\`)
	if !errors.Is(err, mask.ErrDanglingEscape) {
		t.Fatalf("expected ErrDanglingEscape, got %v", err)
	}
}

func TestMask_PlaceholdersAndComplete(t *testing.T) {
	m := mask.MustCompile("00000-000")
	if got := m.Placeholders(); got != 8 {
		t.Fatalf("expected 8 placeholders, got %d", got)
	}
	if m.Complete(m.Apply("0131")) {
		t.Fatalf("partial value reported complete")
	}
	if !m.Complete(m.Apply("01310100")) {
		t.Fatalf("full value reported incomplete")
	}
	if got := m.Unmask("01310-100"); got != "01310100" {
		t.Fatalf("unexpected unmask result %q", got)
	}
}
