package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-storefront/pkg/render/template/gotemplate"
	"github.com/goliatone/go-storefront/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
		"shop":     "  Coffee Delivery ",
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-global.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-filter.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_EscapesAndStructs(t *testing.T) {
	engine := newEngine(t)

	out, err := engine.RenderTemplate("escape", map[string]any{"body": "<b>café</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<p>&lt;b&gt;café&lt;/b&gt;</p>\n" {
		t.Fatalf("expected escaped output, got %q", out)
	}

	type card struct {
		Name string `json:"name"`
	}
	out, err = engine.Render("{{ item.name }}", map[string]any{"item": card{Name: "Latte"}})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "Latte" {
		t.Fatalf("expected struct to be addressed by json tag, got %q", out)
	}
}

func TestGoTemplateEngine_MoneyFilter(t *testing.T) {
	engine := newEngine(t)

	type card struct {
		PriceCents int64 `json:"priceCents"`
	}
	cases := map[string]any{
		"9,90":     map[string]any{"cents": 990},
		"1.234,56": map[string]any{"cents": int64(123456)},
		"0,05":     map[string]any{"cents": card{PriceCents: 5}},
	}
	for want, data := range cases {
		tpl := "{{ cents|money }}"
		if _, ok := data.(map[string]any)["cents"].(card); ok {
			tpl = "{{ cents.priceCents|money }}"
		}
		out, err := engine.Render(tpl, data)
		if err != nil {
			t.Fatalf("render %v: %v", data, err)
		}
		if out != want {
			t.Fatalf("money(%v) = %q, want %q", data, out, want)
		}
	}

	if _, err := engine.Render("{{ cents|money }}", map[string]any{"cents": "abc"}); err == nil {
		t.Fatalf("expected error for non-numeric cents")
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template source")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
