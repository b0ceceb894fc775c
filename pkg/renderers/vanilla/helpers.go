package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

func sanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.ContainsAny(token, `"'<>`) {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}

func cloneStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

type cssVar struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// themeContext flattens a go-theme renderer config into template data. CSS
// variables are sorted and anything that could escape a style block is
// dropped.
func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}

	names := make([]string, 0, len(cfg.CSSVars))
	for name := range cfg.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make([]cssVar, 0, len(names))
	for _, name := range names {
		key := strings.TrimSpace(name)
		value := strings.TrimSpace(cfg.CSSVars[name])
		if key == "" || value == "" || !safeCSSToken(key) || !safeCSSToken(value) {
			continue
		}
		if !strings.HasPrefix(key, "--") {
			key = "--" + key
		}
		vars = append(vars, cssVar{Key: key, Value: value})
	}

	return map[string]any{
		"name":    strings.TrimSpace(cfg.Theme),
		"variant": strings.TrimSpace(cfg.Variant),
		"cssVars": vars,
	}
}

func safeCSSToken(value string) bool {
	return !strings.ContainsAny(value, "<>{};")
}
