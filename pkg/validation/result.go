package validation

import (
	"strings"

	"github.com/goliatone/go-storefront/pkg/input"
)

// Issue is a single validation failure. Field is empty for failures that
// belong to the submission as a whole.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures validation outcomes in schema order.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// FormKey is the Errors key used for issues without a field.
const FormKey = "form"

// Errors groups messages by field name. Issues without a field are listed
// under FormKey.
func (r Result) Errors() map[string][]string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string][]string, len(r.Issues))
	for _, issue := range r.Issues {
		key := issue.Field
		if key == "" {
			key = FormKey
		}
		out[key] = appendUnique(out[key], issue.Message)
	}
	return out
}

// FieldErrors returns the first message of every field as the FieldError the
// matching input displays.
func (r Result) FieldErrors() map[string]*input.FieldError {
	out := make(map[string]*input.FieldError)
	for _, issue := range r.Issues {
		if issue.Field == "" {
			continue
		}
		if _, exists := out[issue.Field]; exists {
			continue
		}
		out[issue.Field] = &input.FieldError{Message: issue.Message}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func appendUnique(list []string, message string) []string {
	message = strings.TrimSpace(message)
	if message == "" {
		return list
	}
	for _, existing := range list {
		if existing == message {
			return list
		}
	}
	return append(list, message)
}

func pointerString(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.ReplaceAll(segment, "~", "~0")
		segment = strings.ReplaceAll(segment, "/", "~1")
		escaped = append(escaped, segment)
	}
	return "/" + strings.Join(escaped, "/")
}
