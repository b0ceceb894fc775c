package input

import (
	"slices"
	"strconv"
)

// Attr is a single extra control attribute in render order.
type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// View is a render snapshot of an Input. Field names are stable because the
// template layer consumes the JSON form.
type View struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Label        string `json:"label,omitempty"`
	Type         string `json:"type"`
	Mask         string `json:"mask,omitempty"`
	Display      string `json:"display"`
	Unmasked     string `json:"unmasked"`
	Width        string `json:"width"`
	Placeholder  string `json:"placeholder,omitempty"`
	AutoComplete string `json:"autocomplete,omitempty"`
	InputMode    string `json:"inputmode,omitempty"`
	Required     bool   `json:"required"`
	Disabled     bool   `json:"disabled"`
	ReadOnly     bool   `json:"readonly"`
	Focused      bool   `json:"focused"`
	Invalid      bool   `json:"invalid"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	OptionalHint string `json:"optionalHint,omitempty"`
	Attrs        []Attr `json:"attrs,omitempty"`
}

// View captures the input's current state under a single lock so the value
// pair, error and focus belong to the same moment.
func (in *Input) View() View {
	in.mu.Lock()
	value := in.value
	err := in.err
	focused := in.focused
	in.mu.Unlock()

	cfg := in.cfg
	view := View{
		ID:           in.field.ID(),
		Name:         cfg.Name,
		Label:        cfg.Label,
		Type:         cfg.Type,
		Mask:         cfg.Mask,
		Display:      value.Display,
		Unmasked:     value.Unmasked,
		Width:        strconv.FormatFloat(cfg.RemWidth, 'f', -1, 64) + "rem",
		Placeholder:  cfg.Placeholder,
		AutoComplete: cfg.AutoComplete,
		InputMode:    cfg.InputMode,
		Required:     cfg.Required,
		Disabled:     cfg.Disabled,
		ReadOnly:     cfg.ReadOnly,
		Focused:      focused,
	}
	if err.Present() {
		view.Invalid = true
		view.ErrorMessage = err.Message
	}
	if cfg.Optional && value.Empty() {
		view.OptionalHint = OptionalHint
	}
	if len(cfg.Attrs) > 0 {
		keys := make([]string, 0, len(cfg.Attrs))
		for key := range cfg.Attrs {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			view.Attrs = append(view.Attrs, Attr{Key: key, Value: cfg.Attrs[key]})
		}
	}
	return view
}
