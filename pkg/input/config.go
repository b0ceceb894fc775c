package input

import "strings"

// OptionalHint is the text shown next to an empty optional input.
const OptionalHint = "Opcional"

// DefaultRemWidth is used when Config.RemWidth is not positive.
const DefaultRemWidth = 12.5

// FieldError is a validation failure attached by the surrounding form. The
// message is displayed verbatim.
type FieldError struct {
	Message string `json:"message"`
}

// Present reports whether err carries a message worth displaying.
func (err *FieldError) Present() bool {
	return err != nil && strings.TrimSpace(err.Message) != ""
}

// Config describes a masked input. The zero value is usable: no mask, not
// optional, empty initial value, type "text".
type Config struct {
	Name     string
	Label    string
	Mask     string
	RemWidth float64
	Optional bool
	Error    *FieldError
	// InitialValue seeds the display value once, through the mask, when the
	// input is built.
	InitialValue string

	Type         string
	Placeholder  string
	AutoComplete string
	InputMode    string
	Required     bool
	Disabled     bool
	ReadOnly     bool
	// Attrs carries any other attribute to copy onto the control.
	Attrs map[string]string
}

// CallbackConfig adds the length-triggered callback to Config.
type CallbackConfig struct {
	Config
	// Callback receives the unmasked value every time its length equals
	// TriggerLength, including repeated edits that stay at that length.
	Callback      func(unmasked string)
	TriggerLength int
}

func normalizeConfig(cfg Config) Config {
	cfg.Name = strings.TrimSpace(cfg.Name)
	if strings.TrimSpace(cfg.Type) == "" {
		cfg.Type = "text"
	}
	if cfg.RemWidth <= 0 {
		cfg.RemWidth = DefaultRemWidth
	}
	if len(cfg.Attrs) > 0 {
		attrs := make(map[string]string, len(cfg.Attrs))
		for key, value := range cfg.Attrs {
			if key = strings.TrimSpace(key); key != "" {
				attrs[key] = value
			}
		}
		cfg.Attrs = attrs
	}
	if cfg.Error != nil {
		copied := *cfg.Error
		cfg.Error = &copied
	}
	return cfg
}
