package entity

// ConfigKeyInfo documents one config key for `linekeys config schema`.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "editor.chord_timeout_ms" or "bindings.cut-line.key".
	Key string `json:"key"`

	// Type is the Go type name of the value.
	Type string `json:"type"`

	// Default is the default value rendered as text.
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists accepted values of enum-like strings.
	Values []string `json:"values,omitempty"`

	// Range is an inclusive numeric bound such as "100-10000".
	Range string `json:"range,omitempty"`

	// Section is the TOML table the key lives in ("Editor", "Bindings", ...).
	Section string `json:"section"`
}
