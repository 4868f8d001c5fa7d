package port

// ConfigTransformer transforms legacy settings formats to the current format.
type ConfigTransformer interface {
	// TransformLegacyBindings converts boolean-only binding entries
	// (`cut-line = false`) into full entries. Modifies rawBindings in place
	// and returns the number of entries rewritten.
	TransformLegacyBindings(rawBindings map[string]any) int
}
