package port

import "github.com/bnema/linekeys/internal/domain/entity"

// ConfigSchemaProvider provides configuration schema information.
type ConfigSchemaProvider interface {
	// GetSchema returns all configuration keys with their metadata.
	GetSchema() []entity.ConfigKeyInfo

	// JSONSchema returns the JSON schema of the config file.
	JSONSchema() ([]byte, error)
}
