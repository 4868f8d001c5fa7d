package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
)

// GetConfigSchemaUseCase retrieves configuration schema information.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput contains input parameters for schema retrieval.
type GetConfigSchemaInput struct {
	// JSON requests the JSON schema document in addition to the key list.
	JSON bool
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
	JSON []byte
}

// Execute retrieves all configuration keys with their metadata.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	if uc == nil || uc.provider == nil {
		return nil, fmt.Errorf("config schema provider is nil")
	}

	out := &GetConfigSchemaOutput{Keys: uc.provider.GetSchema()}
	if input.JSON {
		data, err := uc.provider.JSONSchema()
		if err != nil {
			return nil, fmt.Errorf("failed to generate JSON schema: %w", err)
		}
		out.JSON = data
	}
	return out, nil
}
