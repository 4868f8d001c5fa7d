// Package repository declares persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/bnema/linekeys/internal/domain/entity"
)

// SiteOverrideRepository persists per-site binding overrides.
type SiteOverrideRepository interface {
	// Get retrieves the override of action for pattern.
	// Returns nil if none is stored.
	Get(ctx context.Context, pattern string, action entity.ActionID) (*entity.SiteOverride, error)

	// List retrieves every stored override ordered by pattern then action.
	List(ctx context.Context) ([]entity.SiteOverride, error)

	// ListPattern retrieves the overrides of one site rule.
	ListPattern(ctx context.Context, pattern string) ([]entity.SiteOverride, error)

	// Upsert saves or replaces an override.
	Upsert(ctx context.Context, override *entity.SiteOverride) error

	// Delete removes the override of action for pattern.
	Delete(ctx context.Context, pattern string, action entity.ActionID) error

	// DeletePattern removes every override of a site rule.
	DeletePattern(ctx context.Context, pattern string) error
}
