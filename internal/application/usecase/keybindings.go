package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/domain/service"
	"github.com/bnema/linekeys/internal/domain/url"
	"github.com/bnema/linekeys/internal/logging"
)

// ErrInvalidKey is returned for key strings that parse to no key.
var ErrInvalidKey = errors.New("invalid key string")

// SetBindingRequest rebinds an action. An empty Site targets the global scope.
type SetBindingRequest struct {
	Action entity.ActionID
	Key    string
	Site   string
}

// EnableBindingRequest enables or disables an action.
type EnableBindingRequest struct {
	Action  entity.ActionID
	Site    string
	Enabled bool
}

// ResetBindingRequest drops an override. With a Site and no Action the whole
// site rule is removed.
type ResetBindingRequest struct {
	Action entity.ActionID
	Site   string
}

// SetBindingUseCase changes the key of an action.
type SetBindingUseCase struct {
	store port.SettingsStore
}

// NewSetBindingUseCase creates a new SetBindingUseCase.
func NewSetBindingUseCase(store port.SettingsStore) *SetBindingUseCase {
	return &SetBindingUseCase{store: store}
}

// Execute saves the new key and returns the conflicts it takes part in
// within the affected scope. Conflicts do not prevent the save.
func (uc *SetBindingUseCase) Execute(ctx context.Context, req SetBindingRequest) ([]service.Conflict, error) {
	if uc == nil || uc.store == nil {
		return nil, fmt.Errorf("settings store is nil")
	}

	site, err := validateBindingRequest(req.Action, req.Site)
	if err != nil {
		return nil, err
	}
	key, err := normalizeKeyString(req.Key)
	if err != nil {
		return nil, err
	}

	override := entity.BindingOverride{Key: entity.StringPtr(key)}
	if err := save(ctx, uc.store, site, req.Action, override); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info().
		Str("action", string(req.Action)).
		Str("key", key).
		Str("site", site).
		Msg("binding updated")

	table, err := scopeTable(ctx, uc.store, site)
	if err != nil {
		return nil, err
	}
	return service.ConflictsFor(service.DetectConflicts(table), req.Action), nil
}

// EnableBindingUseCase toggles an action on or off.
type EnableBindingUseCase struct {
	store port.SettingsStore
}

// NewEnableBindingUseCase creates a new EnableBindingUseCase.
func NewEnableBindingUseCase(store port.SettingsStore) *EnableBindingUseCase {
	return &EnableBindingUseCase{store: store}
}

// Execute persists the enabled flag.
func (uc *EnableBindingUseCase) Execute(ctx context.Context, req EnableBindingRequest) error {
	if uc == nil || uc.store == nil {
		return fmt.Errorf("settings store is nil")
	}

	site, err := validateBindingRequest(req.Action, req.Site)
	if err != nil {
		return err
	}

	override := entity.BindingOverride{Enabled: entity.BoolPtr(req.Enabled)}
	return save(ctx, uc.store, site, req.Action, override)
}

// ResetBindingUseCase restores an action to the value inherited from the
// next scope down.
type ResetBindingUseCase struct {
	store port.SettingsStore
}

// NewResetBindingUseCase creates a new ResetBindingUseCase.
func NewResetBindingUseCase(store port.SettingsStore) *ResetBindingUseCase {
	return &ResetBindingUseCase{store: store}
}

// Execute drops the override.
func (uc *ResetBindingUseCase) Execute(ctx context.Context, req ResetBindingRequest) error {
	if uc == nil || uc.store == nil {
		return fmt.Errorf("settings store is nil")
	}

	if req.Site != "" && req.Action == "" {
		site, err := url.NormalizeSitePattern(req.Site)
		if err != nil {
			return err
		}
		return uc.store.DeleteSite(ctx, site, "")
	}

	site, err := validateBindingRequest(req.Action, req.Site)
	if err != nil {
		return err
	}
	if site == "" {
		return uc.store.ResetGlobal(ctx, req.Action)
	}
	return uc.store.DeleteSite(ctx, site, req.Action)
}

// ResetAllBindingsUseCase drops every global override.
type ResetAllBindingsUseCase struct {
	store port.SettingsStore
}

// NewResetAllBindingsUseCase creates a new ResetAllBindingsUseCase.
func NewResetAllBindingsUseCase(store port.SettingsStore) *ResetAllBindingsUseCase {
	return &ResetAllBindingsUseCase{store: store}
}

// Execute resets all global overrides. Site rules are left alone.
func (uc *ResetAllBindingsUseCase) Execute(ctx context.Context) error {
	if uc == nil || uc.store == nil {
		return fmt.Errorf("settings store is nil")
	}

	snapshot, err := uc.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	for action := range snapshot.Global {
		if err := uc.store.ResetGlobal(ctx, action); err != nil {
			return fmt.Errorf("failed to reset %s: %w", action, err)
		}
	}
	return nil
}

// ListConflictsUseCase reports binding conflicts for a hostname.
type ListConflictsUseCase struct {
	store port.SettingsStore
}

// NewListConflictsUseCase creates a new ListConflictsUseCase.
func NewListConflictsUseCase(store port.SettingsStore) *ListConflictsUseCase {
	return &ListConflictsUseCase{store: store}
}

// Execute resolves the table for hostname and detects conflicts.
func (uc *ListConflictsUseCase) Execute(ctx context.Context, hostname string) ([]service.Conflict, error) {
	if uc == nil || uc.store == nil {
		return nil, fmt.Errorf("settings store is nil")
	}

	snapshot, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	table := service.ResolveBindings(entity.DefaultActions(), snapshot.Global, snapshot.Sites, hostname)
	return service.DetectConflicts(table), nil
}

func validateBindingRequest(action entity.ActionID, site string) (string, error) {
	if action == "" {
		return "", fmt.Errorf("action is required")
	}
	if _, ok := entity.LookupAction(action); !ok {
		return "", fmt.Errorf("%w: %s", entity.ErrUnknownAction, action)
	}
	if site == "" {
		return "", nil
	}
	return url.NormalizeSitePattern(site)
}

// normalizeKeyString validates every part of a key string and rewrites it in
// canonical form, so "ctrl+k  ctrl+x" is stored as "Ctrl+K Ctrl+X".
func normalizeKeyString(keyString string) (string, error) {
	parts := strings.Fields(keyString)
	if len(parts) == 0 || len(parts) > 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, keyString)
	}
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		combo := entity.ParseCombo(part)
		if combo.IsZero() {
			return "", fmt.Errorf("%w: %q", ErrInvalidKey, keyString)
		}
		out = append(out, combo.String())
	}
	return strings.Join(out, " "), nil
}

func save(ctx context.Context, store port.SettingsStore, site string, action entity.ActionID, override entity.BindingOverride) error {
	if site == "" {
		return store.SaveGlobal(ctx, action, override)
	}
	return store.SaveSite(ctx, site, action, override)
}

// scopeTable resolves the bindings that apply inside one scope. The global
// scope resolves with no site rule.
func scopeTable(ctx context.Context, store port.SettingsStore, site string) (*entity.EffectiveBindingTable, error) {
	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	sites := snapshot.Sites
	if site == "" {
		sites = nil
	}
	return service.ResolveBindings(entity.DefaultActions(), snapshot.Global, sites, site), nil
}
