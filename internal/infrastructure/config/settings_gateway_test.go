package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/domain/repository/mocks"
)

func TestSettingsGateway_LoadMergesConfigAndSites(t *testing.T) {
	setupXDG(t)
	mgr := loadManager(t)
	require.NoError(t, mgr.Save(func() *Config {
		cfg := mgr.Get()
		cfg.Bindings["cut-line"] = BindingEntry{Key: entity.StringPtr("Ctrl+X"), Enabled: entity.BoolPtr(false)}
		cfg.Bindings["copy-line"] = BindingEntry{Key: entity.StringPtr("Ctrl+Shift+C"), IsCustom: true}
		return cfg
	}()))

	sites := mocks.NewMockSiteOverrideRepository(t)
	sites.EXPECT().List(mock.Anything).Return([]entity.SiteOverride{
		{Pattern: "docs.google.com", Action: entity.ActionCutLine, Enabled: entity.BoolPtr(true)},
	}, nil)

	snapshot, err := NewSettingsGateway(mgr, sites).Load(context.Background())

	require.NoError(t, err)
	assert.True(t, snapshot.Enabled)

	cut := snapshot.Global[entity.ActionCutLine]
	assert.Nil(t, cut.Key, "default key is not pinned")
	require.NotNil(t, cut.Enabled)
	assert.False(t, *cut.Enabled)

	copyOverride := snapshot.Global[entity.ActionCopyLine]
	require.NotNil(t, copyOverride.Key)
	assert.Equal(t, "Ctrl+Shift+C", *copyOverride.Key)

	require.Contains(t, snapshot.Sites, "docs.google.com")
	assert.True(t, *snapshot.Sites["docs.google.com"][entity.ActionCutLine].Enabled)
}

func TestSettingsGateway_LoadWithoutSiteRepository(t *testing.T) {
	setupXDG(t)

	snapshot, err := NewSettingsGateway(loadManager(t), nil).Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, snapshot.Global)
	assert.Nil(t, snapshot.Sites)
}

func TestSettingsGateway_LoadSiteError(t *testing.T) {
	setupXDG(t)
	sites := mocks.NewMockSiteOverrideRepository(t)
	sites.EXPECT().List(mock.Anything).Return(nil, errors.New("disk gone"))

	_, err := NewSettingsGateway(loadManager(t), sites).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestSettingsGateway_SaveAndResetGlobal(t *testing.T) {
	setupXDG(t)
	ctx := context.Background()
	mgr := loadManager(t)
	gw := NewSettingsGateway(mgr, nil)

	require.NoError(t, gw.SaveGlobal(ctx, entity.ActionMoveLineUp, entity.BindingOverride{Enabled: entity.BoolPtr(false)}))
	require.NoError(t, gw.SaveGlobal(ctx, entity.ActionMoveLineUp, entity.BindingOverride{Key: entity.StringPtr("alt+k")}))

	entry := mgr.Get().Bindings["move-line-up"]
	require.NotNil(t, entry.Enabled)
	assert.False(t, *entry.Enabled, "earlier fields survive a merge")
	require.NotNil(t, entry.Key)
	assert.Equal(t, "Alt+K", *entry.Key)
	assert.True(t, entry.IsCustom)

	snapshot, err := gw.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alt+K", *snapshot.Global[entity.ActionMoveLineUp].Key)

	require.NoError(t, gw.ResetGlobal(ctx, entity.ActionMoveLineUp))
	snapshot, err = gw.Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, snapshot.Global, entity.ActionMoveLineUp)
}

func TestSettingsGateway_SaveGlobalUnknownAction(t *testing.T) {
	setupXDG(t)

	err := NewSettingsGateway(loadManager(t), nil).SaveGlobal(context.Background(), "make-coffee", entity.BindingOverride{})

	assert.ErrorIs(t, err, entity.ErrUnknownAction)
}

func TestSettingsGateway_SaveSiteMergesExisting(t *testing.T) {
	ctx := context.Background()
	sites := mocks.NewMockSiteOverrideRepository(t)
	sites.EXPECT().Get(mock.Anything, "*.google.com", entity.ActionCutLine).Return(&entity.SiteOverride{
		Pattern: "*.google.com",
		Action:  entity.ActionCutLine,
		Enabled: entity.BoolPtr(false),
	}, nil)
	sites.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(o *entity.SiteOverride) bool {
		return o.Pattern == "*.google.com" &&
			o.Action == entity.ActionCutLine &&
			o.Key != nil && *o.Key == "Ctrl+Shift+X" &&
			o.Enabled != nil && !*o.Enabled &&
			!o.UpdatedAt.IsZero()
	})).Return(nil)

	err := NewSettingsGateway(nil, sites).SaveSite(ctx, "*.google.com", entity.ActionCutLine,
		entity.BindingOverride{Key: entity.StringPtr("ctrl+shift+x")})

	require.NoError(t, err)
}

func TestSettingsGateway_DeleteSite(t *testing.T) {
	ctx := context.Background()
	sites := mocks.NewMockSiteOverrideRepository(t)
	sites.EXPECT().Delete(mock.Anything, "example.com", entity.ActionCopyLine).Return(nil)
	sites.EXPECT().DeletePattern(mock.Anything, "example.com").Return(nil)
	gw := NewSettingsGateway(nil, sites)

	require.NoError(t, gw.DeleteSite(ctx, "example.com", entity.ActionCopyLine))
	require.NoError(t, gw.DeleteSite(ctx, "example.com", ""))
}

func TestSettingsGateway_NilDependencies(t *testing.T) {
	ctx := context.Background()
	gw := NewSettingsGateway(nil, nil)

	_, err := gw.Load(ctx)
	assert.EqualError(t, err, "config manager is nil")
	assert.EqualError(t, gw.SaveSite(ctx, "example.com", entity.ActionCutLine, entity.BindingOverride{}), "site override repository is nil")
	assert.EqualError(t, gw.DeleteSite(ctx, "example.com", ""), "site override repository is nil")
}
