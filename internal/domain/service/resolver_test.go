package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linekeys/internal/domain/entity"
)

func lookup(t *testing.T, table *entity.EffectiveBindingTable, id entity.ActionID) entity.EffectiveBinding {
	t.Helper()
	b, ok := table.Lookup(id)
	require.True(t, ok, "missing %s", id)
	return b
}

func TestResolveBindings_Defaults(t *testing.T) {
	table := ResolveBindings(entity.DefaultActions(), nil, nil, "example.com")

	cut := lookup(t, table, entity.ActionCutLine)
	assert.Equal(t, "Ctrl+X", cut.Key)
	assert.True(t, cut.Enabled)
	assert.False(t, cut.IsChord)

	add := lookup(t, table, entity.ActionAddLineComment)
	assert.True(t, add.IsChord)

	assert.False(t, lookup(t, table, entity.ActionTransformUppercase).Enabled)
	assert.Len(t, table.Bindings(), len(entity.DefaultActions()))
}

func TestResolveBindings_Precedence(t *testing.T) {
	global := entity.Overrides{
		entity.ActionCutLine:    {Key: entity.StringPtr("Ctrl+Shift+X")},
		entity.ActionCopyLine:   {Enabled: entity.BoolPtr(false)},
		entity.ActionDeleteLine: {Key: entity.StringPtr("Ctrl+K Ctrl+K")},
	}
	sites := map[string]entity.Overrides{
		"docs.google.com": {
			entity.ActionCutLine: {Enabled: entity.BoolPtr(false)},
		},
		"*.google.com": {
			entity.ActionCutLine: {Key: entity.StringPtr("Alt+X")},
		},
		"*.com": {
			entity.ActionCopyLine: {Enabled: entity.BoolPtr(true)},
		},
	}

	t.Run("exact site wins over wildcard", func(t *testing.T) {
		table := ResolveBindings(entity.DefaultActions(), global, sites, "docs.google.com")
		cut := lookup(t, table, entity.ActionCutLine)
		assert.False(t, cut.Enabled)
		// key inherited from global since the exact rule leaves it unset
		assert.Equal(t, "Ctrl+Shift+X", cut.Key)
		// the *.com rule does not apply once an exact rule matched
		assert.False(t, lookup(t, table, entity.ActionCopyLine).Enabled)
	})

	t.Run("most specific wildcard", func(t *testing.T) {
		table := ResolveBindings(entity.DefaultActions(), global, sites, "mail.google.com")
		cut := lookup(t, table, entity.ActionCutLine)
		assert.True(t, cut.Enabled)
		assert.Equal(t, "Alt+X", cut.Key)
	})

	t.Run("broad wildcard", func(t *testing.T) {
		table := ResolveBindings(entity.DefaultActions(), global, sites, "example.com")
		assert.True(t, lookup(t, table, entity.ActionCopyLine).Enabled)
	})

	t.Run("no site rule", func(t *testing.T) {
		table := ResolveBindings(entity.DefaultActions(), global, sites, "localhost")
		assert.Equal(t, "Ctrl+Shift+X", lookup(t, table, entity.ActionCutLine).Key)
		assert.False(t, lookup(t, table, entity.ActionCopyLine).Enabled)
	})

	t.Run("chord flag recomputed", func(t *testing.T) {
		table := ResolveBindings(entity.DefaultActions(), global, sites, "localhost")
		assert.True(t, lookup(t, table, entity.ActionDeleteLine).IsChord)
	})
}

func TestResolveBindings_Deterministic(t *testing.T) {
	sites := map[string]entity.Overrides{"*.example.com": {entity.ActionCutLine: {Enabled: entity.BoolPtr(false)}}}
	a := ResolveBindings(entity.DefaultActions(), nil, sites, "A.Example.com.")
	b := ResolveBindings(entity.DefaultActions(), nil, sites, "a.example.com")
	assert.Equal(t, a.Bindings(), b.Bindings())
	assert.Equal(t, "a.example.com", a.Hostname)
}

func TestMatchSitePattern(t *testing.T) {
	sites := map[string]entity.Overrides{"*.google.com": {}, "example.com": {}}

	p, ok := MatchSitePattern(sites, "docs.google.com")
	assert.True(t, ok)
	assert.Equal(t, "*.google.com", p)

	_, ok = MatchSitePattern(sites, "google.com")
	assert.False(t, ok)

	_, ok = MatchSitePattern(sites, "")
	assert.False(t, ok)
}
