package service

import (
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/domain/url"
)

// ResolveBindings merges the catalog defaults with global and per-site
// overrides for hostname. Site rules are looked up by exact hostname first,
// then by the most specific "*.suffix" wildcard.
func ResolveBindings(
	catalog []entity.ActionConfig,
	global entity.Overrides,
	sites map[string]entity.Overrides,
	hostname string,
) *entity.EffectiveBindingTable {
	host := url.NormalizeHostname(hostname)
	site := matchSite(sites, host)

	bindings := make([]entity.EffectiveBinding, 0, len(catalog))
	for _, action := range catalog {
		key := action.DefaultKey
		enabled := action.DefaultEnabled

		for _, o := range []entity.BindingOverride{global[action.ID], site[action.ID]} {
			if o.Key != nil {
				key = *o.Key
			}
			if o.Enabled != nil {
				enabled = *o.Enabled
			}
		}

		bindings = append(bindings, entity.EffectiveBinding{
			Action:  action.ID,
			Key:     key,
			Enabled: enabled,
			IsChord: entity.IsChordKey(key),
		})
	}

	return entity.NewEffectiveBindingTable(host, bindings)
}

// MatchSitePattern returns the site rule key that applies to hostname, if any.
func MatchSitePattern(sites map[string]entity.Overrides, hostname string) (string, bool) {
	host := url.NormalizeHostname(hostname)
	if host == "" {
		return "", false
	}
	if _, ok := sites[host]; ok {
		return host, true
	}
	for _, candidate := range url.WildcardCandidates(host) {
		if _, ok := sites[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}

func matchSite(sites map[string]entity.Overrides, host string) entity.Overrides {
	pattern, ok := MatchSitePattern(sites, host)
	if !ok {
		return nil
	}
	return sites[pattern]
}
