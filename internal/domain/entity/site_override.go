package entity

import "time"

// SiteOverride is a persisted per-site override of one action.
// Pattern is an exact hostname or a "*.suffix" wildcard.
type SiteOverride struct {
	Pattern   string
	Action    ActionID
	Key       *string
	Enabled   *bool
	UpdatedAt time.Time
}

// Override returns the partial override carried by the row.
func (s SiteOverride) Override() BindingOverride {
	return BindingOverride{Key: s.Key, Enabled: s.Enabled}
}

// GroupSiteOverrides folds rows into pattern → action → override.
func GroupSiteOverrides(rows []SiteOverride) map[string]Overrides {
	out := make(map[string]Overrides)
	for _, row := range rows {
		site, ok := out[row.Pattern]
		if !ok {
			site = make(Overrides)
			out[row.Pattern] = site
		}
		site[row.Action] = site[row.Action].Merge(row.Override())
	}
	return out
}
