package cli

import (
	"fmt"
	"strings"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/cli/styles"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/domain/service"
	"github.com/bnema/linekeys/internal/domain/url"
)

// Source labels for KeyRows that do not come from a site rule.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
)

// KeyRows lists the bindings of table with the scope each value comes from.
// A row is attributed to the site rule matching the table's hostname when
// that rule overrides the action, else to the global overrides.
func KeyRows(table *entity.EffectiveBindingTable, snapshot port.SettingsSnapshot) []styles.KeyRow {
	pattern, hasSite := service.MatchSitePattern(snapshot.Sites, table.Hostname)

	bindings := table.Bindings()
	rows := make([]styles.KeyRow, 0, len(bindings))
	for _, b := range bindings {
		action, _ := entity.LookupAction(b.Action)

		source := SourceDefault
		switch {
		case hasSite && !snapshot.Sites[pattern][b.Action].IsEmpty():
			source = pattern
		case !snapshot.Global[b.Action].IsEmpty():
			source = SourceGlobal
		}

		rows = append(rows, styles.KeyRow{
			Action:      b.Action,
			Category:    action.Category,
			Description: action.Description,
			Key:         b.Key,
			Enabled:     b.Enabled,
			Source:      source,
		})
	}
	return rows
}

// HostFromArg accepts a URL or a bare hostname.
func HostFromArg(arg string) string {
	if arg == "" {
		return ""
	}
	return url.ExtractHostname(arg)
}

// ParseActionID checks that id names a catalog action.
func ParseActionID(id string) (entity.ActionID, error) {
	action := entity.ActionID(strings.TrimSpace(id))
	if _, ok := entity.LookupAction(action); !ok {
		return "", fmt.Errorf("%w: %s", entity.ErrUnknownAction, id)
	}
	return action, nil
}

// CanonicalKey rewrites each combo of a key string in canonical form.
func CanonicalKey(keyString string) string {
	parts := strings.Fields(keyString)
	for i, part := range parts {
		parts[i] = entity.ParseCombo(part).String()
	}
	return strings.Join(parts, " ")
}

// KeyEvents turns key strings such as "ctrl+k" or "Ctrl+K Ctrl+C" into the
// events a keyboard would produce on platform, one per combo.
func KeyEvents(args []string, platform entity.Platform) ([]entity.KeyEvent, error) {
	var events []entity.KeyEvent
	for _, arg := range args {
		for _, part := range strings.Fields(arg) {
			combo := entity.ParseCombo(part)
			if combo.IsZero() {
				return nil, fmt.Errorf("invalid key %q", part)
			}
			events = append(events, entity.EventFromCombo(combo, platform))
		}
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("no keys given")
	}
	return events, nil
}
