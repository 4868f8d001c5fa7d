package entity

import (
	"errors"
	"strings"
)

// ErrUnknownAction is returned when an action ID is not in the catalog.
var ErrUnknownAction = errors.New("unknown action")

// BindingOverride is a partial override at global or site scope.
// Nil fields inherit from the next broader scope.
type BindingOverride struct {
	Key     *string
	Enabled *bool
}

// IsEmpty reports whether the override sets nothing.
func (o BindingOverride) IsEmpty() bool {
	return o.Key == nil && o.Enabled == nil
}

// Merge returns o with the fields set in other applied on top.
func (o BindingOverride) Merge(other BindingOverride) BindingOverride {
	if other.Key != nil {
		o.Key = other.Key
	}
	if other.Enabled != nil {
		o.Enabled = other.Enabled
	}
	return o
}

// Overrides maps actions to partial overrides.
type Overrides map[ActionID]BindingOverride

// EffectiveBinding is the resolved binding of one action for one hostname.
type EffectiveBinding struct {
	Action  ActionID
	Key     string
	Enabled bool
	IsChord bool
}

// SimpleBinding is an enabled single-combo binding.
type SimpleBinding struct {
	Action ActionID
	Combo  KeyCombo
}

// ChordBinding is an enabled two-part binding.
type ChordBinding struct {
	Action    ActionID
	PrefixKey string
	Prefix    KeyCombo
	Second    KeyCombo
}

// EffectiveBindingTable is the resolved, read-only set of bindings for a hostname.
// Bindings keep catalog order.
type EffectiveBindingTable struct {
	Hostname string

	bindings []EffectiveBinding
	simple   []SimpleBinding
	chords   []ChordBinding
}

// NewEffectiveBindingTable pre-parses bindings into simple and chord lists.
func NewEffectiveBindingTable(hostname string, bindings []EffectiveBinding) *EffectiveBindingTable {
	t := &EffectiveBindingTable{
		Hostname: hostname,
		bindings: append([]EffectiveBinding(nil), bindings...),
	}
	for _, b := range t.bindings {
		if !b.Enabled || strings.TrimSpace(b.Key) == "" {
			continue
		}
		if b.IsChord {
			prefix, second, _ := SplitChord(b.Key)
			prefixCombo := ParseCombo(prefix)
			t.chords = append(t.chords, ChordBinding{
				Action:    b.Action,
				PrefixKey: prefixCombo.String(),
				Prefix:    prefixCombo,
				Second:    ParseCombo(second),
			})
			continue
		}
		t.simple = append(t.simple, SimpleBinding{Action: b.Action, Combo: ParseCombo(b.Key)})
	}
	return t
}

// Bindings returns all bindings, enabled or not, in catalog order.
func (t *EffectiveBindingTable) Bindings() []EffectiveBinding {
	if t == nil {
		return nil
	}
	return append([]EffectiveBinding(nil), t.bindings...)
}

// Simple returns the enabled single-combo bindings in catalog order.
func (t *EffectiveBindingTable) Simple() []SimpleBinding {
	if t == nil {
		return nil
	}
	return t.simple
}

// Chords returns the enabled chord bindings in catalog order.
func (t *EffectiveBindingTable) Chords() []ChordBinding {
	if t == nil {
		return nil
	}
	return t.chords
}

// Lookup returns the binding for an action.
func (t *EffectiveBindingTable) Lookup(id ActionID) (EffectiveBinding, bool) {
	if t == nil {
		return EffectiveBinding{}, false
	}
	for _, b := range t.bindings {
		if b.Action == id {
			return b, true
		}
	}
	return EffectiveBinding{}, false
}

// StringPtr and BoolPtr build override fields.
func StringPtr(s string) *string { return &s }

func BoolPtr(b bool) *bool { return &b }
