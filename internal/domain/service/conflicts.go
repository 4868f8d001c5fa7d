package service

import (
	"fmt"

	"github.com/bnema/linekeys/internal/domain/entity"
)

// ConflictKind classifies a binding conflict.
type ConflictKind string

const (
	// ConflictDuplicate: two actions share the same combo or chord.
	ConflictDuplicate ConflictKind = "duplicate"
	// ConflictShadowedPrefix: a simple binding equals a chord prefix and can never fire.
	ConflictShadowedPrefix ConflictKind = "shadowed-prefix"
)

// Conflict describes two enabled bindings that compete for the same keys.
type Conflict struct {
	Kind    ConflictKind
	Key     string
	Actions []entity.ActionID
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s %s: %v", c.Kind, c.Key, c.Actions)
}

// DetectConflicts lists duplicate and shadowed bindings in table order.
// Chord prefixes take priority over simple bindings during dispatch, so a
// simple binding equal to a prefix is reported as shadowed.
func DetectConflicts(table *entity.EffectiveBindingTable) []Conflict {
	var conflicts []Conflict

	simpleByKey := make(map[string][]entity.ActionID)
	var simpleOrder []string
	for _, b := range table.Simple() {
		key := b.Combo.String()
		if _, ok := simpleByKey[key]; !ok {
			simpleOrder = append(simpleOrder, key)
		}
		simpleByKey[key] = append(simpleByKey[key], b.Action)
	}

	chordByKey := make(map[string][]entity.ActionID)
	var chordOrder []string
	prefixes := make(map[string]entity.ActionID)
	for _, c := range table.Chords() {
		key := c.PrefixKey + " " + c.Second.String()
		if _, ok := chordByKey[key]; !ok {
			chordOrder = append(chordOrder, key)
		}
		chordByKey[key] = append(chordByKey[key], c.Action)
		if _, ok := prefixes[c.PrefixKey]; !ok {
			prefixes[c.PrefixKey] = c.Action
		}
	}

	for _, key := range simpleOrder {
		if actions := simpleByKey[key]; len(actions) > 1 {
			conflicts = append(conflicts, Conflict{Kind: ConflictDuplicate, Key: key, Actions: actions})
		}
	}
	for _, key := range chordOrder {
		if actions := chordByKey[key]; len(actions) > 1 {
			conflicts = append(conflicts, Conflict{Kind: ConflictDuplicate, Key: key, Actions: actions})
		}
	}
	for _, key := range simpleOrder {
		if chordAction, ok := prefixes[key]; ok {
			actions := append([]entity.ActionID{}, simpleByKey[key]...)
			conflicts = append(conflicts, Conflict{
				Kind:    ConflictShadowedPrefix,
				Key:     key,
				Actions: append(actions, chordAction),
			})
		}
	}
	return conflicts
}

// ConflictsFor filters conflicts involving action.
func ConflictsFor(conflicts []Conflict, action entity.ActionID) []Conflict {
	var out []Conflict
	for _, c := range conflicts {
		for _, a := range c.Actions {
			if a == action {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
