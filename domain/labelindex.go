package domain

import (
	"github.com/guidoivetta/rasa/errors"
)

// LabelIndex is the injective mapping from action and intent names to
// stable integer ids, built once per domain. Actions keep their position
// in the action enumeration; intent ids are shifted past the full action
// enumeration so both kinds share one id space without collision.
type LabelIndex struct {
	actionToID map[string]int
	intentToID map[string]int
	numActions int
}

// NewLabelIndex builds the lookup tables for a domain.
func NewLabelIndex(d *Domain) *LabelIndex {
	ix := &LabelIndex{
		actionToID: make(map[string]int, len(d.ActionNames)),
		intentToID: make(map[string]int, len(d.Intents)),
		numActions: len(d.ActionNames),
	}
	for i, name := range d.ActionNames {
		ix.actionToID[name] = i
	}
	for i, name := range d.Intents {
		ix.intentToID[name] = ix.numActions + i
	}
	return ix
}

// ActionID returns the stable id of an action name. An unknown name is a
// contract violation by the caller.
func (ix *LabelIndex) ActionID(name string) (int, error) {
	id, ok := ix.actionToID[name]
	if !ok {
		return 0, errors.Errorf("action %q is not part of the domain", name)
	}
	return id, nil
}

// IntentID returns the stable id of an intent name, offset past the action
// enumeration.
func (ix *LabelIndex) IntentID(name string) (int, error) {
	id, ok := ix.intentToID[name]
	if !ok {
		return 0, errors.Errorf("intent %q is not part of the domain", name)
	}
	return id, nil
}

// NumActions returns the size of the action enumeration, which is also the
// offset applied to intent ids.
func (ix *LabelIndex) NumActions() int {
	return ix.numActions
}

// NumLabels returns the total size of the combined id space.
func (ix *LabelIndex) NumLabels() int {
	return ix.numActions + len(ix.intentToID)
}
