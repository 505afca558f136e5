package domain

import (
	"sort"

	"github.com/guidoivetta/rasa/dialogue"
)

// DefaultActionNames is the fixed action enumeration every domain starts
// with. action_listen must stay at index 0: label id 0 is reserved for it.
var DefaultActionNames = []string{
	dialogue.ActionListenName,
	dialogue.ActionRestartName,
	dialogue.ActionSessionStartName,
	dialogue.ActionDefaultFallbackName,
	dialogue.ActionDeactivateLoopName,
	dialogue.ActionRevertFallbackName,
	dialogue.ActionDefaultAskAffirmName,
	dialogue.ActionDefaultAskRephraseName,
	dialogue.ActionTwoStageFallbackName,
	dialogue.ActionUnlikelyIntentName,
	dialogue.ActionBackName,
	dialogue.ActionRuleSnippetName,
}

// DefaultIntents are always part of a domain's intent enumeration.
var DefaultIntents = []string{
	"back",
	"nlu_fallback",
	"out_of_scope",
	"restart",
	"session_start",
}

// Domain enumerates everything an assistant knows about. The order of
// ActionNames and Intents is stable and defines the integer label ids
// (index = id, 0-based) used everywhere downstream.
type Domain struct {
	// ActionNames is the default enumeration followed by the sorted
	// user-defined actions and response names.
	ActionNames []string
	// Intents is the sorted union of user-defined and default intents.
	Intents []string
	// Slots is the sorted list of slot names.
	Slots []string
}

// New builds a domain from user-defined intents, actions, response names
// and slots. Response names count as actions.
func New(intents, actions, responses, slots []string) *Domain {
	custom := dedupSorted(append(append([]string{}, actions...), responses...))
	d := &Domain{
		ActionNames: append(append([]string{}, DefaultActionNames...), custom...),
		Intents:     dedupSorted(append(append([]string{}, intents...), DefaultIntents...)),
		Slots:       dedupSorted(slots),
	}
	return d
}

func dedupSorted(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
