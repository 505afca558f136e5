package dialogue

import (
	"sort"
	"strings"
)

// Sub-state keys of a dialogue state.
const (
	UserKey           = "user"
	PreviousActionKey = "prev_action"
	SlotsKey          = "slots"
)

// Attributes inside a sub-state.
const (
	IntentAttribute     = "intent"
	EntitiesAttribute   = "entities"
	ActionNameAttribute = "action_name"
	ActionTextAttribute = "action_text"
)

// SubState maps attribute names to values.
type SubState map[string]string

// State is one slice of dialogue history at a decision point, keyed by
// sub-state category. Empty sub-states are never stored, so the initial
// "no history yet" state is the empty map.
type State map[string]SubState

// Copy returns an independent copy.
func (s SubState) Copy() SubState {
	out := make(SubState, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Copy returns a deep independent copy.
func (s State) Copy() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v.Copy()
	}
	return out
}

// Equal compares two states structurally.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for key, sub := range s {
		osub, ok := other[key]
		if !ok || len(sub) != len(osub) {
			return false
		}
		for attr, val := range sub {
			if osub[attr] != val {
				return false
			}
		}
	}
	return true
}

// StateOptions controls state extraction.
type StateOptions struct {
	// IgnoreRuleOnlyTurns hides turns produced by HideRuleTurn events and
	// substitutes their actions out of the previous-action sub-state.
	IgnoreRuleOnlyTurns bool
	// IgnoreActionUnlikelyIntent additionally drops states whose previous
	// action is the synthetic unlikely-intent action. The unlikely action
	// never forms a turn boundary regardless of this flag.
	IgnoreActionUnlikelyIntent bool
}

// Turns is the ordered result of replaying a tracker's event log. States
// holds one state per turn boundary plus the terminal state. Actions[i] is
// the action executed at boundary i (States[i] is the state it saw), and
// Intents[i] is the intent of the user utterance following that action, or
// "" when the user said nothing before the next boundary.
type Turns struct {
	States  []State
	Actions []string
	Intents []string
}

// PastStates reconstructs the ordered dialogue states from the event log.
func (t *Tracker) PastStates(opts StateOptions) []State {
	return t.Turns(opts).States
}

// Turns replays the event log into states plus per-boundary action and
// intent labels. A state snapshot is taken before every visible action
// execution and once after the final event; user utterances and slot sets
// update the pending snapshot rather than creating boundaries of their own.
// Total over any event sequence: the worst malformed input yields a shorter
// turn sequence, never an error.
func (t *Tracker) Turns(opts StateOptions) Turns {
	var snaps []State
	var hidden []bool
	var actions []string
	var intents []string

	var user SubState
	var prev SubState
	slots := SubState{}

	current := func() State {
		st := State{}
		if len(user) > 0 {
			st[UserKey] = user.Copy()
		}
		if len(prev) > 0 {
			st[PreviousActionKey] = prev.Copy()
		}
		if len(slots) > 0 {
			st[SlotsKey] = slots.Copy()
		}
		return st
	}

	for _, ev := range t.events {
		switch e := ev.(type) {
		case *ActionExecuted:
			// structurally invisible: no boundary, no previous-action update
			if e.ActionName == ActionUnlikelyIntentName {
				continue
			}
			snaps = append(snaps, current())
			hidden = append(hidden, e.HideRuleTurn)
			actions = append(actions, e.ActionName)
			intents = append(intents, "")
			prev = actionSubState(e)
		case *UserUttered:
			user = userSubState(e)
			if n := len(intents); n > 0 {
				intents[n-1] = e.IntentName
			}
		case *SlotSet:
			if e.Value == "" {
				delete(slots, e.Name)
			} else {
				slots[e.Name] = e.Value
			}
		}
	}
	snaps = append(snaps, current())
	hidden = append(hidden, false)

	if !opts.IgnoreRuleOnlyTurns {
		return filterUnlikelyPrev(Turns{States: snaps, Actions: actions, Intents: intents}, opts)
	}

	// Hide rule-only turns. The previous action of every emitted state is
	// substituted with the action of the last visible turn so hidden
	// actions never leak into the history.
	var states []State
	var keptActions []string
	var keptIntents []string
	var lastVisiblePrev SubState
	turnHidden := false
	for i, st := range snaps {
		if !turnHidden {
			lastVisiblePrev = st[PreviousActionKey]
		}
		turnHidden = hidden[i]
		if turnHidden {
			continue
		}
		out := st.Copy()
		if lastVisiblePrev != nil {
			out[PreviousActionKey] = lastVisiblePrev.Copy()
		} else {
			delete(out, PreviousActionKey)
		}
		states = append(states, out)
		if i < len(actions) {
			keptActions = append(keptActions, actions[i])
			keptIntents = append(keptIntents, intents[i])
		}
	}
	return filterUnlikelyPrev(Turns{States: states, Actions: keptActions, Intents: keptIntents}, opts)
}

func filterUnlikelyPrev(turns Turns, opts StateOptions) Turns {
	if !opts.IgnoreActionUnlikelyIntent {
		return turns
	}
	out := Turns{}
	for i, st := range turns.States {
		if st[PreviousActionKey][ActionNameAttribute] == ActionUnlikelyIntentName {
			continue
		}
		out.States = append(out.States, st)
		if i < len(turns.Actions) {
			out.Actions = append(out.Actions, turns.Actions[i])
			out.Intents = append(out.Intents, turns.Intents[i])
		}
	}
	return out
}

func actionSubState(e *ActionExecuted) SubState {
	sub := SubState{}
	if e.ActionName != "" {
		sub[ActionNameAttribute] = e.ActionName
	}
	if e.ActionText != "" {
		sub[ActionTextAttribute] = e.ActionText
	}
	return sub
}

func userSubState(e *UserUttered) SubState {
	sub := SubState{}
	if e.IntentName != "" {
		sub[IntentAttribute] = e.IntentName
	}
	if len(e.Entities) > 0 {
		types := make([]string, 0, len(e.Entities))
		for _, ent := range e.Entities {
			types = append(types, ent.Type)
		}
		sort.Strings(types)
		sub[EntitiesAttribute] = strings.Join(types, ",")
	}
	return sub
}
