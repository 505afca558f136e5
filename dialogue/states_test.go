package dialogue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func listen() *ActionExecuted {
	return &ActionExecuted{ActionName: ActionListenName}
}

func moodbotTracker() *Tracker {
	return FromEvents("moodbot", []Event{
		listen(),
		&UserUttered{Text: "hi", IntentName: "greet"},
		&ActionExecuted{ActionName: "utter_greet"},
		listen(),
		&UserUttered{Text: "so sad", IntentName: "mood_unhappy"},
		&ActionExecuted{ActionName: "utter_cheer_up"},
		&ActionExecuted{ActionName: "utter_did_that_help"},
		listen(),
		&UserUttered{Text: "no", IntentName: "deny"},
		&ActionExecuted{ActionName: "utter_goodbye"},
	})
}

func Test_PastStates(t *testing.T) {
	states := moodbotTracker().PastStates(StateOptions{})

	expected := []State{
		{},
		{UserKey: {IntentAttribute: "greet"}, PreviousActionKey: {ActionNameAttribute: ActionListenName}},
		{UserKey: {IntentAttribute: "greet"}, PreviousActionKey: {ActionNameAttribute: "utter_greet"}},
		{UserKey: {IntentAttribute: "mood_unhappy"}, PreviousActionKey: {ActionNameAttribute: ActionListenName}},
		{UserKey: {IntentAttribute: "mood_unhappy"}, PreviousActionKey: {ActionNameAttribute: "utter_cheer_up"}},
		{UserKey: {IntentAttribute: "mood_unhappy"}, PreviousActionKey: {ActionNameAttribute: "utter_did_that_help"}},
		{UserKey: {IntentAttribute: "deny"}, PreviousActionKey: {ActionNameAttribute: ActionListenName}},
		{UserKey: {IntentAttribute: "deny"}, PreviousActionKey: {ActionNameAttribute: "utter_goodbye"}},
	}
	require.Equal(t, expected, states)
}

func Test_TurnsAlignment(t *testing.T) {
	turns := moodbotTracker().Turns(StateOptions{})

	require.Len(t, turns.States, 8)
	require.Equal(t, []string{
		ActionListenName, "utter_greet",
		ActionListenName, "utter_cheer_up", "utter_did_that_help",
		ActionListenName, "utter_goodbye",
	}, turns.Actions)
	require.Equal(t, []string{"greet", "", "mood_unhappy", "", "", "deny", ""}, turns.Intents)
}

func Test_SlotsInStates(t *testing.T) {
	tracker := FromEvents("slots", []Event{
		listen(),
		&UserUttered{Text: "hi", IntentName: "greet"},
		&SlotSet{Name: "name", Value: "bob"},
		&ActionExecuted{ActionName: "utter_greet"},
	})
	states := tracker.PastStates(StateOptions{})

	expected := []State{
		{},
		{
			UserKey:           {IntentAttribute: "greet"},
			PreviousActionKey: {ActionNameAttribute: ActionListenName},
			SlotsKey:          {"name": "bob"},
		},
		{
			UserKey:           {IntentAttribute: "greet"},
			PreviousActionKey: {ActionNameAttribute: "utter_greet"},
			SlotsKey:          {"name": "bob"},
		},
	}
	require.Equal(t, expected, states)
}

func Test_SlotUnset(t *testing.T) {
	tracker := FromEvents("slots", []Event{
		listen(),
		&SlotSet{Name: "name", Value: "bob"},
		&SlotSet{Name: "name", Value: ""},
		&ActionExecuted{ActionName: "utter_greet"},
	})
	states := tracker.PastStates(StateOptions{})

	require.Equal(t, []State{
		{},
		{PreviousActionKey: {ActionNameAttribute: ActionListenName}},
		{PreviousActionKey: {ActionNameAttribute: "utter_greet"}},
	}, states)
}

func Test_EntitiesSortedInUserSubState(t *testing.T) {
	tracker := FromEvents("entities", []Event{
		listen(),
		&UserUttered{
			Text:       "from b to a",
			IntentName: "inform",
			Entities:   []Entity{{Type: "destination", Value: "b"}, {Type: "departure", Value: "a"}},
		},
		&ActionExecuted{ActionName: "utter_greet"},
	})
	states := tracker.PastStates(StateOptions{})

	require.Equal(t, "departure,destination", states[1][UserKey][EntitiesAttribute])
}

func Test_UnlikelyIntentActionIsInvisible(t *testing.T) {
	withUnlikely := FromEvents("unlikely", []Event{
		listen(),
		&UserUttered{Text: "great", IntentName: "mood_great"},
		&ActionExecuted{ActionName: ActionUnlikelyIntentName},
		&ActionExecuted{ActionName: "utter_happy"},
		listen(),
	})
	without := FromEvents("unlikely", []Event{
		listen(),
		&UserUttered{Text: "great", IntentName: "mood_great"},
		&ActionExecuted{ActionName: "utter_happy"},
		listen(),
	})

	require.Equal(t, without.Turns(StateOptions{}), withUnlikely.Turns(StateOptions{}))
	require.Equal(t,
		without.Turns(StateOptions{IgnoreActionUnlikelyIntent: true}),
		withUnlikely.Turns(StateOptions{IgnoreActionUnlikelyIntent: true}))
}

func ruleTracker() *Tracker {
	return FromEvents("rule", []Event{
		listen(),
		&UserUttered{Text: "hi", IntentName: "greet"},
		&ActionExecuted{ActionName: "utter_greet", HideRuleTurn: true},
		&ActionExecuted{ActionName: ActionListenName, HideRuleTurn: true},
	})
}

func Test_IgnoreRuleOnlyTurns(t *testing.T) {
	states := ruleTracker().PastStates(StateOptions{IgnoreRuleOnlyTurns: true})

	require.Equal(t, []State{
		{},
		{UserKey: {IntentAttribute: "greet"}, PreviousActionKey: {ActionNameAttribute: ActionListenName}},
	}, states)
}

func Test_RuleTurnsKeptByDefault(t *testing.T) {
	states := ruleTracker().PastStates(StateOptions{})
	require.Len(t, states, 4)
}

func Test_IgnoreRuleOnlyTurns_EmbeddedRule(t *testing.T) {
	tracker := FromEvents("rule", []Event{
		listen(),
		&UserUttered{Text: "hi", IntentName: "greet"},
		&ActionExecuted{ActionName: "utter_greet", HideRuleTurn: true},
		&ActionExecuted{ActionName: ActionListenName, HideRuleTurn: true},
		&UserUttered{Text: "great", IntentName: "mood_great"},
		&ActionExecuted{ActionName: "utter_happy"},
		listen(),
	})
	states := tracker.PastStates(StateOptions{IgnoreRuleOnlyTurns: true})

	// The hidden rule turn's actions never appear as a previous action.
	require.Equal(t, []State{
		{},
		{UserKey: {IntentAttribute: "mood_great"}, PreviousActionKey: {ActionNameAttribute: ActionListenName}},
		{UserKey: {IntentAttribute: "mood_great"}, PreviousActionKey: {ActionNameAttribute: "utter_happy"}},
		{UserKey: {IntentAttribute: "mood_great"}, PreviousActionKey: {ActionNameAttribute: ActionListenName}},
	}, states)
}

func Test_StateCopyAndEqual(t *testing.T) {
	st := State{UserKey: {IntentAttribute: "greet"}}
	cp := st.Copy()
	require.True(t, st.Equal(cp))

	cp[UserKey][IntentAttribute] = "deny"
	require.False(t, st.Equal(cp))
	require.Equal(t, "greet", st[UserKey][IntentAttribute])
}
