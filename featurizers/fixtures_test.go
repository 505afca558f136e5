package featurizers

import (
	"github.com/guidoivetta/rasa/dialogue"
	"github.com/guidoivetta/rasa/domain"
)

func moodbotDomain() *domain.Domain {
	return domain.New(
		[]string{"affirm", "bot_challenge", "deny", "goodbye", "greet", "mood_great", "mood_unhappy"},
		nil,
		[]string{"utter_cheer_up", "utter_did_that_help", "utter_goodbye", "utter_greet", "utter_happy"},
		nil,
	)
}

func listen() *dialogue.ActionExecuted {
	return &dialogue.ActionExecuted{ActionName: dialogue.ActionListenName}
}

// moodbotTracker replays the canonical cheer-up conversation: greet,
// mood_unhappy, deny. It yields 8 states over 7 action boundaries.
func moodbotTracker() *dialogue.Tracker {
	return dialogue.FromEvents("moodbot", []dialogue.Event{
		listen(),
		&dialogue.UserUttered{Text: "hi", IntentName: "greet"},
		&dialogue.ActionExecuted{ActionName: "utter_greet"},
		listen(),
		&dialogue.UserUttered{Text: "so sad", IntentName: "mood_unhappy"},
		&dialogue.ActionExecuted{ActionName: "utter_cheer_up"},
		&dialogue.ActionExecuted{ActionName: "utter_did_that_help"},
		listen(),
		&dialogue.UserUttered{Text: "no", IntentName: "deny"},
		&dialogue.ActionExecuted{ActionName: "utter_goodbye"},
	})
}

func moodbotStates() []dialogue.State {
	return moodbotTracker().PastStates(dialogue.StateOptions{})
}

// ruleTracker has its whole greeting handled by a hidden rule turn.
func ruleTracker() *dialogue.Tracker {
	return dialogue.FromEvents("rule", []dialogue.Event{
		listen(),
		&dialogue.UserUttered{Text: "hi", IntentName: "greet"},
		&dialogue.ActionExecuted{ActionName: "utter_greet", HideRuleTurn: true},
		&dialogue.ActionExecuted{ActionName: dialogue.ActionListenName, HideRuleTurn: true},
	})
}
