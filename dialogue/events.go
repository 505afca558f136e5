package dialogue

// Names of the actions every assistant ships with. Position in
// domain.DefaultActionNames defines their label ids.
const (
	ActionListenName              = "action_listen"
	ActionRestartName             = "action_restart"
	ActionSessionStartName        = "action_session_start"
	ActionDefaultFallbackName     = "action_default_fallback"
	ActionDeactivateLoopName      = "action_deactivate_loop"
	ActionRevertFallbackName      = "action_revert_fallback_events"
	ActionDefaultAskAffirmName    = "action_default_ask_affirmation"
	ActionDefaultAskRephraseName  = "action_default_ask_rephrase"
	ActionTwoStageFallbackName    = "action_two_stage_fallback"
	ActionUnlikelyIntentName      = "action_unlikely_intent"
	ActionBackName                = "action_back"
	ActionRuleSnippetName         = "action_rule_snippet"
)

// Event is one entry of a conversation's ordered event log. Events are
// immutable once appended; their order is the sole source of truth for
// conversation state.
type Event interface {
	eventType() string
}

// Entity is a single extracted entity from a user message.
type Entity struct {
	Type  string `yaml:"type" json:"type"`
	Value string `yaml:"value" json:"value"`
}

// ActionExecuted records that the assistant ran an action.
type ActionExecuted struct {
	ActionName string
	// ActionText is set instead of ActionName for end-to-end bot utterances.
	ActionText string
	Policy     string
	Confidence float64
	// HideRuleTurn marks actions interleaved for rule-policy training that
	// must not leak into the standard dialogue history.
	HideRuleTurn bool
}

func (*ActionExecuted) eventType() string { return "action" }

// UserUttered records a user message together with its interpretation.
type UserUttered struct {
	Text       string
	IntentName string
	Entities   []Entity
}

func (*UserUttered) eventType() string { return "user" }

// BotUttered records a message sent to the user. It never contributes to
// dialogue states.
type BotUttered struct {
	Text string
}

func (*BotUttered) eventType() string { return "bot" }

// SlotSet records a slot value change. An empty value unsets the slot.
type SlotSet struct {
	Name  string
	Value string
}

func (*SlotSet) eventType() string { return "slot" }
