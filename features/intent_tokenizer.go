package features

import (
	"github.com/guidoivetta/rasa/dialogue"
	"github.com/guidoivetta/rasa/nlu"
)

// IntentTokenizerSingleStateFeaturizer is the state featurizer used when
// the training target is the next user intent rather than the next action.
// State encoding is identical to SingleStateFeaturizer; the label side is
// handled by the intent label scheme.
type IntentTokenizerSingleStateFeaturizer struct {
	SingleStateFeaturizer
}

// NewIntentTokenizerSingleStateFeaturizer ...
func NewIntentTokenizerSingleStateFeaturizer() *IntentTokenizerSingleStateFeaturizer {
	return &IntentTokenizerSingleStateFeaturizer{}
}

// Name identifies this featurizer kind in persisted configurations.
func (f *IntentTokenizerSingleStateFeaturizer) Name() string { return "intent_tokenizer" }

// EncodeState featurizes one state, tagging features with this featurizer
// as the producing component.
func (f *IntentTokenizerSingleStateFeaturizer) EncodeState(state dialogue.State, interp nlu.Interpreter) (map[string][]Feature, error) {
	return f.encodeState(state, "IntentTokenizerSingleStateFeaturizer")
}
