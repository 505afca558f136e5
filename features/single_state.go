package features

import (
	"github.com/guidoivetta/rasa/dialogue"
	"github.com/guidoivetta/rasa/domain"
	"github.com/guidoivetta/rasa/errors"
	"github.com/guidoivetta/rasa/nlu"
)

// SingleStateFeaturizer converts one dialogue state into one-hot sentence
// features over the domain enumerations. It must be prepared against a
// domain before encoding and is immutable afterwards.
type SingleStateFeaturizer struct {
	actionIndex map[string]int
	intentIndex map[string]int
	slotIndex   map[string]int

	numActions int
	numIntents int
	numSlots   int

	prepared bool
}

// NewSingleStateFeaturizer ...
func NewSingleStateFeaturizer() *SingleStateFeaturizer {
	return &SingleStateFeaturizer{}
}

// Name identifies this featurizer kind in persisted configurations.
func (f *SingleStateFeaturizer) Name() string { return "single_state" }

func (f *SingleStateFeaturizer) origin() string { return "SingleStateFeaturizer" }

// Prepared reports whether PrepareForTraining ran.
func (f *SingleStateFeaturizer) Prepared() bool { return f.prepared }

// PrepareForTraining builds the lookup tables from the domain enumerations.
func (f *SingleStateFeaturizer) PrepareForTraining(d *domain.Domain, interp nlu.Interpreter) {
	f.actionIndex = make(map[string]int, len(d.ActionNames))
	for i, name := range d.ActionNames {
		f.actionIndex[name] = i
	}
	f.intentIndex = make(map[string]int, len(d.Intents))
	for i, name := range d.Intents {
		f.intentIndex[name] = i
	}
	f.slotIndex = make(map[string]int, len(d.Slots))
	for i, name := range d.Slots {
		f.slotIndex[name] = i
	}
	f.numActions = len(d.ActionNames)
	f.numIntents = len(d.Intents)
	f.numSlots = len(d.Slots)
	f.prepared = true
}

// EncodeState featurizes one state as attribute -> feature vectors. The
// user sub-state is only featurized when the previous action is
// action_listen: decision points after a bot action carry stale user input
// that must not be re-featurized.
func (f *SingleStateFeaturizer) EncodeState(state dialogue.State, interp nlu.Interpreter) (map[string][]Feature, error) {
	return f.encodeState(state, f.origin())
}

func (f *SingleStateFeaturizer) encodeState(state dialogue.State, origin string) (map[string][]Feature, error) {
	if !f.prepared {
		return nil, errors.Errorf("featurizer was not prepared for training")
	}

	out := map[string][]Feature{}

	prev := state[dialogue.PreviousActionKey]
	if name, ok := prev[dialogue.ActionNameAttribute]; ok {
		idx, known := f.actionIndex[name]
		if !known {
			return nil, errors.Errorf("action %q is not part of the domain", name)
		}
		out[dialogue.ActionNameAttribute] = []Feature{
			OneHot(idx, f.numActions, dialogue.ActionNameAttribute, origin),
		}
	}

	if user, ok := state[dialogue.UserKey]; ok && prev[dialogue.ActionNameAttribute] == dialogue.ActionListenName {
		if intent, ok := user[dialogue.IntentAttribute]; ok {
			idx, known := f.intentIndex[intent]
			if !known {
				return nil, errors.Errorf("intent %q is not part of the domain", intent)
			}
			out[dialogue.IntentAttribute] = []Feature{
				OneHot(idx, f.numIntents, dialogue.IntentAttribute, origin),
			}
		}
	}

	if slots, ok := state[dialogue.SlotsKey]; ok && f.numSlots > 0 {
		indices, values := slotVector(slots, f.slotIndex)
		if len(indices) > 0 {
			out[dialogue.SlotsKey] = []Feature{{
				Indices:   indices,
				Values:    values,
				Length:    f.numSlots,
				Type:      FeatureTypeSentence,
				Attribute: dialogue.SlotsKey,
				Origin:    origin,
			}}
		}
	}

	return out, nil
}

// slotVector builds a multi-hot vector over the domain's slot enumeration.
func slotVector(slots dialogue.SubState, index map[string]int) ([]int, []float64) {
	var names []string
	for name := range slots {
		if _, ok := index[name]; ok {
			names = append(names, name)
		}
	}
	sortByIndex(names, index)
	indices := make([]int, 0, len(names))
	values := make([]float64, 0, len(names))
	for _, name := range names {
		indices = append(indices, index[name])
		values = append(values, 1.0)
	}
	return indices, values
}

func sortByIndex(names []string, index map[string]int) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && index[names[j-1]] > index[names[j]]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
}
