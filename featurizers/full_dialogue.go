package featurizers

import (
	"github.com/guidoivetta/rasa/dialogue"
	"github.com/guidoivetta/rasa/domain"
	"github.com/guidoivetta/rasa/nlu"
)

// FullDialogueFeaturizer creates one training example per conversation:
// the window is the whole turn sequence minus the terminal state (which
// has no subsequent action to predict), the label row is the sequence of
// actions taken at each boundary.
type FullDialogueFeaturizer struct {
	base
}

// NewFullDialogueFeaturizer ...
func NewFullDialogueFeaturizer(sf StateFeaturizer) *FullDialogueFeaturizer {
	return &FullDialogueFeaturizer{base{stateFeaturizer: sf}}
}

func (f *FullDialogueFeaturizer) trainingStatesAndLabels(trackers []*dialogue.Tracker) ([][]dialogue.State, [][]string) {
	windows := make([][]dialogue.State, 0, len(trackers))
	labels := make([][]string, 0, len(trackers))
	for _, tr := range trackers {
		turns := extractTurns(tr)
		windows = append(windows, turns.States[:len(turns.States)-1])
		labels = append(labels, turns.Actions)
	}
	return windows, labels
}

// FeaturizeTrackers implements Featurizer.
func (f *FullDialogueFeaturizer) FeaturizeTrackers(trackers []*dialogue.Tracker, d *domain.Domain, interp nlu.Interpreter) ([][]FeaturizedState, [][]int, [][]string, error) {
	if err := f.requireStateFeaturizer(); err != nil {
		return nil, nil, nil, err
	}
	f.stateFeaturizer.PrepareForTraining(d, interp)

	windows, actionRows := f.trainingStatesAndLabels(trackers)
	feats, err := f.featurizeWindows(windows, interp)
	if err != nil {
		return nil, nil, nil, err
	}
	labels, err := EncodeActionLabels(actionRows, d)
	if err != nil {
		return nil, nil, nil, err
	}
	return feats, labels, windowEntityTags(windows), nil
}

// CreateStateFeatures implements Featurizer.
func (f *FullDialogueFeaturizer) CreateStateFeatures(trackers []*dialogue.Tracker, d *domain.Domain, interp nlu.Interpreter) ([][]FeaturizedState, error) {
	if err := f.requireStateFeaturizer(); err != nil {
		return nil, err
	}
	return f.featurizeWindows(f.PredictionStates(trackers, d, PredictionOptions{}), interp)
}

// PredictionStates implements Featurizer. The terminal state is included:
// nothing is dropped at prediction time.
func (f *FullDialogueFeaturizer) PredictionStates(trackers []*dialogue.Tracker, d *domain.Domain, opts PredictionOptions) [][]dialogue.State {
	out := make([][]dialogue.State, 0, len(trackers))
	for _, tr := range trackers {
		out = append(out, tr.PastStates(dialogue.StateOptions{IgnoreRuleOnlyTurns: opts.IgnoreRuleOnlyTurns}))
	}
	return out
}

// Persist implements Featurizer.
func (f *FullDialogueFeaturizer) Persist(dir string) error {
	return persistConfig(dir, persistedConfig{
		Strategy:        fullDialogueStrategy,
		StateFeaturizer: stateFeaturizerName(f.stateFeaturizer),
	})
}
