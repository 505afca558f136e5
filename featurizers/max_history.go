package featurizers

import (
	"github.com/guidoivetta/rasa/dialogue"
	"github.com/guidoivetta/rasa/domain"
	"github.com/guidoivetta/rasa/nlu"
)

// MaxHistoryFeaturizer creates one training example per action taken: the
// window is the trailing MaxHistory states ending at that boundary, the
// label is the single action executed there.
type MaxHistoryFeaturizer struct {
	base

	// MaxHistory bounds the window length; 0 means unbounded.
	MaxHistory int
	// RemoveDuplicates collapses exact (window, label) repeats across the
	// whole batch, keeping first occurrences.
	RemoveDuplicates bool
}

// NewMaxHistoryFeaturizer ...
func NewMaxHistoryFeaturizer(sf StateFeaturizer, maxHistory int, removeDuplicates bool) *MaxHistoryFeaturizer {
	return &MaxHistoryFeaturizer{
		base:             base{stateFeaturizer: sf},
		MaxHistory:       maxHistory,
		RemoveDuplicates: removeDuplicates,
	}
}

// SliceStateHistory keeps the trailing maxHistory states of a window.
// maxHistory <= 0 keeps everything.
func SliceStateHistory(states []dialogue.State, maxHistory int) []dialogue.State {
	if maxHistory <= 0 || len(states) <= maxHistory {
		return states
	}
	return states[len(states)-maxHistory:]
}

func (f *MaxHistoryFeaturizer) trainingStatesAndLabels(trackers []*dialogue.Tracker) ([][]dialogue.State, []string) {
	var windows [][]dialogue.State
	var labels []string
	dedup := newExampleSet()
	for _, tr := range trackers {
		turns := extractTurns(tr)
		for j, action := range turns.Actions {
			window := SliceStateHistory(turns.States[:j+1], f.MaxHistory)
			if f.RemoveDuplicates && dedup.add(window, action) {
				continue
			}
			windows = append(windows, window)
			labels = append(labels, action)
		}
	}
	return windows, labels
}

// FeaturizeTrackers implements Featurizer. Labels come back as a column:
// one single-id row per window.
func (f *MaxHistoryFeaturizer) FeaturizeTrackers(trackers []*dialogue.Tracker, d *domain.Domain, interp nlu.Interpreter) ([][]FeaturizedState, [][]int, [][]string, error) {
	if err := f.requireStateFeaturizer(); err != nil {
		return nil, nil, nil, err
	}
	f.stateFeaturizer.PrepareForTraining(d, interp)

	windows, actions := f.trainingStatesAndLabels(trackers)
	feats, err := f.featurizeWindows(windows, interp)
	if err != nil {
		return nil, nil, nil, err
	}
	labels, err := encodeSingleActionRows(actions, d)
	if err != nil {
		return nil, nil, nil, err
	}
	return feats, labels, windowEntityTags(windows), nil
}

// CreateStateFeatures implements Featurizer.
func (f *MaxHistoryFeaturizer) CreateStateFeatures(trackers []*dialogue.Tracker, d *domain.Domain, interp nlu.Interpreter) ([][]FeaturizedState, error) {
	if err := f.requireStateFeaturizer(); err != nil {
		return nil, err
	}
	return f.featurizeWindows(f.PredictionStates(trackers, d, PredictionOptions{}), interp)
}

// PredictionStates implements Featurizer: the single most recent window
// per conversation.
func (f *MaxHistoryFeaturizer) PredictionStates(trackers []*dialogue.Tracker, d *domain.Domain, opts PredictionOptions) [][]dialogue.State {
	out := make([][]dialogue.State, 0, len(trackers))
	for _, tr := range trackers {
		states := tr.PastStates(dialogue.StateOptions{IgnoreRuleOnlyTurns: opts.IgnoreRuleOnlyTurns})
		out = append(out, SliceStateHistory(states, f.MaxHistory))
	}
	return out
}

// Persist implements Featurizer.
func (f *MaxHistoryFeaturizer) Persist(dir string) error {
	return persistConfig(dir, persistedConfig{
		Strategy:         maxHistoryStrategy,
		MaxHistory:       f.MaxHistory,
		RemoveDuplicates: f.RemoveDuplicates,
		StateFeaturizer:  stateFeaturizerName(f.stateFeaturizer),
	})
}
