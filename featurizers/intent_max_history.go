package featurizers

import (
	"github.com/guidoivetta/rasa/dialogue"
	"github.com/guidoivetta/rasa/domain"
	"github.com/guidoivetta/rasa/nlu"
)

// IntentMaxHistoryFeaturizer creates one training example per user
// utterance: the window is the trailing MaxHistory states ending at the
// utterance, the label row holds the uttered intent first, followed by
// every other intent observed after an identical window anywhere in the
// batch.
type IntentMaxHistoryFeaturizer struct {
	base

	// MaxHistory bounds the window length; 0 means unbounded.
	MaxHistory int
	// RemoveDuplicates collapses exact (window, uttered intent) repeats
	// across the whole batch, keeping first occurrences.
	RemoveDuplicates bool
}

// NewIntentMaxHistoryFeaturizer ...
func NewIntentMaxHistoryFeaturizer(sf StateFeaturizer, maxHistory int, removeDuplicates bool) *IntentMaxHistoryFeaturizer {
	return &IntentMaxHistoryFeaturizer{
		base:             base{stateFeaturizer: sf},
		MaxHistory:       maxHistory,
		RemoveDuplicates: removeDuplicates,
	}
}

func (f *IntentMaxHistoryFeaturizer) trainingStatesAndLabels(trackers []*dialogue.Tracker) ([][]dialogue.State, [][]string) {
	var windows [][]dialogue.State
	var primaries []string

	// All intents seen after each distinct window, in first-seen order.
	// Collected over the whole batch before label rows are built so that
	// an example's alternatives can come from a later conversation.
	windowIntents := map[uint64][]string{}

	dedup := newExampleSet()
	for _, tr := range trackers {
		turns := extractTurns(tr)
		for j, intent := range turns.Intents {
			if intent == "" {
				continue
			}
			window := SliceStateHistory(turns.States[:j+1], f.MaxHistory)
			key := hashStates(window)
			if !contains(windowIntents[key], intent) {
				windowIntents[key] = append(windowIntents[key], intent)
			}
			if f.RemoveDuplicates && dedup.add(window, intent) {
				continue
			}
			windows = append(windows, window)
			primaries = append(primaries, intent)
		}
	}

	labels := make([][]string, 0, len(windows))
	for i, window := range windows {
		row := []string{primaries[i]}
		for _, other := range windowIntents[hashStates(window)] {
			if other != primaries[i] {
				row = append(row, other)
			}
		}
		labels = append(labels, row)
	}
	return windows, labels
}

// FeaturizeTrackers implements Featurizer. Label rows are widened to the
// batch maximum width with the pad sentinel; the uttered intent always
// sits in column zero.
func (f *IntentMaxHistoryFeaturizer) FeaturizeTrackers(trackers []*dialogue.Tracker, d *domain.Domain, interp nlu.Interpreter) ([][]FeaturizedState, [][]int, [][]string, error) {
	if err := f.requireStateFeaturizer(); err != nil {
		return nil, nil, nil, err
	}
	f.stateFeaturizer.PrepareForTraining(d, interp)

	windows, intentRows := f.trainingStatesAndLabels(trackers)
	feats, err := f.featurizeWindows(windows, interp)
	if err != nil {
		return nil, nil, nil, err
	}
	labels, err := EncodeIntentLabels(intentRows, d)
	if err != nil {
		return nil, nil, nil, err
	}
	return feats, labels, windowEntityTags(windows), nil
}

// CreateStateFeatures implements Featurizer.
func (f *IntentMaxHistoryFeaturizer) CreateStateFeatures(trackers []*dialogue.Tracker, d *domain.Domain, interp nlu.Interpreter) ([][]FeaturizedState, error) {
	if err := f.requireStateFeaturizer(); err != nil {
		return nil, err
	}
	return f.featurizeWindows(f.PredictionStates(trackers, d, PredictionOptions{}), interp)
}

// PredictionStates implements Featurizer. A trailing listen state is
// dropped before slicing: the model predicts the next intent, so the
// state produced by the utterance being predicted must not leak in.
func (f *IntentMaxHistoryFeaturizer) PredictionStates(trackers []*dialogue.Tracker, d *domain.Domain, opts PredictionOptions) [][]dialogue.State {
	out := make([][]dialogue.State, 0, len(trackers))
	for _, tr := range trackers {
		states := tr.PastStates(dialogue.StateOptions{IgnoreRuleOnlyTurns: opts.IgnoreRuleOnlyTurns})
		if n := len(states); n > 0 {
			last := states[n-1]
			if last[dialogue.PreviousActionKey][dialogue.ActionNameAttribute] == dialogue.ActionListenName {
				states = states[:n-1]
			}
		}
		out = append(out, SliceStateHistory(states, f.MaxHistory))
	}
	return out
}

// Persist implements Featurizer.
func (f *IntentMaxHistoryFeaturizer) Persist(dir string) error {
	return persistConfig(dir, persistedConfig{
		Strategy:         intentMaxHistoryStrategy,
		MaxHistory:       f.MaxHistory,
		RemoveDuplicates: f.RemoveDuplicates,
		StateFeaturizer:  stateFeaturizerName(f.stateFeaturizer),
	})
}

func contains(xs []string, x string) bool {
	for _, s := range xs {
		if s == x {
			return true
		}
	}
	return false
}
