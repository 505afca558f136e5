// Package featurizers converts recorded conversations into fixed-shape
// numeric training examples and back into the minimal state sequence
// needed at prediction time. Three windowing strategies exist: whole
// dialogue, trailing max-history window and per-utterance intent window.
package featurizers

import (
	"github.com/guidoivetta/rasa/dialogue"
	"github.com/guidoivetta/rasa/domain"
	"github.com/guidoivetta/rasa/errors"
	"github.com/guidoivetta/rasa/features"
	"github.com/guidoivetta/rasa/nlu"
)

// FeaturizedState maps attribute names to the feature vectors produced for
// one dialogue state.
type FeaturizedState = map[string][]features.Feature

// StateFeaturizer is the injected per-turn vectorization capability. It is
// consumed, never implemented, by this package. Implementations must be
// deterministic for equal inputs and immutable once prepared.
type StateFeaturizer interface {
	Name() string
	PrepareForTraining(d *domain.Domain, interp nlu.Interpreter)
	EncodeState(state dialogue.State, interp nlu.Interpreter) (FeaturizedState, error)
}

// ErrNoStateFeaturizer is returned when featurization is requested on a
// featurizer that was constructed without a state featurizer.
var ErrNoStateFeaturizer = errors.New("no state featurizer configured")

// PredictionOptions controls state extraction on the prediction path. The
// synthetic unlikely-intent action is always filtered regardless of these
// options.
type PredictionOptions struct {
	IgnoreRuleOnlyTurns bool
}

// Featurizer is one of the three tracker featurizer strategies.
type Featurizer interface {
	// FeaturizeTrackers runs the full training pipeline: state extraction,
	// windowing, per-state featurization and label encoding. The returned
	// arrays are aligned 1:1: features[i], labels[i] and entityTags[i]
	// describe the same training example.
	FeaturizeTrackers(trackers []*dialogue.Tracker, d *domain.Domain, interp nlu.Interpreter) ([][]FeaturizedState, [][]int, [][]string, error)

	// CreateStateFeatures featurizes the prediction-path windows without
	// label encoding or deduplication. The state featurizer must have been
	// prepared beforehand.
	CreateStateFeatures(trackers []*dialogue.Tracker, d *domain.Domain, interp nlu.Interpreter) ([][]FeaturizedState, error)

	// PredictionStates returns the raw state windows used at inference
	// time, one per tracker.
	PredictionStates(trackers []*dialogue.Tracker, d *domain.Domain, opts PredictionOptions) [][]dialogue.State

	// Persist writes a self-describing configuration to dir.
	Persist(dir string) error
}

type base struct {
	stateFeaturizer StateFeaturizer
}

// StateFeaturizer returns the configured per-turn featurizer, or nil.
func (b *base) StateFeaturizer() StateFeaturizer {
	return b.stateFeaturizer
}

func (b *base) requireStateFeaturizer() error {
	if b.stateFeaturizer == nil {
		return errors.WithStack(ErrNoStateFeaturizer)
	}
	return nil
}

func (b *base) featurizeWindows(windows [][]dialogue.State, interp nlu.Interpreter) ([][]FeaturizedState, error) {
	out := make([][]FeaturizedState, 0, len(windows))
	for _, window := range windows {
		fw := make([]FeaturizedState, 0, len(window))
		for _, st := range window {
			enc, err := b.stateFeaturizer.EncodeState(st, interp)
			if err != nil {
				return nil, err
			}
			fw = append(fw, enc)
		}
		out = append(out, fw)
	}
	return out, nil
}

// windowEntityTags passes through the per-turn entity annotations of each
// window, aligned 1:1 with the feature arrays. A turn without user
// entities contributes an empty tag.
func windowEntityTags(windows [][]dialogue.State) [][]string {
	out := make([][]string, 0, len(windows))
	for _, window := range windows {
		tags := make([]string, 0, len(window))
		for _, st := range window {
			tags = append(tags, st[dialogue.UserKey][dialogue.EntitiesAttribute])
		}
		out = append(out, tags)
	}
	return out
}

func extractTurns(tr *dialogue.Tracker) dialogue.Turns {
	return tr.Turns(dialogue.StateOptions{})
}
