package featurizers

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/guidoivetta/rasa/errors"
	"github.com/guidoivetta/rasa/features"
)

// ConfigFilename is the name of the configuration file written by Persist
// inside its target directory.
const ConfigFilename = "featurizer.json"

const (
	fullDialogueStrategy     = "full_dialogue"
	maxHistoryStrategy       = "max_history"
	intentMaxHistoryStrategy = "intent_max_history"
)

type persistedConfig struct {
	Strategy         string `json:"strategy"`
	MaxHistory       int    `json:"max_history,omitempty"`
	RemoveDuplicates bool   `json:"remove_duplicates,omitempty"`
	StateFeaturizer  string `json:"state_featurizer,omitempty"`
}

func stateFeaturizerName(sf StateFeaturizer) string {
	if sf == nil {
		return ""
	}
	return sf.Name()
}

func persistConfig(dir string, cfg persistedConfig) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return errors.Wrapf(err, "error creating directory %s", dir)
	}
	path := filepath.Join(dir, ConfigFilename)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating %s", path)
	}
	if err := json.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return errors.Wrapf(err, "error writing %s", path)
	}
	return f.Close()
}

// Load reconstructs a featurizer from the configuration written by
// Persist. A missing or unreadable configuration yields (nil, nil):
// training can always start from scratch.
func Load(dir string) (Featurizer, error) {
	buf, err := ioutil.ReadFile(filepath.Join(dir, ConfigFilename))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error reading featurizer config in %s", dir)
	}

	var cfg persistedConfig
	if err := json.Unmarshal(buf, &cfg); err != nil {
		return nil, nil
	}

	sf, ok := stateFeaturizerByName(cfg.StateFeaturizer)
	if !ok {
		return nil, nil
	}

	switch cfg.Strategy {
	case fullDialogueStrategy:
		return NewFullDialogueFeaturizer(sf), nil
	case maxHistoryStrategy:
		return NewMaxHistoryFeaturizer(sf, cfg.MaxHistory, cfg.RemoveDuplicates), nil
	case intentMaxHistoryStrategy:
		return NewIntentMaxHistoryFeaturizer(sf, cfg.MaxHistory, cfg.RemoveDuplicates), nil
	default:
		return nil, nil
	}
}

func stateFeaturizerByName(name string) (StateFeaturizer, bool) {
	switch name {
	case "":
		return nil, true
	case "single_state":
		return features.NewSingleStateFeaturizer(), true
	case "intent_tokenizer":
		return features.NewIntentTokenizerSingleStateFeaturizer(), true
	default:
		return nil, false
	}
}
