package main

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	arg "github.com/alexflint/go-arg"
	"github.com/guidoivetta/rasa/dialogue"
	"github.com/guidoivetta/rasa/domain"
	"github.com/guidoivetta/rasa/featurizers"
	"github.com/guidoivetta/rasa/features"
	"github.com/guidoivetta/rasa/nlu"
	"github.com/guidoivetta/rasa/workerpool"
)

func noErr(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

type trainingExample struct {
	Features   []featurizers.FeaturizedState `json:"features"`
	Labels     []int                         `json:"labels"`
	EntityTags []string                      `json:"entity_tags"`
}

func main() {
	args := struct {
		Domain           string `arg:"required" help:"path to the domain yaml"`
		Dialogues        string `arg:"required" help:"directory of recorded dialogue yaml files"`
		Out              string `arg:"required" help:"output file for JSON-lines training examples"`
		Strategy         string `help:"full_dialogue, max_history or intent_max_history"`
		MaxHistory       int    `help:"trailing window length, 0 for unbounded"`
		RemoveDuplicates bool   `help:"drop exact repeats of (window, label)"`
	}{
		Strategy: "max_history",
	}
	arg.MustParse(&args)

	d, err := domain.FromYAML(args.Domain)
	noErr(err)

	entries, err := ioutil.ReadDir(args.Dialogues)
	noErr(err)

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
			paths = append(paths, filepath.Join(args.Dialogues, name))
		}
	}
	sort.Strings(paths)
	log.Printf("loading %d dialogues from %s", len(paths), args.Dialogues)

	trackers := make([]*dialogue.Tracker, len(paths))
	pool := workerpool.New(8)
	jobs := make([]workerpool.Job, 0, len(paths))
	for i, path := range paths {
		i, path := i, path
		jobs = append(jobs, func() error {
			tr, err := dialogue.FromDialogueFile(path)
			if err != nil {
				return err
			}
			trackers[i] = tr
			return nil
		})
	}
	pool.Add(jobs)
	noErr(pool.Wait())
	pool.Stop()

	var featurizer featurizers.Featurizer
	switch args.Strategy {
	case "full_dialogue":
		featurizer = featurizers.NewFullDialogueFeaturizer(features.NewSingleStateFeaturizer())
	case "max_history":
		featurizer = featurizers.NewMaxHistoryFeaturizer(features.NewSingleStateFeaturizer(), args.MaxHistory, args.RemoveDuplicates)
	case "intent_max_history":
		featurizer = featurizers.NewIntentMaxHistoryFeaturizer(features.NewIntentTokenizerSingleStateFeaturizer(), args.MaxHistory, args.RemoveDuplicates)
	default:
		log.Fatalf("unknown strategy %s", args.Strategy)
	}

	interp := nlu.RegexInterpreter{}
	feats, labels, entityTags, err := featurizer.FeaturizeTrackers(trackers, d, interp)
	noErr(err)
	log.Printf("featurized %d trackers into %d examples", len(trackers), len(feats))

	out, err := os.Create(args.Out)
	noErr(err)
	defer out.Close()

	enc := json.NewEncoder(out)
	for i := range feats {
		noErr(enc.Encode(trainingExample{
			Features:   feats[i],
			Labels:     labels[i],
			EntityTags: entityTags[i],
		}))
	}
	log.Printf("wrote %d examples to %s", len(feats), args.Out)
}
