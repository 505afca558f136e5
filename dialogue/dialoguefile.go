package dialogue

import (
	"io/ioutil"

	"github.com/guidoivetta/rasa/errors"
	yaml "gopkg.in/yaml.v2"
)

type eventRecord struct {
	Type         string   `yaml:"type"`
	Name         string   `yaml:"name,omitempty"`
	Text         string   `yaml:"text,omitempty"`
	Intent       string   `yaml:"intent,omitempty"`
	Value        string   `yaml:"value,omitempty"`
	HideRuleTurn bool     `yaml:"hide_rule_turn,omitempty"`
	Entities     []Entity `yaml:"entities,omitempty"`
}

type dialogueFile struct {
	SenderID string        `yaml:"sender_id"`
	Events   []eventRecord `yaml:"events"`
}

// FromDialogueFile loads a recorded dialogue from a YAML file.
func FromDialogueFile(path string) (*Tracker, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading dialogue file %s", path)
	}
	return FromDialogueBytes(buf)
}

// FromDialogueBytes parses a recorded dialogue from YAML.
func FromDialogueBytes(buf []byte) (*Tracker, error) {
	var df dialogueFile
	if err := yaml.Unmarshal(buf, &df); err != nil {
		return nil, errors.Wrapf(err, "error parsing dialogue")
	}

	events := make([]Event, 0, len(df.Events))
	for _, rec := range df.Events {
		switch rec.Type {
		case "action":
			events = append(events, &ActionExecuted{
				ActionName:   rec.Name,
				HideRuleTurn: rec.HideRuleTurn,
			})
		case "user":
			events = append(events, &UserUttered{
				Text:       rec.Text,
				IntentName: rec.Intent,
				Entities:   rec.Entities,
			})
		case "bot":
			events = append(events, &BotUttered{Text: rec.Text})
		case "slot":
			events = append(events, &SlotSet{Name: rec.Name, Value: rec.Value})
		default:
			return nil, errors.Errorf("unknown event type %q", rec.Type)
		}
	}
	return FromEvents(df.SenderID, events), nil
}
