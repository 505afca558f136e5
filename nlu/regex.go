package nlu

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/guidoivetta/rasa/dialogue"
)

// RegexInterpreter parses the /intent{"entity": "value"} shorthand used by
// recorded test dialogues. Text that does not match the shorthand yields a
// zero-intent message, never an error.
type RegexInterpreter struct{}

// Parse implements Interpreter.
func (RegexInterpreter) Parse(text string) (Message, error) {
	if !strings.HasPrefix(text, "/") {
		return Message{Text: text}, nil
	}

	body := strings.TrimPrefix(text, "/")
	intent := body
	var entities []dialogue.Entity
	if i := strings.Index(body, "{"); i >= 0 {
		intent = body[:i]
		var payload map[string]string
		if err := json.Unmarshal([]byte(body[i:]), &payload); err == nil {
			types := make([]string, 0, len(payload))
			for typ := range payload {
				types = append(types, typ)
			}
			sort.Strings(types)
			for _, typ := range types {
				entities = append(entities, dialogue.Entity{Type: typ, Value: payload[typ]})
			}
		}
	}

	return Message{
		Text:       text,
		Intent:     intent,
		Confidence: 1.0,
		Entities:   entities,
	}, nil
}
