package domain

import (
	"io/ioutil"

	"github.com/guidoivetta/rasa/errors"
	yaml "gopkg.in/yaml.v2"
)

type schema struct {
	Intents   []interface{}          `yaml:"intents"`
	Actions   []string               `yaml:"actions"`
	Responses map[string]interface{} `yaml:"responses"`
	Slots     map[string]interface{} `yaml:"slots"`
}

// FromYAML loads a domain schema file.
func FromYAML(path string) (*Domain, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading domain file %s", path)
	}
	return FromBytes(buf)
}

// FromBytes parses a domain schema. Intents may be plain names or maps with
// per-intent configuration; only the names matter for label ids. Response
// names count as actions.
func FromBytes(buf []byte) (*Domain, error) {
	var s schema
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return nil, errors.Wrapf(err, "error parsing domain")
	}

	intents := make([]string, 0, len(s.Intents))
	for _, raw := range s.Intents {
		switch v := raw.(type) {
		case string:
			intents = append(intents, v)
		case map[interface{}]interface{}:
			for key := range v {
				if name, ok := key.(string); ok {
					intents = append(intents, name)
				}
			}
		default:
			return nil, errors.Errorf("unsupported intent entry %v", raw)
		}
	}

	responses := make([]string, 0, len(s.Responses))
	for name := range s.Responses {
		responses = append(responses, name)
	}

	slots := make([]string, 0, len(s.Slots))
	for name := range s.Slots {
		slots = append(slots, name)
	}

	return New(intents, s.Actions, responses, slots), nil
}
