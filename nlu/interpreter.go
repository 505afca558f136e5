package nlu

import (
	"github.com/guidoivetta/rasa/dialogue"
)

// Message is the interpretation of one user utterance.
type Message struct {
	Text       string
	Intent     string
	Confidence float64
	Entities   []dialogue.Entity
}

// Interpreter turns raw user text into a Message. Implementations must be
// deterministic for equal inputs.
type Interpreter interface {
	Parse(text string) (Message, error)
}
