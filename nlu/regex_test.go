package nlu

import (
	"testing"

	"github.com/guidoivetta/rasa/dialogue"
	"github.com/stretchr/testify/require"
)

func Test_ParseIntentShorthand(t *testing.T) {
	msg, err := RegexInterpreter{}.Parse("/greet")
	require.NoError(t, err)
	require.Equal(t, Message{Text: "/greet", Intent: "greet", Confidence: 1.0}, msg)
}

func Test_ParseEntities(t *testing.T) {
	msg, err := RegexInterpreter{}.Parse(`/inform{"destination": "paris", "departure": "lyon"}`)
	require.NoError(t, err)
	require.Equal(t, "inform", msg.Intent)
	require.Equal(t, []dialogue.Entity{
		{Type: "departure", Value: "lyon"},
		{Type: "destination", Value: "paris"},
	}, msg.Entities)
}

func Test_ParsePlainText(t *testing.T) {
	msg, err := RegexInterpreter{}.Parse("hello there")
	require.NoError(t, err)
	require.Equal(t, Message{Text: "hello there"}, msg)
}

func Test_ParseMalformedPayload(t *testing.T) {
	msg, err := RegexInterpreter{}.Parse(`/greet{"name": `)
	require.NoError(t, err)
	require.Equal(t, "greet", msg.Intent)
	require.Empty(t, msg.Entities)
}
