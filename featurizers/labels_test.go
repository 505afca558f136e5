package featurizers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_EncodeActionLabels(t *testing.T) {
	labels, err := EncodeActionLabels([][]string{
		{"utter_greet", "utter_cheer_up"},
		{"utter_greet", "utter_did_that_help", "utter_goodbye"},
	}, moodbotDomain())
	require.NoError(t, err)
	require.Equal(t, [][]int{{15, 12}, {15, 13, 14}}, labels)
}

func Test_EncodeActionLabels_Unknown(t *testing.T) {
	_, err := EncodeActionLabels([][]string{{"utter_nope"}}, moodbotDomain())
	require.Error(t, err)
}

func Test_EncodeIntentLabels(t *testing.T) {
	labels, err := EncodeIntentLabels([][]string{
		{"greet"},
		{"mood_great", "mood_unhappy"},
	}, moodbotDomain())
	require.NoError(t, err)

	// Intent ids start past the 17 actions; short rows are padded.
	require.Equal(t, [][]int{{22, PadLabelID}, {23, 24}}, labels)
}

func Test_PadLabelRows(t *testing.T) {
	require.Equal(t, [][]int{
		{1, PadLabelID, PadLabelID},
		{2, 3, PadLabelID},
		{4, 5, 6},
	}, PadLabelRows([][]int{{1}, {2, 3}, {4, 5, 6}}))
}

func Test_PadLabelRows_Uniform(t *testing.T) {
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, PadLabelRows([][]int{{1, 2}, {3, 4}}))
}

func Test_SentinelsAreDisjoint(t *testing.T) {
	require.NotEqual(t, PadLabelID, AbsentLabelID)
	require.True(t, PadLabelID < 0)
	require.True(t, AbsentLabelID < 0)
}
