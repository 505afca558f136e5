package featurizers

import (
	"github.com/guidoivetta/rasa/domain"
	"github.com/guidoivetta/rasa/errors"
)

const (
	// PadLabelID is the reserved pad sentinel. It fills every position
	// created when ragged label rows are widened to the batch maximum
	// width and is disjoint from all valid ids. Downstream consumers must
	// mask it out of the loss.
	PadLabelID = -2

	// AbsentLabelID marks a missing label inside a ragged multi-label row
	// before widening. Exported for consumers that build masks over ragged
	// rows; it never collides with PadLabelID or a valid id.
	AbsentLabelID = -1
)

// EncodeActionLabels maps per-dialogue action name sequences to their
// stable ids. Rows stay ragged, one per input row. Unknown names are a
// contract violation.
func EncodeActionLabels(rows [][]string, d *domain.Domain) ([][]int, error) {
	ix := domain.NewLabelIndex(d)
	out := make([][]int, 0, len(rows))
	for _, row := range rows {
		ids := make([]int, 0, len(row))
		for _, name := range row {
			id, err := ix.ActionID(name)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		out = append(out, ids)
	}
	return out, nil
}

// EncodeIntentLabels maps multi-label intent rows to their stable ids,
// offset past the action enumeration, and widens every row to the batch
// maximum width with PadLabelID.
func EncodeIntentLabels(rows [][]string, d *domain.Domain) ([][]int, error) {
	ix := domain.NewLabelIndex(d)
	out := make([][]int, 0, len(rows))
	for _, row := range rows {
		ids := make([]int, 0, len(row))
		for _, name := range row {
			id, err := ix.IntentID(name)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		out = append(out, ids)
	}
	return PadLabelRows(out), nil
}

// PadLabelRows widens ragged id rows to the batch maximum width, filling
// unused positions with PadLabelID. Already-uniform input is returned
// unchanged in content.
func PadLabelRows(rows [][]int) [][]int {
	var width int
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	out := make([][]int, 0, len(rows))
	for _, row := range rows {
		padded := make([]int, width)
		copy(padded, row)
		for i := len(row); i < width; i++ {
			padded[i] = PadLabelID
		}
		out = append(out, padded)
	}
	return out
}

func encodeSingleActionRows(actions []string, d *domain.Domain) ([][]int, error) {
	rows := make([][]string, 0, len(actions))
	for _, name := range actions {
		rows = append(rows, []string{name})
	}
	ids, err := EncodeActionLabels(rows, d)
	if err != nil {
		return nil, errors.Wrapf(err, "error encoding action labels")
	}
	return ids, nil
}
