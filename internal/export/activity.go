package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pocketbank-dev/pocketbank/internal/model"
)

const (
	numEventFields = 5
	colEventID     = 0
	colTitle       = 1
	colDetail      = 2
	colTimeLabel   = 3
	colTone        = 4
)

// ActivityHeader is the header row of an activity snapshot.
var ActivityHeader = []string{"event_id", "title", "detail", "time_label", "tone"}

// WriteActivity writes events as CSV, in the order given (newest first
// when taken from the bank state).
func WriteActivity(w io.Writer, events []model.ActivityEvent) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(ActivityHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range events {
		if err := cw.Write(MarshalEvent(e)); err != nil {
			return fmt.Errorf("writing event %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadActivity reads an activity snapshot. An empty input yields no events.
func ReadActivity(r io.Reader) ([]model.ActivityEvent, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numEventFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var events []model.ActivityEvent
	for i, rec := range records[1:] {
		e, err := UnmarshalEvent(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		events = append(events, e)
	}
	return events, nil
}

// MarshalEvent converts an ActivityEvent to a CSV row.
func MarshalEvent(e model.ActivityEvent) []string {
	row := make([]string, numEventFields)
	row[colEventID] = e.ID
	row[colTitle] = e.Title
	row[colDetail] = e.Detail
	row[colTimeLabel] = e.TimeLabel
	row[colTone] = string(e.Tone)
	return row
}

// UnmarshalEvent converts a CSV row to an ActivityEvent.
func UnmarshalEvent(record []string) (model.ActivityEvent, error) {
	if len(record) != numEventFields {
		return model.ActivityEvent{}, fmt.Errorf("expected %d fields, got %d", numEventFields, len(record))
	}
	tone := model.Tone(record[colTone])
	switch tone {
	case model.ToneNeutral, model.TonePositive, model.ToneWarning:
	default:
		return model.ActivityEvent{}, fmt.Errorf("unknown tone %q", record[colTone])
	}
	return model.ActivityEvent{
		ID:        record[colEventID],
		Title:     record[colTitle],
		Detail:    record[colDetail],
		TimeLabel: record[colTimeLabel],
		Tone:      tone,
	}, nil
}
