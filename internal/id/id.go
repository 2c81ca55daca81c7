package id

import (
	"fmt"
	"strconv"
	"strings"
)

// eventPrefix starts every activity event ID.
const eventPrefix = "evt-"

// FormatEventID returns an event ID like "evt-4".
func FormatEventID(seq int) string {
	return eventPrefix + strconv.Itoa(seq)
}

// ParseEventID parses "evt-4" into its sequence number.
func ParseEventID(id string) (int, error) {
	rest, ok := strings.CutPrefix(id, eventPrefix)
	if !ok {
		return 0, fmt.Errorf("invalid event ID format: %q", id)
	}
	seq, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid sequence in event ID %q: %w", id, err)
	}
	if seq < 1 {
		return 0, fmt.Errorf("invalid sequence in event ID %q: must be positive", id)
	}
	return seq, nil
}

// NextEventSeq returns one past the highest sequence among ids.
// IDs that do not parse are ignored.
func NextEventSeq(ids []string) int {
	maxSeq := 0
	for _, s := range ids {
		seq, err := ParseEventID(s)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}
