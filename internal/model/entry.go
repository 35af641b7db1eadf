package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Entry is a single journal note: an absolute instant and the text as typed.
// Entries are append-only; once written they are never edited or deleted.
type Entry struct {
	Timestamp time.Time
	Message   string
}

// wireEntry is the on-disk shape: unix seconds plus the raw message.
type wireEntry struct {
	Timestamp int64  `json:"timestamp"`
	Message   string `json:"message"`
}

// New builds an entry for the given instant, discarding sub-second precision.
func New(ts time.Time, message string) Entry {
	return Entry{Timestamp: ts.Truncate(time.Second).UTC(), Message: message}
}

// NewFromArgs joins free-form command-line words into one note.
func NewFromArgs(ts time.Time, args []string) Entry {
	return New(ts, strings.Join(args, " "))
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireEntry{Timestamp: e.Timestamp.Unix(), Message: e.Message})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var w wireEntry
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.Timestamp = time.Unix(w.Timestamp, 0).UTC()
	e.Message = w.Message
	return nil
}
