package model

import (
	"time"

	"github.com/google/uuid"
)

// Event is one unit of telemetry flowing through a pipeline: a named
// occurrence with free-form fields. Sinks record events, stores persist
// them, sources produce them.
type Event struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Time   time.Time      `json:"time"`
	Fields map[string]any `json:"fields,omitempty"`
}

// NewEvent returns an Event with a fresh ID and the current timestamp.
func NewEvent(name string, fields map[string]any) Event {
	return Event{ID: uuid.NewString(), Name: name, Time: time.Now(), Fields: fields}
}
