package renamer

import (
	"context"

	"github.com/mydehq/exifname/internal/metadata"
)

// RecordSource supplies the metadata record for one file.
type RecordSource func(ctx context.Context, path string) (*metadata.Record, error)

// Status is the state of a planned rename.
type Status int

const (
	StatusPending  Status = iota // ready to execute
	StatusSkipped                // name already matches
	StatusConflict               // target exists or is claimed by another file
	StatusFailed                 // metadata or rendering failed
	StatusDone                   // renamed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSkipped:
		return "skipped"
	case StatusConflict:
		return "conflict"
	case StatusFailed:
		return "failed"
	case StatusDone:
		return "done"
	}
	return "unknown"
}

// Operation is one planned rename.
type Operation struct {
	SourcePath string
	TargetPath string
	Status     Status
	Err        error
}

// EventType classifies progress events.
type EventType int

const (
	EventDebug EventType = iota
	EventInfo
	EventSuccess
	EventWarning
	EventError
)

// Event is emitted while planning and executing.
type Event struct {
	Type    EventType
	Message string
}

// Result summarises an Execute call.
type Result struct {
	Renamed   int
	Skipped   int
	Conflicts int
	Failed    int
}
