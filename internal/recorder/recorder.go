package recorder

import (
	"time"

	"HomeworkSentinel/internal/model"
)

// Recorder persists poll-cycle history for digests and chat commands.
type Recorder interface {
	RecordCycle(rec *model.CycleRecord) error
	Summarize(since time.Time) (*model.Summary, error)
	LastChange() (*model.CycleRecord, error)
	Close() error
}
