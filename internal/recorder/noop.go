package recorder

import (
	"time"

	"HomeworkSentinel/internal/model"
)

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordCycle(_ *model.CycleRecord) error { return nil }

func (n *NoopRecorder) Summarize(since time.Time) (*model.Summary, error) {
	return &model.Summary{From: since}, nil
}

func (n *NoopRecorder) LastChange() (*model.CycleRecord, error) { return nil, nil }

func (n *NoopRecorder) Close() error { return nil }
