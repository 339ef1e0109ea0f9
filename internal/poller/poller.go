package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"HomeworkSentinel/internal/homework"
	"HomeworkSentinel/internal/model"
	"HomeworkSentinel/internal/practicum"
	"HomeworkSentinel/internal/recorder"
)

// StatusFetcher fetches homework statuses updated since a timestamp.
type StatusFetcher interface {
	HomeworkStatuses(ctx context.Context, since int64) (any, error)
}

// Notifier delivers chat messages best-effort.
type Notifier interface {
	Notify(text string)
}

// Poller drives the fetch → check → parse → notify cycle on a fixed interval.
type Poller struct {
	Fetcher  StatusFetcher
	Notifier Notifier
	Recorder recorder.Recorder
	Interval time.Duration

	cron   *cron.Cron
	cursor int64
	log    *zap.Logger
}

// New creates a Poller with the cursor set to now. A restarted process
// always resumes from the current time.
func New(f StatusFetcher, n Notifier, rec recorder.Recorder, interval time.Duration, log *zap.Logger) *Poller {
	return &Poller{
		Fetcher:  f,
		Notifier: n,
		Recorder: rec,
		Interval: interval,
		cursor:   time.Now().Unix(),
		log:      log,
	}
}

// Run executes poll cycles until ctx is cancelled. Every cycle, success or
// failure, is followed by the same fixed sleep: no backoff, no jitter.
func (p *Poller) Run(ctx context.Context) {
	p.log.Info("poller started", zap.Duration("interval", p.Interval), zap.Int64("cursor", p.cursor))
	for {
		p.runCycle(ctx)
		select {
		case <-ctx.Done():
			p.log.Info("poller stopped")
			return
		case <-time.After(p.Interval):
		}
	}
}

func (p *Poller) runCycle(ctx context.Context) {
	payload, err := p.Fetcher.HomeworkStatuses(ctx, p.cursor)
	if err != nil {
		p.failCycle(err)
		return
	}

	// The server-supplied cursor is taken as soon as the fetch succeeds, so
	// a failure later in the cycle never loses it.
	if ts, ok := homework.CurrentDate(payload); ok {
		p.cursor = ts
	}

	homeworks, err := homework.CheckResponse(payload)
	if err != nil {
		p.failCycle(err)
		return
	}
	if len(homeworks) == 0 {
		p.log.Info("no new homework statuses", zap.Int64("cursor", p.cursor))
		p.record(&model.CycleRecord{Outcome: model.OutcomeIdle, Cursor: p.cursor})
		return
	}

	// Only the first record, the most recent submission, is consulted.
	message, err := homework.ParseStatus(homeworks[0])
	if err != nil {
		p.failCycle(err)
		return
	}

	p.Notifier.Notify(message)
	p.log.Info("status change relayed", zap.String("message", message))

	rec := &model.CycleRecord{Outcome: model.OutcomeNotified, Message: message, Cursor: p.cursor}
	if hw, ok := homeworks[0].(map[string]any); ok {
		rec.HomeworkName, _ = hw["homework_name"].(string)
		rec.Status, _ = hw["status"].(string)
	}
	p.record(rec)
}

// failCycle handles every cycle-fatal error: classify, log, best-effort
// relay of a freshly derived error message to the chat, record.
func (p *Poller) failCycle(err error) {
	kind := classify(err)
	p.log.Error("poll cycle failed", zap.String("kind", kind), zap.Error(err))
	p.Notifier.Notify(fmt.Sprintf("Сбой в работе программы: %v", err))
	p.record(&model.CycleRecord{
		Outcome:   model.OutcomeFailed,
		ErrorKind: kind,
		ErrorText: err.Error(),
		Cursor:    p.cursor,
	})
}

func (p *Poller) record(rec *model.CycleRecord) {
	rec.At = time.Now()
	if err := p.Recorder.RecordCycle(rec); err != nil {
		p.log.Error("record cycle", zap.Error(err))
	}
}

// classify maps a cycle error to its kind. The set is closed; anything
// outside it is a programming error surfaced as "internal".
func classify(err error) string {
	var (
		connErr    *practicum.ConnectivityError
		statusErr  *practicum.UpstreamStatusError
		decodeErr  *practicum.DecodeError
		shapeErr   *homework.ShapeError
		missingErr *homework.MissingFieldError
		verdictErr *homework.UnknownVerdictError
	)
	switch {
	case errors.As(err, &connErr):
		return "connectivity"
	case errors.As(err, &statusErr):
		return "upstream_status"
	case errors.As(err, &decodeErr):
		return "decode"
	case errors.As(err, &shapeErr):
		return "shape"
	case errors.As(err, &missingErr):
		return "missing_field"
	case errors.As(err, &verdictErr):
		return "unknown_verdict"
	default:
		return "internal"
	}
}
