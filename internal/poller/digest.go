package poller

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"HomeworkSentinel/internal/notifier"
)

// RegisterDigest schedules the daily summary task on a seconds-enabled cron.
func (p *Poller) RegisterDigest(cronSpec string) error {
	p.cron = cron.New(cron.WithSeconds())
	if _, err := p.cron.AddFunc(cronSpec, p.sendDigest); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	return nil
}

// StartDigest starts the digest scheduler.
func (p *Poller) StartDigest() {
	if p.cron != nil {
		p.cron.Start()
		p.log.Info("digest scheduler started")
	}
}

// StopDigest stops the digest scheduler gracefully.
func (p *Poller) StopDigest() {
	if p.cron != nil {
		p.cron.Stop()
		p.log.Info("digest scheduler stopped")
	}
}

func (p *Poller) sendDigest() {
	sum, err := p.Recorder.Summarize(time.Now().Add(-24 * time.Hour))
	if err != nil {
		p.log.Error("summarize cycles", zap.Error(err))
		return
	}
	p.Notifier.Notify(notifier.FormatDigest(sum))
}

// HandleCommand processes a chat command and returns a reply.
func (p *Poller) HandleCommand(command string) string {
	switch command {
	case "/status":
		rec, err := p.Recorder.LastChange()
		if err != nil {
			p.log.Error("load last change", zap.Error(err))
			return "Не удалось получить последний статус."
		}
		return notifier.FormatLastChange(rec)
	case "/digest":
		sum, err := p.Recorder.Summarize(time.Now().Add(-24 * time.Hour))
		if err != nil {
			p.log.Error("summarize cycles", zap.Error(err))
			return "Не удалось собрать сводку."
		}
		return notifier.FormatDigest(sum)
	default:
		return "Доступные команды:\n• /status — последнее изменение статуса\n• /digest — сводка за сутки"
	}
}
