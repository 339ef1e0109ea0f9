package notifier

import (
	"fmt"
	"strings"
	"time"

	"HomeworkSentinel/internal/model"
)

// FormatDigest formats a cycle summary for Telegram.
func FormatDigest(sum *model.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 Сводка за сутки | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Циклов опроса: %d\n", sum.Cycles))
	b.WriteString(fmt.Sprintf("Уведомлений: %d\n", sum.Notified))
	b.WriteString(fmt.Sprintf("Без изменений: %d\n", sum.Idle))
	b.WriteString(fmt.Sprintf("Сбоев: %d\n", sum.Failed))
	return b.String()
}

// FormatLastChange formats the most recent recorded status change.
func FormatLastChange(rec *model.CycleRecord) string {
	if rec == nil {
		return "Изменений статуса ещё не было."
	}
	var b strings.Builder
	b.WriteString("📌 Последнее изменение статуса\n\n")
	b.WriteString(fmt.Sprintf("Работа: %s\n", rec.HomeworkName))
	b.WriteString(fmt.Sprintf("Статус: %s\n", rec.Status))
	b.WriteString(fmt.Sprintf("Время: %s\n", rec.At.Format("2006-01-02 15:04")))
	return b.String()
}
