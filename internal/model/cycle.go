package model

import "time"

// CycleOutcome classifies one poll cycle.
type CycleOutcome string

const (
	OutcomeNotified CycleOutcome = "NOTIFIED"
	OutcomeIdle     CycleOutcome = "IDLE"
	OutcomeFailed   CycleOutcome = "FAILED"
)

// CycleRecord is the persisted result of a single poll cycle.
type CycleRecord struct {
	At           time.Time
	Outcome      CycleOutcome
	HomeworkName string
	Status       string
	Message      string
	ErrorKind    string
	ErrorText    string
	Cursor       int64
}

// Summary aggregates cycle history over a time window.
type Summary struct {
	From     time.Time
	Cycles   int
	Notified int
	Idle     int
	Failed   int
}
