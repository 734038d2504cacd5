package domain

import "time"

// StampEvent is one clock action, biometric or manual.
//
// ActualTime is the wall-clock instant and the source of truth. RoundedTime
// and WorkDate are derived from it at insert time (via the timeclock package)
// and are never recomputed implicitly afterward; manual day edits re-derive
// them explicitly before re-inserting.
type StampEvent struct {
	ID           string
	EmployeeCode string
	Kind         StampKind
	ActualTime   time.Time
	RoundedTime  time.Time

	// WorkDate is the business date the stamp counts toward, formatted
	// 2006-01-02. A 01:00 clock-out can carry the previous day's date when
	// the cutoff is configured after 01:00. String-keyed so the ledger can
	// group by it directly.
	WorkDate string

	CreatedAt time.Time
}

// MaxStampsPerDay caps how many events one employee may record against a
// single work date.
const MaxStampsPerDay = 10

// WorkDateLayout is the format for WorkDate values.
const WorkDateLayout = "2006-01-02"
