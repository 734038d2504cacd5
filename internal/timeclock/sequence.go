package timeclock

import "github.com/kintai-dev/kintai/internal/domain"

// ClassifySequence checks an incoming stamp against the employee's single
// most recent event. This is a two-state lookback, not a state machine:
// only the latest event matters.
//
// Only SequenceDuplicate blocks the insert. The missing-pair statuses are
// advisory; the insert proceeds once the operator confirms.
func ClassifySequence(latest *domain.StampEvent, kind domain.StampKind, workDate string) domain.SequenceStatus {
	if latest == nil {
		return domain.SequenceOK
	}
	if latest.Kind == kind && latest.WorkDate == workDate {
		return domain.SequenceDuplicate
	}
	if kind == domain.StampIn && latest.Kind == domain.StampIn {
		return domain.SequenceMissingPriorOut
	}
	if kind == domain.StampOut && latest.Kind == domain.StampOut {
		return domain.SequenceMissingPriorIn
	}
	return domain.SequenceOK
}
