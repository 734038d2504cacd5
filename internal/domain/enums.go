package domain

type StampKind string

const (
	StampIn  StampKind = "IN"
	StampOut StampKind = "OUT"
)

type SequenceStatus string

const (
	// SequenceOK means the incoming stamp follows the previous one normally.
	SequenceOK SequenceStatus = "ok"

	// SequenceDuplicate means the same kind was already stamped for the same
	// work date. This is the only fatal classification: the insert is refused.
	SequenceDuplicate SequenceStatus = "duplicate"

	// SequenceMissingPriorOut means two clock-ins in a row (the previous
	// clock-out was never recorded). Advisory: the insert proceeds after
	// operator confirmation.
	SequenceMissingPriorOut SequenceStatus = "missing_prior_out"

	// SequenceMissingPriorIn means a clock-out with no clock-in since the
	// last clock-out. Advisory, same as SequenceMissingPriorOut.
	SequenceMissingPriorIn SequenceStatus = "missing_prior_in"
)

// Fatal reports whether the classification must block the insert.
func (s SequenceStatus) Fatal() bool {
	return s == SequenceDuplicate
}

type RoundingDirection string

const (
	RoundUp   RoundingDirection = "up"
	RoundDown RoundingDirection = "down"
)
