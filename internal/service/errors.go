package service

import "errors"

var (
	// ErrDuplicateStamp means the same kind was already stamped for the same
	// work date. Fatal to the insert; surfaced to the operator, no retry.
	ErrDuplicateStamp = errors.New("stamp already recorded for this work date")

	// ErrMalformedManualTime means a hand-edited time string failed to
	// parse. The whole edit is rolled back per the day-replace contract.
	ErrMalformedManualTime = errors.New("manual time is not a valid HH:MM value")

	// ErrInvalidSettings means a settings update was rejected by validation.
	ErrInvalidSettings = errors.New("invalid settings")
)
