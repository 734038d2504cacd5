package domain

import (
	"fmt"
	"regexp"
	"time"
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Employee is one enrolled person: master record plus optional biometric
// profile.
type Employee struct {
	ID      string
	Code    string
	Name    string
	Gender  string
	Address string
	NfcID   string

	// Photo is an opaque image blob shown on confirmation screens. Not
	// interpreted here.
	Photo []byte

	// FaceFeature is the enrolled feature vector encoded as little-endian
	// float32 (see faceid.EncodeVector). Nil means not enrolled: the
	// employee is simply excluded from identification.
	FaceFeature []byte

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateCode checks that Code is non-empty and safe to use as a stable key.
func (e *Employee) ValidateCode() error {
	if e.Code == "" {
		return fmt.Errorf("employee code is required")
	}
	if !codePattern.MatchString(e.Code) {
		return fmt.Errorf("employee code %q may only contain letters, digits, '-' and '_'", e.Code)
	}
	return nil
}

// Enrolled reports whether the employee has a feature vector to match
// against.
func (e *Employee) Enrolled() bool {
	return len(e.FaceFeature) > 0
}
