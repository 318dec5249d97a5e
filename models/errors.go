package models

import "errors"

// Construction errors returned by NewEntry
var (
	ErrInvalidAction       = errors.New("invalid action")
	ErrInvalidActor        = errors.New("invalid actor")
	ErrMissingSubject      = errors.New("missing subject type and subject")
	ErrSubjectTypeMismatch = errors.New("subject / subject type mismatch")
)
