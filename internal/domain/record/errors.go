package record

import "errors"

var (
	// ErrRecordNotFound indicates the record doesn't exist.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidInput indicates invalid input for record operations.
	ErrInvalidInput = errors.New("invalid record input")
	// ErrNoStarred indicates an appraisal summary was requested with nothing starred.
	ErrNoStarred = errors.New("no starred records")
)
