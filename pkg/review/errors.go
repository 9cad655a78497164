package review

import "errors"

// Failure kinds. Operations wrap one of these with context; callers
// match with errors.Is. State is never changed when one is returned.
var (
	// ErrValidationRejected covers empty text, out-of-range ratings and
	// unknown category, tab, kind or action keys.
	ErrValidationRejected = errors.New("validation rejected")

	// ErrPreconditionUnmet covers submitting an unrated score and
	// generating content with no selected source.
	ErrPreconditionUnmet = errors.New("precondition unmet")

	// ErrLookupMiss covers unknown source, note and turn references.
	ErrLookupMiss = errors.New("lookup miss")
)
