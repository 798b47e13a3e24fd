package service

import (
	"errors"
	"strings"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrQuoteNotFound = errors.New("quote not found")
	ErrUserNotFound  = errors.New("user not found")

	ErrNotJobOwner    = errors.New("user is not the owner of the job")
	ErrNotQuoteSender = errors.New("user is not the sender of the quote")

	ErrDuplicateQuote = errors.New("user already has a pending quote on this job")
	ErrJobNotPosted   = errors.New("job is not open for quotes")

	ErrMalformedQuote = errors.New("quote carries a non-numeric price or work time")

	ErrInvalidSide            = errors.New("unrecognized comparison side")
	ErrInsufficientCandidates = errors.New("fewer than two tradies have pending quotes")
	ErrNoCandidate            = errors.New("no pending quote left to accept")

	// ErrStaleState means the quote changed status between read and write;
	// the caller should re-fetch and retry once before giving up.
	ErrStaleState = errors.New("quote was already resolved by another request")
)

// FieldViolation is one broken validation rule on one field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every broken rule at once so the form can render
// all messages in a single round trip.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	var builder strings.Builder
	builder.WriteString("validation failed: ")
	for i, v := range e.Violations {
		if i > 0 {
			builder.WriteString("; ")
		}
		builder.WriteString(v.Field + ": " + v.Message)
	}

	return builder.String()
}
