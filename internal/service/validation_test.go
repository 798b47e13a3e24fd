package service

import (
	"errors"
	"testing"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
)

func validSubmission() *entity.CreateQuoteInput {
	return &entity.CreateQuoteInput{
		Price:       "1249.50",
		WorkTime:    "14",
		Email:       "sparky@example.com",
		PhoneNumber: "",
		Description: "Full rewire of the kitchen and laundry",
	}
}

func requireViolations(t *testing.T, err error, fields ...string) {
	t.Helper()

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(validationErr.Violations) != len(fields) {
		t.Fatalf("expected %d violations, got %d: %v", len(fields), len(validationErr.Violations), validationErr.Violations)
	}
	for i, field := range fields {
		if validationErr.Violations[i].Field != field {
			t.Fatalf("violation %d: expected field %q, got %q", i, field, validationErr.Violations[i].Field)
		}
	}
}

func TestQuoteValidator(t *testing.T) {
	qv := NewQuoteValidator()

	t.Run("valid submission passes", func(t *testing.T) {
		if err := qv.Validate(validSubmission()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("phone instead of email passes", func(t *testing.T) {
		input := validSubmission()
		input.Email = ""
		input.PhoneNumber = "+64 21 555 0123"
		if err := qv.Validate(input); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("non-numeric price", func(t *testing.T) {
		input := validSubmission()
		input.Price = "a lot"
		requireViolations(t, qv.Validate(input), "Price")
	})

	t.Run("negative price", func(t *testing.T) {
		input := validSubmission()
		input.Price = "-10.00"
		requireViolations(t, qv.Validate(input), "Price")
	})

	t.Run("non-numeric work time", func(t *testing.T) {
		input := validSubmission()
		input.WorkTime = "two weeks"
		requireViolations(t, qv.Validate(input), "WorkTime")
	})

	t.Run("negative work time", func(t *testing.T) {
		input := validSubmission()
		input.WorkTime = "-3"
		requireViolations(t, qv.Validate(input), "WorkTime")
	})

	t.Run("empty description", func(t *testing.T) {
		input := validSubmission()
		input.Description = ""
		requireViolations(t, qv.Validate(input), "Description")
	})

	t.Run("description over length ceiling", func(t *testing.T) {
		input := validSubmission()
		for len(input.Description) <= 255 {
			input.Description += " and more"
		}
		requireViolations(t, qv.Validate(input), "Description")
	})

	t.Run("neither email nor phone", func(t *testing.T) {
		input := validSubmission()
		input.Email = ""
		input.PhoneNumber = ""
		requireViolations(t, qv.Validate(input), "Email", "PhoneNumber")
	})

	t.Run("malformed email", func(t *testing.T) {
		input := validSubmission()
		input.Email = "not-an-email"
		requireViolations(t, qv.Validate(input), "Email")
	})

	t.Run("malformed phone", func(t *testing.T) {
		input := validSubmission()
		input.Email = ""
		input.PhoneNumber = "call me maybe"
		requireViolations(t, qv.Validate(input), "PhoneNumber")
	})

	t.Run("multiple violations reported together", func(t *testing.T) {
		input := &entity.CreateQuoteInput{
			Price:       "-5",
			WorkTime:    "soon",
			Email:       "",
			PhoneNumber: "",
			Description: "",
		}
		requireViolations(t, qv.Validate(input), "Price", "WorkTime", "Description", "Email", "PhoneNumber")
	})
}
