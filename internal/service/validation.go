package service

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,14}$`)

// quoteFields mirrors the raw submission form. Price and work time stay
// strings here: "not a number" is a validation outcome, not a parse panic.
type quoteFields struct {
	Price       string `validate:"required,decimal"`
	WorkTime    string `validate:"required,wholedays"`
	Description string `validate:"required,max=255"`
	Email       string `validate:"required_without=PhoneNumber,omitempty,email"`
	PhoneNumber string `validate:"required_without=Email,omitempty,phone"`
}

// QuoteValidator checks field-level rules on a submission and reports every
// broken rule together rather than failing fast.
type QuoteValidator struct {
	validate *validator.Validate
}

func NewQuoteValidator() *QuoteValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// non-negative decimal, e.g. "1249.50"
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		price, err := strconv.ParseFloat(fl.Field().String(), 64)

		return err == nil && price >= 0
	})

	// non-negative whole number of days
	_ = v.RegisterValidation("wholedays", func(fl validator.FieldLevel) bool {
		days, err := strconv.Atoi(fl.Field().String())

		return err == nil && days >= 0
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &QuoteValidator{validate: v}
}

func (qv *QuoteValidator) Validate(input *entity.CreateQuoteInput) error {
	fields := quoteFields{
		Price:       input.Price,
		WorkTime:    input.WorkTime,
		Description: input.Description,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	}

	err := qv.validate.Struct(fields)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	violations := make([]FieldViolation, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, FieldViolation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}

	return &ValidationError{Violations: violations}
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "required_without":
		return "supply an email address or a phone number"
	case "decimal":
		return "must be a non-negative amount"
	case "wholedays":
		return "must be a non-negative whole number of days"
	case "max":
		return "length should be less or equal than " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid phone number"
	}

	return "incorrect value passed"
}
