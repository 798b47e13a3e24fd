package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/service"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPage     = 1
	defaultPageSize = 5
)

type errorResponse struct {
	Reason string `json:"reason"`
}

type validationResponse struct {
	Reason     string                   `json:"reason"`
	Violations []service.FieldViolation `json:"violations"`
}

func newValidationResponse(err *service.ValidationError) validationResponse {
	return validationResponse{
		Reason:     "Quote fields failed validation",
		Violations: err.Violations,
	}
}

func asValidationError(err error) (*service.ValidationError, bool) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}

	return nil, false
}

func getAllErrorMessages(err error) string {
	var builder strings.Builder
	for _, fe := range err.(validator.ValidationErrors) {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	case "email":
		return "should be a valid email address"
	}

	return "incorrect value passed"
}
