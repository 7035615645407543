package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateJobInput, JobInput{})
	v.RegisterStructValidation(validateExperienceInput, ExperienceInput{})
	return v
}

// Validate checks an input struct against its declared rules. It must pass
// before the input is allowed anywhere near the network.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%s: %w", strings.Join(msgs, "; "), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param())
	case "salary_range":
		return "salaryTo must not be lower than salaryFrom"
	case "end_date":
		return "a past position requires an end date"
	case "no_end_date":
		return "a current position must not carry an end date"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// validateJobInput enforces the salary invariant: a non-negotiable job needs
// both bounds, and the range must not be inverted.
func validateJobInput(sl validator.StructLevel) {
	in := sl.Current().Interface().(JobInput)

	if !in.IsNegotiable {
		if in.SalaryFrom == nil {
			sl.ReportError(in.SalaryFrom, "SalaryFrom", "salaryFrom", "required", "")
		}
		if in.SalaryTo == nil {
			sl.ReportError(in.SalaryTo, "SalaryTo", "salaryTo", "required", "")
		}
	}
	if in.SalaryFrom != nil && in.SalaryTo != nil && *in.SalaryTo < *in.SalaryFrom {
		sl.ReportError(in.SalaryTo, "SalaryTo", "salaryTo", "salary_range", "")
	}
}

// validateExperienceInput enforces the end-date invariant and date ordering.
func validateExperienceInput(sl validator.StructLevel) {
	in := sl.Current().Interface().(ExperienceInput)

	if in.CurrentlyWorking && in.To != nil {
		sl.ReportError(in.To, "To", "to", "no_end_date", "")
	}
	if !in.CurrentlyWorking {
		if in.To == nil {
			sl.ReportError(in.To, "To", "to", "end_date", "")
		} else if in.From != nil && in.To.Before(*in.From) {
			sl.ReportError(in.To, "To", "to", "end_date", "")
		}
	}
}
