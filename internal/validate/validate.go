// Package validate holds field and business-rule checks shared by services.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

// Validator runs struct-tag rules and reports the first violation as errs.ErrValidation.
type Validator struct {
	v *validator.Validate
}

// New registers the CRM-specific tags:
//
//	crm_email   local@domain.tld
//	has_digit   at least one digit
//	department  one of model.Departments
//	role        one of model.Roles
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	must("crm_email", func(fl validator.FieldLevel) bool { return Email(fl.Field().String()) == nil })
	must("has_digit", func(fl validator.FieldLevel) bool { return Phone(fl.Field().String()) == nil })
	must("department", func(fl validator.FieldLevel) bool { return slices.Contains(model.Departments, fl.Field().String()) })
	must("role", func(fl validator.FieldLevel) bool { return model.Role(fl.Field().String()).Valid() })
	return &Validator{v: v}
}

// Struct validates s against its `validate` tags.
func (x *Validator) Struct(s any) error {
	err := x.v.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return fmt.Errorf("validate: %w", err)
	}
	fe := ves[0]
	return errs.Validationf("%s: %s", fe.Field(), message(fe))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "crm_email":
		return "invalid email format"
	case "has_digit":
		return "phone number must contain a digit"
	case "department":
		return "must be one of " + strings.Join(model.Departments, ", ")
	case "role":
		return fmt.Sprintf("unknown role %q", fe.Value())
	case "required":
		return "is required"
	case "min":
		if fe.Param() == "1" {
			return "must not be empty"
		}
		return "must be at least " + fe.Param() + " characters"
	}
	return "failed " + fe.Tag()
}

// Email checks the local@domain.tld shape.
func Email(s string) error {
	if !emailRe.MatchString(s) {
		return errs.Validationf("email: invalid email format")
	}
	return nil
}

// Phone requires at least one digit.
func Phone(s string) error {
	if !digitRe.MatchString(s) {
		return errs.Validationf("phone_number: phone number must contain a digit")
	}
	return nil
}

// Status checks the contract status domain.
func Status(s model.ContractStatus) error {
	if !s.Valid() {
		return errs.Validationf("status: must be %s or %s", model.StatusPending, model.StatusSigned)
	}
	return nil
}

// MaxAmount is the first value a NUMERIC(10,2) column cannot hold.
var MaxAmount = decimal.New(1, 8)

// Amounts enforces total > 0 and 0 <= remaining <= total, both fitting NUMERIC(10,2).
func Amounts(total, remaining decimal.Decimal) error {
	if err := storable("total_amount", total); err != nil {
		return err
	}
	if err := storable("remaining_amount", remaining); err != nil {
		return err
	}
	switch {
	case !total.IsPositive():
		return errs.Validationf("total_amount: must be greater than zero")
	case remaining.IsNegative():
		return errs.Validationf("remaining_amount: cannot be negative")
	case remaining.GreaterThan(total):
		return errs.Validationf("remaining_amount: cannot exceed total amount")
	}
	return nil
}

func storable(field string, d decimal.Decimal) error {
	switch {
	case !d.Equal(d.Round(2)):
		return errs.Validationf("%s: at most two decimal places", field)
	case d.Abs().GreaterThanOrEqual(MaxAmount):
		return errs.Validationf("%s: must be less than %s", field, MaxAmount)
	}
	return nil
}

// Schedule enforces start <= end, a non-negative attendee count and a location.
func Schedule(start, end time.Time, attendees int, location string) error {
	switch {
	case end.Before(start):
		return errs.Validationf("end_date: must not be before start date")
	case attendees < 0:
		return errs.Validationf("attendees: cannot be negative")
	case strings.TrimSpace(location) == "":
		return errs.Validationf("location: must not be empty")
	}
	return nil
}
