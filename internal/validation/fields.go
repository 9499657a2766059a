// Package validation checks form input and reports problems per field.
// Invalid input never produces an error, only a FormResult with messages.
package validation

import (
	"regexp"
	"strings"
)

type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldBio             Field = "bio"
	FieldTitle           Field = "title"
	FieldCompany         Field = "company"
	FieldLocation        Field = "location"
	FieldPay             Field = "pay"
	FieldDuration        Field = "duration"
	FieldCategory        Field = "category"
	FieldDescription     Field = "description"
	FieldSkills          Field = "skills"
	FieldRequirements    Field = "requirements"
	FieldBenefits        Field = "benefits"
	FieldExperience      Field = "experience"
)

// FormResult is valid iff Errors is empty.
type FormResult struct {
	IsValid bool
	Errors  map[Field]string
}

type formErrors map[Field]string

// add keeps the first message reported for a field.
func (e formErrors) add(field Field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

func (e formErrors) result() FormResult {
	return FormResult{IsValid: len(e) == 0, Errors: e}
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidName accepts ASCII letters and spaces only, at least two characters after trimming.
// Hyphenated names and apostrophes are rejected.
func IsValidName(s string) bool {
	trimmed := strings.TrimSpace(s)
	return len(trimmed) >= 2 && namePattern.MatchString(trimmed)
}

func checkName(errs formErrors, name string) {
	switch {
	case strings.TrimSpace(name) == "":
		errs.add(FieldName, "Name is required")
	case !IsValidName(name):
		errs.add(FieldName, "Please enter a valid name")
	}
}

func checkEmail(errs formErrors, email string) {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		errs.add(FieldEmail, "Email is required")
	case !IsValidEmail(email):
		errs.add(FieldEmail, "Please enter a valid email address")
	}
}
