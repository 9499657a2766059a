package validation

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/pkg/errors"
	"reflect"
	"strings"
)

var validate = validator.New()

type categoryChecker interface {
	Contains(name string) bool
}

var postingFields = map[string]struct {
	field Field
	label string
}{
	"Title":        {FieldTitle, "Job title"},
	"Company":      {FieldCompany, "Company"},
	"Location":     {FieldLocation, "Location"},
	"PayText":      {FieldPay, "Pay"},
	"DurationText": {FieldDuration, "Duration"},
	"Category":     {FieldCategory, "Category"},
	"Description":  {FieldDescription, "Description"},
	"Skills":       {FieldSkills, "Skills"},
	"Requirements": {FieldRequirements, "Requirements"},
	"Benefits":     {FieldBenefits, "Benefits"},
	"Experience":   {FieldExperience, "Experience"},
}

// ValidateJobPostingForm checks the normalized input and that its category exists in categories.
func ValidateJobPostingForm(input models.JobPostingInput, categories categoryChecker) FormResult {
	input = input.Normalized()
	errs := formErrors{}

	if err := validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			errs.add(FieldTitle, "Form could not be checked")
			return errs.result()
		}
		for _, fe := range fieldErrs {
			addFieldError(errs, fe)
		}
	}

	if input.Category != "" && !categories.Contains(input.Category) {
		errs.add(FieldCategory, "Please choose a valid category")
	}

	return errs.result()
}

func addFieldError(errs formErrors, fe validator.FieldError) {
	name, _, _ := strings.Cut(fe.StructField(), "[")
	meta, ok := postingFields[name]
	if !ok {
		return
	}
	errs.add(meta.field, fieldMessage(meta.label, fe))
}

func fieldMessage(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if strings.Contains(fe.StructField(), "[") {
			return fmt.Sprintf("%s must not contain empty entries", label)
		}
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at most %s entries", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
