package validation

import (
	"fmt"
	"unicode/utf8"
)

const maxBioLength = 500

type RegistrationForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type LoginForm struct {
	Email    string
	Password string
}

type ProfileForm struct {
	Name  string
	Email string
	Bio   string
}

func ValidateRegistrationForm(form RegistrationForm) FormResult {
	errs := formErrors{}
	checkName(errs, form.Name)
	checkEmail(errs, form.Email)

	if form.Password == "" {
		errs.add(FieldPassword, "Password is required")
	} else if password := ValidatePassword(form.Password); !password.IsValid {
		errs.add(FieldPassword, password.Errors[0])
	}

	switch {
	case form.ConfirmPassword == "":
		errs.add(FieldConfirmPassword, "Please confirm your password")
	case form.ConfirmPassword != form.Password:
		errs.add(FieldConfirmPassword, "Passwords do not match")
	}

	return errs.result()
}

// ValidateLoginForm only checks presence and email shape; password rules apply at registration.
func ValidateLoginForm(form LoginForm) FormResult {
	errs := formErrors{}
	checkEmail(errs, form.Email)
	if form.Password == "" {
		errs.add(FieldPassword, "Password is required")
	}
	return errs.result()
}

func ValidateProfileForm(form ProfileForm) FormResult {
	errs := formErrors{}
	checkName(errs, form.Name)
	checkEmail(errs, form.Email)
	if utf8.RuneCountInString(form.Bio) > maxBioLength {
		errs.add(FieldBio, fmt.Sprintf("Bio must be at most %d characters", maxBioLength))
	}
	return errs.result()
}
