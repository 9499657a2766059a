package validation

import (
	"regexp"
	"strings"
)

const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

const (
	minPasswordLength    = 8
	strongPasswordLength = 12
)

var (
	upperPattern = regexp.MustCompile(`[A-Z]`)
	lowerPattern = regexp.MustCompile(`[a-z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

type Strength string

const (
	Weak   Strength = "weak"
	Medium Strength = "medium"
	Strong Strength = "strong"
)

type PasswordResult struct {
	IsValid bool
	Errors  []string
}

type passwordRule struct {
	ok      func(string) bool
	message string
}

var passwordRules = []passwordRule{
	{func(s string) bool { return len(s) >= minPasswordLength }, "Password must be at least 8 characters long"},
	{upperPattern.MatchString, "Password must contain at least one uppercase letter"},
	{lowerPattern.MatchString, "Password must contain at least one lowercase letter"},
	{digitPattern.MatchString, "Password must contain at least one number"},
	{hasSymbol, "Password must contain at least one special character"},
}

func hasSymbol(s string) bool {
	return strings.ContainsAny(s, passwordSymbols)
}

// ValidatePassword reports every rule the password breaks, in rule order.
func ValidatePassword(password string) PasswordResult {
	var errs []string
	for _, rule := range passwordRules {
		if !rule.ok(password) {
			errs = append(errs, rule.message)
		}
	}
	return PasswordResult{IsValid: len(errs) == 0, Errors: errs}
}

// PasswordStrength scores one point per satisfied rule plus one for 12+ characters:
// 0-2 weak, 3-4 medium, 5-6 strong.
func PasswordStrength(password string) Strength {
	score := 0
	for _, rule := range passwordRules {
		if rule.ok(password) {
			score++
		}
	}
	if len(password) >= strongPasswordLength {
		score++
	}

	switch {
	case score <= 2:
		return Weak
	case score <= 4:
		return Medium
	default:
		return Strong
	}
}
