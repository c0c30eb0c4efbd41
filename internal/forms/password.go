package forms

import (
	"strings"
	"time"
	"unicode"
)

// MinPasswordLength is the shortest password accepted by signup and reset
const MinPasswordLength = 8

// PasswordRules reports which composition rules a password satisfies
type PasswordRules struct {
	HasDigit     bool `json:"hasDigit"`
	HasLower     bool `json:"hasLower"`
	HasUpper     bool `json:"hasUpper"`
	HasSpecial   bool `json:"hasSpecial"`
	HasMinLength bool `json:"hasMinLength"`
}

// CheckPassword evaluates every rule independently
func CheckPassword(pw string) PasswordRules {
	var r PasswordRules
	for _, ch := range pw {
		switch {
		case unicode.IsDigit(ch):
			r.HasDigit = true
		case unicode.IsLower(ch):
			r.HasLower = true
		case unicode.IsUpper(ch):
			r.HasUpper = true
		case unicode.IsSpace(ch):
		default:
			r.HasSpecial = true
		}
	}
	r.HasMinLength = len([]rune(pw)) >= MinPasswordLength
	return r
}

// Valid is true when all five rules hold
func (r PasswordRules) Valid() bool {
	return r.HasDigit && r.HasLower && r.HasUpper && r.HasSpecial && r.HasMinLength
}

// Missing lists the unmet rules in display order
func (r PasswordRules) Missing() []string {
	var out []string
	if !r.HasMinLength {
		out = append(out, "at least 8 characters")
	}
	if !r.HasLower {
		out = append(out, "a lowercase letter")
	}
	if !r.HasUpper {
		out = append(out, "an uppercase letter")
	}
	if !r.HasDigit {
		out = append(out, "a digit")
	}
	if !r.HasSpecial {
		out = append(out, "a special character")
	}
	return out
}

func (r PasswordRules) message() string {
	return "password must contain " + strings.Join(r.Missing(), ", ")
}

// AdultAge is the minimum age for signing up
const AdultAge = 18

// IsAdult reports whether someone born on dob is at least 18 on the calendar day of now.
// Only dates count; the time of day is ignored.
func IsAdult(dob, now time.Time) bool {
	y, m, d := dob.Date()
	birthday := time.Date(y+AdultAge, m, d, 0, 0, 0, 0, time.UTC)
	ny, nm, nd := now.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return !birthday.After(today)
}
