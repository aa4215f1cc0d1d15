// Package validation holds the syntax rules applied to user-supplied
// identifiers before they reach the database.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// local part: letters/digits/_/- in dot-separated segments; domain the
	// same without underscore; TLD 2-3 letters.
	emailPattern = regexp.MustCompile(`^[_a-z0-9-]+(\.[_a-z0-9-]+)*@[a-z0-9-]+(\.[a-z0-9-]+)*(\.[a-z]{2,3})$`)

	// 3-25 runs of letters optionally separated by spaces.
	namePattern = regexp.MustCompile(`^([a-zA-Z]+[ ]*[a-zA-Z]*){3,25}$`)

	// 4-15 word characters, no spaces.
	nicknamePattern = regexp.MustCompile(`^\w{4,15}$`)
)

// Email reports whether s has a plausible local@domain.tld shape.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// NameOrFullname reports whether s looks like a human name of bounded length,
// letters and spaces only.
func NameOrFullname(s string) bool {
	return namePattern.MatchString(s)
}

// Nickname reports whether s is a valid login handle.
func Nickname(s string) bool {
	return nicknamePattern.MatchString(s)
}

// Register installs the rules as custom validator tags so request DTOs can
// reference them alongside the builtin ones.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("user_email", func(fl validator.FieldLevel) bool {
		return Email(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("user_name", func(fl validator.FieldLevel) bool {
		return NameOrFullname(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("user_nickname", func(fl validator.FieldLevel) bool {
		return Nickname(fl.Field().String())
	})
}
