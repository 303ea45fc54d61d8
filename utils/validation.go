package utils

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// IsEmail reports whether s is email-shaped.
func IsEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return getValidator().Var(s, "required,email") == nil
}

// IsTenDigitPhone reports whether s is exactly ten ASCII digits.
func IsTenDigitPhone(s string) bool {
	return getValidator().Var(s, "required,number,len=10") == nil
}
