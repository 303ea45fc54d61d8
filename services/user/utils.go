package user

import (
	"fmt"
	"regexp"
	"strings"

	"tourbook/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	upperRe  = regexp.MustCompile(`[A-Z]`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	numberRe = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[\W_]`)
)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	switch {
	case len(pw) < 8:
		return utils.InvalidInput("password", "password must be at least 8 characters long")
	case !upperRe.MatchString(pw):
		return utils.InvalidInput("password", "password must include at least one uppercase letter")
	case !lowerRe.MatchString(pw):
		return utils.InvalidInput("password", "password must include at least one lowercase letter")
	case !numberRe.MatchString(pw):
		return utils.InvalidInput("password", "password must include at least one number")
	case !symbolRe.MatchString(pw):
		return utils.InvalidInput("password", "password must include at least one symbol")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashSecret hashes a password or recovery code. Callers hash each plaintext exactly once.
func hashSecret(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}

func secretMatches(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
