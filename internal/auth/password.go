package auth

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/yumyum-spot/menu-service/internal/config"
)

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// CheckPasswordPolicy evaluates the plaintext against the configured strength
// rules and returns every violation, not just the first one.
func CheckPasswordPolicy(password string, policy config.PasswordPolicy) []string {
	var violations []string

	if len(password) < policy.MinLength {
		violations = append(violations,
			fmt.Sprintf("Passwords must be at least %d characters.", policy.MinLength))
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	if policy.RequireUppercase && !hasUpper {
		violations = append(violations, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	if policy.RequireLowercase && !hasLower {
		violations = append(violations, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if policy.RequireDigit && !hasDigit {
		violations = append(violations, "Passwords must have at least one digit ('0'-'9').")
	}
	if policy.RequireSymbol && !hasSymbol {
		violations = append(violations, "Passwords must have at least one non alphanumeric character.")
	}

	return violations
}
