package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yumyum-spot/menu-service/internal/config"
)

func strictPolicy() config.PasswordPolicy {
	return config.PasswordPolicy{
		MinLength:        6,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigit:     true,
		RequireSymbol:    true,
	}
}

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Strong1!", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "Strong1!", hash)

	require.NoError(t, ComparePassword(hash, "Strong1!"))
	require.Error(t, ComparePassword(hash, "strong1!"))
	require.Error(t, ComparePassword(hash, ""))
}

func TestCheckPasswordPolicy_AccumulatesAllViolations(t *testing.T) {
	t.Parallel()

	violations := CheckPasswordPolicy("a", strictPolicy())
	// Too short, no uppercase, no digit, no symbol.
	require.Len(t, violations, 4)
}

func TestCheckPasswordPolicy_AcceptsStrongPassword(t *testing.T) {
	t.Parallel()

	require.Empty(t, CheckPasswordPolicy("Strong1!", strictPolicy()))
}

func TestCheckPasswordPolicy_SingleViolation(t *testing.T) {
	t.Parallel()

	violations := CheckPasswordPolicy("Strong1x", strictPolicy())
	require.Len(t, violations, 1)
	require.Contains(t, violations[0], "non alphanumeric")
}
