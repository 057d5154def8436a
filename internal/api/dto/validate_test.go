package dto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_RegisterRequestAccumulatesAllFieldErrors(t *testing.T) {
	t.Parallel()

	msgs := Validate(RegisterRequest{})
	// name, email and password are all missing; every violation is reported.
	require.Len(t, msgs, 3)
}

func TestValidate_RegisterRequestBadEmail(t *testing.T) {
	t.Parallel()

	msgs := Validate(RegisterRequest{Name: "A", Email: "not-an-email", Password: "x"})
	require.Len(t, msgs, 1)
	require.Contains(t, msgs[0], "e-mail")
}

func TestValidate_ValidRequestHasNoMessages(t *testing.T) {
	t.Parallel()

	require.Empty(t, Validate(RegisterRequest{Name: "A", Email: "a@b.com", Password: "Strong1!"}))
	require.Empty(t, Validate(LoginRequest{Email: "a@b.com", Password: "x"}))
}

func TestValidate_MenuItemPriceRange(t *testing.T) {
	t.Parallel()

	msgs := Validate(MenuItemCreateRequest{Name: "Soup", Category: "Appetizer", Price: 2000})
	require.Len(t, msgs, 1)

	require.Empty(t, Validate(MenuItemCreateRequest{Name: "Soup", Category: "Appetizer", Price: 8.99}))
}
