package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	iss := NewIssuer("secret", "facultyportal", time.Hour)

	raw, err := iss.Issue("user-1", "a@b.com", "user")
	require.NoError(t, err)

	claims, err := iss.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "a@b.com", claims.Email)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	raw, err := NewIssuer("secret", "", time.Hour).Issue("user-1", "", "user")
	require.NoError(t, err)

	_, err = NewIssuer("other", "", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	iss := NewIssuer("secret", "", time.Minute)
	iss.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	raw, err := iss.Issue("user-1", "", "user")
	require.NoError(t, err)

	_, err = NewIssuer("secret", "", time.Minute).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	raw, err := NewIssuer("secret", "someone-else", time.Hour).Issue("user-1", "", "user")
	require.NoError(t, err)

	_, err = NewIssuer("secret", "facultyportal", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
