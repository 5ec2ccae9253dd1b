package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/facultyportal/internal/auth"
	"github.com/yoockh/facultyportal/internal/models"
	"github.com/yoockh/facultyportal/internal/utils"
)

func newAuthFixture() (AuthService, *fakeUserRepo, *auth.Issuer) {
	users := newFakeUserRepo()
	issuer := auth.NewIssuer("test-secret", "facultyportal", time.Hour)
	return NewAuthService(users, issuer, []string{" Admin@College.edu "}), users, issuer
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _, issuer := newAuthFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, "Asha", "  Asha@Example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", u.Email)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.NotEqual(t, "s3cretpass", u.PasswordHash)

	res, err := svc.Login(ctx, "ASHA@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, "Login successful", res.Message)

	claims, err := issuer.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
	assert.Equal(t, "user", claims.Role)
}

func TestAuthService_RegisterAdminEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	u, err := svc.Register(context.Background(), "Dean", "admin@college.edu", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)
}

func TestAuthService_RegisterRejects(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Asha", "asha@example.com", "s3cretpass")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "ASHA@example.com", "anotherpass")
	assert.True(t, utils.IsCode(err, utils.CodeConflict))

	_, err = svc.Register(ctx, "Weak", "weak@example.com", "short")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.Register(ctx, "", "noname@example.com", "s3cretpass")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Asha", "asha@example.com", "s3cretpass")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "asha@example.com", "wrongpass")
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))

	_, err = svc.Login(ctx, "nobody@example.com", "s3cretpass")
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}
