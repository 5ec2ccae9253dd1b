package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yoockh/facultyportal/internal/auth"
	"github.com/yoockh/facultyportal/internal/models"
	sqlrepo "github.com/yoockh/facultyportal/internal/repositories/sqlstore"
	"github.com/yoockh/facultyportal/internal/utils"
)

type LoginResult struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type authService struct {
	users  sqlrepo.UserRepository
	tokens *auth.Issuer
	admins map[string]struct{}
}

// NewAuthService grants the admin role to accounts registered with one of
// adminEmails.
func NewAuthService(users sqlrepo.UserRepository, tokens *auth.Issuer, adminEmails []string) AuthService {
	admins := map[string]struct{}{}
	for _, e := range adminEmails {
		if e = normalizeEmail(e); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &authService{users: users, tokens: tokens, admins: admins}
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	const op = "AuthService.Register"

	email = normalizeEmail(email)
	if strings.TrimSpace(name) == "" || email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name and email are required", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, utils.E(utils.CodeConflict, op, "Email already registered", nil)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	hash, err := utils.HashPassword(password)
	if errors.Is(err, utils.ErrWeakPassword) {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	role := models.RoleUser
	if _, ok := s.admins[email]; ok {
		role = models.RoleAdmin
	}

	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeConflict, op, "Email already registered", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	const op = "AuthService.Login"

	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeUnauthorized, op, "Invalid credentials", nil)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}
	if err := utils.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "Invalid credentials", nil)
	}

	tok, err := s.tokens.Issue(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return &LoginResult{Message: "Login successful", Token: tok, User: u}, nil
}
