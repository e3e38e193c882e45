package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/user"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/security"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

// AuthService handles registration, login, and token issuance.
type AuthService struct {
	users    user.Repository
	tokens   *security.TokenProvider
	logger   Logger
	tokenTTL time.Duration
}

func NewAuthService(users user.Repository, tokens *security.TokenProvider, logger Logger, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger, tokenTTL: tokenTTL}
}

type Credentials struct {
	Name     string
	Email    string
	Password string
	Role     user.Role
}

type Session struct {
	User      *user.User
	Token     string
	ExpiresAt time.Time
}

func (s *AuthService) Register(ctx context.Context, creds Credentials) (*Session, error) {
	name := strings.TrimSpace(creds.Name)
	email := normalizeEmail(creds.Email)
	fields := map[string]string{}
	if name == "" {
		fields["name"] = "name is required"
	}
	if email == "" {
		fields["email"] = "email is required"
	}
	if creds.Password == "" {
		fields["password"] = "password is required"
	}
	role := creds.Role
	if role == "" {
		role = user.RoleApplicant
	}
	if !user.IsKnownRole(role) {
		fields["role"] = "role must be applicant, employer, or admin"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid request", fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}

	account, err := s.users.Create(ctx, user.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("user registered user_id=%s role=%s", account.ID, account.Role))
	return s.issueSession(account)
}

// Login authenticates by email and password. Unknown email and wrong password
// produce the same unauthorized error so callers learn nothing about which
// field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	account, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "Invalid credentials", nil)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logInfo(fmt.Sprintf("login rejected user_id=%s", account.ID))
		return nil, common.NewError(common.CodeUnauthorized, "Invalid credentials", nil)
	}
	s.logInfo(fmt.Sprintf("user logged in user_id=%s", account.ID))
	return s.issueSession(account)
}

func (s *AuthService) issueSession(account *user.User) (*Session, error) {
	token, expiresAt, err := s.tokens.Generate(account.ID, s.tokenTTL)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to generate token", err)
	}
	return &Session{User: account, Token: token, ExpiresAt: expiresAt}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}
