package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yumyum-spot/menu-service/internal/auth"
	"github.com/yumyum-spot/menu-service/internal/config"
	"github.com/yumyum-spot/menu-service/internal/domain"
	"github.com/yumyum-spot/menu-service/internal/events"
	"github.com/yumyum-spot/menu-service/internal/repository"
	apperrors "github.com/yumyum-spot/menu-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	policy     config.PasswordPolicy
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	RoleRepo   repository.RoleRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service. Fails on a weak JWT secret.
func NewAuthService(cfg config.Config, deps AuthDependencies) (*AuthService, error) {
	tokenMgr, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLDays)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:      deps.UserRepo,
		roles:      deps.RoleRepo,
		tokenMgr:   tokenMgr,
		bcryptCost: cfg.Auth.BcryptCost,
		policy:     cfg.Auth.Password,
		dispatcher: deps.Dispatcher,
	}, nil
}

// SeedRoles idempotently creates the built-in roles. Run once at startup so
// registration never races on role creation.
func (s *AuthService) SeedRoles(ctx context.Context) error {
	if err := s.roles.EnsureRole(ctx, domain.RoleAdmin); err != nil {
		return err
	}
	return s.roles.EnsureRole(ctx, domain.RoleCustomer)
}

// Register creates a new account and assigns its role. A requested role that
// case-insensitively matches "Admin" grants the admin role; anything else,
// including an empty or unknown value, falls back to the customer role.
func (s *AuthService) Register(ctx context.Context, name, email, password, requestedRole string) (*domain.User, domain.RoleName, error) {
	violations := auth.CheckPasswordPolicy(password, s.policy)

	// A taken address is reported alongside the policy violations, never
	// instead of them.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		if len(violations) == 0 {
			return nil, "", apperrors.NewDuplicateEmail(email)
		}
		violations = append(violations, apperrors.DuplicateEmailMessage(email))
	} else if err != pgx.ErrNoRows {
		return nil, "", err
	}
	if len(violations) > 0 {
		return nil, "", apperrors.NewValidationError(violations)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicateEmail {
			return nil, "", apperrors.NewDuplicateEmail(email)
		}
		return nil, "", err
	}

	role := domain.RoleCustomer
	if strings.EqualFold(requestedRole, string(domain.RoleAdmin)) {
		role = domain.RoleAdmin
	}
	if err := s.roles.Assign(ctx, user.ID, role); err != nil {
		return nil, "", err
	}

	s.publish(ctx, events.EventUserRegistered, events.UserRegisteredPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   role,
	})
	return user, role, nil
}

// Login verifies credentials and mints a token carrying the primary role.
// Unknown email and wrong password are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, domain.RoleName, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", "", time.Time{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	roles, err := s.roles.RolesOf(ctx, user.ID)
	if err != nil {
		return nil, "", "", time.Time{}, err
	}
	var role domain.RoleName
	if len(roles) > 0 {
		role = roles[0]
	}

	token, exp, err := s.tokenMgr.GenerateToken(user, role)
	if err != nil {
		return nil, "", "", time.Time{}, err
	}
	return user, role, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
