package service

import (
	"context"
	"strings"
	"time"

	"github.com/Skotchmaster/marketplace/internal/domain"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/validation"
	pkg_hash "github.com/Skotchmaster/marketplace/pkg/hash"
	"github.com/Skotchmaster/marketplace/pkg/logging"
	"github.com/Skotchmaster/marketplace/pkg/tokens"
)

var ErrInvalidCredentials = &domain.Error{
	Kind: domain.ErrUnauthenticated,
	Code: "invalid_credentials",
	Msg:  "invalid username or password",
}

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	TTL       time.Duration
}

type LoginResult struct {
	AccessToken string
	AccessExp   time.Time
	IsAdmin     bool
}

// RegisterProducer creates the login and the producer profile together.
func (s *AuthService) RegisterProducer(ctx context.Context, in validation.RegistrationInput) (*models.ProducerProfile, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	in, err := validation.Registration(in)
	if err != nil {
		return nil, err
	}
	if err := s.usernameFree(ctx, in.Username); err != nil {
		return nil, err
	}
	taken, err := s.Repo.TaxIDTaken(ctx, in.Profile.TaxID)
	if err != nil {
		return nil, storeErr(err, "profile")
	}
	if taken {
		return nil, domain.Conflict("tax id already registered")
	}

	pwHash, err := pkg_hash.HashPassword(in.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{Username: in.Username, PasswordHash: pwHash, Role: tokens.RoleProducer}
	profile := &models.ProducerProfile{
		Name:    in.Profile.Name,
		TaxID:   in.Profile.TaxID,
		Phone:   in.Profile.Phone,
		City:    in.Profile.City,
		Address: in.Profile.Address,
	}
	if err := s.Repo.CreateProducer(ctx, user, profile); err != nil {
		return nil, storeErr(err, "producer")
	}
	return profile, nil
}

// RegisterStaff creates an admin login without a producer profile.
func (s *AuthService) RegisterStaff(ctx context.Context, username, password string) (*models.User, error) {
	in, err := validation.Credentials(validation.RegistrationInput{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if err := s.usernameFree(ctx, in.Username); err != nil {
		return nil, err
	}
	pwHash, err := pkg_hash.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{Username: in.Username, PasswordHash: pwHash, Role: tokens.RoleAdmin}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, storeErr(err, "user")
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	user, err := s.Repo.UserByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, storeErr(err, "user")
	}
	if !pkg_hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "password mismatch")
		return nil, ErrInvalidCredentials
	}

	accessExp := time.Now().Add(s.TTL)
	token, err := tokens.NewAccessToken(s.JWTSecret, user.ID.String(), user.Role, accessExp)
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign token", "error", err)
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		AccessExp:   accessExp,
		IsAdmin:     user.Role == tokens.RoleAdmin,
	}, nil
}

func (s *AuthService) usernameFree(ctx context.Context, username string) error {
	_, err := s.Repo.UserByUsername(ctx, username)
	switch {
	case err == nil:
		return domain.Conflict("username already taken")
	case isNotFound(err):
		return nil
	default:
		return storeErr(err, "user")
	}
}
