package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"game_catalog/internal/apperr"
	"game_catalog/internal/model"
	"game_catalog/internal/repository"
	"game_catalog/internal/utils"
	"game_catalog/internal/validation"
)

// AuthService provides registration and credential verification
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) error
	Login(ctx context.Context, email, password string) (*model.SessionUser, error)
}

type authService struct {
	userRepo    repository.UserRepository
	defaultRole string
}

// NewAuthService creates a new AuthService. defaultRole is the role given
// to self-registered accounts.
func NewAuthService(userRepo repository.UserRepository, defaultRole string) AuthService {
	return &authService{userRepo: userRepo, defaultRole: defaultRole}
}

// Register creates a new account. Validation runs before any store access;
// the email and mobile uniqueness checks are read-then-write and rely on
// the database's unique constraints as the backstop under concurrency.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) error {
	if res := validation.ValidateUser(req); !res.Valid {
		return apperr.Validation(res.Errors)
	}

	mobile := validation.NormalizeMobile(req.Mobile)

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return apperr.Wrap(apperr.Unexpected, "Server error", err)
	}
	if existing != nil {
		return apperr.New(apperr.DuplicateEmail, "User with this email already exists")
	}

	existing, err = s.userRepo.FindByMobile(ctx, mobile)
	if err != nil {
		return apperr.Wrap(apperr.Unexpected, "Server error", err)
	}
	if existing != nil {
		return apperr.New(apperr.DuplicateMobile, "User with this mobile number already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return apperr.Wrap(apperr.Unexpected, "Server error", err)
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Mobile:       mobile,
		Gender:       req.Gender,
		Role:         s.defaultRole,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return apperr.Wrap(apperr.Unexpected, "Server error", err)
	}

	log.Info().Str("email", user.Email).Str("role", user.Role).Msg("user registered")
	return nil
}

// Login verifies credentials and returns the identity snapshot. The caller
// issues the session identifier and stores the snapshot. UserNotFound and
// InvalidPassword stay distinct, matching the observed API.
func (s *authService) Login(ctx context.Context, email, password string) (*model.SessionUser, error) {
	if email == "" {
		return nil, apperr.New(apperr.MissingCredential, "Email is required")
	}
	if password == "" {
		return nil, apperr.New(apperr.MissingCredential, "Password is required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unexpected, "Server error", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.UserNotFound, "User not found")
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.New(apperr.InvalidPassword, "Invalid password")
	}

	return model.NewSessionUser(user), nil
}
