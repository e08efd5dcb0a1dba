package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"food_order/internal/model"
	"food_order/internal/repository"
	"food_order/internal/utils"
)

var (
	ErrEmailAndMobileTaken = errors.New("email and mobile already registered")
	ErrEmailTaken          = errors.New("email already registered")
	ErrMobileTaken         = errors.New("mobile number already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid mobile or password")
)

// IsSignupConflict reports whether err means the email or mobile is already in use
func IsSignupConflict(err error) bool {
	return errors.Is(err, ErrEmailAndMobileTaken) || errors.Is(err, ErrEmailTaken) || errors.Is(err, ErrMobileTaken)
}

// AuthService provides authentication related services
type AuthService interface {
	Signup(ctx context.Context, req model.SignupRequest) (*model.User, string, error)
	Login(ctx context.Context, mobile, password string) (*model.User, string, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

type authService struct {
	userRepo           repository.UserRepository
	jwtUtil            *utils.JWTUtil
	initialAdminMobile string
}

// NewAuthService creates a new AuthService. A signup whose mobile equals
// initialAdminMobile is granted the admin role.
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, initialAdminMobile string) AuthService {
	return &authService{
		userRepo:           userRepo,
		jwtUtil:            jwtUtil,
		initialAdminMobile: initialAdminMobile,
	}
}

// Signup creates a new user account and issues a token for it
func (s *authService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, string, error) {
	existing, err := s.userRepo.FindByEmailOrMobile(ctx, req.Email, req.Mobile)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing users: %w", err)
	}
	if err := conflictFor(existing, req.Email, req.Mobile); err != nil {
		return nil, "", err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	role := model.RoleUser
	if s.initialAdminMobile != "" && req.Mobile == s.initialAdminMobile {
		role = model.RoleAdmin
		slog.InfoContext(ctx, "registering initial admin", "mobile", req.Mobile)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Mobile:       req.Mobile,
		Address:      req.Address,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same email or mobile.
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, "", ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateMobile):
			return nil, "", ErrMobileTaken
		}
		return nil, "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		slog.ErrorContext(ctx, "user created but token generation failed", "user_id", user.ID, "error", err)
		return user, "", fmt.Errorf("user created, but failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user by mobile and password and returns a token
func (s *authService) Login(ctx context.Context, mobile, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByMobile(ctx, mobile)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by mobile: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Profile returns the account behind an authenticated request
func (s *authService) Profile(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *authService) issueToken(user *model.User) (string, error) {
	return s.jwtUtil.GenerateToken(utils.TokenSubject{
		UserID: user.ID,
		Email:  user.Email,
		Mobile: user.Mobile,
		Role:   user.Role,
	})
}

// conflictFor inspects every user sharing the email or the mobile
func conflictFor(existing []model.User, email, mobile string) error {
	var emailTaken, mobileTaken bool
	for _, u := range existing {
		if u.Email == email {
			emailTaken = true
		}
		if u.Mobile == mobile {
			mobileTaken = true
		}
	}

	switch {
	case emailTaken && mobileTaken:
		return ErrEmailAndMobileTaken
	case emailTaken:
		return ErrEmailTaken
	case mobileTaken:
		return ErrMobileTaken
	}
	return nil
}
