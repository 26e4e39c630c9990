package services

import (
	"healthatlas_backend/internal/auth"
	"healthatlas_backend/internal/models"
	"healthatlas_backend/internal/repositories"
	"healthatlas_backend/internal/services/dto"
	"healthatlas_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Signin(db *gorm.DB, req *dto.SigninRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Signup creates a new account. No token is issued at signup; the caller
// signs in afterwards.
func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	// Fast-path check for a friendlier error; the unique index on email
	// is the authoritative guard below.
	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyInUse
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyInUse
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token:   nil,
		Message: "User created successfully",
		Name:    user.Name,
	}, nil
}

// Signin verifies credentials and issues a token keyed on the user's email.
// An unknown email and a wrong password answer with the same error so the
// response cannot be used to enumerate accounts.
func (s *AuthServiceImpl) Signin(db *gorm.DB, req *dto.SigninRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token:   &token,
		Message: "Login successful",
		Name:    user.Name,
	}, nil
}
