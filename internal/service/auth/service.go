package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/officedesk/backoffice-go/internal/domain/auth"
	"github.com/officedesk/backoffice-go/internal/pkg/jwt"
)

type authServiceImpl struct {
	userRepo   auth.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo auth.UserRepository, jwtService jwt.Service) auth.Service {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register implements auth.Service.
func (s *authServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	user, err := s.userRepo.Create(ctx, auth.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(user)
}

// Login implements auth.Service.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh implements auth.Service.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// Rotate: the presented refresh token is retired with every use.
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(user)
}

// Logout implements auth.Service.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *authServiceImpl) issueTokens(user auth.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}
