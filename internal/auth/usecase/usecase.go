package usecase

import (
	"todo-backend/internal/auth/domain"
	"todo-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	Register(req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	GoogleSignIn(idToken string) (*dto.TokenResponse, error)
	RefreshToken(refreshToken string) (*dto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*domain.User, error)
	GetUserByID(id string) (*domain.User, error)
	SetPassword(userID, password string) error
}
