package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/copp1723/lane-google-sub002/internal/http/api"
	"github.com/copp1723/lane-google-sub002/internal/models"
	repo "github.com/copp1723/lane-google-sub002/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCredentials = errors.New("invalid email or password")
	ErrInactiveUser   = errors.New("user is deactivated")
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	Create(ctx context.Context, user *models.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	users    UserProvider
	tokenTTL time.Duration
	secret   []byte
}

func NewAuthService(users UserProvider, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		tokenTTL: tokenTTL,
		secret:   []byte(os.Getenv("JWT_SECRET")),
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &api.LoginResponse{
		Token: token,
		User: api.UserSchema{
			UserID:   user.ID,
			Email:    user.Email,
			Name:     user.Name,
			IsActive: user.IsActive,
		},
	}, nil
}

func (s *AuthService) Register(ctx context.Context, email, name, password string) (*api.UserSchema, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		IsActive:     true,
	}

	userID, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return &api.UserSchema{
		UserID:   userID,
		Email:    user.Email,
		Name:     user.Name,
		IsActive: user.IsActive,
	}, nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
