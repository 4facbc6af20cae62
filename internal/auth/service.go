// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelamos/todoapp/internal/core"
	"github.com/angelamos/todoapp/internal/middleware"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username or email already exists")
)

// UserInfo is the slice of the credential store the authenticator needs.
type UserInfo struct {
	ID             int64
	Username       string
	Email          string
	Role           string
	HashedPassword string
	IsActive       bool
}

type CreateUserParams struct {
	Username       string
	Email          string
	FirstName      string
	LastName       string
	PhoneNumber    string
	HashedPassword string
	Role           string
}

type UserProvider interface {
	GetByUsername(ctx context.Context, username string) (*UserInfo, error)
	Create(ctx context.Context, params CreateUserParams) (*UserInfo, error)
}

type Service struct {
	users UserProvider
	jwt   *JWTManager
}

func NewService(users UserProvider, jwtManager *JWTManager) *Service {
	return &Service{
		users: users,
		jwt:   jwtManager,
	}
}

// Login validates the username/password pair and issues an access token. An
// unknown username and a wrong password are indistinguishable to the caller:
// both verify against a hash (a dummy one when no user exists) and both
// return ErrInvalidCredentials.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // burn the same verification cost as a real user
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.HashedPassword,
	)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwt.CreateAccessToken(middleware.Identity{
		Username: user.Username,
		UserID:   user.ID,
		Role:     user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	return &TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// Register persists a new user with the password hashed. Uniqueness
// violations on username or email surface as ErrUserExists.
func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	hashedPassword, err := core.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.users.Create(ctx, CreateUserParams{
		Username:       req.Username,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    req.PhoneNumber,
		HashedPassword: hashedPassword,
		Role:           req.Role,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}
