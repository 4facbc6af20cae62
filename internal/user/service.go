// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelamos/todoapp/internal/auth"
	"github.com/angelamos/todoapp/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByUsername(
	ctx context.Context,
	username string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) Create(
	ctx context.Context,
	params auth.CreateUserParams,
) (*auth.UserInfo, error) {
	role := params.Role
	if role == "" {
		role = RoleUser
	}

	var phoneNumber *string
	if params.PhoneNumber != "" {
		phoneNumber = &params.PhoneNumber
	}

	user := &User{
		Username:       params.Username,
		Email:          strings.ToLower(params.Email),
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		PhoneNumber:    phoneNumber,
		HashedPassword: params.HashedPassword,
		Role:           role,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetCurrent(ctx context.Context, userID int64) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

// ChangePassword re-verifies the caller's current password before storing a
// new hash. A wrong current password leaves the stored hash untouched.
func (s *Service) ChangePassword(
	ctx context.Context,
	userID int64,
	currentPassword, newPassword string,
) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	valid, err := core.VerifyPassword(currentPassword, user.HashedPassword)
	if err != nil || !valid {
		return fmt.Errorf("change password: %w", core.ErrForbidden)
	}

	newHash, err := core.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, userID, newHash); err != nil {
		return err
	}

	return nil
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Role:           u.Role,
		HashedPassword: u.HashedPassword,
		IsActive:       u.IsActive,
	}
}

var _ auth.UserProvider = (*Service)(nil)
