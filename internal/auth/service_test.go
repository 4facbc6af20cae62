// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/todoapp/internal/core"
)

type fakeUserProvider struct {
	users       map[string]*UserInfo
	createErr   error
	lastCreated *CreateUserParams
}

func newFakeUserProvider() *fakeUserProvider {
	return &fakeUserProvider{users: map[string]*UserInfo{}}
}

func (f *fakeUserProvider) GetByUsername(
	_ context.Context,
	username string,
) (*UserInfo, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, core.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserProvider) Create(
	_ context.Context,
	params CreateUserParams,
) (*UserInfo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	if _, exists := f.users[params.Username]; exists {
		return nil, core.ErrDuplicateKey
	}

	f.lastCreated = &params
	info := &UserInfo{
		ID:             int64(len(f.users) + 1),
		Username:       params.Username,
		Email:          params.Email,
		Role:           params.Role,
		HashedPassword: params.HashedPassword,
		IsActive:       true,
	}
	f.users[params.Username] = info
	return info, nil
}

func (f *fakeUserProvider) addUser(
	t *testing.T,
	username, password, role string,
) *UserInfo {
	t.Helper()

	hash, err := core.HashPassword(password)
	require.NoError(t, err)

	info := &UserInfo{
		ID:             int64(len(f.users) + 1),
		Username:       username,
		Role:           role,
		HashedPassword: hash,
		IsActive:       true,
	}
	f.users[username] = info
	return info
}

func newTestService(t *testing.T, users UserProvider) *Service {
	t.Helper()

	manager, err := NewJWTManager(testJWTConfig())
	require.NoError(t, err)

	return NewService(users, manager)
}

func TestLoginSuccess(t *testing.T) {
	users := newFakeUserProvider()
	alice := users.addUser(t, "alice", "s3cret-password", "user")

	svc := newTestService(t, users)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Username: "alice",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)

	identity, err := svc.jwt.VerifyAccessToken(
		context.Background(),
		resp.AccessToken,
	)
	require.NoError(t, err)
	assert.Equal(t, alice.Username, identity.Username)
	assert.Equal(t, alice.ID, identity.UserID)
	assert.Equal(t, "user", identity.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserProvider()
	users.addUser(t, "alice", "s3cret-password", "user")

	svc := newTestService(t, users)

	_, err := svc.Login(context.Background(), LoginRequest{
		Username: "alice",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(t, newFakeUserProvider())

	_, err := svc.Login(context.Background(), LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})

	// identical error for unknown user and wrong password
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterHashesPassword(t *testing.T) {
	users := newFakeUserProvider()
	svc := newTestService(t, users)

	err := svc.Register(context.Background(), RegisterRequest{
		Username:  "bob",
		Email:     "bob@example.com",
		FirstName: "Bob",
		LastName:  "Builder",
		Password:  "plaintext-password",
		Role:      "user",
	})
	require.NoError(t, err)

	require.NotNil(t, users.lastCreated)
	assert.NotEqual(t, "plaintext-password", users.lastCreated.HashedPassword)

	valid, err := core.VerifyPassword(
		"plaintext-password",
		users.lastCreated.HashedPassword,
	)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestRegisterDuplicate(t *testing.T) {
	users := newFakeUserProvider()
	users.createErr = core.ErrDuplicateKey

	svc := newTestService(t, users)

	err := svc.Register(context.Background(), RegisterRequest{
		Username:  "bob",
		Email:     "bob@example.com",
		FirstName: "Bob",
		LastName:  "Builder",
		Password:  "plaintext-password",
		Role:      "user",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}
