package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
	"github.com/thenitintundwal/table-tap-sub000/internal/repositories"
	"github.com/thenitintundwal/table-tap-sub000/pkg/utils"
)

type mockAuthRepo struct {
	users     map[int64]*models.User
	passwords map[string]string // username -> bcrypt hash
	nextID    int64
}

func newMockAuthRepo() *mockAuthRepo {
	return &mockAuthRepo{
		users:     make(map[int64]*models.User),
		passwords: make(map[string]string),
		nextID:    1,
	}
}

func (m *mockAuthRepo) CreateUser(executor repositories.SQLExecutor, user *models.User, hashedPassword string) (int64, error) {
	for _, existing := range m.users {
		if existing.Username == user.Username {
			return 0, repositories.ErrDuplicateKey
		}
	}
	id := m.nextID
	m.nextID++
	stored := *user
	stored.ID = id
	m.users[id] = &stored
	m.passwords[user.Username] = hashedPassword
	return id, nil
}

func (m *mockAuthRepo) FindUserByUsername(username string) (*models.User, string, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, m.passwords[username], nil
		}
	}
	return nil, "", repositories.ErrNotFound
}

func (m *mockAuthRepo) FindUserByID(userID int64) (*models.User, error) {
	user, ok := m.users[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func newTestAuthService(t *testing.T) (AuthService, *mockAuthRepo) {
	t.Helper()
	utils.SetJWTSecret("test-secret")
	repo := newMockAuthRepo()
	return NewAuthService(repo, nil), repo
}

func registerReq() RegisterUserRequest {
	return RegisterUserRequest{
		Username: "olga",
		Email:    "olga@example.com",
		Password: "s3cret-password",
		FullName: "Olga Ivanova",
		Role:     models.RoleOwner,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)

	user, err := svc.RegisterUser(registerReq())
	require.NoError(t, err)
	assert.Equal(t, "olga", user.Username)
	assert.Equal(t, models.RoleOwner, user.Role)

	resp, err := svc.LoginUser(LoginRequest{Username: "olga", Password: "s3cret-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(registerReq())
	require.NoError(t, err)

	_, err = svc.RegisterUser(registerReq())
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestRegisterInvalidRole(t *testing.T) {
	svc, _ := newTestAuthService(t)

	req := registerReq()
	req.Role = "Superuser"
	_, err := svc.RegisterUser(req)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterDefaultsToStaff(t *testing.T) {
	svc, _ := newTestAuthService(t)

	req := registerReq()
	req.Role = ""
	user, err := svc.RegisterUser(req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, user.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(registerReq())
	require.NoError(t, err)

	_, err = svc.LoginUser(LoginRequest{Username: "olga", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.LoginUser(LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(registerReq())
	require.NoError(t, err)

	login, err := svc.LoginUser(LoginRequest{Username: "olga", Password: "s3cret-password"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestRefreshTokenGarbage(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RefreshToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
