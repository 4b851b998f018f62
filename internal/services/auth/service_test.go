package auth

import (
	"testing"

	"ecoshop/internal/models"
	"ecoshop/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	if user.TokenVersion == 0 {
		user.TokenVersion = 1
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Update(user *models.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) IncrementTokenVersion(id uint) error {
	user, ok := f.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.TokenVersion++
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := NewService(repo)

	user, access, refresh, err := svc.Register("lan@example.com", "s3cret!pass", "Lan", models.RoleConsumer)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, models.RoleConsumer, user.Role)

	_, _, _, err = svc.Login("lan@example.com", "s3cret!pass")
	require.NoError(t, err)

	_, _, _, err = svc.Login("lan@example.com", "wrong")
	assert.Error(t, err)

	_, _, _, err = svc.Login("nobody@example.com", "s3cret!pass")
	assert.Error(t, err)
}

func TestRegisterValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := NewService(repo)

	// Too short, no special character.
	_, _, _, err := svc.Register("a@example.com", "short", "A", models.RoleConsumer)
	assert.Error(t, err)

	// Long enough but no special character.
	_, _, _, err = svc.Register("a@example.com", "longenoughpass", "A", models.RoleConsumer)
	assert.Error(t, err)

	_, _, _, err = svc.Register("a@example.com", "valid!password", "A", "superuser")
	assert.Error(t, err)
}

func TestRefreshTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := NewService(repo)

	user, _, refresh, err := svc.Register("lan@example.com", "s3cret!pass", "Lan", models.RoleConsumer)
	require.NoError(t, err)

	access2, refresh2, err := svc.RefreshTokens(refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access2)
	assert.NotEmpty(t, refresh2)

	// Logout bumps the token version, invalidating outstanding tokens.
	require.NoError(t, svc.Logout(user.ID))
	_, _, err = svc.RefreshTokens(refresh)
	assert.Error(t, err)
}

func TestGetUserTokenVersion(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := NewService(repo)

	user, _, _, err := svc.Register("lan@example.com", "s3cret!pass", "Lan", models.RoleShipper)
	require.NoError(t, err)

	version, err := svc.GetUserTokenVersion(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	require.NoError(t, svc.Logout(user.ID))
	version, err = svc.GetUserTokenVersion(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}
