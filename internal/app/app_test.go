package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artilluminati/pautina-hosting/internal/auth"
	"github.com/artilluminati/pautina-hosting/internal/config"
	"github.com/artilluminati/pautina-hosting/internal/models"
	"github.com/artilluminati/pautina-hosting/internal/storage"
)

type fakeSeedStore struct {
	byEmail map[string]models.User
	created []models.User
}

func newFakeSeedStore() *fakeSeedStore {
	return &fakeSeedStore{byEmail: map[string]models.User{}}
}

func (f *fakeSeedStore) GetUserByEmail(email string) (models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (f *fakeSeedStore) CreateUser(user models.User) (models.User, error) {
	user.ID = int64(len(f.byEmail) + 1)
	f.byEmail[user.Email] = user
	f.created = append(f.created, user)
	return user, nil
}

func newSeedApp() *App {
	return &App{
		cfg: config.Config{
			AdminEmail:    "admin@example.com",
			AdminPassword: "admin123",
			TestEmail:     "user@example.com",
			TestPassword:  "user123",
		},
		auth: auth.NewService("test-secret"),
	}
}

func TestSeedUsers_CreatesAdminAndTestAccounts(t *testing.T) {
	a := newSeedApp()
	store := newFakeSeedStore()

	require.NoError(t, a.seedUsers(store))
	require.Len(t, store.created, 2)

	admin := store.byEmail["admin@example.com"]
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, a.auth.CheckPassword("admin123", admin.PasswordHash))

	test := store.byEmail["user@example.com"]
	assert.Equal(t, models.RoleUser, test.Role)
	assert.True(t, a.auth.CheckPassword("user123", test.PasswordHash))

	// seed accounts must not collide on the unique phone column
	assert.NotEqual(t, admin.Phone, test.Phone)
}

func TestSeedUsers_IsIdempotent(t *testing.T) {
	a := newSeedApp()
	store := newFakeSeedStore()

	require.NoError(t, a.seedUsers(store))
	firstHash := store.byEmail["admin@example.com"].PasswordHash

	require.NoError(t, a.seedUsers(store))
	require.Len(t, store.created, 2, "second run must not create rows")
	assert.Equal(t, firstHash, store.byEmail["admin@example.com"].PasswordHash,
		"second run must not reset credentials")
}
