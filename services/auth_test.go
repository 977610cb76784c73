package services

import (
	"context"
	"testing"

	"Vitals360/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignup_HashesPassword(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store)

	err := svc.Signup(context.Background(), "Asha", "asha", "secret123")

	require.NoError(t, err)
	require.Len(t, store.users, 1)
	saved := store.users[0]
	assert.Equal(t, "Asha", saved.Name)
	assert.NotEqual(t, "secret123", saved.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("secret123")))
}

func TestSignup_DefaultsDisplayName(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store)

	require.NoError(t, svc.Signup(context.Background(), "", "asha", "secret123"))

	require.Len(t, store.users, 1)
	assert.Equal(t, "New Member", store.users[0].Name)
}

func TestSignup_RefusesExistingUsername(t *testing.T) {
	store := &fakeUserStore{users: []models.User{{Username: "asha", Name: "Asha"}}}
	svc := NewAuthService(store)

	err := svc.Signup(context.Background(), "Other", "asha", "secret123")

	assert.ErrorIs(t, err, ErrUserExists)
	assert.Len(t, store.users, 1)
}

func TestLogin_Succeeds(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store)
	require.NoError(t, svc.Signup(context.Background(), "Asha", "asha", "secret123"))

	user, err := svc.Login(context.Background(), "asha", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
	assert.False(t, user.ID.IsZero())
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewAuthService(&fakeUserStore{})

	_, err := svc.Login(context.Background(), "nobody", "secret123")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store)
	require.NoError(t, svc.Signup(context.Background(), "Asha", "asha", "secret123"))

	_, err := svc.Login(context.Background(), "asha", "wrong")

	assert.ErrorIs(t, err, ErrInvalidPassword)
}
