package services

import (
	"context"
	"errors"
	"log"

	"Vitals360/models"

	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence surface for the employees collection.
type UserStore interface {
	// FindByUsername returns nil without an error when no user matches.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user models.User) (string, error)
}

var (
	ErrUserExists      = errors.New("User exists. Login.")
	ErrUserNotFound    = errors.New("User not found")
	ErrInvalidPassword = errors.New("Invalid Password")
)

const bcryptCost = 10

type AuthService struct {
	store UserStore
}

func NewAuthService(store UserStore) *AuthService {
	return &AuthService{store: store}
}

/*
* Refuse an already-taken username
* Hash the password and insert the new employee
 */
func (s *AuthService) Signup(ctx context.Context, name, username, password string) error {
	existing, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		log.Println("Error looking up user:", err)
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	if name == "" {
		name = "New Member"
	}

	_, err = s.store.Create(ctx, models.User{
		Name:     name,
		Username: username,
		Password: string(hashed),
	})
	if err != nil {
		log.Println("Error creating user:", err)
	}
	return err
}

/*
* Look the user up by username
* Compare the stored hash against the given password
 */
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		log.Println("Error looking up user:", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}
	return user, nil
}
