// Package users is the read-only user directory consumed by the domain
// store and the auth surface. The store never creates or mutates users.
package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/sprintboard/sprintboard/internal/models"
	"github.com/sprintboard/sprintboard/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Directory is a static user list with credential verification.
type Directory struct {
	users []models.User
}

// NewDirectory creates a Directory over the given users.
func NewDirectory(users []models.User) *Directory {
	list := make([]models.User, len(users))
	copy(list, users)
	return &Directory{users: list}
}

// DefaultDirectory returns the demo user set. Every demo account uses the
// password "password".
func DefaultDirectory() (*Directory, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	seed := []struct {
		id    string
		email string
		name  string
		role  models.UserRole
	}{
		{"1", "admin@test.com", "Admin User", models.RoleAdmin},
		{"2", "user@test.com", "John Doe", models.RoleUser},
		{"3", "alice@test.com", "Alice Smith", models.RoleUser},
		{"4", "bob@test.com", "Bob Johnson", models.RoleUser},
		{"5", "sarah@test.com", "Sarah Wilson", models.RoleUser},
	}

	list := make([]models.User, 0, len(seed))
	for _, u := range seed {
		list = append(list, models.User{
			ID:           u.id,
			Email:        u.email,
			Name:         u.name,
			Role:         u.role,
			PasswordHash: string(hash),
			Initials:     utils.GenerateInitials(u.name),
			AvatarColor:  utils.GenerateAvatarColor(u.id),
			CreatedAt:    time.Now(),
		})
	}

	return NewDirectory(list), nil
}

// All returns every user in directory order.
func (d *Directory) All() []models.User {
	out := make([]models.User, len(d.users))
	copy(out, d.users)
	return out
}

// FindByID returns the user with the given id.
func (d *Directory) FindByID(id string) (models.User, error) {
	for _, u := range d.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// FindByEmail returns the user with the given email.
func (d *Directory) FindByEmail(email string) (models.User, error) {
	for _, u := range d.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// Authenticate verifies credentials and returns the matching user.
func (d *Directory) Authenticate(email, password string) (models.User, error) {
	user, err := d.FindByEmail(email)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}
