package store

import (
	"errors"

	"github.com/rs/zerolog"

	"food-marketplace-datastore/models"
	"food-marketplace-datastore/storage"
)

// ErrDuplicateEmail is returned when a user with the same email already
// exists. Email uniqueness is the only constraint the store enforces.
var ErrDuplicateEmail = errors.New("user with this email already exists")

// Users persists user accounts. Records handed back to callers are
// redacted: the password hash only leaves the store through FindByEmail,
// which the credential layer needs for login.
type Users struct {
	col *Collection[models.User]
}

func NewUsers(h storage.Handle, log zerolog.Logger) *Users {
	return &Users{col: NewCollection[models.User]("users", h, log)}
}

// Create appends a new user and returns the redacted record. Fails with
// ErrDuplicateEmail when the email is already taken; the existing user is
// left untouched.
func (s *Users) Create(u models.User) (models.User, error) {
	var dup bool
	s.col.Mutate(func(records []models.User) ([]models.User, bool) {
		for _, existing := range records {
			if existing.Email == u.Email {
				dup = true
				return nil, false
			}
		}
		u.Meta = NewMeta()
		return append(records, u), true
	})
	if dup {
		return models.User{}, ErrDuplicateEmail
	}
	return u.Redacted(), nil
}

// FindByID returns the user with the given id, password redacted, or nil.
func (s *Users) FindByID(id string) *models.User {
	for _, u := range s.col.Load() {
		if u.ID == id {
			r := u.Redacted()
			return &r
		}
	}
	return nil
}

// FindByEmail returns the user with the given email including the stored
// password hash, or nil. Only the credential layer should call this.
func (s *Users) FindByEmail(email string) *models.User {
	for _, u := range s.col.Load() {
		if u.Email == email {
			return &u
		}
	}
	return nil
}
