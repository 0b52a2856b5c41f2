package domain

import "time"

// User is a learner account in the locally-persisted credential store. There
// is no external identity provider; PasswordHash is a salted digest checked
// at login only.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	PasswordSalt string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Validate validates the user record.
func (u *User) Validate() error {
	if u.Email == "" {
		return NewInvalidInputError("email is required")
	}
	if u.PasswordHash == "" {
		return NewInvalidInputError("password hash is required")
	}
	return nil
}
