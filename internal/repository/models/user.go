package models

import (
	"database/sql"
	"time"
)

// User represents a user row.
type User struct {
	ID           string       `db:"id"` // ULID
	Email        string       `db:"email"`
	Name         string       `db:"name"`
	PasswordHash string       `db:"password_hash"` // salted SHA-256 digest, hex
	PasswordSalt string       `db:"password_salt"` // random salt, hex
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
	DeletedAt    sql.NullTime `db:"deleted_at"` // soft deletion, if applicable
}
