package storage

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// Uniqueness violations surfaced from the database constraints. The
// constraints, not handler-level pre-checks, are what make concurrent
// registrations safe.
var (
	ErrEmailTaken     = errors.New("email already registered")
	ErrPhoneTaken     = errors.New("phone already registered")
	ErrSubdomainTaken = errors.New("subdomain already registered")
)

// notFound maps sql.ErrNoRows onto ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// uniqueViolation maps PostgreSQL unique-constraint violations (class
// 23505) onto the sentinel for the violated constraint.
func uniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "users_email_key":
			return ErrEmailTaken
		case "users_phone_key":
			return ErrPhoneTaken
		case "hosts_subdomain_key":
			return ErrSubdomainTaken
		}
	}
	return err
}
