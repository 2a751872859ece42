package models

import "time"

// TempPassword maps a one-time opaque token to a freshly generated
// plaintext password. The notification bot reads the row by token and
// delivers the password out-of-band; the API never returns the
// plaintext to the registering client.
type TempPassword struct {
	ID           int64     `db:"id" json:"id"`
	Token        string    `db:"token" json:"token"`
	TempPassword string    `db:"temp_password" json:"temp_password"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
