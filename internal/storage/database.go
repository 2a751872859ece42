package storage

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/artilluminati/pautina-hosting/internal/config"
	"github.com/artilluminati/pautina-hosting/internal/models"
)

// schema is applied on startup. The email constraint is declared before
// the phone constraint so that a row conflicting on both reports the
// email violation first.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL CONSTRAINT users_email_key UNIQUE,
	phone         TEXT NOT NULL CONSTRAINT users_phone_key UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'user',
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS temp_passwords (
	id            BIGSERIAL PRIMARY KEY,
	token         TEXT NOT NULL CONSTRAINT temp_passwords_token_key UNIQUE,
	temp_password TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS hosts (
	id             BIGSERIAL PRIMARY KEY,
	subdomain      TEXT NOT NULL CONSTRAINT hosts_subdomain_key UNIQUE,
	plan           TEXT NOT NULL DEFAULT 'demo',
	status         TEXT NOT NULL DEFAULT 'pending',
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expires_at     TIMESTAMPTZ,
	owner_id       BIGINT NOT NULL REFERENCES users (id),
	ftp_user       TEXT,
	ftp_password   TEXT,
	ssh_user       TEXT,
	ssh_key        TEXT,
	mysql_db       TEXT,
	mysql_user     TEXT,
	mysql_password TEXT,
	mail_user      TEXT,
	mail_password  TEXT
);
`

// Database provides database operations for the application
type Database struct {
	db *sqlx.DB
}

// NewDatabase creates a new database connection
func NewDatabase(cfg config.DBConfig) (*Database, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{db: db}, nil
}

// NewWithDB wraps an existing connection; used by tests.
func NewWithDB(db *sqlx.DB) *Database {
	return &Database{db: db}
}

// Migrate applies the schema.
func (d *Database) Migrate() error {
	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}

// User related methods

// CreateUser inserts a new user and returns the stored row. Email and
// phone uniqueness is enforced by the constraints and surfaces as
// ErrEmailTaken / ErrPhoneTaken.
func (d *Database) CreateUser(user models.User) (models.User, error) {
	err := d.db.Get(&user, `
		INSERT INTO users (name, email, phone, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *`,
		user.Name, user.Email, user.Phone, user.PasswordHash, user.Role)
	if err != nil {
		return models.User{}, uniqueViolation(err)
	}
	return user, nil
}

// GetUserByID gets a user by ID
func (d *Database) GetUserByID(id int64) (models.User, error) {
	var user models.User
	err := d.db.Get(&user, "SELECT * FROM users WHERE id = $1", id)
	return user, notFound(err)
}

// GetUserByEmail gets a user by email
func (d *Database) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := d.db.Get(&user, "SELECT * FROM users WHERE email = $1", email)
	return user, notFound(err)
}

// GetUserByPhone gets a user by phone number
func (d *Database) GetUserByPhone(phone string) (models.User, error) {
	var user models.User
	err := d.db.Get(&user, "SELECT * FROM users WHERE phone = $1", phone)
	return user, notFound(err)
}

// ListUsers lists all users
func (d *Database) ListUsers() ([]models.User, error) {
	var users []models.User
	err := d.db.Select(&users, "SELECT * FROM users ORDER BY id")
	return users, err
}

// UpdateUserPassword overwrites the stored password hash.
func (d *Database) UpdateUserPassword(id int64, passwordHash string) error {
	_, err := d.db.Exec("UPDATE users SET password_hash = $1 WHERE id = $2", passwordHash, id)
	return err
}

// Temporary password methods

// CreateTempPassword stores a plaintext temporary password under a
// one-time token for the delivery bot to pick up.
func (d *Database) CreateTempPassword(token, tempPassword string) error {
	_, err := d.db.Exec(`
		INSERT INTO temp_passwords (token, temp_password)
		VALUES ($1, $2)`,
		token, tempPassword)
	return err
}

// Host related methods

// CreateHost inserts a new host with status pending. Subdomain
// uniqueness surfaces as ErrSubdomainTaken.
func (d *Database) CreateHost(host models.Host) (models.Host, error) {
	err := d.db.Get(&host, `
		INSERT INTO hosts (subdomain, plan, owner_id)
		VALUES ($1, $2, $3)
		RETURNING *`,
		host.Subdomain, host.Plan, host.OwnerID)
	if err != nil {
		return models.Host{}, uniqueViolation(err)
	}
	return host, nil
}

// GetHostByID gets a host by ID
func (d *Database) GetHostByID(id int64) (models.Host, error) {
	var host models.Host
	err := d.db.Get(&host, "SELECT * FROM hosts WHERE id = $1", id)
	return host, notFound(err)
}

// ListHostsByOwner gets all hosts owned by a user
func (d *Database) ListHostsByOwner(ownerID int64) ([]models.Host, error) {
	var hosts []models.Host
	err := d.db.Select(&hosts, "SELECT * FROM hosts WHERE owner_id = $1 ORDER BY id", ownerID)
	return hosts, err
}

// SetHostStatus overwrites the host status unconditionally and returns
// the updated row. No legal-transition check is applied.
func (d *Database) SetHostStatus(id int64, status models.HostStatus) (models.Host, error) {
	var host models.Host
	err := d.db.Get(&host, `
		UPDATE hosts SET status = $1 WHERE id = $2
		RETURNING *`,
		status, id)
	return host, notFound(err)
}
