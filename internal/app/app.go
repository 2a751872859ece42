package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/artilluminati/pautina-hosting/internal/api"
	"github.com/artilluminati/pautina-hosting/internal/auth"
	"github.com/artilluminati/pautina-hosting/internal/config"
	"github.com/artilluminati/pautina-hosting/internal/models"
	"github.com/artilluminati/pautina-hosting/internal/storage"
)

// Seed phones satisfy the users.phone unique constraint; they are not
// reachable numbers.
const (
	adminSeedPhone = "+70000000001"
	testSeedPhone  = "+70000000002"
)

/* ------------------------------------------------------------------
   App struct — runtime container
-------------------------------------------------------------------*/

type App struct {
	cfg    config.Config
	db     *storage.Database
	auth   *auth.Service
	router *gin.Engine
}

// New loads configuration, connects to the database, applies the
// schema, seeds the bootstrap accounts and wires the HTTP layer.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	db, err := storage.NewDatabase(cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		return nil, err
	}

	a := &App{
		cfg:  cfg,
		db:   db,
		auth: auth.NewService(cfg.JWTSecret),
	}

	if err := a.seedUsers(db); err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	a.router = api.New(db, a.auth).SetupRouter()
	return a, nil
}

// Run serves HTTP until the listener fails or the process exits.
func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.cfg.WebHost, a.cfg.WebPort)
	log.Printf("HTTP listening on %s", addr)
	return a.router.Run(addr)
}

func (a *App) Close() error {
	return a.db.Close()
}

/* ------------------------------------------------------------------
   bootstrap seeding
-------------------------------------------------------------------*/

// seedStore is the slice of the store the bootstrap needs.
type seedStore interface {
	GetUserByEmail(email string) (models.User, error)
	CreateUser(user models.User) (models.User, error)
}

// seedUsers is the one-time idempotent bootstrap: ensure the admin and
// test accounts exist before traffic is served. Existing rows are left
// untouched so restarts never reset credentials.
func (a *App) seedUsers(store seedStore) error {
	seeds := []struct {
		name, email, phone, password string
		role                         models.Role
	}{
		{"Administrator", a.cfg.AdminEmail, adminSeedPhone, a.cfg.AdminPassword, models.RoleAdmin},
		{"Test User", a.cfg.TestEmail, testSeedPhone, a.cfg.TestPassword, models.RoleUser},
	}

	for _, s := range seeds {
		_, err := store.GetUserByEmail(s.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		hash, err := a.auth.HashPassword(s.password)
		if err != nil {
			return err
		}
		if _, err := store.CreateUser(models.User{
			Name:         s.name,
			Email:        s.email,
			Phone:        s.phone,
			PasswordHash: hash,
			Role:         s.role,
		}); err != nil {
			return err
		}
		log.Printf("seeded %s account %s", s.role, s.email)
	}
	return nil
}
