package api

import (
	"github.com/gin-gonic/gin"

	"github.com/artilluminati/pautina-hosting/internal/auth"
	"github.com/artilluminati/pautina-hosting/internal/models"
)

// Store is the relational collaborator the handlers talk to. It is
// implemented by *storage.Database; lookups report missing rows as
// storage.ErrNotFound and uniqueness conflicts as the storage
// Err*Taken sentinels.
type Store interface {
	CreateUser(user models.User) (models.User, error)
	GetUserByID(id int64) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	GetUserByPhone(phone string) (models.User, error)
	ListUsers() ([]models.User, error)
	UpdateUserPassword(id int64, passwordHash string) error
	CreateTempPassword(token, tempPassword string) error
	CreateHost(host models.Host) (models.Host, error)
	GetHostByID(id int64) (models.Host, error)
	ListHostsByOwner(ownerID int64) ([]models.Host, error)
	SetHostStatus(id int64, status models.HostStatus) (models.Host, error)
}

// API holds the handler dependencies.
type API struct {
	store Store
	auth  *auth.Service
}

// New creates a new API instance
func New(store Store, authService *auth.Service) *API {
	return &API{
		store: store,
		auth:  authService,
	}
}

// SetupRouter wires every HTTP endpoint.
func (a *API) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", a.handleRoot)

	/* ---------- public endpoints ---------- */
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", a.handleRegister)
		authGroup.POST("/login", a.handleLogin)
		authGroup.POST("/recover", a.handleRecoverPassword)
	}

	/* ---------- protected endpoints ---------- */
	users := r.Group("/users")
	users.Use(a.AuthRequired())
	{
		users.GET("/me", a.handleCurrentUser)
	}

	hosts := r.Group("/hosts")
	hosts.Use(a.AuthRequired())
	{
		hosts.POST("/", a.handleCreateHost)
		hosts.GET("/", a.handleListHosts)
		hosts.GET("/:id", a.handleGetHost)
	}

	/* ----- admin group ----- */
	admin := r.Group("/admin")
	admin.Use(a.AuthRequired(), a.AdminRequired())
	{
		admin.GET("/users", a.handleListUsers)
		admin.POST("/hosts/:id/block", a.handleBlockHost)
		admin.POST("/hosts/:id/archive", a.handleArchiveHost)
	}

	return r
}
