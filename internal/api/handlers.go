package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artilluminati/pautina-hosting/internal/auth"
	"github.com/artilluminati/pautina-hosting/internal/models"
	"github.com/artilluminati/pautina-hosting/internal/storage"
	"github.com/artilluminati/pautina-hosting/internal/utils"
)

/* ----------------------------------------------------------------
   DTO types
-----------------------------------------------------------------*/

type UserRegistration struct {
	Name  string `json:"name"  binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
	// Password is accepted for wire compatibility and ignored; a
	// temporary password is generated instead.
	Password     string `json:"password"`
	AgreeTerms   bool   `json:"agree_terms"`
	AgreePrivacy bool   `json:"agree_privacy"`
}

type PasswordRecovery struct {
	Phone string `json:"phone" binding:"required"`
}

type HostCreation struct {
	Subdomain string      `json:"subdomain" binding:"required"`
	Plan      models.Plan `json:"plan"      binding:"required"`
}

// RegisteredUser is the registration response: the created user plus
// the one-time token the delivery bot exchanges for the temporary
// password. The plaintext password itself is never in the response.
type RegisteredUser struct {
	models.User
	Token string `json:"token"`
}

// HostSummary is the list/create response shape; the provisioned
// credential fields appear only in the detail response.
type HostSummary struct {
	ID        int64             `json:"id"`
	Subdomain string            `json:"subdomain"`
	Plan      models.Plan       `json:"plan"`
	Status    models.HostStatus `json:"status"`
	ExpiresAt *time.Time        `json:"expires_at"`
}

func summarizeHost(h models.Host) HostSummary {
	return HostSummary{
		ID:        h.ID,
		Subdomain: h.Subdomain,
		Plan:      h.Plan,
		Status:    h.Status,
		ExpiresAt: h.ExpiresAt,
	}
}

func (a *API) handleRoot(c *gin.Context) {
	c.JSON(200, gin.H{"message": "pautina hosting API"})
}

/* ================================================================
   USER AUTHENTICATION
================================================================ */

func (a *API) handleRegister(c *gin.Context) {
	var in UserRegistration
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request"})
		return
	}
	if !in.AgreeTerms || !in.AgreePrivacy {
		c.JSON(400, gin.H{"error": "Terms of service and privacy policy must be accepted"})
		return
	}

	tempPassword, err := a.auth.GenerateTempPassword(auth.TempPasswordLength)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create user"})
		return
	}
	hash, err := a.auth.HashPassword(tempPassword)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create user"})
		return
	}

	user, err := a.store.CreateUser(models.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Role:         models.RoleUser,
	})
	switch {
	case errors.Is(err, storage.ErrEmailTaken):
		c.JSON(400, gin.H{"error": "Email already registered"})
		return
	case errors.Is(err, storage.ErrPhoneTaken):
		c.JSON(400, gin.H{"error": "Phone already registered"})
		return
	case err != nil:
		c.JSON(500, gin.H{"error": "Failed to create user"})
		return
	}

	// Stash the plaintext under a one-time token for the delivery bot.
	token := uuid.New().String()
	if err := a.store.CreateTempPassword(token, tempPassword); err != nil {
		c.JSON(500, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(200, RegisteredUser{User: user, Token: token})
}

func (a *API) handleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(400, gin.H{"error": "Invalid request"})
		return
	}

	// Unknown email and wrong password are indistinguishable.
	user, err := a.store.GetUserByEmail(username)
	if err != nil || !a.auth.CheckPassword(password, user.PasswordHash) {
		c.JSON(401, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := a.auth.GenerateToken(user)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(200, gin.H{"access_token": token, "token_type": "bearer"})
}

func (a *API) handleRecoverPassword(c *gin.Context) {
	var in PasswordRecovery
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request"})
		return
	}

	user, err := a.store.GetUserByPhone(in.Phone)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(404, gin.H{"error": "User with this phone not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "Database error"})
		return
	}

	password, err := a.auth.GenerateTempPassword(auth.TempPasswordLength)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to recover password"})
		return
	}
	hash, err := a.auth.HashPassword(password)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to recover password"})
		return
	}
	if err := a.store.UpdateUserPassword(user.ID, hash); err != nil {
		c.JSON(500, gin.H{"error": "Failed to recover password"})
		return
	}

	c.JSON(200, gin.H{"login": user.Email, "password": password})
}

/* ================================================================
   CURRENT USER
================================================================ */

func (a *API) handleCurrentUser(c *gin.Context) {
	c.JSON(200, currentUser(c))
}

/* ================================================================
   HOST MANAGEMENT
================================================================ */

func (a *API) handleCreateHost(c *gin.Context) {
	user := currentUser(c)

	var in HostCreation
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request"})
		return
	}
	if !in.Plan.Valid() {
		c.JSON(400, gin.H{"error": "Unknown plan"})
		return
	}
	if !utils.IsValidSubdomain(in.Subdomain) {
		c.JSON(400, gin.H{"error": "Invalid subdomain"})
		return
	}

	host, err := a.store.CreateHost(models.Host{
		Subdomain: in.Subdomain,
		Plan:      in.Plan,
		Status:    models.StatusPending,
		OwnerID:   user.ID,
	})
	if errors.Is(err, storage.ErrSubdomainTaken) {
		c.JSON(400, gin.H{"error": "Subdomain already registered"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create host"})
		return
	}

	c.JSON(200, summarizeHost(host))
}

func (a *API) handleListHosts(c *gin.Context) {
	user := currentUser(c)

	hosts, err := a.store.ListHostsByOwner(user.ID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to list hosts"})
		return
	}

	out := make([]HostSummary, 0, len(hosts))
	for _, h := range hosts {
		out = append(out, summarizeHost(h))
	}
	c.JSON(200, out)
}

func (a *API) handleGetHost(c *gin.Context) {
	user := currentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(404, gin.H{"error": "Host not found"})
		return
	}

	host, err := a.store.GetHostByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(404, gin.H{"error": "Host not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "Database error"})
		return
	}
	// A host owned by someone else is indistinguishable from an
	// absent one.
	if host.OwnerID != user.ID {
		c.JSON(404, gin.H{"error": "Host not found"})
		return
	}

	c.JSON(200, host)
}

/* ================================================================
   ADMIN HANDLERS
================================================================ */

func (a *API) handleListUsers(c *gin.Context) {
	users, err := a.store.ListUsers()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(200, users)
}

func (a *API) handleBlockHost(c *gin.Context) {
	a.setHostStatus(c, models.StatusDisabled, "Host blocked")
}

func (a *API) handleArchiveHost(c *gin.Context) {
	a.setHostStatus(c, models.StatusArchived, "Host archived")
}

// setHostStatus overwrites the host status unconditionally; blocking a
// blocked host or archiving an archived one succeeds silently.
func (a *API) setHostStatus(c *gin.Context, status models.HostStatus, detail string) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(404, gin.H{"error": "Host not found"})
		return
	}

	host, err := a.store.SetHostStatus(id, status)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(404, gin.H{"error": "Host not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "Database error"})
		return
	}

	c.JSON(200, gin.H{"detail": detail, "host": summarizeHost(host)})
}
