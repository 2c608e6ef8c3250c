package handler

import (
    "context"  // provides context with cancellation for DB calls
    "errors"   // sentinel error matching
    "fmt"      // response message formatting
    "net/http" // HTTP status codes and primitives
    "strings"  // string manipulation utilities
    "time"     // timeouts for DB calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/iliyamo/auth-claims-service/internal/config"     // app configuration
    "github.com/iliyamo/auth-claims-service/internal/queue"      // domain event payloads
    "github.com/iliyamo/auth-claims-service/internal/repository" // DB repositories
    queue_publisher "github.com/iliyamo/auth-claims-service/internal/service"
    "github.com/iliyamo/auth-claims-service/internal/utils" // helper functions (hashing, tokens)
)

// AuthHandler bundles dependencies for the register/login/claims endpoints.
// Publish is a hook so tests can observe events without a running broker;
// in production it points at the RabbitMQ publisher.
type AuthHandler struct {
	Cfg      config.Config
	Accounts *repository.AccountRepo
	Perms    *repository.PermissionCache
	Publish  func(ctx context.Context, event queue.AccountRegisteredEvent) error
}

func NewAuthHandler(cfg config.Config, a *repository.AccountRepo, p *repository.PermissionCache) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Accounts: a, Perms: p, Publish: queue_publisher.PublishAccountRegistered}
}

// ----- DTOs -----

type registerReq struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	EmailConfirmed string `json:"emailConfirmed"` // optional; must match email when present
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type claimsReq struct {
	Token string `json:"token"`
}

type accountResp struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
type tokenResp struct {
	Token string `json:"token"`
}
type claimsResp struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Permissions []string `json:"permissions"`
}

// Register: validate input, reject duplicate emails, hash and persist.
// The response carries only the public projection of the account; neither
// the plaintext password nor its hash ever appears in a response body.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = repository.NormalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password/name required"})
	}
	// The confirmation field is optional, but when the client sends one it
	// must match the primary email under the same normalization.
	if confirm := strings.TrimSpace(req.EmailConfirmed); confirm != "" {
		if repository.NormalizeEmail(confirm) != req.Email {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email confirmation does not match"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Best-effort duplicate check before insert.  Two racing registrations
	// can both pass this lookup; the unique index on accounts.email is the
	// final arbiter and surfaces below as ErrEmailExists.
	if _, err := h.Accounts.GetByEmail(ctx, req.Email); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": duplicateEmailMsg(req.Email)})
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}

	id, err := h.Accounts.Create(ctx, req.Email, req.Password, req.Name, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": duplicateEmailMsg(req.Email)})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create account failed"})
	}

	// Notify downstream consumers.  Publishing is best effort: a broker
	// outage must not fail a registration that already committed.
	_ = h.Publish(ctx, queue.AccountRegisteredEvent{
		AccountID:    id,
		Email:        req.Email,
		Name:         req.Name,
		RegisteredAt: time.Now().UTC().Format(time.RFC3339),
	})

	c.Response().Header().Set("Location", fmt.Sprintf("/users/%d", id))
	return c.JSON(http.StatusCreated, accountResp{ID: id, Email: req.Email, Name: req.Name})
}

// Login: verify credentials and mint a session token.  A missing account
// and a wrong password produce the same generic answer so the endpoint
// cannot be used to probe which emails are registered.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = repository.NormalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(a.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, a.ID, a.Email, h.Cfg.TokenTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{Token: tok.Token})
}

// Claims: validate a session token and resolve it to the account's public
// identity plus its permission names.  All token failures (malformed, bad
// signature, expired) share one message; a valid token whose account has
// since vanished is reported separately.
func (h *AuthHandler) Claims(c echo.Context) error {
	var req claimsReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Token) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "token required"})
	}

	claims, err := utils.ValidateSessionToken(h.Cfg.JWTSecret, strings.TrimSpace(req.Token))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid token"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "account not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	perms, err := h.Perms.Permissions(ctx, a.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	return c.JSON(http.StatusOK, claimsResp{Name: a.Name, Email: a.Email, Permissions: perms})
}

// duplicateEmailMsg names the conflicting address so the caller can fix
// the request without guessing which field collided.
func duplicateEmailMsg(email string) string {
	return fmt.Sprintf("the email '%s' is already in use by another account", email)
}
