package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/auth-claims-service/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not touch the credential store on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the credential and claims endpoints.  The paths are
// flat: registration and login issue credentials and tokens, and /claims
// exchanges a previously issued token for the account's identity and
// permission names.  No route requires a bearer header; /claims takes the
// token in the request body.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	// Create a new account.  Answers 201 with the public projection of the
	// account, or 400 on validation and duplicate-email failures.
	e.POST("/register", a.Register)
	// Exchange email+password for a signed session token.  Answers 200 with
	// the token, or 401 with a deliberately generic message.
	e.POST("/login", a.Login)
	// Resolve a session token into {name, email, permissions}.  Answers 400
	// when the token is missing, invalid, expired, or the account is gone.
	e.POST("/claims", a.Claims)
}
