package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/loopcrm/crm-backend/internal/api/middleware"
	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call. An absent identity means the route was
// wired without Auth or the middleware was bypassed; either way the request
// is unauthenticated.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.Identity(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "No token, authorization denied")
	}
	return identity, nil
}
