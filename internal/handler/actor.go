package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"realty/internal/auth"
	"realty/internal/policy"
)

// actorFromContext resolves the authenticated actor from the verified
// JWT claims placed in context by the router middleware.
func actorFromContext(c echo.Context) (policy.Actor, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return policy.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return policy.Actor{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
