package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"realty/internal/errors"
	"realty/internal/service"
)

// WishlistHandler handles wishlist endpoints.
type WishlistHandler struct {
	wishlistService service.WishlistService
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// AddWishlistRequest represents a wishlist add request.
type AddWishlistRequest struct {
	PropertyID uint `json:"property_id" validate:"required"`
}

// Add godoc
// @Summary Add a property to the caller's wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddWishlistRequest true "Property to save"
// @Success 201 {object} model.WishlistItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /wishlist [post]
func (h *WishlistHandler) Add(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req AddWishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.wishlistService.Add(c.Request().Context(), actor, req.PropertyID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, item)
}

// List godoc
// @Summary List the caller's wishlist
// @Description Items are returned with their property resolved for display.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.WishlistItem
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /wishlist [get]
func (h *WishlistHandler) List(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	items, err := h.wishlistService.List(c.Request().Context(), actor)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, items)
}

// Remove godoc
// @Summary Remove a property from the caller's wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param property_id path int true "Property ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /wishlist/{property_id} [delete]
func (h *WishlistHandler) Remove(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	propertyID, err := parseIDParam(c, "property_id")
	if err != nil {
		return err
	}

	if err := h.wishlistService.Remove(c.Request().Context(), actor, propertyID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "wishlist item removed",
	})
}
