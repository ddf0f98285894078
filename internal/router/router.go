package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"realty/internal/auth"
	"realty/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	propertyHandler *handler.PropertyHandler,
	applicationHandler *handler.ApplicationHandler,
	wishlistHandler *handler.WishlistHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication). Tokens are parsed by
	// the auth service so verified claims land in context as *auth.Claims.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
	}))

	secured.GET("/me", func(c echo.Context) error {
		claims, ok := c.Get("user").(*auth.Claims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return c.JSON(http.StatusOK, echo.Map{
			"id":       claims.UserID,
			"username": claims.Username,
			"role":     claims.Role,
		})
	})

	// Property routes
	secured.GET("/properties", propertyHandler.List)
	secured.POST("/properties", propertyHandler.Create)
	secured.GET("/properties/:id", propertyHandler.Get)
	secured.PATCH("/properties/:id", propertyHandler.Update)
	secured.DELETE("/properties/:id", propertyHandler.Delete)

	// Application routes
	secured.GET("/applications", applicationHandler.List)
	secured.POST("/applications", applicationHandler.Create)
	secured.PUT("/applications/:id", applicationHandler.Decide)
	secured.DELETE("/applications/:id", applicationHandler.Delete)

	// Wishlist routes
	secured.GET("/wishlist", wishlistHandler.List)
	secured.POST("/wishlist", wishlistHandler.Add)
	secured.DELETE("/wishlist/:property_id", wishlistHandler.Remove)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
