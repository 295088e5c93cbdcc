// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accounts/internal/delivery/api/middleware"
	"accounts/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware the router mounts, injected by Fx.
type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	authGroup.Use(r.sessionMiddleware.Load)
	{
		authGroup.POST("/signup", r.accountHandler.Signup)
		authGroup.POST("/signin", r.accountHandler.Signin)
		authGroup.POST("/signout", r.accountHandler.Signout)
		authGroup.GET("/whoami", r.accountHandler.WhoAmI, r.sessionMiddleware.RequireSignedIn)

		authGroup.GET("", r.accountHandler.FindAllUsers)
		authGroup.GET("/:id", r.accountHandler.FindUser)
		authGroup.PATCH("/:id", r.accountHandler.UpdateUser)
		authGroup.DELETE("/:id", r.accountHandler.RemoveUser)
	}
}
