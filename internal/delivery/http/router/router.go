// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodcourt/internal/delivery/http/middleware"
	"foodcourt/internal/delivery/http/router/handler"
	"foodcourt/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FoodHandler     *handler.FoodHandler
	PurchaseHandler *handler.PurchaseHandler
	UserHandler     *handler.UserHandler
	GalleryHandler  *handler.GalleryHandler
	SessionHandler  *handler.SessionHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Registry        *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	foodHandler     *handler.FoodHandler
	purchaseHandler *handler.PurchaseHandler
	userHandler     *handler.UserHandler
	galleryHandler  *handler.GalleryHandler
	sessionHandler  *handler.SessionHandler
	authMiddleware  *middleware.AuthMiddleware
	registry        *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		foodHandler:     params.FoodHandler,
		purchaseHandler: params.PurchaseHandler,
		userHandler:     params.UserHandler,
		galleryHandler:  params.GalleryHandler,
		sessionHandler:  params.SessionHandler,
		authMiddleware:  params.AuthMiddleware,
		registry:        params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application. The path
// layout is kept compatible with the storefront client.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authed := r.authMiddleware.Authenticate
	owned := r.authMiddleware.RequireOwner

	e.GET("/", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.SetupMetricsRoute(r.registry)))

	// Public catalog
	e.GET("/foodsAll", r.foodHandler.ListAll)
	e.GET("/singleFood/:id", r.foodHandler.GetByID)
	e.GET("/specificFood/:id", r.foodHandler.GetByID)
	e.GET("/update/:id", r.foodHandler.GetByID)

	// Owner catalog management
	e.GET("/myAddedFood", r.foodHandler.ListMine, authed, owned)
	e.POST("/addFood", r.foodHandler.Create, authed, owned)
	e.PUT("/myAddedPut/:id", r.foodHandler.Update, authed)
	e.DELETE("/myAddedFood/:id", r.foodHandler.Delete, authed)
	e.PATCH("/updateQuantity", r.foodHandler.AdjustStock, authed)

	// Orders
	e.POST("/purchase", r.purchaseHandler.Place)
	e.GET("/purchaseOrderFood", r.purchaseHandler.ListMine, authed, owned)
	e.DELETE("/purchaseOrderFood/:id", r.purchaseHandler.Delete, authed)

	// Gallery
	e.GET("/gallery", r.galleryHandler.List, authed, owned)
	e.POST("/gallery", r.galleryHandler.Add)

	// Profiles and sessions
	e.POST("/users", r.userHandler.Register)
	e.POST("/jwt", r.sessionHandler.IssueToken)
	e.POST("/logout", r.sessionHandler.Logout)
}
