// Package routes registers the HTTP surface.
package routes

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/controllers"
	appgraphql "github.com/shashiranjanraj/verandah/app/graphql"
	"github.com/shashiranjanraj/verandah/app/listeners"
	"github.com/shashiranjanraj/verandah/pkg/metrics"
	"github.com/shashiranjanraj/verandah/pkg/middleware"
	"github.com/shashiranjanraj/verandah/pkg/rbac"
	"github.com/shashiranjanraj/verandah/pkg/router"
	"github.com/shashiranjanraj/verandah/pkg/ws"
)

// RegisterAPI mounts every endpoint on r, backed by db.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	authController := controllers.NewAuthController(db)
	menuController := controllers.NewMenuController(db)
	tableController := controllers.NewTableController(db)
	orderController := controllers.NewOrderController(db)
	paymentController := controllers.NewPaymentController(db)
	userController := controllers.NewUserController(db)
	healthController := controllers.NewHealthController(db)

	r.Get("/health", "health", healthController.Health)
	r.HandleFunc("/metrics", metrics.Handler().ServeHTTP)

	api := r.Group("/api")

	// Auth
	api.Post("/auth/register", "auth.register", authController.Register)
	api.Post("/auth/login", "auth.login", authController.Login)

	authed := api.Group("", middleware.Auth)
	authed.Get("/auth/me", "auth.me", authController.Me)
	authed.Put("/auth/profile", "auth.profile", authController.UpdateProfile)

	// Menu (public reads; optional auth lets admins see unavailable items)
	menu := api.Group("/menu", middleware.OptionalAuth)
	menu.Get("/categories", "menu.categories", menuController.Categories)
	menu.Get("/categories-with-menus", "menu.tree", menuController.CategoriesWithMenus)
	menu.Get("/items", "menu.items", menuController.Items)
	menu.Get("/items/{id}", "menu.item", menuController.Item)

	// GraphQL menu read model
	api.Post("/graphql", "graphql", appgraphql.Handler(db))

	// Tables
	tables := api.Group("/tables", middleware.Auth)
	tables.Get("", "tables.list", tableController.List)
	tables.Get("/available", "tables.available", tableController.Available)
	tables.Put("/{id}/occupy", "tables.occupy", tableController.Occupy)
	tables.Put("/{id}/release", "tables.release", tableController.Release)

	// Orders
	orders := api.Group("/orders", middleware.Auth)
	orders.Post("/create", "orders.create", orderController.Create)
	orders.Get("/my-orders", "orders.mine", orderController.MyOrders)
	orders.Get("/{id}", "orders.get", orderController.Get)

	// Payments
	payments := api.Group("/payments", middleware.Auth)
	payments.Post("/create", "payments.create", paymentController.Create)
	payments.Get("/order/{orderId}", "payments.by_order", paymentController.ByOrder)
	payments.Get("/user", "payments.mine", paymentController.MyPayments)

	// Admin surface
	admin := api.Group("", middleware.Auth, rbac.HasRole("admin"))

	admin.Post("/menu/categories", "admin.menu.category.create", menuController.CreateCategory)
	admin.Post("/menu/items", "admin.menu.item.create", menuController.CreateItem)
	admin.Put("/menu/items/{id}", "admin.menu.item.update", menuController.UpdateItem)
	admin.Delete("/menu/items/{id}", "admin.menu.item.delete", menuController.DeleteItem)
	admin.Post("/menu/items/{id}/image", "admin.menu.item.image", menuController.UploadImage)

	admin.Post("/tables", "admin.tables.create", tableController.Create)
	admin.Put("/tables/{id}/admin-update", "admin.tables.update", tableController.AdminUpdate)
	admin.Put("/tables/{id}/admin-release", "admin.tables.release", tableController.Release)

	admin.Get("/orders", "admin.orders.list", orderController.List)
	admin.Put("/orders/{id}/status", "admin.orders.status", orderController.UpdateStatus)
	admin.Put("/orders/items/{itemId}/status", "admin.orders.item_status", orderController.UpdateItemStatus)

	admin.Get("/payments", "admin.payments.list", paymentController.List)
	admin.Get("/payments/orders", "admin.payments.orders", paymentController.OrdersWithPayments)
	admin.Put("/payments/{id}/status", "admin.payments.status", paymentController.UpdateStatus)

	admin.Get("/users", "admin.users.list", userController.List)
	admin.Get("/users/{id}", "admin.users.get", userController.Get)
	admin.Put("/users/{id}/status", "admin.users.status", userController.SetStatus)

	// Kitchen live feed
	admin.Get("/ws/kitchen", "admin.ws.kitchen", func(w http.ResponseWriter, r *http.Request) {
		ws.Upgrade(w, r, listeners.KitchenHub)
	})
}
