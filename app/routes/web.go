package routes

import (
	"net/http"

	"github.com/cardstore/console/app/controllers"
	consolegraphql "github.com/cardstore/console/pkg/graphql"
	"github.com/cardstore/console/pkg/metrics"
	"github.com/cardstore/console/pkg/middleware"
	"github.com/cardstore/console/pkg/reqid"
	"github.com/cardstore/console/pkg/router"
	"github.com/cardstore/console/pkg/session"
	"github.com/cardstore/console/pkg/ws"

	"github.com/graphql-go/graphql"
)

// Deps carries the wired controllers and supporting handlers.
type Deps struct {
	Auth     *controllers.AuthController
	Panel    *controllers.PanelController
	Settings *controllers.SettingsController
	Hub      *ws.Hub
	Schema   graphql.Schema
}

// Register mounts the whole console surface on r.
func Register(r *router.Router, d Deps) {
	r.Use(
		reqid.Middleware(),
		middleware.Logger,
		middleware.Recovery,
		metrics.Middleware(),
		session.Middleware(session.DefaultOptions()),
	)

	// Login gate.
	r.Get("/login", "auth.show", d.Auth.ShowLogin)
	r.Post("/login", "auth.login", d.Auth.Login)
	r.Post("/logout", "auth.logout", d.Auth.Logout)

	// Observability stays outside the guard so probes need no session.
	r.Get("/metrics", "metrics", metrics.Handler())
	r.Post("/graphql", "graphql", consolegraphql.Handler(d.Schema))

	console := r.Group("/console", middleware.Guard)
	console.Get("", "console.page", d.Panel.Console)
	console.Post("/sections/{name}", "console.sections.show", d.Panel.ShowSection)

	console.Get("/fragments/products", "console.fragments.products", d.Panel.ProductsFragment)
	console.Get("/fragments/users", "console.fragments.users", d.Panel.UsersFragment)
	console.Get("/fragments/orders", "console.fragments.orders", d.Panel.OrdersFragment)
	console.Get("/fragments/dashboard", "console.fragments.dashboard", d.Panel.DashboardFragment)
	console.Get("/fragments/content", "console.fragments.content", d.Panel.ContentFragment)

	console.Post("/products", "console.products.create", d.Panel.CreateProduct)
	console.Post("/products/{id}/delete", "console.products.delete", d.Panel.DeleteProduct)
	console.Post("/users", "console.users.create", d.Panel.CreateUser)
	console.Post("/users/{id}/delete", "console.users.delete", d.Panel.DeleteUser)
	console.Post("/orders/{id}/cancel", "console.orders.cancel", d.Panel.CancelOrder)

	console.Post("/modals/{id}/open", "console.modals.open", d.Panel.OpenModal)
	console.Post("/modals/click", "console.modals.click", d.Panel.ModalClick)
	console.Get("/notifications", "console.notifications", d.Panel.Notifications)

	console.Get("/settings/shipping", "console.settings.shipping", d.Settings.Shipping)
	console.Post("/settings/shipping", "console.settings.shipping.save", d.Settings.SaveShipping)
	console.Get("/settings/payment-methods", "console.settings.payment", d.Settings.PaymentMethods)
	console.Post("/settings/payment-methods", "console.settings.payment.save", d.Settings.SavePaymentMethods)

	// Notification push channel. The guard applies; script clients carry
	// the session cookie from login.
	r.Get("/ws/notifications", "ws.notifications", func(w http.ResponseWriter, r *http.Request) {
		ws.Upgrade(w, r, d.Hub)
	}, middleware.Guard)
}
