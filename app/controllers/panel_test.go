package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/cardstore/console/app/controllers"
	"github.com/cardstore/console/internal/form"
	"github.com/cardstore/console/internal/modal"
	"github.com/cardstore/console/internal/notify"
	"github.com/cardstore/console/internal/remote"
	"github.com/cardstore/console/internal/resource"
	"github.com/cardstore/console/internal/section"
	"github.com/cardstore/console/internal/settings"
	"github.com/cardstore/console/pkg/router"
	"github.com/cardstore/console/pkg/testkit"
)

// trailStub drops audit rows; the console surface under test does not
// depend on persistence.
type trailStub struct{}

func (trailStub) Record(actor, action, resource, targetID, outcome, detail string) {}

// newTestHandler wires the console surface against the mock upstream,
// without the login gate so scenarios need no session.
func newTestHandler() http.Handler {
	center := notify.NewCenterWith(notify.Options{
		ShowDelay:    time.Millisecond,
		DismissAfter: 50 * time.Millisecond,
		RemoveAfter:  time.Millisecond,
	})

	client := remote.NewWithBase("http://localhost:3000")
	products := resource.NewCollection("products", client.Products, center)
	users := resource.NewCollection("users", client.Users, center)
	orders := resource.NewCollection("orders", client.Orders, center)
	shipping := settings.NewShipping(client.Shipping, client.SaveShipping, center)
	payment := settings.NewPayment(client.PaymentMethods, client.SavePaymentMethods, center)

	panel := controllers.NewPanelController(controllers.PanelDeps{
		Client:   client,
		Products: products,
		Users:    users,
		Orders:   orders,
		Sections: section.NewRouter(),
		Modals:   modal.NewController(),
		Latch:    form.NewLatch(),
		Center:   center,
		Payment:  payment,
		Trail:    trailStub{},
	})
	settingsCtl := controllers.NewSettingsController(shipping, payment, trailStub{})

	r := router.New()
	console := r.Group("/console")
	console.Get("", "console.page", panel.Console)
	console.Post("/sections/{name}", "console.sections.show", panel.ShowSection)
	console.Get("/fragments/products", "console.fragments.products", panel.ProductsFragment)
	console.Get("/fragments/users", "console.fragments.users", panel.UsersFragment)
	console.Get("/fragments/orders", "console.fragments.orders", panel.OrdersFragment)
	console.Get("/fragments/dashboard", "console.fragments.dashboard", panel.DashboardFragment)
	console.Get("/fragments/content", "console.fragments.content", panel.ContentFragment)
	console.Post("/products", "console.products.create", panel.CreateProduct)
	console.Post("/products/{id}/delete", "console.products.delete", panel.DeleteProduct)
	console.Post("/users", "console.users.create", panel.CreateUser)
	console.Post("/users/{id}/delete", "console.users.delete", panel.DeleteUser)
	console.Post("/orders/{id}/cancel", "console.orders.cancel", panel.CancelOrder)
	console.Post("/modals/{id}/open", "console.modals.open", panel.OpenModal)
	console.Post("/modals/click", "console.modals.click", panel.ModalClick)
	console.Get("/notifications", "console.notifications", panel.Notifications)
	console.Get("/settings/shipping", "console.settings.shipping", settingsCtl.Shipping)
	console.Post("/settings/shipping", "console.settings.shipping.save", settingsCtl.SaveShipping)
	console.Get("/settings/payment-methods", "console.settings.payment", settingsCtl.PaymentMethods)
	console.Post("/settings/payment-methods", "console.settings.payment.save", settingsCtl.SavePaymentMethods)

	return r.Handler()
}

func TestConsoleScenarios(t *testing.T) {
	testkit.RunDir(t, newTestHandler(), "testdata")
}
