package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cardstore/console/app/jobs"
	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/internal/dashboard"
	"github.com/cardstore/console/internal/form"
	"github.com/cardstore/console/internal/modal"
	"github.com/cardstore/console/internal/notify"
	"github.com/cardstore/console/internal/remote"
	"github.com/cardstore/console/internal/resource"
	"github.com/cardstore/console/internal/section"
	"github.com/cardstore/console/internal/settings"
	"github.com/cardstore/console/internal/view"
	"github.com/cardstore/console/pkg/bind"
	"github.com/cardstore/console/pkg/logger"
	"github.com/cardstore/console/pkg/queue"
	"github.com/cardstore/console/pkg/response"
	"github.com/cardstore/console/pkg/router"
	"github.com/cardstore/console/pkg/validate"
)

// Recorder receives one audit row per admin mutation. *audit.Store
// satisfies it; tests pass a stub.
type Recorder interface {
	Record(actor, action, resource, targetID, outcome, detail string)
}

// PanelController drives the console itself: section routing, collection
// fragments, create/delete forms and modal events.
type PanelController struct {
	client   *remote.Client
	products *resource.Collection[models.Product]
	users    *resource.Collection[models.User]
	orders   *resource.Collection[models.Order]
	dash     *dashboard.Source

	sections *section.Router
	modals   *modal.Controller
	latch    *form.Latch
	center   *notify.Center
	payment  *settings.Payment
	trail    Recorder
}

// PanelDeps carries everything the panel needs; the server wires it once.
type PanelDeps struct {
	Client   *remote.Client
	Products *resource.Collection[models.Product]
	Users    *resource.Collection[models.User]
	Orders   *resource.Collection[models.Order]
	Sections *section.Router
	Modals   *modal.Controller
	Latch    *form.Latch
	Center   *notify.Center
	Payment  *settings.Payment
	Trail    Recorder
}

func NewPanelController(d PanelDeps) *PanelController {
	return &PanelController{
		client:   d.Client,
		products: d.Products,
		users:    d.Users,
		orders:   d.Orders,
		dash:     &dashboard.Source{Products: d.Products, Users: d.Users, Orders: d.Orders},
		sections: d.Sections,
		modals:   d.Modals,
		latch:    d.Latch,
		center:   d.Center,
		payment:  d.Payment,
		trail:    d.Trail,
	}
}

func (c *PanelController) record(action, res, targetID, outcome, detail string) {
	if c.trail != nil {
		c.trail.Record("admin", action, res, targetID, outcome, detail)
	}
}

// ─── Page and sections ────────────────────────────────────────────────────────

const consoleShell = `<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body>
<div id="console" data-active-section="%s">
  <h1 id="section-title">%s</h1>
  <div id="section-content"></div>
</div>
</body>
</html>`

// Console renders the page shell for the active section. Fragments fill
// in the content.
func (c *PanelController) Console(w http.ResponseWriter, r *http.Request) {
	active := c.sections.Active()
	response.HTML(w, http.StatusOK, fmt.Sprintf(consoleShell, section.Title(active), active, section.Title(active)))
}

// ShowSection activates a named section and returns its title.
func (c *PanelController) ShowSection(w http.ResponseWriter, r *http.Request) {
	name := router.Param(r, "name")
	if err := c.sections.Show(name); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	response.Success(w, map[string]string{
		"active": name,
		"title":  section.Title(name),
	})
}

// ─── Fragments ────────────────────────────────────────────────────────────────

// ProductsFragment reloads the products snapshot and renders it, filtered
// by the category query parameter. A failed reload keeps the previous
// snapshot on screen; the failure surfaces as a notification instead.
func (c *PanelController) ProductsFragment(w http.ResponseWriter, r *http.Request) {
	_ = c.products.Load(r.Context())
	markup, err := view.Products(c.products.Items(), r.URL.Query().Get("category"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "render failed")
		return
	}
	response.HTML(w, http.StatusOK, markup)
}

// UsersFragment reloads and renders the users table.
func (c *PanelController) UsersFragment(w http.ResponseWriter, r *http.Request) {
	_ = c.users.Load(r.Context())
	markup, err := view.Users(c.users.Items())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "render failed")
		return
	}
	response.HTML(w, http.StatusOK, markup)
}

// OrdersFragment reloads and renders the orders table.
func (c *PanelController) OrdersFragment(w http.ResponseWriter, r *http.Request) {
	_ = c.orders.Load(r.Context())
	markup, err := view.Orders(c.orders.Items())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "render failed")
		return
	}
	response.HTML(w, http.StatusOK, markup)
}

// ContentFragment renders the static site-content section.
func (c *PanelController) ContentFragment(w http.ResponseWriter, r *http.Request) {
	response.HTML(w, http.StatusOK, view.Content())
}

// DashboardFragment reloads every collection and renders the stat cards.
func (c *PanelController) DashboardFragment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_ = c.products.Load(ctx)
	_ = c.users.Load(ctx)
	_ = c.orders.Load(ctx)

	markup, err := view.Dashboard(c.dash.Stats())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "render failed")
		return
	}
	response.HTML(w, http.StatusOK, markup)
}

// ─── Products ─────────────────────────────────────────────────────────────────

// CreateProduct handles the add-product form: one submission at a time,
// default status applied, a required image read from the multipart part,
// and a full snapshot reload after a successful write.
func (c *PanelController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var (
		fieldErrs map[string]string
		status    = http.StatusOK
		message   string
	)

	err := c.latch.Submit("add-product", func() error {
		var in models.ProductInput
		errs, err := bind.Form(r, &in)
		if err != nil {
			status, message = http.StatusBadRequest, err.Error()
			return err
		}
		if errs == nil {
			errs = map[string]string{}
		}
		// A bound float cannot tell an absent price from a free product,
		// and the image arrives as a file part, so both presence checks
		// run against the raw form. Nothing is sent upstream until the
		// form is complete.
		if r.Form.Get("price") == "" {
			errs["price"] = "The price field is required."
		}
		file, header, ferr := r.FormFile("image")
		if ferr != nil {
			errs["image"] = "The image field is required."
		}
		if validate.HasErrors(errs) {
			if file != nil {
				file.Close()
			}
			fieldErrs = errs
			return fmt.Errorf("validation failed")
		}
		defer file.Close()
		if in.Status == "" {
			in.Status = form.DefaultProductStatus
		}

		data, rerr := io.ReadAll(file)
		if rerr != nil {
			status, message = http.StatusBadRequest, "could not read image upload"
			return rerr
		}
		in.ImageName = header.Filename
		in.ImageData = data

		if cerr := c.products.Create(r.Context(), func(ctx context.Context) error {
			return c.client.CreateProduct(ctx, in)
		}); cerr != nil {
			c.center.Notify(fmt.Sprintf("Failed to add product: %v", cerr), notify.Error)
			c.record("create", "products", "", "error", cerr.Error())
			status, message = http.StatusBadGateway, cerr.Error()
			return cerr
		}

		if len(in.ImageData) > 0 {
			if qerr := queue.Dispatch(&jobs.ArchiveImage{
				ProductName: in.Name,
				FileName:    in.ImageName,
				Data:        in.ImageData,
			}); qerr != nil {
				logger.Error("image archive dispatch failed", "error", qerr)
			}
		}

		c.modals.HideAll()
		c.center.Notify("Product added successfully", notify.Success)
		c.record("create", "products", "", "ok", in.Name)
		return nil
	})

	switch {
	case err == form.ErrInFlight:
		response.Error(w, http.StatusConflict, "submission already in progress")
	case fieldErrs != nil:
		response.ValidationError(w, fieldErrs)
	case err != nil:
		response.Error(w, status, message)
	default:
		response.Success(w, map[string]int{"products": c.products.Len()})
	}
}

// DeleteProduct removes one product after confirmation. A declined
// confirmation is a clean no-op, not an error.
func (c *PanelController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")
	confirmed := confirmField(r)

	err := c.products.Delete(r.Context(), confirmed, func(ctx context.Context) error {
		return c.client.DeleteProduct(ctx, id)
	})
	switch {
	case err == resource.ErrNotConfirmed:
		response.Success(w, map[string]string{"status": "cancelled"})
	case err != nil:
		c.center.Notify(fmt.Sprintf("Failed to delete product: %v", err), notify.Error)
		c.record("delete", "products", id, "error", err.Error())
		response.Error(w, http.StatusBadGateway, err.Error())
	default:
		c.center.Notify("Product deleted successfully", notify.Success)
		c.record("delete", "products", id, "ok", "")
		response.Success(w, map[string]int{"products": c.products.Len()})
	}
}

// ─── Users ────────────────────────────────────────────────────────────────────

// CreateUser handles the add-user form. Accepts JSON or form bodies.
func (c *PanelController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var (
		fieldErrs map[string]string
		status    = http.StatusOK
		message   string
	)

	err := c.latch.Submit("add-user", func() error {
		var in models.UserInput
		var errs map[string]string
		var err error
		if isJSON(r) {
			errs, err = bind.JSON(r, &in)
		} else {
			errs, err = bind.Form(r, &in)
		}
		if err != nil {
			status, message = http.StatusBadRequest, err.Error()
			return err
		}
		if validate.HasErrors(errs) {
			fieldErrs = errs
			return fmt.Errorf("validation failed")
		}
		if in.Status == "" {
			in.Status = form.DefaultUserStatus
		}

		if cerr := c.users.Create(r.Context(), func(ctx context.Context) error {
			return c.client.CreateUser(ctx, in)
		}); cerr != nil {
			c.center.Notify(fmt.Sprintf("Failed to add user: %v", cerr), notify.Error)
			c.record("create", "users", "", "error", cerr.Error())
			status, message = http.StatusBadGateway, cerr.Error()
			return cerr
		}

		c.modals.HideAll()
		c.center.Notify("User added successfully", notify.Success)
		c.record("create", "users", "", "ok", in.Username)
		return nil
	})

	switch {
	case err == form.ErrInFlight:
		response.Error(w, http.StatusConflict, "submission already in progress")
	case fieldErrs != nil:
		response.ValidationError(w, fieldErrs)
	case err != nil:
		response.Error(w, status, message)
	default:
		response.Success(w, map[string]int{"users": c.users.Len()})
	}
}

// DeleteUser removes one user after confirmation and reloads the snapshot,
// the same policy every delete follows.
func (c *PanelController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	raw := router.Param(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	confirmed := confirmField(r)

	err = c.users.Delete(r.Context(), confirmed, func(ctx context.Context) error {
		return c.client.DeleteUser(ctx, id)
	})
	switch {
	case err == resource.ErrNotConfirmed:
		response.Success(w, map[string]string{"status": "cancelled"})
	case err != nil:
		c.center.Notify(fmt.Sprintf("Failed to delete user: %v", err), notify.Error)
		c.record("delete", "users", raw, "error", err.Error())
		response.Error(w, http.StatusBadGateway, err.Error())
	default:
		c.center.Notify("User deleted successfully", notify.Success)
		c.record("delete", "users", raw, "ok", "")
		response.Success(w, map[string]int{"users": c.users.Len()})
	}
}

// ─── Orders ───────────────────────────────────────────────────────────────────

// CancelOrder cancels one order after confirmation.
func (c *PanelController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")
	confirmed := confirmField(r)

	err := c.orders.Delete(r.Context(), confirmed, func(ctx context.Context) error {
		return c.client.CancelOrder(ctx, id)
	})
	switch {
	case err == resource.ErrNotConfirmed:
		response.Success(w, map[string]string{"status": "cancelled"})
	case err != nil:
		c.center.Notify(fmt.Sprintf("Failed to cancel order: %v", err), notify.Error)
		c.record("delete", "orders", id, "error", err.Error())
		response.Error(w, http.StatusBadGateway, err.Error())
	default:
		c.center.Notify("Order cancelled successfully", notify.Success)
		c.record("delete", "orders", id, "ok", "")
		response.Success(w, map[string]int{"orders": c.orders.Len()})
	}
}

// ─── Modals and notifications ─────────────────────────────────────────────────

// paymentModalID is the modal whose open event also loads the payment
// channels into the form.
const paymentModalID = "payment-methods-modal"

// OpenModal shows a modal. The payment modal additionally populates its
// form from the upstream singleton; a failed load leaves the modal open
// with the last known values and surfaces the failure as a notification.
func (c *PanelController) OpenModal(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	loaded := true
	if id == paymentModalID && c.payment != nil {
		loaded = c.payment.Load(r.Context()) == nil
	}

	c.modals.Show(id)
	response.Success(w, map[string]interface{}{
		"visible": c.modals.Visible(),
		"loaded":  loaded,
	})
}

// ModalClick applies a click event to a modal: clicks on the backdrop or
// the close control dismiss it, clicks inside the content do not.
func (c *PanelController) ModalClick(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid form body")
		return
	}
	target := r.PostFormValue("target")
	modalID := r.PostFormValue("modal")

	c.modals.Click(target, modalID)
	response.Success(w, map[string]interface{}{
		"visible": c.modals.Visible(),
	})
}

// Notifications lists the live notification entries, oldest first.
func (c *PanelController) Notifications(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.center.Active())
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func confirmField(r *http.Request) bool {
	_ = r.ParseForm()
	switch r.PostFormValue("confirm") {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
