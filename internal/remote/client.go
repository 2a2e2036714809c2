// Package remote is the typed client for the storefront REST API the
// console administers. All collection reads return the full server-held
// set; all writes return only success or failure — callers re-derive state
// with a follow-up read, never from the write response.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/config"
	"github.com/cardstore/console/pkg/http"
	"github.com/cardstore/console/pkg/metrics"
)

// Client talks to the storefront backend.
type Client struct {
	base string // e.g. http://localhost:3000, no trailing slash

	// healthy reflects the outcome of the most recent upstream call.
	// The gRPC health service reads it.
	healthy atomic.Bool
}

// New builds a Client against the configured API base URL.
func New() *Client {
	c := &Client{base: config.APIBaseURL()}
	c.healthy.Store(true)
	return c
}

// NewWithBase builds a Client against an explicit base URL (tests).
func NewWithBase(base string) *Client {
	c := &Client{base: base}
	c.healthy.Store(true)
	return c
}

// Healthy reports whether the last upstream call succeeded.
func (c *Client) Healthy() bool { return c.healthy.Load() }

func (c *Client) observe(resource, action string, start time.Time, err error) {
	metrics.ObserveUpstream(resource, action, start)
	c.healthy.Store(err == nil)
}

// ─── Products ─────────────────────────────────────────────────────────────────

// Products returns the full product collection.
func (c *Client) Products(ctx context.Context) (out []models.Product, err error) {
	start := time.Now()
	defer func() { c.observe("products", "list", start, err) }()

	resp, err := http.Get(c.base + "/products").WithContext(ctx).Send()
	if err != nil {
		return nil, fmt.Errorf("remote: list products: %w", err)
	}
	if err = resp.Throw(); err != nil {
		return nil, fmt.Errorf("remote: list products: %w", err)
	}
	if err = resp.JSON(&out); err != nil {
		return nil, fmt.Errorf("remote: list products: %w", err)
	}
	return out, nil
}

// CreateProduct submits the product-add form upstream as multipart form
// data: name, category, price, status, plus the image file part.
// Non-2xx bodies are parsed for an {error} field; otherwise a generic
// message is synthesized.
func (c *Client) CreateProduct(ctx context.Context, in models.ProductInput) (err error) {
	start := time.Now()
	defer func() { c.observe("products", "create", start, err) }()

	fields := map[string]string{
		"name":     in.Name,
		"category": in.Category,
		"price":    strconv.FormatFloat(in.Price, 'f', -1, 64),
		"status":   in.Status,
	}

	req := http.Post(c.base + "/products").WithContext(ctx)
	if len(in.ImageData) > 0 {
		req.Multipart(fields, http.FilePart{Field: "image", Name: in.ImageName, Data: in.ImageData})
	} else {
		req.Multipart(fields)
	}

	resp, err := req.Send()
	if err != nil {
		return fmt.Errorf("remote: create product: %w", err)
	}
	if !resp.OK() {
		return fmt.Errorf("remote: create product: %s", errorMessage(resp))
	}
	return nil
}

// DeleteProduct removes one product by id.
func (c *Client) DeleteProduct(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { c.observe("products", "delete", start, err) }()

	resp, err := http.Delete(c.base + "/products/" + id).WithContext(ctx).Send()
	if err != nil {
		return fmt.Errorf("remote: delete product %s: %w", id, err)
	}
	if err = resp.Throw(); err != nil {
		return fmt.Errorf("remote: delete product %s: %w", id, err)
	}
	return nil
}

// ─── Users ────────────────────────────────────────────────────────────────────

// Users returns the full user collection.
func (c *Client) Users(ctx context.Context) (out []models.User, err error) {
	start := time.Now()
	defer func() { c.observe("users", "list", start, err) }()

	resp, err := http.Get(c.base + "/users").WithContext(ctx).Send()
	if err != nil {
		return nil, fmt.Errorf("remote: list users: %w", err)
	}
	if err = resp.Throw(); err != nil {
		return nil, fmt.Errorf("remote: list users: %w", err)
	}
	if err = resp.JSON(&out); err != nil {
		return nil, fmt.Errorf("remote: list users: %w", err)
	}
	return out, nil
}

// CreateUser submits the user-add form upstream as JSON.
func (c *Client) CreateUser(ctx context.Context, in models.UserInput) (err error) {
	start := time.Now()
	defer func() { c.observe("users", "create", start, err) }()

	resp, err := http.Post(c.base + "/users").WithContext(ctx).Body(in).Send()
	if err != nil {
		return fmt.Errorf("remote: create user: %w", err)
	}
	if err = resp.Throw(); err != nil {
		return fmt.Errorf("remote: create user: %w", err)
	}
	return nil
}

// DeleteUser removes one user by id.
func (c *Client) DeleteUser(ctx context.Context, id int) (err error) {
	start := time.Now()
	defer func() { c.observe("users", "delete", start, err) }()

	resp, err := http.Delete(c.base + "/users/" + strconv.Itoa(id)).WithContext(ctx).Send()
	if err != nil {
		return fmt.Errorf("remote: delete user %d: %w", id, err)
	}
	if err = resp.Throw(); err != nil {
		return fmt.Errorf("remote: delete user %d: %w", id, err)
	}
	return nil
}

// ─── Orders ───────────────────────────────────────────────────────────────────

// Orders returns the full order collection.
func (c *Client) Orders(ctx context.Context) (out []models.Order, err error) {
	start := time.Now()
	defer func() { c.observe("orders", "list", start, err) }()

	resp, err := http.Get(c.base + "/orders").WithContext(ctx).Send()
	if err != nil {
		return nil, fmt.Errorf("remote: list orders: %w", err)
	}
	if err = resp.Throw(); err != nil {
		return nil, fmt.Errorf("remote: list orders: %w", err)
	}
	if err = resp.JSON(&out); err != nil {
		return nil, fmt.Errorf("remote: list orders: %w", err)
	}
	return out, nil
}

// CancelOrder deletes one order by id.
func (c *Client) CancelOrder(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { c.observe("orders", "delete", start, err) }()

	resp, err := http.Delete(c.base + "/orders/" + id).WithContext(ctx).Send()
	if err != nil {
		return fmt.Errorf("remote: cancel order %s: %w", id, err)
	}
	if err = resp.Throw(); err != nil {
		return fmt.Errorf("remote: cancel order %s: %w", id, err)
	}
	return nil
}

// ─── Settings singletons ──────────────────────────────────────────────────────

// Shipping reads the shipping settings singleton.
func (c *Client) Shipping(ctx context.Context) (out models.ShippingSettings, err error) {
	start := time.Now()
	defer func() { c.observe("shipping", "get", start, err) }()

	resp, err := http.Get(c.base + "/api/shipping").WithContext(ctx).Send()
	if err != nil {
		return out, fmt.Errorf("remote: get shipping: %w", err)
	}
	if err = resp.Throw(); err != nil {
		return out, fmt.Errorf("remote: get shipping: %w", err)
	}
	if err = resp.JSON(&out); err != nil {
		return out, fmt.Errorf("remote: get shipping: %w", err)
	}
	return out, nil
}

// SaveShipping updates the shipping settings singleton.
func (c *Client) SaveShipping(ctx context.Context, s models.ShippingSettings) (err error) {
	start := time.Now()
	defer func() { c.observe("shipping", "put", start, err) }()

	resp, err := http.Put(c.base + "/api/shipping").WithContext(ctx).Body(s).Send()
	if err != nil {
		return fmt.Errorf("remote: save shipping: %w", err)
	}
	if err = resp.Throw(); err != nil {
		return fmt.Errorf("remote: save shipping: %w", err)
	}
	return nil
}

// PaymentMethods reads the payment channel singleton.
func (c *Client) PaymentMethods(ctx context.Context) (out models.PaymentMethods, err error) {
	start := time.Now()
	defer func() { c.observe("payment-methods", "get", start, err) }()

	resp, err := http.Get(c.base + "/api/payment-methods").WithContext(ctx).Send()
	if err != nil {
		return out, fmt.Errorf("remote: get payment methods: %w", err)
	}
	if err = resp.Throw(); err != nil {
		return out, fmt.Errorf("remote: get payment methods: %w", err)
	}
	if err = resp.JSON(&out); err != nil {
		return out, fmt.Errorf("remote: get payment methods: %w", err)
	}
	return out, nil
}

// SavePaymentMethods updates the payment channel singleton.
func (c *Client) SavePaymentMethods(ctx context.Context, p models.PaymentMethods) (err error) {
	start := time.Now()
	defer func() { c.observe("payment-methods", "put", start, err) }()

	resp, err := http.Put(c.base + "/api/payment-methods").WithContext(ctx).Body(p).Send()
	if err != nil {
		return fmt.Errorf("remote: save payment methods: %w", err)
	}
	if err = resp.Throw(); err != nil {
		return fmt.Errorf("remote: save payment methods: %w", err)
	}
	return nil
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

// errorMessage extracts the upstream {error} field from a failed response,
// falling back to a generic message with the status code.
func errorMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return fmt.Sprintf("request failed with status %d", resp.StatusCode)
}
