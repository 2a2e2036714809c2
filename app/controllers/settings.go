package controllers

import (
	"errors"
	"net/http"

	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/internal/settings"
	"github.com/cardstore/console/pkg/bind"
	"github.com/cardstore/console/pkg/response"
	"github.com/cardstore/console/pkg/validate"
)

// SettingsController edits the two upstream singletons.
type SettingsController struct {
	shipping *settings.Shipping
	payment  *settings.Payment
	trail    Recorder
}

func NewSettingsController(shipping *settings.Shipping, payment *settings.Payment, trail Recorder) *SettingsController {
	return &SettingsController{shipping: shipping, payment: payment, trail: trail}
}

func (c *SettingsController) record(action, res, outcome, detail string) {
	if c.trail != nil {
		c.trail.Record("admin", action, res, "", outcome, detail)
	}
}

// Shipping returns the current shipping values, loading them first.
// A failed load falls back to the last known state so the form still
// renders; missing fields stay empty.
func (c *SettingsController) Shipping(w http.ResponseWriter, r *http.Request) {
	_ = c.shipping.Load(r.Context())
	response.Success(w, c.shipping.Current())
}

// SaveShipping validates and persists the shipping form.
func (c *SettingsController) SaveShipping(w http.ResponseWriter, r *http.Request) {
	var in models.ShippingSettings
	var errs map[string]string
	var err error
	if isJSON(r) {
		errs, err = bind.JSON(r, &in)
	} else {
		errs, err = bind.Form(r, &in)
	}
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	if err := c.shipping.Save(r.Context(), in); err != nil {
		var verr *settings.ValidationError
		if errors.As(err, &verr) {
			response.ValidationError(w, verr.Fields)
			return
		}
		c.record("save", "shipping", "error", err.Error())
		response.Error(w, http.StatusBadGateway, err.Error())
		return
	}

	c.record("save", "shipping", "ok", "")
	response.Success(w, c.shipping.Current())
}

// PaymentMethods returns the current payment channels, loading them first.
func (c *SettingsController) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	_ = c.payment.Load(r.Context())
	response.Success(w, c.payment.Current())
}

// SavePaymentMethods persists the payment channel form. Every channel is
// optional free text.
func (c *SettingsController) SavePaymentMethods(w http.ResponseWriter, r *http.Request) {
	var in models.PaymentMethods
	var err error
	if isJSON(r) {
		_, err = bind.JSON(r, &in)
	} else {
		_, err = bind.Form(r, &in)
	}
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := c.payment.Save(r.Context(), in); err != nil {
		c.record("save", "payment-methods", "error", err.Error())
		response.Error(w, http.StatusBadGateway, err.Error())
		return
	}

	c.record("save", "payment-methods", "ok", "")
	response.Success(w, c.payment.Current())
}
