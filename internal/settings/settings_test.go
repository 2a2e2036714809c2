package settings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/internal/notify"
	"github.com/cardstore/console/internal/settings"
)

func testCenter() *notify.Center {
	return notify.NewCenterWith(notify.Options{
		ShowDelay:    time.Millisecond,
		DismissAfter: 50 * time.Millisecond,
		RemoveAfter:  time.Millisecond,
	})
}

func TestShippingLoadPopulatesState(t *testing.T) {
	want := models.ShippingSettings{Method: "express", Cost: 12.5, EstimatedDelivery: "2-3 days"}
	s := settings.NewShipping(
		func(context.Context) (models.ShippingSettings, error) { return want, nil },
		func(context.Context, models.ShippingSettings) error { return nil },
		testCenter(),
	)

	require.NoError(t, s.Load(context.Background()))
	assert.True(t, s.Loaded())
	assert.Equal(t, want, s.Current())
}

func TestShippingLoadFailureKeepsState(t *testing.T) {
	center := testCenter()
	calls := 0
	s := settings.NewShipping(
		func(context.Context) (models.ShippingSettings, error) {
			calls++
			if calls == 1 {
				return models.ShippingSettings{Method: "standard", Cost: 5}, nil
			}
			return models.ShippingSettings{}, errors.New("upstream down")
		},
		func(context.Context, models.ShippingSettings) error { return nil },
		center,
	)

	require.NoError(t, s.Load(context.Background()))
	err := s.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, "standard", s.Current().Method)

	entries := center.Active()
	require.Len(t, entries, 1)
	assert.Equal(t, notify.Error, entries[0].Severity)
}

func TestShippingSaveValidates(t *testing.T) {
	saved := false
	s := settings.NewShipping(
		func(context.Context) (models.ShippingSettings, error) { return models.ShippingSettings{}, nil },
		func(context.Context, models.ShippingSettings) error { saved = true; return nil },
		testCenter(),
	)

	err := s.Save(context.Background(), models.ShippingSettings{Method: "", Cost: 3})
	var verr *settings.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "method")
	assert.False(t, saved)

	err = s.Save(context.Background(), models.ShippingSettings{Method: "standard", Cost: -1})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "cost")
	assert.False(t, saved)
}

func TestShippingSaveKeepsSubmittedValues(t *testing.T) {
	center := testCenter()
	s := settings.NewShipping(
		func(context.Context) (models.ShippingSettings, error) { return models.ShippingSettings{}, nil },
		func(context.Context, models.ShippingSettings) error { return nil },
		center,
	)

	in := models.ShippingSettings{Method: "express", Cost: 9.99, EstimatedDelivery: "1 day"}
	require.NoError(t, s.Save(context.Background(), in))
	assert.Equal(t, in, s.Current())

	entries := center.Active()
	require.Len(t, entries, 1)
	assert.Equal(t, notify.Success, entries[0].Severity)
}

func TestShippingSaveFailureKeepsPriorState(t *testing.T) {
	s := settings.NewShipping(
		func(context.Context) (models.ShippingSettings, error) {
			return models.ShippingSettings{Method: "standard", Cost: 5}, nil
		},
		func(context.Context, models.ShippingSettings) error { return errors.New("rejected") },
		testCenter(),
	)

	require.NoError(t, s.Load(context.Background()))
	err := s.Save(context.Background(), models.ShippingSettings{Method: "express", Cost: 20})
	require.Error(t, err)
	assert.Equal(t, "standard", s.Current().Method)
}

func TestPaymentLoadAndSave(t *testing.T) {
	center := testCenter()
	stored := models.PaymentMethods{Bank: "IBAN 123", Bitcoin: "bc1q..."}
	p := settings.NewPayment(
		func(context.Context) (models.PaymentMethods, error) { return stored, nil },
		func(_ context.Context, in models.PaymentMethods) error { stored = in; return nil },
		center,
	)

	require.NoError(t, p.Load(context.Background()))
	assert.Equal(t, "IBAN 123", p.Current().Bank)
	assert.Empty(t, p.Current().PayPal)

	in := models.PaymentMethods{PayPal: "pay@example.com"}
	require.NoError(t, p.Save(context.Background(), in))
	assert.Equal(t, in, p.Current())
	assert.Equal(t, in, stored)
}

func TestPaymentLoadFailureNotifies(t *testing.T) {
	center := testCenter()
	p := settings.NewPayment(
		func(context.Context) (models.PaymentMethods, error) {
			return models.PaymentMethods{}, errors.New("timeout")
		},
		func(context.Context, models.PaymentMethods) error { return nil },
		center,
	)

	require.Error(t, p.Load(context.Background()))
	assert.False(t, p.Loaded())

	entries := center.Active()
	require.Len(t, entries, 1)
	assert.Equal(t, notify.Error, entries[0].Severity)
}
