package remote_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/internal/remote"
	consolehttp "github.com/cardstore/console/pkg/http"
	"github.com/cardstore/console/pkg/testkit"
)

const base = "http://storefront.test"

func install(t *testing.T, steps ...testkit.MockStep) *testkit.MockTransport {
	t.Helper()
	mt := testkit.NewTransport(steps...)
	consolehttp.DefaultClient.Transport = mt
	t.Cleanup(consolehttp.ResetTransport)
	return mt
}

func TestProductsReturnsFullSnapshot(t *testing.T) {
	mt := install(t, testkit.JSONStep("GET", base+"/products", 200,
		`[{"id":"p1","name":"Birthday Card","category":"Gift Card","price":4.5,"status":"active"},
		  {"id":"p2","name":"Poster","category":"Wall Art","price":12,"status":"active"}]`))

	c := remote.NewWithBase(base)
	got, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Birthday Card", got[0].Name)
	assert.Equal(t, 4.5, got[0].Price)
	assert.True(t, c.Healthy())
	assert.Empty(t, mt.AssertAllCalled())
}

func TestProductsUpstreamErrorMarksUnhealthy(t *testing.T) {
	install(t, testkit.JSONStep("GET", base+"/products", 500, `{"error":"boom"}`))

	c := remote.NewWithBase(base)
	_, err := c.Products(context.Background())
	require.Error(t, err)
	assert.False(t, c.Healthy())
}

func TestCreateProductSendsMultipart(t *testing.T) {
	mt := install(t, testkit.JSONStep("POST", base+"/products", 201, `{"id":"p9"}`))

	c := remote.NewWithBase(base)
	err := c.CreateProduct(context.Background(), models.ProductInput{
		Name:      "Thank You Card",
		Category:  "greeting-cards",
		Price:     3.25,
		Status:    "active",
		ImageName: "card.png",
		ImageData: []byte("png-bytes"),
	})
	require.NoError(t, err)
	assert.Empty(t, mt.AssertAllCalled())
}

func TestCreateProductSurfacesUpstreamMessage(t *testing.T) {
	install(t, testkit.JSONStep("POST", base+"/products", 422, `{"error":"name already exists"}`))

	c := remote.NewWithBase(base)
	err := c.CreateProduct(context.Background(), models.ProductInput{
		Name: "Dup", Category: "cards", Price: 1, Status: "active",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name already exists")
}

func TestDeleteProduct(t *testing.T) {
	mt := install(t, testkit.JSONStep("DELETE", base+"/products/p1", 200, `{"ok":true}`))

	c := remote.NewWithBase(base)
	require.NoError(t, c.DeleteProduct(context.Background(), "p1"))
	assert.Empty(t, mt.AssertAllCalled())
}

func TestCreateUserPostsJSON(t *testing.T) {
	mt := install(t, testkit.JSONStep("POST", base+"/users", 201, `{"id":7}`))

	c := remote.NewWithBase(base)
	err := c.CreateUser(context.Background(), models.UserInput{
		Username: "clerk",
		Email:    "clerk@example.com",
		Password: "s3cret-pass",
		Role:     "moderator",
		Status:   "active",
	})
	require.NoError(t, err)
	assert.Empty(t, mt.AssertAllCalled())
}

func TestDeleteUser(t *testing.T) {
	install(t, testkit.JSONStep("DELETE", base+"/users/7", 200, `{"ok":true}`))

	c := remote.NewWithBase(base)
	require.NoError(t, c.DeleteUser(context.Background(), 7))
}

func TestOrdersKeepsUnknownFields(t *testing.T) {
	install(t, testkit.JSONStep("GET", base+"/orders", 200,
		`[{"id":1001,"customer":"Ada","total":19.5,"status":"pending"}]`))

	c := remote.NewWithBase(base)
	got, err := c.Orders(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1001", got[0].ID)
	assert.Equal(t, "Ada", got[0].Field("customer"))
	assert.Equal(t, "pending", got[0].Field("status"))
}

func TestCancelOrder(t *testing.T) {
	install(t, testkit.JSONStep("DELETE", base+"/orders/1001", 200, `{"ok":true}`))

	c := remote.NewWithBase(base)
	require.NoError(t, c.CancelOrder(context.Background(), "1001"))
}

func TestShippingRoundTrip(t *testing.T) {
	install(t,
		testkit.JSONStep("GET", base+"/api/shipping", 200,
			`{"method":"express","cost":9.99,"estimatedDelivery":"1-2 days"}`),
		testkit.JSONStep("PUT", base+"/api/shipping", 200, `{"ok":true}`),
	)

	c := remote.NewWithBase(base)
	got, err := c.Shipping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "express", got.Method)
	assert.Equal(t, 9.99, got.Cost)

	got.Cost = 12
	require.NoError(t, c.SaveShipping(context.Background(), got))
}

func TestPaymentMethodsMissingChannelsStayEmpty(t *testing.T) {
	install(t, testkit.JSONStep("GET", base+"/api/payment-methods", 200,
		`{"bank":"IBAN 42","bitcoin":"bc1q"}`))

	c := remote.NewWithBase(base)
	got, err := c.PaymentMethods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "IBAN 42", got.Bank)
	assert.Empty(t, got.PayPal)
	assert.Empty(t, got.USDT)
}

func TestSavePaymentMethods(t *testing.T) {
	install(t, testkit.JSONStep("PUT", base+"/api/payment-methods", 200, `{"ok":true}`))

	c := remote.NewWithBase(base)
	require.NoError(t, c.SavePaymentMethods(context.Background(), models.PaymentMethods{
		PayPal: "pay@example.com",
	}))
}
