package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fursheti/catering-orders/internal/cart"
	"github.com/fursheti/catering-orders/internal/catalog"
	"github.com/fursheti/catering-orders/internal/checkout"
	"github.com/fursheti/catering-orders/internal/pricing"
	"github.com/fursheti/catering-orders/internal/submit"
)

// newTestServer wires the full API against an in-memory snapshot store
// and the given gateway config.
func newTestServer(t *testing.T, gatewayCfg submit.Config) (*httptest.Server, *http.Client) {
	t.Helper()

	products := catalog.Default()
	sessions := NewSessions(cart.NewMemoryStore(), products)
	handler := NewHandler(products, sessions, checkout.NewCompiler(products), submit.NewGateway(gatewayCfg))

	server := httptest.NewServer(NewRouter(handler, sessions))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return server, &http.Client{Jar: jar}
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := client.Do(req)
	require.NoError(t, err)
	return res
}

func decode[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	defer res.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))
	return v
}

func validOrderRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Locale: "en",
		Form: checkout.Form{
			Name:      "Nino Beridze",
			Phone:     "+995 555 000 111",
			Email:     "nino@example.com",
			Date:      "2026-10-01",
			StartTime: "18:00",
			Street:    "Rustaveli Ave",
			Building:  "12",
			Guests:    25,
			Consent:   true,
		},
	}
}

func TestProductEndpoints(t *testing.T) {
	server, client := newTestServer(t, submit.Config{})

	res := doJSON(t, client, http.MethodGet, server.URL+"/products", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	all := decode[[]catalog.Product](t, res)
	assert.NotEmpty(t, all)

	res = doJSON(t, client, http.MethodGet, server.URL+"/products?category=drinks", nil)
	for _, p := range decode[[]catalog.Product](t, res) {
		assert.Equal(t, "drinks", p.Category)
	}

	res = doJSON(t, client, http.MethodGet, server.URL+"/products/salad-caesar", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	p := decode[catalog.Product](t, res)
	assert.Equal(t, "salad-caesar", p.ID)

	res = doJSON(t, client, http.MethodGet, server.URL+"/products/nope", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	res.Body.Close()

	res = doJSON(t, client, http.MethodGet, server.URL+"/categories", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotEmpty(t, decode[[]catalog.Category](t, res))
}

func TestCartLifecycle(t *testing.T) {
	server, client := newTestServer(t, submit.Config{})

	res := doJSON(t, client, http.MethodGet, server.URL+"/cart", nil)
	empty := decode[CartResponse](t, res)
	assert.Zero(t, empty.TotalItems)

	res = doJSON(t, client, http.MethodPost, server.URL+"/cart/items", AddItemRequest{ProductID: "salad-caesar", Quantity: 2})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	withItem := decode[CartResponse](t, res)
	require.Len(t, withItem.Items, 1)
	assert.Equal(t, "Caesar Salad", withItem.Items[0].Name)
	assert.Equal(t, 2, withItem.Items[0].Quantity)
	assert.True(t, withItem.Subtotal.Equal(decimal.RequireFromString("50")))

	// Adding the same product merges quantities.
	res = doJSON(t, client, http.MethodPost, server.URL+"/cart/items", AddItemRequest{ProductID: "salad-caesar", Quantity: 1})
	merged := decode[CartResponse](t, res)
	require.Len(t, merged.Items, 1)
	assert.Equal(t, 3, merged.Items[0].Quantity)

	qty := 0
	res = doJSON(t, client, http.MethodPatch, server.URL+"/cart/items/salad-caesar", UpdateItemRequest{Quantity: &qty})
	removed := decode[CartResponse](t, res)
	assert.Empty(t, removed.Items)
}

func TestUpdateNotesViaPatch(t *testing.T) {
	server, client := newTestServer(t, submit.Config{})

	doJSON(t, client, http.MethodPost, server.URL+"/cart/items", AddItemRequest{ProductID: "salad-caesar", Quantity: 1}).Body.Close()

	notes := "no croutons"
	res := doJSON(t, client, http.MethodPatch, server.URL+"/cart/items/salad-caesar", UpdateItemRequest{Notes: &notes})
	updated := decode[CartResponse](t, res)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "no croutons", updated.Items[0].Notes)
}

func TestSessionsAreIsolated(t *testing.T) {
	server, alice := newTestServer(t, submit.Config{})

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	bob := &http.Client{Jar: jar}

	doJSON(t, alice, http.MethodPost, server.URL+"/cart/items", AddItemRequest{ProductID: "salad-caesar", Quantity: 2}).Body.Close()

	res := doJSON(t, bob, http.MethodGet, server.URL+"/cart", nil)
	bobCart := decode[CartResponse](t, res)
	assert.Zero(t, bobCart.TotalItems, "another session must not see alice's cart")
}

func TestCreateOrderEmptyCart(t *testing.T) {
	server, client := newTestServer(t, submit.Config{})

	res := doJSON(t, client, http.MethodPost, server.URL+"/orders", validOrderRequest())
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	errRes := decode[ErrorResponse](t, res)
	assert.Equal(t, "empty_cart", errRes.Error)
}

func TestCreateOrderValidationFailure(t *testing.T) {
	server, client := newTestServer(t, submit.Config{})

	doJSON(t, client, http.MethodPost, server.URL+"/cart/items", AddItemRequest{ProductID: "salad-caesar", Quantity: 2}).Body.Close()

	req := validOrderRequest()
	req.Form.Phone = ""
	req.Form.Consent = false

	res := doJSON(t, client, http.MethodPost, server.URL+"/orders", req)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	errRes := decode[ErrorResponse](t, res)
	assert.Equal(t, "validation_failed", errRes.Error)
	assert.ElementsMatch(t, []string{"phone", "consent"}, errRes.Fields)

	// The cart is untouched by a failed checkout.
	res = doJSON(t, client, http.MethodGet, server.URL+"/cart", nil)
	assert.Equal(t, 2, decode[CartResponse](t, res).TotalItems)
}

func TestCreateOrderPrimaryChannel(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer provider.Close()

	server, client := newTestServer(t, submit.Config{
		ServiceID:  "s",
		TemplateID: "t",
		PublicKey:  "k",
		Inbox:      "orders@example.com",
		Endpoint:   provider.URL,
	})

	doJSON(t, client, http.MethodPost, server.URL+"/cart/items", AddItemRequest{ProductID: "salad-caesar", Quantity: 2}).Body.Close()

	req := validOrderRequest()
	req.Inventory = map[string]int{"plates": 10}
	req.Services = pricing.ServiceSelection{Setup: true}

	res := doJSON(t, client, http.MethodPost, server.URL+"/orders", req)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	created := decode[CreateOrderResponse](t, res)

	assert.Equal(t, submit.ChannelPrimary, created.Channel)
	assert.NotEmpty(t, created.OrderID)
	// food 50 + inventory 5 + setup 50 + delivery 20
	assert.True(t, created.GrandTotal.Equal(decimal.RequireFromString("125")))
	assert.Empty(t, created.ComposeURL)

	// Successful submission clears the cart.
	res = doJSON(t, client, http.MethodGet, server.URL+"/cart", nil)
	assert.Zero(t, decode[CartResponse](t, res).TotalItems)
}

func TestCreateOrderFallbackChannel(t *testing.T) {
	// No credentials configured: the order still succeeds through the
	// compose fallback.
	server, client := newTestServer(t, submit.Config{Inbox: "orders@example.com"})

	doJSON(t, client, http.MethodPost, server.URL+"/cart/items", AddItemRequest{ProductID: "salad-caesar", Quantity: 2}).Body.Close()

	res := doJSON(t, client, http.MethodPost, server.URL+"/orders", validOrderRequest())
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	created := decode[CreateOrderResponse](t, res)

	assert.Equal(t, submit.ChannelFallback, created.Channel)
	assert.Contains(t, created.ComposeURL, "mailto:orders@example.com")
}
