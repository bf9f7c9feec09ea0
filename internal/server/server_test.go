package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkle/internal/config"
	"sparkle/internal/mailer"
	"sparkle/internal/models"
	"sparkle/internal/store"
)

func testServer(t *testing.T, cartEnabled bool) (*Server, *store.MockProductStore) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		Port:        "0",
		JWTSecret:   "test-secret",
		JWTTTLMin:   60,
		CORSOrigin:  "http://localhost:3000",
		CartEnabled: cartEnabled,
	}
	products := store.NewMockProductStore()
	srv := NewServer(cfg, store.NewMockUserStore(), products, &mailer.Mailer{Log: log}, log)
	return srv, products
}

func request(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t, true)
	rec := request(t, srv.Router(), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartDisabledRedirects(t *testing.T) {
	srv, _ := testServer(t, false)
	r := srv.Router()

	for _, probe := range []struct{ method, path string }{
		{http.MethodGet, "/cart"},
		{http.MethodPost, "/cart/add"},
		{http.MethodDelete, "/cart"},
	} {
		rec := request(t, r, probe.method, probe.path, "", nil)
		assert.Equal(t, http.StatusMovedPermanently, rec.Code, "%s %s", probe.method, probe.path)
		assert.Contains(t, rec.Body.String(), "/contact")
	}

	// catalog stays live regardless of the cart policy
	rec := request(t, r, http.MethodGet, "/products", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// End-to-end walkthrough: register, blocked login, verify, login, shop.
func TestStorefrontScenario(t *testing.T) {
	srv, products := testServer(t, true)
	r := srv.Router()
	productX := products.Add(&models.Product{Name: "productX", Price: 10.00})

	// register issues a token but the account starts unverified
	rec := request(t, r, http.MethodPost, "/register", "", map[string]string{
		"name": "Jane", "email": "jane@x.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var reg struct {
		Token string            `json:"token"`
		User  models.PublicUser `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&reg))
	require.NotEmpty(t, reg.Token)

	// login before verification is rejected
	login := map[string]string{"email": "jane@x.com", "password": "password123"}
	rec = request(t, r, http.MethodPost, "/login", "", login)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please verify your email first")

	// verify, then login succeeds with an empty cart
	require.Equal(t, http.StatusOK, request(t, r, http.MethodPut, "/verify/"+reg.User.ID, "", nil).Code)
	rec = request(t, r, http.MethodPost, "/login", "", login)
	require.Equal(t, http.StatusOK, rec.Code)
	var session struct {
		Token string `json:"token"`
		User  struct {
			models.PublicUser
			Cart []models.CartItem `json:"cart"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&session))
	require.NotEmpty(t, session.Token)
	assert.Empty(t, session.User.Cart)

	type cartResp struct {
		Cart  []models.CartItem `json:"cart"`
		Total string            `json:"total"`
	}
	add := map[string]string{"productId": productX.Hex()}

	var resp cartResp
	rec = request(t, r, http.MethodPost, "/cart/add", session.Token, add)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = request(t, r, http.MethodPost, "/cart/add", session.Token, add)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Cart, 1)
	assert.Equal(t, 2, resp.Cart[0].Quantity)
	assert.Equal(t, "20.00", resp.Total)

	rec = request(t, r, http.MethodPut, "/cart/update/"+productX.Hex(), session.Token, map[string]int{"quantity": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "50.00", resp.Total)

	rec = request(t, r, http.MethodDelete, "/cart/remove/"+productX.Hex(), session.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Cart)
	assert.Equal(t, "0.00", resp.Total)
}
