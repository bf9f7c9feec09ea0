package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sparkle/internal/mailer"
	"sparkle/internal/models"
	"sparkle/internal/store"
	"sparkle/internal/utils"
)

const testSecret = "test-secret"

func testLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testRouter(users store.UserStore) chi.Router {
	log := testLog()
	r := chi.NewRouter()
	r.Post("/register", (&RegisterHandler{
		Users:     users,
		Mailer:    &mailer.Mailer{Log: log},
		JWTSecret: testSecret,
		JWTTTLMin: 60,
		Log:       log,
	}).ServeHTTP)
	r.Post("/login", (&LoginHandler{
		Users:     users,
		JWTSecret: testSecret,
		JWTTTLMin: 60,
		Log:       log,
	}).ServeHTTP)
	r.Put("/verify/{id}", (&VerifyHandler{Users: users, Log: log}).ServeHTTP)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestRegister(t *testing.T) {
	users := store.NewMockUserStore()
	r := testRouter(users)

	rec := doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"name": "Jane", "email": "Jane@X.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp TokenResponse
	decode(t, rec, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Jane", resp.User.Name)
	assert.Equal(t, "jane@x.com", resp.User.Email, "email stored lowercase")

	id, err := utils.ParseJWT(resp.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id)

	oid, err := primitive.ObjectIDFromHex(resp.User.ID)
	require.NoError(t, err)
	saved, err := users.FindByID(context.Background(), oid)
	require.NoError(t, err)
	assert.False(t, saved.IsVerified, "new accounts start unverified")
	assert.NotEqual(t, "password123", saved.PasswordHash)
	assert.Empty(t, saved.Cart)
}

func TestRegisterMissingFields(t *testing.T) {
	r := testRouter(store.NewMockUserStore())

	for _, body := range []map[string]string{
		{"email": "jane@x.com", "password": "password123"},
		{"name": "Jane", "password": "password123"},
		{"name": "Jane", "email": "jane@x.com"},
	} {
		rec := doJSON(t, r, http.MethodPost, "/register", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := store.NewMockUserStore()
	r := testRouter(users)

	body := map[string]string{"name": "Jane", "email": "jane@x.com", "password": "password123"}
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/register", body).Code)

	rec := doJSON(t, r, http.MethodPost, "/register", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
}

func TestLoginUnverified(t *testing.T) {
	users := store.NewMockUserStore()
	r := testRouter(users)

	body := map[string]string{"name": "Jane", "email": "jane@x.com", "password": "password123"}
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/register", body).Code)

	rec := doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"email": "jane@x.com", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please verify your email first")
}

func TestLoginInvalidCredentials(t *testing.T) {
	users := store.NewMockUserStore()
	r := testRouter(users)

	var resp TokenResponse
	rec := doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"name": "Jane", "email": "jane@x.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	decode(t, rec, &resp)
	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPut, "/verify/"+resp.User.ID, nil).Code)

	// unknown email and wrong password answer identically
	for _, body := range []map[string]string{
		{"email": "nobody@x.com", "password": "password123"},
		{"email": "jane@x.com", "password": "wrong"},
	} {
		rec := doJSON(t, r, http.MethodPost, "/login", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	}
}

func TestVerifyThenLogin(t *testing.T) {
	users := store.NewMockUserStore()
	r := testRouter(users)

	var reg TokenResponse
	rec := doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"name": "Jane", "email": "jane@x.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	decode(t, rec, &reg)

	rec = doJSON(t, r, http.MethodPut, "/verify/"+reg.User.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User verified successfully")

	rec = doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"email": "jane@x.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login LoginResponse
	decode(t, rec, &login)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, reg.User.ID, login.User.ID)
	assert.NotNil(t, login.User.Cart)
	assert.Empty(t, login.User.Cart)

	oid, err := primitive.ObjectIDFromHex(reg.User.ID)
	require.NoError(t, err)
	saved, err := users.FindByID(context.Background(), oid)
	require.NoError(t, err)
	assert.NotNil(t, saved.LastLogin, "login stamps lastLogin")
}

func TestVerifyInvalidID(t *testing.T) {
	r := testRouter(store.NewMockUserStore())
	rec := doJSON(t, r, http.MethodPut, "/verify/not-an-object-id", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid verification link")
}

func TestVerifyUnknownID(t *testing.T) {
	r := testRouter(store.NewMockUserStore())
	rec := doJSON(t, r, http.MethodPut, "/verify/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyIsIdempotent(t *testing.T) {
	users := store.NewMockUserStore()
	r := testRouter(users)

	user := &models.User{Name: "Jane", Email: "jane@x.com", PasswordHash: "x"}
	require.NoError(t, users.Create(context.Background(), user))

	for i := 0; i < 2; i++ {
		rec := doJSON(t, r, http.MethodPut, "/verify/"+user.ID.Hex(), nil)
		assert.Equal(t, http.StatusOK, rec.Code, "verify run %d", i+1)
	}

	saved, err := users.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, saved.IsVerified)
}

func TestRegisterStoreError(t *testing.T) {
	users := store.NewMockUserStore()
	r := testRouter(users)

	users.ErrorOnNextCall = assert.AnError
	rec := doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"name": "Jane", "email": "jane@x.com", "password": "password123",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error(), "internal detail not leaked")
}
