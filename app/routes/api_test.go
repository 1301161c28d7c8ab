package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quickbites/app/models"
	"quickbites/app/routes"
	"quickbites/database/seeders"
	"quickbites/pkg/database"
)

func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := database.Open(sqlite.Open(dsn))
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	require.NoError(t, seeders.SeedMenu(db))

	srv := httptest.NewServer(routes.Handler(db))
	t.Cleanup(srv.Close)
	return srv, db
}

type envelope struct {
	Status  int                    `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
	Errors  map[string]string      `json:"errors"`
}

func doJSON(t *testing.T, method, url, token string, body interface{}) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func registerAndLogin(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	code, env := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"email":    "anna@example.com",
		"password": "supersecret",
		"name":     "Anna",
	})
	require.Equal(t, http.StatusCreated, code)

	token, _ := env.Data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterLoginFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	token := registerAndLogin(t, srv)
	assert.NotEmpty(t, token)

	// Same email again conflicts.
	code, _ := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"email":    "anna@example.com",
		"password": "supersecret",
		"name":     "Anna",
	})
	assert.Equal(t, http.StatusConflict, code)

	// Wrong password and unknown email both answer 401.
	code, _ = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email":    "anna@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "supersecret",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	// Correct credentials log in.
	code, env := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email":    "anna@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, env.Data["access_token"])
}

func TestRegisterValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	code, env := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "tiny",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "password")
	assert.Contains(t, env.Errors, "name")
}

func TestMenuEndpoints(t *testing.T) {
	srv, db := newTestServer(t)

	code, env := doJSON(t, http.MethodGet, srv.URL+"/api/menu", "", nil)
	require.Equal(t, http.StatusOK, code)
	items, _ := env.Data["items"].([]interface{})
	assert.Len(t, items, 6)

	var burger models.MenuItem
	require.NoError(t, db.Where("name = ?", "Classic Burger").First(&burger).Error)

	code, env = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/menu/%d", srv.URL, burger.ID), "", nil)
	require.Equal(t, http.StatusOK, code)
	item, _ := env.Data["item"].(map[string]interface{})
	assert.Equal(t, "Classic Burger", item["name"])
	assert.Equal(t, 349.0, item["price"])

	code, _ = doJSON(t, http.MethodGet, srv.URL+"/api/menu/999999", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestOrderFlow(t *testing.T) {
	srv, db := newTestServer(t)
	token := registerAndLogin(t, srv)

	var burger models.MenuItem
	require.NoError(t, db.Where("name = ?", "Classic Burger").First(&burger).Error)

	// Without a token the handler must never run.
	code, _ := doJSON(t, http.MethodPost, srv.URL+"/api/orders", "", map[string]interface{}{
		"items": []map[string]interface{}{{"id": burger.ID, "quantity": 2}},
	})
	require.Equal(t, http.StatusUnauthorized, code)

	code, env := doJSON(t, http.MethodPost, srv.URL+"/api/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{{"id": burger.ID, "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, 698.0, env.Data["total_price"])

	// A cart naming a missing item writes nothing.
	code, _ = doJSON(t, http.MethodPost, srv.URL+"/api/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{{"id": 9999, "quantity": 1}},
	})
	require.Equal(t, http.StatusNotFound, code)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(1), orderCount)

	code, env = doJSON(t, http.MethodGet, srv.URL+"/api/orders", token, nil)
	require.Equal(t, http.StatusOK, code)
	orders, _ := env.Data["orders"].([]interface{})
	require.Len(t, orders, 1)

	order, _ := orders[0].(map[string]interface{})
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, 698.0, order["total_price"])

	lines, _ := order["items"].([]interface{})
	require.Len(t, lines, 1)
	line, _ := lines[0].(map[string]interface{})
	assert.Equal(t, "Classic Burger", line["name"])
	assert.Equal(t, 2.0, line["quantity"])
	assert.Equal(t, 349.0, line["price"])
}

func TestProfileEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)
	token := registerAndLogin(t, srv)

	code, env := doJSON(t, http.MethodGet, srv.URL+"/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, code)
	user, _ := env.Data["user"].(map[string]interface{})
	assert.Equal(t, "anna@example.com", user["email"])
	// The hash never leaves the core.
	_, leaked := user["password"]
	assert.False(t, leaked)

	code, _ = doJSON(t, http.MethodPut, srv.URL+"/api/auth/profile", token, map[string]string{
		"phone": "+371 20000000",
	})
	require.Equal(t, http.StatusOK, code)

	code, env = doJSON(t, http.MethodGet, srv.URL+"/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, code)
	user, _ = env.Data["user"].(map[string]interface{})
	assert.Equal(t, "+371 20000000", user["phone"])
	assert.Equal(t, "Anna", user["name"]) // untouched by the partial update
}

func TestSeederIsIdempotent(t *testing.T) {
	_, db := newTestServer(t)

	require.NoError(t, seeders.SeedMenu(db))

	var n int64
	require.NoError(t, db.Model(&models.MenuItem{}).Count(&n).Error)
	assert.Equal(t, int64(6), n)
}
