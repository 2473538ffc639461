package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/verandah/app/models"
	"github.com/shashiranjanraj/verandah/pkg/router"
)

type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func newTestAPI(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	))

	r := router.New()
	RegisterAPI(r, db)
	return r.Handler(), db
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec.Code, env
}

func registerUser(t *testing.T, h http.Handler, email, role string) string {
	t.Helper()

	code, env := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	token, _ := env.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func seedMenuAndTable(t *testing.T, db *gorm.DB) (models.MenuItem, models.Table) {
	t.Helper()

	category := models.Category{Name: "Coffee", IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	item := models.MenuItem{
		Name:            "Espresso",
		Price:           3.50,
		CategoryID:      category.ID,
		PreparationTime: 3,
		IsAvailable:     true,
	}
	require.NoError(t, db.Create(&item).Error)

	table := models.Table{TableNumber: 1, Capacity: 2, Status: models.TableAvailable}
	require.NoError(t, db.Create(&table).Error)

	return item, table
}

func TestRegisterLoginAndMe(t *testing.T) {
	h, _ := newTestAPI(t)

	token := registerUser(t, h, "asha@example.com", "")

	// Password hash never leaves the API.
	code, env := doJSON(t, h, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	user := env.Data["user"].(map[string]interface{})
	assert.Equal(t, "asha@example.com", user["email"])
	assert.Equal(t, "customer", user["role"])
	assert.NotContains(t, user, "password")

	// Login with the right and wrong password.
	code, _ = doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "asha@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, code)

	code, env = doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "asha@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)

	// Protected route without a token.
	code, _ = doJSON(t, h, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRegisterValidationErrors(t *testing.T) {
	h, _ := newTestAPI(t)

	code, env := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "not-an-email",
	})
	require.Equal(t, http.StatusUnprocessableEntity, code)

	errs := env.Data["errors"].(map[string]interface{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestAdminRoutesRejectCustomers(t *testing.T) {
	h, _ := newTestAPI(t)

	customer := registerUser(t, h, "guest@example.com", "")
	admin := registerUser(t, h, "boss@example.com", "admin")

	code, _ := doJSON(t, h, http.MethodGet, "/api/orders", customer, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doJSON(t, h, http.MethodGet, "/api/orders", admin, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, h, http.MethodGet, "/api/users", customer, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestMenuIsPubliclyReadable(t *testing.T) {
	h, db := newTestAPI(t)
	seedMenuAndTable(t, db)

	code, env := doJSON(t, h, http.MethodGet, "/api/menu/items", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	code, env = doJSON(t, h, http.MethodGet, "/api/menu/categories", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
}

func TestOrderAndPaymentFlow(t *testing.T) {
	h, db := newTestAPI(t)
	item, _ := seedMenuAndTable(t, db)

	customer := registerUser(t, h, "diner@example.com", "")
	admin := registerUser(t, h, "manager@example.com", "admin")

	// Place a takeaway order; the server prices it from the menu.
	code, env := doJSON(t, h, http.MethodPost, "/api/orders/create", customer, map[string]interface{}{
		"items":     []map[string]interface{}{{"menuItemId": item.ID, "quantity": 2}},
		"orderType": "takeaway",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	order := env.Data["order"].(map[string]interface{})
	assert.InDelta(t, 7.00, order["totalAmount"], 0.001)
	assert.Equal(t, "pending", order["status"])
	assert.True(t, strings.HasPrefix(order["orderNumber"].(string), "ORD-"))
	orderID := int(order["id"].(float64))

	// UPI settles immediately and bumps the order to confirmed.
	code, env = doJSON(t, h, http.MethodPost, "/api/payments/create", customer, map[string]interface{}{
		"orderId":       orderID,
		"paymentMethod": "upi",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	payment := env.Data["payment"].(map[string]interface{})
	assert.Equal(t, "completed", payment["paymentStatus"])
	assert.True(t, strings.HasPrefix(payment["transactionId"].(string), "TXN-"))

	// A second payment for the same order is rejected.
	code, _ = doJSON(t, h, http.MethodPost, "/api/payments/create", customer, map[string]interface{}{
		"orderId":       orderID,
		"paymentMethod": "cash",
	})
	assert.Equal(t, http.StatusConflict, code)

	// Admin moves the confirmed order forward.
	code, env = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", orderID), admin,
		map[string]string{"status": "preparing"})
	require.Equal(t, http.StatusOK, code, env.Message)
	order = env.Data["order"].(map[string]interface{})
	assert.Equal(t, "preparing", order["status"])

	// Backwards transitions are refused.
	code, _ = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", orderID), admin,
		map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusConflict, code)

	// Another customer cannot read this order.
	stranger := registerUser(t, h, "stranger@example.com", "")
	code, _ = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), stranger, nil)
	assert.Equal(t, http.StatusForbidden, code)

	// The owner can.
	code, _ = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), customer, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestOrderLookupEdgeCases(t *testing.T) {
	h, _ := newTestAPI(t)
	customer := registerUser(t, h, "diner@example.com", "")

	code, _ := doJSON(t, h, http.MethodGet, "/api/orders/9999", customer, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, h, http.MethodGet, "/api/orders/not-a-number", customer, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// Static route wins over the {id} wildcard.
	code, env := doJSON(t, h, http.MethodGet, "/api/orders/my-orders", customer, nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
}

func TestTableOccupancyOverHTTP(t *testing.T) {
	h, db := newTestAPI(t)
	_, table := seedMenuAndTable(t, db)

	customer := registerUser(t, h, "diner@example.com", "")
	rival := registerUser(t, h, "rival@example.com", "")

	path := fmt.Sprintf("/api/tables/%d/occupy", table.ID)

	code, _ := doJSON(t, h, http.MethodPut, path, customer, nil)
	require.Equal(t, http.StatusOK, code)

	// Second claim on the same table conflicts.
	code, _ = doJSON(t, h, http.MethodPut, path, rival, nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/tables/%d/release", table.ID), customer, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, h, http.MethodPut, path, rival, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestGraphQLMenuQuery(t *testing.T) {
	h, db := newTestAPI(t)
	seedMenuAndTable(t, db)

	body, err := json.Marshal(map[string]string{"query": `{ menuItems { name price } }`})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Data struct {
			MenuItems []struct {
				Name  string  `json:"name"`
				Price float64 `json:"price"`
			} `json:"menuItems"`
		} `json:"data"`
		Errors []interface{} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Empty(t, result.Errors)
	require.Len(t, result.Data.MenuItems, 1)
	assert.Equal(t, "Espresso", result.Data.MenuItems[0].Name)
	assert.InDelta(t, 3.50, result.Data.MenuItems[0].Price, 0.001)
}
