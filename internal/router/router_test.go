package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cafeteria-admin/internal/model"
	"cafeteria-admin/internal/repository/sqlstore"
	"cafeteria-admin/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.ConnectSQL("sqlite://:memory:")
	require.NoError(t, err)
	require.NoError(t, sqlstore.AutoMigrate(context.Background(), db))

	store := sqlstore.New(db, "test")
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return New(store, Options{DatabaseURLSet: true})
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

type idBody struct {
	ID string `json:"id"`
}

type detailBody struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func createMenuItem(t *testing.T, app *fiber.App, title string, price float64) string {
	t.Helper()
	status, raw := do(t, app, "POST", "/api/menu", map[string]interface{}{"title": title, "price": price})
	require.Equal(t, http.StatusCreated, status, string(raw))
	return decode[idBody](t, raw).ID
}

func TestRoot(t *testing.T) {
	app := newTestApp(t)
	status, raw := do(t, app, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Cafeteria Management Backend Running"}`, string(raw))
}

func TestMenu_CreateThenList(t *testing.T) {
	app := newTestApp(t)
	id := createMenuItem(t, app, "Flat White", 3.8)
	assert.True(t, model.ValidID(id))

	status, raw := do(t, app, "GET", "/api/menu", nil)
	require.Equal(t, http.StatusOK, status)
	items := decode[[]map[string]interface{}](t, raw)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0]["_id"])
	assert.Equal(t, 3.8, items[0]["price"])
	assert.Equal(t, true, items[0]["available"])
	assert.Contains(t, items[0], "description")
	assert.Nil(t, items[0]["description"])

	status, raw = do(t, app, "GET", "/api/menu/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Flat White", decode[map[string]interface{}](t, raw)["title"])
}

func TestMenu_ValidationErrors(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, "POST", "/api/menu", map[string]interface{}{"title": "Pie", "price": -1})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "gte", decode[detailBody](t, raw).Fields["price"])

	status, _ = do(t, app, "POST", "/api/menu", map[string]interface{}{"title": "Pie", "price": "cheap"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = do(t, app, "POST", "/api/menu", map[string]interface{}{"price": 2})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestMenu_GetByIDErrors(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, "GET", "/api/menu/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid id", decode[detailBody](t, raw).Detail)

	status, _ = do(t, app, "GET", "/api/menu/"+model.NewID(), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestOrders_PricingAndListing(t *testing.T) {
	app := newTestApp(t)
	soup := createMenuItem(t, app, "Soup", 10)

	status, raw := do(t, app, "POST", "/api/orders", map[string]interface{}{
		"staff_id": "not-checked",
		"items":    []map[string]interface{}{{"menu_item_id": soup, "quantity": 3}},
		"note":     "table 4",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	var receipt struct {
		ID       string  `json:"id"`
		Subtotal float64 `json:"subtotal"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(raw, &receipt))
	assert.Equal(t, 30.0, receipt.Subtotal)
	assert.Equal(t, 2.1, receipt.Tax)
	assert.Equal(t, 32.1, receipt.Total)

	status, raw = do(t, app, "GET", "/api/orders", nil)
	require.Equal(t, http.StatusOK, status)
	orders := decode[[]model.Order](t, raw)
	require.Len(t, orders, 1)
	assert.Equal(t, receipt.ID, orders[0].ID)
	assert.Equal(t, "open", orders[0].Status)
	assert.Equal(t, "not-checked", *orders[0].StaffID)
	assert.Equal(t, []model.OrderLine{{MenuItemID: soup, Quantity: 3, Price: 10, Title: "Soup"}}, orders[0].Items)

	status, _ = do(t, app, "GET", "/api/orders/"+receipt.ID, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestOrders_UnknownMenuItem(t *testing.T) {
	app := newTestApp(t)
	soup := createMenuItem(t, app, "Soup", 10)
	missing := model.NewID()

	status, raw := do(t, app, "POST", "/api/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": soup, "quantity": 1},
			{"menu_item_id": missing, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Menu item not found: "+missing, decode[detailBody](t, raw).Detail)

	_, raw = do(t, app, "GET", "/api/orders", nil)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestOrders_InvalidIDsAre400(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, "POST", "/api/orders", map[string]interface{}{
		"items": []map[string]interface{}{{"menu_item_id": "xyz", "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid id", decode[detailBody](t, raw).Detail)

	status, _ = do(t, app, "GET", "/api/orders/xyz", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestOrders_EmptyMenuItemIDIs400(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, "POST", "/api/orders", map[string]interface{}{
		"items": []map[string]interface{}{{"menu_item_id": "", "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid id", decode[detailBody](t, raw).Detail)
}

func TestOrders_NotFoundEchoesRequestedID(t *testing.T) {
	app := newTestApp(t)
	requested := strings.ToUpper(model.NewID())

	status, raw := do(t, app, "POST", "/api/orders", map[string]interface{}{
		"items": []map[string]interface{}{{"menu_item_id": requested, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Menu item not found: "+requested, decode[detailBody](t, raw).Detail)
}

func TestOrders_EmptyItemsIs422(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, "POST", "/api/orders", map[string]interface{}{"items": []interface{}{}})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestInventory_UpsertBySKU(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, "POST", "/api/inventory", map[string]interface{}{"sku": "OAT-MILK", "quantity": 6})
	require.Equal(t, http.StatusCreated, status, string(raw))
	first := decode[idBody](t, raw).ID

	status, raw = do(t, app, "POST", "/api/inventory", map[string]interface{}{
		"sku": "OAT-MILK", "quantity": 2.5, "unit": "L", "reorder_level": 4,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, first, decode[idBody](t, raw).ID)

	_, raw = do(t, app, "GET", "/api/inventory", nil)
	items := decode[[]model.InventoryItem](t, raw)
	require.Len(t, items, 1)
	assert.Equal(t, first, items[0].ID)
	assert.Equal(t, 2.5, items[0].Quantity)
	assert.Equal(t, "L", items[0].Unit)
	require.NotNil(t, items[0].ReorderLevel)
	assert.Equal(t, 4.0, *items[0].ReorderLevel)
}

func TestInventory_DefaultUnit(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, "POST", "/api/inventory", map[string]interface{}{"sku": "CUPS", "quantity": 100})
	require.Equal(t, http.StatusCreated, status)

	_, raw := do(t, app, "GET", "/api/inventory", nil)
	items := decode[[]model.InventoryItem](t, raw)
	require.Len(t, items, 1)
	assert.Equal(t, "unit", items[0].Unit)
	assert.Nil(t, items[0].ReorderLevel)
}

func TestStaff_Login(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, "POST", "/api/staff", map[string]interface{}{"name": "Ana", "role": "cashier", "pin": "2468"})
	require.Equal(t, http.StatusCreated, status, string(raw))
	id := decode[idBody](t, raw).ID

	status, raw = do(t, app, "POST", "/api/auth/login", map[string]interface{}{"pin": "2468"})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":"`+id+`","name":"Ana","role":"cashier"}`, string(raw))

	status, raw = do(t, app, "POST", "/api/auth/login", map[string]interface{}{"pin": "1357"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid PIN", decode[detailBody](t, raw).Detail)
}

func TestStaff_EmptyPINIs401(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, "POST", "/api/auth/login", map[string]interface{}{"pin": ""})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid PIN", decode[detailBody](t, raw).Detail)

	status, _ = do(t, app, "POST", "/api/auth/login", map[string]interface{}{})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestStaff_InactiveCannotLogin(t *testing.T) {
	db, err := database.ConnectSQL("sqlite://:memory:")
	require.NoError(t, err)
	require.NoError(t, sqlstore.AutoMigrate(context.Background(), db))
	store := sqlstore.New(db, "test")
	app := New(store, Options{})

	require.NoError(t, store.Staff.Create(context.Background(), &model.Staff{Name: "Old", Role: "chef", PIN: "1111", IsActive: false}))

	status, _ := do(t, app, "POST", "/api/auth/login", map[string]interface{}{"pin": "1111"})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestStaff_PINLengthIs422(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, "POST", "/api/staff", map[string]interface{}{"name": "Ana", "role": "cashier", "pin": "12"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "min", decode[detailBody](t, raw).Fields["pin"])
}

func TestDiagnostics_Reachable(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, "GET", "/test", nil)
	require.Equal(t, http.StatusOK, status)
	body := decode[map[string]interface{}](t, raw)
	assert.Equal(t, "✅ Connected & Working", body["database"])
	assert.Equal(t, "✅ Set", body["database_url"])
	assert.Equal(t, "test", body["database_name"])
	assert.Equal(t, "Connected", body["connection_status"])
	assert.ElementsMatch(t, []interface{}{"staff", "menuitem", "order", "inventory"}, body["collections"])
}

func TestDiagnostics_UnreachableStillOK(t *testing.T) {
	db, err := database.ConnectSQL("sqlite://:memory:")
	require.NoError(t, err)
	store := sqlstore.New(db, "test")
	require.NoError(t, store.Close(context.Background()))

	app := New(store, Options{})
	status, raw := do(t, app, "GET", "/test", nil)
	require.Equal(t, http.StatusOK, status)
	body := decode[map[string]interface{}](t, raw)
	assert.Contains(t, body["database"], "Connected but Error")
	assert.Equal(t, "❌ Not Set", body["database_url"])
}

func TestStoreErrorsAre500(t *testing.T) {
	db, err := database.ConnectSQL("sqlite://:memory:")
	require.NoError(t, err)
	// no migration: every query fails
	app := New(sqlstore.New(db, "test"), Options{})

	status, raw := do(t, app, "GET", "/api/menu", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", decode[detailBody](t, raw).Detail)
}

func TestRequestIDEchoed(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("OPTIONS", "/api/menu", nil)
	req.Header.Set("Origin", "https://kiosk.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

