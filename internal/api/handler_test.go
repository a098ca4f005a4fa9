package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/faizramdhannn/Bazzar-2026/config"
	"github.com/faizramdhannn/Bazzar-2026/internal/service"
	"github.com/faizramdhannn/Bazzar-2026/internal/sheets"
	"github.com/faizramdhannn/Bazzar-2026/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValues struct {
	master   [][]string
	orderIDs [][]string
	appends  [][][]interface{}
	updates  [][]sheets.CellUpdate
}

func (f *fakeValues) Get(_ context.Context, _, readRange string) ([][]string, error) {
	if strings.Contains(readRange, "!A2:E") {
		return f.master, nil
	}
	if strings.Contains(readRange, "!A:A") {
		return f.orderIDs, nil
	}
	return nil, nil
}

func (f *fakeValues) Append(_ context.Context, _, _ string, rows [][]interface{}) error {
	f.appends = append(f.appends, rows)
	return nil
}

func (f *fakeValues) BatchUpdate(_ context.Context, _ string, updates []sheets.CellUpdate) error {
	f.updates = append(f.updates, updates)
	return nil
}

func newTestRouter(fake *fakeValues) *gin.Engine {
	gin.SetMode(gin.TestMode)

	st := store.NewStore(fake, config.SheetsConfig{
		SpreadsheetID: "sheet-id",
		MasterSheet:   "master_bazzar",
		OrderSheet:    "order_list",
		OrderIDPrefix: "BAZ",
	})
	orders := service.NewOrderService(st, service.NewStockValidator(st), nil, "BAZ")

	router := gin.New()
	NewHandler(st, orders).SetupRoutes(router)
	return router
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetMasterListsItems(t *testing.T) {
	router := newTestRouter(&fakeValues{master: [][]string{
		{"1", "X1", "Coffee", "15000", "10"},
		{"2", "X2", "Tea", "8000", "5"},
	}})

	w := doRequest(router, http.MethodGet, "/master", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Len(t, resp["items"], 2)
}

func TestGetMasterBySKU(t *testing.T) {
	router := newTestRouter(&fakeValues{master: [][]string{
		{"1", "X1", "Coffee", "15000", "10"},
	}})

	w := doRequest(router, http.MethodGet, "/master?sku=x1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	item := resp["item"].(map[string]interface{})
	assert.Equal(t, "X1", item["item_sku"])
	assert.Equal(t, 10.0, item["item_quantity"])
}

func TestGetMasterUnknownSKU(t *testing.T) {
	router := newTestRouter(&fakeValues{})

	w := doRequest(router, http.MethodGet, "/master?sku=ZZ", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode(t, w)
	assert.Equal(t, false, resp["success"])
}

func TestGetOrderID(t *testing.T) {
	router := newTestRouter(&fakeValues{orderIDs: [][]string{
		{"orderId"},
		{"BAZ-0041"},
	}})

	w := doRequest(router, http.MethodGet, "/order", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "BAZ-0042", resp["orderId"])
}

func TestSubmitOrderInvalidBody(t *testing.T) {
	router := newTestRouter(&fakeValues{})

	w := doRequest(router, http.MethodPost, "/order", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitOrderValidationFailure(t *testing.T) {
	fake := &fakeValues{}
	router := newTestRouter(fake)

	w := doRequest(router, http.MethodPost, "/order", `{"orderId":"","customerName":"","items":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["message"], "order ID is empty")
	assert.Empty(t, fake.appends)
}

func TestSubmitOrderInsufficientStock(t *testing.T) {
	fake := &fakeValues{master: [][]string{
		{"1", "X1", "Coffee", "1000", "1"},
	}}
	router := newTestRouter(fake)

	body := `{"orderId":"BAZ-0001","customerName":"Sari","items":[{"sku":"X1","name":"Coffee","price":1000,"quantity":3}],"subTotal":3000,"discount":0,"total":3000}`
	w := doRequest(router, http.MethodPost, "/order", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Contains(t, resp["message"], "insufficient stock for Coffee (remaining: 1)")
	assert.Empty(t, fake.appends)
}

func TestSubmitOrderCommits(t *testing.T) {
	fake := &fakeValues{master: [][]string{
		{"1", "X1", "Coffee", "1000", "10"},
	}}
	router := newTestRouter(fake)

	body := `{"orderId":"BAZ-0001","customerName":"Sari","items":[{"sku":"X1","name":"Coffee","price":1000,"quantity":2}],"subTotal":2000,"discount":500,"total":1500,"status":"paid"}`
	w := doRequest(router, http.MethodPost, "/order", body)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, true, resp["success"])

	require.Len(t, fake.appends, 1)
	require.Len(t, fake.updates, 1)
	assert.Equal(t, 8, fake.updates[0][0].Value)
}
