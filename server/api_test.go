package kitchenposserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	menumapper "kitchenpos/internal/domains/menus/adapters/http/mapper"
	menumemory "kitchenpos/internal/domains/menus/adapters/memory"
	menuapp "kitchenpos/internal/domains/menus/application"
	tablemapper "kitchenpos/internal/domains/tables/adapters/http/mapper"
	tablememory "kitchenpos/internal/domains/tables/adapters/memory"
	tableapp "kitchenpos/internal/domains/tables/application"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	menuService := menuapp.NewService(
		menumemory.NewMenuRepository(),
		menumemory.NewMenuProductRepository(),
		menumemory.NewProductRepository(),
		menumemory.NewMenuGroupRepository(),
		menumemory.Transactor{},
	)
	tableService := tableapp.NewService(
		tablememory.NewOrderTableRepository(),
		tablememory.NewOrderRepository(),
		tablememory.Transactor{},
	)
	handlers := ApiHandleFunctions{
		MenuAPI:  NewMenuAPI(menuService),
		TableAPI: NewTableAPI(tableService),
	}
	return NewRouterWithGinEngine(gin.New(), handlers)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateMenuEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/menu-groups", menumapper.MenuGroupCreateRequest{Name: "recommended"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var group menumapper.MenuGroupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &group))

	price := decimal.RequireFromString("15000.00")
	rec = doJSON(t, router, http.MethodPost, "/api/products", menumapper.ProductCreateRequest{Name: "fried chicken", Price: &price})
	require.Equal(t, http.StatusCreated, rec.Code)
	var product menumapper.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))

	menuPrice := decimal.RequireFromString("30000.00")
	rec = doJSON(t, router, http.MethodPost, "/api/menus", menumapper.MenuCreateRequest{
		Name:        "double chicken",
		Price:       &menuPrice,
		MenuGroupID: group.ID,
		MenuProducts: []menumapper.ProductQuantityRequest{
			{ProductID: product.ID, Quantity: 2},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var menu menumapper.MenuResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &menu))
	assert.True(t, menu.Price.Equal(menuPrice))
	require.Len(t, menu.Products, 1)

	rec = doJSON(t, router, http.MethodGet, "/api/menus", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []menumapper.MenuResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}

func TestCreateMenuRejectsOverpricing(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/menu-groups", menumapper.MenuGroupCreateRequest{Name: "specials"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var group menumapper.MenuGroupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &group))

	price := decimal.RequireFromString("10000.00")
	rec = doJSON(t, router, http.MethodPost, "/api/products", menumapper.ProductCreateRequest{Name: "cola", Price: &price})
	require.Equal(t, http.StatusCreated, rec.Code)
	var product menumapper.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))

	menuPrice := decimal.RequireFromString("20000.01")
	rec = doJSON(t, router, http.MethodPost, "/api/menus", menumapper.MenuCreateRequest{
		Name:        "overpriced",
		Price:       &menuPrice,
		MenuGroupID: group.ID,
		MenuProducts: []menumapper.ProductQuantityRequest{
			{ProductID: product.ID, Quantity: 2},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")

	var problem struct {
		Type   string `json:"type"`
		Status int    `json:"status"`
		Reason string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "/problems/invalid-argument", problem.Type)
	assert.Equal(t, "price_out_of_range", problem.Reason)
}

func TestCreateMenuRejectsMissingPrice(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/menus", menumapper.MenuCreateRequest{
		Name:         "priceless",
		MenuGroupID:  1,
		MenuProducts: []menumapper.ProductQuantityRequest{{ProductID: 1, Quantity: 1}},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTableLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/tables", tablemapper.TableCreateRequest{NumberOfGuests: 0, Empty: true})
	require.Equal(t, http.StatusCreated, rec.Code)
	var table tablemapper.OrderTableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	require.NotZero(t, table.ID)

	rec = doJSON(t, router, http.MethodPut, "/api/tables/1/empty", tablemapper.ChangeEmptyRequest{Empty: false})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	assert.False(t, table.Empty)

	rec = doJSON(t, router, http.MethodPut, "/api/tables/1/number-of-guests", tablemapper.ChangeNumberOfGuestsRequest{NumberOfGuests: 4})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	assert.Equal(t, 4, table.NumberOfGuests)

	rec = doJSON(t, router, http.MethodGet, "/api/tables", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []tablemapper.OrderTableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}

func TestChangeGuestsOnEmptyTableReturnsReason(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/tables", tablemapper.TableCreateRequest{NumberOfGuests: 0, Empty: true})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/tables/1/number-of-guests", tablemapper.ChangeNumberOfGuestsRequest{NumberOfGuests: 2})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var problem struct {
		Reason string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "table_empty", problem.Reason)
}

func TestUnknownTableIDIsRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/tables/42/empty", tablemapper.ChangeEmptyRequest{Empty: false})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var problem struct {
		Reason string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "unknown_table", problem.Reason)
}

func TestMalformedTableIDIsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/tables/abc/empty", tablemapper.ChangeEmptyRequest{Empty: false})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
