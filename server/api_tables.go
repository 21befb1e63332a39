package kitchenposserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	tablemapper "kitchenpos/internal/domains/tables/adapters/http/mapper"
	tableports "kitchenpos/internal/domains/tables/ports"
)

// TableAPI wires HTTP transport with the tables bounded context service.
type TableAPI struct {
	service tableports.Service
}

// NewTableAPI creates a TableAPI backed by the provided service.
func NewTableAPI(service tableports.Service) TableAPI {
	return TableAPI{service: service}
}

// Post /api/tables
// Register a dining table
func (api *TableAPI) CreateTable(c *gin.Context) {
	var payload tablemapper.TableCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.service.Create(c.Request.Context(), payload.NumberOfGuests, payload.Empty)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tablemapper.FromOrderTable(created))
}

// Get /api/tables
// List dining tables
func (api *TableAPI) ListTables(c *gin.Context) {
	tables, err := api.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tablemapper.FromOrderTables(tables))
}

// Put /api/tables/:orderTableId/empty
// Change a table's occupancy flag
func (api *TableAPI) ChangeEmpty(c *gin.Context) {
	id, ok := parseIDParam(c, "orderTableId")
	if !ok {
		return
	}
	var payload tablemapper.ChangeEmptyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.ChangeEmpty(c.Request.Context(), id, payload.Empty)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tablemapper.FromOrderTable(updated))
}

// Put /api/tables/:orderTableId/number-of-guests
// Change a table's seated guest count
func (api *TableAPI) ChangeNumberOfGuests(c *gin.Context) {
	id, ok := parseIDParam(c, "orderTableId")
	if !ok {
		return
	}
	var payload tablemapper.ChangeNumberOfGuestsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.ChangeNumberOfGuests(c.Request.Context(), id, payload.NumberOfGuests)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tablemapper.FromOrderTable(updated))
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}
