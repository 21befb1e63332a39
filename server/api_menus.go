package kitchenposserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	menumapper "kitchenpos/internal/domains/menus/adapters/http/mapper"
	menuports "kitchenpos/internal/domains/menus/ports"
)

// MenuAPI wires HTTP transport with the menus bounded context service.
type MenuAPI struct {
	service menuports.Service
}

// NewMenuAPI creates a MenuAPI backed by the provided service.
func NewMenuAPI(service menuports.Service) MenuAPI {
	return MenuAPI{service: service}
}

// Post /api/menus
// Compose a new priced menu
func (api *MenuAPI) CreateMenu(c *gin.Context) {
	var payload menumapper.MenuCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.service.CreateMenu(c.Request.Context(), menumapper.ToCreateMenuInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, menumapper.FromMenuView(created))
}

// Get /api/menus
// List menus with their product lines
func (api *MenuAPI) ListMenus(c *gin.Context) {
	views, err := api.service.ListMenus(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menumapper.FromMenuViews(views))
}

// Post /api/products
// Register a catalog product
func (api *MenuAPI) CreateProduct(c *gin.Context) {
	var payload menumapper.ProductCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.service.CreateProduct(c.Request.Context(), menumapper.ToCreateProductInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, menumapper.FromProduct(created))
}

// Get /api/products
// List the product catalog
func (api *MenuAPI) ListProducts(c *gin.Context) {
	products, err := api.service.ListProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menumapper.FromProducts(products))
}

// Post /api/menu-groups
// Register a menu group
func (api *MenuAPI) CreateMenuGroup(c *gin.Context) {
	var payload menumapper.MenuGroupCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.service.CreateMenuGroup(c.Request.Context(), menumapper.ToCreateMenuGroupInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, menumapper.FromMenuGroup(created))
}

// Get /api/menu-groups
// List menu groups
func (api *MenuAPI) ListMenuGroups(c *gin.Context) {
	groups, err := api.service.ListMenuGroups(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menumapper.FromMenuGroups(groups))
}
