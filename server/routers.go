// Package kitchenposserver exposes the menu catalog and dining table
// services over HTTP.
package kitchenposserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and path pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is a collection of Route.
type Routes []Route

// ApiHandleFunctions holds the API controllers mounted by the router.
type ApiHandleFunctions struct {
	MenuAPI  MenuAPI
	TableAPI TableAPI
}

// NewRouter returns a new gin engine with all routes registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers all routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandler
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func defaultHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": "not implemented"})
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		{
			Name:        "CreateMenu",
			Method:      http.MethodPost,
			Pattern:     "/api/menus",
			HandlerFunc: handleFunctions.MenuAPI.CreateMenu,
		},
		{
			Name:        "ListMenus",
			Method:      http.MethodGet,
			Pattern:     "/api/menus",
			HandlerFunc: handleFunctions.MenuAPI.ListMenus,
		},
		{
			Name:        "CreateProduct",
			Method:      http.MethodPost,
			Pattern:     "/api/products",
			HandlerFunc: handleFunctions.MenuAPI.CreateProduct,
		},
		{
			Name:        "ListProducts",
			Method:      http.MethodGet,
			Pattern:     "/api/products",
			HandlerFunc: handleFunctions.MenuAPI.ListProducts,
		},
		{
			Name:        "CreateMenuGroup",
			Method:      http.MethodPost,
			Pattern:     "/api/menu-groups",
			HandlerFunc: handleFunctions.MenuAPI.CreateMenuGroup,
		},
		{
			Name:        "ListMenuGroups",
			Method:      http.MethodGet,
			Pattern:     "/api/menu-groups",
			HandlerFunc: handleFunctions.MenuAPI.ListMenuGroups,
		},
		{
			Name:        "CreateTable",
			Method:      http.MethodPost,
			Pattern:     "/api/tables",
			HandlerFunc: handleFunctions.TableAPI.CreateTable,
		},
		{
			Name:        "ListTables",
			Method:      http.MethodGet,
			Pattern:     "/api/tables",
			HandlerFunc: handleFunctions.TableAPI.ListTables,
		},
		{
			Name:        "ChangeTableEmpty",
			Method:      http.MethodPut,
			Pattern:     "/api/tables/:orderTableId/empty",
			HandlerFunc: handleFunctions.TableAPI.ChangeEmpty,
		},
		{
			Name:        "ChangeTableNumberOfGuests",
			Method:      http.MethodPut,
			Pattern:     "/api/tables/:orderTableId/number-of-guests",
			HandlerFunc: handleFunctions.TableAPI.ChangeNumberOfGuests,
		},
	}
}
