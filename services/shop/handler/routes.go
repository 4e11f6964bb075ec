package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/coffeeshop/services/shop"
	httpHandler "github.com/piresc/coffeeshop/services/shop/handler/http"
)

// HTTPHandler combines all handlers for the shop service
type HTTPHandler struct {
	shopHTTP *httpHandler.ShopHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(shopUC shop.ShopUC) *HTTPHandler {
	return &HTTPHandler{
		shopHTTP: httpHandler.NewShopHandler(shopUC),
	}
}

// RegisterRoutes registers all HTTP routes and the error handler that turns
// unmatched requests into 404 "invalid route"
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = httpHandler.RouteErrorHandler()

	e.GET("/all", h.shopHTTP.ListShops)
	e.POST("/create", h.shopHTTP.CreateShop)
	e.GET("/read", h.shopHTTP.GetShop)
	e.Match([]string{http.MethodPut, http.MethodPost}, "/update", h.shopHTTP.UpdateShop)
	e.DELETE("/delete", h.shopHTTP.DeleteShop)
	e.GET("/nearest", h.shopHTTP.FindNearestShop)
}
