package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/coffeeshop/internal/pkg/logger"
	"github.com/piresc/coffeeshop/internal/pkg/models"
	"github.com/piresc/coffeeshop/internal/utils"
	"github.com/piresc/coffeeshop/services/shop"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

// ShopHandler handles HTTP requests for shop operations
type ShopHandler struct {
	shopUC shop.ShopUC
}

// NewShopHandler creates a new shop HTTP handler
func NewShopHandler(shopUC shop.ShopUC) *ShopHandler {
	return &ShopHandler{
		shopUC: shopUC,
	}
}

// ListShops returns every shop keyed by id, plus nextID
func (h *ShopHandler) ListShops(c echo.Context) error {
	return utils.SuccessResponse(c, h.shopUC.ListShops())
}

// CreateShop adds a shop and returns its id
func (h *ShopHandler) CreateShop(c echo.Context) error {
	input, err := bindShopInput(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	id, err := h.shopUC.CreateShop(input)
	if err != nil {
		return h.writeError(c, err)
	}

	logger.Info("Shop created", logger.Int("shop_id", id))
	return utils.SuccessResponse(c, utils.CreatedResponse{Created: id})
}

// GetShop returns the shop named by the id query parameter
func (h *ShopHandler) GetShop(c echo.Context) error {
	item, err := h.shopUC.GetShop(c.QueryParam("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, item)
}

// UpdateShop overwrites the supplied fields of the shop named by id
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	rawID := c.QueryParam("id")

	input, err := bindShopInput(c)
	if err != nil {
		// an unknown id is reported before a bad body
		if _, idErr := h.shopUC.GetShop(rawID); idErr != nil {
			return h.writeError(c, idErr)
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.shopUC.UpdateShop(rawID, input); err != nil {
		return h.writeError(c, err)
	}
	return utils.StatusOKResponse(c, "updated")
}

// DeleteShop removes the shop named by id
func (h *ShopHandler) DeleteShop(c echo.Context) error {
	if err := h.shopUC.DeleteShop(c.QueryParam("id")); err != nil {
		return h.writeError(c, err)
	}
	return utils.StatusOKResponse(c, "deleted")
}

// FindNearestShop returns the shop closest to the address query parameter
func (h *ShopHandler) FindNearestShop(c echo.Context) error {
	item, err := h.shopUC.FindNearestShop(c.Request().Context(), c.QueryParam("address"))
	if err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c, item)
}

func (h *ShopHandler) writeError(c echo.Context, err error) error {
	var (
		validationErr *shop.ValidationError
		nearestErr    *shop.NearestError
	)

	switch {
	case errors.As(err, &validationErr):
		return utils.BadRequestResponse(c, validationErr.Error())
	case errors.Is(err, shop.ErrInvalidID):
		return utils.NotFoundResponse(c, shop.ErrInvalidID.Error())
	case errors.Is(err, shop.ErrNotImplemented):
		return utils.NotImplementedResponse(c, "")
	case errors.As(err, &nearestErr):
		logger.Error("Nearest shop lookup failed",
			logger.String("address", nearestErr.Address),
			logger.Err(nearestErr.Err))
		return utils.InternalServerErrorResponse(c, nearestErr.Error())
	default:
		logger.Error("Unhandled shop error",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}

// bindShopInput reads the optional request body. Form fields are carried as
// JSON strings so they pass through the same validation as JSON bodies.
func bindShopInput(c echo.Context) (models.ShopInput, error) {
	req := c.Request()
	ctype := req.Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(ctype, echo.MIMEApplicationForm) || strings.HasPrefix(ctype, echo.MIMEMultipartForm) {
		form, err := c.FormParams()
		if err != nil {
			return models.ShopInput{}, errInvalidBody
		}
		return models.ShopInput{
			Name:      formField(form, "name"),
			Address:   formField(form, "address"),
			Latitude:  formField(form, "latitude"),
			Longitude: formField(form, "longitude"),
		}, nil
	}

	if req.Body == nil {
		return models.ShopInput{}, nil
	}
	body, err := io.ReadAll(io.LimitReader(req.Body, maxBodyBytes))
	if err != nil {
		return models.ShopInput{}, errInvalidBody
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return models.ShopInput{}, nil
	}

	var input models.ShopInput
	if err := json.Unmarshal(body, &input); err != nil {
		return models.ShopInput{}, errInvalidBody
	}
	return input, nil
}

func formField(form map[string][]string, key string) json.RawMessage {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return nil
	}
	encoded, _ := json.Marshal(values[0])
	return encoded
}

// RouteErrorHandler renders echo errors as {"error": ...}. Unknown paths and
// known paths hit with the wrong method both answer 404 "invalid route".
func RouteErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.Error("Unhandled request error", logger.String("path", c.Request().URL.Path), logger.Err(err))
		}

		if code == http.StatusNotFound || code == http.StatusMethodNotAllowed {
			code = http.StatusNotFound
			message = "invalid route"
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = utils.ErrorResponseHandler(c, code, message)
		}
		if err != nil {
			logger.Error("Failed to write error response", logger.Err(err))
		}
	}
}
