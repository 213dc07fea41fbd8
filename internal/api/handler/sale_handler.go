package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/loopcrm/crm-backend/internal/core/ports"
)

// SaleHandler handles HTTP requests for sale operations. There is no delete
// route. Update threads the caller's identity to the service so the
// sales-role projection can apply.
type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// List returns all sales with customer and assigned rep populated.
//
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   saleResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/sales [get]
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]saleResponse, len(sales))
	for i, d := range sales {
		out[i] = toSaleResponse(d)
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns a single sale by id.
//
// @Summary      Get a sale
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sale id"
// @Success      200  {object}  saleResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSaleResponse(detail))
}

// Create inserts a new sale (admin only).
//
// @Summary      Create a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSaleRequest  true  "Sale details"
// @Success      201   {object}  domain.Sale
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c echo.Context) error {
	var req createSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update applies a partial update to a sale. For a sales-role caller the
// payload is narrowed to status before it reaches the store.
//
// @Summary      Update a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Sale id"
// @Param        body  body      updateSaleRequest  true  "Fields to update"
// @Success      200   {object}  saleResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/sales/{id} [put]
func (h *SaleHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), identity, c.Param("id"), req.toFields())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSaleResponse(updated))
}
