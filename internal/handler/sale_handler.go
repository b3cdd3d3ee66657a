package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /sales のAPI
type SaleHandler struct {
	uc *usecase.SaleUsecase
}

func NewSaleHandler(uc *usecase.SaleUsecase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

func (h *SaleHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/sales", h.create)
	g.GET("/sales", h.list)
	g.GET("/sales/:id", h.detail)
}

func (h *SaleHandler) create(c echo.Context) error {
	var in usecase.ProcessSaleInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Code: usecase.CodeInvalidInput})
	}

	out, err := h.uc.ProcessSale(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *SaleHandler) list(c echo.Context) error {
	var in usecase.ListSalesInput
	if v := c.QueryParam("customer_id"); v != "" {
		in.CustomerID = &v
	}
	if v := c.QueryParam("branch"); v != "" {
		in.Branch = &v
	}
	if v := c.QueryParam("from"); v != "" {
		in.From = &v
	}
	if v := c.QueryParam("to"); v != "" {
		in.To = &v
	}

	out, err := h.uc.ListSales(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SaleHandler) detail(c echo.Context) error {
	out, err := h.uc.GetSale(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
