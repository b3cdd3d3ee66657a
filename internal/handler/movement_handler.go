package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /inventory のAPI（移動登録・在庫照会・履歴）
type MovementHandler struct {
	uc *usecase.MovementUsecase
}

func NewMovementHandler(uc *usecase.MovementUsecase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

func (h *MovementHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/inventory/movements", h.register)
	g.GET("/inventory/movements/:id", h.history)
	g.GET("/inventory/availability/:id", h.availability)
}

func (h *MovementHandler) register(c echo.Context) error {
	var in usecase.RegisterMovementInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Code: usecase.CodeInvalidInput})
	}

	out, err := h.uc.RegisterMovement(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *MovementHandler) availability(c echo.Context) error {
	out, err := h.uc.GetAvailability(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MovementHandler) history(c echo.Context) error {
	out, err := h.uc.ListMovements(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
