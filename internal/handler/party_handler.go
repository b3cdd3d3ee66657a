package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /parties のAPI
type PartyHandler struct {
	uc *usecase.PartyUsecase
}

func NewPartyHandler(uc *usecase.PartyUsecase) *PartyHandler {
	return &PartyHandler{uc: uc}
}

func (h *PartyHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/parties", h.create)
	g.GET("/parties", h.list)
	g.GET("/parties/:id", h.detail)
}

func (h *PartyHandler) create(c echo.Context) error {
	var in usecase.CreatePartyInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Code: usecase.CodeInvalidInput})
	}

	out, err := h.uc.CreateParty(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *PartyHandler) list(c echo.Context) error {
	var profile *string
	if v := c.QueryParam("profile"); v != "" {
		profile = &v
	}

	out, err := h.uc.ListParties(c.Request().Context(), profile)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PartyHandler) detail(c echo.Context) error {
	out, err := h.uc.GetParty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
