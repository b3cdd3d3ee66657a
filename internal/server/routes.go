package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health   *handler.HealthHandler
	Party    *handler.PartyHandler
	Product  *handler.ProductHandler
	Movement *handler.MovementHandler
	Sale     *handler.SaleHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	v1 := e.Group("/v1")

	h.Health.RegisterRoutes(v1)
	h.Party.RegisterRoutes(v1)
	h.Product.RegisterRoutes(v1)
	h.Movement.RegisterRoutes(v1)
	h.Sale.RegisterRoutes(v1)
}
