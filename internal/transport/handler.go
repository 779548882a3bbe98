package transport

import (
	"net/http"

	"techstore-be/internal/cart"
	"techstore-be/internal/catalog"
	"techstore-be/internal/checkout"

	"github.com/labstack/echo/v4"
)

// Handler carries the storefront's state containers. They are injected
// here and nowhere else; no package-level singletons.
type Handler struct {
	Catalog *catalog.Catalog
	Cart    *cart.Store
	Flow    *checkout.Flow
}

func NewHandler(cat *catalog.Catalog, store *cart.Store, flow *checkout.Flow) *Handler {
	return &Handler{Catalog: cat, Cart: store, Flow: flow}
}

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, response{Success: true, Data: data})
}

func fail(c echo.Context, code int, message string) error {
	return c.JSON(code, response{Success: false, Message: message})
}

// Health reports liveness plus whether the one-shot catalog load succeeded.
func (h *Handler) Health(c echo.Context) error {
	return ok(c, map[string]any{
		"status":        "ok",
		"catalogLoaded": h.Catalog.Loaded(),
	})
}
