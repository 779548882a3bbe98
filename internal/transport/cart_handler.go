package transport

import (
	"net/http"
	"strconv"

	"techstore-be/internal/cart"
	"techstore-be/internal/pricing"

	"github.com/labstack/echo/v4"
)

type addItemRequest struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type couponRequest struct {
	Code string `json:"code"`
}

// cartView is what every cart endpoint answers with: the lines, the item
// count and the derived quote.
type cartView struct {
	Lines []cart.Line   `json:"lines"`
	Count int           `json:"count"`
	Quote pricing.Quote `json:"quote"`
}

func (h *Handler) viewCart(rate float64) cartView {
	return cartView{
		Lines: h.Cart.Lines(),
		Count: h.Cart.Count(),
		Quote: pricing.Derive(h.Cart.Total(), rate),
	}
}

// GetCart returns the current cart. An optional coupon query parameter is
// applied to the quote when recognized and ignored otherwise; validation
// lives on the coupon endpoint.
func (h *Handler) GetCart(c echo.Context) error {
	rate, _ := pricing.ResolveCoupon(c.QueryParam("coupon"))
	return ok(c, h.viewCart(rate))
}

// AddCartItem resolves the product from the catalog and adds it to the
// cart, capturing name, price and first image at add time.
func (h *Handler) AddCartItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	p, found := h.Catalog.Get(req.ID)
	if !found {
		return fail(c, http.StatusNotFound, "product not found")
	}

	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	h.Cart.Add(cart.Item{ID: p.ID, Name: p.Name, Price: p.Price, Image: image}, quantity)
	return ok(c, h.viewCart(0))
}

// UpdateCartItem sets a line's quantity; zero or less removes the line.
func (h *Handler) UpdateCartItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "product id must be an integer")
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	h.Cart.UpdateQuantity(id, req.Quantity)
	return ok(c, h.viewCart(0))
}

// RemoveCartItem deletes a line.
func (h *Handler) RemoveCartItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "product id must be an integer")
	}

	h.Cart.Remove(id)
	return ok(c, h.viewCart(0))
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c echo.Context) error {
	h.Cart.Clear()
	return ok(c, h.viewCart(0))
}

// ApplyCoupon validates a coupon code and returns the quote it would
// produce. Unknown codes are rejected and leave the cart untouched.
func (h *Handler) ApplyCoupon(c echo.Context) error {
	var req couponRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	rate, err := pricing.ResolveCoupon(req.Code)
	if err != nil {
		return fail(c, http.StatusUnprocessableEntity, err.Error())
	}
	return ok(c, h.viewCart(rate))
}
