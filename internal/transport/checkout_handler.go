package transport

import (
	"errors"
	"net/http"

	"techstore-be/internal/checkout"
	"techstore-be/internal/pricing"

	"github.com/labstack/echo/v4"
)

// checkoutView exposes the wizard position and the entered forms, plus the
// quote the review step displays.
type checkoutView struct {
	Step     checkout.Step         `json:"step"`
	Delivery checkout.DeliveryInfo `json:"delivery"`
	Payment  checkout.PaymentInfo  `json:"payment"`
	Quote    pricing.Quote         `json:"quote"`
}

func (h *Handler) viewCheckout() checkoutView {
	return checkoutView{
		Step:     h.Flow.Step(),
		Delivery: h.Flow.Delivery(),
		Payment:  h.Flow.Payment(),
		Quote:    pricing.Derive(h.Cart.Total(), 0),
	}
}

// GetCheckout returns the wizard state.
func (h *Handler) GetCheckout(c echo.Context) error {
	return ok(c, h.viewCheckout())
}

// SubmitDelivery stores the delivery form and advances when valid.
func (h *Handler) SubmitDelivery(c echo.Context) error {
	var form checkout.DeliveryInfo
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	if err := h.Flow.SubmitDelivery(form); err != nil {
		return failTransition(c, err)
	}
	return ok(c, h.viewCheckout())
}

// SubmitPayment stores the payment form and advances when valid.
func (h *Handler) SubmitPayment(c echo.Context) error {
	var form checkout.PaymentInfo
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	if err := h.Flow.SubmitPayment(form); err != nil {
		return failTransition(c, err)
	}
	return ok(c, h.viewCheckout())
}

// CheckoutBack steps the wizard backward.
func (h *Handler) CheckoutBack(c echo.Context) error {
	if err := h.Flow.Back(); err != nil {
		return failTransition(c, err)
	}
	return ok(c, h.viewCheckout())
}

// PlaceOrder finishes the wizard, returning the order reference and the
// confirmation URL to navigate to.
func (h *Handler) PlaceOrder(c echo.Context) error {
	order, err := h.Flow.Place(c.Request().Context())
	if err != nil {
		return failTransition(c, err)
	}
	return ok(c, order)
}

// Confirmation parses the order reference back out of the request URL.
func (h *Handler) Confirmation(c echo.Context) error {
	return ok(c, map[string]string{
		"orderId": checkout.ParseOrderID(c.Request().RequestURI),
	})
}

// failTransition maps wizard errors: step-discipline violations conflict,
// failed guards are the user's input to fix.
func failTransition(c echo.Context, err error) error {
	if errors.Is(err, checkout.ErrWrongStep) {
		return fail(c, http.StatusConflict, err.Error())
	}
	return fail(c, http.StatusUnprocessableEntity, err.Error())
}
