package checkout

import (
	"math/rand/v2"
	"net/url"
)

const (
	confirmationPath = "/confirmacao"

	// orderIDFallback is shown when the confirmation view receives no
	// usable reference.
	orderIDFallback = "TEC123456"

	orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	orderIDLength   = 6
)

// NewOrderID returns a short uppercase base36 token. It is display-only:
// not collision-checked and not cryptographically meaningful.
func NewOrderID() string {
	b := make([]byte, orderIDLength)
	for i := range b {
		b[i] = orderIDAlphabet[rand.IntN(len(orderIDAlphabet))]
	}
	return string(b)
}

// ConfirmationURL builds the confirmation destination carrying the order
// reference as a query parameter.
func ConfirmationURL(orderID string) string {
	return confirmationPath + "?orderId=" + url.QueryEscape(orderID)
}

// ParseOrderID extracts the order reference back out of a confirmation URL,
// falling back to a fixed placeholder when absent or malformed.
func ParseOrderID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return orderIDFallback
	}
	if id := u.Query().Get("orderId"); id != "" {
		return id
	}
	return orderIDFallback
}
