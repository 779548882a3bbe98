package pricing

import "errors"

// Shipping is free above the threshold, a flat fee otherwise. The threshold
// is strict: a subtotal of exactly 100 still pays shipping.
const (
	FreeShippingThreshold = 100.0
	FlatShippingFee       = 15.0
)

var ErrInvalidCoupon = errors.New("invalid coupon code")

// coupons is the closed code→discount-rate table. There is no promotions
// backend; these two codes are the whole feature.
var coupons = map[string]float64{
	"TECH20": 0.20,
	"TECH10": 0.10,
}

// Quote is the derived pricing for a cart subtotal.
type Quote struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountRate   float64 `json:"discountRate"`
	DiscountAmount float64 `json:"discountAmount"`
	Shipping       float64 `json:"shipping"`
	Total          float64 `json:"total"`
}

// ResolveCoupon maps a code to its discount rate. Unknown codes resolve to
// a zero rate alongside ErrInvalidCoupon.
func ResolveCoupon(code string) (float64, error) {
	if rate, ok := coupons[code]; ok {
		return rate, nil
	}
	return 0, ErrInvalidCoupon
}

// Derive computes the quote from a subtotal and a discount rate in [0,1].
func Derive(subtotal, rate float64) Quote {
	discount := subtotal * rate

	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	return Quote{
		Subtotal:       subtotal,
		DiscountRate:   rate,
		DiscountAmount: discount,
		Shipping:       shipping,
		Total:          subtotal - discount + shipping,
	}
}
