package checkout

import "errors"

var (
	// -- Transition guards --
	ErrMissingDeliveryFields = errors.New("full name, email and street are required")
	ErrMissingCardNumber     = errors.New("card number is required for credit card payments")
	ErrUnknownPaymentMethod  = errors.New("unknown payment method")

	// -- Step discipline --
	ErrWrongStep = errors.New("action not allowed at the current checkout step")
)
