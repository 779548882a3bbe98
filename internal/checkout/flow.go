package checkout

import (
	"context"
	"sync"

	"techstore-be/internal/logger"

	"go.uber.org/zap"
)

// CartClearer is satisfied by the cart store; placement empties the cart.
type CartClearer interface {
	Clear()
}

// Flow is the linear checkout wizard: delivery → payment → review. Forward
// transitions are guarded, backward ones are unconditional and keep the
// entered form data. A failed guard leaves the step unchanged and the
// caller may retry immediately.
type Flow struct {
	mu       sync.Mutex
	step     Step
	delivery DeliveryInfo
	payment  PaymentInfo
	cart     CartClearer
}

func NewFlow(cart CartClearer) *Flow {
	return &Flow{
		step:    StepDelivery,
		payment: PaymentInfo{Method: MethodCreditCard},
		cart:    cart,
	}
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *Flow) Delivery() DeliveryInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.delivery
}

func (f *Flow) Payment() PaymentInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payment
}

// deliveryComplete gates delivery → payment.
func deliveryComplete(d DeliveryInfo) bool {
	return d.FullName != "" && d.Email != "" && d.Street != ""
}

// paymentComplete gates payment → review. Pix and boleto need no extra
// fields to progress.
func paymentComplete(p PaymentInfo) bool {
	switch p.Method {
	case MethodCreditCard:
		return p.CardNumber != ""
	case MethodPix, MethodBoleto:
		return true
	}
	return false
}

// SubmitDelivery stores the form and advances to payment when the guard
// passes. The form is kept even on a failed guard so corrections build on
// what was already entered.
func (f *Flow) SubmitDelivery(d DeliveryInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepDelivery {
		return ErrWrongStep
	}

	f.delivery = d
	if !deliveryComplete(d) {
		return ErrMissingDeliveryFields
	}

	f.step = StepPayment
	return nil
}

// SubmitPayment stores the form and advances to review when the guard
// passes.
func (f *Flow) SubmitPayment(p PaymentInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepPayment {
		return ErrWrongStep
	}

	f.payment = p

	switch p.Method {
	case MethodCreditCard, MethodPix, MethodBoleto:
	default:
		return ErrUnknownPaymentMethod
	}

	if !paymentComplete(p) {
		return ErrMissingCardNumber
	}

	f.step = StepReview
	return nil
}

// Back steps the wizard one stage backward without touching form data.
// There is nowhere to go back to from delivery.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepPayment:
		f.step = StepDelivery
	case StepReview:
		f.step = StepPayment
	default:
		return ErrWrongStep
	}
	return nil
}

// Place finishes the wizard from the review step: it generates the order
// reference, clears the cart and resets the flow for the next purchase.
// Placement itself is unconditional.
func (f *Flow) Place(ctx context.Context) (Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepReview {
		return Order{}, ErrWrongStep
	}

	order := Order{ID: NewOrderID()}
	order.RedirectURL = ConfirmationURL(order.ID)

	f.cart.Clear()
	f.step = StepDelivery
	f.delivery = DeliveryInfo{}
	f.payment = PaymentInfo{Method: MethodCreditCard}

	logger.FromCtx(ctx).Info("order placed",
		zap.String("order_id", order.ID),
	)

	return order, nil
}
