package checkout

// Step is the wizard position. Placement is terminal and external: it hands
// off to the confirmation view instead of becoming a fourth resting step.
type Step string

const (
	StepDelivery Step = "delivery"
	StepPayment  Step = "payment"
	StepReview   Step = "review"
)

// Supported payment methods, a closed set.
const (
	MethodCreditCard = "credit-card"
	MethodPix        = "pix"
	MethodBoleto     = "boleto"
)

// DeliveryInfo mirrors the delivery form. All fields are free text; only
// FullName, Email and Street gate progression.
type DeliveryInfo struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	CEP        string `json:"cep"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	State      string `json:"state"`
}

// PaymentInfo mirrors the payment form. Method-specific fields are only
// meaningful for their method and are otherwise carried as-is.
type PaymentInfo struct {
	Method     string `json:"method"`
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCVC    string `json:"cardCVC"`
	PixKey     string `json:"pixKey"`
	BoletoData string `json:"boletoData"`
}

// Order is the placement hand-off: an opaque display-only reference and the
// confirmation destination carrying it.
type Order struct {
	ID          string `json:"orderId"`
	RedirectURL string `json:"redirectUrl"`
}
