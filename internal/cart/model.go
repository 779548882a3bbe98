package cart

// Line is one product-quantity pairing held in the cart. Price and image
// are captured at add time and never re-fetched from the catalog.
type Line struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Item is the product-shaped payload of an add-to-cart action.
type Item struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
