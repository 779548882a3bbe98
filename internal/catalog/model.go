package catalog

// Product is a read-only catalog record. The JSON tags match the shape of
// the static products resource; nothing in this service ever mutates one.
type Product struct {
	ID            int               `json:"id"`
	Name          string            `json:"name"`
	Category      string            `json:"category"`
	Brand         string            `json:"brand"`
	Price         float64           `json:"price"`
	OriginalPrice float64           `json:"originalPrice"`
	Discount      int               `json:"discount"`
	Rating        float64           `json:"rating"`
	Reviews       int               `json:"reviews"`
	Images        []string          `json:"images"`
	Description   string            `json:"description"`
	Specs         map[string]string `json:"specs"`
	Stock         int               `json:"stock"`
	Features      []string          `json:"features"`
}
