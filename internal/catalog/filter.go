package catalog

import (
	"slices"
	"sort"
)

// Sort orders for the product listing. SortCatalog keeps the collection in
// its original order, which the storefront presents as "newest".
type Sort string

const (
	SortCatalog   Sort = "newest"
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
	SortPopular   Sort = "popular"
	SortRating    Sort = "rating"
)

// Default price slider bounds presented by the filter UI.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 10000
)

// Criteria is a conjunction of four independently optional predicates.
// An empty category or brand set accepts everything, MaxPrice <= 0 means
// no upper bound and MinRating 0 accepts all ratings.
type Criteria struct {
	MinPrice   float64
	MaxPrice   float64
	Categories []string
	Brands     []string
	MinRating  float64
}

func (c Criteria) matches(p Product) bool {
	if p.Price < c.MinPrice {
		return false
	}
	if c.MaxPrice > 0 && p.Price > c.MaxPrice {
		return false
	}
	if len(c.Categories) > 0 && !slices.Contains(c.Categories, p.Category) {
		return false
	}
	if len(c.Brands) > 0 && !slices.Contains(c.Brands, p.Brand) {
		return false
	}
	return p.Rating >= c.MinRating
}

// Apply recomputes the filtered, sorted listing from scratch. The input is
// never modified; sorting is stable so equal keys keep their catalog order.
func Apply(products []Product, c Criteria, s Sort) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if c.matches(p) {
			out = append(out, p)
		}
	}

	switch s {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Reviews > out[j].Reviews })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}

	return out
}

// Categories lists distinct product categories in first-seen order.
func Categories(products []Product) []string {
	return distinct(products, func(p Product) string { return p.Category })
}

// Brands lists distinct product brands in first-seen order.
func Brands(products []Product) []string {
	return distinct(products, func(p Product) string { return p.Brand })
}

func distinct(products []Product, key func(Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		k := key(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
