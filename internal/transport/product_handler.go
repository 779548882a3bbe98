package transport

import (
	"net/http"
	"strconv"
	"strings"

	"techstore-be/internal/catalog"

	"github.com/labstack/echo/v4"
)

// ListProducts returns the catalog filtered and sorted by query parameters:
// min_price, max_price, categories, brands (comma separated), min_rating
// and sort. Everything is optional; defaults accept the whole catalog in
// catalog order.
func (h *Handler) ListProducts(c echo.Context) error {
	crit := catalog.Criteria{}

	var err error
	if crit.MinPrice, err = floatParam(c, "min_price"); err != nil {
		return fail(c, http.StatusBadRequest, "min_price must be a number")
	}
	if crit.MaxPrice, err = floatParam(c, "max_price"); err != nil {
		return fail(c, http.StatusBadRequest, "max_price must be a number")
	}
	if crit.MinRating, err = floatParam(c, "min_rating"); err != nil {
		return fail(c, http.StatusBadRequest, "min_rating must be a number")
	}
	crit.Categories = listParam(c, "categories")
	crit.Brands = listParam(c, "brands")

	sortBy := catalog.Sort(c.QueryParam("sort"))
	if sortBy == "" {
		sortBy = catalog.SortCatalog
	}

	products := catalog.Apply(h.Catalog.Products(), crit, sortBy)
	return ok(c, products)
}

// GetProduct returns one product by id.
func (h *Handler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "product id must be an integer")
	}

	p, found := h.Catalog.Get(id)
	if !found {
		return fail(c, http.StatusNotFound, "product not found")
	}
	return ok(c, p)
}

// ProductFacets returns the distinct categories and brands the filter UI
// offers, plus the default price slider bounds.
func (h *Handler) ProductFacets(c echo.Context) error {
	products := h.Catalog.Products()
	return ok(c, map[string]any{
		"categories": catalog.Categories(products),
		"brands":     catalog.Brands(products),
		"priceRange": []float64{catalog.DefaultMinPrice, catalog.DefaultMaxPrice},
	})
}

func floatParam(c echo.Context, name string) (float64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

func listParam(c echo.Context, name string) []string {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
