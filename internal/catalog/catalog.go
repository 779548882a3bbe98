package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"techstore-be/internal/logger"

	"go.uber.org/zap"
)

// Catalog holds the product collection loaded once from the static source.
// A failed load leaves it empty; consumers keep working against an empty
// collection rather than erroring out.
type Catalog struct {
	mu       sync.RWMutex
	products []Product
	loaded   bool
}

func New() *Catalog {
	return &Catalog{}
}

// Load reads the product collection from source, either an http(s) URL or
// a local file path. It is a one-shot fetch: no retries, no refresh.
func (c *Catalog) Load(ctx context.Context, source string) error {
	data, err := readSource(ctx, source)
	if err != nil {
		return fmt.Errorf("read catalog source: %w", err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}

	c.mu.Lock()
	c.products = products
	c.loaded = true
	c.mu.Unlock()

	logger.L().Info("catalog loaded",
		zap.String("source", source),
		zap.Int("products", len(products)),
	)

	return nil
}

func readSource(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return io.ReadAll(resp.Body)
	}

	return os.ReadFile(source)
}

// Products returns a copy of the full collection in catalog order.
func (c *Catalog) Products() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id.
func (c *Catalog) Get(id int) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Loaded reports whether the one-shot load has succeeded.
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}
