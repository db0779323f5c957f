package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store holds the fixed product set. It is read-only after construction and
// safe to share across concurrent requests without coordination.
type Store struct {
	products []Product
	byID     map[int]Product
}

// NewStore builds a Store from the provided products, preserving load order.
func NewStore(products []Product) (*Store, error) {
	byID := make(map[int]Product, len(products))
	for _, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %q has invalid id %d", p.Name, p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d has negative price", p.ID)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		byID[p.ID] = p
	}
	return &Store{products: append([]Product(nil), products...), byID: byID}, nil
}

// NewStoreFromFile loads the product set from a JSON file holding an array of
// products in the wire shape.
func NewStoreFromFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	return NewStore(products)
}

// All returns every product in load order. The returned slice is a copy.
func (s *Store) All() []Product {
	return append([]Product(nil), s.products...)
}

// FindByID returns the product with the given id. Absence is signalled by the
// boolean, never by an error.
func (s *Store) FindByID(id int) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Len reports the number of products held by the store.
func (s *Store) Len() int { return len(s.products) }
