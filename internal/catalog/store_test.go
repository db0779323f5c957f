package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSeedStoreLookup(t *testing.T) {
	store, err := NewStore(SeedProducts())
	if err != nil {
		t.Fatalf("build store: %v", err)
	}
	if store.Len() != 5 {
		t.Fatalf("expected 5 products, got %d", store.Len())
	}
	p, ok := store.FindByID(2)
	if !ok {
		t.Fatal("expected product 2 to exist")
	}
	if p.Name != "Wireless Mouse" || p.Price != 89.90 {
		t.Fatalf("unexpected product %+v", p)
	}
	if _, ok := store.FindByID(999); ok {
		t.Fatal("expected product 999 to be absent")
	}
}

func TestAllPreservesLoadOrderAndCopies(t *testing.T) {
	store, err := NewStore(SeedProducts())
	if err != nil {
		t.Fatalf("build store: %v", err)
	}
	all := store.All()
	for i, p := range all {
		if p.ID != i+1 {
			t.Fatalf("expected id %d at position %d, got %d", i+1, i, p.ID)
		}
	}
	all[0].Name = "mutated"
	if store.All()[0].Name == "mutated" {
		t.Fatal("All must return a copy")
	}
}

func TestNewStoreRejectsBadProducts(t *testing.T) {
	if _, err := NewStore([]Product{{ID: 0, Name: "x", Price: 1}}); err == nil {
		t.Fatal("expected error for non-positive id")
	}
	if _, err := NewStore([]Product{{ID: 1, Name: "x", Price: -1}}); err == nil {
		t.Fatal("expected error for negative price")
	}
	if _, err := NewStore([]Product{{ID: 1, Price: 1}, {ID: 1, Price: 2}}); err == nil {
		t.Fatal("expected error for duplicate id")
	}
}

func TestNewStoreFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `[{"id":7,"name":"Desk Lamp","description":"LED lamp","price":49.9,"image_url":"https://cdn.example/lamp.jpg"}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	store, err := NewStoreFromFile(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	p, ok := store.FindByID(7)
	if !ok || p.Name != "Desk Lamp" {
		t.Fatalf("unexpected product %+v (ok=%v)", p, ok)
	}

	if _, err := NewStoreFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
