package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/cart-pricing-api/internal/catalog"
)

type productsResponse struct {
	Success bool `json:"success"`
	Data    []struct {
		ID          int     `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		ImageURL    string  `json:"image_url"`
	} `json:"data"`
}

func TestListProducts(t *testing.T) {
	store, err := catalog.NewStore(catalog.SeedProducts())
	require.NoError(t, err)
	handler := &catalog.Handler{Store: store}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp productsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 5)
	require.Equal(t, 1, resp.Data[0].ID)
	require.Equal(t, `Laptop Pro 15"`, resp.Data[0].Name)
	require.Equal(t, 3499.99, resp.Data[0].Price)
	require.NotEmpty(t, resp.Data[0].ImageURL)
}

func TestListProductsUnconfigured(t *testing.T) {
	handler := &catalog.Handler{}
	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
