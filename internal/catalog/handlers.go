package catalog

import (
	"net/http"

	"github.com/noah-isme/cart-pricing-api/internal/common"
)

// Handler exposes the public catalog endpoint.
type Handler struct {
	Store *Store
}

// productPayload is the wire shape of a product with presentation rounding
// applied to the price.
type productPayload struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

// List handles GET /api/products.
func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	if h.Store == nil {
		common.Error(w, http.StatusInternalServerError, "catalog store not configured")
		return
	}
	products := h.Store.All()
	out := make([]productPayload, 0, len(products))
	for _, p := range products {
		out = append(out, productPayload{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       common.Round2(p.Price),
			ImageURL:    p.ImageURL,
		})
	}
	common.Success(w, http.StatusOK, out)
}
