package catalog

// Product is an immutable catalog entry. Price is a unit-currency amount with
// two-decimal semantics; rounding is applied at serialization, not here.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

// SeedProducts returns the fixed product set the service ships with. Used when
// no catalog file is configured.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        `Laptop Pro 15"`,
			Description: "High-performance laptop with 16GB RAM and 512GB SSD",
			Price:       3499.99,
			ImageURL:    "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=300",
		},
		{
			ID:          2,
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse with precision tracking",
			Price:       89.90,
			ImageURL:    "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=300",
		},
		{
			ID:          3,
			Name:        "Mechanical Keyboard",
			Description: "RGB mechanical keyboard with blue switches",
			Price:       299.99,
			ImageURL:    "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=300",
		},
		{
			ID:          4,
			Name:        "HD Webcam",
			Description: "1080p webcam with built-in microphone",
			Price:       249.00,
			ImageURL:    "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=300",
		},
		{
			ID:          5,
			Name:        "USB-C Hub",
			Description: "7-in-1 USB-C hub with HDMI and card reader",
			Price:       159.90,
			ImageURL:    "https://images.unsplash.com/photo-1625948515291-69613efd103f?w=300",
		},
	}
}
