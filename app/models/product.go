package models

// Product represents a storefront product as served by the upstream API.
// Products are never persisted locally; each snapshot is replaced wholesale
// on load.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Review   string  `json:"review,omitempty"`
	Status   string  `json:"status"`
}

// ProductInput is the product-add form payload. Status is applied as a
// default by the form handler, not entered by the admin. Price carries no
// required rule: zero is a valid price (free product), so presence is
// checked against the raw form value by the handler.
type ProductInput struct {
	Name     string  `json:"name"     validate:"required,min=2,max=120"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price"    validate:"numeric,gte=0"`
	Status   string  `json:"status"`

	// Image upload: filename and raw bytes from the multipart part.
	ImageName string `json:"-"`
	ImageData []byte `json:"-"`
}
