package domain

// Product is a catalog entry. Sizes and Colors list the variants a shopper
// may pick; an empty list means the product has no such choice.
type Product struct {
	ID          string   `json:"id" validate:"required,max=64"`
	Name        string   `json:"name" validate:"required"`
	SKU         string   `json:"sku" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Image       string   `json:"image"`
	Sizes       []string `json:"sizes" validate:"dive,required"`
	Colors      []string `json:"colors" validate:"dive,required"`
}
