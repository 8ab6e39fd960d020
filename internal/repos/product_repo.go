package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"xtreme/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

type productRow struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	SKU         string  `db:"sku"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Image       string  `db:"image"`
	Sizes       string  `db:"sizes"`
	Colors      string  `db:"colors"`
}

func (r productRow) product() domain.Product {
	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		SKU:         r.SKU,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Sizes:       splitList(r.Sizes),
		Colors:      splitList(r.Colors),
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

const productCols = `id, name, sku, description, price, image, sizes, colors`

func (r *ProductRepo) List() ([]domain.Product, error) {
	var rows []productRow
	if err := r.db.Select(&rows, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE active = 1
	  ORDER BY position, id
	`); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.product())
	}
	return out, nil
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var row productRow
	err := r.db.Get(&row, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE id = ? AND active = 1
	`, id)
	if err != nil {
		return domain.Product{}, err
	}
	return row.product(), nil
}
