package services

import (
	"log"

	"github.com/go-playground/validator/v10"

	"xtreme/internal/domain"
	"xtreme/internal/repos"
)

// CatalogService serves the product catalog. Entries that fail validation
// (missing name or SKU, negative price, blank variants) are treated as absent
// so they never reach a cart.
type CatalogService struct {
	Prods    *repos.ProductRepo
	validate *validator.Validate
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods, validate: validator.New()}
}

func (s *CatalogService) List() ([]domain.Product, error) {
	all, err := s.Prods.List()
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, p := range all {
		if s.check(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Lookup implements view.Catalog.
func (s *CatalogService) Lookup(id string) (domain.Product, bool) {
	p, err := s.Prods.Get(id)
	if err != nil || !s.check(p) {
		return domain.Product{}, false
	}
	return p, true
}

func (s *CatalogService) check(p domain.Product) bool {
	if err := s.validate.Struct(p); err != nil {
		log.Printf("[catalog] skipping product %q: %v", p.ID, err)
		return false
	}
	return true
}
