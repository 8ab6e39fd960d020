package handlers

import (
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"

	"xtreme/internal/config"
	"xtreme/internal/metrics"
	"xtreme/internal/repos"
	"xtreme/internal/services"
	"xtreme/internal/view"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	APIHandler      *APIHandler

	// Registry backs GET /metrics.
	Registry *prometheus.Registry
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	catalogSvc := services.NewCatalogService(prodRepo)

	reg := prometheus.NewRegistry()
	shop := &Shop{
		Cfg:     cfg,
		Catalog: catalogSvc,
		Clock:   view.RealClock,
		Metrics: metrics.NewCartMetrics(reg),
	}

	return &Deps{
		ProductHandler:  &ProductHandler{Shop: shop, Catalog: catalogSvc},
		CartHandler:     &CartHandler{Shop: shop},
		CheckoutHandler: &CheckoutHandler{Shop: shop},
		APIHandler:      &APIHandler{Shop: shop},
		Registry:        reg,
	}
}
