package handlers

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"xtreme/internal/config"
	applog "xtreme/internal/log"
	"xtreme/internal/view"
	"xtreme/web"
)

const headerBufferSize = 16 << 10

// NewApp wires middleware, templates and routes around deps.
func NewApp(cfg config.Config, deps *Deps) (*fiber.App, error) {
	tmpl, err := fs.Sub(web.Files, "templates")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(tmpl), ".html")
	engine.AddFunc("rub", view.FormatRUB)

	app := fiber.New(fiber.Config{
		Views: engine,
		// room for a full cart cookie plus csrf, flash and ordinary headers
		ReadBufferSize: headerBufferSize,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	key := cfg.CookieKey
	if key == "" {
		key = encryptcookie.GenerateKey()
	}

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// The cart cookie is the shopper's storage; a value that fails to
	// decrypt arrives empty and loads as an empty cart.
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key:    key,
		Except: []string{csrfCookie},
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many requests. Please slow down.")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     csrfCookie,
		CookieSameSite: "Lax",
		ContextKey:     "csrf",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(web.Files),
		PathPrefix: "static",
		MaxAge:     3600,
	}))

	// ---------- Pages ----------
	app.Get("/", deps.ProductHandler.List)
	app.Get("/product/:id", deps.ProductHandler.Detail)

	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart/add", deps.CartHandler.Add)
	app.Post("/cart/qty", deps.CartHandler.Qty)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/cart/clear", deps.CartHandler.Clear)

	app.Get("/checkout", deps.CheckoutHandler.View)
	app.Post("/checkout", deps.CheckoutHandler.Submit)

	api := app.Group("/api/v1")
	api.Get("/cart", deps.APIHandler.Cart)

	// Health, metrics & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	app.Use(func(c *fiber.Ctx) error {
		return notFound(c, "Page not found")
	})

	return app, nil
}
