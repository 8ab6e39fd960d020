package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/jmoiron/sqlx"

	"xtreme/internal/config"
	"xtreme/internal/http/handlers"
	"xtreme/internal/repos"
)

// browser is a tiny cookie-keeping client around app.Test.
type browser struct {
	t       *testing.T
	app     *fiber.App
	db      *sqlx.DB
	cookies map[string]string
}

func newBrowser(t *testing.T, tweak ...func(*config.Config)) *browser {
	t.Helper()
	cfg := config.Default()
	cfg.DBDSN = ":memory:"
	cfg.CookieKey = encryptcookie.GenerateKey()
	for _, fn := range tweak {
		fn(&cfg)
	}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	app, err := handlers.NewApp(cfg, handlers.NewDeps(db, cfg))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return &browser{t: t, app: app, db: db, cookies: map[string]string{}}
}

func (b *browser) do(req *http.Request) *http.Response {
	b.t.Helper()
	for k, v := range b.cookies {
		req.AddCookie(&http.Cookie{Name: k, Value: v})
	}
	resp, err := b.app.Test(req, -1)
	if err != nil {
		b.t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	now := time.Now()
	for _, ck := range resp.Cookies() {
		if ck.MaxAge < 0 || (!ck.Expires.IsZero() && ck.Expires.Before(now)) {
			delete(b.cookies, ck.Name)
			continue
		}
		b.cookies[ck.Name] = ck.Value
	}
	return resp
}

func (b *browser) get(path string) (*http.Response, string) {
	b.t.Helper()
	resp := b.do(httptest.NewRequest(http.MethodGet, path, nil))
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

// post submits a form the way a rendered page would, csrf field included.
func (b *browser) post(path string, form url.Values) *http.Response {
	b.t.Helper()
	if b.cookies["csrf_"] == "" {
		b.get("/")
	}
	if form == nil {
		form = url.Values{}
	}
	form.Set("csrf", b.cookies["csrf_"])
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := b.do(req)
	if resp.StatusCode != http.StatusSeeOther {
		body, _ := io.ReadAll(resp.Body)
		b.t.Fatalf("POST %s: want 303, got %d body=%s", path, resp.StatusCode, body)
	}
	return resp
}

func (b *browser) add(id, size, color, qty string) {
	b.t.Helper()
	b.post("/cart/add", url.Values{"product_id": {id}, "size": {size}, "color": {color}, "qty": {qty}})
}

type apiLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Size  string  `json:"size"`
	Color string  `json:"color"`
	Qty   int     `json:"qty"`
}

type apiCart struct {
	Items  []apiLine `json:"items"`
	Totals struct {
		Subtotal float64 `json:"subtotal"`
		Discount float64 `json:"discount"`
		Shipping float64 `json:"shipping"`
		Total    float64 `json:"total"`
	} `json:"totals"`
	Count int `json:"count"`
}

func (b *browser) cart() apiCart {
	b.t.Helper()
	resp, body := b.get("/api/v1/cart")
	if resp.StatusCode != http.StatusOK {
		b.t.Fatalf("cart api: status %d", resp.StatusCode)
	}
	var out apiCart
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		b.t.Fatalf("cart api: %v body=%s", err, body)
	}
	return out
}
