package handlers

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"xtreme/internal/cart"
	"xtreme/internal/config"
	applog "xtreme/internal/log"
	"xtreme/internal/metrics"
	"xtreme/internal/storage"
	"xtreme/internal/view"
)

const (
	csrfCookie  = "csrf_"
	flashCookie = "xtreme_toast"
)

// Shop builds the per-request view of the cart. The cart itself lives in the
// shopper's cookie; every request starts from whatever the browser sent.
type Shop struct {
	Cfg     config.Config
	Catalog view.Catalog
	Clock   view.Scheduler
	Metrics *metrics.CartMetrics
}

// frame is one request's binder with the two cart counters every page shows.
type frame struct {
	c      *fiber.Ctx
	binder *view.Binder
	header *view.Badge
	footer *view.Badge
	stats  *metrics.CartMetrics
}

func (s *Shop) open(c *fiber.Ctx) *frame {
	st := storage.NewCookie(c, storage.CookieOptions{
		Quota:  s.Cfg.Cart.Quota,
		MaxAge: s.Cfg.Cart.MaxAge,
		Sealed: true,
	})
	svc := cart.NewService(cart.NewStore(st, s.Cfg.Cart.Key))
	b := view.NewBinder(svc, s.Catalog, view.Options{
		Totals:        s.Cfg.Cart.Totals(),
		Scheduler:     s.Clock,
		ToastDuration: s.Cfg.Toast,
	})
	f := &frame{c: c, binder: b, header: view.NewBadge(), footer: view.NewBadge(), stats: s.Metrics}
	b.BindBadge(f.header, f.footer)
	return f
}

// page renders tmpl with the badges and toast filled in from a fresh load.
// A toast flashed by the previous intent is shown here.
func (f *frame) page(tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if msg := takeFlash(f.c); msg != "" {
		f.binder.Notify(msg)
	}
	f.binder.Refresh()
	data["HeaderBadge"] = f.header
	data["FooterBadge"] = f.footer
	if f.binder.HasToast() {
		t := f.binder.Toast()
		// the page hides the toast itself once rendered
		defer t.Stop()
		data["Toast"] = t
	}
	return render(f.c, tmpl, data)
}

// after finishes an intent: log a storage failure, carry the toast over the
// redirect and send the shopper back.
func (f *frame) after(action string, err error, back string) error {
	if err != nil {
		applog.Error(f.c, action, err, nil)
	}
	f.stats.Intent(action, err)
	if f.binder.HasToast() {
		t := f.binder.Toast()
		t.Stop()
		setFlash(f.c, t.Message())
	}
	return f.c.Redirect(back, fiber.StatusSeeOther)
}

// skip sends the shopper back from an intent that changed nothing.
func (f *frame) skip(action, back string) error {
	f.stats.Ignored(action)
	return f.c.Redirect(back, fiber.StatusSeeOther)
}

func setFlash(c *fiber.Ctx, msg string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func takeFlash(c *fiber.Ctx) string {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return ""
	}
	c.ClearCookie(flashCookie)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}

// localPath keeps redirects on this site.
func localPath(p, fallback string) string {
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, `\`) {
		return fallback
	}
	return p
}
