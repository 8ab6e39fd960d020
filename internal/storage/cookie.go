package storage

import (
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SealOverhead is what encryptcookie adds to a value before base64: a 12-byte
// AES-GCM nonce and a 16-byte tag.
const SealOverhead = 12 + 16

// MaxCookieSize is the name+value limit browsers enforce per cookie.
const MaxCookieSize = 4096

// CookieOptions configures a Cookie store. Quota bounds the size of the
// cookie as the browser stores it (name, "=" and value); zero means
// MaxCookieSize. Sealed tells the store the value is encrypted on the way
// out, so the quota is checked against the encoded size.
type CookieOptions struct {
	Quota  int
	MaxAge time.Duration
	Sealed bool
}

// Cookie stores each key in a browser cookie of the same name. Values written
// during the request shadow the ones the browser sent, so a load that follows
// a save in the same request sees the new blob.
type Cookie struct {
	c    *fiber.Ctx
	opts CookieOptions
	// nil entry means removed
	written map[string]*string
}

func NewCookie(c *fiber.Ctx, opts CookieOptions) *Cookie {
	if opts.Quota <= 0 || opts.Quota > MaxCookieSize {
		opts.Quota = MaxCookieSize
	}
	return &Cookie{c: c, opts: opts, written: map[string]*string{}}
}

// CookieSize is how many bytes the browser keeps for name=value, after
// sealing when sealed is set.
func CookieSize(name, value string, sealed bool) int {
	n := len(value)
	if sealed {
		n = base64.StdEncoding.EncodedLen(n + SealOverhead)
	}
	return len(name) + 1 + n
}

func (s *Cookie) Get(key string) (string, bool, error) {
	if v, ok := s.written[key]; ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}
	v := s.c.Cookies(key)
	if v == "" {
		return "", false, nil
	}
	return v, true, nil
}

func (s *Cookie) Set(key, value string) error {
	if CookieSize(key, value, s.opts.Sealed) > s.opts.Quota {
		return ErrQuotaExceeded
	}
	ck := &fiber.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if s.opts.MaxAge > 0 {
		ck.Expires = time.Now().Add(s.opts.MaxAge)
	}
	s.c.Cookie(ck)
	s.written[key] = &value
	return nil
}

func (s *Cookie) Remove(key string) error {
	s.c.ClearCookie(key)
	s.written[key] = nil
	return nil
}
