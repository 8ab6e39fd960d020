package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger zerolog.Logger
)

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.TimeFieldFormat = time.RFC3339
	logger = newLogger(os.Stdout, zerolog.InfoLevel)
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// ParseLevel maps a config string to a level, defaulting to info.
func ParseLevel(value string) zerolog.Level {
	s := strings.ToLower(strings.TrimSpace(value))
	if lvl, err := zerolog.ParseLevel(s); err == nil && s != "" {
		return lvl
	}
	return zerolog.InfoLevel
}

// SetOutput points the event log at w and returns a func restoring the
// previous logger.
func SetOutput(w io.Writer, level string) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	old := logger
	logger = newLogger(w, ParseLevel(level))
	return func() {
		mu.Lock()
		defer mu.Unlock()
		logger = old
	}
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func write(level string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	l := current()
	var e *zerolog.Event
	switch level {
	case "error":
		e = l.Error()
	case "warn":
		e = l.Warn()
	case "info":
		e = l.Info()
	default:
		// audit has no zerolog level of its own
		e = l.Log().Str("level", level)
	}
	if e == nil {
		return
	}
	if c != nil {
		e = e.Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e = e.Str("req_id", rid)
		}
	}
	e = e.Str("action", action)
	if err != nil {
		e = e.Str("err", err.Error())
	}
	if len(fields) > 0 {
		e = e.Interface("fields", fields)
	}
	e.Send()
}

func Info(c *fiber.Ctx, action string, fields map[string]any) { write("info", c, action, nil, fields) }
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write("audit", c, action, nil, fields)
}
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write("warn", c, action, nil, fields)
}
func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write("error", c, action, err, fields)
}
