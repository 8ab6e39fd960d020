package main

import (
	"io"
	"log"
	"os"

	"xtreme/internal/config"
	"xtreme/internal/http/handlers"
	applog "xtreme/internal/log"
	"xtreme/internal/repos"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			out = io.MultiWriter(os.Stdout, f)
			log.SetOutput(out)
		}
	}
	applog.SetOutput(out, cfg.LogLevel)

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if cfg.CookieKey == "" {
		log.Printf("[warn] XTREME_COOKIE_KEY not set; carts will not survive a restart")
	}

	app, err := handlers.NewApp(cfg, handlers.NewDeps(db, cfg))
	if err != nil {
		log.Fatal(err)
	}
	log.Fatal(app.Listen(":" + cfg.Port))
}
