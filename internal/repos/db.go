package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	// one connection so ":memory:" stays a single database
	db.SetMaxOpenConns(1)

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the demo catalog if it is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Catalog
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  sku TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  image TEXT NOT NULL DEFAULT '',
  sizes TEXT NOT NULL DEFAULT '',   -- comma separated
  colors TEXT NOT NULL DEFAULT '',  -- comma separated
  position INTEGER NOT NULL DEFAULT 0,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_position ON products(position);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO products(id,name,sku,description,price,image,sizes,colors,position) VALUES
	  ('midnight','Худи “Midnight”','HW-001','Плотный футер, свободный крой.',3990,'/static/images/hoodie.svg','S,M,L,XL','Black,Graphite',1),
	  ('core','Футболка “Core”','TS-014','Базовая футболка из хлопка.',1490,'/static/images/tshirt.svg','S,M,L,XL','White,Black',2),
	  ('street','Брюки “Street Fit”','PT-221','Прямые брюки с эластичным поясом.',2990,'/static/images/pants.svg','M,L,XL','Black,Olive',3)`)

	return tx.Commit()
}
