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
	// SQLite is single-writer; one pooled connection keeps PRAGMAs and
	// transactions on the same underlying handle.
	db.SetMaxOpenConns(1)

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo data only on a fresh database
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Containers
CREATE TABLE IF NOT EXISTS suitcases(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL
);

-- Categories (lazily created; color assigned once at creation)
CREATE TABLE IF NOT EXISTS categories(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  color TEXT NOT NULL
);

-- Item type registry (joined to items by name, not by foreign key)
CREATE TABLE IF NOT EXISTS item_types(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  category_id INTEGER REFERENCES categories(id)
);

-- Items: one row per physical unit; position is the group's sort rank
CREATE TABLE IF NOT EXISTS items(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  type TEXT NOT NULL,
  suitcase_id INTEGER NOT NULL REFERENCES suitcases(id),
  position INTEGER DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_items_suitcase ON items(suitcase_id);
CREATE INDEX IF NOT EXISTS idx_items_type     ON items(type);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM suitcases`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo suitcases/items")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO suitcases(name) VALUES
	  ('Bedroom Suitcase'), ('Kitchen Box'), ('Bathroom Bag')`)

	// Row-per-unit: repeated rows represent counts
	tx.MustExec(`INSERT INTO items(type, suitcase_id, position) VALUES
	  ('shirt', 1, 0), ('shirt', 1, 0),
	  ('pants', 1, 1),
	  ('socks', 1, 2), ('socks', 1, 2), ('socks', 1, 2), ('socks', 1, 2), ('socks', 1, 2),
	  ('plate', 2, 0), ('plate', 2, 0), ('plate', 2, 0), ('plate', 2, 0),
	  ('cup', 2, 1), ('cup', 2, 1), ('cup', 2, 1), ('cup', 2, 1), ('cup', 2, 1), ('cup', 2, 1),
	  ('toothbrush', 3, 0), ('toothbrush', 3, 0),
	  ('towel', 3, 1), ('towel', 3, 1), ('towel', 3, 1)`)

	return tx.Commit()
}
